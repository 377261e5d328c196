package crypto

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"
)

func testKey(t *testing.T) []byte {
	t.Helper()
	scalar := make([]byte, 32)
	scalar[0] = 1
	return scalar
}

func TestSignDigestDeterministic(t *testing.T) {
	key, err := NewP256Key(testKey(t))
	if err != nil {
		t.Fatalf("new key: %v", err)
	}
	digest := sha256.Sum256([]byte("deterministic signing"))

	raw1, err := SignDigest(key, digest[:])
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	raw2, err := SignDigest(key, digest[:])
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if raw1 != raw2 {
		t.Fatal("same key and digest should give the same signature")
	}

	der, err := EncodeSignature(raw1[:])
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !VerifyDigest(&key.PublicKey, digest[:], der) {
		t.Fatal("valid signature rejected")
	}
}

func TestSignDigestWrongLength(t *testing.T) {
	key, err := GenerateP256Key()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	if _, err := SignDigest(key, make([]byte, 20)); err == nil {
		t.Fatal("20-byte digest should fail")
	}
}

func TestVerifyDigestWrongKey(t *testing.T) {
	key1, _ := GenerateP256Key()
	key2, _ := GenerateP256Key()
	digest := sha256.Sum256([]byte("data"))

	raw, _ := SignDigest(key1, digest[:])
	der, _ := EncodeSignature(raw[:])
	if VerifyDigest(&key2.PublicKey, digest[:], der) {
		t.Fatal("wrong key should not verify")
	}
}

func TestNewP256KeyRejectsZero(t *testing.T) {
	if _, err := NewP256Key(make([]byte, 32)); err == nil {
		t.Fatal("zero scalar should fail")
	}
}

func TestEncodeSignatureSignPadding(t *testing.T) {
	raw := bytes.Repeat([]byte{0xFF}, RawSignatureSize)
	der, err := EncodeSignature(raw)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(der) != MaxSignatureSize {
		t.Fatalf("length: got %d, want %d", len(der), MaxSignatureSize)
	}
	if der[0] != 0x30 || int(der[1]) != len(der)-2 {
		t.Fatalf("bad sequence header % x", der[:2])
	}
	if !bytes.Equal(der[2:5], []byte{0x02, 0x21, 0x00}) {
		t.Fatalf("r should be sign padded, got % x", der[2:5])
	}
}

func TestEncodeSignatureStripsLeadingZeros(t *testing.T) {
	raw := make([]byte, RawSignatureSize)
	raw[31] = 0x05
	raw[63] = 0x7F
	der, err := EncodeSignature(raw)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := []byte{0x30, 0x06, 0x02, 0x01, 0x05, 0x02, 0x01, 0x7F}
	if !bytes.Equal(der, want) {
		t.Fatalf("got % x, want % x", der, want)
	}
}

func TestEncodeSignatureOddLength(t *testing.T) {
	if _, err := EncodeSignature(make([]byte, 63)); !errors.Is(err, ErrMalformedSignature) {
		t.Fatalf("expected ErrMalformedSignature, got %v", err)
	}
}

func TestEncodeIntegersMatchesSequenceBody(t *testing.T) {
	raw := bytes.Repeat([]byte{0x42}, RawSignatureSize)
	der, _ := EncodeSignature(raw)
	payload, err := EncodeIntegers(raw)
	if err != nil {
		t.Fatalf("encode integers: %v", err)
	}
	if !bytes.Equal(der[2:], payload) {
		t.Fatal("integer payload should equal the sequence body")
	}
}

func TestCanonicalizeIntegers(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    []byte
	}{
		{
			name:    "already canonical",
			payload: []byte{0x02, 0x01, 0x05, 0x02, 0x02, 0x00, 0x80},
			want:    []byte{0x02, 0x01, 0x05, 0x02, 0x02, 0x00, 0x80},
		},
		{
			name:    "missing sign padding",
			payload: []byte{0x02, 0x01, 0x80, 0x02, 0x01, 0x01},
			want:    []byte{0x02, 0x02, 0x00, 0x80, 0x02, 0x01, 0x01},
		},
		{
			name:    "redundant leading zeros",
			payload: []byte{0x02, 0x03, 0x00, 0x00, 0x05, 0x02, 0x02, 0x00, 0x01},
			want:    []byte{0x02, 0x01, 0x05, 0x02, 0x01, 0x01},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalizeIntegers(tt.payload)
			if err != nil {
				t.Fatalf("canonicalize: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("got % x, want % x", got, tt.want)
			}
		})
	}
}

func TestCanonicalizeIntegersMalformed(t *testing.T) {
	bad := map[string][]byte{
		"empty":          nil,
		"one integer":    {0x02, 0x01, 0x05},
		"trailing bytes": {0x02, 0x01, 0x05, 0x02, 0x01, 0x05, 0x00},
		"wrong tag":      {0x04, 0x01, 0x05, 0x02, 0x01, 0x05},
		"zero value":     {0x02, 0x01, 0x00, 0x02, 0x01, 0x05},
		"empty content":  {0x02, 0x00, 0x02, 0x01, 0x05},
		"truncated":      {0x02, 0x05, 0x01},
	}
	for name, payload := range bad {
		t.Run(name, func(t *testing.T) {
			if _, err := CanonicalizeIntegers(payload); !errors.Is(err, ErrMalformedSignature) {
				t.Fatalf("expected ErrMalformedSignature, got %v", err)
			}
		})
	}
}

func TestParseSignature(t *testing.T) {
	raw := make([]byte, RawSignatureSize)
	raw[0], raw[63] = 0x9C, 0x11
	der, _ := EncodeSignature(raw)

	r, s, err := ParseSignature(der)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if r.Bytes()[0] != 0x9C || s.Int64() != 0x11 {
		t.Fatalf("unexpected r=%x s=%x", r, s)
	}

	if _, _, err := ParseSignature(append(der, 0x00)); err == nil {
		t.Fatal("trailing data should fail")
	}
}

func TestMarshalPrivateKeyRoundTrip(t *testing.T) {
	key, err := GenerateP256Key()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	der, err := MarshalPrivateKey(key)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	recovered, err := UnmarshalPrivateKey(der)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	// Sign with original, verify with recovered
	digest := sha256.Sum256([]byte("roundtrip test"))
	raw, err := SignDigest(key, digest[:])
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	der, _ = EncodeSignature(raw[:])
	if !VerifyDigest(&recovered.PublicKey, digest[:], der) {
		t.Fatal("roundtrip key should verify signature")
	}
}

// Benchmarks

func BenchmarkSignDigest(b *testing.B) {
	key, _ := GenerateP256Key()
	digest := sha256.Sum256([]byte("benchmark data for signing"))
	b.ResetTimer()
	for b.Loop() {
		SignDigest(key, digest[:])
	}
}

func BenchmarkEncodeSignature(b *testing.B) {
	raw := bytes.Repeat([]byte{0xA5}, RawSignatureSize)
	b.ResetTimer()
	for b.Loop() {
		EncodeSignature(raw)
	}
}
