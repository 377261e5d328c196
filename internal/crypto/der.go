package crypto

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
)

// MaxSignatureSize is the longest DER ECDSA-Sig-Value for P-256: a two-byte
// SEQUENCE header around two INTEGERs of at most 33 content bytes each.
const MaxSignatureSize = 72

var ErrMalformedSignature = errors.New("malformed ecdsa signature")

func splitRaw(raw []byte) (r, s *big.Int, err error) {
	if len(raw) == 0 || len(raw)%2 != 0 {
		return nil, nil, fmt.Errorf("%w: raw length %d", ErrMalformedSignature, len(raw))
	}
	half := len(raw) / 2
	return new(big.Int).SetBytes(raw[:half]), new(big.Int).SetBytes(raw[half:]), nil
}

func addIntegers(b *cryptobyte.Builder, r, s *big.Int) {
	b.AddASN1BigInt(r)
	b.AddASN1BigInt(s)
}

// EncodeSignature packages a fixed-width r||s signature as a DER
// ECDSA-Sig-Value, stripping leading zeros and adding sign padding as
// INTEGER encoding requires.
func EncodeSignature(raw []byte) ([]byte, error) {
	r, s, err := splitRaw(raw)
	if err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	b.AddASN1(asn1.SEQUENCE, func(b *cryptobyte.Builder) {
		addIntegers(b, r, s)
	})
	return b.Bytes()
}

// EncodeIntegers encodes r||s as two consecutive DER INTEGERs with no
// enclosing SEQUENCE, the form a secure element returns from a sign command.
func EncodeIntegers(raw []byte) ([]byte, error) {
	r, s, err := splitRaw(raw)
	if err != nil {
		return nil, err
	}
	var b cryptobyte.Builder
	addIntegers(&b, r, s)
	return b.Bytes()
}

// CanonicalizeIntegers re-encodes an element signature payload of two
// INTEGER elements minimally. Contents are read as unsigned magnitudes, so
// payloads missing the sign-padding byte or carrying extra leading zeros come
// out canonical; already canonical payloads are returned byte-identical.
func CanonicalizeIntegers(payload []byte) ([]byte, error) {
	in := cryptobyte.String(payload)
	var vals [2]*big.Int
	for i := range vals {
		var content cryptobyte.String
		if !in.ReadASN1(&content, asn1.INTEGER) || len(content) == 0 {
			return nil, fmt.Errorf("%w: integer %d", ErrMalformedSignature, i)
		}
		vals[i] = new(big.Int).SetBytes(content)
		if vals[i].Sign() == 0 {
			return nil, fmt.Errorf("%w: zero integer %d", ErrMalformedSignature, i)
		}
	}
	if !in.Empty() {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedSignature, len(in))
	}
	var b cryptobyte.Builder
	addIntegers(&b, vals[0], vals[1])
	return b.Bytes()
}

// ParseSignature decodes a DER ECDSA-Sig-Value.
func ParseSignature(der []byte) (r, s *big.Int, err error) {
	r, s = new(big.Int), new(big.Int)
	in := cryptobyte.String(der)
	var seq cryptobyte.String
	if !in.ReadASN1(&seq, asn1.SEQUENCE) || !in.Empty() ||
		!seq.ReadASN1Integer(r) || !seq.ReadASN1Integer(s) || !seq.Empty() {
		return nil, nil, ErrMalformedSignature
	}
	return r, s, nil
}
