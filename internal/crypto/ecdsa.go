package crypto

import (
	stdcrypto "crypto"
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"fmt"
	"math/big"
)

const (
	// DigestSize is the length of the SHA-256 digests the element signs.
	DigestSize = 32
	// RawSignatureSize is the fixed-width r||s form for P-256.
	RawSignatureSize = 64
)

// GenerateP256Key creates a new P-256 key pair.
func GenerateP256Key() (*ecdsa.PrivateKey, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate ecdsa key: %w", err)
	}
	return key, nil
}

// NewP256Key builds a private key from a 32-byte big-endian scalar.
func NewP256Key(scalar []byte) (*ecdsa.PrivateKey, error) {
	k, err := ecdh.P256().NewPrivateKey(scalar)
	if err != nil {
		return nil, fmt.Errorf("p256 scalar: %w", err)
	}
	pub := k.PublicKey().Bytes() // 0x04 || X || Y
	return &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{
			Curve: elliptic.P256(),
			X:     new(big.Int).SetBytes(pub[1:33]),
			Y:     new(big.Int).SetBytes(pub[33:]),
		},
		D: new(big.Int).SetBytes(scalar),
	}, nil
}

// SignDigest signs a 32-byte digest and returns the raw r||s signature.
// Nonces are derived per RFC 6979, so equal inputs give equal signatures.
func SignDigest(key *ecdsa.PrivateKey, digest []byte) ([RawSignatureSize]byte, error) {
	var raw [RawSignatureSize]byte
	if len(digest) != DigestSize {
		return raw, fmt.Errorf("ecdsa sign: digest is %d bytes, want %d", len(digest), DigestSize)
	}

	der, err := key.Sign(nil, digest, stdcrypto.SHA256)
	if err != nil {
		return raw, fmt.Errorf("ecdsa sign: %w", err)
	}
	r, s, err := ParseSignature(der)
	if err != nil {
		return raw, fmt.Errorf("ecdsa sign: %w", err)
	}
	r.FillBytes(raw[:RawSignatureSize/2])
	s.FillBytes(raw[RawSignatureSize/2:])
	return raw, nil
}

// VerifyDigest verifies an ASN.1 DER-encoded ECDSA signature over digest.
func VerifyDigest(pub *ecdsa.PublicKey, digest, signature []byte) bool {
	return ecdsa.VerifyASN1(pub, digest, signature)
}

// MarshalPrivateKey encodes an ECDSA private key in PKCS8 DER format.
func MarshalPrivateKey(key *ecdsa.PrivateKey) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("marshal private key: %w", err)
	}
	return der, nil
}

// UnmarshalPrivateKey decodes a PKCS8 DER-encoded ECDSA private key.
func UnmarshalPrivateKey(der []byte) (*ecdsa.PrivateKey, error) {
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("not an ECDSA private key")
	}
	return key, nil
}
