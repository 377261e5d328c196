// Package authn implements the device authenticity check: the device signs
// a verifier-chosen challenge with its attestation key and returns the
// certificate chain that vouches for that key.
package authn

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"crypto/x509"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/glinharesb/trustanchor-go/internal/crypto"
	"github.com/glinharesb/trustanchor-go/internal/hsm"
)

// MaxChallengeSize bounds the verifier's challenge.
const MaxChallengeSize = 1024

const header = "AuthenticateDevice:"

var (
	ErrInvalidChallenge = errors.New("authn: invalid challenge")
	ErrInvalidProof     = errors.New("authn: invalid proof")
)

// Options selects the key and certificate slots used for a proof.
type Options struct {
	KeyIndex  uint8
	CertIndex uint8
}

// DefaultOptions signs with key slot 0 and returns certificate slot 1.
func DefaultOptions() Options {
	return Options{KeyIndex: 0, CertIndex: 1}
}

// Proof is the device's answer to a challenge.
type Proof struct {
	Certificate []byte `json:"certificate" cbor:"1,keyasint"`
	Signature   []byte `json:"signature" cbor:"2,keyasint"`
}

// ChallengeDigest returns the digest the device signs for challenge.
func ChallengeDigest(challenge []byte) ([]byte, error) {
	if err := checkChallenge(challenge); err != nil {
		return nil, err
	}
	sum := sha256.Sum256(message(challenge))
	return sum[:], nil
}

// Authenticate answers challenge using p.
func Authenticate(p hsm.Provider, challenge []byte, opts Options) (*Proof, error) {
	digest, err := ChallengeDigest(challenge)
	if err != nil {
		return nil, err
	}
	sig, err := hsm.SignDigest(p, opts.KeyIndex, digest)
	if err != nil {
		return nil, fmt.Errorf("sign challenge with key slot %d: %w", opts.KeyIndex, err)
	}
	cert, err := hsm.Certificate(p, opts.CertIndex)
	if err != nil {
		return nil, fmt.Errorf("read certificate slot %d: %w", opts.CertIndex, err)
	}
	return &Proof{Certificate: cert, Signature: sig}, nil
}

// VerifyProof checks that proof's signature over challenge was made by the
// key of the first certificate in proof.Certificate. The chain itself is not
// validated against any root.
func VerifyProof(proof *Proof, challenge []byte) (*x509.Certificate, error) {
	digest, err := ChallengeDigest(challenge)
	if err != nil {
		return nil, err
	}
	certs, err := x509.ParseCertificates(proof.Certificate)
	if err != nil {
		return nil, fmt.Errorf("%w: parse certificate: %w", ErrInvalidProof, err)
	}
	if len(certs) == 0 {
		return nil, fmt.Errorf("%w: no certificate", ErrInvalidProof)
	}
	leaf := certs[0]
	pub, ok := leaf.PublicKey.(*ecdsa.PublicKey)
	if !ok || pub.Curve != elliptic.P256() {
		return nil, fmt.Errorf("%w: device key is not ECDSA P-256", ErrInvalidProof)
	}
	if !crypto.VerifyDigest(pub, digest, proof.Signature) {
		return nil, fmt.Errorf("%w: signature does not verify", ErrInvalidProof)
	}
	return leaf, nil
}

func checkChallenge(challenge []byte) error {
	if len(challenge) == 0 || len(challenge) > MaxChallengeSize {
		return fmt.Errorf("%w: %d bytes, want 1..%d", ErrInvalidChallenge, len(challenge), MaxChallengeSize)
	}
	return nil
}

func message(challenge []byte) []byte {
	b := make([]byte, 0, 1+len(header)+9+len(challenge))
	b = appendCompactSize(b, uint64(len(header)))
	b = append(b, header...)
	b = appendCompactSize(b, uint64(len(challenge)))
	return append(b, challenge...)
}

// appendCompactSize appends v as a Bitcoin CompactSize integer.
func appendCompactSize(b []byte, v uint64) []byte {
	switch {
	case v < 0xFD:
		return append(b, byte(v))
	case v <= 0xFFFF:
		return binary.LittleEndian.AppendUint16(append(b, 0xFD), uint16(v))
	case v <= 0xFFFFFFFF:
		return binary.LittleEndian.AppendUint32(append(b, 0xFE), uint32(v))
	default:
		return binary.LittleEndian.AppendUint64(append(b, 0xFF), v)
	}
}
