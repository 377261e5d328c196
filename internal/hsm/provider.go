package hsm

import (
	"errors"
	"fmt"

	"github.com/glinharesb/trustanchor-go/internal/crypto"
)

var (
	ErrTransport           = errors.New("hsm: transport failure")
	ErrMetadataParse       = errors.New("hsm: metadata parse failure")
	ErrBufferTooSmall      = errors.New("hsm: buffer too small")
	ErrEncodingUnsupported = errors.New("hsm: signature encoding unsupported")
	ErrInvalidSlot         = errors.New("hsm: invalid slot index")
	ErrInvalidDigest       = errors.New("hsm: invalid digest")
)

// Provider abstracts the device trust anchor: a signing key that never leaves
// the secure element and the certificates chained to it. Element drives real
// hardware, Simulator is a fixed software stand-in.
//
// Calls are synchronous and independent. Output buffers are never written
// when a call fails.
type Provider interface {
	// Sign signs a SHA-256 digest with key slot index and writes a DER
	// ECDSA-Sig-Value into sig, returning its length.
	Sign(index uint8, digest []byte, sig []byte) (int, error)
	// CertSize returns the length of the certificate in slot index.
	CertSize(index uint8) (int, error)
	// ReadCert copies the certificate in slot index into cert and returns
	// its length.
	ReadCert(index uint8, cert []byte) (int, error)
}

// SignDigest signs digest and returns the DER signature in a new slice.
func SignDigest(p Provider, index uint8, digest []byte) ([]byte, error) {
	var sig [crypto.MaxSignatureSize]byte
	n, err := p.Sign(index, digest, sig[:])
	if err != nil {
		return nil, err
	}
	return append([]byte(nil), sig[:n]...), nil
}

// Certificate reads the complete certificate in slot index.
func Certificate(p Provider, index uint8) ([]byte, error) {
	size, err := p.CertSize(index)
	if err != nil {
		return nil, err
	}
	cert := make([]byte, size)
	n, err := p.ReadCert(index, cert)
	if err != nil {
		return nil, err
	}
	return cert[:n], nil
}

func checkDigest(digest []byte) error {
	if len(digest) != crypto.DigestSize {
		return fmt.Errorf("%w: %d bytes, want %d", ErrInvalidDigest, len(digest), crypto.DigestSize)
	}
	return nil
}
