package hsm

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/glinharesb/trustanchor-go/internal/crypto"
)

// simulatorKey is the fixed test scalar: 0x01 followed by 31 zero bytes.
var simulatorKey = [32]byte{1}

// Simulator is a software-only Provider for development and testing. It has
// a single identity: every key slot signs with simulatorKey and every
// certificate slot returns simulatorCert.
type Simulator struct {
	key *ecdsa.PrivateKey
}

func NewSimulator() (*Simulator, error) {
	key, err := crypto.NewP256Key(simulatorKey[:])
	if err != nil {
		return nil, fmt.Errorf("simulator key: %w", err)
	}
	return &Simulator{key: key}, nil
}

// Public returns the verification key matching the simulator's certificate.
func (s *Simulator) Public() *ecdsa.PublicKey {
	return &s.key.PublicKey
}

func (s *Simulator) Sign(_ uint8, digest []byte, sig []byte) (int, error) {
	if err := checkDigest(digest); err != nil {
		return 0, err
	}
	if len(sig) < crypto.MaxSignatureSize {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, crypto.MaxSignatureSize, len(sig))
	}

	raw, err := crypto.SignDigest(s.key, digest)
	if err != nil {
		return 0, fmt.Errorf("simulator: %w", err)
	}
	der, err := crypto.EncodeSignature(raw[:])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingUnsupported, err)
	}
	if len(der)-2 >= maxShortLength {
		return 0, fmt.Errorf("%w: payload of %d bytes", ErrEncodingUnsupported, len(der)-2)
	}
	return copy(sig, der), nil
}

func (s *Simulator) CertSize(uint8) (int, error) {
	return len(simulatorCert), nil
}

func (s *Simulator) ReadCert(_ uint8, cert []byte) (int, error) {
	if len(cert) < len(simulatorCert) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, len(simulatorCert), len(cert))
	}
	return copy(cert, simulatorCert), nil
}
