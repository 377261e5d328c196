package emulator

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/glinharesb/trustanchor-go/internal/crypto"
	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

// Provision stores a signing key and the certificate chained to it.
func Provision(s Store, keyIndex, certIndex uint8, key *ecdsa.PrivateKey, cert []byte) error {
	now := time.Now()
	if err := s.Put(&Entry{
		OID:        optiga.KeyOID(keyIndex),
		Kind:       KindKey,
		PrivateKey: key,
		CreatedAt:  now,
	}); err != nil {
		return fmt.Errorf("provision key slot %d: %w", keyIndex, err)
	}
	if err := s.Put(&Entry{
		OID:       optiga.CertOID(certIndex),
		Kind:      KindData,
		DataType:  optiga.TypeDeviceCert,
		Data:      cert,
		CreatedAt: now,
		Labels:    map[string]string{"key": optiga.KeyOID(keyIndex).String()},
	}); err != nil {
		return fmt.Errorf("provision certificate slot %d: %w", certIndex, err)
	}
	return nil
}

// EnsureProvisioned gives an empty element a fresh key in keyIndex and a
// self-signed certificate for it in certIndex. An element whose key slot is
// already populated is left alone.
func EnsureProvisioned(s Store, keyIndex, certIndex uint8, commonName string) (bool, error) {
	_, err := s.Get(optiga.KeyOID(keyIndex))
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, optiga.ErrObjectNotFound) {
		return false, err
	}

	key, err := crypto.GenerateP256Key()
	if err != nil {
		return false, err
	}
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 64))
	if err != nil {
		return false, fmt.Errorf("serial: %w", err)
	}
	now := time.Now()
	tmpl := &x509.Certificate{
		SerialNumber: serial,
		Subject:      pkix.Name{CommonName: commonName},
		NotBefore:    now.Add(-time.Minute),
		NotAfter:     now.AddDate(20, 0, 0),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	cert, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		return false, fmt.Errorf("self-sign certificate: %w", err)
	}
	if err := Provision(s, keyIndex, certIndex, key, cert); err != nil {
		return false, err
	}
	return true, nil
}
