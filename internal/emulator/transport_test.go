package emulator

import (
	"bytes"
	"crypto/sha256"
	"crypto/x509"
	"errors"
	"testing"

	"github.com/glinharesb/trustanchor-go/internal/crypto"
	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

func provisioned(t *testing.T) (*Transport, *Entry, []byte) {
	t.Helper()
	store := NewMemoryStore()
	key, err := crypto.GenerateP256Key()
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}
	cert := bytes.Repeat([]byte{0xCE}, 414)
	if err := Provision(store, 0, 1, key, cert); err != nil {
		t.Fatalf("provision: %v", err)
	}
	e, _ := store.Get(optiga.KeyOID(0))
	return NewTransport(store), e, cert
}

func TestTransportMetadata(t *testing.T) {
	tr, _, _ := provisioned(t)

	buf := make([]byte, optiga.MaxMetadataSize)
	n, err := tr.GetDataObject(optiga.CertOID(1), true, buf)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	md, err := optiga.ParseMetadata(buf[:n])
	if err != nil {
		t.Fatalf("parse metadata: %v", err)
	}
	used, _ := md.UsedSize.Uint()
	if used != 414 {
		t.Fatalf("used size: got %d, want 414", used)
	}
	if !bytes.Equal(md.DataType, []byte{optiga.TypeDeviceCert}) {
		t.Fatalf("data type: got % x", md.DataType)
	}
	if !bytes.Equal(md.LcsO, []byte{optiga.LcsOperational}) {
		t.Fatalf("lcso: got % x", md.LcsO)
	}
}

func TestTransportKeyMetadata(t *testing.T) {
	tr, _, _ := provisioned(t)

	buf := make([]byte, optiga.MaxMetadataSize)
	n, err := tr.GetDataObject(optiga.KeyOID(0), true, buf)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	md, _ := optiga.ParseMetadata(buf[:n])
	if md.UsedSize.Present() {
		t.Fatal("key objects report no used size")
	}
	if !bytes.Equal(md.Algorithm, []byte{optiga.AlgorithmECCP256}) {
		t.Fatalf("algorithm: got % x", md.Algorithm)
	}
}

func TestTransportReadObject(t *testing.T) {
	tr, _, cert := provisioned(t)

	buf := make([]byte, 1024)
	n, err := tr.GetDataObject(optiga.CertOID(1), false, buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(buf[:n], cert) {
		t.Fatal("object contents mismatch")
	}
}

func TestTransportReadTooLarge(t *testing.T) {
	tr, _, _ := provisioned(t)

	buf := make([]byte, 413)
	_, err := tr.GetDataObject(optiga.CertOID(1), false, buf)
	if !errors.Is(err, optiga.ErrResponseTooLarge) {
		t.Fatalf("expected ErrResponseTooLarge, got %v", err)
	}
	if !bytes.Equal(buf, make([]byte, 413)) {
		t.Fatal("buffer must be untouched on overflow")
	}
}

func TestTransportReadKeyRefused(t *testing.T) {
	tr, _, _ := provisioned(t)
	if _, err := tr.GetDataObject(optiga.KeyOID(0), false, make([]byte, 512)); err == nil {
		t.Fatal("reading a key object should fail")
	}
}

func TestTransportReadMissing(t *testing.T) {
	tr, _, _ := provisioned(t)
	_, err := tr.GetDataObject(optiga.CertOID(3), true, make([]byte, 64))
	if !errors.Is(err, optiga.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestTransportCalcSign(t *testing.T) {
	tr, key, _ := provisioned(t)
	digest := sha256.Sum256([]byte("challenge"))

	payload := make([]byte, 70)
	n, err := tr.CalcSign(optiga.KeyOID(0), digest[:], payload)
	if err != nil {
		t.Fatalf("calc sign: %v", err)
	}
	if payload[0] != 0x02 {
		t.Fatalf("payload should start with an INTEGER, got %#x", payload[0])
	}

	der := append([]byte{0x30, byte(n)}, payload[:n]...)
	if !crypto.VerifyDigest(&key.PrivateKey.PublicKey, digest[:], der) {
		t.Fatal("element signature should verify")
	}
}

func TestTransportCalcSignRefusals(t *testing.T) {
	tr, _, _ := provisioned(t)
	digest := sha256.Sum256([]byte("x"))

	if _, err := tr.CalcSign(optiga.CertOID(1), digest[:], make([]byte, 70)); err == nil {
		t.Fatal("signing with a data object should fail")
	}
	if _, err := tr.CalcSign(optiga.KeyOID(0), digest[:], make([]byte, 4)); !errors.Is(err, optiga.ErrResponseTooLarge) {
		t.Fatalf("expected ErrResponseTooLarge, got %v", err)
	}
	if err := tr.store.UpdateState(optiga.KeyOID(0), StateTermination); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.CalcSign(optiga.KeyOID(0), digest[:], make([]byte, 70)); !errors.Is(err, ErrTerminated) {
		t.Fatalf("expected ErrTerminated, got %v", err)
	}
}

func TestEnsureProvisioned(t *testing.T) {
	store := NewMemoryStore()

	created, err := EnsureProvisioned(store, 0, 1, "emulated element")
	if err != nil {
		t.Fatalf("provision: %v", err)
	}
	if !created {
		t.Fatal("empty element should be provisioned")
	}

	key, err := store.Get(optiga.KeyOID(0))
	if err != nil {
		t.Fatalf("key slot: %v", err)
	}
	certEntry, err := store.Get(optiga.CertOID(1))
	if err != nil {
		t.Fatalf("certificate slot: %v", err)
	}
	cert, err := x509.ParseCertificate(certEntry.Data)
	if err != nil {
		t.Fatalf("parse certificate: %v", err)
	}
	if cert.Subject.CommonName != "emulated element" {
		t.Fatalf("common name: got %s", cert.Subject.CommonName)
	}
	if !key.PrivateKey.PublicKey.Equal(cert.PublicKey) {
		t.Fatal("certificate should carry the provisioned key")
	}
	if certEntry.Labels["key"] != "0xE0F0" {
		t.Fatalf("certificate label: got %v", certEntry.Labels)
	}

	created, err = EnsureProvisioned(store, 0, 1, "other")
	if err != nil || created {
		t.Fatalf("second call should be a no-op, got created=%v err=%v", created, err)
	}
}
