package hsm

import (
	"errors"
	"fmt"
	"math"

	"github.com/glinharesb/trustanchor-go/internal/crypto"
	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

// sigScratch holds the element's signature payload. It is larger than any
// payload the one-byte DER length form can carry so oversized responses are
// seen and rejected as unsupported.
const sigScratch = 256

// maxShortLength is the first length that needs the long DER length form.
const maxShortLength = 0x80

// Element is the hardware-backed Provider. Every call is a single exchange
// with the secure element; nothing is cached between calls.
type Element struct {
	t optiga.Transport
}

func NewElement(t optiga.Transport) *Element {
	return &Element{t: t}
}

func (e *Element) Sign(index uint8, digest []byte, sig []byte) (int, error) {
	if index >= optiga.MaxKeySlots {
		return 0, fmt.Errorf("%w: key slot %d", ErrInvalidSlot, index)
	}
	if err := checkDigest(digest); err != nil {
		return 0, err
	}
	if len(sig) < 2 {
		return 0, fmt.Errorf("%w: %d bytes leaves no room for the sequence header", ErrBufferTooSmall, len(sig))
	}

	oid := optiga.KeyOID(index)
	var scratch [sigScratch]byte
	capacity := min(len(sig)-2, len(scratch))
	n, err := e.t.CalcSign(oid, digest, scratch[:capacity])
	if err != nil {
		if errors.Is(err, optiga.ErrResponseTooLarge) {
			return 0, fmt.Errorf("%w: %w", ErrBufferTooSmall, err)
		}
		return 0, fmt.Errorf("%w: calc sign %s: %w", ErrTransport, oid, err)
	}
	if n > capacity {
		return 0, fmt.Errorf("%w: calc sign %s reported %d bytes into %d", ErrTransport, oid, n, capacity)
	}
	if n >= maxShortLength {
		return 0, fmt.Errorf("%w: payload of %d bytes", ErrEncodingUnsupported, n)
	}

	payload, err := crypto.CanonicalizeIntegers(scratch[:n])
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEncodingUnsupported, err)
	}
	if len(payload) >= maxShortLength {
		return 0, fmt.Errorf("%w: payload of %d bytes", ErrEncodingUnsupported, len(payload))
	}
	if len(payload)+2 > len(sig) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, len(payload)+2, len(sig))
	}

	sig[0] = 0x30
	sig[1] = byte(len(payload))
	copy(sig[2:], payload)
	return len(payload) + 2, nil
}

func (e *Element) CertSize(index uint8) (int, error) {
	if index >= optiga.MaxCertSlots {
		return 0, fmt.Errorf("%w: certificate slot %d", ErrInvalidSlot, index)
	}

	oid := optiga.CertOID(index)
	var buf [optiga.MaxMetadataSize]byte
	n, err := e.t.GetDataObject(oid, true, buf[:])
	if err != nil {
		return 0, fmt.Errorf("%w: read metadata %s: %w", ErrTransport, oid, err)
	}
	if n > len(buf) {
		return 0, fmt.Errorf("%w: metadata %s reported %d bytes", ErrTransport, oid, n)
	}

	md, err := optiga.ParseMetadata(buf[:n])
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMetadataParse, oid, err)
	}
	if !md.UsedSize.Present() {
		return 0, fmt.Errorf("%w: %s has no used size", ErrMetadataParse, oid)
	}
	size, err := md.UsedSize.Uint()
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrMetadataParse, oid, err)
	}
	if size > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s used size %d out of range", ErrMetadataParse, oid, size)
	}
	return int(size), nil
}

func (e *Element) ReadCert(index uint8, cert []byte) (int, error) {
	if index >= optiga.MaxCertSlots {
		return 0, fmt.Errorf("%w: certificate slot %d", ErrInvalidSlot, index)
	}

	oid := optiga.CertOID(index)
	n, err := e.t.GetDataObject(oid, false, cert)
	if err != nil {
		if errors.Is(err, optiga.ErrResponseTooLarge) {
			return 0, fmt.Errorf("%w: %s: %w", ErrBufferTooSmall, oid, err)
		}
		return 0, fmt.Errorf("%w: read %s: %w", ErrTransport, oid, err)
	}
	if n > len(cert) {
		return 0, fmt.Errorf("%w: %s reported %d bytes into %d", ErrTransport, oid, n, len(cert))
	}
	return n, nil
}
