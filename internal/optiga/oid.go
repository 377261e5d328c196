package optiga

import (
	"fmt"
	"strconv"
	"strings"
)

// OID addresses a data object in the element's object store.
type OID uint16

const (
	keyBase  OID = 0xE0F0
	certBase OID = 0xE0E0
)

// Provisioned slot counts. Slot indices at or above these are not backed by
// an object on the element.
const (
	MaxKeySlots  = 4
	MaxCertSlots = 4
)

// KeyOID returns the private key object for slot index.
func KeyOID(index uint8) OID {
	return keyBase + OID(index)
}

// CertOID returns the certificate object for slot index.
func CertOID(index uint8) OID {
	return certBase + OID(index)
}

func (o OID) String() string {
	return fmt.Sprintf("0x%04X", uint16(o))
}

// Bytes returns the identifier in big-endian order as it appears in commands.
func (o OID) Bytes() []byte {
	return []byte{byte(o >> 8), byte(o)}
}

// ParseOID reads an identifier written as hex, with or without a 0x prefix.
func ParseOID(s string) (OID, error) {
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("parse object id %q: %w", s, err)
	}
	return OID(v), nil
}
