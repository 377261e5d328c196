package optiga

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"
)

// MaxMetadataSize bounds a metadata read: tag, length and up to 256 value bytes.
const MaxMetadataSize = 258

const metadataTag = 0x20

// Metadata item tags.
const (
	TagLcsO       = 0xC0
	TagVersion    = 0xC1
	TagMaxSize    = 0xC4
	TagUsedSize   = 0xC5
	TagChange     = 0xD0
	TagRead       = 0xD1
	TagExecute    = 0xD3
	TagMetaUpdate = 0xD8
	TagAlgorithm  = 0xE0
	TagKeyUsage   = 0xE1
	TagDataType   = 0xE8
	TagResetType  = 0xF0
)

// Life cycle states reported in the LcsO item.
const (
	LcsCreation       = 0x01
	LcsInitialization = 0x03
	LcsOperational    = 0x07
	LcsTermination    = 0x0F
)

// Data object types reported in the data type item.
const (
	TypeByteString   = 0x00
	TypeTrustAnchor  = 0x11
	TypeDeviceCert   = 0x12
	TypeAutoRefState = 0x31
)

// Key object attributes.
const (
	AlgorithmECCP256 = 0x03
	KeyUsageSign     = 0x10
)

var tagOrder = []uint8{
	TagLcsO, TagVersion, TagMaxSize, TagUsedSize, TagChange, TagRead,
	TagExecute, TagMetaUpdate, TagAlgorithm, TagKeyUsage, TagDataType, TagResetType,
}

// Item is a metadata value borrowed from the buffer it was parsed from. It
// aliases that buffer and is only meaningful while the buffer is unchanged.
// A nil Item means the tag was absent.
type Item []byte

// Present reports whether the tag appeared in the metadata.
func (it Item) Present() bool {
	return it != nil
}

// Uint decodes the item as a big-endian unsigned integer. Any width up to
// eight bytes is accepted; an empty item decodes to zero.
func (it Item) Uint() (uint64, error) {
	if len(it) > 8 {
		return 0, fmt.Errorf("%w: %d-byte integer", ErrInvalidMetadata, len(it))
	}
	var v uint64
	for _, b := range it {
		v = v<<8 + uint64(b)
	}
	return v, nil
}

// UintItem encodes v as a minimal big-endian item of at least one byte.
func UintItem(v uint64) Item {
	n := 1
	for x := v >> 8; x != 0; x >>= 8 {
		n++
	}
	it := make(Item, n)
	for i := n - 1; i >= 0; i-- {
		it[i] = byte(v)
		v >>= 8
	}
	return it
}

// Metadata is a structural view over a metadata TLV blob.
type Metadata struct {
	LcsO       Item
	Version    Item
	MaxSize    Item
	UsedSize   Item
	Change     Item
	Read       Item
	Execute    Item
	MetaUpdate Item
	Algorithm  Item
	KeyUsage   Item
	DataType   Item
	ResetType  Item
}

func (m *Metadata) item(tag uint8) *Item {
	switch tag {
	case TagLcsO:
		return &m.LcsO
	case TagVersion:
		return &m.Version
	case TagMaxSize:
		return &m.MaxSize
	case TagUsedSize:
		return &m.UsedSize
	case TagChange:
		return &m.Change
	case TagRead:
		return &m.Read
	case TagExecute:
		return &m.Execute
	case TagMetaUpdate:
		return &m.MetaUpdate
	case TagAlgorithm:
		return &m.Algorithm
	case TagKeyUsage:
		return &m.KeyUsage
	case TagDataType:
		return &m.DataType
	case TagResetType:
		return &m.ResetType
	default:
		return nil
	}
}

// ParseMetadata parses a metadata TLV blob. The returned items are sub-slices
// of buf; nothing is copied.
func ParseMetadata(buf []byte) (Metadata, error) {
	var m Metadata

	in := cryptobyte.String(buf)
	var tag uint8
	if !in.ReadUint8(&tag) || tag != metadataTag {
		return Metadata{}, fmt.Errorf("%w: missing metadata tag", ErrInvalidMetadata)
	}
	var body cryptobyte.String
	if !in.ReadUint8LengthPrefixed(&body) || !in.Empty() {
		return Metadata{}, fmt.Errorf("%w: length mismatch", ErrInvalidMetadata)
	}

	for !body.Empty() {
		var t uint8
		var v cryptobyte.String
		if !body.ReadUint8(&t) || !body.ReadUint8LengthPrefixed(&v) {
			return Metadata{}, fmt.Errorf("%w: truncated item", ErrInvalidMetadata)
		}
		it := m.item(t)
		if it == nil {
			return Metadata{}, fmt.Errorf("%w: unknown tag 0x%02X", ErrInvalidMetadata, t)
		}
		if it.Present() {
			return Metadata{}, fmt.Errorf("%w: duplicate tag 0x%02X", ErrInvalidMetadata, t)
		}
		*it = Item(v[:len(v):len(v)])
	}
	return m, nil
}

// Marshal encodes the present items in canonical tag order.
func (m Metadata) Marshal() ([]byte, error) {
	var b cryptobyte.Builder
	b.AddUint8(metadataTag)
	b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
		for _, tag := range tagOrder {
			it := *m.item(tag)
			if !it.Present() {
				continue
			}
			b.AddUint8(tag)
			b.AddUint8LengthPrefixed(func(b *cryptobyte.Builder) {
				b.AddBytes(it)
			})
		}
	})
	out, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("marshal metadata: %w", err)
	}
	return out, nil
}
