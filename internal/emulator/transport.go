package emulator

import (
	"fmt"
	"sync"

	"github.com/glinharesb/trustanchor-go/internal/crypto"
	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

// Transport answers element commands from a Store. Like the chip it stands
// in for, it executes one command at a time.
type Transport struct {
	mu    sync.Mutex
	store Store
}

func NewTransport(store Store) *Transport {
	return &Transport{store: store}
}

func (t *Transport) CalcSign(oid optiga.OID, digest []byte, sig []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, err := t.lookup(oid)
	if err != nil {
		return 0, err
	}
	if e.Kind != KindKey {
		return 0, fmt.Errorf("calc sign: %s is not a key object", oid)
	}

	raw, err := crypto.SignDigest(e.PrivateKey, digest)
	if err != nil {
		return 0, fmt.Errorf("calc sign %s: %w", oid, err)
	}
	payload, err := crypto.EncodeIntegers(raw[:])
	if err != nil {
		return 0, fmt.Errorf("calc sign %s: %w", oid, err)
	}
	if len(payload) > len(sig) {
		return 0, optiga.ErrResponseTooLarge
	}
	return copy(sig, payload), nil
}

func (t *Transport) GetDataObject(oid optiga.OID, metadataOnly bool, buf []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, err := t.store.Get(oid)
	if err != nil {
		return 0, err
	}

	var out []byte
	if metadataOnly {
		if out, err = metadataFor(e); err != nil {
			return 0, err
		}
	} else {
		if e.Kind == KindKey {
			return 0, fmt.Errorf("get data object: %s is a key object", oid)
		}
		if e.State == StateTermination {
			return 0, fmt.Errorf("%w: %s", ErrTerminated, oid)
		}
		out = e.Data
	}

	if len(out) > len(buf) {
		return 0, optiga.ErrResponseTooLarge
	}
	return copy(buf, out), nil
}

func (t *Transport) lookup(oid optiga.OID) (*Entry, error) {
	e, err := t.store.Get(oid)
	if err != nil {
		return nil, err
	}
	if e.State == StateTermination {
		return nil, fmt.Errorf("%w: %s", ErrTerminated, oid)
	}
	return e, nil
}

func metadataFor(e *Entry) ([]byte, error) {
	md := optiga.Metadata{
		LcsO:    optiga.Item{byte(e.State)},
		MaxSize: optiga.UintItem(uint64(e.MaxSize)),
		Change:  optiga.Item{0xFF},
		Read:    optiga.Item{0x00},
	}
	switch e.Kind {
	case KindKey:
		md.Algorithm = optiga.Item{optiga.AlgorithmECCP256}
		md.KeyUsage = optiga.Item{optiga.KeyUsageSign}
		md.Execute = optiga.Item{0x00}
	default:
		md.UsedSize = optiga.UintItem(uint64(len(e.Data)))
		md.DataType = optiga.Item{e.DataType}
	}
	return md.Marshal()
}
