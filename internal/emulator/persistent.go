package emulator

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/glinharesb/trustanchor-go/internal/crypto"
	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

// persistedObject is the JSON-serializable form of an Entry.
type persistedObject struct {
	OID           uint16            `json:"oid"`
	Kind          ObjectKind        `json:"kind"`
	State         State             `json:"state"`
	DataType      uint8             `json:"data_type,omitempty"`
	Data          []byte            `json:"data,omitempty"`
	MaxSize       int               `json:"max_size"`
	PrivateKeyDER []byte            `json:"private_key_der,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	Labels        map[string]string `json:"labels,omitempty"`
}

// PersistentStore wraps MemoryStore and keeps an element image in a JSON
// file, rewritten with an atomic rename on every change. A change whose
// image write fails is undone in memory.
type PersistentStore struct {
	*MemoryStore
	path string

	// writeMu serializes mutate-and-save sequences.
	writeMu sync.Mutex
}

// NewPersistentStore opens the image at path, loading it if it exists.
func NewPersistentStore(path string) (*PersistentStore, error) {
	ps := &PersistentStore{
		MemoryStore: NewMemoryStore(),
		path:        path,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create image dir: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := ps.load(); err != nil {
			return nil, fmt.Errorf("load element image: %w", err)
		}
		slog.Info("element image loaded", "path", path, "objects", len(ps.objects))
	}

	return ps, nil
}

func (ps *PersistentStore) Put(entry *Entry) error {
	ps.writeMu.Lock()
	defer ps.writeMu.Unlock()

	if err := ps.MemoryStore.Put(entry); err != nil {
		return err
	}
	if err := ps.save(); err != nil {
		ps.MemoryStore.Delete(entry.OID)
		return err
	}
	return nil
}

func (ps *PersistentStore) UpdateState(oid optiga.OID, state State) error {
	ps.writeMu.Lock()
	defer ps.writeMu.Unlock()

	prev, err := ps.MemoryStore.stateOf(oid)
	if err != nil {
		return err
	}
	if err := ps.MemoryStore.UpdateState(oid, state); err != nil {
		return err
	}
	if err := ps.save(); err != nil {
		ps.MemoryStore.UpdateState(oid, prev)
		return err
	}
	return nil
}

func (ps *PersistentStore) Delete(oid optiga.OID) error {
	ps.writeMu.Lock()
	defer ps.writeMu.Unlock()

	entry, err := ps.MemoryStore.Get(oid)
	if err != nil {
		return err
	}
	if err := ps.MemoryStore.Delete(oid); err != nil {
		return err
	}
	if err := ps.save(); err != nil {
		ps.MemoryStore.restore(entry)
		return err
	}
	return nil
}

// save writes all objects to a temp file then atomically renames it.
func (ps *PersistentStore) save() error {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	var objects []persistedObject
	for _, e := range ps.objects {
		po := persistedObject{
			OID:       uint16(e.OID),
			Kind:      e.Kind,
			State:     e.State,
			DataType:  e.DataType,
			Data:      e.Data,
			MaxSize:   e.MaxSize,
			CreatedAt: e.CreatedAt,
			Labels:    e.Labels,
		}
		if e.PrivateKey != nil {
			der, err := crypto.MarshalPrivateKey(e.PrivateKey)
			if err != nil {
				return fmt.Errorf("marshal key %s: %w", e.OID, err)
			}
			po.PrivateKeyDER = der
		}
		objects = append(objects, po)
	}

	data, err := json.MarshalIndent(objects, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	tmpPath := ps.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("write element image: %w", err)
	}

	if err := os.Rename(tmpPath, ps.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write element image: atomic rename: %w", err)
	}

	return nil
}

// load reads objects from the image file.
func (ps *PersistentStore) load() error {
	data, err := os.ReadFile(ps.path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	var objects []persistedObject
	if err := json.Unmarshal(data, &objects); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}

	for _, po := range objects {
		e := &Entry{
			OID:       optiga.OID(po.OID),
			Kind:      po.Kind,
			State:     po.State,
			DataType:  po.DataType,
			Data:      po.Data,
			MaxSize:   po.MaxSize,
			CreatedAt: po.CreatedAt,
			Labels:    po.Labels,
		}
		if len(po.PrivateKeyDER) > 0 {
			key, err := crypto.UnmarshalPrivateKey(po.PrivateKeyDER)
			if err != nil {
				return fmt.Errorf("unmarshal key %s: %w", e.OID, err)
			}
			e.PrivateKey = key
		}
		ps.objects[e.OID] = e
	}

	return nil
}
