package emulator

import (
	"fmt"
	"sync"

	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

// MemoryStore is a thread-safe in-memory object store backed by sync.RWMutex.
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[optiga.OID]*Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		objects: make(map[optiga.OID]*Entry),
	}
}

func (m *MemoryStore) Put(entry *Entry) error {
	if entry.Kind == KindKey && entry.PrivateKey == nil {
		return fmt.Errorf("key object %s has no private key", entry.OID)
	}
	if entry.MaxSize == 0 {
		entry.MaxSize = max(DefaultMaxSize, len(entry.Data))
	}
	if len(entry.Data) > entry.MaxSize {
		return fmt.Errorf("object %s: %d bytes exceeds max size %d", entry.OID, len(entry.Data), entry.MaxSize)
	}
	if entry.State == 0 {
		entry.State = StateOperational
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.objects[entry.OID]; exists {
		return fmt.Errorf("%w: %s", ErrObjectExists, entry.OID)
	}
	m.objects[entry.OID] = entry
	return nil
}

func (m *MemoryStore) Get(oid optiga.OID) (*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.objects[oid]
	if !ok {
		return nil, optiga.ErrObjectNotFound
	}
	return entry, nil
}

func (m *MemoryStore) List(kind ObjectKind) ([]*Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*Entry
	for _, entry := range m.objects {
		if kind == 0 || entry.Kind == kind {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (m *MemoryStore) UpdateState(oid optiga.OID, state State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.objects[oid]
	if !ok {
		return optiga.ErrObjectNotFound
	}
	entry.State = state
	return nil
}

func (m *MemoryStore) Delete(oid optiga.OID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.objects[oid]; !ok {
		return optiga.ErrObjectNotFound
	}
	delete(m.objects, oid)
	return nil
}

func (m *MemoryStore) stateOf(oid optiga.OID) (State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.objects[oid]
	if !ok {
		return 0, optiga.ErrObjectNotFound
	}
	return entry.State, nil
}

// restore puts back an entry removed by Delete.
func (m *MemoryStore) restore(entry *Entry) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[entry.OID] = entry
}
