package emulator

import (
	"crypto/ecdsa"
	"errors"
	"time"

	"github.com/glinharesb/trustanchor-go/internal/optiga"
)

var (
	ErrObjectExists = errors.New("data object already exists")
	ErrTerminated   = errors.New("data object is terminated")
)

// DefaultMaxSize is the capacity of a data object created without one.
const DefaultMaxSize = 1728

// ObjectKind distinguishes readable data objects from key objects.
type ObjectKind int

const (
	KindData ObjectKind = iota + 1
	KindKey
)

func (k ObjectKind) String() string {
	switch k {
	case KindData:
		return "DATA"
	case KindKey:
		return "KEY"
	default:
		return "UNKNOWN"
	}
}

// State is the object's life cycle state as reported in its LcsO item.
type State uint8

const (
	StateCreation       State = optiga.LcsCreation
	StateInitialization State = optiga.LcsInitialization
	StateOperational    State = optiga.LcsOperational
	StateTermination    State = optiga.LcsTermination
)

func (s State) String() string {
	switch s {
	case StateCreation:
		return "CREATION"
	case StateInitialization:
		return "INITIALIZATION"
	case StateOperational:
		return "OPERATIONAL"
	case StateTermination:
		return "TERMINATION"
	default:
		return "UNKNOWN"
	}
}

// Entry is one object held by the emulated element.
type Entry struct {
	OID        optiga.OID
	Kind       ObjectKind
	State      State
	DataType   uint8
	Data       []byte
	MaxSize    int
	PrivateKey *ecdsa.PrivateKey
	CreatedAt  time.Time
	Labels     map[string]string
}

// Store defines the emulated object store.
type Store interface {
	Put(entry *Entry) error
	Get(oid optiga.OID) (*Entry, error)
	List(kind ObjectKind) ([]*Entry, error)
	UpdateState(oid optiga.OID, state State) error
	Delete(oid optiga.OID) error
}
