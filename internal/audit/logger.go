package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	StatusOK    = "OK"
	StatusError = "ERROR"
)

// Entry records one trust-anchor operation. Object names the data object
// touched, such as the key OID a challenge was signed with.
type Entry struct {
	ID          string            `json:"id"`
	Timestamp   time.Time         `json:"timestamp"`
	Operation   string            `json:"operation"`
	Object      string            `json:"object,omitempty"`
	Status      string            `json:"status"`
	PeerAddress string            `json:"peer_address,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Filter selects entries in Query. Zero fields match everything.
type Filter struct {
	Object    string
	Operation string
	Start     time.Time
	End       time.Time
	Limit     int
}

func (f Filter) match(e Entry) bool {
	if f.Object != "" && e.Object != f.Object {
		return false
	}
	if f.Operation != "" && e.Operation != f.Operation {
		return false
	}
	if !f.Start.IsZero() && e.Timestamp.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && e.Timestamp.After(f.End) {
		return false
	}
	return true
}

// Subscriber receives audit entries via a channel.
type Subscriber struct {
	C  chan Entry
	id string
}

// Logger is an async audit logger that decouples the critical path from log writes.
type Logger struct {
	entries chan Entry
	out     io.Writer
	retain  int

	mu          sync.RWMutex
	subscribers map[string]*Subscriber
	store       []Entry

	done chan struct{}
}

// NewLogger creates a logger with the given buffer size and output writer.
// It keeps at most 16 times bufferSize entries for Query.
func NewLogger(bufferSize int, out io.Writer) *Logger {
	l := &Logger{
		entries:     make(chan Entry, bufferSize),
		out:         out,
		retain:      16 * max(bufferSize, 1),
		subscribers: make(map[string]*Subscriber),
		done:        make(chan struct{}),
	}
	go l.processLoop()
	return l
}

// Log sends an entry to the async processing pipeline. Non-blocking if buffer has capacity.
func (l *Logger) Log(operation, object, status, peerAddr string, metadata map[string]string) {
	entry := Entry{
		ID:          uuid.NewString(),
		Timestamp:   time.Now(),
		Operation:   operation,
		Object:      object,
		Status:      status,
		PeerAddress: peerAddr,
		Metadata:    metadata,
	}

	select {
	case l.entries <- entry:
	default:
		slog.Warn("audit log buffer full, dropping entry", "operation", operation, "object", object)
	}
}

// Subscribe creates a new subscriber that receives entries via a buffered channel.
func (l *Logger) Subscribe() *Subscriber {
	l.mu.Lock()
	defer l.mu.Unlock()

	sub := &Subscriber{
		C:  make(chan Entry, 64),
		id: uuid.NewString(),
	}
	l.subscribers[sub.id] = sub
	return sub
}

// Unsubscribe removes a subscriber and closes its channel. Calling it twice
// is a no-op.
func (l *Logger) Unsubscribe(sub *Subscriber) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.subscribers[sub.id]; !ok {
		return
	}
	delete(l.subscribers, sub.id)
	close(sub.C)
}

// Query returns stored entries matching f, newest first.
func (l *Logger) Query(f Filter) []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var results []Entry
	for i := len(l.store) - 1; i >= 0; i-- {
		e := l.store[i]
		if !f.match(e) {
			continue
		}
		results = append(results, e)
		if f.Limit > 0 && len(results) >= f.Limit {
			break
		}
	}
	return results
}

// Close stops the processing loop and waits for it to finish.
func (l *Logger) Close() {
	close(l.entries)
	<-l.done
}

func (l *Logger) processLoop() {
	defer close(l.done)

	for entry := range l.entries {
		l.mu.Lock()
		l.store = append(l.store, entry)
		if len(l.store) > l.retain {
			l.store = append(l.store[:0], l.store[len(l.store)-l.retain:]...)
		}
		l.mu.Unlock()

		if l.out != nil {
			data, err := json.Marshal(entry)
			if err != nil {
				slog.Error("audit marshal", "error", err)
				continue
			}
			fmt.Fprintf(l.out, "%s\n", data)
		}

		// Fan-out to subscribers (non-blocking)
		l.mu.RLock()
		for _, sub := range l.subscribers {
			select {
			case sub.C <- entry:
			default:
				// subscriber too slow, drop
			}
		}
		l.mu.RUnlock()
	}
}
