// Package history keeps a bounded, newest-first record of recent lookups.
package history

import (
	"sync"

	"github.com/heartmarshall/lexibridge/internal/domain"
)

// DefaultCapacity is the number of records kept when no capacity is given.
const DefaultCapacity = 50

// Buffer is a fixed-capacity ring of history records. Once full, each new
// record overwrites the oldest one. It is safe for concurrent use.
type Buffer struct {
	mu    sync.Mutex
	ring  []domain.HistoryRecord
	head  int // index of the newest record
	count int
}

// NewBuffer creates a Buffer holding at most capacity records.
// A non-positive capacity falls back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		ring: make([]domain.HistoryRecord, capacity),
		head: -1,
	}
}

// Record inserts rec as the newest entry, evicting the oldest when full.
func (b *Buffer) Record(rec domain.HistoryRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.head = (b.head + 1) % len(b.ring)
	b.ring[b.head] = rec.Clone()
	if b.count < len(b.ring) {
		b.count++
	}
}

// Recent returns a deep copy of the buffer contents, newest first.
func (b *Buffer) Recent() []domain.HistoryRecord {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]domain.HistoryRecord, b.count)
	for i := range b.count {
		idx := (b.head - i + len(b.ring)) % len(b.ring)
		out[i] = b.ring[idx].Clone()
	}
	return out
}

// Len returns the number of records currently held.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

// Cap returns the maximum number of records held.
func (b *Buffer) Cap() int { return len(b.ring) }
