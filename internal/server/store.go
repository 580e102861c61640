package server

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Download is one generated file awaiting pickup.
type Download struct {
	Name        string
	ContentType string
	Data        []byte
	expiresAt   time.Time
}

// DownloadStore hands generated files from a conversion request to the
// follow-up download request. Entries are one-shot and expire after a TTL;
// nothing persists beyond that.
type DownloadStore interface {
	Put(d Download) string
	Take(id string) (Download, bool)
	Len() int
}

// MemoryStore is the in-process DownloadStore used by the web shell.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]Download
	now   func() time.Time
}

// NewMemoryStore creates a store whose entries expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:   ttl,
		items: make(map[string]Download),
		now:   time.Now,
	}
}

// Put stores a download and returns its one-shot key.
func (s *MemoryStore) Put(d Download) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	id := uuid.NewString()
	d.expiresAt = s.now().Add(s.ttl)
	s.items[id] = d
	return id
}

// Take removes and returns the download for id. ok is false when the key
// is unknown, already taken or expired.
func (s *MemoryStore) Take(id string) (Download, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	d, ok := s.items[id]
	if ok {
		delete(s.items, id)
	}
	return d, ok
}

// Len returns the number of live entries.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	return len(s.items)
}

func (s *MemoryStore) purgeLocked() {
	now := s.now()
	for id, d := range s.items {
		if now.After(d.expiresAt) {
			delete(s.items, id)
		}
	}
}
