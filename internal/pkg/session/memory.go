package session

import (
	"context"
	"sync"
	"time"

	"github.com/ougirez/ehrenamt/internal/pkg/constants"
)

type memoryEntry struct {
	region    string
	expiresAt time.Time
}

type MemoryStore struct {
	ttl       time.Duration
	now       func() time.Time
	entries   map[string]memoryEntry
	entriesMx sync.Mutex
}

// NewMemoryStore keeps sessions in process. A zero ttl never expires.
func NewMemoryStore(ttl time.Duration, now func() time.Time) *MemoryStore {
	return &MemoryStore{ttl: ttl, now: now, entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) expiry() time.Time {
	if s.ttl <= 0 {
		return time.Time{}
	}
	return s.now().Add(s.ttl)
}

func (s *MemoryStore) lookup(id string) (memoryEntry, bool) {
	e, ok := s.entries[id]
	if !ok {
		return e, false
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, id)
		return e, false
	}
	return e, true
}

func (s *MemoryStore) Create(_ context.Context, id, region string) error {
	s.entriesMx.Lock()
	defer s.entriesMx.Unlock()

	s.entries[id] = memoryEntry{region: region, expiresAt: s.expiry()}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (string, error) {
	s.entriesMx.Lock()
	defer s.entriesMx.Unlock()

	e, ok := s.lookup(id)
	if !ok {
		return "", constants.ErrSessionNotFound
	}
	return e.region, nil
}

// Put overwrites the region and refreshes the session's expiry.
func (s *MemoryStore) Put(_ context.Context, id, region string) error {
	s.entriesMx.Lock()
	defer s.entriesMx.Unlock()

	if _, ok := s.lookup(id); !ok {
		return constants.ErrSessionNotFound
	}
	s.entries[id] = memoryEntry{region: region, expiresAt: s.expiry()}
	return nil
}
