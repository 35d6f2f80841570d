package middleware

import (
	"net/http"
	"sync"
	"time"
)

// claimResult is the outcome of reserving an Idempotency-Key.
type claimResult int

const (
	// claimAcquired means the caller owns the key and must complete or release it.
	claimAcquired claimResult = iota
	// claimReplay means a stored response exists for the same request.
	claimReplay
	// claimInFlight means another request holding the key has not finished.
	claimInFlight
	// claimMismatch means the key was used for a different request.
	claimMismatch
)

// cachedResponse is a stored handler response.
type cachedResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

type idempotencyEntry struct {
	fingerprint string
	response    *cachedResponse // nil while in flight
	storedAt    time.Time
}

// idempotencyStore tracks keys by scope. Entries expire after ttl and the
// store never holds more than maxEntries keys.
type idempotencyStore struct {
	mu         sync.Mutex
	entries    map[string]*idempotencyEntry
	ttl        time.Duration
	maxEntries int
	lastSweep  time.Time
	now        func() time.Time
}

func newIdempotencyStore(ttl time.Duration, maxEntries int) *idempotencyStore {
	return &idempotencyStore{
		entries:    make(map[string]*idempotencyEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// claim reserves key for the request identified by fingerprint.
func (s *idempotencyStore) claim(key, fingerprint string) (*cachedResponse, claimResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) >= s.ttl {
		s.sweepLocked(now)
	}

	if entry, ok := s.entries[key]; ok && !s.expired(entry, now) {
		switch {
		case entry.fingerprint != fingerprint:
			return nil, claimMismatch
		case entry.response == nil:
			return nil, claimInFlight
		default:
			return entry.response, claimReplay
		}
	}

	if s.maxEntries > 0 && len(s.entries) >= s.maxEntries {
		s.sweepLocked(now)
		if len(s.entries) >= s.maxEntries {
			s.evictOldestLocked()
		}
	}

	s.entries[key] = &idempotencyEntry{fingerprint: fingerprint, storedAt: now}
	return nil, claimAcquired
}

// complete stores the response of an acquired key.
func (s *idempotencyStore) complete(key string, resp *cachedResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok {
		entry.response = resp
		entry.storedAt = s.now()
	}
}

// release drops an acquired key so the client can retry it.
func (s *idempotencyStore) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, ok := s.entries[key]; ok && entry.response == nil {
		delete(s.entries, key)
	}
}

// Len returns the number of tracked keys.
func (s *idempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *idempotencyStore) expired(entry *idempotencyEntry, now time.Time) bool {
	return now.Sub(entry.storedAt) > s.ttl
}

func (s *idempotencyStore) sweepLocked(now time.Time) {
	for key, entry := range s.entries {
		if s.expired(entry, now) {
			delete(s.entries, key)
		}
	}
	s.lastSweep = now
}

// evictOldestLocked drops the oldest completed entry. In-flight keys are
// kept; when every key is in flight the oldest of those goes instead.
func (s *idempotencyStore) evictOldestLocked() {
	var (
		oldestKey string
		oldest    *idempotencyEntry
	)
	for key, entry := range s.entries {
		if oldest != nil && (oldest.response != nil) && entry.response == nil {
			continue
		}
		if oldest == nil ||
			(entry.response != nil && oldest.response == nil) ||
			entry.storedAt.Before(oldest.storedAt) {
			oldestKey, oldest = key, entry
		}
	}
	if oldest != nil {
		delete(s.entries, oldestKey)
	}
}
