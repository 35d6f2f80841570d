package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_Claim(t *testing.T) {
	stored := &cachedResponse{StatusCode: 201, Body: []byte(`{"id":"b1"}`)}

	tests := []struct {
		name        string
		setup       func(*idempotencyStore)
		fingerprint string
		want        claimResult
	}{
		{
			name:        "unknown key is acquired",
			setup:       func(*idempotencyStore) {},
			fingerprint: "fp-1",
			want:        claimAcquired,
		},
		{
			name: "completed key replays",
			setup: func(s *idempotencyStore) {
				s.claim("admin:k", "fp-1")
				s.complete("admin:k", stored)
			},
			fingerprint: "fp-1",
			want:        claimReplay,
		},
		{
			name: "running key is in flight",
			setup: func(s *idempotencyStore) {
				s.claim("admin:k", "fp-1")
			},
			fingerprint: "fp-1",
			want:        claimInFlight,
		},
		{
			name: "different request is a mismatch",
			setup: func(s *idempotencyStore) {
				s.claim("admin:k", "fp-1")
				s.complete("admin:k", stored)
			},
			fingerprint: "fp-2",
			want:        claimMismatch,
		},
		{
			name: "released key is acquired again",
			setup: func(s *idempotencyStore) {
				s.claim("admin:k", "fp-1")
				s.release("admin:k")
			},
			fingerprint: "fp-2",
			want:        claimAcquired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newIdempotencyStore(time.Minute, 10)
			tt.setup(store)

			resp, got := store.claim("admin:k", tt.fingerprint)

			assert.Equal(t, tt.want, got)
			if tt.want == claimReplay {
				assert.Equal(t, stored, resp)
			} else {
				assert.Nil(t, resp)
			}
		})
	}
}

func TestIdempotencyStore_Expiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newIdempotencyStore(time.Minute, 10)
	store.now = func() time.Time { return now }

	store.claim("k", "fp-1")
	store.complete("k", &cachedResponse{StatusCode: 200})

	now = now.Add(2 * time.Minute)
	_, got := store.claim("k", "fp-2")

	assert.Equal(t, claimAcquired, got, "expired key is free for another request")
	assert.Equal(t, 1, store.Len())
}

func TestIdempotencyStore_Bounded(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newIdempotencyStore(time.Hour, 2)
	store.now = func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	store.claim("first", "fp")
	store.complete("first", &cachedResponse{StatusCode: 200})
	store.claim("running", "fp")
	store.claim("third", "fp")

	require.Equal(t, 2, store.Len())
	_, got := store.claim("running", "fp")
	assert.Equal(t, claimInFlight, got, "in-flight keys survive eviction")
	_, got = store.claim("first", "fp")
	assert.Equal(t, claimAcquired, got, "oldest completed key was evicted")
}

func TestIdempotencyStore_ReleaseKeepsCompleted(t *testing.T) {
	store := newIdempotencyStore(time.Minute, 10)
	store.claim("k", "fp")
	store.complete("k", &cachedResponse{StatusCode: 200})

	store.release("k")

	_, got := store.claim("k", "fp")
	assert.Equal(t, claimReplay, got)
}
