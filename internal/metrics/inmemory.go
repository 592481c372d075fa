package metrics

import (
	"sync"
	"sync/atomic"
)

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	signups            uint64
	signins            uint64
	bookmarksCreated   uint64
	bookmarksUpdated   uint64
	bookmarksDeleted   uint64
	profileCacheHits   uint64
	profileCacheMisses uint64

	mu           sync.Mutex
	authFailures map[string]uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		authFailures: make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	failures := make(map[string]uint64, len(m.authFailures))
	for reason, count := range m.authFailures {
		failures[reason] = count
	}
	m.mu.Unlock()

	return Snapshot{
		Signups:            atomic.LoadUint64(&m.signups),
		Signins:            atomic.LoadUint64(&m.signins),
		AuthFailures:       failures,
		BookmarksCreated:   atomic.LoadUint64(&m.bookmarksCreated),
		BookmarksUpdated:   atomic.LoadUint64(&m.bookmarksUpdated),
		BookmarksDeleted:   atomic.LoadUint64(&m.bookmarksDeleted),
		ProfileCacheHits:   atomic.LoadUint64(&m.profileCacheHits),
		ProfileCacheMisses: atomic.LoadUint64(&m.profileCacheMisses),
	}
}

// IncSignup increments the signup counter.
func (m *InMemoryRecorder) IncSignup() {
	atomic.AddUint64(&m.signups, 1)
}

// IncSignin increments the signin counter.
func (m *InMemoryRecorder) IncSignin() {
	atomic.AddUint64(&m.signins, 1)
}

// IncAuthFailure increments the failure counter for the given reason.
func (m *InMemoryRecorder) IncAuthFailure(reason string) {
	m.mu.Lock()
	m.authFailures[reason]++
	m.mu.Unlock()
}

// IncBookmarkCreated increments the bookmark created counter.
func (m *InMemoryRecorder) IncBookmarkCreated() {
	atomic.AddUint64(&m.bookmarksCreated, 1)
}

// IncBookmarkUpdated increments the bookmark updated counter.
func (m *InMemoryRecorder) IncBookmarkUpdated() {
	atomic.AddUint64(&m.bookmarksUpdated, 1)
}

// IncBookmarkDeleted increments the bookmark deleted counter.
func (m *InMemoryRecorder) IncBookmarkDeleted() {
	atomic.AddUint64(&m.bookmarksDeleted, 1)
}

// IncProfileCacheHit increments the profile cache hit counter.
func (m *InMemoryRecorder) IncProfileCacheHit() {
	atomic.AddUint64(&m.profileCacheHits, 1)
}

// IncProfileCacheMiss increments the profile cache miss counter.
func (m *InMemoryRecorder) IncProfileCacheMiss() {
	atomic.AddUint64(&m.profileCacheMisses, 1)
}
