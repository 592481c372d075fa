// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Authentication metrics
	IncSignup()
	IncSignin()
	IncAuthFailure(reason string) // reason: "invalid_credentials", "credentials_taken", "invalid_token"

	// Bookmark management metrics
	IncBookmarkCreated()
	IncBookmarkUpdated()
	IncBookmarkDeleted()

	// Profile cache metrics
	IncProfileCacheHit()
	IncProfileCacheMiss()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Signups            uint64
	Signins            uint64
	AuthFailures       map[string]uint64
	BookmarksCreated   uint64
	BookmarksUpdated   uint64
	BookmarksDeleted   uint64
	ProfileCacheHits   uint64
	ProfileCacheMisses uint64
}
