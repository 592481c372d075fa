package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncSignup is a no-op.
func (n *NoopRecorder) IncSignup() {}

// IncSignin is a no-op.
func (n *NoopRecorder) IncSignin() {}

// IncAuthFailure is a no-op.
func (n *NoopRecorder) IncAuthFailure(reason string) {}

// IncBookmarkCreated is a no-op.
func (n *NoopRecorder) IncBookmarkCreated() {}

// IncBookmarkUpdated is a no-op.
func (n *NoopRecorder) IncBookmarkUpdated() {}

// IncBookmarkDeleted is a no-op.
func (n *NoopRecorder) IncBookmarkDeleted() {}

// IncProfileCacheHit is a no-op.
func (n *NoopRecorder) IncProfileCacheHit() {}

// IncProfileCacheMiss is a no-op.
func (n *NoopRecorder) IncProfileCacheMiss() {}
