package handler

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/bookmarkd/bookmarkd/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "bookmarkd_signups_total %d\n", snap.Signups)
	writeMetric(w, "bookmarkd_signins_total %d\n", snap.Signins)

	// Stable label order so scrapes diff cleanly.
	reasons := make([]string, 0, len(snap.AuthFailures))
	for reason := range snap.AuthFailures {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		writeMetric(w, "bookmarkd_auth_failures_total{reason=%q} %d\n", reason, snap.AuthFailures[reason])
	}

	writeMetric(w, "bookmarkd_bookmarks_created_total %d\n", snap.BookmarksCreated)
	writeMetric(w, "bookmarkd_bookmarks_updated_total %d\n", snap.BookmarksUpdated)
	writeMetric(w, "bookmarkd_bookmarks_deleted_total %d\n", snap.BookmarksDeleted)

	writeMetric(w, "bookmarkd_profile_cache_hits_total %d\n", snap.ProfileCacheHits)
	writeMetric(w, "bookmarkd_profile_cache_misses_total %d\n", snap.ProfileCacheMisses)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
