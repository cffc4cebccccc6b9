package metrics

import (
	"strings"
	"testing"
)

func TestRenderIncludesCounters(t *testing.T) {
	IncSchoolCreated()
	IncSchoolListed()
	ObserveImageUploadDurationMs(120)

	out := Render()
	for _, name := range []string{
		"school_created_total",
		"school_create_failed_total",
		"school_list_total",
		"image_upload_duration_ms_bucket",
		"image_upload_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected metric %s in output:\n%s", name, out)
		}
	}
}

func TestHistogramCumulativeBuckets(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 2 {
		t.Fatalf("unexpected bucket counts: %v", snap.counts)
	}
	if snap.sum != 555 {
		t.Fatalf("expected sum 555, got %f", snap.sum)
	}
}
