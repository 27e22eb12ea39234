// internal/bridge/fallback_test.go
package bridge

import (
	"strings"
	"testing"
)

func TestSafeActExtractsJobID(t *testing.T) {
	adapter := New(&stubAPI{}, testLogger())

	resp := adapter.SafeAct(map[string]any{"id": "  job-9  "}, "boom", "")
	if resp.Data.JobID != "job-9" {
		t.Fatalf("expected trimmed id, got %q", resp.Data.JobID)
	}
}

func TestSafeActDefaultsToUnknown(t *testing.T) {
	adapter := New(&stubAPI{}, testLogger())

	for _, job := range []any{nil, "garbage", 12, map[string]any{}, map[string]any{"id": ""}, map[string]any{"id": "   "}} {
		resp := adapter.SafeAct(job, "boom", "")
		if resp.Data.JobID != "unknown" {
			t.Fatalf("job %#v: expected unknown id, got %q", job, resp.Data.JobID)
		}
	}
}

func TestSafeActShape(t *testing.T) {
	adapter := New(&stubAPI{}, testLogger())

	resp := adapter.SafeAct(nil, "something failed", "")

	if resp.Success || resp.Code != 500 {
		t.Fatalf("unexpected outcome: %+v", resp)
	}
	if !strings.HasPrefix(resp.Data.Result, "Error: ") || !strings.Contains(resp.Data.Result, "something failed") {
		t.Fatalf("unexpected result: %q", resp.Data.Result)
	}
	if resp.Data.Metrics == nil || resp.Data.Metrics.DurationMS != 0 || resp.Data.Metrics.CPUUsage != 0 {
		t.Fatalf("expected zero-valued metrics: %+v", resp.Data.Metrics)
	}
	if resp.CreatedAt == "" || resp.CompletedAt == "" {
		t.Fatalf("expected timestamps on every path: %+v", resp)
	}
}

func TestSafeActPreservesCreatedAt(t *testing.T) {
	adapter := New(&stubAPI{}, testLogger())

	resp := adapter.SafeAct(nil, "boom", "2025-10-01T08:00:00Z")
	if resp.CreatedAt != "2025-10-01T08:00:00Z" {
		t.Fatalf("expected supplied created_at preserved, got %s", resp.CreatedAt)
	}
}
