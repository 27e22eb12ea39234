// internal/bridge/validate_test.go
package bridge

import (
	"errors"
	"strings"
	"testing"
)

func TestCoercePriorityClamps(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  int
	}{
		{"below range", 0, 1},
		{"above range", 99, 5},
		{"in range", 3, 3},
		{"integer string", "3", 3},
		{"padded string", " 4 ", 4},
		{"float truncates", 3.7, 3},
		{"int64", int64(2), 2},
	}
	for _, tc := range cases {
		got, err := coercePriority(tc.input)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %d want %d", tc.name, got, tc.want)
		}
	}
}

func TestCoercePriorityRejectsBool(t *testing.T) {
	_, err := coercePriority(true)
	if err == nil {
		t.Fatal("expected error for boolean priority")
	}
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestCoercePriorityRejectsNonNumeric(t *testing.T) {
	for _, input := range []any{"abc", nil, []any{1}, map[string]any{}} {
		if _, err := coercePriority(input); err == nil {
			t.Fatalf("expected error for %#v", input)
		}
	}
}

func TestCoerceActionMapsKnownTypes(t *testing.T) {
	cases := map[string]string{
		"data_processing": "process_data",
		"classification":  "classify",
		"summarization":   "summarize",
		"ingestion":       "ingest",
	}
	for jobType, want := range cases {
		got, err := coerceAction(jobType)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", jobType, err)
		}
		if got != want {
			t.Fatalf("%s: got %s want %s", jobType, got, want)
		}
	}
}

func TestCoerceActionPassesUnknownThrough(t *testing.T) {
	got, err := coerceAction("unknown_type")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "unknown_type" {
		t.Fatalf("expected pass-through, got %s", got)
	}
}

func TestCoerceActionRejectsEmptyAndNonString(t *testing.T) {
	for _, input := range []any{"", "   ", nil, 5} {
		if _, err := coerceAction(input); err == nil {
			t.Fatalf("expected error for %#v", input)
		}
	}
}

func TestRequireKeysListsAllMissing(t *testing.T) {
	err := requireKeys(map[string]any{"id": "x"}, []string{"id", "type", "priority"}, "job")
	if err == nil {
		t.Fatal("expected error for missing keys")
	}
	msg := err.Error()
	if !strings.Contains(msg, "type") || !strings.Contains(msg, "priority") {
		t.Fatalf("expected every missing key in message, got %q", msg)
	}
}

func TestRequireKeysAllPresent(t *testing.T) {
	err := requireKeys(map[string]any{"id": "x", "type": "y", "priority": 1}, []string{"id", "type", "priority"}, "job")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalizePayload(t *testing.T) {
	got, err := normalizePayload(nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("nil payload: got %#v, %v", got, err)
	}

	original := map[string]any{"a": 1}
	got, err = normalizePayload(original)
	if err != nil {
		t.Fatalf("map payload: unexpected error: %v", err)
	}
	if got["a"] != 1 {
		t.Fatalf("map payload not preserved: %#v", got)
	}

	got, err = normalizePayload(`{"a":1}`)
	if err != nil {
		t.Fatalf("json payload: unexpected error: %v", err)
	}
	if got["a"] != 1.0 {
		t.Fatalf("json payload not parsed: %#v", got)
	}

	got, err = normalizePayload("   ")
	if err != nil || len(got) != 0 {
		t.Fatalf("blank payload: got %#v, %v", got, err)
	}
}

func TestNormalizePayloadRejectsNonObjects(t *testing.T) {
	for _, input := range []any{"[1,2]", `"scalar"`, "null", "not json", 123, true} {
		if _, err := normalizePayload(input); err == nil {
			t.Fatalf("expected error for %#v", input)
		}
	}
}
