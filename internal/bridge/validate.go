// internal/bridge/validate.go
package bridge

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValidationError marks caller-supplied input that failed a precondition.
// It never crosses the adapter boundary; the adapter converts it into a
// modern-shaped error response.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

func validationf(format string, args ...any) ValidationError {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

const (
	minPriority = 1
	maxPriority = 5
)

// actionTable maps modern job types to legacy actions. Types absent from
// the table pass through unchanged.
var actionTable = map[string]string{
	"data_processing": "process_data",
	"classification":  "classify",
	"summarization":   "summarize",
	"ingestion":       "ingest",
}

// requireKeys reports every missing key, not just the first one found.
func requireKeys(mapping map[string]any, keys []string, ctx string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := mapping[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return validationf("missing required keys in %s: %s", ctx, strings.Join(missing, ", "))
	}
	return nil
}

// coercePriority converts int-like values and clamps the result to the
// inclusive range [1,5]. Booleans are rejected outright so true/false never
// sneak in as 1/0; out-of-range integers saturate rather than fail.
func coercePriority(value any) (int, error) {
	var iv int
	switch v := value.(type) {
	case bool:
		return 0, validationf("priority must be an integer %d..%d, not boolean", minPriority, maxPriority)
	case int:
		iv = v
	case int32:
		iv = int(v)
	case int64:
		iv = int(v)
	case float32:
		iv = int(v)
	case float64:
		iv = int(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, validationf("priority must be an integer %d..%d", minPriority, maxPriority)
		}
		iv = int(f)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, validationf("priority must be an integer %d..%d", minPriority, maxPriority)
		}
		iv = n
	default:
		return 0, validationf("priority must be an integer %d..%d", minPriority, maxPriority)
	}
	if iv < minPriority {
		iv = minPriority
	}
	if iv > maxPriority {
		iv = maxPriority
	}
	return iv, nil
}

// coerceAction maps a modern job type to its legacy action. Unmapped types
// pass through as-is; trimming applies only to the emptiness check.
func coerceAction(jobType any) (string, error) {
	s, ok := jobType.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", validationf("job type must be a non-empty string")
	}
	if action, ok := actionTable[s]; ok {
		return action, nil
	}
	return s, nil
}

// normalizePayload ensures the payload is a mapping. Absent payloads become
// an empty map; string payloads must decode to a JSON object.
func normalizePayload(payload any) (map[string]any, error) {
	switch v := payload.(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return map[string]any{}, nil
		}
		var parsed map[string]any
		if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
			return nil, validationf("payload string must decode to a JSON object")
		}
		if parsed == nil {
			return nil, validationf("payload string must decode to a JSON object")
		}
		return parsed, nil
	default:
		return nil, validationf("payload must be a map or a JSON object string")
	}
}

// stringify renders a candidate job id as a string. nil renders empty so it
// fails the non-empty check downstream.
func stringify(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}
