// internal/bridge/fallback.go
package bridge

import (
	"strings"

	"github.com/tendant/agent-bridge/pkg/schema"
)

// SafeAct builds a conservative modern-shaped error response from whatever
// input is on hand. It accepts any job value, including malformed ones,
// extracts the job id on a best-effort basis, and never fails. createdAt is
// preserved when supplied so traces keep their original entry time.
func (a *Adapter) SafeAct(job any, errorMsg, createdAt string) schema.Response {
	jobID := "unknown"
	if m, ok := job.(map[string]any); ok {
		if id := strings.TrimSpace(stringify(m["id"])); id != "" {
			jobID = id
		}
	}
	if createdAt == "" {
		createdAt = nowISO()
	}
	return schema.Response{
		Success: false,
		Code:    500,
		Data: schema.Data{
			JobID:   jobID,
			Result:  "Error: " + errorMsg,
			Metrics: &schema.Metrics{},
		},
		CreatedAt:   createdAt,
		CompletedAt: nowISO(),
	}
}
