// pkg/schema/types.go
package schema

// Modern job statuses resolved from legacy status strings.
const (
	StatusRunning   = "RUNNING"
	StatusCompleted = "COMPLETED"
	StatusFailed    = "FAILED"
	StatusUnknown   = "UNKNOWN"
)

// Response is the modern-shaped result returned by every bridge operation.
// All paths, including error paths, produce this shape.
type Response struct {
	Success     bool   `json:"success"`
	Code        int    `json:"code"`
	Data        Data   `json:"data"`
	CreatedAt   string `json:"created_at"`
	CompletedAt string `json:"completed_at"`
}

// Data carries the per-operation payload. Job executions fill Result and
// Metrics; status queries fill Status and, on failure, Error.
type Data struct {
	JobID   string   `json:"job_id"`
	Result  string   `json:"result,omitempty"`
	Status  string   `json:"status,omitempty"`
	Error   string   `json:"error,omitempty"`
	Metrics *Metrics `json:"metrics,omitempty"`
}

// Metrics reports execution cost. The simulated legacy backend supplies no
// real numbers; a real integration must source these from it.
type Metrics struct {
	DurationMS int64   `json:"duration_ms"`
	CPUUsage   float64 `json:"cpu_usage"`
}
