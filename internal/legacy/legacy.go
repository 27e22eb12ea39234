// internal/legacy/legacy.go

// Package legacy defines the capability surface of the old-style agent
// service the bridge delegates to, plus an in-process simulator of it.
package legacy

import "context"

// Params is the flat request shape the legacy service understands.
type Params struct {
	Action   string         `json:"action"`
	Priority int            `json:"priority"`
	Data     map[string]any `json:"data"`
}

// Result is the primitive-field response the legacy service returns.
// A result code of 200 means success by legacy convention.
type Result struct {
	Status     string `json:"status"`
	ResultCode int    `json:"result_code"`
	Output     string `json:"output"`
	Timestamp  string `json:"timestamp"`
}

// API is the capability set the bridge consumes. Any conforming
// implementation, simulated or network-backed, can stand behind it.
type API interface {
	// ExecuteTask runs a task in legacy format.
	ExecuteTask(ctx context.Context, taskID string, params Params) (Result, error)

	// GetStatus returns the task status as a pipe-delimited string of
	// zero or more of RUNNING, COMPLETED, FAILED.
	GetStatus(ctx context.Context, taskID string) (string, error)
}
