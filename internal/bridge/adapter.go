// internal/bridge/adapter.go

// Package bridge translates modern-shaped agent jobs into calls against a
// legacy task API. Every operation returns a well-formed modern response:
// validation failures, collaborator errors, and panics are all absorbed at
// this boundary and surface only as diagnostic text inside the response.
package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tendant/agent-bridge/internal/legacy"
	"github.com/tendant/agent-bridge/pkg/schema"
)

// Adapter exposes the modern surface (Run, QueryStatus, SafeAct) on top of a
// legacy collaborator. It holds no mutable state beyond the collaborator and
// logger it was constructed with.
type Adapter struct {
	api    legacy.API
	logger *slog.Logger
}

// New wires an adapter to its legacy collaborator. A nil logger falls back
// to the process default.
func New(api legacy.API, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{api: api, logger: logger}
}

// statusPrecedence is the fixed tie-break order for collapsing concurrent
// legacy status tokens: COMPLETED wins over RUNNING, RUNNING over FAILED.
var statusPrecedence = []string{schema.StatusCompleted, schema.StatusRunning, schema.StatusFailed}

// Run executes a modern job through the legacy API. The job may be any
// value; anything that is not a well-formed job map produces a fallback
// response via SafeAct. Run never returns an error and never panics.
func (a *Adapter) Run(ctx context.Context, job any) (resp schema.Response) {
	createdAt := nowISO()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("unexpected panic while running job", "panic", r)
			resp = a.SafeAct(job, fmt.Sprint(r), createdAt)
		}
	}()

	mapping, ok := job.(map[string]any)
	if !ok {
		return a.failRun(job, validationf("job must be a map"), createdAt)
	}
	if err := requireKeys(mapping, []string{"id", "type", "priority"}, "job"); err != nil {
		return a.failRun(job, err, createdAt)
	}

	jobID := strings.TrimSpace(stringify(mapping["id"]))
	if jobID == "" {
		return a.failRun(job, validationf("job id must be a non-empty string"), createdAt)
	}
	action, err := coerceAction(mapping["type"])
	if err != nil {
		return a.failRun(job, err, createdAt)
	}
	priority, err := coercePriority(mapping["priority"])
	if err != nil {
		return a.failRun(job, err, createdAt)
	}
	payload, err := normalizePayload(mapping["payload"])
	if err != nil {
		return a.failRun(job, err, createdAt)
	}

	params := legacy.Params{Action: action, Priority: priority, Data: payload}
	result, err := a.api.ExecuteTask(ctx, jobID, params)
	if err != nil {
		a.logger.Error("legacy task execution failed", "job_id", jobID, "err", err)
		return a.SafeAct(job, err.Error(), createdAt)
	}

	code := result.ResultCode
	if code == 0 {
		code = 500
	}
	completedAt := result.Timestamp
	if completedAt == "" {
		completedAt = nowISO()
	}
	a.logger.Info("job executed", "job_id", jobID, "action", action, "code", code)
	return schema.Response{
		Success: code == 200,
		Code:    code,
		Data: schema.Data{
			JobID:   jobID,
			Result:  result.Output,
			Metrics: &schema.Metrics{},
		},
		CreatedAt:   createdAt,
		CompletedAt: completedAt,
	}
}

func (a *Adapter) failRun(job any, err error, createdAt string) schema.Response {
	a.logger.Warn("job validation failed", "err", err)
	return a.SafeAct(job, err.Error(), createdAt)
}

// QueryStatus resolves the status of a job via the legacy API. Validation
// failures produce a 400-coded response and collaborator failures a
// 500-coded one, both built inline with a status of UNKNOWN; neither is
// routed through SafeAct. QueryStatus never returns an error and never
// panics.
func (a *Adapter) QueryStatus(ctx context.Context, jobID string) (resp schema.Response) {
	createdAt := nowISO()
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("unexpected panic while querying status", "job_id", jobID, "panic", r)
			resp = statusFailure(jobID, 500, fmt.Sprint(r), createdAt)
		}
	}()

	trimmed := strings.TrimSpace(jobID)
	if trimmed == "" {
		a.logger.Warn("status query validation failed", "job_id", jobID)
		return statusFailure(jobID, 400, "job id must be a non-empty string", createdAt)
	}

	raw, err := a.api.GetStatus(ctx, trimmed)
	if err != nil {
		a.logger.Error("legacy status lookup failed", "job_id", trimmed, "err", err)
		return statusFailure(jobID, 500, err.Error(), createdAt)
	}

	status := resolveStatus(raw)
	success := status == schema.StatusCompleted
	code := 500
	switch {
	case success:
		code = 200
	case status == schema.StatusRunning || status == schema.StatusUnknown:
		code = 206
	}
	a.logger.Info("status resolved", "job_id", trimmed, "status", status, "code", code)
	return schema.Response{
		Success: success,
		Code:    code,
		Data: schema.Data{
			JobID:  jobID,
			Status: status,
		},
		CreatedAt:   createdAt,
		CompletedAt: nowISO(),
	}
}

// resolveStatus collapses a pipe-delimited legacy status string into a
// single modern status using the fixed precedence order, independent of
// token order in the input.
func resolveStatus(raw string) string {
	tokens := make(map[string]bool)
	for _, part := range strings.Split(raw, "|") {
		if t := strings.TrimSpace(part); t != "" {
			tokens[t] = true
		}
	}
	for _, candidate := range statusPrecedence {
		if tokens[candidate] {
			return candidate
		}
	}
	return schema.StatusUnknown
}

func statusFailure(jobID string, code int, msg, createdAt string) schema.Response {
	return schema.Response{
		Success: false,
		Code:    code,
		Data: schema.Data{
			JobID:  jobID,
			Status: schema.StatusUnknown,
			Error:  msg,
		},
		CreatedAt:   createdAt,
		CompletedAt: nowISO(),
	}
}

func nowISO() string {
	return time.Now().Format(time.RFC3339Nano)
}
