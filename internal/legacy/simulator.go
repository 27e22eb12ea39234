// internal/legacy/simulator.go
package legacy

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// DefaultStatus is the synthetic status mix the simulator reports. A real
// backing store would return the actual task state.
const DefaultStatus = "RUNNING|COMPLETED|FAILED"

// Simulator stands in for the real legacy agent service. It answers
// instantly and in-process, which keeps the bridge testable end to end
// without a network.
type Simulator struct {
	apiKey  string
	baseURL string
	status  string
	logger  *slog.Logger
}

// NewSimulator builds a simulator holding the given credential. The
// credential is carried for fidelity with the real service's constructor;
// the simulator never sends it anywhere.
func NewSimulator(apiKey string, logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Simulator{
		apiKey:  apiKey,
		baseURL: "https://legacy-api.example.com",
		status:  DefaultStatus,
		logger:  logger,
	}
	s.logger.Info("initialized legacy API simulator", "base_url", s.baseURL)
	return s
}

// SetStatus overrides the pipe-delimited status string returned by GetStatus.
func (s *Simulator) SetStatus(status string) {
	s.status = status
}

func (s *Simulator) ExecuteTask(ctx context.Context, taskID string, params Params) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	s.logger.Info("executing legacy task", "task_id", taskID, "action", params.Action, "priority", params.Priority)
	return Result{
		Status:     "completed",
		ResultCode: 200,
		Output:     fmt.Sprintf("Task %s executed with action %s", taskID, params.Action),
		Timestamp:  time.Now().Format(time.RFC3339Nano),
	}, nil
}

func (s *Simulator) GetStatus(ctx context.Context, taskID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.logger.Info("fetching legacy task status", "task_id", taskID)
	return s.status, nil
}
