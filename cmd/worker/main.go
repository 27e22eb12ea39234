//go:build nats

// cmd/worker/main.go
package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/tendant/agent-bridge/internal/bridge"
	"github.com/tendant/agent-bridge/internal/bus"
	"github.com/tendant/agent-bridge/internal/legacy"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := loadConfig()
	if err != nil {
		fatal(logger, "load config", err)
	}
	logger.Info("bridge worker starting",
		"nats_url", cfg.NATSURL,
		"job_subject", cfg.JobSubject,
		"queue", cfg.WorkerQueue,
		"result_subject", cfg.ResultSubject,
		"status_subject", cfg.StatusSubject)

	legacyAPI := legacy.NewSimulator(cfg.LegacyAPIKey, logger)
	adapter := bridge.New(legacyAPI, logger)

	nc, err := bus.Connect(cfg.NATSURL)
	if err != nil {
		fatal(logger, "connect to NATS", err, "nats_url", cfg.NATSURL)
	}
	logger.Info("connected to NATS", "nats_url", cfg.NATSURL)
	defer nc.Close()

	_, err = nc.QueueSubscribeJSON(cfg.JobSubject, cfg.WorkerQueue, cfg.JobTimeout, func(ctx context.Context, data []byte) {
		handleJob(ctx, data, cfg, adapter, nc, logger)
	})
	if err != nil {
		fatal(logger, "subscribe jobs", err, "subject", cfg.JobSubject, "queue", cfg.WorkerQueue)
	}

	_, err = nc.SubscribeReplyJSON(cfg.StatusSubject, cfg.JobTimeout, func(ctx context.Context, data []byte) any {
		return adapter.QueryStatus(ctx, strings.TrimSpace(string(data)))
	})
	if err != nil {
		fatal(logger, "subscribe status queries", err, "subject", cfg.StatusSubject)
	}

	logger.Info("listening for jobs", "subject", cfg.JobSubject, "queue", cfg.WorkerQueue)
	select {}
}

func handleJob(ctx context.Context, data []byte, cfg config, adapter *bridge.Adapter, nc *bus.Client, logger *slog.Logger) {
	var job map[string]any
	if err := json.Unmarshal(data, &job); err != nil || job == nil {
		logger.Warn("received malformed job payload", "err", err)
		msg := "job payload must be a JSON object"
		if err != nil {
			msg += ": " + err.Error()
		}
		resp := adapter.SafeAct(nil, msg, "")
		publishResult(nc, cfg.ResultSubject, resp.Data.JobID, resp, logger)
		return
	}

	// Convenience for fire-and-forget publishers: stamp an id when the
	// field is absent. A present-but-invalid id still fails validation.
	if _, ok := job["id"]; !ok {
		job["id"] = uuid.NewString()
		logger.Info("stamped job id", "job_id", job["id"])
	}

	resp := adapter.Run(ctx, job)
	logger.Info("job processed", "job_id", resp.Data.JobID, "success", resp.Success, "code", resp.Code)
	publishResult(nc, cfg.ResultSubject, resp.Data.JobID, resp, logger)
}

func publishResult(nc *bus.Client, subject, jobID string, v any, logger *slog.Logger) {
	if err := nc.PublishJSON(subject, v); err != nil {
		logger.Error("publish result failed", "subject", subject, "job_id", jobID, "err", err)
	}
}

func fatal(logger *slog.Logger, msg string, err error, attrs ...any) {
	attrs = append(attrs, "err", err)
	logger.Error(msg, attrs...)
	os.Exit(1)
}
