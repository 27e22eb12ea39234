//go:build nats

// cmd/worker/config.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type config struct {
	NATSURL       string
	JobSubject    string
	WorkerQueue   string
	ResultSubject string
	StatusSubject string
	LegacyAPIKey  string
	JobTimeout    time.Duration
}

func loadConfig() (config, error) {
	cfg := config{
		NATSURL:       getenv("NATS_URL", "nats://127.0.0.1:4222"),
		JobSubject:    getenv("BRIDGE_JOB_SUBJECT", "bridge.jobs"),
		WorkerQueue:   getenv("BRIDGE_QUEUE", "bridge-workers"),
		ResultSubject: getenv("BRIDGE_RESULT_SUBJECT", "bridge.results"),
		StatusSubject: getenv("BRIDGE_STATUS_SUBJECT", "bridge.status"),
		LegacyAPIKey:  getenv("LEGACY_API_KEY", ""),
	}

	if cfg.LegacyAPIKey == "" {
		return config{}, fmt.Errorf("LEGACY_API_KEY must be set")
	}

	seconds, err := parsePositiveInt(getenv("BRIDGE_JOB_TIMEOUT", "30"), "BRIDGE_JOB_TIMEOUT")
	if err != nil {
		return config{}, err
	}
	cfg.JobTimeout = time.Duration(seconds) * time.Second

	return cfg, nil
}

func parsePositiveInt(value string, name string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be greater than zero (got %d)", name, v)
	}
	return v, nil
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
