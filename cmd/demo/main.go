// cmd/demo/main.go

// Demo runs a representative modern job through the bridge against the
// in-process legacy simulator and prints both responses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/tendant/agent-bridge/internal/bridge"
	"github.com/tendant/agent-bridge/internal/legacy"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	legacyAPI := legacy.NewSimulator("legacy_key_12345", logger)
	adapter := bridge.New(legacyAPI, logger)

	job := map[string]any{
		"id":       "job_2025_001",
		"type":     "data_processing",
		"priority": 3,
		"payload": map[string]any{
			"input_file": "data.csv",
			"operations": []string{"filter", "transform", "aggregate"},
		},
		"metadata": map[string]any{"user": "admin", "department": "analytics"},
	}

	fmt.Println("Executing modern job through the bridge...")
	printJSON(adapter.Run(context.Background(), job))

	fmt.Println("\nQuerying job status...")
	printJSON(adapter.QueryStatus(context.Background(), "job_2025_001"))
}

func printJSON(v any) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		slog.Error("marshal response", "err", err)
		return
	}
	fmt.Println(string(b))
}
