package alerter

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"NetSentry/internal/model"
)

// JSONLWriter appends threat records to a log file, one JSON object per
// line. The file is the append-only alert log external dashboards tail.
type JSONLWriter struct {
	mu   sync.Mutex
	path string
}

// NewJSONLWriter creates a writer appending to path.
func NewJSONLWriter(path string) *JSONLWriter {
	return &JSONLWriter{path: path}
}

// Name identifies this sink in logs.
func (w *JSONLWriter) Name() string {
	return "jsonl"
}

// Write appends each alert as one JSON line.
func (w *JSONLWriter) Write(ctx context.Context, alerts []*model.ThreatRecord) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open alert log: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	for _, alert := range alerts {
		if err := enc.Encode(alert); err != nil {
			return fmt.Errorf("failed to append alert: %w", err)
		}
	}
	return nil
}
