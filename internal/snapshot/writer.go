// Package snapshot persists periodic engine statistics to disk, one
// timestamped directory per snapshot.
package snapshot

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"NetSentry/internal/stats"
)

// Writer handles writing statistics snapshots to disk.
type Writer struct {
	rootPath string
}

// NewWriter creates a snapshot writer rooted at rootPath.
func NewWriter(rootPath string) *Writer {
	return &Writer{rootPath: rootPath}
}

// Write serializes one snapshot into a timestamped directory: a gob file
// for tooling and a summary.json for humans.
func (w *Writer) Write(snap stats.Snapshot, timestamp string) error {
	// 1. Create timestamped directory
	dir := filepath.Join(w.rootPath, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	// 2. Write the snapshot in gob form
	gobFile, err := os.Create(filepath.Join(dir, "stats.gob"))
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer gobFile.Close()
	if err := gob.NewEncoder(gobFile).Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot to gob: %w", err)
	}

	// 3. Write a human-readable summary
	summaryFile, err := os.Create(filepath.Join(dir, "summary.json"))
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer summaryFile.Close()

	jsonEncoder := json.NewEncoder(summaryFile)
	jsonEncoder.SetIndent("", "  ")
	if err := jsonEncoder.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode summary to json: %w", err)
	}

	return nil
}

// Read loads a gob-encoded snapshot produced by Write.
func Read(path string) (*stats.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot file: %w", err)
	}
	defer f.Close()

	var snap stats.Snapshot
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snap, nil
}
