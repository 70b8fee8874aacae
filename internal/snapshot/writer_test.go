package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"NetSentry/internal/stats"
)

func TestWriterRoundTrip(t *testing.T) {
	// 1. Build a snapshot with some traffic recorded.
	collector := stats.NewCollector()
	collector.RecordProcessed("tcp")
	collector.RecordProcessed("tcp")
	collector.RecordProcessed("udp")
	collector.RecordThreat("neptune")
	collector.RecordSkipped()
	snap := collector.Snapshot()

	// 2. Write it under a timestamped directory.
	tmpDir := t.TempDir()
	writer := NewWriter(tmpDir)
	if err := writer.Write(snap, "2025-11-03_10-00-00"); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	dir := filepath.Join(tmpDir, "2025-11-03_10-00-00")

	// 3. The summary is valid JSON with the recorded counts.
	summaryBytes, err := os.ReadFile(filepath.Join(dir, "summary.json"))
	if err != nil {
		t.Fatalf("failed to read summary.json: %v", err)
	}
	var summary stats.Snapshot
	if err := json.Unmarshal(summaryBytes, &summary); err != nil {
		t.Fatalf("failed to unmarshal summary.json: %v", err)
	}
	if summary.Processed != 3 {
		t.Errorf("summary processed = %d, want 3", summary.Processed)
	}
	if summary.ByProtocol["tcp"] != 2 {
		t.Errorf("summary tcp count = %d, want 2", summary.ByProtocol["tcp"])
	}

	// 4. The gob file decodes back to the same snapshot.
	got, err := Read(filepath.Join(dir, "stats.gob"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got.Processed != snap.Processed || got.Threats != snap.Threats || got.Skipped != snap.Skipped {
		t.Errorf("decoded snapshot = %+v, want %+v", got, snap)
	}
	if got.ByLabel["neptune"] != 1 {
		t.Errorf("decoded byLabel[neptune] = %d, want 1", got.ByLabel["neptune"])
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.gob")); err == nil {
		t.Fatal("expected an error for a missing snapshot file")
	}
}
