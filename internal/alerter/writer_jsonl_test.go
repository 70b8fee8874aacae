package alerter

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"NetSentry/internal/model"
)

func TestJSONLWriterAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "security_alerts.json")
	w := NewJSONLWriter(path)
	ctx := context.Background()

	// 1. Two batches append to the same file.
	first := []*model.ThreatRecord{
		testRecord("192.168.1.10", 0.91),
		testRecord("192.168.1.11", 0.87),
	}
	if err := w.Write(ctx, first); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := w.Write(ctx, []*model.ThreatRecord{testRecord("192.168.1.12", 0.95)}); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	// 2. The file holds one JSON object per line.
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open alert log: %v", err)
	}
	defer f.Close()

	var lines []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", len(lines)+1, err)
		}
		lines = append(lines, entry)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan alert log: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("alert log has %d lines, want 3", len(lines))
	}

	// 3. Field names follow the alert log contract.
	entry := lines[0]
	for _, key := range []string{"timestamp", "source_ip", "destination_ip", "attack_type", "confidence", "protocol", "service", "packet_size"} {
		if _, ok := entry[key]; !ok {
			t.Errorf("alert entry missing field %q", key)
		}
	}
	if entry["source_ip"] != "192.168.1.10" {
		t.Errorf("source_ip = %v, want 192.168.1.10", entry["source_ip"])
	}
	if entry["attack_type"] != "neptune" {
		t.Errorf("attack_type = %v, want neptune", entry["attack_type"])
	}
	if entry["packet_size"] != float64(60) {
		t.Errorf("packet_size = %v, want 60", entry["packet_size"])
	}
	if ts, ok := entry["timestamp"].(string); !ok {
		t.Error("timestamp should serialize as a string")
	} else if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("timestamp %q is not RFC3339: %v", ts, err)
	}
}
