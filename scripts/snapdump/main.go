// Decodes a gob stats snapshot written by the engine and prints it in a
// readable form. Pass either the stats.gob file or its snapshot directory.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"NetSentry/internal/snapshot"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./scripts/snapdump/main.go <snapshot_dir_or_gob_file>")
		os.Exit(1)
	}
	path := os.Args[1]

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, "stats.gob")
	}

	snap, err := snapshot.Read(path)
	if err != nil {
		log.Fatalf("Failed to decode snapshot: %v", err)
	}

	fmt.Printf("Snapshot: %s\n", path)
	fmt.Printf("  started:        %s\n", snap.StartedAt.Format(time.RFC3339))
	fmt.Printf("  uptime:         %.1fs\n", snap.UptimeSeconds)
	fmt.Printf("  processed:      %d (%.1f events/sec)\n", snap.Processed, snap.EventsPerSec)
	fmt.Printf("  rejected:       %d\n", snap.Rejected)
	fmt.Printf("  skipped:        %d\n", snap.Skipped)
	fmt.Printf("  threats:        %d\n", snap.Threats)

	if len(snap.ByProtocol) > 0 {
		fmt.Println("  by protocol:")
		for _, proto := range sortedKeys(snap.ByProtocol) {
			fmt.Printf("    %-10s %d\n", proto, snap.ByProtocol[proto])
		}
	}
	if len(snap.ByLabel) > 0 {
		fmt.Println("  threats by label:")
		for _, label := range sortedKeys(snap.ByLabel) {
			fmt.Printf("    %-10s %d\n", label, snap.ByLabel[label])
		}
	}
}

func sortedKeys(m map[string]uint64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
