package main

import (
	"NetSentry/internal/config"
	"NetSentry/internal/engine/manager"
	"NetSentry/internal/factory"
	"NetSentry/internal/stats"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	_ "NetSentry/pkg/pcap"
)

// ids-replay runs one capture file through the full detection pipeline and
// prints the resulting counters. It is the offline, one-shot counterpart of
// ids-engine.
func main() {
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	flag.Parse()

	// 1. Get capture file path from command-line arguments
	if flag.NArg() < 1 {
		fmt.Println("Usage: go run ./cmd/ids-replay/main.go [-config <file>] <path_to_pcap_file>")
		os.Exit(1)
	}
	pcapFilePath := flag.Arg(0)

	// 2. Load configuration, forcing a single replay source over the given file
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Engine.Sources = []string{"pcap"}
	cfg.Capture.PcapFile = pcapFilePath
	log.Println("Configuration loaded successfully.")

	// 3. Initialize modules
	collector := stats.NewCollector()
	sources, err := factory.Create(cfg, collector)
	if err != nil {
		log.Fatalf("Failed to create replay source: %v", err)
	}

	m, err := manager.NewManager(cfg, collector, sources)
	if err != nil {
		log.Fatalf("Failed to create engine manager: %v", err)
	}
	log.Println("Manager initialized.")

	// 4. Run the pipeline until the capture file is drained
	if err := m.Start(); err != nil {
		log.Fatalf("Failed to start engine manager: %v", err)
	}
	m.Wait()
	log.Println("Finished reading all packets from capture file.")

	// 5. Graceful shutdown
	m.Stop()
	log.Println("Shutdown complete.")

	// 6. Print the final counters
	snap := m.Stats()
	fmt.Printf("\nReplay summary for %s\n", pcapFilePath)
	fmt.Printf("  processed: %d\n", snap.Processed)
	fmt.Printf("  rejected:  %d\n", snap.Rejected)
	fmt.Printf("  skipped:   %d\n", snap.Skipped)
	fmt.Printf("  threats:   %d\n", snap.Threats)
	if len(snap.ByLabel) > 0 {
		fmt.Println("  threats by label:")
		labels := make([]string, 0, len(snap.ByLabel))
		for label := range snap.ByLabel {
			labels = append(labels, label)
		}
		sort.Strings(labels)
		for _, label := range labels {
			fmt.Printf("    %-10s %d\n", label, snap.ByLabel[label])
		}
	}
}
