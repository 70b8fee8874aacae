package main

import (
	"NetSentry/internal/config"
	"NetSentry/internal/engine/manager"
	"NetSentry/internal/factory"
	"NetSentry/internal/stats"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	// Register the available event source implementations.
	_ "NetSentry/internal/probe"
	_ "NetSentry/pkg/pcap"
	_ "NetSentry/pkg/sim"
)

func main() {
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	flag.Parse()

	log.Println("Starting ids-engine...")

	// 1. Load configuration
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Println("Configuration loaded successfully.")

	// 2. Build the event sources named in the config
	collector := stats.NewCollector()
	sources, err := factory.Create(cfg, collector)
	if err != nil {
		log.Fatalf("Failed to create event sources: %v", err)
	}

	// 3. Initialize the engine manager
	m, err := manager.NewManager(cfg, collector, sources)
	if err != nil {
		log.Fatalf("Failed to create engine manager: %v", err)
	}

	// 4. Start the engine
	if err := m.Start(); err != nil {
		log.Fatalf("Failed to start engine manager: %v", err)
	}

	// 5. Wait for a shutdown signal, or for finite sources (such as capture
	// file replay) to drain
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	drained := make(chan struct{})
	go func() {
		m.Wait()
		close(drained)
	}()

	select {
	case <-sigChan:
		log.Println("Shutdown signal received, stopping engine...")
	case <-drained:
		log.Println("All event sources exhausted, stopping engine...")
	}

	m.Stop()
	log.Println("Shutdown complete.")
}
