package main

import (
	"NetSentry/internal/config"
	"NetSentry/internal/ingest"
	"NetSentry/internal/probe"
	"NetSentry/internal/probe/persistent"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/gopacket/pcap"
)

const (
	snapshotLen int32 = 1600
	promiscuous       = true
	timeout           = pcap.BlockForever
)

func main() {
	// --- Command-Line Flag Parsing ---
	configFile := flag.String("config", "configs/config.yaml", "Path to the configuration file")
	mode := flag.String("mode", "pub", "Operating mode: 'pub' to capture and publish, 'sub' to subscribe and print.")
	iface := flag.String("iface", "", "Interface to capture packets from (overrides probe.interface).")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// --- Mode Dispatch ---
	switch *mode {
	case "pub":
		runCapture(cfg, *iface)
	case "sub":
		runWatcher(cfg)
	default:
		fmt.Fprintf(os.Stderr, "Invalid mode: %s\n", *mode)
		flag.Usage()
		os.Exit(1)
	}
}

// runCapture captures packets from a live interface and publishes the parsed
// events to NATS for the detection engine to consume.
func runCapture(cfg *config.Config, interfaceName string) {
	if interfaceName == "" {
		interfaceName = cfg.Probe.Interface
	}
	if interfaceName == "" {
		log.Println("Error: no capture interface given (-iface flag or probe.interface in config).")
		flag.Usage()
		os.Exit(1)
	}
	log.Printf("Starting ids-probe in CAPTURE mode on interface: %s", interfaceName)

	// Initialize NATS Publisher
	pub, err := probe.NewPublisher(cfg.Probe)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer pub.Close()

	// Open device for live capture
	handle, err := pcap.OpenLive(interfaceName, snapshotLen, promiscuous, timeout)
	if err != nil {
		log.Fatalf("Error opening device %s: %v", interfaceName, err)
	}
	defer handle.Close()

	captureMode, err := ingest.ModeForLinkType(handle.LinkType())
	if err != nil {
		log.Fatalf("Cannot capture on %s: %v", interfaceName, err)
	}

	// The raw-traffic archive is optional and sits beside the NATS path.
	var archiver *persistent.Archiver
	if cfg.Probe.Persistence.Enabled {
		archiver, err = persistent.NewArchiver(cfg.Probe.Persistence, handle.LinkType())
		if err != nil {
			log.Fatalf("Failed to start packet archiver: %v", err)
		}
		defer archiver.Stop()
	}

	log.Printf("Capture started on %s (link type %s). Publishing events to NATS...", interfaceName, handle.LinkType())

	// Set up a channel to handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Start processing packets in a separate goroutine
	go func() {
		published, rejected := 0, 0
		for {
			data, ci, err := handle.ReadPacketData()
			if err != nil {
				if errors.Is(err, pcap.NextErrorTimeoutExpired) {
					continue
				}
				log.Printf("Capture loop finished: %v", err)
				return
			}

			if archiver != nil {
				archiver.Enqueue(ci, data)
			}

			event, err := ingest.ParsePacket(data, captureMode)
			if err != nil {
				rejected++
				continue // Skip non-IPv4 packets
			}
			event.ObservedAt = ci.Timestamp

			if err := pub.Publish(event); err != nil {
				log.Printf("Failed to publish event: %v", err)
			}
			published++
			if published%1000 == 0 {
				log.Printf("%d events published (%d packets skipped)...", published, rejected)
			}
		}
	}()

	// Wait for a shutdown signal
	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
}

// runWatcher subscribes to the probe subject and prints every event it
// receives. Useful for checking that a probe is publishing.
func runWatcher(cfg *config.Config) {
	log.Println("Starting ids-probe in WATCH mode...")

	// The watcher has no stats collector, so rejected messages are only logged.
	sub, err := probe.NewSubscriber(cfg.Probe, nil)
	if err != nil {
		log.Fatalf("Failed to create subscriber: %v", err)
	}

	if err := sub.Start(); err != nil {
		log.Fatalf("Subscriber failed to start: %v", err)
	}
	defer sub.Stop()

	go func() {
		for event := range sub.Events() {
			log.Printf("Received event: %+v", event)
		}
	}()

	// Set up a channel to handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Wait for a shutdown signal
	<-sigChan
	log.Println("Shutdown signal received, cleaning up...")
}
