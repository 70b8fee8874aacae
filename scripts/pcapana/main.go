// Prints the first events parsed from a capture file, the way the replay
// source will see them. Quick sanity check before feeding a file to the
// engine.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/gopacket/pcapgo"

	"NetSentry/internal/feature"
	"NetSentry/internal/ingest"
)

func main() {
	count := flag.Int("n", 10, "Number of events to print")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: go run ./scripts/pcapana/main.go [-n count] <path_to_pcap_file>")
		os.Exit(1)
	}
	pcapFilePath := flag.Arg(0)

	f, err := os.Open(pcapFilePath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	reader, err := pcapgo.NewReader(f)
	if err != nil {
		log.Fatalf("Failed to read pcap header: %v", err)
	}

	mode, err := ingest.ModeForLinkType(reader.LinkType())
	if err != nil {
		log.Fatalf("Cannot parse this capture: %v", err)
	}

	printed := 0
	for printed < *count {
		data, ci, err := reader.ReadPacketData()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			log.Fatalf("Failed to read packet: %v", err)
		}

		event, err := ingest.ParsePacket(data, mode)
		if err != nil {
			fmt.Println("Parse error:", err)
			continue
		}
		event.ObservedAt = ci.Timestamp

		printed++
		fmt.Printf("[%s] %s:%d -> %s:%d proto=%s len=%d flag=%s service=%s\n",
			event.ObservedAt.Format("15:04:05.000"),
			event.SrcAddr, event.SrcPort,
			event.DstAddr, event.DstPort,
			event.Protocol, event.Length,
			feature.FlagName(event), feature.ServiceName(event),
		)
	}
}
