// Package persistent archives captured packets to rotating pcap files on the
// probe host, so raw traffic around an incident can be replayed later.
package persistent

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"NetSentry/internal/config"
)

const (
	archiveSnapLen = 1600
	queueSize      = 10000
)

type capturedPacket struct {
	info gopacket.CaptureInfo
	data []byte
}

// Archiver writes captured packets to pcap files under the configured
// directory, rotating to a fresh file when the size limit is reached.
// A single writer goroutine keeps packets in capture order.
type Archiver struct {
	dir      string
	limit    int64 // bytes per file
	linkType layers.LinkType

	packetChan chan *capturedPacket
	stopChan   chan struct{}
	wg         sync.WaitGroup
}

// NewArchiver creates and starts an Archiver. linkType must match the
// capture handle feeding Enqueue.
func NewArchiver(cfg config.PersistenceConfig, linkType layers.LinkType) (*Archiver, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	limitMB := cfg.FileSizeLimit
	if limitMB <= 0 {
		limitMB = 64
	}

	a := &Archiver{
		dir:        cfg.OutputDir,
		limit:      int64(limitMB) * 1024 * 1024,
		linkType:   linkType,
		packetChan: make(chan *capturedPacket, queueSize),
		stopChan:   make(chan struct{}),
	}

	a.wg.Add(1)
	go a.run()
	log.Printf("Packet archiver started, writing pcap files to %s (rotating at %d MB)", cfg.OutputDir, limitMB)
	return a, nil
}

// Enqueue hands one captured packet to the archiver. The payload is copied
// because capture handles reuse their buffers. Drops when the queue is full.
func (a *Archiver) Enqueue(ci gopacket.CaptureInfo, data []byte) {
	buf := make([]byte, len(data))
	copy(buf, data)
	select {
	case a.packetChan <- &capturedPacket{info: ci, data: buf}:
	default:
		log.Println("WARN: archive queue full, dropping packet.")
	}
}

// Stop drains the queue, flushes the current file, and shuts the writer down.
func (a *Archiver) Stop() {
	close(a.stopChan)
	a.wg.Wait()
	log.Println("Packet archiver stopped.")
}

func (a *Archiver) run() {
	defer a.wg.Done()

	var (
		file    *os.File
		writer  *pcapgo.Writer
		written int64
		seq     int
	)
	defer func() {
		if file != nil {
			file.Close()
		}
	}()

	write := func(pkt *capturedPacket) {
		if file == nil || written >= a.limit {
			f, w, err := a.rotate(file, &seq)
			if err != nil {
				// rotate has already closed the old handle. Drop it so the
				// deferred close and the next attempt start clean.
				file, writer = nil, nil
				log.Printf("ERROR: archive rotation failed: %v", err)
				return
			}
			file, writer, written = f, w, 0
		}
		if err := writer.WritePacket(pkt.info, pkt.data); err != nil {
			log.Printf("ERROR: failed to archive packet: %v", err)
			return
		}
		written += int64(len(pkt.data))
	}

	for {
		select {
		case pkt := <-a.packetChan:
			write(pkt)
		case <-a.stopChan:
			// Flush whatever is still queued before exiting.
			for {
				select {
				case pkt := <-a.packetChan:
					write(pkt)
				default:
					return
				}
			}
		}
	}
}

func (a *Archiver) rotate(old *os.File, seq *int) (*os.File, *pcapgo.Writer, error) {
	if old != nil {
		if err := old.Close(); err != nil {
			log.Printf("WARN: failed to close archive file: %v", err)
		}
	}

	*seq++
	name := fmt.Sprintf("%s_%03d.pcap", time.Now().Format("2006-01-02_15-04-05"), *seq)
	f, err := os.OpenFile(filepath.Join(a.dir, name), os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create archive file: %w", err)
	}

	w := pcapgo.NewWriter(f)
	if err := w.WriteFileHeader(archiveSnapLen, a.linkType); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to write pcap header: %w", err)
	}
	return f, w, nil
}
