// Package pcap replays capture files as detection engine event sources.
package pcap

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/google/gopacket/pcapgo"

	"NetSentry/internal/config"
	"NetSentry/internal/factory"
	"NetSentry/internal/ingest"
	"NetSentry/internal/model"
	"NetSentry/internal/stats"
)

func init() {
	factory.RegisterSource("pcap", func(cfg *config.Config, collector *stats.Collector) (model.EventSource, error) {
		return NewReplaySource(cfg.Capture.PcapFile, collector, cfg.Engine.SizeOfEventChannel)
	})
}

// ReplaySource reads a pcap file and delivers each IPv4 packet as a
// NetworkEvent with its capture timestamp preserved. The events channel is
// closed at end of file, so a session draining it terminates on its own.
type ReplaySource struct {
	path      string
	file      *os.File
	reader    *pcapgo.Reader
	mode      ingest.CaptureMode
	collector *stats.Collector

	events   chan *model.NetworkEvent
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewReplaySource opens path for replay. The capture mode is derived from
// the file's link type. collector may be nil, which disables rejection
// accounting.
func NewReplaySource(path string, collector *stats.Collector, buffer int) (*ReplaySource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pcap file: %w", err)
	}
	r, err := pcapgo.NewReader(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read pcap header: %w", err)
	}
	mode, err := ingest.ModeForLinkType(r.LinkType())
	if err != nil {
		f.Close()
		return nil, err
	}

	if buffer <= 0 {
		buffer = 1000
	}
	return &ReplaySource{
		path:      path,
		file:      f,
		reader:    r,
		mode:      mode,
		collector: collector,
		events:    make(chan *model.NetworkEvent, buffer),
		stopChan:  make(chan struct{}),
	}, nil
}

// Name identifies the source in logs and status output.
func (s *ReplaySource) Name() string {
	return "pcap:" + s.path
}

// Start launches the replay goroutine.
func (s *ReplaySource) Start() error {
	s.wg.Add(1)
	go s.replay()
	log.Printf("Replaying capture file %s (link type %s)", s.path, s.reader.LinkType())
	return nil
}

// Events returns the channel on which decoded events are delivered.
func (s *ReplaySource) Events() <-chan *model.NetworkEvent {
	return s.events
}

func (s *ReplaySource) replay() {
	defer s.wg.Done()
	defer close(s.events)

	delivered, rejected := 0, 0
	for {
		data, ci, err := s.reader.ReadPacketData()
		if errors.Is(err, io.EOF) {
			log.Printf("Capture file %s exhausted: %d events delivered, %d packets rejected.", s.path, delivered, rejected)
			return
		}
		if err != nil {
			log.Printf("ERROR: failed reading %s: %v", s.path, err)
			return
		}

		event, err := ingest.ParsePacket(data, s.mode)
		if err != nil {
			log.Printf("Rejecting packet from %s: %v", s.path, err)
			rejected++
			if s.collector != nil {
				s.collector.RecordRejected()
			}
			continue
		}
		event.ObservedAt = ci.Timestamp

		select {
		case s.events <- event:
			delivered++
		case <-s.stopChan:
			return
		}
	}
}

// Stop aborts an in-progress replay and closes the file. It is safe to call
// after the replay has already finished.
func (s *ReplaySource) Stop() {
	close(s.stopChan)
	s.wg.Wait()
	s.file.Close()
}
