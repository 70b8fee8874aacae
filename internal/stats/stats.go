// Package stats accumulates processing counters for the detection engine.
package stats

import (
	"sync"
	"time"
)

// Collector accumulates counters across sessions. All methods are safe for
// concurrent use.
type Collector struct {
	mu         sync.Mutex
	startedAt  time.Time
	processed  uint64
	rejected   uint64
	skipped    uint64
	threats    uint64
	byLabel    map[string]uint64
	byProtocol map[string]uint64
}

// NewCollector creates a Collector with the clock started.
func NewCollector() *Collector {
	return &Collector{
		startedAt:  time.Now(),
		byLabel:    make(map[string]uint64),
		byProtocol: make(map[string]uint64),
	}
}

// RecordProcessed counts one classified event for the given protocol.
func (c *Collector) RecordProcessed(protocol string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.processed++
	c.byProtocol[protocol]++
}

// RecordRejected counts one observation the ingestion adapter rejected.
func (c *Collector) RecordRejected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rejected++
}

// RecordSkipped counts one event whose classification was skipped.
func (c *Collector) RecordSkipped() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skipped++
}

// RecordThreat counts one non-normal classification under its label.
func (c *Collector) RecordThreat(label string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.threats++
	c.byLabel[label]++
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	StartedAt     time.Time         `json:"started_at"`
	UptimeSeconds float64           `json:"uptime_seconds"`
	Processed     uint64            `json:"processed"`
	Rejected      uint64            `json:"rejected"`
	Skipped       uint64            `json:"skipped"`
	Threats       uint64            `json:"threats"`
	EventsPerSec  float64           `json:"events_per_sec"`
	ByLabel       map[string]uint64 `json:"by_label"`
	ByProtocol    map[string]uint64 `json:"by_protocol"`
}

// Snapshot copies the current counters. The returned maps are owned by the
// caller.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	uptime := time.Since(c.startedAt).Seconds()
	s := Snapshot{
		StartedAt:     c.startedAt,
		UptimeSeconds: uptime,
		Processed:     c.processed,
		Rejected:      c.rejected,
		Skipped:       c.skipped,
		Threats:       c.threats,
		ByLabel:       make(map[string]uint64, len(c.byLabel)),
		ByProtocol:    make(map[string]uint64, len(c.byProtocol)),
	}
	if uptime > 0 {
		s.EventsPerSec = float64(c.processed) / uptime
	}
	for label, n := range c.byLabel {
		s.ByLabel[label] = n
	}
	for proto, n := range c.byProtocol {
		s.ByProtocol[proto] = n
	}
	return s
}
