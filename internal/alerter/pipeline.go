// Package alerter turns threat classifications into persisted, rate-limited
// alerts and periodic notification digests.
package alerter

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"NetSentry/internal/model"
)

const recentAlerts = 100

// Pipeline fans threat records out to the configured sinks. Submit never
// blocks the detection hot path: rate-limited records are suppressed and a
// full intake queue drops records.
type Pipeline struct {
	limiter       *RateLimiter
	sinks         []model.AlertSink
	queue         chan *model.ThreatRecord
	flushInterval time.Duration

	recentMu sync.RWMutex
	recent   []*model.ThreatRecord

	suppressed atomic.Uint64
	dropped    atomic.Uint64

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewPipeline creates a Pipeline writing to sinks. queueSize bounds the
// intake buffer between the detection loops and the flusher.
func NewPipeline(limiter *RateLimiter, sinks []model.AlertSink, queueSize int, flushInterval time.Duration) *Pipeline {
	if queueSize <= 0 {
		queueSize = 1000
	}
	return &Pipeline{
		limiter:       limiter,
		sinks:         sinks,
		queue:         make(chan *model.ThreatRecord, queueSize),
		flushInterval: flushInterval,
	}
}

// Submit offers one threat record to the pipeline. It returns true when the
// record was accepted, false when it was suppressed by the rate limiter or
// dropped because the queue is full.
func (p *Pipeline) Submit(record *model.ThreatRecord) bool {
	if p.limiter != nil && !p.limiter.Allow(record.SrcAddr) {
		p.suppressed.Add(1)
		log.Printf("Rate limiting alerts from %s", record.SrcAddr)
		return false
	}

	log.Printf("THREAT DETECTED: %s from %s (confidence: %.3f)", record.Label, record.SrcAddr, record.Confidence)

	p.recentMu.Lock()
	p.recent = append(p.recent, record)
	if len(p.recent) > recentAlerts {
		p.recent = p.recent[len(p.recent)-recentAlerts:]
	}
	p.recentMu.Unlock()

	select {
	case p.queue <- record:
		return true
	default:
		p.dropped.Add(1)
		log.Printf("WARN: alert queue full, dropping alert from %s", record.SrcAddr)
		return false
	}
}

// Recent returns a copy of the most recent alerts that passed rate
// limiting, oldest first.
func (p *Pipeline) Recent() []*model.ThreatRecord {
	p.recentMu.RLock()
	defer p.recentMu.RUnlock()
	out := make([]*model.ThreatRecord, len(p.recent))
	copy(out, p.recent)
	return out
}

// Suppressed reports how many alerts the rate limiter swallowed.
func (p *Pipeline) Suppressed() uint64 {
	return p.suppressed.Load()
}

// Dropped reports how many alerts were lost to a full queue.
func (p *Pipeline) Dropped() uint64 {
	return p.dropped.Load()
}

// Start launches the background flusher.
func (p *Pipeline) Start() {
	p.stopChan = make(chan struct{})
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		ticker := time.NewTicker(p.flushInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.flush()
			case <-p.stopChan:
				return
			}
		}
	}()
	log.Printf("Alert pipeline started with %d sink(s), flushing every %s", len(p.sinks), p.flushInterval)
}

// Stop halts the flusher and writes out any queued alerts.
func (p *Pipeline) Stop() {
	close(p.stopChan)
	p.wg.Wait()
	p.flush()
	log.Println("Alert pipeline stopped.")
}

func (p *Pipeline) flush() {
	batch := p.drain()
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, sink := range p.sinks {
		if err := sink.Write(ctx, batch); err != nil {
			log.Printf("ERROR: alert sink '%s' failed: %v", sink.Name(), err)
		}
	}
}

func (p *Pipeline) drain() []*model.ThreatRecord {
	var batch []*model.ThreatRecord
	for {
		select {
		case record := <-p.queue:
			batch = append(batch, record)
		default:
			return batch
		}
	}
}
