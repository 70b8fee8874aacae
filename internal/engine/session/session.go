// Package session runs the per-source detection loop: observe an event,
// derive its feature vector, classify it, and raise alerts for threats.
package session

import (
	"log"
	"sync"
	"time"

	"NetSentry/internal/alerter"
	"NetSentry/internal/classifier"
	"NetSentry/internal/feature"
	"NetSentry/internal/model"
	"NetSentry/internal/stats"
)

// progressEvery controls how often the session reports throughput.
const progressEvery = 100

// Session consumes one event source. Each session keeps its own rolling
// history, so feature vectors reflect the traffic mix of that source alone.
type Session struct {
	source    model.EventSource
	extractor *feature.Extractor
	clf       *classifier.Classifier
	collector *stats.Collector
	pipeline  *alerter.Pipeline
	threshold float64

	processed  uint64
	progressAt time.Time

	stopChan chan struct{}
	wg       sync.WaitGroup
}

// New creates a Session over source. Alerts are raised only for threat
// classifications whose confidence strictly exceeds threshold.
func New(source model.EventSource, clf *classifier.Classifier, collector *stats.Collector, pipeline *alerter.Pipeline, threshold float64) *Session {
	return &Session{
		source:    source,
		extractor: feature.NewExtractor(),
		clf:       clf,
		collector: collector,
		pipeline:  pipeline,
		threshold: threshold,
		stopChan:  make(chan struct{}),
	}
}

// Start starts the source and launches the detection loop.
func (s *Session) Start() error {
	if err := s.source.Start(); err != nil {
		return err
	}
	s.progressAt = time.Now()
	s.wg.Add(1)
	go s.run()
	log.Printf("Detection session started for source '%s'", s.source.Name())
	return nil
}

// Wait blocks until the detection loop exits, either because the source was
// exhausted or because Stop was called.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Stop halts the loop and then the source.
func (s *Session) Stop() {
	close(s.stopChan)
	s.wg.Wait()
	s.source.Stop()
	log.Printf("Detection session for source '%s' stopped after %d events.", s.source.Name(), s.processed)
}

func (s *Session) run() {
	defer s.wg.Done()
	for {
		select {
		case event, ok := <-s.source.Events():
			if !ok {
				log.Printf("Event source '%s' exhausted after %d events.", s.source.Name(), s.processed)
				return
			}
			s.process(event)
		case <-s.stopChan:
			return
		}
	}
}

// process runs the observe/extract/classify path for one event. The event
// always joins the rolling history; a classification failure skips only the
// alerting step for this event.
func (s *Session) process(event *model.NetworkEvent) {
	vector := s.extractor.Observe(event)

	result, err := s.clf.Classify(vector)
	if err != nil {
		s.collector.RecordSkipped()
		log.Printf("WARN: skipping event from %s: %v", event.SrcAddr, err)
		return
	}

	s.collector.RecordProcessed(event.Protocol.String())
	s.processed++
	if s.processed%progressEvery == 0 {
		elapsed := time.Since(s.progressAt).Seconds()
		if elapsed > 0 {
			log.Printf("Session '%s': processed %d events (%.1f events/sec)",
				s.source.Name(), s.processed, progressEvery/elapsed)
		}
		s.progressAt = time.Now()
	}

	// A nil result means detection is disabled; events still feed history
	// and traffic stats.
	if result == nil {
		return
	}
	if !result.IsThreat || result.Confidence <= s.threshold {
		return
	}

	s.collector.RecordThreat(result.Label)
	s.pipeline.Submit(&model.ThreatRecord{
		Timestamp:  event.ObservedAt,
		SrcAddr:    event.SrcAddr,
		DstAddr:    event.DstAddr,
		Label:      result.Label,
		Confidence: result.Confidence,
		Protocol:   event.Protocol.String(),
		Service:    feature.ServiceName(event),
		PacketSize: event.Length,
	})
}
