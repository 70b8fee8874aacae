// Package manager wires the detection engine together: the classifier, one
// detection session per event source, the alert pipeline with its sinks, and
// the periodic stats snapshotter.
package manager

import (
	"fmt"
	"log"
	"sync"
	"time"

	"NetSentry/internal/alerter"
	"NetSentry/internal/classifier"
	"NetSentry/internal/config"
	"NetSentry/internal/engine/session"
	"NetSentry/internal/model"
	"NetSentry/internal/notification"
	"NetSentry/internal/snapshot"
	"NetSentry/internal/stats"
)

// flushEvery is how often queued alerts are written to the sinks.
const flushEvery = 5 * time.Second

// Manager owns the lifecycle of every engine component.
type Manager struct {
	clf       *classifier.Classifier
	collector *stats.Collector
	pipeline  *alerter.Pipeline
	digester  *alerter.Digester
	chWriter  *alerter.ClickHouseWriter

	sessions []*session.Session
	started  []*session.Session

	snapshotWriter   *snapshot.Writer
	snapshotInterval time.Duration

	done          chan struct{}
	snapshotterWg sync.WaitGroup
}

// Status summarizes engine health for status reporting. Detection carries
// the classifier state, so a disabled classifier is visible even when the
// threat counters read zero.
type Status struct {
	Detection  string         `json:"detection"`
	Sessions   int            `json:"sessions"`
	Suppressed uint64         `json:"alerts_suppressed"`
	Dropped    uint64         `json:"alerts_dropped"`
	Stats      stats.Snapshot `json:"stats"`
}

// NewManager builds the engine from config over the given event sources.
// The collector is shared with the sources, which use it to account for
// rejected observations.
func NewManager(cfg *config.Config, collector *stats.Collector, sources []model.EventSource) (*Manager, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no event sources configured")
	}

	window, err := time.ParseDuration(cfg.Detection.RateLimitWindow)
	if err != nil {
		return nil, fmt.Errorf("invalid rate_limit_window: %w", err)
	}

	m := &Manager{
		clf:       classifier.New(cfg.Detection.ModelPath),
		collector: collector,
		done:      make(chan struct{}),
	}

	// The JSONL alert log is always on; ClickHouse and the digester join
	// the sink list when configured.
	sinks := []model.AlertSink{alerter.NewJSONLWriter(cfg.Alerter.LogFile)}
	if cfg.ClickHouse.Enabled {
		chWriter, err := alerter.NewClickHouseWriter(cfg.ClickHouse)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize ClickHouse sink: %w", err)
		}
		m.chWriter = chWriter
		sinks = append(sinks, chWriter)
	}

	var notifiers []model.Notifier
	if cfg.Alerter.EnableEmail {
		if cfg.SMTP.Host != "" {
			notifiers = append(notifiers, notification.NewEmailNotifier(cfg.SMTP))
		} else {
			log.Println("Email notifications are enabled in config, but SMTP is not configured.")
		}
	}
	if cfg.Alerter.EnableWebhook && cfg.Alerter.WebhookURL != "" {
		notifiers = append(notifiers, notification.NewWebhookNotifier(cfg.Alerter.WebhookURL))
	}
	if len(notifiers) > 0 {
		digester, err := alerter.NewDigester(cfg.Alerter, notifiers)
		if err != nil {
			return nil, fmt.Errorf("failed to create digester: %w", err)
		}
		m.digester = digester
		sinks = append(sinks, digester)
		log.Printf("Alert digester enabled with %d notifier(s).", len(notifiers))
	}

	limiter := alerter.NewRateLimiter(window, cfg.Detection.RateLimitMax)
	m.pipeline = alerter.NewPipeline(limiter, sinks, cfg.Engine.SizeOfEventChannel, flushEvery)

	for _, source := range sources {
		m.sessions = append(m.sessions, session.New(source, m.clf, m.collector, m.pipeline, cfg.Detection.ConfidenceThreshold))
	}

	if cfg.Engine.StorageRootPath != "" {
		interval, err := time.ParseDuration(cfg.Engine.SnapshotInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid snapshot_interval: %w", err)
		}
		m.snapshotWriter = snapshot.NewWriter(cfg.Engine.StorageRootPath)
		m.snapshotInterval = interval
	}

	return m, nil
}

// Start launches the pipeline, the digester, the snapshotter, and every
// detection session.
func (m *Manager) Start() error {
	m.pipeline.Start()
	if m.digester != nil {
		m.digester.Start()
	}
	if m.snapshotWriter != nil {
		m.snapshotterWg.Add(1)
		go m.runSnapshotter()
		log.Printf("Started stats snapshotter with interval %s", m.snapshotInterval)
	}

	for _, s := range m.sessions {
		if err := s.Start(); err != nil {
			return fmt.Errorf("failed to start session: %w", err)
		}
		m.started = append(m.started, s)
	}

	log.Printf("Engine manager started with %d session(s).", len(m.started))
	return nil
}

// Wait blocks until every running session's source is exhausted. Finite
// sources like pcap replays end on their own; live sources never do.
func (m *Manager) Wait() {
	for _, s := range m.started {
		s.Wait()
	}
}

// Stop gracefully shuts down the engine.
func (m *Manager) Stop() {
	log.Println("Engine manager stopping...")

	// 1. Stop the detection sessions; no new classifications after this.
	for _, s := range m.started {
		s.Stop()
	}

	// 2. Flush the alert pipeline into the sinks, including the digester.
	m.pipeline.Stop()

	// 3. Let the digester send its final digest.
	if m.digester != nil {
		m.digester.Stop()
	}

	// 4. Take a final stats snapshot and stop the snapshotter.
	close(m.done)
	m.snapshotterWg.Wait()

	// 5. Release the ClickHouse connection.
	if m.chWriter != nil {
		m.chWriter.Close()
	}

	log.Println("Engine manager stopped.")
}

func (m *Manager) runSnapshotter() {
	defer m.snapshotterWg.Done()
	ticker := time.NewTicker(m.snapshotInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.takeSnapshot()
		case <-m.done:
			m.takeSnapshot()
			return
		}
	}
}

func (m *Manager) takeSnapshot() {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	if err := m.snapshotWriter.Write(m.collector.Snapshot(), timestamp); err != nil {
		log.Printf("Error writing stats snapshot: %v", err)
		return
	}
	log.Printf("Stats snapshot written at %s.", timestamp)
}

// Classifier exposes detection state for status reporting.
func (m *Manager) Classifier() *classifier.Classifier {
	return m.clf
}

// Stats returns a point-in-time view of the traffic counters.
func (m *Manager) Stats() stats.Snapshot {
	return m.collector.Snapshot()
}

// RecentAlerts returns the most recent alerts raised by this engine.
func (m *Manager) RecentAlerts() []*model.ThreatRecord {
	return m.pipeline.Recent()
}

// Status reports engine health.
func (m *Manager) Status() Status {
	return Status{
		Detection:  m.clf.State().String(),
		Sessions:   len(m.started),
		Suppressed: m.pipeline.Suppressed(),
		Dropped:    m.pipeline.Dropped(),
		Stats:      m.collector.Snapshot(),
	}
}
