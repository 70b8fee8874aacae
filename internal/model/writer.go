package model

import "context"

// AlertSink defines a generic interface for persisting threat records.
type AlertSink interface {
	// Write persists a batch of threat records. Implementations are expected
	// to be safe for repeated calls with overlapping timestamps.
	Write(ctx context.Context, alerts []*ThreatRecord) error

	// Name identifies the sink in logs.
	Name() string
}
