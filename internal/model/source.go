package model

// EventSource defines the common interface for anything that produces
// NetworkEvents, allowing different origins (pcap replay, NATS stream,
// synthetic traffic) to feed a monitoring session interchangeably.
type EventSource interface {
	// Name identifies the source in logs and status output.
	Name() string

	// Start begins producing events. It must be called before Events.
	Start() error

	// Events returns the channel on which events are delivered. The source
	// closes the channel when it has no more events to deliver.
	Events() <-chan *NetworkEvent

	// Stop halts production and releases resources. It is safe to call
	// after the events channel has been closed.
	Stop()
}
