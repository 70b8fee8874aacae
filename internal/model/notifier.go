package model

// Notifier delivers a rendered alert digest to an external channel
// (email, webhook). Implementations decide how subject and body are encoded.
type Notifier interface {
	Send(subject, body string) error
}
