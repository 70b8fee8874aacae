package probe

import (
	"log"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"

	"NetSentry/internal/config"
	"NetSentry/internal/model"
)

// Publisher publishes captured network events to a NATS subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher creates a new NATS publisher.
func NewPublisher(cfg config.ProbeConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Publisher{nc: nc, subject: cfg.Subject}, nil
}

// Publish serializes an event to Protobuf and publishes it to the configured NATS subject.
func (p *Publisher) Publish(event *model.NetworkEvent) error {
	data, err := proto.Marshal(ToProto(event))
	if err != nil {
		return err
	}
	return p.nc.Publish(p.subject, data)
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}
