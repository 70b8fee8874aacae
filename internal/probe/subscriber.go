package probe

import (
	"log"
	"sync"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"

	v1 "NetSentry/api/gen/v1"
	"NetSentry/internal/config"
	"NetSentry/internal/factory"
	"NetSentry/internal/model"
	"NetSentry/internal/stats"
)

func init() {
	factory.RegisterSource("nats", func(cfg *config.Config, collector *stats.Collector) (model.EventSource, error) {
		return NewSubscriber(cfg.Probe, collector)
	})
}

// inboxSize bounds undelivered NATS messages; beyond it the subscription
// drops messages rather than stalling the publisher.
const inboxSize = 1000

// Subscriber receives events from a NATS subject and exposes them as an
// EventSource for the detection engine.
type Subscriber struct {
	nc        *nats.Conn
	sub       *nats.Subscription
	subject   string
	collector *stats.Collector

	inbox    chan *nats.Msg
	events   chan *model.NetworkEvent
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewSubscriber creates a new NATS subscriber. collector may be nil, which
// disables rejection accounting.
func NewSubscriber(cfg config.ProbeConfig, collector *stats.Collector) (*Subscriber, error) {
	nc, err := nats.Connect(cfg.NATSURL,
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Printf("WARN: NATS subscription error: %v", err)
		}))
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Subscriber{
		nc:        nc,
		subject:   cfg.Subject,
		collector: collector,
		inbox:     make(chan *nats.Msg, inboxSize),
		events:    make(chan *model.NetworkEvent),
		stopChan:  make(chan struct{}),
	}, nil
}

// Name identifies the source in logs and status output.
func (s *Subscriber) Name() string {
	return "nats:" + s.subject
}

// Start subscribes to the configured subject and begins delivering events.
func (s *Subscriber) Start() error {
	sub, err := s.nc.ChanSubscribe(s.subject, s.inbox)
	if err != nil {
		return err
	}
	s.sub = sub
	s.wg.Add(1)
	go s.forward()
	log.Printf("Subscribed to '%s'. Waiting for messages...", s.subject)
	return nil
}

// Events returns the channel on which decoded events are delivered.
func (s *Subscriber) Events() <-chan *model.NetworkEvent {
	return s.events
}

// forward decodes inbox messages onto the events channel. It is the only
// writer to events, so closing the channel on exit is safe.
func (s *Subscriber) forward() {
	defer s.wg.Done()
	defer close(s.events)
	for {
		select {
		case msg := <-s.inbox:
			var pb v1.PacketEvent
			if err := proto.Unmarshal(msg.Data, &pb); err != nil {
				log.Printf("Error unmarshalling protobuf: %v", err)
				if s.collector != nil {
					s.collector.RecordRejected()
				}
				continue
			}
			select {
			case s.events <- FromProto(&pb):
			case <-s.stopChan:
				return
			}
		case <-s.stopChan:
			return
		}
	}
}

// Stop unsubscribes and closes the NATS connection.
func (s *Subscriber) Stop() {
	if s.sub != nil {
		s.sub.Unsubscribe()
	}
	close(s.stopChan)
	s.wg.Wait()
	if s.nc != nil {
		s.nc.Close()
		log.Println("NATS connection closed.")
	}
}
