// Package sim generates synthetic traffic as an engine event source, for
// demos and load tests without a live capture point. Most events model
// ordinary client/server exchanges; a configurable fraction are bursts
// shaped like common attack patterns.
package sim

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"NetSentry/internal/config"
	"NetSentry/internal/factory"
	"NetSentry/internal/model"
	"NetSentry/internal/stats"
)

func init() {
	factory.RegisterSource("sim", func(cfg *config.Config, _ *stats.Collector) (model.EventSource, error) {
		return NewSource(cfg.Sim, cfg.Engine.SizeOfEventChannel)
	})
}

// servicePorts are the destination ports ordinary simulated traffic targets.
var servicePorts = []uint16{80, 443, 53, 22, 25, 110, 143, 3389}

// Source produces synthetic NetworkEvents on a fixed tick. A non-zero seed
// makes the stream reproducible.
type Source struct {
	rng          *rand.Rand
	tickInterval time.Duration
	minPerTick   int
	maxPerTick   int
	threatProb   float64

	events   chan *model.NetworkEvent
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewSource creates a simulator from config.
func NewSource(cfg config.SimConfig, buffer int) (*Source, error) {
	tick, err := time.ParseDuration(cfg.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("invalid tick_interval: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	minPerTick, maxPerTick := cfg.MinEventsPerTick, cfg.MaxEventsPerTick
	if minPerTick <= 0 {
		minPerTick = 1
	}
	if maxPerTick < minPerTick {
		maxPerTick = minPerTick
	}
	if buffer <= 0 {
		buffer = 1000
	}

	return &Source{
		rng:          rand.New(rand.NewSource(seed)),
		tickInterval: tick,
		minPerTick:   minPerTick,
		maxPerTick:   maxPerTick,
		threatProb:   cfg.ThreatProbability,
		events:       make(chan *model.NetworkEvent, buffer),
		stopChan:     make(chan struct{}),
	}, nil
}

// Name identifies the source in logs and status output.
func (s *Source) Name() string {
	return "sim"
}

// Start launches the generator goroutine.
func (s *Source) Start() error {
	s.wg.Add(1)
	go s.run()
	log.Printf("Traffic simulator started: %d-%d events per %s, threat probability %.3f",
		s.minPerTick, s.maxPerTick, s.tickInterval, s.threatProb)
	return nil
}

// Events returns the channel on which generated events are delivered.
func (s *Source) Events() <-chan *model.NetworkEvent {
	return s.events
}

// Stop halts generation.
func (s *Source) Stop() {
	close(s.stopChan)
	s.wg.Wait()
}

func (s *Source) run() {
	defer s.wg.Done()
	defer close(s.events)

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !s.tick() {
				return
			}
		case <-s.stopChan:
			return
		}
	}
}

// tick emits one tick's worth of traffic. It reports false when the source
// was stopped mid-burst.
func (s *Source) tick() bool {
	n := s.minPerTick + s.rng.Intn(s.maxPerTick-s.minPerTick+1)
	for i := 0; i < n; i++ {
		if s.rng.Float64() < s.threatProb {
			if !s.emitAttack() {
				return false
			}
			continue
		}
		if !s.emit(s.normalEvent()) {
			return false
		}
	}
	return true
}

func (s *Source) emit(event *model.NetworkEvent) bool {
	select {
	case s.events <- event:
		return true
	case <-s.stopChan:
		return false
	}
}

// normalEvent models one packet of an ordinary client/server exchange.
func (s *Source) normalEvent() *model.NetworkEvent {
	flags := model.TCPAck
	if s.rng.Intn(4) == 0 {
		flags = model.TCPSyn
	} else if s.rng.Intn(3) == 0 {
		flags |= model.TCPPsh
	}
	return &model.NetworkEvent{
		SrcAddr:    s.clientAddr(),
		DstAddr:    s.serverAddr(),
		SrcPort:    s.ephemeralPort(),
		DstPort:    servicePorts[s.rng.Intn(len(servicePorts))],
		Protocol:   model.ProtocolTCP,
		TCPFlags:   flags,
		Length:     60 + s.rng.Intn(1441),
		ObservedAt: time.Now(),
	}
}

// emitAttack injects one burst shaped like a known attack pattern.
func (s *Source) emitAttack() bool {
	switch s.rng.Intn(5) {
	case 0: // SYN flood against one service
		src, dst := s.clientAddr(), s.serverAddr()
		for i := 0; i < 20+s.rng.Intn(21); i++ {
			ok := s.emit(&model.NetworkEvent{
				SrcAddr: src, DstAddr: dst,
				SrcPort: s.ephemeralPort(), DstPort: 80,
				Protocol: model.ProtocolTCP, TCPFlags: model.TCPSyn,
				Length: 60, ObservedAt: time.Now(),
			})
			if !ok {
				return false
			}
		}
	case 1: // port sweep of one host
		src, dst := s.clientAddr(), s.serverAddr()
		for i := 0; i < 30; i++ {
			ok := s.emit(&model.NetworkEvent{
				SrcAddr: src, DstAddr: dst,
				SrcPort: s.ephemeralPort(), DstPort: uint16(1 + s.rng.Intn(1024)),
				Protocol: model.ProtocolTCP, TCPFlags: model.TCPSyn,
				Length: 60, ObservedAt: time.Now(),
			})
			if !ok {
				return false
			}
		}
	case 2: // address sweep with ICMP echoes
		src := s.clientAddr()
		for i := 0; i < 25; i++ {
			ok := s.emit(&model.NetworkEvent{
				SrcAddr: src, DstAddr: fmt.Sprintf("10.0.0.%d", 1+s.rng.Intn(250)),
				Protocol: model.ProtocolICMP,
				Length:   84, ObservedAt: time.Now(),
			})
			if !ok {
				return false
			}
		}
	case 3: // ICMP flood toward one target
		dst := s.serverAddr()
		for i := 0; i < 30; i++ {
			ok := s.emit(&model.NetworkEvent{
				SrcAddr: s.clientAddr(), DstAddr: dst,
				Protocol: model.ProtocolICMP,
				Length:   1066, ObservedAt: time.Now(),
			})
			if !ok {
				return false
			}
		}
	default: // land-style loopback packet
		addr := s.serverAddr()
		return s.emit(&model.NetworkEvent{
			SrcAddr: addr, DstAddr: addr,
			SrcPort: 80, DstPort: 80,
			Protocol: model.ProtocolTCP, TCPFlags: model.TCPSyn,
			Length: 60, ObservedAt: time.Now(),
		})
	}
	return true
}

func (s *Source) clientAddr() string {
	return fmt.Sprintf("192.168.1.%d", 2+s.rng.Intn(253))
}

func (s *Source) serverAddr() string {
	return fmt.Sprintf("10.0.0.%d", 1+s.rng.Intn(5))
}

func (s *Source) ephemeralPort() uint16 {
	return uint16(32768 + s.rng.Intn(28232))
}
