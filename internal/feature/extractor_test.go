package feature

import (
	"fmt"
	"testing"
	"time"

	"NetSentry/internal/model"
)

func tcpEvent(src, dst string, srcPort, dstPort uint16) *model.NetworkEvent {
	return &model.NetworkEvent{
		SrcAddr:    src,
		DstAddr:    dst,
		SrcPort:    srcPort,
		DstPort:    dstPort,
		Protocol:   model.ProtocolTCP,
		TCPFlags:   model.TCPSyn,
		Length:     60,
		ObservedAt: time.Now(),
	}
}

func TestExtractShapeStable(t *testing.T) {
	x := NewExtractor()

	// The emitted shape must not depend on how much history has accumulated.
	for i := 0; i < 250; i++ {
		event := tcpEvent(fmt.Sprintf("10.0.0.%d", i%20), "10.1.0.1", 40000, uint16(80+i%3))
		v := x.Observe(event)
		if got := len(v.ToSlice()); got != FieldCount {
			t.Fatalf("vector %d has %d fields, want %d", i, got, FieldCount)
		}
	}
}

func TestExtractEmptyHistory(t *testing.T) {
	x := NewExtractor()
	v := x.Extract(tcpEvent("192.168.1.50", "10.0.0.1", 40000, 80))

	if v.Count != 0 {
		t.Errorf("count = %v, want 0 with empty history", v.Count)
	}
	if v.SameSrvRate != 0 || v.DiffSrvRate != 0 {
		t.Errorf("rates = (%v, %v), want both 0 when same-source count is 0", v.SameSrvRate, v.DiffSrvRate)
	}
	if v.DstHostCount != 0 || v.DstHostSameSrvRate != 0 {
		t.Errorf("dst-host stats = (%v, %v), want 0 with empty history", v.DstHostCount, v.DstHostSameSrvRate)
	}
	if v.SrcBytes != 60 {
		t.Errorf("src_bytes = %v, want 60", v.SrcBytes)
	}
	if v.ProtocolType != 0 || v.Service != 1 || v.Flag != 1 {
		t.Errorf("codes = (%v, %v, %v), want tcp/http/S0 = (0, 1, 1)", v.ProtocolType, v.Service, v.Flag)
	}
}

func TestExtractSameSourceScenario(t *testing.T) {
	x := NewExtractor()

	// 1. Two events from one source: first to port 80, then to port 443.
	x.Observe(tcpEvent("192.168.1.50", "10.0.0.1", 40000, 80))
	x.Observe(tcpEvent("192.168.1.50", "10.0.0.1", 40001, 443))

	// 2. A third event from the same source back to port 80. Exactly one of
	// the two prior events shares its service.
	v := x.Extract(tcpEvent("192.168.1.50", "10.0.0.1", 40002, 80))

	if v.Count != 2 {
		t.Errorf("count = %v, want 2", v.Count)
	}
	if v.SameSrvRate != 0.5 {
		t.Errorf("same_srv_rate = %v, want 0.5", v.SameSrvRate)
	}
	if v.DiffSrvRate != 0.5 {
		t.Errorf("diff_srv_rate = %v, want 0.5", v.DiffSrvRate)
	}
	if got := v.SameSrvRate + v.DiffSrvRate; got != 1.0 {
		t.Errorf("same_srv_rate + diff_srv_rate = %v, want 1.0", got)
	}

	// 3. Destination-host statistics count both prior events to 10.0.0.1.
	if v.DstHostCount != 2 {
		t.Errorf("dst_host_count = %v, want 2", v.DstHostCount)
	}
	if v.DstHostSameSrvRate != 0.5 {
		t.Errorf("dst_host_same_srv_rate = %v, want 0.5", v.DstHostSameSrvRate)
	}
}

func TestExtractRatesSumToOne(t *testing.T) {
	x := NewExtractor()
	x.Observe(tcpEvent("10.0.0.2", "10.1.0.1", 40000, 80))
	x.Observe(tcpEvent("10.0.0.2", "10.1.0.1", 40001, 443))
	x.Observe(tcpEvent("10.0.0.2", "10.1.0.1", 40002, 22))

	v := x.Extract(tcpEvent("10.0.0.2", "10.1.0.1", 40003, 80))
	if v.Count != 3 {
		t.Fatalf("count = %v, want 3", v.Count)
	}
	sum := v.SameSrvRate + v.DiffSrvRate
	if diff := sum - 1.0; diff > 1e-12 || diff < -1e-12 {
		t.Errorf("same_srv_rate + diff_srv_rate = %v, want 1.0", sum)
	}
}

func TestExtractIdempotent(t *testing.T) {
	x := NewExtractor()
	x.Observe(tcpEvent("10.0.0.3", "10.1.0.1", 40000, 80))
	x.Observe(tcpEvent("10.0.0.4", "10.1.0.1", 40001, 443))

	event := tcpEvent("10.0.0.3", "10.1.0.1", 40002, 80)
	first := x.Extract(event)
	second := x.Extract(event)
	if first != second {
		t.Errorf("Extract is not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestExtractWindowBoundary(t *testing.T) {
	x := NewExtractor()

	// Five events from source A, then enough from source B to push A out of
	// the trailing statistics window.
	for i := 0; i < 5; i++ {
		x.Observe(tcpEvent("10.0.0.5", "10.1.0.1", uint16(40000+i), 80))
	}
	for i := 0; i < 100; i++ {
		x.Observe(tcpEvent("10.9.9.9", "10.1.0.2", uint16(41000+i), 443))
	}

	v := x.Extract(tcpEvent("10.0.0.5", "10.1.0.1", 42000, 80))
	if v.Count != 0 {
		t.Errorf("count = %v, want 0 once source A left the window", v.Count)
	}
	if v.SameSrvRate != 0 || v.DiffSrvRate != 0 {
		t.Errorf("rates = (%v, %v), want 0 once source A left the window", v.SameSrvRate, v.DiffSrvRate)
	}
}

func TestExtractCountCeilings(t *testing.T) {
	x := NewExtractor()
	for i := 0; i < 100; i++ {
		x.Observe(tcpEvent("10.0.0.6", "10.1.0.3", uint16(40000+i), 9999))
	}

	v := x.Extract(tcpEvent("10.0.0.6", "10.1.0.3", 43000, 9999))
	if v.Count != 100 {
		t.Errorf("count = %v, want ceiling 100", v.Count)
	}
	if v.SrvCount != 50 {
		t.Errorf("srv_count = %v, want ceiling 50", v.SrvCount)
	}
	if v.DstHostCount != 100 {
		t.Errorf("dst_host_count = %v, want ceiling 100", v.DstHostCount)
	}
	if v.DstHostSrvCount != 50 {
		t.Errorf("dst_host_srv_count = %v, want ceiling 50", v.DstHostSrvCount)
	}
	// Ceilings cap counts only; rates still come from the raw window.
	if v.SameSrvRate != 1.0 {
		t.Errorf("same_srv_rate = %v, want 1.0", v.SameSrvRate)
	}
	if v.DstHostSameSrvRate != 1.0 {
		t.Errorf("dst_host_same_srv_rate = %v, want 1.0", v.DstHostSameSrvRate)
	}
}

func TestExtractLandIndicator(t *testing.T) {
	x := NewExtractor()
	event := &model.NetworkEvent{
		SrcAddr:    "10.0.0.9",
		DstAddr:    "10.0.0.9",
		Protocol:   model.ProtocolICMP,
		Length:     84,
		ObservedAt: time.Now(),
	}

	v := x.Extract(event)
	if v.Land != 1 {
		t.Errorf("land = %v, want 1 for a self-connection", v.Land)
	}
	if v.ProtocolType != 2 {
		t.Errorf("protocol_type = %v, want 2 for icmp", v.ProtocolType)
	}
	if v.Service != 0 || v.Flag != 4 {
		t.Errorf("service/flag = (%v, %v), want (0, 4) for a portless protocol", v.Service, v.Flag)
	}
}

func TestExtractUrgentBit(t *testing.T) {
	x := NewExtractor()
	event := tcpEvent("10.0.0.10", "10.1.0.1", 40000, 80)
	event.TCPFlags = model.TCPUrg | model.TCPAck

	if v := x.Extract(event); v.Urgent != 1 {
		t.Errorf("urgent = %v, want 1 when URG is set", v.Urgent)
	}
}

func BenchmarkObserve(b *testing.B) {
	x := NewExtractor()
	events := make([]*model.NetworkEvent, 512)
	for i := range events {
		events[i] = tcpEvent(fmt.Sprintf("10.0.%d.%d", i%4, i%250), "10.1.0.1", uint16(40000+i), uint16(80+i%5))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Observe(events[i%len(events)])
	}
}
