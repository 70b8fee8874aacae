package pcap

import (
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"NetSentry/internal/model"
	"NetSentry/internal/stats"
)

func serializeTCP(t *testing.T, src, dst string, dstPort uint16) []byte {
	t.Helper()
	eth := &layers.Ethernet{
		SrcMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x01},
		DstMAC:       net.HardwareAddr{0x02, 0x00, 0x00, 0x00, 0x00, 0x02},
		EthernetType: layers.EthernetTypeIPv4,
	}
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolTCP,
		SrcIP:    net.ParseIP(src),
		DstIP:    net.ParseIP(dst),
	}
	tcp := &layers.TCP{SrcPort: 40000, DstPort: layers.TCPPort(dstPort), SYN: true}
	if err := tcp.SetNetworkLayerForChecksum(ip); err != nil {
		t.Fatalf("failed to set network layer: %v", err)
	}

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{ComputeChecksums: true, FixLengths: true}
	if err := gopacket.SerializeLayers(buf, opts, eth, ip, tcp); err != nil {
		t.Fatalf("failed to serialize packet: %v", err)
	}
	return buf.Bytes()
}

func writePcap(t *testing.T, linkType layers.LinkType, packets [][]byte, times []time.Time) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "replay.pcap")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create pcap: %v", err)
	}
	defer f.Close()

	w := pcapgo.NewWriter(f)
	if err := w.WriteFileHeader(65536, linkType); err != nil {
		t.Fatalf("failed to write pcap header: %v", err)
	}
	for i, data := range packets {
		ci := gopacket.CaptureInfo{Timestamp: times[i], CaptureLength: len(data), Length: len(data)}
		if err := w.WritePacket(ci, data); err != nil {
			t.Fatalf("failed to write packet %d: %v", i, err)
		}
	}
	return path
}

func TestReplaySourceDeliversEvents(t *testing.T) {
	// Timestamps at microsecond precision, matching the pcap format.
	base := time.Date(2025, 11, 3, 10, 0, 0, 250000000, time.UTC)
	packets := [][]byte{
		serializeTCP(t, "192.168.1.10", "10.0.0.1", 80),
		make([]byte, 10), // too short to decode, must be rejected
		serializeTCP(t, "192.168.1.11", "10.0.0.1", 443),
	}
	times := []time.Time{base, base.Add(time.Millisecond), base.Add(2 * time.Millisecond)}
	path := writePcap(t, layers.LinkTypeEthernet, packets, times)

	collector := stats.NewCollector()
	source, err := NewReplaySource(path, collector, 10)
	if err != nil {
		t.Fatalf("failed to open replay source: %v", err)
	}
	if err := source.Start(); err != nil {
		t.Fatalf("failed to start replay: %v", err)
	}

	var got []*model.NetworkEvent
	for event := range source.Events() {
		got = append(got, event)
	}
	source.Stop()

	if len(got) != 2 {
		t.Fatalf("delivered %d events, want 2", len(got))
	}
	if got[0].SrcAddr != "192.168.1.10" || got[1].SrcAddr != "192.168.1.11" {
		t.Errorf("sources = %s, %s", got[0].SrcAddr, got[1].SrcAddr)
	}
	if !got[0].ObservedAt.Equal(times[0]) {
		t.Errorf("ObservedAt = %v, want capture time %v", got[0].ObservedAt, times[0])
	}
	if snap := collector.Snapshot(); snap.Rejected != 1 {
		t.Errorf("rejected = %d, want 1", snap.Rejected)
	}
}

func TestReplaySourceRawIP(t *testing.T) {
	ip := &layers.IPv4{
		Version:  4,
		IHL:      5,
		TTL:      64,
		Protocol: layers.IPProtocolUDP,
		SrcIP:    net.ParseIP("172.16.0.5"),
		DstIP:    net.ParseIP("172.16.0.9"),
	}
	udp := &layers.UDP{SrcPort: 5353, DstPort: 53}
	if err := udp.SetNetworkLayerForChecksum(ip); err != nil {
		t.Fatalf("failed to set network layer: %v", err)
	}
	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{ComputeChecksums: true, FixLengths: true}
	if err := gopacket.SerializeLayers(buf, opts, ip, udp); err != nil {
		t.Fatalf("failed to serialize packet: %v", err)
	}

	at := time.Date(2025, 11, 3, 11, 0, 0, 0, time.UTC)
	path := writePcap(t, layers.LinkTypeRaw, [][]byte{buf.Bytes()}, []time.Time{at})

	source, err := NewReplaySource(path, nil, 10)
	if err != nil {
		t.Fatalf("failed to open replay source: %v", err)
	}
	if err := source.Start(); err != nil {
		t.Fatalf("failed to start replay: %v", err)
	}

	var got []*model.NetworkEvent
	for event := range source.Events() {
		got = append(got, event)
	}
	source.Stop()

	if len(got) != 1 {
		t.Fatalf("delivered %d events, want 1", len(got))
	}
	if got[0].Protocol != model.ProtocolUDP || got[0].DstPort != 53 {
		t.Errorf("event = %+v, want udp to port 53", got[0])
	}
}

func TestNewReplaySourceMissingFile(t *testing.T) {
	if _, err := NewReplaySource(filepath.Join(t.TempDir(), "absent.pcap"), nil, 10); err == nil {
		t.Fatal("expected an error for a missing capture file")
	}
}
