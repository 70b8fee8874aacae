package persistent

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"

	"NetSentry/internal/config"
)

func captureInfo(n int, at time.Time) gopacket.CaptureInfo {
	return gopacket.CaptureInfo{Timestamp: at, CaptureLength: n, Length: n}
}

func TestArchiverWritesReadablePcap(t *testing.T) {
	dir := t.TempDir()
	cfg := config.PersistenceConfig{Enabled: true, OutputDir: dir, FileSizeLimit: 1}
	a, err := NewArchiver(cfg, layers.LinkTypeEthernet)
	if err != nil {
		t.Fatalf("failed to start archiver: %v", err)
	}

	// 1. Enqueue two packets and shut down, which flushes the file.
	first := []byte{0xde, 0xad, 0xbe, 0xef}
	second := []byte{0xca, 0xfe}
	at := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	a.Enqueue(captureInfo(len(first), at), first)
	a.Enqueue(captureInfo(len(second), at.Add(time.Second)), second)
	a.Stop()

	// 2. The archive directory holds exactly one pcap file.
	matches, err := filepath.Glob(filepath.Join(dir, "*.pcap"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("archive files = %v (err %v), want one pcap", matches, err)
	}

	// 3. The file reads back with the original payloads in order.
	f, err := os.Open(matches[0])
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	if err != nil {
		t.Fatalf("archive is not a valid pcap: %v", err)
	}
	if r.LinkType() != layers.LinkTypeEthernet {
		t.Errorf("link type = %v, want Ethernet", r.LinkType())
	}

	data, _, err := r.ReadPacketData()
	if err != nil {
		t.Fatalf("failed to read first packet: %v", err)
	}
	if !bytes.Equal(data, first) {
		t.Errorf("first packet = %x, want %x", data, first)
	}
	data, _, err = r.ReadPacketData()
	if err != nil {
		t.Fatalf("failed to read second packet: %v", err)
	}
	if !bytes.Equal(data, second) {
		t.Errorf("second packet = %x, want %x", data, second)
	}
}

func TestArchiverRotatesAtSizeLimit(t *testing.T) {
	dir := t.TempDir()
	a := &Archiver{
		dir:        dir,
		limit:      2000,
		linkType:   layers.LinkTypeEthernet,
		packetChan: make(chan *capturedPacket, queueSize),
		stopChan:   make(chan struct{}),
	}
	a.wg.Add(1)
	go a.run()

	// Two 1000-byte packets fill the first file; the third forces a rotation.
	payload := make([]byte, 1000)
	at := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		a.Enqueue(captureInfo(len(payload), at), payload)
	}
	a.Stop()

	matches, err := filepath.Glob(filepath.Join(dir, "*.pcap"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("archive files = %d, want 2 after rotation", len(matches))
	}
}

func TestArchiverRecoversFromRotationFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "archive")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create archive directory: %v", err)
	}
	a := &Archiver{
		dir:        dir,
		limit:      500,
		linkType:   layers.LinkTypeEthernet,
		packetChan: make(chan *capturedPacket, queueSize),
		stopChan:   make(chan struct{}),
	}
	a.wg.Add(1)
	go a.run()

	// 1. One oversized packet fills the first file, so the next packet
	// forces a rotation.
	payload := make([]byte, 1000)
	at := time.Date(2025, 11, 3, 10, 0, 0, 0, time.UTC)
	a.Enqueue(captureInfo(len(payload), at), payload)
	waitForDrain(t, a)

	// 2. Remove the directory out from under the writer. The rotation
	// closes the old file and then fails to create its successor.
	if err := os.RemoveAll(dir); err != nil {
		t.Fatalf("failed to remove archive directory: %v", err)
	}
	a.Enqueue(captureInfo(len(payload), at.Add(time.Second)), payload)
	waitForDrain(t, a)

	// 3. Restore the directory. The writer must start a fresh file rather
	// than touch the handle the failed rotation already closed.
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to recreate archive directory: %v", err)
	}
	final := []byte{0xca, 0xfe}
	a.Enqueue(captureInfo(len(final), at.Add(2*time.Second)), final)
	a.Stop()

	matches, err := filepath.Glob(filepath.Join(dir, "*.pcap"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("archive files = %v (err %v), want one pcap after recovery", matches, err)
	}

	f, err := os.Open(matches[0])
	if err != nil {
		t.Fatalf("failed to open archive: %v", err)
	}
	defer f.Close()
	r, err := pcapgo.NewReader(f)
	if err != nil {
		t.Fatalf("archive is not a valid pcap: %v", err)
	}
	data, _, err := r.ReadPacketData()
	if err != nil {
		t.Fatalf("failed to read recovered packet: %v", err)
	}
	if !bytes.Equal(data, final) {
		t.Errorf("recovered packet = %x, want %x", data, final)
	}
}

// waitForDrain blocks until the writer goroutine has consumed everything
// queued so far, so the test can change the filesystem between packets.
func waitForDrain(t *testing.T, a *Archiver) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for len(a.packetChan) > 0 {
		if time.Now().After(deadline) {
			t.Fatal("archiver did not drain its queue")
		}
		time.Sleep(5 * time.Millisecond)
	}
	// The last packet may still be inside the write call.
	time.Sleep(50 * time.Millisecond)
}
