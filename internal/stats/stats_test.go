package stats

import (
	"sync"
	"testing"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector()

	c.RecordProcessed("tcp")
	c.RecordProcessed("tcp")
	c.RecordProcessed("udp")
	c.RecordRejected()
	c.RecordSkipped()
	c.RecordThreat("neptune")
	c.RecordThreat("neptune")
	c.RecordThreat("smurf")

	s := c.Snapshot()
	if s.Processed != 3 {
		t.Errorf("Processed = %d, want 3", s.Processed)
	}
	if s.Rejected != 1 || s.Skipped != 1 {
		t.Errorf("Rejected/Skipped = %d/%d, want 1/1", s.Rejected, s.Skipped)
	}
	if s.Threats != 3 {
		t.Errorf("Threats = %d, want 3", s.Threats)
	}
	if s.ByLabel["neptune"] != 2 || s.ByLabel["smurf"] != 1 {
		t.Errorf("ByLabel = %v, want neptune:2 smurf:1", s.ByLabel)
	}
	if s.ByProtocol["tcp"] != 2 || s.ByProtocol["udp"] != 1 {
		t.Errorf("ByProtocol = %v, want tcp:2 udp:1", s.ByProtocol)
	}
	if s.StartedAt.IsZero() {
		t.Error("StartedAt should be set")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewCollector()
	c.RecordThreat("neptune")

	s := c.Snapshot()
	s.ByLabel["neptune"] = 999
	s.ByProtocol["bogus"] = 1

	if got := c.Snapshot().ByLabel["neptune"]; got != 1 {
		t.Errorf("mutating a snapshot leaked into the collector: %d", got)
	}
	if _, ok := c.Snapshot().ByProtocol["bogus"]; ok {
		t.Error("mutating a snapshot leaked into the collector")
	}
}

func TestCollectorConcurrent(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.RecordProcessed("tcp")
				if j%10 == 0 {
					c.RecordThreat("portsweep")
				}
			}
		}()
	}
	wg.Wait()

	s := c.Snapshot()
	if s.Processed != 8000 {
		t.Errorf("Processed = %d, want 8000", s.Processed)
	}
	if s.Threats != 800 {
		t.Errorf("Threats = %d, want 800", s.Threats)
	}
}
