package feature

import (
	"testing"

	"NetSentry/internal/model"
)

func TestHistoryOrdering(t *testing.T) {
	h := NewHistory(8)
	for i := 0; i < 5; i++ {
		h.Append(&model.NetworkEvent{SrcPort: uint16(i)})
	}

	if h.Len() != 5 {
		t.Fatalf("Len = %d, want 5", h.Len())
	}
	for i := 0; i < 5; i++ {
		if got := h.At(i).SrcPort; got != uint16(i) {
			t.Errorf("At(%d).SrcPort = %d, want %d", i, got, i)
		}
	}
}

func TestHistoryFIFOEviction(t *testing.T) {
	// 1. Fill the buffer to its capacity.
	h := NewHistory(1000)
	for i := 0; i < 1000; i++ {
		h.Append(&model.NetworkEvent{SrcPort: uint16(i)})
	}
	if h.Len() != 1000 {
		t.Fatalf("Len = %d, want 1000", h.Len())
	}

	// 2. One more append must keep the length fixed and evict the oldest.
	h.Append(&model.NetworkEvent{SrcPort: 1000})
	if h.Len() != 1000 {
		t.Fatalf("Len after overflow = %d, want 1000", h.Len())
	}
	if got := h.At(0).SrcPort; got != 1 {
		t.Errorf("oldest entry SrcPort = %d, want 1 (entry 0 evicted)", got)
	}
	if got := h.At(999).SrcPort; got != 1000 {
		t.Errorf("newest entry SrcPort = %d, want 1000", got)
	}

	// 3. Eviction keeps working once the buffer has wrapped.
	for i := 1001; i < 1500; i++ {
		h.Append(&model.NetworkEvent{SrcPort: uint16(i)})
	}
	if h.Len() != 1000 {
		t.Fatalf("Len after wrap = %d, want 1000", h.Len())
	}
	if got := h.At(0).SrcPort; got != 500 {
		t.Errorf("oldest after wrap SrcPort = %d, want 500", got)
	}
}
