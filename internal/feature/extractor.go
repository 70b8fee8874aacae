package feature

import "NetSentry/internal/model"

const (
	// HistoryCapacity bounds the rolling event history.
	HistoryCapacity = 1000
	// statsWindow is how many trailing history events feed windowed statistics.
	statsWindow = 100

	// Ceilings applied to the emitted count fields.
	countCeiling    = 100
	srvCountCeiling = 50
)

// Extractor turns events into feature vectors. It owns a private rolling
// history; an Extractor must not be shared across processing loops.
type Extractor struct {
	history *History
}

// NewExtractor creates an Extractor with an empty history.
func NewExtractor() *Extractor {
	return &Extractor{history: NewHistory(HistoryCapacity)}
}

// Extract derives the feature vector for event against the current history
// snapshot. The event itself is not part of the window, and Extract does not
// modify the history, so repeated calls with the same state yield identical
// vectors.
func (x *Extractor) Extract(event *model.NetworkEvent) Vector {
	v := Vector{
		ProtocolType: protocolCode(event.Protocol),
		Service:      serviceCode(ServiceName(event)),
		Flag:         flagCode(FlagName(event)),
		SrcBytes:     float64(event.Length),
	}
	if event.TCPFlags&model.TCPUrg != 0 {
		v.Urgent = 1
	}
	if event.SrcAddr == event.DstAddr {
		v.Land = 1
	}

	start := x.history.Len() - statsWindow
	if start < 0 {
		start = 0
	}

	var sameSrc, sameSrcSameSvc int
	var sameSvc, sameSvcDiffHost int
	var sameDst, sameDstSameSvc, sameDstSamePort int
	for i := start; i < x.history.Len(); i++ {
		h := x.history.At(i)
		if h.SrcAddr == event.SrcAddr {
			sameSrc++
			if h.DstPort == event.DstPort {
				sameSrcSameSvc++
			}
		}
		if h.DstPort == event.DstPort {
			sameSvc++
			if h.DstAddr != event.DstAddr {
				sameSvcDiffHost++
			}
		}
		if h.DstAddr == event.DstAddr {
			sameDst++
			if h.DstPort == event.DstPort {
				sameDstSameSvc++
			}
			if h.SrcPort == event.SrcPort {
				sameDstSamePort++
			}
		}
	}

	// Rates divide the raw window counts; ceilings apply only to the emitted
	// count fields.
	v.Count = float64(capCount(sameSrc, countCeiling))
	v.SrvCount = float64(capCount(sameSvc, srvCountCeiling))
	if sameSrc > 0 {
		v.SameSrvRate = float64(sameSrcSameSvc) / float64(sameSrc)
		v.DiffSrvRate = 1 - v.SameSrvRate
		if v.DiffSrvRate < 0 {
			v.DiffSrvRate = 0
		}
	}
	if sameSvc > 0 {
		v.SrvDiffHostRate = float64(sameSvcDiffHost) / float64(sameSvc)
	}

	v.DstHostCount = float64(capCount(sameDst, countCeiling))
	v.DstHostSrvCount = float64(capCount(sameDstSameSvc, srvCountCeiling))
	if sameDst > 0 {
		v.DstHostSameSrvRate = float64(sameDstSameSvc) / float64(sameDst)
		v.DstHostDiffSrvRate = 1 - v.DstHostSameSrvRate
		if v.DstHostDiffSrvRate < 0 {
			v.DstHostDiffSrvRate = 0
		}
		v.DstHostSameSrcPortRate = float64(sameDstSamePort) / float64(sameDst)
	}

	return v
}

// Commit appends event to the rolling history, evicting the oldest entry at
// capacity. Call it after Extract so the window never contains the event
// being scored.
func (x *Extractor) Commit(event *model.NetworkEvent) {
	x.history.Append(event)
}

// Observe extracts the vector for event and then commits it, in one step.
func (x *Extractor) Observe(event *model.NetworkEvent) Vector {
	v := x.Extract(event)
	x.Commit(event)
	return v
}

func capCount(n, ceiling int) int {
	if n > ceiling {
		return ceiling
	}
	return n
}
