package model

import (
	"strings"
	"time"
)

// Protocol identifies the transport protocol of an observed event.
type Protocol uint8

const (
	ProtocolTCP Protocol = iota
	ProtocolUDP
	ProtocolICMP
	ProtocolOther
)

func (p Protocol) String() string {
	switch p {
	case ProtocolTCP:
		return "tcp"
	case ProtocolUDP:
		return "udp"
	case ProtocolICMP:
		return "icmp"
	default:
		return "other"
	}
}

// ParseProtocol maps a protocol name to its Protocol value. Unknown names
// map to ProtocolOther, never an error.
func ParseProtocol(name string) Protocol {
	switch strings.ToLower(name) {
	case "tcp":
		return ProtocolTCP
	case "udp":
		return ProtocolUDP
	case "icmp":
		return ProtocolICMP
	default:
		return ProtocolOther
	}
}

// TCP control bits carried in NetworkEvent.TCPFlags.
const (
	TCPFin uint8 = 1 << iota
	TCPSyn
	TCPRst
	TCPPsh
	TCPAck
	TCPUrg
)

// NetworkEvent is the canonical record of one observed network interaction.
// Instances are immutable once constructed; they are appended to a session's
// rolling history and never mutated afterwards.
type NetworkEvent struct {
	SrcAddr    string
	DstAddr    string
	SrcPort    uint16 // 0 when not applicable (e.g. ICMP)
	DstPort    uint16
	Protocol   Protocol
	TCPFlags   uint8 // raw TCP flag bits, 0 for non-TCP
	Length     int   // observed size in bytes
	ObservedAt time.Time
}

// NormalLabel is the classifier label that means "no threat".
const NormalLabel = "normal"

// ClassificationResult is the outcome of classifying one feature vector.
type ClassificationResult struct {
	Label      string
	Confidence float64 // highest class probability, in [0,1]
	IsThreat   bool    // Label != NormalLabel
}

// ThreatRecord is the alert derived from a non-normal classification.
// The JSON field names are the on-disk alert log contract.
type ThreatRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	SrcAddr    string    `json:"source_ip"`
	DstAddr    string    `json:"destination_ip"`
	Label      string    `json:"attack_type"`
	Confidence float64   `json:"confidence"`
	Protocol   string    `json:"protocol"`
	Service    string    `json:"service"`
	PacketSize int       `json:"packet_size"`
}
