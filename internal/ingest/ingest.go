package ingest

import (
	"errors"
	"fmt"
	"time"

	"NetSentry/internal/model"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// CaptureMode declares which header the first byte of a capture buffer
// belongs to. Header offsets differ between link-layer and IP-layer captures,
// so the caller states the mode explicitly; it is never inferred from the
// bytes themselves.
type CaptureMode int

const (
	// ModeEthernet is for captures that include the Ethernet header.
	ModeEthernet CaptureMode = iota
	// ModeRawIP is for captures whose buffers start at the IPv4 header.
	ModeRawIP
)

func (m CaptureMode) String() string {
	switch m {
	case ModeEthernet:
		return "ethernet"
	case ModeRawIP:
		return "raw_ip"
	}
	return "unknown"
}

// ParseCaptureMode maps a configuration string to a CaptureMode. An empty
// string selects ModeEthernet.
func ParseCaptureMode(name string) (CaptureMode, error) {
	switch name {
	case "", "ethernet":
		return ModeEthernet, nil
	case "raw_ip":
		return ModeRawIP, nil
	}
	return ModeEthernet, fmt.Errorf("unknown capture mode %q", name)
}

// ModeForLinkType maps a pcap link type to the capture mode that applies to
// packets read from that file or device.
func ModeForLinkType(linkType layers.LinkType) (CaptureMode, error) {
	switch linkType {
	case layers.LinkTypeEthernet:
		return ModeEthernet, nil
	case layers.LinkTypeRaw, layers.LinkTypeIPv4:
		return ModeRawIP, nil
	}
	return ModeEthernet, fmt.Errorf("unsupported link type %s", linkType)
}

// Rejection sentinels. A rejected observation is dropped by the caller and
// processing continues; rejection is never fatal.
var (
	ErrNotIPv4   = errors.New("not an IPv4 packet")
	ErrMalformed = errors.New("malformed packet")
)

// ParsePacket decodes one raw capture buffer into a NetworkEvent. Only IPv4
// is supported; other IP versions reject with ErrNotIPv4, and buffers too
// short or corrupt to decode reject with ErrMalformed. TCP and UDP ports are
// taken from the transport header; protocols without ports leave them zero.
func ParsePacket(data []byte, mode CaptureMode) (*model.NetworkEvent, error) {
	firstLayer := layers.LayerTypeEthernet
	if mode == ModeRawIP {
		firstLayer = layers.LayerTypeIPv4
		if len(data) == 0 || data[0]>>4 != 4 {
			return nil, ErrNotIPv4
		}
	}

	packet := gopacket.NewPacket(data, firstLayer, gopacket.Default)

	l := packet.Layer(layers.LayerTypeIPv4)
	if l == nil {
		if errLayer := packet.ErrorLayer(); errLayer != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, errLayer.Error())
		}
		return nil, ErrNotIPv4
	}
	ipLayer := l.(*layers.IPv4)

	// A truncated IPv4 header still shows up as a layer, just with its
	// fields unset. Reject it before the garbage reaches the history.
	if ipLayer.SrcIP == nil || ipLayer.DstIP == nil {
		if errLayer := packet.ErrorLayer(); errLayer != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, errLayer.Error())
		}
		return nil, fmt.Errorf("%w: truncated IPv4 header", ErrMalformed)
	}

	event := &model.NetworkEvent{
		SrcAddr:    ipLayer.SrcIP.String(),
		DstAddr:    ipLayer.DstIP.String(),
		Protocol:   model.ProtocolOther,
		Length:     len(data),
		ObservedAt: time.Now(), // Default to now, overwritten by capture metadata if available
	}
	if meta := packet.Metadata(); meta != nil && !meta.Timestamp.IsZero() {
		event.ObservedAt = meta.Timestamp
	}

	switch ipLayer.Protocol {
	case layers.IPProtocolTCP:
		l := packet.Layer(layers.LayerTypeTCP)
		if l == nil {
			return nil, fmt.Errorf("%w: truncated TCP header", ErrMalformed)
		}
		tcp := l.(*layers.TCP)
		event.Protocol = model.ProtocolTCP
		event.SrcPort = uint16(tcp.SrcPort)
		event.DstPort = uint16(tcp.DstPort)
		event.TCPFlags = tcpFlagBits(tcp)
	case layers.IPProtocolUDP:
		l := packet.Layer(layers.LayerTypeUDP)
		if l == nil {
			return nil, fmt.Errorf("%w: truncated UDP header", ErrMalformed)
		}
		udp := l.(*layers.UDP)
		event.Protocol = model.ProtocolUDP
		event.SrcPort = uint16(udp.SrcPort)
		event.DstPort = uint16(udp.DstPort)
	case layers.IPProtocolICMPv4:
		event.Protocol = model.ProtocolICMP
	}

	return event, nil
}

// FromConnection builds a NetworkEvent from an established connection tuple,
// as reported by a socket-table poll. The remote peer is treated as the
// source and the local endpoint as the destination. There are no packet
// bytes, so flags and length stay zero.
func FromConnection(localAddr string, localPort uint16, remoteAddr string, remotePort uint16, protoName string) *model.NetworkEvent {
	return &model.NetworkEvent{
		SrcAddr:    remoteAddr,
		DstAddr:    localAddr,
		SrcPort:    remotePort,
		DstPort:    localPort,
		Protocol:   model.ParseProtocol(protoName),
		ObservedAt: time.Now(),
	}
}

func tcpFlagBits(tcp *layers.TCP) uint8 {
	var flags uint8
	if tcp.FIN {
		flags |= model.TCPFin
	}
	if tcp.SYN {
		flags |= model.TCPSyn
	}
	if tcp.RST {
		flags |= model.TCPRst
	}
	if tcp.PSH {
		flags |= model.TCPPsh
	}
	if tcp.ACK {
		flags |= model.TCPAck
	}
	if tcp.URG {
		flags |= model.TCPUrg
	}
	return flags
}
