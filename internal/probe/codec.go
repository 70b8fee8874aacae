// Package probe moves network events between capture points and the
// detection engine over NATS, with optional pcap archiving on the probe side.
package probe

import (
	"google.golang.org/protobuf/types/known/timestamppb"

	v1 "NetSentry/api/gen/v1"
	"NetSentry/internal/model"
)

// ToProto converts a NetworkEvent to its wire representation.
func ToProto(event *model.NetworkEvent) *v1.PacketEvent {
	return &v1.PacketEvent{
		SrcAddr:    event.SrcAddr,
		DstAddr:    event.DstAddr,
		SrcPort:    uint32(event.SrcPort),
		DstPort:    uint32(event.DstPort),
		Protocol:   uint32(event.Protocol),
		TcpFlags:   uint32(event.TCPFlags),
		Size:       uint64(event.Length),
		ObservedAt: timestamppb.New(event.ObservedAt),
	}
}

// FromProto converts a wire PacketEvent back into the internal model.
func FromProto(pb *v1.PacketEvent) *model.NetworkEvent {
	return &model.NetworkEvent{
		SrcAddr:    pb.GetSrcAddr(),
		DstAddr:    pb.GetDstAddr(),
		SrcPort:    uint16(pb.GetSrcPort()),
		DstPort:    uint16(pb.GetDstPort()),
		Protocol:   model.Protocol(pb.GetProtocol()),
		TCPFlags:   uint8(pb.GetTcpFlags()),
		Length:     int(pb.GetSize()),
		ObservedAt: pb.GetObservedAt().AsTime(),
	}
}
