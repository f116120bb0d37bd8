package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TrafficFlow is an aggregated record of packets sharing the same
// (src MAC, dst MAC, src IP, dst IP, src port, dst port, VLAN, protocol)
// tuple. Device references are weak associations for lookup convenience:
// they are nulled when the referenced device is deleted, and the flow
// itself survives.
type TrafficFlow struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	SrcDeviceID  *uuid.UUID `json:"src_device_id" db:"src_device_id"`
	SrcMAC       string     `json:"src_mac" db:"src_mac"`
	SrcIP        *string    `json:"src_ip" db:"src_ip"`
	SrcPort      *int       `json:"src_port" db:"src_port"`
	DstDeviceID  *uuid.UUID `json:"dst_device_id" db:"dst_device_id"`
	DstMAC       string     `json:"dst_mac" db:"dst_mac"`
	DstIP        *string    `json:"dst_ip" db:"dst_ip"`
	DstPort      *int       `json:"dst_port" db:"dst_port"`
	VLANID       *int       `json:"vlan_id" db:"vlan_id"`
	OuterVLANID  *int       `json:"outer_vlan_id" db:"outer_vlan_id"`
	EtherType    *int       `json:"ethertype" db:"ethertype"`
	IPProtocol   *int       `json:"ip_protocol" db:"ip_protocol"`
	FirstSeen    time.Time  `json:"first_seen" db:"first_seen"`
	LastSeen     time.Time  `json:"last_seen" db:"last_seen"`
	PacketCount  int64      `json:"packet_count" db:"packet_count"`
	ByteCount    int64      `json:"byte_count" db:"byte_count"`
	TCPFlagsSeen int        `json:"tcp_flags_seen" db:"tcp_flags_seen"`
}

// FlowView is the flow item delivered to API callers: the flow tuple,
// counters and seen timestamps, without the ingestion bookkeeping columns.
// ProtocolName is nil unless the IP protocol number has a well-known name.
type FlowView struct {
	ID           uuid.UUID `json:"id"`
	SrcMAC       string    `json:"src_mac"`
	SrcIP        *string   `json:"src_ip"`
	SrcPort      *int      `json:"src_port"`
	DstMAC       string    `json:"dst_mac"`
	DstIP        *string   `json:"dst_ip"`
	DstPort      *int      `json:"dst_port"`
	VLANID       *int      `json:"vlan_id"`
	IPProtocol   *int      `json:"ip_protocol"`
	ProtocolName *string   `json:"protocol_name"`
	FirstSeen    time.Time `json:"first_seen"`
	LastSeen     time.Time `json:"last_seen"`
	PacketCount  int64     `json:"packet_count"`
	ByteCount    int64     `json:"byte_count"`
}

// FlowFilter narrows a flow listing; zero values mean "no constraint".
// Port matches flows where it equals either the source or destination port.
type FlowFilter struct {
	SrcMAC   string
	DstMAC   string
	SrcIP    string
	DstIP    string
	VLANID   *int
	Protocol *int
	Port     *int
}

// FlowListResponse is the paginated flow listing envelope.
type FlowListResponse struct {
	Items    []FlowView `json:"items"`
	Total    int64      `json:"total"`
	Page     int        `json:"page"`
	PageSize int        `json:"page_size"`
	Pages    int        `json:"pages"`
}

// protocolNames maps well-known IP protocol numbers to display names.
var protocolNames = map[int]string{
	1:  "ICMP",
	6:  "TCP",
	17: "UDP",
	47: "GRE",
	50: "ESP",
	89: "OSPF",
}

// ProtocolName returns the well-known name for an IP protocol number, or
// false when the number has no mapping.
func ProtocolName(proto int) (string, bool) {
	name, ok := protocolNames[proto]
	return name, ok
}

// ProtocolLabel renders a protocol number for labeled reports: the
// well-known name when mapped, "Proto <n>" when not, and "Unknown" for a
// missing protocol.
func ProtocolLabel(proto *int) string {
	if proto == nil {
		return "Unknown"
	}
	if name, ok := protocolNames[*proto]; ok {
		return name
	}
	return fmt.Sprintf("Proto %d", *proto)
}
