package domain

// ProtocolRollup is one row of the raw per-protocol aggregation: summed
// packet and byte counters for a single distinct ip_protocol value.
// Protocol is nil for flows that carried no IP protocol at all.
type ProtocolRollup struct {
	Protocol    *int
	PacketCount int64
	ByteCount   int64
}

// ProtocolStats is one labeled entry of the dashboard protocol
// distribution.
type ProtocolStats struct {
	ProtocolName string  `json:"protocol_name"`
	PacketCount  int64   `json:"packet_count"`
	ByteCount    int64   `json:"byte_count"`
	Percentage   float64 `json:"percentage"`
}

// TopTalker is a device ranked by combined sent+received traffic volume.
type TopTalker struct {
	MACAddress   string  `json:"mac_address"`
	DeviceName   *string `json:"device_name"`
	DeviceType   string  `json:"device_type"`
	BytesTotal   int64   `json:"bytes_total"`
	PacketsTotal int64   `json:"packets_total"`
}

// VLANStats aggregates the device_ips bindings carrying one VLAN tag.
type VLANStats struct {
	VLANID      int   `json:"vlan_id"`
	DeviceCount int64 `json:"device_count"`
	PacketCount int64 `json:"packet_count"`
	ByteCount   int64 `json:"byte_count"`
}

// DashboardStats is the full dashboard snapshot. Uptime tracking lives
// outside this service and is reported as 0.
type DashboardStats struct {
	TotalDevices  int64           `json:"total_devices"`
	ActiveDevices int64           `json:"active_devices"`
	TotalFlows    int64           `json:"total_flows"`
	TotalPackets  int64           `json:"total_packets"`
	TotalBytes    int64           `json:"total_bytes"`
	Protocols     []ProtocolStats `json:"protocols"`
	TopTalkers    []TopTalker     `json:"top_talkers"`
	VLANs         []VLANStats     `json:"vlans"`
	UptimeSeconds int64           `json:"uptime_seconds"`
}
