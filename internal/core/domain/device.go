package domain

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a network endpoint identified by its hardware address.
// Counters are cumulative and owned by the ingestion pipeline; the API only
// reads them or rewrites non-counter metadata.
type Device struct {
	ID                   uuid.UUID `json:"id" db:"id"`
	MACAddress           string    `json:"mac_address" db:"mac_address"`
	OUIVendor            *string   `json:"oui_vendor" db:"oui_vendor"`
	OUIPrefix            *string   `json:"-" db:"oui_prefix"`
	DeviceType           string    `json:"device_type" db:"device_type"`
	DeviceName           *string   `json:"device_name" db:"device_name"`
	DeviceNotes          *string   `json:"device_notes" db:"device_notes"`
	FirstSeen            time.Time `json:"first_seen" db:"first_seen"`
	LastSeen             time.Time `json:"last_seen" db:"last_seen"`
	TotalPacketsSent     int64     `json:"total_packets_sent" db:"total_packets_sent"`
	TotalPacketsReceived int64     `json:"total_packets_received" db:"total_packets_received"`
	TotalBytesSent       int64     `json:"total_bytes_sent" db:"total_bytes_sent"`
	TotalBytesReceived   int64     `json:"total_bytes_received" db:"total_bytes_received"`
	IsGateway            bool      `json:"is_gateway" db:"is_gateway"`
	IsActive             bool      `json:"is_active" db:"is_active"`
	IsFlagged            bool      `json:"is_flagged" db:"is_flagged"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// DeviceIP is one observed (device, IP address) binding. It cannot outlive
// its owning device: the device_ips row is removed when the device is deleted.
type DeviceIP struct {
	ID              uuid.UUID `json:"id" db:"id"`
	DeviceID        uuid.UUID `json:"device_id" db:"device_id"`
	IPAddress       string    `json:"ip_address" db:"ip_address"`
	IPVersion       int       `json:"ip_version" db:"ip_version"`
	VLANID          *int      `json:"vlan_id" db:"vlan_id"`
	SubnetMask      *string   `json:"subnet_mask" db:"subnet_mask"`
	FirstSeen       time.Time `json:"first_seen" db:"first_seen"`
	LastSeen        time.Time `json:"last_seen" db:"last_seen"`
	PacketsSent     int64     `json:"packets_sent" db:"packets_sent"`
	PacketsReceived int64     `json:"packets_received" db:"packets_received"`
	BytesSent       int64     `json:"bytes_sent" db:"bytes_sent"`
	BytesReceived   int64     `json:"bytes_received" db:"bytes_received"`
}

// DeviceView is the device item delivered to API callers: the device row plus
// the projection of its IP bindings (distinct address strings and the
// de-duplicated set of VLAN ids observed across them).
type DeviceView struct {
	Device
	IPAddresses []string `json:"ip_addresses"`
	VLANs       []int    `json:"vlans"`
}

// DeviceUpdate is the partial metadata update accepted for a device. A nil
// field means "leave unmodified"; counters and seen timestamps are never
// caller-writable.
type DeviceUpdate struct {
	DeviceType  *string `json:"device_type"`
	DeviceName  *string `json:"device_name"`
	DeviceNotes *string `json:"device_notes"`
	IsGateway   *bool   `json:"is_gateway"`
	IsFlagged   *bool   `json:"is_flagged"`
}

// DeviceFilter narrows a device listing. Zero values mean "no constraint".
// All populated filters are AND-combined; Search alone expands to an
// OR-combined case-insensitive substring match over hardware address,
// device name and vendor.
type DeviceFilter struct {
	Search     string
	DeviceType string
	IsActive   *bool
	IsFlagged  *bool
	VLANID     *int
}

// DeviceListResponse is the paginated device listing envelope.
type DeviceListResponse struct {
	Items    []DeviceView `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Pages    int          `json:"pages"`
}
