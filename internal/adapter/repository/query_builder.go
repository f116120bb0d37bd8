package adapter

import (
	"fmt"
	"net"
	"strings"

	"github.com/secuaas/NetSentinel/internal/core/domain"
)

// condSet accumulates AND-combined SQL conditions with positional
// placeholders. Caller input only ever reaches the database through the
// args slice; the SQL text itself is assembled from fixed fragments.
type condSet struct {
	conds []string
	args  []any
}

// bind appends a query argument and returns its placeholder.
func (c *condSet) bind(v any) string {
	c.args = append(c.args, v)
	return fmt.Sprintf("$%d", len(c.args))
}

func (c *condSet) add(cond string) {
	c.conds = append(c.conds, cond)
}

// where renders the accumulated conditions as a WHERE clause, or an empty
// string when nothing was filtered.
func (c *condSet) where() string {
	if len(c.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(c.conds, " AND ")
}

// Sort whitelists. Sort column selection is a fixed mapping per entity;
// any caller-supplied name outside the map is rejected, never passed
// through to SQL.
var deviceSortColumns = map[string]string{
	"mac_address":          "mac_address",
	"device_name":          "device_name",
	"first_seen":           "first_seen",
	"last_seen":            "last_seen",
	"total_bytes_sent":     "total_bytes_sent",
	"total_bytes_received": "total_bytes_received",
}

var flowSortColumns = map[string]string{
	"first_seen":   "first_seen",
	"last_seen":    "last_seen",
	"packet_count": "packet_count",
	"byte_count":   "byte_count",
}

// orderBy resolves the requested sort field against the entity's column
// map and renders the ORDER BY clause. No secondary sort key is emitted:
// tie order is unspecified.
func orderBy(columns map[string]string, page domain.PageRequest) (string, error) {
	column, ok := columns[page.SortBy]
	if !ok {
		return "", domain.NewValidationError("sort_by", "unsupported sort field %q", page.SortBy)
	}
	direction := "ASC"
	if page.SortOrder == domain.SortDesc {
		direction = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s", column, direction), nil
}

// limitOffset renders the page window.
func limitOffset(c *condSet, page domain.PageRequest) string {
	return fmt.Sprintf(" LIMIT %s OFFSET %s", c.bind(page.PageSize), c.bind(page.Offset()))
}

// deviceConds translates a device filter into SQL conditions. The VLAN
// membership predicate uses EXISTS against device_ips rather than a join,
// so a device with several bindings on the same VLAN is counted and paged
// exactly once.
func deviceConds(filter domain.DeviceFilter) *condSet {
	c := &condSet{}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		c.add(fmt.Sprintf(
			"(mac_address::text ILIKE %s OR device_name ILIKE %s OR oui_vendor ILIKE %s)",
			c.bind(pattern), c.bind(pattern), c.bind(pattern),
		))
	}
	if filter.DeviceType != "" {
		c.add(fmt.Sprintf("device_type = %s", c.bind(filter.DeviceType)))
	}
	if filter.IsActive != nil {
		c.add(fmt.Sprintf("is_active = %s", c.bind(*filter.IsActive)))
	}
	if filter.IsFlagged != nil {
		c.add(fmt.Sprintf("is_flagged = %s", c.bind(*filter.IsFlagged)))
	}
	if filter.VLANID != nil {
		c.add(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM device_ips di WHERE di.device_id = devices.id AND di.vlan_id = %s)",
			c.bind(*filter.VLANID),
		))
	}
	return c
}

// flowConds translates a flow filter into SQL conditions. MAC and IP
// values are validated before the query runs so a malformed filter is a
// caller error, not a database error.
func flowConds(filter domain.FlowFilter) (*condSet, error) {
	c := &condSet{}

	if filter.SrcMAC != "" {
		mac, err := normalizeMAC("src_mac", filter.SrcMAC)
		if err != nil {
			return nil, err
		}
		c.add(fmt.Sprintf("src_mac = %s", c.bind(mac)))
	}
	if filter.DstMAC != "" {
		mac, err := normalizeMAC("dst_mac", filter.DstMAC)
		if err != nil {
			return nil, err
		}
		c.add(fmt.Sprintf("dst_mac = %s", c.bind(mac)))
	}
	if filter.SrcIP != "" {
		if err := validateIP("src_ip", filter.SrcIP); err != nil {
			return nil, err
		}
		c.add(fmt.Sprintf("src_ip = %s", c.bind(filter.SrcIP)))
	}
	if filter.DstIP != "" {
		if err := validateIP("dst_ip", filter.DstIP); err != nil {
			return nil, err
		}
		c.add(fmt.Sprintf("dst_ip = %s", c.bind(filter.DstIP)))
	}
	if filter.VLANID != nil {
		c.add(fmt.Sprintf("vlan_id = %s", c.bind(*filter.VLANID)))
	}
	if filter.Protocol != nil {
		c.add(fmt.Sprintf("ip_protocol = %s", c.bind(*filter.Protocol)))
	}
	if filter.Port != nil {
		c.add(fmt.Sprintf("(src_port = %s OR dst_port = %s)", c.bind(*filter.Port), c.bind(*filter.Port)))
	}
	return c, nil
}

// normalizeMAC parses a caller-supplied hardware address and renders it in
// colon-separated form.
func normalizeMAC(field, value string) (string, error) {
	hw, err := net.ParseMAC(value)
	if err != nil {
		return "", domain.NewValidationError(field, "malformed hardware address %q", value)
	}
	return hw.String(), nil
}

func validateIP(field, value string) error {
	if net.ParseIP(value) == nil {
		return domain.NewValidationError(field, "malformed IP address %q", value)
	}
	return nil
}
