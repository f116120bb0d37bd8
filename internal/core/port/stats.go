package port

import (
	"context"

	"github.com/secuaas/NetSentinel/internal/core/domain"
)

// StatsRepository runs the aggregate scans behind the dashboard. Every sum
// treats an absent underlying value (no matching rows) as zero.
type StatsRepository interface {
	// CountDevices returns the total and active device counts.
	CountDevices(ctx context.Context) (total, active int64, err error)

	// CountFlows returns the total flow record count.
	CountFlows(ctx context.Context) (int64, error)

	// SumFlowTraffic returns the packet and byte sums across all flows.
	SumFlowTraffic(ctx context.Context) (packets, bytes int64, err error)

	// ProtocolBreakdown returns per-protocol packet/byte sums for the
	// distinct ip_protocol values present on flows, ranked by summed
	// packet count descending, truncated to limit rows.
	ProtocolBreakdown(ctx context.Context, limit int) ([]domain.ProtocolRollup, error)

	// TopTalkers returns the limit devices with the greatest combined
	// sent+received byte totals, descending.
	TopTalkers(ctx context.Context, limit int) ([]domain.TopTalker, error)

	// VLANBreakdown returns per-VLAN distinct device counts and summed
	// binding counters, ranked by device count descending.
	VLANBreakdown(ctx context.Context) ([]domain.VLANStats, error)
}

// StatsProvider computes the dashboard snapshot.
type StatsProvider interface {
	// Dashboard runs one bounded pass over the store and returns the
	// dashboard rollup.
	Dashboard(ctx context.Context) (*domain.DashboardStats, error)
}
