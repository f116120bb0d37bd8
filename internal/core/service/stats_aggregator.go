package service

import (
	"context"
	"fmt"
	"math"

	"github.com/secuaas/NetSentinel/internal/core/domain"
	"github.com/secuaas/NetSentinel/internal/core/port"
)

// Dashboard truncation depths.
const (
	topProtocols = 10
	topTalkers   = 10
)

// StatsAggregatorService computes the dashboard rollup in one bounded pass
// over the store.
type StatsAggregatorService struct {
	stats port.StatsRepository
}

func NewStatsAggregatorService(stats port.StatsRepository) port.StatsProvider {
	return &StatsAggregatorService{stats: stats}
}

func (s *StatsAggregatorService) Dashboard(ctx context.Context) (*domain.DashboardStats, error) {
	totalDevices, activeDevices, err := s.stats.CountDevices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute device counts: %w", err)
	}

	totalFlows, err := s.stats.CountFlows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute flow counts: %w", err)
	}

	totalPackets, totalBytes, err := s.stats.SumFlowTraffic(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute traffic totals: %w", err)
	}

	rollups, err := s.stats.ProtocolBreakdown(ctx, topProtocols)
	if err != nil {
		return nil, fmt.Errorf("failed to compute protocol distribution: %w", err)
	}

	talkers, err := s.stats.TopTalkers(ctx, topTalkers)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top talkers: %w", err)
	}

	vlans, err := s.stats.VLANBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compute VLAN stats: %w", err)
	}

	// Empty aggregates marshal as [] rather than null.
	if talkers == nil {
		talkers = []domain.TopTalker{}
	}
	if vlans == nil {
		vlans = []domain.VLANStats{}
	}

	return &domain.DashboardStats{
		TotalDevices:  totalDevices,
		ActiveDevices: activeDevices,
		TotalFlows:    totalFlows,
		TotalPackets:  totalPackets,
		TotalBytes:    totalBytes,
		Protocols:     labelProtocols(rollups, totalPackets),
		TopTalkers:    talkers,
		VLANs:         vlans,
		UptimeSeconds: 0, // uptime tracking lives outside this service
	}, nil
}

// labelProtocols turns raw per-protocol sums into labeled dashboard
// entries. Percentages are 0 when there is no traffic at all; dividing by
// a zero total is a required edge case, not an accident.
func labelProtocols(rollups []domain.ProtocolRollup, totalPackets int64) []domain.ProtocolStats {
	stats := make([]domain.ProtocolStats, len(rollups))
	for i, rollup := range rollups {
		var pct float64
		if totalPackets > 0 {
			pct = round2(float64(rollup.PacketCount) / float64(totalPackets) * 100)
		}
		stats[i] = domain.ProtocolStats{
			ProtocolName: domain.ProtocolLabel(rollup.Protocol),
			PacketCount:  rollup.PacketCount,
			ByteCount:    rollup.ByteCount,
			Percentage:   pct,
		}
	}
	return stats
}

// round2 rounds to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
