package adapter

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/secuaas/NetSentinel/internal/core/domain"
	"github.com/secuaas/NetSentinel/internal/core/port"
)

// PostgresStatsRepository runs the aggregate scans behind the dashboard.
// COALESCE keeps empty-table sums at zero instead of NULL.
type PostgresStatsRepository struct {
	db *sql.DB
}

func NewPostgresStatsRepository(db *sql.DB) port.StatsRepository {
	return &PostgresStatsRepository{db: db}
}

func (r *PostgresStatsRepository) CountDevices(ctx context.Context) (int64, int64, error) {
	query := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_active)
		FROM devices
	`

	var total, active int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&total, &active); err != nil {
		return 0, 0, fmt.Errorf("failed to count devices: %w", err)
	}
	return total, active, nil
}

func (r *PostgresStatsRepository) CountFlows(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM traffic_flows`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count flows: %w", err)
	}
	return total, nil
}

func (r *PostgresStatsRepository) SumFlowTraffic(ctx context.Context) (int64, int64, error) {
	query := `
		SELECT COALESCE(SUM(packet_count), 0), COALESCE(SUM(byte_count), 0)
		FROM traffic_flows
	`

	var packets, bytes int64
	if err := r.db.QueryRowContext(ctx, query).Scan(&packets, &bytes); err != nil {
		return 0, 0, fmt.Errorf("failed to sum flow traffic: %w", err)
	}
	return packets, bytes, nil
}

func (r *PostgresStatsRepository) ProtocolBreakdown(ctx context.Context, limit int) ([]domain.ProtocolRollup, error) {
	query := `
		SELECT ip_protocol,
			COALESCE(SUM(packet_count), 0) AS packets,
			COALESCE(SUM(byte_count), 0) AS bytes
		FROM traffic_flows
		GROUP BY ip_protocol
		ORDER BY packets DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate protocols: %w", err)
	}
	defer rows.Close()

	var rollups []domain.ProtocolRollup
	for rows.Next() {
		var rollup domain.ProtocolRollup
		if err := rows.Scan(&rollup.Protocol, &rollup.PacketCount, &rollup.ByteCount); err != nil {
			return nil, fmt.Errorf("failed to scan protocol rollup: %w", err)
		}
		rollups = append(rollups, rollup)
	}
	return rollups, rows.Err()
}

func (r *PostgresStatsRepository) TopTalkers(ctx context.Context, limit int) ([]domain.TopTalker, error) {
	query := `
		SELECT mac_address, device_name, device_type,
			total_bytes_sent + total_bytes_received AS bytes_total,
			total_packets_sent + total_packets_received AS packets_total
		FROM devices
		ORDER BY bytes_total DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to rank top talkers: %w", err)
	}
	defer rows.Close()

	var talkers []domain.TopTalker
	for rows.Next() {
		var t domain.TopTalker
		if err := rows.Scan(&t.MACAddress, &t.DeviceName, &t.DeviceType, &t.BytesTotal, &t.PacketsTotal); err != nil {
			return nil, fmt.Errorf("failed to scan top talker: %w", err)
		}
		talkers = append(talkers, t)
	}
	return talkers, rows.Err()
}

func (r *PostgresStatsRepository) VLANBreakdown(ctx context.Context) ([]domain.VLANStats, error) {
	query := `
		SELECT vlan_id,
			COUNT(DISTINCT device_id) AS device_count,
			COALESCE(SUM(packets_sent + packets_received), 0) AS packets,
			COALESCE(SUM(bytes_sent + bytes_received), 0) AS bytes
		FROM device_ips
		WHERE vlan_id IS NOT NULL
		GROUP BY vlan_id
		ORDER BY device_count DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate VLANs: %w", err)
	}
	defer rows.Close()

	var vlans []domain.VLANStats
	for rows.Next() {
		var v domain.VLANStats
		if err := rows.Scan(&v.VLANID, &v.DeviceCount, &v.PacketCount, &v.ByteCount); err != nil {
			return nil, fmt.Errorf("failed to scan VLAN stats: %w", err)
		}
		vlans = append(vlans, v)
	}
	return vlans, rows.Err()
}
