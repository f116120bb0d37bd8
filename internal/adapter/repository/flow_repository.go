package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/secuaas/NetSentinel/internal/core/domain"
	"github.com/secuaas/NetSentinel/internal/core/port"
)

const flowColumns = `id, src_device_id, src_mac, src_ip, src_port,
		dst_device_id, dst_mac, dst_ip, dst_port,
		vlan_id, outer_vlan_id, ethertype, ip_protocol,
		first_seen, last_seen, packet_count, byte_count, tcp_flags_seen`

type PostgresFlowRepository struct {
	db *sql.DB
}

func NewPostgresFlowRepository(db *sql.DB) port.FlowRepository {
	return &PostgresFlowRepository{db: db}
}

func scanFlow(row rowScanner) (*domain.TrafficFlow, error) {
	var f domain.TrafficFlow
	var srcDevice, dstDevice uuid.NullUUID

	err := row.Scan(
		&f.ID,
		&srcDevice,
		&f.SrcMAC,
		&f.SrcIP,
		&f.SrcPort,
		&dstDevice,
		&f.DstMAC,
		&f.DstIP,
		&f.DstPort,
		&f.VLANID,
		&f.OuterVLANID,
		&f.EtherType,
		&f.IPProtocol,
		&f.FirstSeen,
		&f.LastSeen,
		&f.PacketCount,
		&f.ByteCount,
		&f.TCPFlagsSeen,
	)
	if err != nil {
		return nil, err
	}
	if srcDevice.Valid {
		f.SrcDeviceID = &srcDevice.UUID
	}
	if dstDevice.Valid {
		f.DstDeviceID = &dstDevice.UUID
	}
	return &f, nil
}

func (r *PostgresFlowRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.TrafficFlow, error) {
	query := `SELECT ` + flowColumns + ` FROM traffic_flows WHERE id = $1`

	flow, err := scanFlow(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find flow by id: %w", err)
	}
	return flow, nil
}

func (r *PostgresFlowRepository) List(ctx context.Context, filter domain.FlowFilter, page domain.PageRequest) ([]domain.TrafficFlow, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	order, err := orderBy(flowSortColumns, page)
	if err != nil {
		return nil, 0, err
	}
	conds, err := flowConds(filter)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM traffic_flows` + conds.where()
	if err := r.db.QueryRowContext(ctx, countQuery, conds.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count flows: %w", err)
	}

	query := `SELECT ` + flowColumns + ` FROM traffic_flows` + conds.where() + order + limitOffset(conds, page)
	return r.queryFlows(ctx, query, conds.args, total)
}

func (r *PostgresFlowRepository) ListForDevice(ctx context.Context, deviceID uuid.UUID, page domain.PageRequest) ([]domain.TrafficFlow, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	conds := &condSet{}
	ref := conds.bind(deviceID)
	conds.add(fmt.Sprintf("(src_device_id = %s OR dst_device_id = %s)", ref, ref))

	var total int64
	countQuery := `SELECT COUNT(*) FROM traffic_flows` + conds.where()
	if err := r.db.QueryRowContext(ctx, countQuery, conds.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count device flows: %w", err)
	}

	query := `SELECT ` + flowColumns + ` FROM traffic_flows` + conds.where() +
		` ORDER BY last_seen DESC` + limitOffset(conds, page)
	return r.queryFlows(ctx, query, conds.args, total)
}

func (r *PostgresFlowRepository) queryFlows(ctx context.Context, query string, args []any, total int64) ([]domain.TrafficFlow, int64, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list flows: %w", err)
	}
	defer rows.Close()

	var flows []domain.TrafficFlow
	for rows.Next() {
		flow, err := scanFlow(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan flow: %w", err)
		}
		flows = append(flows, *flow)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate flows: %w", err)
	}
	return flows, total, nil
}

func (r *PostgresFlowRepository) Upsert(ctx context.Context, flow *domain.TrafficFlow) error {
	if flow.ID == uuid.Nil {
		flow.ID = uuid.New()
	}

	query := `
		INSERT INTO traffic_flows (id, src_device_id, src_mac, src_ip, src_port,
			dst_device_id, dst_mac, dst_ip, dst_port,
			vlan_id, outer_vlan_id, ethertype, ip_protocol,
			first_seen, last_seen, packet_count, byte_count, tcp_flags_seen)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT ON CONSTRAINT traffic_flows_unique_tuple DO UPDATE SET
			last_seen = EXCLUDED.last_seen,
			packet_count = EXCLUDED.packet_count,
			byte_count = EXCLUDED.byte_count,
			tcp_flags_seen = traffic_flows.tcp_flags_seen | EXCLUDED.tcp_flags_seen
		RETURNING id, first_seen
	`

	err := r.db.QueryRowContext(ctx, query,
		flow.ID,
		flow.SrcDeviceID,
		flow.SrcMAC,
		flow.SrcIP,
		flow.SrcPort,
		flow.DstDeviceID,
		flow.DstMAC,
		flow.DstIP,
		flow.DstPort,
		flow.VLANID,
		flow.OuterVLANID,
		flow.EtherType,
		flow.IPProtocol,
		flow.FirstSeen,
		flow.LastSeen,
		flow.PacketCount,
		flow.ByteCount,
		flow.TCPFlagsSeen,
	).Scan(&flow.ID, &flow.FirstSeen)

	if err != nil {
		return fmt.Errorf("failed to upsert flow: %w", mapWriteError(err))
	}
	return nil
}
