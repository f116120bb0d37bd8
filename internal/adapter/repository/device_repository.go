package adapter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/secuaas/NetSentinel/internal/core/domain"
	"github.com/secuaas/NetSentinel/internal/core/port"
)

const deviceColumns = `id, mac_address, oui_vendor, oui_prefix, device_type, device_name, device_notes,
		first_seen, last_seen, total_packets_sent, total_packets_received,
		total_bytes_sent, total_bytes_received, is_gateway, is_active, is_flagged,
		created_at, updated_at`

const deviceIPColumns = `id, device_id, ip_address, ip_version, vlan_id, subnet_mask,
		first_seen, last_seen, packets_sent, packets_received, bytes_sent, bytes_received`

type PostgresDeviceRepository struct {
	db *sql.DB
}

func NewPostgresDeviceRepository(db *sql.DB) port.DeviceRepository {
	return &PostgresDeviceRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDevice(row rowScanner) (*domain.Device, error) {
	var d domain.Device
	err := row.Scan(
		&d.ID,
		&d.MACAddress,
		&d.OUIVendor,
		&d.OUIPrefix,
		&d.DeviceType,
		&d.DeviceName,
		&d.DeviceNotes,
		&d.FirstSeen,
		&d.LastSeen,
		&d.TotalPacketsSent,
		&d.TotalPacketsReceived,
		&d.TotalBytesSent,
		&d.TotalBytesReceived,
		&d.IsGateway,
		&d.IsActive,
		&d.IsFlagged,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func scanDeviceIP(row rowScanner) (*domain.DeviceIP, error) {
	var ip domain.DeviceIP
	err := row.Scan(
		&ip.ID,
		&ip.DeviceID,
		&ip.IPAddress,
		&ip.IPVersion,
		&ip.VLANID,
		&ip.SubnetMask,
		&ip.FirstSeen,
		&ip.LastSeen,
		&ip.PacketsSent,
		&ip.PacketsReceived,
		&ip.BytesSent,
		&ip.BytesReceived,
	)
	if err != nil {
		return nil, err
	}
	return &ip, nil
}

func (r *PostgresDeviceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM devices WHERE id = $1`

	device, err := scanDevice(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find device by id: %w", err)
	}
	return device, nil
}

func (r *PostgresDeviceRepository) List(ctx context.Context, filter domain.DeviceFilter, page domain.PageRequest) ([]domain.Device, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	order, err := orderBy(deviceSortColumns, page)
	if err != nil {
		return nil, 0, err
	}

	conds := deviceConds(filter)

	var total int64
	countQuery := `SELECT COUNT(*) FROM devices` + conds.where()
	if err := r.db.QueryRowContext(ctx, countQuery, conds.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count devices: %w", err)
	}

	query := `SELECT ` + deviceColumns + ` FROM devices` + conds.where() + order + limitOffset(conds, page)
	rows, err := r.db.QueryContext(ctx, query, conds.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	var devices []domain.Device
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, *device)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate devices: %w", err)
	}
	return devices, total, nil
}

func (r *PostgresDeviceRepository) ListIPs(ctx context.Context, deviceID uuid.UUID) ([]domain.DeviceIP, error) {
	query := `SELECT ` + deviceIPColumns + ` FROM device_ips WHERE device_id = $1 ORDER BY last_seen DESC`

	rows, err := r.db.QueryContext(ctx, query, deviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list device IPs: %w", err)
	}
	defer rows.Close()

	var ips []domain.DeviceIP
	for rows.Next() {
		ip, err := scanDeviceIP(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device IP: %w", err)
		}
		ips = append(ips, *ip)
	}
	return ips, rows.Err()
}

func (r *PostgresDeviceRepository) ListIPsForDevices(ctx context.Context, deviceIDs []uuid.UUID) (map[uuid.UUID][]domain.DeviceIP, error) {
	byDevice := make(map[uuid.UUID][]domain.DeviceIP, len(deviceIDs))
	if len(deviceIDs) == 0 {
		return byDevice, nil
	}

	ids := make([]string, len(deviceIDs))
	for i, id := range deviceIDs {
		ids[i] = id.String()
	}

	query := `SELECT ` + deviceIPColumns + ` FROM device_ips WHERE device_id = ANY($1::uuid[])`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list device IPs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		ip, err := scanDeviceIP(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device IP: %w", err)
		}
		byDevice[ip.DeviceID] = append(byDevice[ip.DeviceID], *ip)
	}
	return byDevice, rows.Err()
}

func (r *PostgresDeviceRepository) UpdateMetadata(ctx context.Context, id uuid.UUID, update domain.DeviceUpdate) (*domain.Device, error) {
	set := &condSet{}
	var assignments []string

	if update.DeviceType != nil {
		assignments = append(assignments, fmt.Sprintf("device_type = %s", set.bind(*update.DeviceType)))
	}
	if update.DeviceName != nil {
		assignments = append(assignments, fmt.Sprintf("device_name = %s", set.bind(*update.DeviceName)))
	}
	if update.DeviceNotes != nil {
		assignments = append(assignments, fmt.Sprintf("device_notes = %s", set.bind(*update.DeviceNotes)))
	}
	if update.IsGateway != nil {
		assignments = append(assignments, fmt.Sprintf("is_gateway = %s", set.bind(*update.IsGateway)))
	}
	if update.IsFlagged != nil {
		assignments = append(assignments, fmt.Sprintf("is_flagged = %s", set.bind(*update.IsFlagged)))
	}
	// updated_at advances on every mutation, even an empty field set.
	assignments = append(assignments, "updated_at = NOW()")

	query := `UPDATE devices SET ` + strings.Join(assignments, ", ") +
		fmt.Sprintf(" WHERE id = %s RETURNING ", set.bind(id)) + deviceColumns

	device, err := scanDevice(r.db.QueryRowContext(ctx, query, set.args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update device: %w", mapWriteError(err))
	}
	return device, nil
}

// Delete removes a device row. The schema does the rest: device_ips rows
// cascade away and traffic_flows device references are set to NULL.
func (r *PostgresDeviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PostgresDeviceRepository) Upsert(ctx context.Context, device *domain.Device) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}

	query := `
		INSERT INTO devices (id, mac_address, oui_vendor, oui_prefix, device_type,
			first_seen, last_seen,
			total_packets_sent, total_packets_received, total_bytes_sent, total_bytes_received)
		VALUES ($1, $2, $3, $4, COALESCE(NULLIF($5, ''), 'unknown'), $6, $7, $8, $9, $10, $11)
		ON CONFLICT (mac_address) DO UPDATE SET
			last_seen = EXCLUDED.last_seen,
			total_packets_sent = EXCLUDED.total_packets_sent,
			total_packets_received = EXCLUDED.total_packets_received,
			total_bytes_sent = EXCLUDED.total_bytes_sent,
			total_bytes_received = EXCLUDED.total_bytes_received,
			updated_at = NOW()
		RETURNING id, first_seen, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		device.ID,
		device.MACAddress,
		device.OUIVendor,
		device.OUIPrefix,
		device.DeviceType,
		device.FirstSeen,
		device.LastSeen,
		device.TotalPacketsSent,
		device.TotalPacketsReceived,
		device.TotalBytesSent,
		device.TotalBytesReceived,
	).Scan(&device.ID, &device.FirstSeen, &device.CreatedAt, &device.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to upsert device: %w", mapWriteError(err))
	}
	return nil
}

func (r *PostgresDeviceRepository) UpsertIP(ctx context.Context, ip *domain.DeviceIP) error {
	if ip.ID == uuid.Nil {
		ip.ID = uuid.New()
	}

	query := `
		INSERT INTO device_ips (id, device_id, ip_address, ip_version, vlan_id, subnet_mask,
			first_seen, last_seen, packets_sent, packets_received, bytes_sent, bytes_received)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT ON CONSTRAINT uq_device_ip_vlan DO UPDATE SET
			last_seen = EXCLUDED.last_seen,
			packets_sent = EXCLUDED.packets_sent,
			packets_received = EXCLUDED.packets_received,
			bytes_sent = EXCLUDED.bytes_sent,
			bytes_received = EXCLUDED.bytes_received
		RETURNING id, first_seen
	`

	err := r.db.QueryRowContext(ctx, query,
		ip.ID,
		ip.DeviceID,
		ip.IPAddress,
		ip.IPVersion,
		ip.VLANID,
		ip.SubnetMask,
		ip.FirstSeen,
		ip.LastSeen,
		ip.PacketsSent,
		ip.PacketsReceived,
		ip.BytesSent,
		ip.BytesReceived,
	).Scan(&ip.ID, &ip.FirstSeen)

	if err != nil {
		return fmt.Errorf("failed to upsert device IP: %w", mapWriteError(err))
	}
	return nil
}
