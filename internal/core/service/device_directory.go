package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/secuaas/NetSentinel/internal/core/domain"
	"github.com/secuaas/NetSentinel/internal/core/port"
)

// DeviceDirectoryService composes device rows with their IP bindings into
// the device-centric views served by the API.
type DeviceDirectoryService struct {
	devices port.DeviceRepository
	flows   port.FlowRepository
}

func NewDeviceDirectoryService(devices port.DeviceRepository, flows port.FlowRepository) port.DeviceDirectory {
	return &DeviceDirectoryService{devices: devices, flows: flows}
}

func (s *DeviceDirectoryService) List(ctx context.Context, filter domain.DeviceFilter, page domain.PageRequest) (*domain.DeviceListResponse, error) {
	devices, total, err := s.devices.List(ctx, filter, page)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
	}
	ipsByDevice, err := s.devices.ListIPsForDevices(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load IP bindings: %w", err)
	}

	items := make([]domain.DeviceView, len(devices))
	for i, d := range devices {
		items[i] = projectDevice(d, ipsByDevice[d.ID])
	}

	return &domain.DeviceListResponse{
		Items:    items,
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Pages:    domain.Pages(total, page.PageSize),
	}, nil
}

func (s *DeviceDirectoryService) Get(ctx context.Context, id uuid.UUID) (*domain.DeviceView, error) {
	device, err := s.devices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, device)
}

func (s *DeviceDirectoryService) Update(ctx context.Context, id uuid.UUID, update domain.DeviceUpdate) (*domain.DeviceView, error) {
	device, err := s.devices.UpdateMetadata(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, device)
}

func (s *DeviceDirectoryService) Flows(ctx context.Context, deviceID uuid.UUID, page domain.PageRequest) (*domain.FlowListResponse, error) {
	// Existence check first, so a bad id is a 404 rather than an empty page.
	if _, err := s.devices.FindByID(ctx, deviceID); err != nil {
		return nil, err
	}

	flows, total, err := s.flows.ListForDevice(ctx, deviceID, page)
	if err != nil {
		return nil, err
	}

	return &domain.FlowListResponse{
		Items:    enrichFlows(flows),
		Total:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Pages:    domain.Pages(total, page.PageSize),
	}, nil
}

func (s *DeviceDirectoryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.devices.Delete(ctx, id)
}

func (s *DeviceDirectoryService) view(ctx context.Context, device *domain.Device) (*domain.DeviceView, error) {
	ips, err := s.devices.ListIPs(ctx, device.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load IP bindings: %w", err)
	}
	view := projectDevice(*device, ips)
	return &view, nil
}

// projectDevice shapes a device row plus its bindings into the API view:
// distinct IP address strings and the de-duplicated VLAN set. VLANs are
// sorted for stable output; the set itself is order-independent.
func projectDevice(device domain.Device, ips []domain.DeviceIP) domain.DeviceView {
	addresses := make([]string, 0, len(ips))
	seenAddr := make(map[string]struct{}, len(ips))
	seenVLAN := make(map[int]struct{})
	vlans := make([]int, 0)

	for _, ip := range ips {
		if _, ok := seenAddr[ip.IPAddress]; !ok {
			seenAddr[ip.IPAddress] = struct{}{}
			addresses = append(addresses, ip.IPAddress)
		}
		if ip.VLANID != nil {
			if _, ok := seenVLAN[*ip.VLANID]; !ok {
				seenVLAN[*ip.VLANID] = struct{}{}
				vlans = append(vlans, *ip.VLANID)
			}
		}
	}
	sort.Ints(vlans)

	return domain.DeviceView{
		Device:      device,
		IPAddresses: addresses,
		VLANs:       vlans,
	}
}
