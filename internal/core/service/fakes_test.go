package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/secuaas/NetSentinel/internal/core/domain"
)

// In-memory fakes for the repository ports. They honor the same contracts
// as the Postgres implementations: ErrNotFound for missing rows, total
// counted independently of the page window, last_seen descending order for
// per-device flow listings.

type fakeDeviceRepo struct {
	devices map[uuid.UUID]*domain.Device
	ips     map[uuid.UUID][]domain.DeviceIP

	lastUpdate *domain.DeviceUpdate
}

func newFakeDeviceRepo() *fakeDeviceRepo {
	return &fakeDeviceRepo{
		devices: make(map[uuid.UUID]*domain.Device),
		ips:     make(map[uuid.UUID][]domain.DeviceIP),
	}
}

func (f *fakeDeviceRepo) add(device domain.Device, ips ...domain.DeviceIP) {
	f.devices[device.ID] = &device
	f.ips[device.ID] = ips
}

func (f *fakeDeviceRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.Device, error) {
	device, ok := f.devices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copy := *device
	return &copy, nil
}

func (f *fakeDeviceRepo) List(_ context.Context, _ domain.DeviceFilter, page domain.PageRequest) ([]domain.Device, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	all := make([]domain.Device, 0, len(f.devices))
	for _, d := range f.devices {
		all = append(all, *d)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].MACAddress < all[j].MACAddress })

	total := int64(len(all))
	offset := page.Offset()
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + page.PageSize
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeDeviceRepo) ListIPs(_ context.Context, deviceID uuid.UUID) ([]domain.DeviceIP, error) {
	return f.ips[deviceID], nil
}

func (f *fakeDeviceRepo) ListIPsForDevices(_ context.Context, deviceIDs []uuid.UUID) (map[uuid.UUID][]domain.DeviceIP, error) {
	result := make(map[uuid.UUID][]domain.DeviceIP)
	for _, id := range deviceIDs {
		if ips, ok := f.ips[id]; ok {
			result[id] = ips
		}
	}
	return result, nil
}

func (f *fakeDeviceRepo) UpdateMetadata(_ context.Context, id uuid.UUID, update domain.DeviceUpdate) (*domain.Device, error) {
	device, ok := f.devices[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	f.lastUpdate = &update

	if update.DeviceType != nil {
		device.DeviceType = *update.DeviceType
	}
	if update.DeviceName != nil {
		device.DeviceName = update.DeviceName
	}
	if update.DeviceNotes != nil {
		device.DeviceNotes = update.DeviceNotes
	}
	if update.IsGateway != nil {
		device.IsGateway = *update.IsGateway
	}
	if update.IsFlagged != nil {
		device.IsFlagged = *update.IsFlagged
	}
	device.UpdatedAt = time.Now()

	copy := *device
	return &copy, nil
}

func (f *fakeDeviceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.devices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.devices, id)
	delete(f.ips, id)
	return nil
}

func (f *fakeDeviceRepo) Upsert(_ context.Context, device *domain.Device) error {
	if device.ID == uuid.Nil {
		device.ID = uuid.New()
	}
	f.devices[device.ID] = device
	return nil
}

func (f *fakeDeviceRepo) UpsertIP(_ context.Context, ip *domain.DeviceIP) error {
	if ip.ID == uuid.Nil {
		ip.ID = uuid.New()
	}
	f.ips[ip.DeviceID] = append(f.ips[ip.DeviceID], *ip)
	return nil
}

type fakeFlowRepo struct {
	flows []domain.TrafficFlow
}

func (f *fakeFlowRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.TrafficFlow, error) {
	for _, flow := range f.flows {
		if flow.ID == id {
			copy := flow
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeFlowRepo) List(_ context.Context, _ domain.FlowFilter, page domain.PageRequest) ([]domain.TrafficFlow, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	return f.page(f.flows, page)
}

func (f *fakeFlowRepo) ListForDevice(_ context.Context, deviceID uuid.UUID, page domain.PageRequest) ([]domain.TrafficFlow, int64, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	var matched []domain.TrafficFlow
	for _, flow := range f.flows {
		if (flow.SrcDeviceID != nil && *flow.SrcDeviceID == deviceID) ||
			(flow.DstDeviceID != nil && *flow.DstDeviceID == deviceID) {
			matched = append(matched, flow)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].LastSeen.After(matched[j].LastSeen) })
	return f.page(matched, page)
}

func (f *fakeFlowRepo) page(flows []domain.TrafficFlow, page domain.PageRequest) ([]domain.TrafficFlow, int64, error) {
	total := int64(len(flows))
	offset := page.Offset()
	if offset >= len(flows) {
		return nil, total, nil
	}
	end := offset + page.PageSize
	if end > len(flows) {
		end = len(flows)
	}
	return flows[offset:end], total, nil
}

func (f *fakeFlowRepo) Upsert(_ context.Context, flow *domain.TrafficFlow) error {
	if flow.ID == uuid.Nil {
		flow.ID = uuid.New()
	}
	f.flows = append(f.flows, *flow)
	return nil
}

type fakeStatsRepo struct {
	totalDevices  int64
	activeDevices int64
	totalFlows    int64
	totalPackets  int64
	totalBytes    int64
	protocols     []domain.ProtocolRollup
	talkers       []domain.TopTalker
	vlans         []domain.VLANStats
}

func (f *fakeStatsRepo) CountDevices(context.Context) (int64, int64, error) {
	return f.totalDevices, f.activeDevices, nil
}

func (f *fakeStatsRepo) CountFlows(context.Context) (int64, error) {
	return f.totalFlows, nil
}

func (f *fakeStatsRepo) SumFlowTraffic(context.Context) (int64, int64, error) {
	return f.totalPackets, f.totalBytes, nil
}

func (f *fakeStatsRepo) ProtocolBreakdown(_ context.Context, limit int) ([]domain.ProtocolRollup, error) {
	if len(f.protocols) > limit {
		return f.protocols[:limit], nil
	}
	return f.protocols, nil
}

func (f *fakeStatsRepo) TopTalkers(_ context.Context, limit int) ([]domain.TopTalker, error) {
	if len(f.talkers) > limit {
		return f.talkers[:limit], nil
	}
	return f.talkers, nil
}

func (f *fakeStatsRepo) VLANBreakdown(context.Context) ([]domain.VLANStats, error) {
	return f.vlans, nil
}

type fakeUserRepo struct {
	users      map[string]*domain.User
	lastLogins map[uuid.UUID]time.Time
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:      make(map[string]*domain.User),
		lastLogins: make(map[uuid.UUID]time.Time),
	}
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := f.users[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copy := *user
	return &copy, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			copy := *user
			return &copy, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, exists := f.users[user.Username]; exists {
		return domain.ErrConflict
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	f.lastLogins[id] = time.Now()
	return nil
}
