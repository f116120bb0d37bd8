package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secuaas/NetSentinel/internal/core/domain"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func defaultPage() domain.PageRequest {
	return domain.PageRequest{Page: 1, PageSize: 50, SortBy: "last_seen", SortOrder: domain.SortDesc}
}

// TestProjectDeviceDedupesVLANs verifies the IP/VLAN projection: distinct
// address strings, and one entry per VLAN no matter how many bindings
// carry it.
func TestProjectDeviceDedupesVLANs(t *testing.T) {
	device := domain.Device{ID: uuid.New(), MACAddress: "aa:bb:cc:00:11:22"}
	ips := []domain.DeviceIP{
		{IPAddress: "10.0.0.5", VLANID: intPtr(20)},
		{IPAddress: "10.0.1.5", VLANID: intPtr(20)},
		{IPAddress: "192.168.1.5", VLANID: intPtr(10)},
		{IPAddress: "fe80::1"},
	}

	view := projectDevice(device, ips)

	assert.Equal(t, []string{"10.0.0.5", "10.0.1.5", "192.168.1.5", "fe80::1"}, view.IPAddresses)
	assert.Equal(t, []int{10, 20}, view.VLANs)
}

func TestProjectDeviceNoBindings(t *testing.T) {
	view := projectDevice(domain.Device{ID: uuid.New()}, nil)

	assert.Empty(t, view.IPAddresses)
	assert.Empty(t, view.VLANs)
}

func TestDirectoryListEnvelope(t *testing.T) {
	repo := newFakeDeviceRepo()
	for i := 0; i < 3; i++ {
		repo.add(domain.Device{ID: uuid.New(), MACAddress: string(rune('a'+i)) + "0:00:00:00:00:01"})
	}
	directory := NewDeviceDirectoryService(repo, &fakeFlowRepo{})

	page := defaultPage()
	page.PageSize = 2
	result, err := directory.List(context.Background(), domain.DeviceFilter{}, page)
	require.NoError(t, err)

	assert.Equal(t, int64(3), result.Total)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 2, result.PageSize)
	assert.Equal(t, 2, result.Pages)
}

// TestDirectoryListBeyondLastPage: a page past the end is not an error, it
// is an empty item list with the correct total and pages.
func TestDirectoryListBeyondLastPage(t *testing.T) {
	repo := newFakeDeviceRepo()
	repo.add(domain.Device{ID: uuid.New(), MACAddress: "aa:bb:cc:00:11:22"})
	directory := NewDeviceDirectoryService(repo, &fakeFlowRepo{})

	page := defaultPage()
	page.Page = 9
	result, err := directory.List(context.Background(), domain.DeviceFilter{}, page)
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.Equal(t, int64(1), result.Total)
	assert.Equal(t, 1, result.Pages)
}

func TestDirectoryListRejectsBadPage(t *testing.T) {
	directory := NewDeviceDirectoryService(newFakeDeviceRepo(), &fakeFlowRepo{})

	page := defaultPage()
	page.PageSize = 500
	_, err := directory.List(context.Background(), domain.DeviceFilter{}, page)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "page_size", verr.Field)
}

func TestDirectoryDelete(t *testing.T) {
	repo := newFakeDeviceRepo()
	id := uuid.New()
	repo.add(domain.Device{ID: id, MACAddress: "aa:bb:cc:00:11:22"},
		domain.DeviceIP{DeviceID: id, IPAddress: "10.0.0.5"})
	directory := NewDeviceDirectoryService(repo, &fakeFlowRepo{})

	require.NoError(t, directory.Delete(context.Background(), id))

	_, err := directory.Get(context.Background(), id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, directory.Delete(context.Background(), id), domain.ErrNotFound)
}

func TestDirectoryGetNotFound(t *testing.T) {
	directory := NewDeviceDirectoryService(newFakeDeviceRepo(), &fakeFlowRepo{})

	_, err := directory.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestDirectoryUpdatePartial: only the provided field changes; counters,
// type and bindings are untouched and updated_at advances.
func TestDirectoryUpdatePartial(t *testing.T) {
	repo := newFakeDeviceRepo()
	id := uuid.New()
	before := time.Now().Add(-time.Hour)
	repo.add(domain.Device{
		ID:             id,
		MACAddress:     "aa:bb:cc:00:11:22",
		DeviceType:     "plc",
		TotalBytesSent: 4096,
		UpdatedAt:      before,
	}, domain.DeviceIP{IPAddress: "10.0.0.9", VLANID: intPtr(30)})
	directory := NewDeviceDirectoryService(repo, &fakeFlowRepo{})

	view, err := directory.Update(context.Background(), id, domain.DeviceUpdate{
		DeviceName: strPtr("pump-controller"),
	})
	require.NoError(t, err)

	require.NotNil(t, view.DeviceName)
	assert.Equal(t, "pump-controller", *view.DeviceName)
	assert.Equal(t, "plc", view.DeviceType)
	assert.Equal(t, int64(4096), view.TotalBytesSent)
	assert.Equal(t, []string{"10.0.0.9"}, view.IPAddresses)
	assert.True(t, view.UpdatedAt.After(before), "updated_at must advance on mutation")

	require.NotNil(t, repo.lastUpdate)
	assert.Nil(t, repo.lastUpdate.DeviceType, "unset fields must not reach the store")
	assert.Nil(t, repo.lastUpdate.IsFlagged)
}

func TestDirectoryUpdateNotFound(t *testing.T) {
	directory := NewDeviceDirectoryService(newFakeDeviceRepo(), &fakeFlowRepo{})

	_, err := directory.Update(context.Background(), uuid.New(), domain.DeviceUpdate{DeviceName: strPtr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectoryFlowsChecksDeviceFirst(t *testing.T) {
	flowRepo := &fakeFlowRepo{}
	directory := NewDeviceDirectoryService(newFakeDeviceRepo(), flowRepo)

	_, err := directory.Flows(context.Background(), uuid.New(), defaultPage())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDirectoryFlowsNewestFirstWithEnrichment(t *testing.T) {
	repo := newFakeDeviceRepo()
	deviceID := uuid.New()
	repo.add(domain.Device{ID: deviceID, MACAddress: "aa:bb:cc:00:11:22"})

	now := time.Now()
	tcp, udp := 6, 17
	other := uuid.New()
	flowRepo := &fakeFlowRepo{flows: []domain.TrafficFlow{
		{ID: uuid.New(), SrcDeviceID: &deviceID, IPProtocol: &tcp, LastSeen: now.Add(-time.Minute)},
		{ID: uuid.New(), DstDeviceID: &deviceID, IPProtocol: &udp, LastSeen: now},
		{ID: uuid.New(), SrcDeviceID: &other, LastSeen: now}, // unrelated device
	}}
	directory := NewDeviceDirectoryService(repo, flowRepo)

	result, err := directory.Flows(context.Background(), deviceID, defaultPage())
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, int64(2), result.Total)
	require.NotNil(t, result.Items[0].ProtocolName)
	assert.Equal(t, "UDP", *result.Items[0].ProtocolName, "newest flow comes first")
	require.NotNil(t, result.Items[1].ProtocolName)
	assert.Equal(t, "TCP", *result.Items[1].ProtocolName)
}
