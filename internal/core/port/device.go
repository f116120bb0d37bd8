package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/secuaas/NetSentinel/internal/core/domain"
)

// DeviceRepository handles persistence of devices and their IP bindings.
type DeviceRepository interface {
	// FindByID retrieves a device by its identifier.
	// Returns domain.ErrNotFound when the id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Device, error)

	// List returns one page of devices matching the filter, in the
	// requested sort order, plus the total match count computed over the
	// same predicate independently of the page window.
	List(ctx context.Context, filter domain.DeviceFilter, page domain.PageRequest) ([]domain.Device, int64, error)

	// ListIPs returns all IP bindings owned by one device.
	ListIPs(ctx context.Context, deviceID uuid.UUID) ([]domain.DeviceIP, error)

	// ListIPsForDevices returns the IP bindings for a set of devices,
	// keyed by owning device id, in a single round trip.
	ListIPsForDevices(ctx context.Context, deviceIDs []uuid.UUID) (map[uuid.UUID][]domain.DeviceIP, error)

	// UpdateMetadata applies a partial metadata update and advances the
	// device's updated_at timestamp. Nil fields are left unmodified.
	// Returns the refreshed row, or domain.ErrNotFound.
	UpdateMetadata(ctx context.Context, id uuid.UUID, update domain.DeviceUpdate) (*domain.Device, error)

	// Delete removes a device. Its IP bindings are removed with it and
	// device references on traffic flows are nulled; the flows survive.
	Delete(ctx context.Context, id uuid.UUID) error

	// Upsert creates or refreshes a device keyed by hardware address.
	// first_seen is set once; last_seen and the cumulative counters are
	// advanced on every subsequent observation. Used by the ingestion
	// pipeline, which owns the counters.
	Upsert(ctx context.Context, device *domain.Device) error

	// UpsertIP creates or refreshes an IP binding keyed by
	// (device, address, VLAN).
	UpsertIP(ctx context.Context, ip *domain.DeviceIP) error
}

// DeviceDirectory composes devices with their IP bindings into
// device-centric views.
type DeviceDirectory interface {
	// List returns a filtered, sorted, paginated device listing with the
	// per-device IP and VLAN projection.
	List(ctx context.Context, filter domain.DeviceFilter, page domain.PageRequest) (*domain.DeviceListResponse, error)

	// Get returns one device view, or domain.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.DeviceView, error)

	// Update applies a partial metadata update and returns the refreshed
	// view, or domain.ErrNotFound.
	Update(ctx context.Context, id uuid.UUID, update domain.DeviceUpdate) (*domain.DeviceView, error)

	// Flows lists the flows where the device appears as source or
	// destination, newest last_seen first, enriched with protocol names.
	// Returns domain.ErrNotFound when the device does not exist.
	Flows(ctx context.Context, deviceID uuid.UUID, page domain.PageRequest) (*domain.FlowListResponse, error)

	// Delete administratively removes a device together with its IP
	// bindings; flows referencing it survive with nulled references.
	Delete(ctx context.Context, id uuid.UUID) error
}
