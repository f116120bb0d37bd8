package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/secuaas/NetSentinel/internal/core/domain"
)

// FlowRepository handles persistence of aggregated traffic flows.
type FlowRepository interface {
	// FindByID retrieves a flow by its identifier.
	// Returns domain.ErrNotFound when the id does not resolve.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.TrafficFlow, error)

	// List returns one page of flows matching the filter plus the total
	// match count computed over the same predicate.
	List(ctx context.Context, filter domain.FlowFilter, page domain.PageRequest) ([]domain.TrafficFlow, int64, error)

	// ListForDevice returns one page of the flows where the device
	// appears as source or destination, ordered by last_seen descending.
	ListForDevice(ctx context.Context, deviceID uuid.UUID, page domain.PageRequest) ([]domain.TrafficFlow, int64, error)

	// Upsert creates or refreshes a flow keyed by its endpoint tuple,
	// advancing last_seen, counters and the TCP flags bitmask. Used by
	// the ingestion pipeline.
	Upsert(ctx context.Context, flow *domain.TrafficFlow) error
}

// FlowLedger exposes flow-centric views with protocol-name enrichment.
type FlowLedger interface {
	// List returns a filtered, sorted, paginated flow listing.
	List(ctx context.Context, filter domain.FlowFilter, page domain.PageRequest) (*domain.FlowListResponse, error)

	// Get returns one flow view, or domain.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.FlowView, error)
}
