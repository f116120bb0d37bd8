package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/secuaas/NetSentinel/internal/core/domain"
	"github.com/secuaas/NetSentinel/internal/core/port"
)

// FlowLedgerService exposes flow-centric views with protocol-name
// enrichment.
type FlowLedgerService struct {
	flows port.FlowRepository
}

func NewFlowLedgerService(flows port.FlowRepository) port.FlowLedger {
	return &FlowLedgerService{flows: flows}
}

func (s *FlowLedgerService) List(ctx context.Context, filter domain.FlowFilter, page domain.PageRequest) (*domain.FlowListResponse, error) {
	flows, total, err := s.flows.List(ctx, filter, page)
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

func (s *FlowLedgerService) Get(ctx context.Context, id uuid.UUID) (*domain.FlowView, error) {
	flow, err := s.flows.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := enrichFlow(*flow)
	return &view, nil
}

// enrichFlow projects a flow row into its API shape and attaches the
// well-known protocol name when one exists. An unmapped protocol number
// simply omits the name; it is never an error.
func enrichFlow(flow domain.TrafficFlow) domain.FlowView {
	view := domain.FlowView{
		ID:          flow.ID,
		SrcMAC:      flow.SrcMAC,
		SrcIP:       flow.SrcIP,
		SrcPort:     flow.SrcPort,
		DstMAC:      flow.DstMAC,
		DstIP:       flow.DstIP,
		DstPort:     flow.DstPort,
		VLANID:      flow.VLANID,
		IPProtocol:  flow.IPProtocol,
		FirstSeen:   flow.FirstSeen,
		LastSeen:    flow.LastSeen,
		PacketCount: flow.PacketCount,
		ByteCount:   flow.ByteCount,
	}
	if flow.IPProtocol != nil {
		if name, ok := domain.ProtocolName(*flow.IPProtocol); ok {
			view.ProtocolName = &name
		}
	}
	return view
}

func enrichFlows(flows []domain.TrafficFlow) []domain.FlowView {
	views := make([]domain.FlowView, len(flows))
	for i, f := range flows {
		views[i] = enrichFlow(f)
	}
	return views
}
