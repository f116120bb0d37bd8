package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secuaas/NetSentinel/internal/core/domain"
)

func TestEnrichFlowProtocolNames(t *testing.T) {
	tcp := 6
	view := enrichFlow(domain.TrafficFlow{IPProtocol: &tcp})
	require.NotNil(t, view.ProtocolName)
	assert.Equal(t, "TCP", *view.ProtocolName)
}

// An unmapped protocol number omits the name; it is never an error and
// never rendered as "Unknown" in the ledger.
func TestEnrichFlowUnmappedProtocol(t *testing.T) {
	sctp := 132
	view := enrichFlow(domain.TrafficFlow{IPProtocol: &sctp})
	assert.Nil(t, view.ProtocolName)
}

func TestEnrichFlowNoProtocol(t *testing.T) {
	view := enrichFlow(domain.TrafficFlow{})
	assert.Nil(t, view.ProtocolName)
}

// Flow items carry the tuple, counters and protocol name only; the
// ingestion bookkeeping columns stay out of the API shape.
func TestEnrichFlowProjection(t *testing.T) {
	tcp := 6
	flags := 0x12
	srcID := uuid.New()
	view := enrichFlow(domain.TrafficFlow{
		ID:           uuid.New(),
		SrcDeviceID:  &srcID,
		SrcMAC:       "aa:bb:cc:00:11:22",
		DstMAC:       "aa:bb:cc:00:11:33",
		IPProtocol:   &tcp,
		TCPFlagsSeen: flags,
	})

	body, err := json.Marshal(view)
	require.NoError(t, err)

	assert.Contains(t, string(body), `"src_mac":"aa:bb:cc:00:11:22"`)
	assert.Contains(t, string(body), `"protocol_name":"TCP"`)
	assert.NotContains(t, string(body), "tcp_flags_seen")
	assert.NotContains(t, string(body), "ethertype")
	assert.NotContains(t, string(body), "outer_vlan_id")
	assert.NotContains(t, string(body), "device_id")
}

func TestLedgerListEnvelope(t *testing.T) {
	udp := 17
	repo := &fakeFlowRepo{flows: []domain.TrafficFlow{
		{ID: uuid.New(), IPProtocol: &udp},
		{ID: uuid.New()},
	}}
	ledger := NewFlowLedgerService(repo)

	page := domain.PageRequest{Page: 1, PageSize: 50, SortBy: "last_seen", SortOrder: domain.SortDesc}
	result, err := ledger.List(context.Background(), domain.FlowFilter{}, page)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, 1, result.Pages)
	require.Len(t, result.Items, 2)
	require.NotNil(t, result.Items[0].ProtocolName)
	assert.Equal(t, "UDP", *result.Items[0].ProtocolName)
	assert.Nil(t, result.Items[1].ProtocolName)
}

func TestLedgerGet(t *testing.T) {
	id := uuid.New()
	icmp := 1
	ledger := NewFlowLedgerService(&fakeFlowRepo{flows: []domain.TrafficFlow{
		{ID: id, IPProtocol: &icmp},
	}})

	view, err := ledger.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, view.ID)
	require.NotNil(t, view.ProtocolName)
	assert.Equal(t, "ICMP", *view.ProtocolName)
}

func TestLedgerGetNotFound(t *testing.T) {
	ledger := NewFlowLedgerService(&fakeFlowRepo{})

	_, err := ledger.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
