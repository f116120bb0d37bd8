package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		page    PageRequest
		wantErr string
	}{
		{"valid", PageRequest{Page: 1, PageSize: 50, SortOrder: SortAsc}, ""},
		{"valid max page size", PageRequest{Page: 3, PageSize: 100, SortOrder: SortDesc}, ""},
		{"zero page", PageRequest{Page: 0, PageSize: 50, SortOrder: SortAsc}, "page"},
		{"negative page", PageRequest{Page: -1, PageSize: 50, SortOrder: SortAsc}, "page"},
		{"zero page size", PageRequest{Page: 1, PageSize: 0, SortOrder: SortAsc}, "page_size"},
		{"oversized page", PageRequest{Page: 1, PageSize: 101, SortOrder: SortAsc}, "page_size"},
		{"bad sort order", PageRequest{Page: 1, PageSize: 50, SortOrder: "sideways"}, "sort_order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.page.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Field)
		})
	}
}

func TestPages(t *testing.T) {
	tests := []struct {
		total    int64
		pageSize int
		want     int
	}{
		{0, 50, 1}, // empty result still reports one page
		{0, 1, 1},
		{1, 50, 1},
		{50, 50, 1},
		{51, 50, 2},
		{100, 50, 2},
		{101, 50, 3},
		{7, 3, 3},
		{150, 100, 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Pages(tt.total, tt.pageSize),
			"Pages(%d, %d)", tt.total, tt.pageSize)
	}
}

func TestPageRequestOffset(t *testing.T) {
	assert.Equal(t, 0, PageRequest{Page: 1, PageSize: 50}.Offset())
	assert.Equal(t, 50, PageRequest{Page: 2, PageSize: 50}.Offset())
	assert.Equal(t, 180, PageRequest{Page: 10, PageSize: 20}.Offset())
}

func TestProtocolName(t *testing.T) {
	known := map[int]string{1: "ICMP", 6: "TCP", 17: "UDP", 47: "GRE", 50: "ESP", 89: "OSPF"}
	for proto, want := range known {
		name, ok := ProtocolName(proto)
		require.True(t, ok, "protocol %d should be mapped", proto)
		assert.Equal(t, want, name)
	}

	_, ok := ProtocolName(132)
	assert.False(t, ok, "unmapped protocol must not resolve to a name")
}

func TestProtocolLabel(t *testing.T) {
	tcp := 6
	sctp := 132

	assert.Equal(t, "TCP", ProtocolLabel(&tcp))
	assert.Equal(t, "Proto 132", ProtocolLabel(&sctp))
	assert.Equal(t, "Unknown", ProtocolLabel(nil))
}
