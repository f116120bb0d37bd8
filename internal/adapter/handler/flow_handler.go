package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/secuaas/NetSentinel/internal/core/domain"
	"github.com/secuaas/NetSentinel/internal/core/port"
)

type FlowListQuery struct {
	Page      int    `form:"page,default=1"`
	PageSize  int    `form:"page_size,default=50"`
	SrcMAC    string `form:"src_mac"`
	DstMAC    string `form:"dst_mac"`
	SrcIP     string `form:"src_ip"`
	DstIP     string `form:"dst_ip"`
	VLANID    *int   `form:"vlan_id"`
	Protocol  *int   `form:"protocol"`
	Port      *int   `form:"port"`
	SortBy    string `form:"sort_by,default=last_seen"`
	SortOrder string `form:"sort_order,default=desc"`
}

type FlowHandler struct {
	ledger port.FlowLedger
}

func NewFlowHandler(ledger port.FlowLedger) *FlowHandler {
	return &FlowHandler{ledger: ledger}
}

// List
// @Summary List traffic flows
// @Description Returns a paginated flow listing. Port matches either source or destination port.
// @Tags Flows
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param page_size query int false "Page size (1-100)" default(50)
// @Param src_mac query string false "Exact source MAC"
// @Param dst_mac query string false "Exact destination MAC"
// @Param src_ip query string false "Exact source IP"
// @Param dst_ip query string false "Exact destination IP"
// @Param vlan_id query int false "Exact VLAN id"
// @Param protocol query int false "Exact IP protocol number"
// @Param port query int false "Source or destination port"
// @Param sort_by query string false "first_seen|last_seen|packet_count|byte_count" default(last_seen)
// @Param sort_order query string false "asc|desc" default(desc)
// @Success 200 {object} domain.FlowListResponse
// @Failure 400 {object} map[string]string "error: invalid query parameter"
// @Security BearerAuth
// @Router /api/v1/flows [get]
func (h *FlowHandler) List(c *gin.Context) {
	var q FlowListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.FlowFilter{
		SrcMAC:   q.SrcMAC,
		DstMAC:   q.DstMAC,
		SrcIP:    q.SrcIP,
		DstIP:    q.DstIP,
		VLANID:   q.VLANID,
		Protocol: q.Protocol,
		Port:     q.Port,
	}
	page := domain.PageRequest{Page: q.Page, PageSize: q.PageSize, SortBy: q.SortBy, SortOrder: q.SortOrder}

	result, err := h.ledger.List(c.Request.Context(), filter, page)
	if err != nil {
		writeError(c, err, "Flow")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get
// @Summary Get a flow by id
// @Tags Flows
// @Produce json
// @Param id path string true "Flow id (UUID)"
// @Success 200 {object} domain.FlowView
// @Failure 404 {object} map[string]string "error: Flow not found"
// @Security BearerAuth
// @Router /api/v1/flows/{id} [get]
func (h *FlowHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	flow, err := h.ledger.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Flow")
		return
	}
	c.JSON(http.StatusOK, flow)
}
