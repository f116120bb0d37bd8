package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/secuaas/NetSentinel/internal/core/domain"
	"github.com/secuaas/NetSentinel/internal/core/port"
)

// --- Request Structs ---

type DeviceListQuery struct {
	Page       int    `form:"page,default=1"`
	PageSize   int    `form:"page_size,default=50"`
	Search     string `form:"search"`
	DeviceType string `form:"device_type"`
	IsActive   *bool  `form:"is_active"`
	IsFlagged  *bool  `form:"is_flagged"`
	VLANID     *int   `form:"vlan_id"`
	SortBy     string `form:"sort_by,default=last_seen"`
	SortOrder  string `form:"sort_order,default=desc"`
}

type DeviceFlowsQuery struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=50"`
}

type DeviceHandler struct {
	directory port.DeviceDirectory
}

func NewDeviceHandler(directory port.DeviceDirectory) *DeviceHandler {
	return &DeviceHandler{directory: directory}
}

// parseID reads a UUID path parameter, responding 400 on malformed input.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id: " + c.Param("id")})
		return uuid.Nil, false
	}
	return id, true
}

// List
// @Summary List devices
// @Description Returns a paginated device listing with optional text search, type/flag filters and VLAN membership filter.
// @Tags Devices
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param page_size query int false "Page size (1-100)" default(50)
// @Param search query string false "Case-insensitive substring match over MAC, name and vendor"
// @Param device_type query string false "Exact device type"
// @Param is_active query bool false "Filter on active flag"
// @Param is_flagged query bool false "Filter on flagged flag"
// @Param vlan_id query int false "Devices with at least one IP binding on this VLAN"
// @Param sort_by query string false "mac_address|device_name|first_seen|last_seen|total_bytes_sent|total_bytes_received" default(last_seen)
// @Param sort_order query string false "asc|desc" default(desc)
// @Success 200 {object} domain.DeviceListResponse
// @Failure 400 {object} map[string]string "error: invalid query parameter"
// @Security BearerAuth
// @Router /api/v1/devices [get]
func (h *DeviceHandler) List(c *gin.Context) {
	var q DeviceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.DeviceFilter{
		Search:     q.Search,
		DeviceType: q.DeviceType,
		IsActive:   q.IsActive,
		IsFlagged:  q.IsFlagged,
		VLANID:     q.VLANID,
	}
	page := domain.PageRequest{Page: q.Page, PageSize: q.PageSize, SortBy: q.SortBy, SortOrder: q.SortOrder}

	result, err := h.directory.List(c.Request.Context(), filter, page)
	if err != nil {
		writeError(c, err, "Device")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Get
// @Summary Get a device by id
// @Tags Devices
// @Produce json
// @Param id path string true "Device id (UUID)"
// @Success 200 {object} domain.DeviceView
// @Failure 404 {object} map[string]string "error: Device not found"
// @Security BearerAuth
// @Router /api/v1/devices/{id} [get]
func (h *DeviceHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	device, err := h.directory.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "Device")
		return
	}
	c.JSON(http.StatusOK, device)
}

// Update
// @Summary Update device metadata
// @Description Partial update: only device_type, device_name, device_notes, is_gateway and is_flagged are writable; omitted fields are left unmodified.
// @Tags Devices
// @Accept json
// @Produce json
// @Param id path string true "Device id (UUID)"
// @Param update body domain.DeviceUpdate true "Fields to update"
// @Success 200 {object} domain.DeviceView
// @Failure 400 {object} map[string]string "error: Invalid request format"
// @Failure 404 {object} map[string]string "error: Device not found"
// @Security BearerAuth
// @Router /api/v1/devices/{id} [patch]
func (h *DeviceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var update domain.DeviceUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	device, err := h.directory.Update(c.Request.Context(), id, update)
	if err != nil {
		writeError(c, err, "Device")
		return
	}
	c.JSON(http.StatusOK, device)
}

// Delete
// @Summary Delete a device
// @Description Administrative removal. IP bindings are removed with the device; flows keep their address data with the device reference cleared.
// @Tags Devices
// @Produce json
// @Param id path string true "Device id (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "error: Device not found"
// @Security BearerAuth
// @Router /api/v1/devices/{id} [delete]
func (h *DeviceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.directory.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "Device")
		return
	}
	c.Status(http.StatusNoContent)
}

// Flows
// @Summary List flows for a device
// @Description Flows where the device appears as source or destination, newest last_seen first.
// @Tags Devices
// @Produce json
// @Param id path string true "Device id (UUID)"
// @Param page query int false "1-based page number" default(1)
// @Param page_size query int false "Page size (1-100)" default(50)
// @Success 200 {object} domain.FlowListResponse
// @Failure 404 {object} map[string]string "error: Device not found"
// @Security BearerAuth
// @Router /api/v1/devices/{id}/flows [get]
func (h *DeviceHandler) Flows(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var q DeviceFlowsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page := domain.PageRequest{
		Page:      q.Page,
		PageSize:  q.PageSize,
		SortBy:    "last_seen",
		SortOrder: domain.SortDesc,
	}

	result, err := h.directory.Flows(c.Request.Context(), id, page)
	if err != nil {
		writeError(c, err, "Device")
		return
	}
	c.JSON(http.StatusOK, result)
}
