package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/secuaas/NetSentinel/internal/core/port"
)

// streamInterval is the push cadence for the live dashboard stream.
const streamInterval = 5 * time.Second

type StatsHandler struct {
	stats    port.StatsProvider
	upgrader websocket.Upgrader
}

func NewStatsHandler(stats port.StatsProvider) *StatsHandler {
	return &StatsHandler{
		stats: stats,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Dashboard
// @Summary Dashboard statistics
// @Description Single read-only snapshot: device/flow counts, traffic totals, protocol distribution, top talkers and VLAN stats.
// @Tags Statistics
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Security BearerAuth
// @Router /api/v1/stats/dashboard [get]
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		writeError(c, err, "Stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Stream
// @Summary Live dashboard stream
// @Description Upgrades to a websocket and pushes the dashboard snapshot every few seconds until the client disconnects.
// @Tags Statistics
// @Success 101 {string} string "Switching Protocols"
// @Security BearerAuth
// @Router /api/v1/stats/stream [get]
func (h *StatsHandler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Drain control frames so client close is noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamInterval)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		stats, err := h.stats.Dashboard(ctx)
		if err != nil {
			log.Printf("Dashboard snapshot failed, closing stream: %v", err)
			return
		}
		if err := conn.WriteJSON(stats); err != nil {
			return
		}

		select {
		case <-ticker.C:
		case <-done:
			return
		case <-ctx.Done():
			return
		}
	}
}
