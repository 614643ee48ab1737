package api

import (
	"net/http"

	"storefront/internal/domain/shopstatus"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	statusQueries queries.StatusQueries
	clock         clock.Clock
}

func NewStatusHandler(statusQueries queries.StatusQueries, clk clock.Clock) *StatusHandler {
	return &StatusHandler{
		statusQueries: statusQueries,
		clock:         clk,
	}
}

// @Summary Get shop status
// @Description Resolve the current shop availability verdict
// @Tags shop
// @Produce json
// @Success 200 {object} resdto.StatusResponse
// @Router /shop/status [get]
func (h *StatusHandler) GetStatus(c *gin.Context) {
	result, err := h.statusQueries.Resolve(c.Request.Context())
	if err != nil {
		// Only a dead request context while queued reaches here; the
		// client is gone, so the status code is moot.
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Request cancelled",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatusResult(result))
}

// MethodNotAllowed answers writes against the status endpoint with a closed
// verdict instead of mutating anything.
func (h *StatusHandler) MethodNotAllowed(c *gin.Context) {
	result := shopstatus.MethodNotAllowed(h.clock.Now())
	c.JSON(http.StatusMethodNotAllowed, resdto.FromStatusResult(result))
}
