package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/infra"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ShopAdminHandler struct {
	adminCommands commands.ShopAdminCommands
	adminQueries  queries.ShopAdminQueries
}

func NewShopAdminHandler(adminCommands commands.ShopAdminCommands, adminQueries queries.ShopAdminQueries) *ShopAdminHandler {
	return &ShopAdminHandler{
		adminCommands: adminCommands,
		adminQueries:  adminQueries,
	}
}

// @Summary Set force status
// @Description Override the schedule-based availability computation
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SetForceStatusRequest true "Force status"
// @Success 200 {object} resdto.ForceStatusResponse
// @Failure 400 {object} map[string]string
// @Router /admin/shop/force-status [put]
func (h *ShopAdminHandler) SetForceStatus(c *gin.Context) {
	var req reqdto.SetForceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminCommands.SetForceStatus(c.Request.Context(), req.Status, req.Message); err != nil {
		if errors.Is(err, commands.ErrInvalidForceStatus) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid force status",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.ForceStatusResponse{Status: req.Status, Message: req.Message})
}

// @Summary Get force status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ForceStatusResponse
// @Router /admin/shop/force-status [get]
func (h *ShopAdminHandler) GetForceStatus(c *gin.Context) {
	fs, err := h.adminQueries.GetForceStatus(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromForceStatus(fs))
}

// @Summary Upsert operating hours
// @Description Create or replace the schedule row for one weekday
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param day path int true "Day of week (0=Sunday..6=Saturday)"
// @Param request body reqdto.UpsertOperatingHoursRequest true "Schedule row"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/shop/operating-hours/{day} [put]
func (h *ShopAdminHandler) UpsertOperatingHours(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid day of week",
		})
		return
	}

	var req reqdto.UpsertOperatingHoursRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.adminCommands.UpsertOperatingHours(c.Request.Context(), req.ToDomain(day)); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDayOfWeek):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid day of week",
			})
		case errors.Is(err, commands.ErrInvalidTimeOfDay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid time of day",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List operating hours
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.OperatingHoursView
// @Router /admin/shop/operating-hours [get]
func (h *ShopAdminHandler) ListOperatingHours(c *gin.Context) {
	rows, err := h.adminQueries.ListOperatingHours(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOperatingHoursList(rows))
}

// @Summary Create notification
// @Description Create an availability notification window
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateNotificationRequest true "Notification"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /admin/shop/notifications [post]
func (h *ShopAdminHandler) CreateNotification(c *gin.Context) {
	var req reqdto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.adminCommands.CreateNotification(c.Request.Context(), req.ToParams())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidDateRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "End date must be after start date",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id.String()})
}

// @Summary List notifications
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.NotificationResponse
// @Router /admin/shop/notifications [get]
func (h *ShopAdminHandler) ListNotifications(c *gin.Context) {
	rows, err := h.adminQueries.ListNotifications(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromNotificationList(rows))
}

// @Summary Deactivate notification
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/shop/notifications/{id} [delete]
func (h *ShopAdminHandler) DeactivateNotification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid notification ID format",
		})
		return
	}

	if err := h.adminCommands.DeactivateNotification(c.Request.Context(), id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Notification not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
