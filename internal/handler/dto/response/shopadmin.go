package response

import (
	"time"

	"storefront/internal/domain/shopstatus"
)

type NotificationResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	IsActive    bool   `json:"isActive"`
	ShowOverlay bool   `json:"showOverlay"`
}

func FromNotification(n shopstatus.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID.String(),
		Title:       n.Title,
		Message:     n.Message,
		StartDate:   n.StartDate.Format(time.RFC3339),
		EndDate:     n.EndDate.Format(time.RFC3339),
		IsActive:    n.IsActive,
		ShowOverlay: n.ShowOverlay,
	}
}

func FromNotificationList(rows []shopstatus.Notification) []NotificationResponse {
	views := make([]NotificationResponse, len(rows))
	for i, row := range rows {
		views[i] = FromNotification(row)
	}
	return views
}

type ForceStatusResponse struct {
	Status  string  `json:"status"`
	Message *string `json:"message,omitempty"`
}

func FromForceStatus(fs shopstatus.ForceStatus) *ForceStatusResponse {
	return &ForceStatusResponse{Status: fs.Status, Message: fs.Message}
}
