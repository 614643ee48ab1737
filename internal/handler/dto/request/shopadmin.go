package request

import (
	"time"

	"storefront/internal/domain/shopstatus"
	"storefront/internal/usecase/commands"
)

type SetForceStatusRequest struct {
	Status  string  `json:"status" binding:"required,oneof=auto open closed"`
	Message *string `json:"message,omitempty"`
}

type UpsertOperatingHoursRequest struct {
	OpenTime  string `json:"openTime" binding:"required"`
	CloseTime string `json:"closeTime" binding:"required"`
	IsOpen    *bool  `json:"isOpen" binding:"required"`
}

func (r UpsertOperatingHoursRequest) ToDomain(dayOfWeek int) shopstatus.OperatingHours {
	return shopstatus.OperatingHours{
		DayOfWeek: dayOfWeek,
		OpenTime:  r.OpenTime,
		CloseTime: r.CloseTime,
		IsOpen:    *r.IsOpen,
	}
}

type CreateNotificationRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Message     string    `json:"message" binding:"required,max=2000"`
	StartDate   time.Time `json:"startDate" binding:"required"`
	EndDate     time.Time `json:"endDate" binding:"required"`
	ShowOverlay bool      `json:"showOverlay"`
}

func (r CreateNotificationRequest) ToParams() commands.CreateNotificationParams {
	return commands.CreateNotificationParams{
		Title:       r.Title,
		Message:     r.Message,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		ShowOverlay: r.ShowOverlay,
	}
}
