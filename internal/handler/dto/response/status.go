package response

import (
	"time"

	"storefront/internal/domain/shopstatus"

	"github.com/jinzhu/copier"
)

type OperatingHoursView struct {
	DayOfWeek int    `json:"dayOfWeek"`
	DayName   string `json:"dayName"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
	IsOpen    bool   `json:"isOpen"`
}

type OperatingHoursGroup struct {
	Today   OperatingHoursView  `json:"today"`
	NextDay *OperatingHoursView `json:"nextDay,omitempty"`
}

type StatusResponse struct {
	IsOpen         bool                 `json:"isOpen"`
	Status         string               `json:"status"`
	Message        string               `json:"message"`
	Title          *string              `json:"title,omitempty"`
	NextOpenTime   *string              `json:"nextOpenTime,omitempty"`
	CurrentTime    string               `json:"currentTime"`
	ForceStatus    *bool                `json:"forceStatus,omitempty"`
	OperatingHours *OperatingHoursGroup `json:"operatingHours,omitempty"`
}

func FromStatusResult(r shopstatus.Result) *StatusResponse {
	resp := &StatusResponse{
		IsOpen:       r.IsOpen,
		Status:       string(r.Status),
		Message:      r.Message,
		Title:        r.Title,
		NextOpenTime: r.NextOpenTime,
		CurrentTime:  r.CurrentTime.Format(time.RFC3339),
	}

	if r.ForceStatus {
		force := true
		resp.ForceStatus = &force
	}

	if r.Today != nil {
		group := &OperatingHoursGroup{Today: toOperatingHoursView(*r.Today)}
		if r.NextDay != nil {
			next := toOperatingHoursView(*r.NextDay)
			group.NextDay = &next
		}
		resp.OperatingHours = group
	}

	return resp
}

func toOperatingHoursView(row shopstatus.OperatingHours) OperatingHoursView {
	var view OperatingHoursView
	_ = copier.Copy(&view, &row)
	view.DayName = shopstatus.DayName(row.DayOfWeek)
	return view
}

func FromOperatingHoursList(rows []shopstatus.OperatingHours) []OperatingHoursView {
	views := make([]OperatingHoursView, len(rows))
	for i, row := range rows {
		views[i] = toOperatingHoursView(row)
	}
	return views
}
