package queries

import (
	"context"
	"sort"

	"storefront/internal/domain/shopstatus"
)

type NotificationListStore interface {
	List(ctx context.Context) ([]shopstatus.Notification, error)
}

// ShopAdminQueries is the admin read surface over the resolver's inputs.
type ShopAdminQueries interface {
	ListOperatingHours(ctx context.Context) ([]shopstatus.OperatingHours, error)
	ListNotifications(ctx context.Context) ([]shopstatus.Notification, error)
	GetForceStatus(ctx context.Context) (shopstatus.ForceStatus, error)
}

type shopAdminQueriesImpl struct {
	hours         ShopHoursReadStore
	notifications NotificationListStore
	settings      SettingsReadStore
}

func NewShopAdminQueries(
	hours ShopHoursReadStore,
	notifications NotificationListStore,
	settings SettingsReadStore,
) ShopAdminQueries {
	return &shopAdminQueriesImpl{
		hours:         hours,
		notifications: notifications,
		settings:      settings,
	}
}

func (q *shopAdminQueriesImpl) ListOperatingHours(ctx context.Context) ([]shopstatus.OperatingHours, error) {
	week, err := q.hours.GetWeek(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]shopstatus.OperatingHours, 0, len(week))
	for _, row := range week {
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].DayOfWeek < rows[j].DayOfWeek })
	return rows, nil
}

func (q *shopAdminQueriesImpl) ListNotifications(ctx context.Context) ([]shopstatus.Notification, error) {
	return q.notifications.List(ctx)
}

func (q *shopAdminQueriesImpl) GetForceStatus(ctx context.Context) (shopstatus.ForceStatus, error) {
	return q.settings.GetForceStatus(ctx)
}
