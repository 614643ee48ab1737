package commands

import (
	"context"

	"storefront/internal/domain/shopstatus"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidForceStatus = errs.New("invalid force status")
	ErrInvalidDayOfWeek   = errs.New("invalid day of week")
	ErrInvalidTimeOfDay   = errs.New("invalid time of day")
	ErrInvalidDateRange   = errs.New("invalid date range")
)

// ShopAdminCommands mutates the resolver's persisted inputs. All validation
// happens here at the write boundary; the resolver trusts what it reads.
type ShopAdminCommands interface {
	SetForceStatus(ctx context.Context, status string, message *string) error
	UpsertOperatingHours(ctx context.Context, row shopstatus.OperatingHours) error
	CreateNotification(ctx context.Context, params CreateNotificationParams) (uuid.UUID, error)
	DeactivateNotification(ctx context.Context, id uuid.UUID) error
}

type shopAdminCommandsImpl struct {
	hoursRepo        ShopHoursRepository
	notificationRepo NotificationRepository
	settingsRepo     SettingsRepository
}

func NewShopAdminCommands(
	hoursRepo ShopHoursRepository,
	notificationRepo NotificationRepository,
	settingsRepo SettingsRepository,
) ShopAdminCommands {
	return &shopAdminCommandsImpl{
		hoursRepo:        hoursRepo,
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
	}
}

func (c *shopAdminCommandsImpl) SetForceStatus(ctx context.Context, status string, message *string) error {
	if !shopstatus.ValidForceMode(status) {
		return ErrInvalidForceStatus
	}
	return c.settingsRepo.SetForceStatus(ctx, status, message)
}

func (c *shopAdminCommandsImpl) UpsertOperatingHours(ctx context.Context, row shopstatus.OperatingHours) error {
	if !shopstatus.ValidDayOfWeek(row.DayOfWeek) {
		return ErrInvalidDayOfWeek
	}
	if !shopstatus.ValidTimeOfDay(row.OpenTime) || !shopstatus.ValidTimeOfDay(row.CloseTime) {
		return ErrInvalidTimeOfDay
	}
	if row.OpenTime > row.CloseTime {
		return ErrInvalidTimeOfDay
	}
	return c.hoursRepo.Upsert(ctx, row)
}

func (c *shopAdminCommandsImpl) CreateNotification(ctx context.Context, params CreateNotificationParams) (uuid.UUID, error) {
	if !params.EndDate.After(params.StartDate) {
		return uuid.Nil, ErrInvalidDateRange
	}

	n := shopstatus.Notification{
		ID:          uuid.New(),
		Title:       params.Title,
		Message:     params.Message,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		IsActive:    true,
		ShowOverlay: params.ShowOverlay,
	}
	if err := c.notificationRepo.Create(ctx, n); err != nil {
		return uuid.Nil, err
	}
	return n.ID, nil
}

func (c *shopAdminCommandsImpl) DeactivateNotification(ctx context.Context, id uuid.UUID) error {
	return c.notificationRepo.Deactivate(ctx, id)
}
