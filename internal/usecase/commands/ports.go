package commands

import (
	"context"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/domain/shopstatus"

	"github.com/google/uuid"
)

// Write-side ports implemented by internal/infra/repository.

type ShopHoursRepository interface {
	Upsert(ctx context.Context, row shopstatus.OperatingHours) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n shopstatus.Notification) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type SettingsRepository interface {
	SetForceStatus(ctx context.Context, status string, message *string) error
}

type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	FindByCode(ctx context.Context, code string) (*order.Order, error)
	MarkPaymentOutcome(ctx context.Context, id uuid.UUID, status order.PaymentStatus) (bool, error)
}

// CreateNotificationParams carries the admin input for a new override window.
type CreateNotificationParams struct {
	Title       string
	Message     string
	StartDate   time.Time
	EndDate     time.Time
	ShowOverlay bool
}
