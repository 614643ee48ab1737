package queries

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/shopstatus"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/gate"
)

// Read-side ports for the resolver's persisted inputs.

type SettingsReadStore interface {
	GetForceStatus(ctx context.Context) (shopstatus.ForceStatus, error)
}

type NotificationReadStore interface {
	FindActive(ctx context.Context, now time.Time) ([]shopstatus.Notification, error)
}

type ShopHoursReadStore interface {
	GetWeek(ctx context.Context) (map[int]shopstatus.OperatingHours, error)
}

// StatusQueries resolves the shop availability verdict. Every call passes
// the admission gate first; the gate bound matches the connection budget the
// status reads are allowed to consume.
type StatusQueries interface {
	Resolve(ctx context.Context) (shopstatus.Result, error)
}

type statusQueriesImpl struct {
	gate          *gate.Gate
	settings      SettingsReadStore
	notifications NotificationReadStore
	hours         ShopHoursReadStore
	clock         clock.Clock
	logger        *slog.Logger
}

func NewStatusQueries(
	g *gate.Gate,
	settings SettingsReadStore,
	notifications NotificationReadStore,
	hours ShopHoursReadStore,
	clk clock.Clock,
	logger *slog.Logger,
) StatusQueries {
	return &statusQueriesImpl{
		gate:          g,
		settings:      settings,
		notifications: notifications,
		hours:         hours,
		clock:         clk,
		logger:        logger,
	}
}

// Resolve acquires an admission slot, reads persisted state, and runs the
// pure resolver. Repository failures are masked by the fail-open fallback:
// a store that cannot read its own schedule still takes orders. The only
// error surfaced is a dead request context while queued.
func (q *statusQueriesImpl) Resolve(ctx context.Context) (shopstatus.Result, error) {
	if err := q.gate.Acquire(ctx); err != nil {
		return shopstatus.Result{}, err
	}
	defer q.gate.Release()

	now := q.clock.Now()

	force, err := q.settings.GetForceStatus(ctx)
	if err != nil {
		return q.failOpen(now, "force status read failed", err), nil
	}
	if force.Status != shopstatus.ForceAuto {
		return shopstatus.Resolve(now, force, nil, nil), nil
	}

	notifications, err := q.notifications.FindActive(ctx, now)
	if err != nil {
		return q.failOpen(now, "notification read failed", err), nil
	}

	week, err := q.hours.GetWeek(ctx)
	if err != nil {
		return q.failOpen(now, "operating hours read failed", err), nil
	}

	return shopstatus.Resolve(now, force, notifications, week), nil
}

func (q *statusQueriesImpl) failOpen(now time.Time, msg string, err error) shopstatus.Result {
	q.logger.Error("shop status resolution failed, reporting open",
		"reason", msg, "error", err.Error())
	return shopstatus.FailOpen(now)
}
