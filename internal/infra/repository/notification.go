package repository

import (
	"context"
	"time"

	"storefront/internal/domain/shopstatus"
	"storefront/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository manages the append-only shop_notifications table.
// Removal is a soft deactivate, never a delete.
type NotificationRepository struct {
	pool *pgxpool.Pool
}

func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// FindActive returns notifications covering now, earliest start date first —
// the resolver's deterministic tie-break order.
func (r *NotificationRepository) FindActive(ctx context.Context, now time.Time) ([]shopstatus.Notification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, message, start_date, end_date, is_active, show_overlay
		FROM shop_notifications
		WHERE is_active AND start_date <= $1 AND end_date >= $1
		ORDER BY start_date ASC`, now)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query active notifications", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

func (r *NotificationRepository) List(ctx context.Context) ([]shopstatus.Notification, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, message, start_date, end_date, is_active, show_overlay
		FROM shop_notifications
		ORDER BY start_date DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query notifications", err)
	}
	defer rows.Close()

	return scanNotifications(rows)
}

func (r *NotificationRepository) Create(ctx context.Context, n shopstatus.Notification) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO shop_notifications (id, title, message, start_date, end_date, is_active, show_overlay)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		n.ID, n.Title, n.Message, n.StartDate, n.EndDate, n.IsActive, n.ShowOverlay)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification", err)
	}
	return nil
}

func (r *NotificationRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE shop_notifications SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate notification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification not found", nil, infra.KindNotFound)
	}
	return nil
}

type notificationRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanNotifications(rows notificationRows) ([]shopstatus.Notification, error) {
	var result []shopstatus.Notification
	for rows.Next() {
		var n shopstatus.Notification
		if err := rows.Scan(&n.ID, &n.Title, &n.Message, &n.StartDate, &n.EndDate, &n.IsActive, &n.ShowOverlay); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification row", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read notification rows", err)
	}
	return result, nil
}
