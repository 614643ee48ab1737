package repository

import (
	"context"

	"storefront/internal/domain/shopstatus"
	"storefront/internal/infra"
	"storefront/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	keyForceStatus  = "force_status"
	keyForceMessage = "force_message"
)

// SettingsRepository persists the force-status singleton as key-value rows in
// shop_status_settings.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

// GetForceStatus returns the override; a missing row means auto.
func (r *SettingsRepository) GetForceStatus(ctx context.Context) (shopstatus.ForceStatus, error) {
	force := shopstatus.ForceStatus{Status: shopstatus.ForceAuto}

	var status string
	err := r.pool.QueryRow(ctx, `
		SELECT value FROM shop_status_settings WHERE key = $1`, keyForceStatus).Scan(&status)
	switch {
	case pgconv.IsNoRows(err):
		return force, nil
	case err != nil:
		return force, infra.WrapRepoErr("failed to query force status", err)
	}
	force.Status = status

	var message pgtype.Text
	err = r.pool.QueryRow(ctx, `
		SELECT value FROM shop_status_settings WHERE key = $1`, keyForceMessage).Scan(&message)
	switch {
	case pgconv.IsNoRows(err):
		return force, nil
	case err != nil:
		return force, infra.WrapRepoErr("failed to query force message", err)
	}
	force.Message = pgconv.StringPtrFromPgtype(message)

	return force, nil
}

func (r *SettingsRepository) SetForceStatus(ctx context.Context, status string, message *string) error {
	upsert := func(key string, value any) error {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO shop_status_settings (key, value)
			VALUES ($1, $2)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
		return err
	}

	if err := upsert(keyForceStatus, status); err != nil {
		return infra.WrapRepoErr("failed to set force status", err)
	}
	if err := upsert(keyForceMessage, pgconv.StringPtrToPgtype(message)); err != nil {
		return infra.WrapRepoErr("failed to set force message", err)
	}
	return nil
}
