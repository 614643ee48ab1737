package repository

import (
	"context"

	"storefront/internal/domain/shopstatus"
	"storefront/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ShopHoursRepository reads and writes the weekly schedule. Exactly one row
// exists per day-of-week; writes go through an upsert keyed on the day.
type ShopHoursRepository struct {
	pool *pgxpool.Pool
}

func NewShopHoursRepository(pool *pgxpool.Pool) *ShopHoursRepository {
	return &ShopHoursRepository{pool: pool}
}

func (r *ShopHoursRepository) GetWeek(ctx context.Context) (map[int]shopstatus.OperatingHours, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT day_of_week, open_time, close_time, is_open
		FROM shop_operating_hours
		ORDER BY day_of_week`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query operating hours", err)
	}
	defer rows.Close()

	week := make(map[int]shopstatus.OperatingHours, 7)
	for rows.Next() {
		var row shopstatus.OperatingHours
		if err := rows.Scan(&row.DayOfWeek, &row.OpenTime, &row.CloseTime, &row.IsOpen); err != nil {
			return nil, infra.WrapRepoErr("failed to scan operating hours row", err)
		}
		week[row.DayOfWeek] = row
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read operating hours rows", err)
	}

	return week, nil
}

func (r *ShopHoursRepository) Upsert(ctx context.Context, row shopstatus.OperatingHours) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO shop_operating_hours (day_of_week, open_time, close_time, is_open)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (day_of_week)
		DO UPDATE SET open_time = EXCLUDED.open_time,
		              close_time = EXCLUDED.close_time,
		              is_open = EXCLUDED.is_open`,
		row.DayOfWeek, row.OpenTime, row.CloseTime, row.IsOpen)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert operating hours", err)
	}
	return nil
}
