package repository

import (
	"context"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	return r.findBy(ctx, `
		SELECT id, code, amount, payment_status, created_at, updated_at
		FROM orders WHERE id = $1`, id)
}

func (r *OrderRepository) FindByCode(ctx context.Context, code string) (*order.Order, error) {
	return r.findBy(ctx, `
		SELECT id, code, amount, payment_status, created_at, updated_at
		FROM orders WHERE code = $1`, code)
}

func (r *OrderRepository) findBy(ctx context.Context, query string, arg any) (*order.Order, error) {
	var (
		id        uuid.UUID
		code      string
		amount    int64
		status    string
		createdAt time.Time
		updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&id, &code, &amount, &status, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order", err)
	}

	return order.Reconstruct(id, code, amount, order.PaymentStatus(status), createdAt, updatedAt), nil
}

// MarkPaymentOutcome applies the guarded payment transition in SQL so that
// concurrent gateway callbacks cannot downgrade a paid order. The returned
// bool reports whether a row actually changed.
func (r *OrderRepository) MarkPaymentOutcome(ctx context.Context, id uuid.UUID, status order.PaymentStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE orders
		SET payment_status = $2, updated_at = NOW()
		WHERE id = $1 AND payment_status <> 'paid' AND payment_status <> $2`,
		id, string(status))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update payment status", err)
	}
	return tag.RowsAffected() > 0, nil
}
