package queries

import (
	"context"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
}

// OrderView is the payment-state read model surfaced to clients polling for
// the IPN outcome.
type OrderView struct {
	ID            uuid.UUID
	Code          string
	Amount        int64
	PaymentStatus string
}

type OrderQueries interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error)
}

type orderQueriesImpl struct {
	orders OrderReadStore
}

func NewOrderQueries(orders OrderReadStore) OrderQueries {
	return &orderQueriesImpl{orders: orders}
}

func (q *orderQueriesImpl) GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	ord, err := q.orders.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, err
	}

	return &OrderView{
		ID:            ord.ID(),
		Code:          ord.Code(),
		Amount:        ord.Amount(),
		PaymentStatus: string(ord.PaymentStatus()),
	}, nil
}
