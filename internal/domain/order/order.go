package order

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// GatewaySuccessCode is the response code VNPay sends for a completed payment.
const GatewaySuccessCode = "00"

// Order is the payment-facing view of an order. Lifecycle management beyond
// the payment state transition lives elsewhere.
type Order struct {
	id            uuid.UUID
	code          string
	amount        int64 // VND
	paymentStatus PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

func Reconstruct(id uuid.UUID, code string, amount int64, status PaymentStatus, createdAt, updatedAt time.Time) *Order {
	return &Order{
		id:            id,
		code:          code,
		amount:        amount,
		paymentStatus: status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (o *Order) ID() uuid.UUID                { return o.id }
func (o *Order) Code() string                 { return o.code }
func (o *Order) Amount() int64                { return o.amount }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) CreatedAt() time.Time         { return o.createdAt }
func (o *Order) UpdatedAt() time.Time         { return o.updatedAt }

func (o *Order) IsPaid() bool {
	return o.paymentStatus == PaymentPaid
}

// ApplyGatewayOutcome transitions the payment state from a verified gateway
// callback. A paid order is never downgraded, so replayed callbacks are
// no-ops. The returned bool reports whether the state changed.
func (o *Order) ApplyGatewayOutcome(responseCode string) bool {
	if o.paymentStatus == PaymentPaid {
		return false
	}

	next := PaymentFailed
	if responseCode == GatewaySuccessCode {
		next = PaymentPaid
	}
	if o.paymentStatus == next {
		return false
	}
	o.paymentStatus = next
	return true
}
