package request

import "github.com/google/uuid"

type CreatePaymentRequest struct {
	OrderID uuid.UUID `json:"orderId" binding:"required"`
}
