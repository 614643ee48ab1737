package response

import (
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CreatePaymentResponse struct {
	PaymentURL string `json:"paymentUrl"`
}

type ReturnResponse struct {
	OrderCode string `json:"orderCode"`
	Success   bool   `json:"success"`
	Message   string `json:"message"`
}

func FromReturnResult(r commands.ReturnResult) *ReturnResponse {
	var resp ReturnResponse
	_ = copier.Copy(&resp, &r)
	return &resp
}

type OrderResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Amount        int64  `json:"amount"`
	PaymentStatus string `json:"paymentStatus"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	return &OrderResponse{
		ID:            v.ID.String(),
		Code:          v.Code,
		Amount:        v.Amount,
		PaymentStatus: v.PaymentStatus,
	}
}
