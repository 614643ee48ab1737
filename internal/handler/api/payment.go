package api

import (
	"errors"
	"net/http"

	reqdto "storefront/internal/handler/dto/request"
	resdto "storefront/internal/handler/dto/response"
	"storefront/internal/pkg/metrics"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
	orderQueries    queries.OrderQueries
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands, orderQueries queries.OrderQueries) *PaymentHandler {
	return &PaymentHandler{
		paymentCommands: paymentCommands,
		orderQueries:    orderQueries,
	}
}

// @Summary Create payment
// @Description Build the signed gateway redirect URL for a payable order
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreatePaymentRequest true "Payment request"
// @Success 200 {object} resdto.CreatePaymentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /payment/create [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req reqdto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	paymentURL, err := h.paymentCommands.CreatePayment(c.Request.Context(), req.OrderID, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		case errors.Is(err, commands.ErrOrderAlreadyPaid):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Order already paid",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CreatePaymentResponse{PaymentURL: paymentURL})
}

// @Summary Payment IPN
// @Description Server-to-server payment confirmation from the gateway
// @Tags payments
// @Produce json
// @Success 200 {object} commands.IPNResult
// @Router /payment/ipn [get]
func (h *PaymentHandler) HandleIPN(c *gin.Context) {
	result := h.paymentCommands.HandleIPN(c.Request.Context(), queryParams(c))
	metrics.IncPaymentCallback(result.RspCode)
	// The gateway contract expects 200 regardless of outcome; RspCode
	// carries the verdict.
	c.JSON(http.StatusOK, result)
}

// @Summary Payment return
// @Description Browser redirect back from the gateway; display-only
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.ReturnResponse
// @Failure 400 {object} map[string]string
// @Router /payment/return [get]
func (h *PaymentHandler) HandleReturn(c *gin.Context) {
	result, err := h.paymentCommands.HandleReturn(c.Request.Context(), queryParams(c))
	if err != nil {
		if errors.Is(err, commands.ErrChecksumMismatch) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid checksum",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReturnResult(result))
}

// @Summary Get order payment state
// @Description Read the payment state of an order
// @Tags payments
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *PaymentHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return
	}

	view, err := h.orderQueries.GetOrder(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Order not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// queryParams flattens the request query into the single-valued map the
// signature verifier operates on.
func queryParams(c *gin.Context) map[string]string {
	params := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return params
}
