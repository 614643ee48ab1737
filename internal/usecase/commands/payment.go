package commands

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/internal/domain/order"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/vnpay"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound    = errs.New("order not found")
	ErrOrderAlreadyPaid = errs.New("order already paid")
	ErrChecksumMismatch = errs.New("checksum mismatch")
)

// Gateway IPN response codes, per the VNPay merchant contract. The IPN
// endpoint always answers 200 with one of these.
const (
	IPNCodeSuccess          = "00"
	IPNCodeOrderNotFound    = "01"
	IPNCodeAlreadyConfirmed = "02"
	IPNCodeInvalidAmount    = "04"
	IPNCodeInvalidChecksum  = "97"
	IPNCodeUnknownError     = "99"
)

type IPNResult struct {
	RspCode string `json:"RspCode"`
	Message string `json:"Message"`
}

type ReturnResult struct {
	OrderCode string
	Success   bool
	Message   string
}

type PaymentCommands interface {
	// CreatePayment builds the signed gateway redirect URL for a payable order.
	CreatePayment(ctx context.Context, orderID uuid.UUID, clientIP string) (string, error)
	// HandleIPN verifies and applies the gateway's server-to-server callback.
	HandleIPN(ctx context.Context, params map[string]string) IPNResult
	// HandleReturn verifies the browser return redirect. It never mutates
	// state; the IPN is authoritative.
	HandleReturn(ctx context.Context, params map[string]string) (ReturnResult, error)
}

type paymentCommandsImpl struct {
	orderRepo OrderRepository
	signer    *vnpay.Signer
	cfg       config.VNPayConfig
	clock     clock.Clock
	logger    *slog.Logger
}

func NewPaymentCommands(
	orderRepo OrderRepository,
	signer *vnpay.Signer,
	cfg config.VNPayConfig,
	clk clock.Clock,
	logger *slog.Logger,
) PaymentCommands {
	return &paymentCommandsImpl{
		orderRepo: orderRepo,
		signer:    signer,
		cfg:       cfg,
		clock:     clk,
		logger:    logger,
	}
}

func (p *paymentCommandsImpl) CreatePayment(ctx context.Context, orderID uuid.UUID, clientIP string) (string, error) {
	ord, err := p.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return "", errs.Mark(err, ErrOrderNotFound)
	}
	if ord.IsPaid() {
		return "", ErrOrderAlreadyPaid
	}

	params := map[string]string{
		"vnp_Version":    "2.1.0",
		"vnp_Command":    "pay",
		"vnp_TmnCode":    p.cfg.TmnCode,
		"vnp_Locale":     "vn",
		"vnp_CurrCode":   "VND",
		"vnp_TxnRef":     ord.Code(),
		"vnp_OrderInfo":  "Thanh toan don hang " + ord.Code(),
		"vnp_OrderType":  "other",
		"vnp_Amount":     gatewayAmount(ord.Amount()),
		"vnp_ReturnUrl":  p.cfg.ReturnURL,
		"vnp_IpAddr":     clientIP,
		"vnp_CreateDate": p.clock.Now().Format("20060102150405"),
	}

	return p.signer.BuildPaymentURL(p.cfg.PayURL, params), nil
}

func (p *paymentCommandsImpl) HandleIPN(ctx context.Context, params map[string]string) IPNResult {
	if !p.signer.Verify(params, params[vnpay.FieldSecureHash]) {
		p.logger.Warn("payment IPN rejected: checksum mismatch",
			"txn_ref", params["vnp_TxnRef"])
		return IPNResult{RspCode: IPNCodeInvalidChecksum, Message: "Invalid Checksum"}
	}

	ord, err := p.orderRepo.FindByCode(ctx, params["vnp_TxnRef"])
	if err != nil {
		p.logger.Warn("payment IPN: order lookup failed",
			"txn_ref", params["vnp_TxnRef"], "error", err.Error())
		return IPNResult{RspCode: IPNCodeOrderNotFound, Message: "Order not found"}
	}

	if params["vnp_Amount"] != gatewayAmount(ord.Amount()) {
		p.logger.Warn("payment IPN rejected: amount mismatch",
			"txn_ref", ord.Code(), "got", params["vnp_Amount"])
		return IPNResult{RspCode: IPNCodeInvalidAmount, Message: "Invalid amount"}
	}

	if ord.IsPaid() {
		return IPNResult{RspCode: IPNCodeAlreadyConfirmed, Message: "Order already confirmed"}
	}

	if changed := ord.ApplyGatewayOutcome(params["vnp_ResponseCode"]); changed {
		if _, err := p.orderRepo.MarkPaymentOutcome(ctx, ord.ID(), ord.PaymentStatus()); err != nil {
			p.logger.Error("payment IPN: failed to persist payment outcome",
				"order_id", ord.ID(), "error", err.Error())
			return IPNResult{RspCode: IPNCodeUnknownError, Message: "Unknown error"}
		}
	}

	p.logger.Info("payment IPN confirmed",
		"order_id", ord.ID(), "payment_status", string(ord.PaymentStatus()))
	return IPNResult{RspCode: IPNCodeSuccess, Message: "Confirm Success"}
}

func (p *paymentCommandsImpl) HandleReturn(ctx context.Context, params map[string]string) (ReturnResult, error) {
	if !p.signer.Verify(params, params[vnpay.FieldSecureHash]) {
		return ReturnResult{}, ErrChecksumMismatch
	}

	result := ReturnResult{
		OrderCode: params["vnp_TxnRef"],
		Success:   params["vnp_ResponseCode"] == order.GatewaySuccessCode,
	}
	if result.Success {
		result.Message = "Payment successful"
	} else {
		result.Message = "Payment was not completed"
	}
	return result, nil
}

// gatewayAmount renders the order amount in the gateway's minor-unit-times-100
// convention.
func gatewayAmount(amount int64) string {
	return strconv.FormatInt(amount*100, 10)
}
