//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strconv"
	"testing"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/vnpay"
	"storefront/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders   map[string]*order.Order // keyed by code
	byID     map[uuid.UUID]*order.Order
	statuses map[uuid.UUID]order.PaymentStatus
	markErr  error
}

func newFakeOrderRepo(orders ...*order.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{
		orders:   make(map[string]*order.Order),
		byID:     make(map[uuid.UUID]*order.Order),
		statuses: make(map[uuid.UUID]order.PaymentStatus),
	}
	for _, o := range orders {
		r.orders[o.Code()] = o
		r.byID[o.ID()] = o
		r.statuses[o.ID()] = o.PaymentStatus()
	}
	return r
}

func (r *fakeOrderRepo) reconstruct(o *order.Order) *order.Order {
	return order.Reconstruct(o.ID(), o.Code(), o.Amount(), r.statuses[o.ID()], o.CreatedAt(), o.UpdatedAt())
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	o, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return r.reconstruct(o), nil
}

func (r *fakeOrderRepo) FindByCode(_ context.Context, code string) (*order.Order, error) {
	o, ok := r.orders[code]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return r.reconstruct(o), nil
}

func (r *fakeOrderRepo) MarkPaymentOutcome(_ context.Context, id uuid.UUID, status order.PaymentStatus) (bool, error) {
	if r.markErr != nil {
		return false, r.markErr
	}
	if r.statuses[id] == order.PaymentPaid || r.statuses[id] == status {
		return false, nil
	}
	r.statuses[id] = status
	return true, nil
}

var testClock = clock.NewMockClock(time.Date(2024, 6, 3, 10, 0, 0, 0, time.Local))

func newPaymentCommands(repo *fakeOrderRepo) (commands.PaymentCommands, *vnpay.Signer, config.VNPayConfig) {
	cfg := config.NewTestConfig().VNPay
	signer := vnpay.NewSigner(cfg.HashSecret)
	cmds := commands.NewPaymentCommands(repo, signer, cfg, testClock,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	return cmds, signer, cfg
}

func pendingOrder(code string, amount int64) *order.Order {
	now := testClock.Now()
	return order.Reconstruct(uuid.New(), code, amount, order.PaymentPending, now, now)
}

func signedIPNParams(t *testing.T, signer *vnpay.Signer, ord *order.Order, responseCode string) map[string]string {
	t.Helper()
	params := map[string]string{
		"vnp_TmnCode":      "TESTTMN1",
		"vnp_TxnRef":       ord.Code(),
		"vnp_Amount":       strconv.FormatInt(ord.Amount()*100, 10),
		"vnp_ResponseCode": responseCode,
		"vnp_TransactionNo": "14226112",
	}
	params[vnpay.FieldSecureHash] = signer.Sign(params)
	return params
}

func TestPaymentCommands_CreatePayment(t *testing.T) {
	t.Run("builds a signed redirect URL", func(t *testing.T) {
		ord := pendingOrder("ORD-2024-0001", 150000)
		repo := newFakeOrderRepo(ord)
		cmds, signer, cfg := newPaymentCommands(repo)

		redirect, err := cmds.CreatePayment(context.Background(), ord.ID(), "203.0.113.7")
		require.NoError(t, err)

		parsed, err := url.Parse(redirect)
		require.NoError(t, err)
		query := parsed.Query()

		assert.Equal(t, "2.1.0", query.Get("vnp_Version"))
		assert.Equal(t, "pay", query.Get("vnp_Command"))
		assert.Equal(t, cfg.TmnCode, query.Get("vnp_TmnCode"))
		assert.Equal(t, "15000000", query.Get("vnp_Amount"), "amount is minor-unit times 100")
		assert.Equal(t, "ORD-2024-0001", query.Get("vnp_TxnRef"))
		assert.Equal(t, "20240603100000", query.Get("vnp_CreateDate"))
		assert.Equal(t, "203.0.113.7", query.Get("vnp_IpAddr"))

		// The emitted URL verifies against its own signature.
		params := map[string]string{}
		for k := range query {
			params[k] = query.Get(k)
		}
		assert.True(t, signer.Verify(params, query.Get(vnpay.FieldSecureHash)))
	})

	t.Run("unknown order is rejected", func(t *testing.T) {
		cmds, _, _ := newPaymentCommands(newFakeOrderRepo())
		_, err := cmds.CreatePayment(context.Background(), uuid.New(), "203.0.113.7")
		require.ErrorIs(t, err, commands.ErrOrderNotFound)
	})

	t.Run("paid order is rejected", func(t *testing.T) {
		now := testClock.Now()
		ord := order.Reconstruct(uuid.New(), "ORD-2024-0002", 150000, order.PaymentPaid, now, now)
		cmds, _, _ := newPaymentCommands(newFakeOrderRepo(ord))

		_, err := cmds.CreatePayment(context.Background(), ord.ID(), "203.0.113.7")
		require.ErrorIs(t, err, commands.ErrOrderAlreadyPaid)
	})
}

func TestPaymentCommands_HandleIPN(t *testing.T) {
	t.Run("tampered hash leaves the order unchanged", func(t *testing.T) {
		ord := pendingOrder("ORD-2024-0001", 150000)
		repo := newFakeOrderRepo(ord)
		cmds, signer, _ := newPaymentCommands(repo)

		params := signedIPNParams(t, signer, ord, "00")
		params["vnp_Amount"] = "1" // tamper after signing

		got := cmds.HandleIPN(context.Background(), params)

		assert.Equal(t, commands.IPNCodeInvalidChecksum, got.RspCode)
		assert.Equal(t, order.PaymentPending, repo.statuses[ord.ID()])
	})

	t.Run("success code transitions pending to paid", func(t *testing.T) {
		ord := pendingOrder("ORD-2024-0001", 150000)
		repo := newFakeOrderRepo(ord)
		cmds, signer, _ := newPaymentCommands(repo)

		got := cmds.HandleIPN(context.Background(), signedIPNParams(t, signer, ord, "00"))

		assert.Equal(t, commands.IPNCodeSuccess, got.RspCode)
		assert.Equal(t, order.PaymentPaid, repo.statuses[ord.ID()])
	})

	t.Run("duplicate success IPN is acknowledged without changes", func(t *testing.T) {
		ord := pendingOrder("ORD-2024-0001", 150000)
		repo := newFakeOrderRepo(ord)
		cmds, signer, _ := newPaymentCommands(repo)

		first := cmds.HandleIPN(context.Background(), signedIPNParams(t, signer, ord, "00"))
		require.Equal(t, commands.IPNCodeSuccess, first.RspCode)

		second := cmds.HandleIPN(context.Background(), signedIPNParams(t, signer, ord, "00"))
		assert.Equal(t, commands.IPNCodeAlreadyConfirmed, second.RspCode)
		assert.Equal(t, order.PaymentPaid, repo.statuses[ord.ID()])
	})

	t.Run("failure code transitions pending to failed", func(t *testing.T) {
		ord := pendingOrder("ORD-2024-0001", 150000)
		repo := newFakeOrderRepo(ord)
		cmds, signer, _ := newPaymentCommands(repo)

		got := cmds.HandleIPN(context.Background(), signedIPNParams(t, signer, ord, "24"))

		assert.Equal(t, commands.IPNCodeSuccess, got.RspCode)
		assert.Equal(t, order.PaymentFailed, repo.statuses[ord.ID()])
	})

	t.Run("unknown order", func(t *testing.T) {
		ord := pendingOrder("ORD-MISSING", 150000)
		cmds, signer, _ := newPaymentCommands(newFakeOrderRepo())

		got := cmds.HandleIPN(context.Background(), signedIPNParams(t, signer, ord, "00"))
		assert.Equal(t, commands.IPNCodeOrderNotFound, got.RspCode)
	})

	t.Run("amount mismatch", func(t *testing.T) {
		ord := pendingOrder("ORD-2024-0001", 150000)
		repo := newFakeOrderRepo(ord)
		cmds, signer, _ := newPaymentCommands(repo)

		params := map[string]string{
			"vnp_TxnRef":       ord.Code(),
			"vnp_Amount":       "999",
			"vnp_ResponseCode": "00",
		}
		params[vnpay.FieldSecureHash] = signer.Sign(params)

		got := cmds.HandleIPN(context.Background(), params)
		assert.Equal(t, commands.IPNCodeInvalidAmount, got.RspCode)
		assert.Equal(t, order.PaymentPending, repo.statuses[ord.ID()])
	})

	t.Run("persistence failure answers unknown error", func(t *testing.T) {
		ord := pendingOrder("ORD-2024-0001", 150000)
		repo := newFakeOrderRepo(ord)
		repo.markErr = infra.WrapRepoErr("write failed", nil)
		cmds, signer, _ := newPaymentCommands(repo)

		got := cmds.HandleIPN(context.Background(), signedIPNParams(t, signer, ord, "00"))
		assert.Equal(t, commands.IPNCodeUnknownError, got.RspCode)
	})
}

func TestPaymentCommands_HandleReturn(t *testing.T) {
	ord := pendingOrder("ORD-2024-0001", 150000)

	t.Run("valid successful return", func(t *testing.T) {
		repo := newFakeOrderRepo(ord)
		cmds, signer, _ := newPaymentCommands(repo)

		got, err := cmds.HandleReturn(context.Background(), signedIPNParams(t, signer, ord, "00"))
		require.NoError(t, err)
		assert.True(t, got.Success)
		assert.Equal(t, "ORD-2024-0001", got.OrderCode)
		// The return leg never mutates payment state.
		assert.Equal(t, order.PaymentPending, repo.statuses[ord.ID()])
	})

	t.Run("valid failed return", func(t *testing.T) {
		cmds, signer, _ := newPaymentCommands(newFakeOrderRepo(ord))
		got, err := cmds.HandleReturn(context.Background(), signedIPNParams(t, signer, ord, "24"))
		require.NoError(t, err)
		assert.False(t, got.Success)
	})

	t.Run("tampered return is rejected", func(t *testing.T) {
		cmds, signer, _ := newPaymentCommands(newFakeOrderRepo(ord))
		params := signedIPNParams(t, signer, ord, "00")
		params["vnp_ResponseCode"] = "24"

		_, err := cmds.HandleReturn(context.Background(), params)
		require.ErrorIs(t, err, commands.ErrChecksumMismatch)
	})
}
