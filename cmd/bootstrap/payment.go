package bootstrap

import (
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/vnpay"

	"go.uber.org/fx"
)

var PaymentModule = fx.Module("payment",
	fx.Provide(
		NewVNPaySigner,
	),
)

func NewVNPaySigner(cfg config.Config) *vnpay.Signer {
	return vnpay.NewSigner(cfg.VNPay.HashSecret)
}
