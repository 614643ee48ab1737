package bootstrap

import (
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/gate"
	"storefront/internal/pkg/metrics"

	"go.uber.org/fx"
)

var GateModule = fx.Module("gate",
	fx.Provide(
		NewStatusGate,
	),
)

// NewStatusGate bounds concurrent status resolutions. The limit tracks the
// share of the connection pool the status endpoint may consume.
func NewStatusGate(cfg config.Config) *gate.Gate {
	metrics.Register()
	return gate.NewWithMetric(cfg.Shop.StatusConcurrency, metrics.GateWaitObserver())
}
