package components

import (
	repo_impl "storefront/internal/infra/repository"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewShopHoursRepository,
			fx.As(new(commands.ShopHoursRepository)),
			fx.As(new(queries.ShopHoursReadStore)),
		),
		fx.Annotate(
			repo_impl.NewNotificationRepository,
			fx.As(new(commands.NotificationRepository)),
			fx.As(new(queries.NotificationReadStore)),
			fx.As(new(queries.NotificationListStore)),
		),
		fx.Annotate(
			repo_impl.NewSettingsRepository,
			fx.As(new(commands.SettingsRepository)),
			fx.As(new(queries.SettingsReadStore)),
		),
		fx.Annotate(
			repo_impl.NewOrderRepository,
			fx.As(new(commands.OrderRepository)),
			fx.As(new(queries.OrderReadStore)),
		),
	),
)
