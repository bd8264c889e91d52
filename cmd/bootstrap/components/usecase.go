package components

import (
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/usecase"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) queries.PageLimits {
		return queries.PageLimits{Default: cfg.Booking.DefaultPageSize, Max: cfg.Booking.MaxPageSize}
	},
	func(cfg config.Config, cache queries.BookingCache) commands.BookingOptions {
		return commands.BookingOptions{IDMaxAttempts: cfg.Booking.IDMaxAttempts, Cache: cache}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewStockLedger,
		func(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.CatalogCommands {
			return commands.NewCatalogUseCase(uow, clk, nil, cfg.Booking.IDMaxAttempts)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewStaffQueries,
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
		queries.NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
