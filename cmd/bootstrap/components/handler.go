package components

import (
	"hotel-frontdesk/internal/handler"
	"hotel-frontdesk/internal/handler/api"
	"hotel-frontdesk/internal/handler/middleware"
	"hotel-frontdesk/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewStockHandler,
		api.NewReportHandler,
		api.NewLiveHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
		func(cfg config.Config, client redis.UniversalClient) (*middleware.RateLimiters, error) {
			return middleware.NewRateLimiters(cfg.RateLimit, client)
		},
	),
	fx.Invoke(handler.NewRouter),
)
