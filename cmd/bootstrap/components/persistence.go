package components

import (
	"context"

	"hotel-frontdesk/internal/infra/changefeed"
	"hotel-frontdesk/internal/infra/memstore"
	"hotel-frontdesk/internal/infra/uow"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	changefeedModule,
	fx.Provide(
		NewUnitOfWork,
	),
)

var changefeedModule = fx.Module("persistence/changefeed",
	fx.Provide(
		changefeed.NewHub,
		func(h *changefeed.Hub) shared.ChangeFeed { return h },
		func(h *changefeed.Hub) shared.ChangePublisher { return h },
	),
)

// NewUnitOfWork picks the store from the pool: Postgres when there is one,
// the in-process store otherwise. Postgres commits reach the hub through
// LISTEN; the memory store publishes its own.
func NewUnitOfWork(lc fx.Lifecycle, pool *pgxpool.Pool, hub shared.ChangePublisher, clk clock.Clock) shared.UnitOfWork {
	if pool == nil {
		return memstore.New(hub, clk)
	}

	listener := changefeed.NewListener(pool, hub, clk)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listener.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			listener.Stop()
			return nil
		},
	})
	return uow.NewPostgresUoW(pool)
}
