package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"hotel-frontdesk/internal/domain/staff"
	"hotel-frontdesk/internal/infra/scheduler"
	"hotel-frontdesk/internal/pkg/config"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"

	"go.uber.org/fx"
)

const reconcileTimeout = 2 * time.Minute

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(
		seedManager,
		startScheduler,
	),
)

// reconcileJob leaves logging of the outcome to the ledger.
func reconcileJob(ledger commands.StockLedger) scheduler.Job {
	return func(ctx context.Context) error {
		_, err := ledger.Reconcile(ctx)
		return err
	}
}

func startScheduler(lc fx.Lifecycle, cfg config.Config, ledger commands.StockLedger) error {
	s := scheduler.New(reconcileTimeout)
	if err := s.Add("stock-reconcile", cfg.Stock.ReconcileSchedule, reconcileJob(ledger)); err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}

// seedManager creates the first manager account on an empty staff table.
func seedManager(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands) {
	if cfg.Staff.SeedEmail == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			credentials, err := staff.NewCredentials(cfg.Staff.SeedEmail, cfg.Staff.SeedPassword)
			if err != nil {
				return errs.Wrap(err, "invalid STAFF_SEED_EMAIL or STAFF_SEED_PASSWORD")
			}
			created, err := auth.SeedManager(ctx, "Manager", credentials)
			if err != nil {
				return errs.Wrap(err, "seed manager account")
			}
			if created {
				slog.Info("manager account seeded", "email", cfg.Staff.SeedEmail)
			}
			return nil
		},
	})
}
