package commands

//go:generate mockgen -source=stock.go -destination=../../../tests/mock/commands/stock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"sync"

	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/queries"
	"hotel-frontdesk/internal/usecase/shared"
)

var (
	ErrInvalidQuantity = errs.New("quantity must be greater than zero")
	errAlreadyResolved = errs.New("shortfall already resolved")
)

// StockLedger moves minibar stock. Every change is a single conditional
// adjustment in the store, so stock never goes below zero.
type StockLedger interface {
	Consume(ctx context.Context, itemID string, qty int) (int, error)
	Restock(ctx context.Context, itemID string, qty int) (int, error)
	Reconcile(ctx context.Context) (*ReconcileReport, error)
	ListShortfalls(ctx context.Context, status minibar.ShortfallStatus) ([]*queries.ShortfallView, error)
}

type stockLedgerImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	// one reconcile pass at a time per process
	reconcileMu sync.Mutex
}

func NewStockLedger(uow shared.UnitOfWork, clk clock.Clock) StockLedger {
	return &stockLedgerImpl{uow: uow, clock: clk}
}

// Consume takes qty units out of stock and returns the new level. A
// non-positive quantity changes nothing and returns the current level.
func (l *stockLedgerImpl) Consume(ctx context.Context, itemID string, qty int) (int, error) {
	if qty <= 0 {
		return l.current(ctx, itemID)
	}
	return l.adjust(ctx, itemID, -qty)
}

func (l *stockLedgerImpl) Restock(ctx context.Context, itemID string, qty int) (int, error) {
	if qty <= 0 {
		return 0, ErrInvalidQuantity
	}
	stock, err := l.adjust(ctx, itemID, qty)
	if err != nil {
		return 0, err
	}
	slog.Info("minibar item restocked", "item_id", itemID, "quantity", qty, "stock", stock)
	return stock, nil
}

func (l *stockLedgerImpl) current(ctx context.Context, itemID string) (int, error) {
	var stock int
	err := l.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		it, err := tx.Minibar().FindByID(ctx, itemID)
		if err != nil {
			return err
		}
		stock = it.Stock()
		return nil
	})
	if err != nil {
		return 0, stockErr(err)
	}
	return stock, nil
}

func (l *stockLedgerImpl) adjust(ctx context.Context, itemID string, delta int) (int, error) {
	var stock int
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		stock, err = tx.Minibar().AdjustStock(ctx, itemID, delta)
		return err
	})
	if err != nil {
		return 0, stockErr(err)
	}
	return stock, nil
}

// Reconcile retries every pending shortfall, each in its own transaction. A
// shortfall the stock still cannot cover stays pending with the attempt
// counted.
func (l *stockLedgerImpl) Reconcile(ctx context.Context) (*ReconcileReport, error) {
	l.reconcileMu.Lock()
	defer l.reconcileMu.Unlock()

	var pending []minibar.Shortfall
	err := l.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		pending, err = tx.Shortfalls().List(ctx, minibar.ShortfallPending)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	report := &ReconcileReport{}
	for _, s := range pending {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Checked++

		resolved, err := l.settle(ctx, s)
		switch {
		case errs.Is(err, errAlreadyResolved):
			continue
		case err != nil:
			return report, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		case resolved:
			report.Resolved++
		default:
			report.Pending++
		}
	}

	if report.Checked > 0 {
		slog.Info("stock reconciled",
			"checked", report.Checked,
			"resolved", report.Resolved,
			"pending", report.Pending,
		)
	}
	return report, nil
}

func (l *stockLedgerImpl) settle(ctx context.Context, s minibar.Shortfall) (bool, error) {
	resolved := false
	err := l.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resolved = false
		_, err := tx.Minibar().AdjustStock(ctx, s.ItemID, -s.Quantity)
		if err != nil {
			var short *minibar.NegativeStockError
			if errs.As(err, &short) || infra.IsKind(err, infra.KindNotFound) {
				return tx.Shortfalls().RecordAttempt(ctx, s.ID, err.Error())
			}
			return err
		}
		if err := tx.Shortfalls().MarkResolved(ctx, s.ID, l.clock.Now()); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Another pass got there first; rolling back returns the units.
				return errAlreadyResolved
			}
			return err
		}
		resolved = true
		return nil
	})
	return resolved, err
}

func (l *stockLedgerImpl) ListShortfalls(ctx context.Context, status minibar.ShortfallStatus) ([]*queries.ShortfallView, error) {
	var list []minibar.Shortfall
	err := l.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		list, err = tx.Shortfalls().List(ctx, status)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	out := make([]*queries.ShortfallView, 0, len(list))
	for _, s := range list {
		out = append(out, queries.NewShortfallView(s))
	}
	return out, nil
}

func stockErr(err error) error {
	var short *minibar.NegativeStockError
	switch {
	case errs.As(err, &short):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrItemNotFound)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
