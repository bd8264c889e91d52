//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/infra/memstore"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/commands"
	"hotel-frontdesk/internal/usecase/shared"
	"hotel-frontdesk/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgerStore(t *testing.T, items map[string]int) (*memstore.Store, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC))
	store := memstore.New(nil, clk)
	require.NoError(t, store.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		for id, stock := range items {
			it, err := minibar.NewItem(id, id, minibar.CategoryMinibar, stock, builder.Dec("10"))
			if err != nil {
				return err
			}
			if err := tx.Minibar().Insert(ctx, it); err != nil {
				return err
			}
		}
		return nil
	}))
	return store, clk
}

func TestStockLedger_Consume(t *testing.T) {
	type testCase struct {
		name      string
		itemID    string
		qty       int
		wantStock int
		wantErr   error
	}

	runCases := func(t *testing.T, cases []testCase) {
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				store, clk := newLedgerStore(t, map[string]int{"soda": 3})
				ledger := commands.NewStockLedger(store, clk)

				got, err := ledger.Consume(context.Background(), tc.itemID, tc.qty)
				if tc.wantErr != nil {
					assert.True(t, errs.Is(err, tc.wantErr), "got %v", err)
				} else {
					require.NoError(t, err)
				}
				assert.Equal(t, tc.wantStock, got)
			})
		}
	}

	runCases(t, []testCase{
		{name: "takes units out of stock", itemID: "soda", qty: 2, wantStock: 1},
		{name: "exactly empties the stock", itemID: "soda", qty: 3, wantStock: 0},
		{name: "zero quantity is a no-op", itemID: "soda", qty: 0, wantStock: 3},
		{name: "negative quantity is a no-op", itemID: "soda", qty: -4, wantStock: 3},
		{name: "more than stock fails", itemID: "soda", qty: 4, wantStock: 0, wantErr: minibar.ErrInsufficient},
		{name: "unknown item", itemID: "gin", qty: 1, wantStock: 0, wantErr: errs.ErrItemNotFound},
	})

	t.Run("insufficient stock reports the level and leaves it untouched", func(t *testing.T) {
		store, clk := newLedgerStore(t, map[string]int{"soda": 3})
		ledger := commands.NewStockLedger(store, clk)

		_, err := ledger.Consume(context.Background(), "soda", 5)
		var short *minibar.NegativeStockError
		require.True(t, errs.As(err, &short))
		assert.Equal(t, 3, short.Stock)
		assert.Equal(t, 5, short.Requested)

		left, err := ledger.Consume(context.Background(), "soda", 0)
		require.NoError(t, err)
		assert.Equal(t, 3, left)
	})
}

func TestStockLedger_Restock(t *testing.T) {
	store, clk := newLedgerStore(t, map[string]int{"soda": 1})
	ledger := commands.NewStockLedger(store, clk)

	got, err := ledger.Restock(context.Background(), "soda", 4)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	_, err = ledger.Restock(context.Background(), "soda", 0)
	assert.ErrorIs(t, err, commands.ErrInvalidQuantity)

	_, err = ledger.Restock(context.Background(), "gin", 1)
	assert.True(t, errs.Is(err, errs.ErrItemNotFound))
}

func TestStockLedger_Reconcile(t *testing.T) {
	ctx := context.Background()
	store, clk := newLedgerStore(t, map[string]int{"soda": 0, "nuts": 0})
	ledger := commands.NewStockLedger(store, clk)

	require.NoError(t, store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, s := range []minibar.Shortfall{
			minibar.NewShortfall("T-00000001", "soda", 2, nil, clk.Now()),
			minibar.NewShortfall("T-00000002", "nuts", 1, nil, clk.Now()),
			minibar.NewShortfall("T-00000003", "gone", 1, nil, clk.Now()),
		} {
			if err := tx.Shortfalls().Insert(ctx, s); err != nil {
				return err
			}
		}
		return nil
	}))

	t.Run("nothing resolves while stock is empty", func(t *testing.T) {
		report, err := ledger.Reconcile(ctx)
		require.NoError(t, err)
		assert.Equal(t, commands.ReconcileReport{Checked: 3, Resolved: 0, Pending: 3}, *report)

		pending, err := ledger.ListShortfalls(ctx, minibar.ShortfallPending)
		require.NoError(t, err)
		for _, s := range pending {
			assert.Equal(t, 2, s.Attempts, s.ItemID)
			assert.NotEmpty(t, s.LastError)
		}
	})

	t.Run("restocked items resolve and take their units", func(t *testing.T) {
		_, err := ledger.Restock(ctx, "soda", 5)
		require.NoError(t, err)
		clk.Add(time.Minute)

		report, err := ledger.Reconcile(ctx)
		require.NoError(t, err)
		assert.Equal(t, commands.ReconcileReport{Checked: 3, Resolved: 1, Pending: 2}, *report)

		left, err := ledger.Consume(ctx, "soda", 0)
		require.NoError(t, err)
		assert.Equal(t, 3, left)

		all, err := ledger.ListShortfalls(ctx, "")
		require.NoError(t, err)
		for _, s := range all {
			if s.ItemID != "soda" {
				assert.Equal(t, string(minibar.ShortfallPending), s.Status)
				continue
			}
			assert.Equal(t, string(minibar.ShortfallResolved), s.Status)
			require.NotNil(t, s.ResolvedAt)
			assert.Equal(t, clk.Now(), *s.ResolvedAt)
		}
	})

	t.Run("resolved shortfalls are not taken again", func(t *testing.T) {
		report, err := ledger.Reconcile(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, report.Checked)

		left, err := ledger.Consume(ctx, "soda", 0)
		require.NoError(t, err)
		assert.Equal(t, 3, left)
	})
}
