package commands

import (
	"context"

	"hotel-frontdesk/internal/usecase/queries"
)

// CacheInvalidator drops a cached booking after a committed write. The change
// feed does the same asynchronously; calling it inline keeps a reader that
// follows its own write from seeing the old record.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, id string)
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context, string) {}

// StockOutcome is the stock effect of one consumed item at checkout.
type StockOutcome struct {
	ItemID    string
	Quantity  int
	Stock     int
	Shortfall bool
	Err       error
}

func (o StockOutcome) OK() bool {
	return o.Err == nil
}

type CheckoutResult struct {
	Booking *queries.BookingView
	Stock   []StockOutcome
}

// ReconcileReport counts one pass over the pending shortfalls.
type ReconcileReport struct {
	Checked  int
	Resolved int
	Pending  int
}
