package queries

//go:generate mockgen -source=report.go -destination=../../../tests/mock/queries/report.go -package=queriesmock

import (
	"context"
	"sort"
	"strings"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/minibar"
	"hotel-frontdesk/internal/pkg/clock"
	"hotel-frontdesk/internal/pkg/errs"
	"hotel-frontdesk/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

var ErrInvalidPeriod = errs.New("invalid report period")

// ReportQueries aggregates bookings in memory. A zero year or month means the
// current one.
type ReportQueries interface {
	Revenue(ctx context.Context, year, month int) (*RevenueReport, error)
	MinibarSales(ctx context.Context, year, month int, search string) (*MinibarSalesReport, error)
}

type reportQueriesImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReportQueries(uow shared.UnitOfWork, clk clock.Clock) ReportQueries {
	return &reportQueriesImpl{uow: uow, clock: clk}
}

func (q *reportQueriesImpl) period(year, month int) (int, time.Month, error) {
	now := q.clock.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if year < 1 || month < 1 || month > 12 {
		return 0, 0, ErrInvalidPeriod
	}
	return year, time.Month(month), nil
}

func (q *reportQueriesImpl) Revenue(ctx context.Context, year, month int) (*RevenueReport, error) {
	y, m, err := q.period(year, month)
	if err != nil {
		return nil, err
	}

	var all []*booking.Booking
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		all, err = tx.Bookings().FindByFilter(ctx, booking.Filter{})
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	today := booking.Date(q.clock.Now())
	out := &RevenueReport{
		ReportYear:  y,
		ReportMonth: int(m),
		ByStatus:    make(map[booking.Status]int, 3),
		AllTime:     RevenueBucket{Revenue: decimal.Zero},
		Year:        RevenueBucket{Revenue: decimal.Zero},
		Month:       RevenueBucket{Revenue: decimal.Zero},
		Today:       RevenueBucket{Revenue: decimal.Zero},
	}
	for _, b := range all {
		out.ByStatus[b.Status()]++
		if b.Status() == booking.StatusCancelled {
			continue
		}
		amount := b.TotalAmount()
		out.AllTime.add(amount)

		first := b.FirstCheckIn()
		if first.IsZero() || first.Year() != y {
			continue
		}
		out.Year.add(amount)
		if first.Month() != m {
			continue
		}
		out.Month.add(amount)
		if first.Equal(today) {
			out.Today.add(amount)
		}
	}
	return out, nil
}

func (b *RevenueBucket) add(amount decimal.Decimal) {
	b.Revenue = b.Revenue.Add(amount)
	b.Bookings++
}

// MinibarSales lists one row per consumed item of checked-out bookings whose
// first check-in falls in the month. Search matches item name, reservation id
// and guest name.
func (q *reportQueriesImpl) MinibarSales(ctx context.Context, year, month int, search string) (*MinibarSalesReport, error) {
	y, m, err := q.period(year, month)
	if err != nil {
		return nil, err
	}

	var (
		checkedOut []*booking.Booking
		items      []*minibar.Item
	)
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		status := booking.StatusCheckedOut
		var err error
		if checkedOut, err = tx.Bookings().FindByFilter(ctx, booking.Filter{Status: &status}); err != nil {
			return err
		}
		items, err = tx.Minibar().List(ctx)
		return err
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	catalog := make(map[string]*minibar.Item, len(items))
	for _, it := range items {
		catalog[it.ID()] = it
	}
	needle := strings.ToLower(strings.TrimSpace(search))

	out := &MinibarSalesReport{Year: y, Month: int(m), Rows: []MinibarSaleRow{}, Total: decimal.Zero}
	for _, b := range checkedOut {
		date := b.FirstCheckIn()
		if date.Year() != y || date.Month() != m {
			continue
		}
		consumed := b.MinibarConsumption()
		ids := make([]string, 0, len(consumed))
		for id := range consumed {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		for _, id := range ids {
			qty := consumed[id]
			if qty <= 0 {
				continue
			}
			row := MinibarSaleRow{
				ReservationID: b.ReservationID(),
				GuestName:     b.Guest().Name,
				SaleDate:      date,
				ItemID:        id,
				ItemName:      "Unknown Item",
				Category:      "Unknown",
				Quantity:      qty,
				UnitPrice:     decimal.Zero,
			}
			if it, ok := catalog[id]; ok {
				row.ItemName = it.Name()
				row.Category = string(it.Category())
				row.UnitPrice = it.Price()
			}
			row.Total = row.UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
			if !row.matches(needle) {
				continue
			}
			out.Rows = append(out.Rows, row)
			out.Quantity += qty
			out.Total = out.Total.Add(row.Total)
		}
	}
	return out, nil
}

func (r MinibarSaleRow) matches(needle string) bool {
	if needle == "" {
		return true
	}
	for _, s := range []string{r.ItemName, r.ReservationID, r.GuestName} {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}
