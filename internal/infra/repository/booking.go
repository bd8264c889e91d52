package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"hotel-frontdesk/internal/domain/booking"
	"hotel-frontdesk/internal/domain/room"
	"hotel-frontdesk/internal/infra"
	"hotel-frontdesk/internal/infra/repository/converter"
	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const bookingColumns = `reservation_id, guest_info, room_stays, advance_payment, total_received,
	minibar_consumption, minibar_total, total_amount, total_due, check_in_status, status,
	first_check_in, created_at, updated_at`

const insertBookingSQL = `INSERT INTO bookings (` + bookingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`

const deleteStaysSQL = `DELETE FROM booking_room_stays WHERE reservation_id = $1`

const insertStaySQL = `INSERT INTO booking_room_stays
	(reservation_id, stay_index, room_id, check_in, check_out, active)
	VALUES ($1, $2, $3, $4, $5, $6)`

const activateStaysSQL = `UPDATE booking_room_stays SET active = $2 WHERE reservation_id = $1`

const findOccupanciesSQL = `SELECT reservation_id, room_id, check_in, check_out
	FROM booking_room_stays
	WHERE active
	  AND ($1::date IS NULL OR check_out > $1)
	  AND ($2::date IS NULL OR check_in < $2)
	ORDER BY check_in, room_id`

type BookingRepository struct {
	db DBTX
}

func NewBookingRepository(db DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) (string, error) {
	row, err := converter.BookingToRow(b)
	if err != nil {
		return "", infra.WrapRepoErr("failed to encode booking", err, infra.KindDBFailure)
	}

	_, err = r.db.Exec(ctx, insertBookingSQL,
		row.ReservationID,
		row.GuestInfo,
		row.RoomStays,
		row.AdvancePayment,
		row.TotalReceived,
		row.MinibarConsumption,
		pgconv.DecimalToNumeric(row.MinibarTotal),
		pgconv.DecimalToNumeric(row.TotalAmount),
		pgconv.DecimalToNumeric(row.TotalDue),
		row.CheckInStatus,
		row.Status,
		pgconv.DateToPgtype(row.FirstCheckIn),
		pgconv.TimeToPgtype(row.CreatedAt),
		pgconv.TimeToPgtype(row.UpdatedAt),
	)
	if err != nil {
		return "", infra.WrapRepoErr("failed to insert booking", err)
	}

	if err := r.replaceStays(ctx, row.ReservationID, b.Stays(), b.Status() == booking.StatusActive); err != nil {
		return "", err
	}
	return row.ReservationID, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*booking.Booking, error) {
	return r.findByID(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE reservation_id = $1`, id)
}

// FindByIDForUpdate row-locks the booking until the transaction ends.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, id string) (*booking.Booking, error) {
	return r.findByID(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE reservation_id = $1 FOR UPDATE`, id)
}

func (r *BookingRepository) findByID(ctx context.Context, query, id string) (*booking.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) FindByFilter(ctx context.Context, f booking.Filter) ([]*booking.Booking, error) {
	where, args := filterClause(f)
	sql := `SELECT ` + bookingColumns + ` FROM bookings` + where + ` ORDER BY created_at DESC, reservation_id DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		sql += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		sql += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var out []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate bookings", err)
	}
	return out, nil
}

func (r *BookingRepository) Count(ctx context.Context, f booking.Filter) (int, error) {
	where, args := filterClause(f)
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings`+where, args...).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count bookings", err)
	}
	return n, nil
}

// UpdateFields writes only the columns set in p. Stay rows are rewritten when
// the stays change and re-flagged when the status changes, so the overlap
// constraint sees the new state in the same statement sequence.
func (r *BookingRepository) UpdateFields(ctx context.Context, id string, p booking.Patch) error {
	if p.IsEmpty() {
		return nil
	}

	var (
		sets []string
		args = []any{id}
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+" = $"+strconv.Itoa(len(args)))
	}

	if p.Guest != nil {
		doc, err := converter.GuestToJSON(*p.Guest)
		if err != nil {
			return infra.WrapRepoErr("failed to encode guest", err, infra.KindDBFailure)
		}
		set("guest_info", doc)
	}
	if p.Stays != nil {
		doc, err := converter.StaysToJSON(p.Stays)
		if err != nil {
			return infra.WrapRepoErr("failed to encode stays", err, infra.KindDBFailure)
		}
		set("room_stays", doc)
		set("first_check_in", pgconv.DateToPgtype(booking.FirstCheckIn(p.Stays)))
	}
	if p.AdvancePayment != nil {
		doc, err := converter.PaymentToJSON(*p.AdvancePayment)
		if err != nil {
			return infra.WrapRepoErr("failed to encode advance payment", err, infra.KindDBFailure)
		}
		set("advance_payment", doc)
	}
	if p.TotalReceived != nil {
		doc, err := converter.PaymentToJSON(*p.TotalReceived)
		if err != nil {
			return infra.WrapRepoErr("failed to encode total received", err, infra.KindDBFailure)
		}
		set("total_received", doc)
	}
	if p.MinibarConsumption != nil {
		doc, err := jsonMap(p.MinibarConsumption)
		if err != nil {
			return infra.WrapRepoErr("failed to encode minibar consumption", err, infra.KindDBFailure)
		}
		set("minibar_consumption", doc)
	}
	if p.MinibarTotal != nil {
		set("minibar_total", pgconv.DecimalToNumeric(*p.MinibarTotal))
	}
	if p.TotalAmount != nil {
		set("total_amount", pgconv.DecimalToNumeric(*p.TotalAmount))
	}
	if p.TotalDue != nil {
		set("total_due", pgconv.DecimalToNumeric(*p.TotalDue))
	}
	if p.CheckInStatus != nil {
		set("check_in_status", *p.CheckInStatus)
	}
	if p.Status != nil {
		set("status", p.Status.String())
	}
	if p.UpdatedAt != nil {
		set("updated_at", pgconv.TimeToPgtype(*p.UpdatedAt))
	}

	// RETURNING status lets the stay rows follow without a second read.
	sql := `UPDATE bookings SET ` + strings.Join(sets, ", ") + ` WHERE reservation_id = $1 RETURNING status`
	var status string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&status); err != nil {
		if pgconv.IsNoRows(err) {
			return infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return infra.WrapRepoErr("failed to update booking", err)
	}

	active := booking.Status(status) == booking.StatusActive
	if p.Stays != nil {
		return r.replaceStays(ctx, id, p.Stays, active)
	}
	if p.Status != nil {
		if _, err := r.db.Exec(ctx, activateStaysSQL, id, active); err != nil {
			return infra.WrapRepoErr("failed to update room stays", err)
		}
	}
	return nil
}

func (r *BookingRepository) FindOccupancies(ctx context.Context, from, to time.Time) ([]room.Occupancy, error) {
	rows, err := r.db.Query(ctx, findOccupanciesSQL, pgconv.DateToPgtype(from), pgconv.DateToPgtype(to))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find occupancies", err)
	}
	defer rows.Close()

	var out []room.Occupancy
	for rows.Next() {
		var (
			o             room.Occupancy
			checkIn, outD pgtype.Date
		)
		if err := rows.Scan(&o.ReservationID, &o.RoomID, &checkIn, &outD); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupancy", err)
		}
		o.CheckIn = pgconv.DateFromPgtype(checkIn)
		o.CheckOut = pgconv.DateFromPgtype(outD)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate occupancies", err)
	}
	return out, nil
}

// replaceStays mirrors the stays into booking_room_stays. Stays without both
// dates cannot occupy a room and are skipped.
func (r *BookingRepository) replaceStays(ctx context.Context, id string, stays []booking.RoomStay, active bool) error {
	if _, err := r.db.Exec(ctx, deleteStaysSQL, id); err != nil {
		return infra.WrapRepoErr("failed to clear room stays", err)
	}
	for i, s := range stays {
		if s.CheckInDate.IsZero() || s.CheckOutDate.IsZero() {
			continue
		}
		_, err := r.db.Exec(ctx, insertStaySQL,
			id, i, s.RoomID,
			pgconv.DateToPgtype(s.CheckInDate),
			pgconv.DateToPgtype(s.CheckOutDate),
			active,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert room stay", err)
		}
	}
	return nil
}

func filterClause(f booking.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, strings.ReplaceAll(cond, "?", "$"+strconv.Itoa(len(args))))
	}

	if f.Status != nil {
		add("status = ?", f.Status.String())
	}
	if f.CheckedIn != nil {
		add("check_in_status = ?", *f.CheckedIn)
	}
	if f.ReservationID != "" {
		add("reservation_id = ?", f.ReservationID)
	}
	if q := strings.TrimSpace(f.Search); q != "" {
		add(`(reservation_id ILIKE ? OR guest_info->>'name' ILIKE ?
			OR guest_info->>'email' ILIKE ? OR guest_info->>'phone' ILIKE ?)`, "%"+escapeLike(q)+"%")
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		rec                              converter.BookingRow
		minibarTotal, totalAmt, totalDue pgtype.Numeric
		firstCheckIn                     pgtype.Date
		createdAt, updatedAt             pgtype.Timestamptz
	)
	err := row.Scan(
		&rec.ReservationID,
		&rec.GuestInfo,
		&rec.RoomStays,
		&rec.AdvancePayment,
		&rec.TotalReceived,
		&rec.MinibarConsumption,
		&minibarTotal,
		&totalAmt,
		&totalDue,
		&rec.CheckInStatus,
		&rec.Status,
		&firstCheckIn,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.MinibarTotal = pgconv.DecimalFromNumeric(minibarTotal)
	rec.TotalAmount = pgconv.DecimalFromNumeric(totalAmt)
	rec.TotalDue = pgconv.DecimalFromNumeric(totalDue)
	rec.FirstCheckIn = pgconv.DateFromPgtype(firstCheckIn)
	rec.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	rec.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return converter.BookingFromRow(rec)
}

func jsonMap(m map[string]int) ([]byte, error) {
	if m == nil {
		m = map[string]int{}
	}
	return json.Marshal(m)
}
