//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"hotel-frontdesk/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDecimalRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "1000", "150.25", "-3.5", "0.001"} {
		d := decimal.RequireFromString(s)
		got := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
		assert.True(t, d.Equal(got), s)
	}
	assert.True(t, pgconv.DecimalFromNumeric(pgtype.Numeric{}).IsZero())
	assert.True(t, pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true}).IsZero())
}

func TestDate(t *testing.T) {
	local := time.Date(2024, 7, 15, 23, 30, 0, 0, time.FixedZone("BST", 6*3600))
	pd := pgconv.DateToPgtype(local)
	assert.True(t, pd.Valid)
	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(pd))

	assert.False(t, pgconv.DateToPgtype(time.Time{}).Valid)
	assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
}

func TestPgCode(t *testing.T) {
	err := &pgconn.PgError{Code: pgconv.CodeExclusionViolation, ConstraintName: "room_stays_no_overlap"}
	assert.Equal(t, pgconv.CodeExclusionViolation, pgconv.PgCode(err))
	assert.Equal(t, "room_stays_no_overlap", pgconv.ConstraintName(err))
	assert.Empty(t, pgconv.PgCode(assert.AnError))
}
