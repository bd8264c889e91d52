//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-frontdesk/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the password of every staff account created here.
const DefaultPassword = "password123"

var (
	hashOnce    sync.Once
	defaultHash string
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		h, err := password.HashPassword(DefaultPassword)
		if err == nil {
			defaultHash = h
		}
	})
	require.NotEmpty(t, defaultHash, "failed to hash the fixture password")
	return defaultHash
}

func CreateTestStaff(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	staffID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO staff (id, name, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		staffID, strings.Split(email, "@")[0], email, passwordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM staff WHERE email = $1", email).Scan(&staffID)
	}

	return staffID
}

func DeactivateStaff(t *testing.T, db DBLike, staffID uuid.UUID) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE staff SET is_active = false WHERE id = $1", staffID)
	require.NoError(t, err)
}

func CreateTestRoom(t *testing.T, db DBLike, id, name string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "INSERT INTO rooms (id, name, room_type) VALUES ($1, $2, 'Deluxe') ON CONFLICT (id) DO NOTHING", id, name)
	require.NoError(t, err)
}

func CreateTestMinibarItem(t *testing.T, db DBLike, id string, stock int, price string) {
	t.Helper()
	_, err := db.Exec(context.Background(),
		"INSERT INTO minibar_items (id, name, category, stock, price) VALUES ($1, $1, 'MINIBAR', $2, $3) ON CONFLICT (id) DO NOTHING",
		id, stock, decimal.RequireFromString(price))
	require.NoError(t, err)
}

func MinibarStock(t *testing.T, db DBLike, id string) int {
	t.Helper()
	var stock int
	err := db.QueryRow(context.Background(), "SELECT stock FROM minibar_items WHERE id = $1", id).Scan(&stock)
	require.NoError(t, err)
	return stock
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO settings (id, hotel_name, currency) VALUES (1, 'Test Hotel', 'BDT')
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO rooms (id, name, room_type) VALUES
		    ('R101', 'Room 101', 'Deluxe'),
		    ('R102', 'Room 102', 'Standard')
		ON CONFLICT (id) DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
