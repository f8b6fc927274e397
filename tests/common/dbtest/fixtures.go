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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DefaultPassword matches the bcrypt hash stored by CreateTestUser.
const DefaultPassword = "password123"

const defaultPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	username := strings.SplitN(email, "@", 2)[0] + "_" + userID.String()[:8]

	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, username, first_name, last_name, password_hash, role, is_active)
		VALUES ($1, $2, $3, 'Test', 'User', $4, $5, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, username, defaultPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

// CreateTestListing inserts an available listing and returns its id and slug.
func CreateTestListing(t *testing.T, db DBLike, ownerID uuid.UUID, name, price string) (uuid.UUID, string) {
	t.Helper()

	listingID := uuid.New()
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-")) + "-" + listingID.String()[:8]

	_, err := db.Exec(context.Background(), `
		INSERT INTO listings (id, owner_id, name, slug, description, location, price_per_night, is_available)
		VALUES ($1, $2, $3, $4, 'A quiet place', 'Addis Ababa', $5::numeric, true)`,
		listingID, ownerID, name, slug, price)
	require.NoError(t, err)

	return listingID, slug
}

// CreateTestBooking inserts a booking as is; dates use the 2006-01-02 layout.
func CreateTestBooking(t *testing.T, db DBLike, listingID, guestID uuid.UUID, start, end, total, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO bookings (id, listing_id, guest_id, start_date, end_date, number_of_guests, total_price, status)
		VALUES ($1, $2, $3, $4::date, $5::date, 1, $6::numeric, $7)`,
		bookingID, listingID, guestID, start, end, total, status)
	require.NoError(t, err)

	return bookingID
}

// BookingStatus reads the stored status, bypassing every cache and view.
func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM bookings WHERE id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
}

func PaymentStatus(t *testing.T, db DBLike, txRef string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM payments WHERE tx_ref = $1", txRef).Scan(&status)
	require.NoError(t, err)
	return status
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
