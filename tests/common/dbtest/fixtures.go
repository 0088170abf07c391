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

// TestPasswordHash is the bcrypt hash of "password123".
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// DBLike is what the fixtures need from *pgxpool.Pool or a pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, TestPasswordHash, "Test "+role, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

type ListingFixture struct {
	Title             string
	NightlyPriceCents int64
	CleaningFeeCents  int64
	ServiceFeeBps     int32
	MinNights         int32
	MaxGuests         int32
	Status            string
}

// DeactivateUser flips is_active off, as an admin suspension would.
func DeactivateUser(t *testing.T, db DBLike, userID uuid.UUID) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE id = $1", userID)
	require.NoError(t, err)
	require.Equal(t, int64(1), tag.RowsAffected(), "user %s not found", userID)
}

// DefaultListing prices at 100.00 a night with a 20.00 cleaning fee and a 10% service fee.
func DefaultListing() ListingFixture {
	return ListingFixture{
		Title:             "Harbour loft",
		NightlyPriceCents: 10000,
		CleaningFeeCents:  2000,
		ServiceFeeBps:     1000,
		MinNights:         1,
		MaxGuests:         4,
		Status:            "active",
	}
}

func CreateTestListing(t *testing.T, db DBLike, hostID uuid.UUID, f ListingFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO listings
		(id, host_id, title, nightly_price_cents, cleaning_fee_cents, service_fee_bps, min_nights, max_guests, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, hostID, f.Title, f.NightlyPriceCents, f.CleaningFeeCents, f.ServiceFeeBps, f.MinNights, f.MaxGuests, f.Status)
	require.NoError(t, err)
	return id
}

// CreateTestReservation inserts a reservation with explicit status, bypassing
// the booking flow. Dates are YYYY-MM-DD. Pricing columns are filled from the
// listing's current rates.
func CreateTestReservation(t *testing.T, db DBLike, listingID, guestID uuid.UUID, checkIn, checkOut, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO reservations
		(id, listing_id, guest_id, host_id, check_in, check_out, guests, status,
		 nightly_rate_cents, nights, subtotal_cents, cleaning_fee_cents, service_fee_bps, service_fee_cents, total_cents)
		SELECT $1, l.id, $2, l.host_id, $3::date, $4::date, 1, $5,
		       l.nightly_price_cents, ($4::date - $3::date),
		       l.nightly_price_cents * ($4::date - $3::date),
		       l.cleaning_fee_cents, l.service_fee_bps,
		       (l.nightly_price_cents * ($4::date - $3::date) * l.service_fee_bps) / 10000,
		       l.nightly_price_cents * ($4::date - $3::date) + l.cleaning_fee_cents
		         + (l.nightly_price_cents * ($4::date - $3::date) * l.service_fee_bps) / 10000
		FROM listings l WHERE l.id = $6`,
		id, guestID, checkIn, checkOut, status, listingID)
	require.NoError(t, err)
	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every public table.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
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
