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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext behind the hash every fixture user gets.
const TestPassword = "password123"

const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) WHERE is_active = true DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestHotel(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	hotelID := uuid.New()
	_, err := db.Exec(context.Background(), "INSERT INTO hotels (id, owner_id, name) VALUES ($1, $2, $3)", hotelID, ownerID, name)
	require.NoError(t, err)

	return hotelID
}

func CreateTestRoomType(t *testing.T, db DBLike, hotelID uuid.UUID, name string, baseAvailability int, pricePerNightCents int64) uuid.UUID {
	t.Helper()

	roomTypeID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO room_types (id, hotel_id, name, base_availability, price_per_night_cents) VALUES ($1, $2, $3, $4, $5)",
		roomTypeID, hotelID, name, baseAvailability, pricePerNightCents)
	require.NoError(t, err)

	return roomTypeID
}

// CreateTestBooking inserts a booking row directly, bypassing availability checks.
func CreateTestBooking(t *testing.T, db DBLike, roomTypeID, guestID uuid.UUID, checkIn, checkOut string, rooms int, status string) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO hotel_bookings (id, room_type_id, guest_id, check_in_date, check_out_date, number_of_rooms, status, total_price_cents)
		 VALUES ($1, $2, $3, $4::date, $5::date, $6, $7, 0)`,
		bookingID, roomTypeID, guestID, checkIn, checkOut, rooms, status)
	require.NoError(t, err)

	return bookingID
}

func BookingStatus(t *testing.T, db DBLike, bookingID uuid.UUID) (status string, cancelledBy *string) {
	t.Helper()

	err := db.QueryRow(context.Background(), "SELECT status, cancelled_by FROM hotel_bookings WHERE id = $1", bookingID).Scan(&status, &cancelledBy)
	require.NoError(t, err)
	return status, cancelledBy
}

func CountNotificationJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
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

	return nil
}
