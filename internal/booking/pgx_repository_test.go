package booking

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekogravitycat/locker-booking-backend/internal/db"
)

// newTestPool connects to TEST_DB_DSN and resets the bookings table.
// Tests using it are skipped when no database is configured.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, db.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, "TRUNCATE TABLE public.locker_bookings RESTART IDENTITY")
	require.NoError(t, err)
	return pool
}

func TestPgxRepositoryRoundTrip(t *testing.T) {
	repo := NewPgxRepository(newTestPool(t))
	ctx := context.Background()

	empty, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	a, b := sampleBooking("A", 1), sampleBooking("B", 2)
	full := &Booking{ID: "id-C", Name: "C", Station: "Alambagh", Days: 1, Price: 50}

	for _, bk := range []*Booking{a, b, full} {
		require.NoError(t, repo.Append(ctx, bk))
	}

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, a, got[0])
	assert.Equal(t, b, got[1])
	assert.Equal(t, full, got[2])
}

func TestPgxRepositoryDuplicateID(t *testing.T) {
	repo := NewPgxRepository(newTestPool(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, sampleBooking("A", 1)))
	err := repo.Append(ctx, sampleBooking("A", 2))
	assert.ErrorIs(t, err, ErrDuplicateBooking)
}
