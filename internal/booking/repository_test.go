package booking

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/nekogravitycat/locker-booking-backend/internal/pkg/storage"
)

func newTestJSONRepository(t *testing.T) (Repository, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)
	return NewJSONRepository(store, "lockers.json", zaptest.NewLogger(t)), filepath.Join(dir, "lockers.json")
}

func sampleBooking(name string, slot int) *Booking {
	return &Booking{
		ID:          "id-" + name,
		Name:        name,
		Mobile:      "9876543210",
		City:        "Delhi",
		StationType: "Railway",
		Station:     "New Delhi",
		Day:         "Friday",
		Date:        "2024-03-01",
		Days:        2,
		Price:       100,
		PIN:         PINCode(4321),
		Slot:        SlotNumber(slot),
	}
}

func TestJSONRepositoryMissingFile(t *testing.T) {
	repo, _ := newTestJSONRepository(t)

	bookings, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, bookings)
	assert.Empty(t, bookings)
}

func TestJSONRepositoryMalformedFile(t *testing.T) {
	for name, content := range map[string]string{
		"garbage":     "{not json",
		"empty":       "",
		"wrong shape": `{"name": "x"}`,
		"null":        "null",
	} {
		t.Run(name, func(t *testing.T) {
			repo, path := newTestJSONRepository(t)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			bookings, err := repo.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, bookings)
		})
	}
}

func TestJSONRepositoryAppendThenLoad(t *testing.T) {
	repo, path := newTestJSONRepository(t)
	ctx := context.Background()

	a, b, c := sampleBooking("A", 1), sampleBooking("B", 2), sampleBooking("C", 3)
	c.Slot = Slot{}
	c.PIN = PIN{}

	require.NoError(t, repo.Append(ctx, a))
	require.NoError(t, repo.Append(ctx, b))

	before, err := repo.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Append(ctx, c))

	after, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, after, 3)
	assert.Equal(t, before, after[:2])
	assert.Equal(t, c, after[2])

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  {\n    \"id\": \"id-A\",")
	assert.Contains(t, string(raw), `"slot": "No slots available"`)
}

func TestJSONRepositoryLoadIsIdempotent(t *testing.T) {
	repo, _ := newTestJSONRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.Append(ctx, sampleBooking("A", 1)))

	first, err := repo.Load(ctx)
	require.NoError(t, err)
	second, err := repo.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestJSONRepositoryConcurrentAppends(t *testing.T) {
	repo, _ := newTestJSONRepository(t)
	ctx := context.Background()

	const n = 25
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.Append(ctx, sampleBooking(fmt.Sprintf("B%d", i), i+1)))
		}()
	}
	wg.Wait()

	bookings, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, bookings, n)
}

func TestJSONRepositoryAppendRecoversFromCorruptFile(t *testing.T) {
	repo, path := newTestJSONRepository(t)
	require.NoError(t, os.WriteFile(path, []byte("]]"), 0o644))

	require.NoError(t, repo.Append(context.Background(), sampleBooking("A", 1)))

	bookings, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "A", bookings[0].Name)
}
