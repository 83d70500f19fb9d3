package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Domenick1991/flightdesk/internal/database"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// tickingClock returns successive instants one second apart.
func tickingClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	}
}

func newReservationRepo(t *testing.T) ReservationRepository {
	t.Helper()
	repo := NewSQLiteReservationRepository(openTestDB(t), WithClock(tickingClock(time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC))))
	_, err := repo.EnsureSchema(context.Background())
	require.NoError(t, err)
	return repo
}

func johnDoe() domain.Reservation {
	return domain.Reservation{
		Name:         "John Doe",
		FlightNumber: "AA123",
		Departure:    "New York",
		Destination:  "Los Angeles",
		Date:         "2023-12-15",
		SeatNumber:   "15A",
	}
}

func TestSQLiteReservationRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newReservationRepo(t)

	res := johnDoe()
	require.NoError(t, repo.Create(ctx, &res))
	assert.NotZero(t, res.ID)
	assert.Equal(t, time.Date(2023, 12, 1, 9, 0, 0, 0, time.UTC), res.CreatedAt)

	got, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, res, *got)
}

func TestSQLiteReservationRepository_GetMissing(t *testing.T) {
	got, err := newReservationRepo(t).GetByID(context.Background(), 42)

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSQLiteReservationRepository_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newReservationRepo(t)

	first := johnDoe()
	second := johnDoe()
	second.Name = "Jane Smith"
	third := johnDoe()
	third.Name = "Robert Johnson"
	for _, r := range []*domain.Reservation{&first, &second, &third} {
		require.NoError(t, repo.Create(ctx, r))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int64{third.ID, second.ID, first.ID}, []int64{list[0].ID, list[1].ID, list[2].ID})
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt))
	}
}

func TestSQLiteReservationRepository_ListTiesBrokenByID(t *testing.T) {
	ctx := context.Background()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewSQLiteReservationRepository(openTestDB(t), WithClock(func() time.Time { return fixed }))
	_, err := repo.EnsureSchema(ctx)
	require.NoError(t, err)

	a, b := johnDoe(), johnDoe()
	require.NoError(t, repo.Create(ctx, &a))
	require.NoError(t, repo.Create(ctx, &b))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

func TestSQLiteReservationRepository_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := newReservationRepo(t)

	res := johnDoe()
	require.NoError(t, repo.Create(ctx, &res))

	changed := res
	changed.SeatNumber = "16B"
	changed.CreatedAt = time.Time{}
	require.NoError(t, repo.Update(ctx, &changed))
	assert.Equal(t, res.CreatedAt, changed.CreatedAt)

	got, err := repo.GetByID(ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "16B", got.SeatNumber)
	assert.Equal(t, res.Name, got.Name)
	assert.Equal(t, res.CreatedAt, got.CreatedAt)
}

func TestSQLiteReservationRepository_UpdateMissing(t *testing.T) {
	res := johnDoe()
	res.ID = 99

	err := newReservationRepo(t).Update(context.Background(), &res)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteReservationRepository_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newReservationRepo(t)

	res := johnDoe()
	require.NoError(t, repo.Create(ctx, &res))

	require.NoError(t, repo.Delete(ctx, res.ID))
	require.NoError(t, repo.Delete(ctx, res.ID))
	require.NoError(t, repo.Delete(ctx, 12345))

	got, err := repo.GetByID(ctx, res.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSQLiteReservationRepository_DefaultTimestampParses(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewSQLiteReservationRepository(db)
	_, err := repo.EnsureSchema(ctx)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `INSERT INTO reservations (name, flight_number, departure, destination, date, seat_number)
		VALUES ('Jane Smith', 'DL456', 'Chicago', 'Miami', '2023-12-16', '22B')`)
	require.NoError(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].CreatedAt.IsZero())
}
