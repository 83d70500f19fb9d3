package reservations

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/flightdesk/internal/database"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) EnsureSchema(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	args := m.Called(ctx, reservation)
	return args.Error(0)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReservationRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
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

func TestReservationService_Initialize_SeedsOnFirstCreation(t *testing.T) {
	repo := &MockReservationRepository{}
	service := NewReservationService(repo, nil)
	ctx := context.Background()

	repo.On("EnsureSchema", ctx).Return(true, nil).Once()
	repo.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil).Times(len(SampleReservations))

	require.NoError(t, service.Initialize(ctx))
	repo.AssertExpectations(t)
}

func TestReservationService_Initialize_ExistingTableNotSeeded(t *testing.T) {
	repo := &MockReservationRepository{}
	service := NewReservationService(repo, nil)
	ctx := context.Background()

	repo.On("EnsureSchema", ctx).Return(false, nil).Once()

	require.NoError(t, service.Initialize(ctx))
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReservationService_Initialize_SchemaFailureIsStoreUnavailable(t *testing.T) {
	repo := &MockReservationRepository{}
	service := NewReservationService(repo, nil)
	ctx := context.Background()

	repo.On("EnsureSchema", ctx).Return(false, errors.New("disk full")).Once()

	err := service.Initialize(ctx)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestReservationService_Create_Success(t *testing.T) {
	repo := &MockReservationRepository{}
	service := NewReservationService(repo, nil)
	ctx := context.Background()

	input := johnDoe()
	input.Name = "  John Doe  "

	repo.On("Create", ctx, mock.MatchedBy(func(r *domain.Reservation) bool {
		return r.Name == "  John Doe  " && r.SeatNumber == "15A"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Reservation).ID = 7
	}).Return(nil).Once()

	id, err := service.Create(ctx, input)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	repo.AssertExpectations(t)
}

func TestReservationService_Create_ValidationErrors(t *testing.T) {
	repo := &MockReservationRepository{}
	service := NewReservationService(repo, nil)
	ctx := context.Background()

	testCases := []struct {
		name  string
		blank func(*domain.Reservation)
	}{
		{name: "Empty name", blank: func(r *domain.Reservation) { r.Name = "" }},
		{name: "Empty flight number", blank: func(r *domain.Reservation) { r.FlightNumber = "" }},
		{name: "Empty departure", blank: func(r *domain.Reservation) { r.Departure = "" }},
		{name: "Empty destination", blank: func(r *domain.Reservation) { r.Destination = "" }},
		{name: "Empty date", blank: func(r *domain.Reservation) { r.Date = "" }},
		{name: "Empty seat", blank: func(r *domain.Reservation) { r.SeatNumber = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := johnDoe()
			tc.blank(&input)

			id, err := service.Create(ctx, input)

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.Contains(t, err.Error(), "all fields are required")
			assert.Zero(t, id)
		})
	}
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestReservationService_Update_NotFound(t *testing.T) {
	repo := &MockReservationRepository{}
	service := NewReservationService(repo, nil)
	ctx := context.Background()

	repo.On("Update", ctx, mock.MatchedBy(func(r *domain.Reservation) bool { return r.ID == 99 })).
		Return(domain.ErrNotFound).Once()

	err := service.Update(ctx, 99, johnDoe())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestReservationService_Update_Validation(t *testing.T) {
	repo := &MockReservationRepository{}
	service := NewReservationService(repo, nil)

	input := johnDoe()
	input.Date = ""

	err := service.Update(context.Background(), 1, input)

	assert.ErrorIs(t, err, domain.ErrValidation)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReservationService_Delete_PropagatesStoreError(t *testing.T) {
	repo := &MockReservationRepository{}
	service := NewReservationService(repo, nil)
	ctx := context.Background()

	expectedErr := errors.New("database is locked")
	repo.On("Delete", ctx, int64(3)).Return(expectedErr).Once()

	assert.Equal(t, expectedErr, service.Delete(ctx, 3))
}

func newSQLiteService(t *testing.T) (*ReservationService, repository.ReservationRepository) {
	t.Helper()
	db, err := database.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "flights.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := repository.NewSQLiteReservationRepository(db)
	_, err = repo.EnsureSchema(context.Background())
	require.NoError(t, err)
	return NewReservationService(repo, nil), repo
}

func TestReservationService_SQLite_CreateGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	service, _ := newSQLiteService(t)

	id, err := service.Create(ctx, johnDoe())
	require.NoError(t, err)

	got, err := service.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, johnDoe().SameBooking(*got))
}

func TestReservationService_SQLite_PaddedInputStoredAsEntered(t *testing.T) {
	ctx := context.Background()
	service, _ := newSQLiteService(t)

	input := johnDoe()
	input.Name = " John Doe "
	input.Departure = "   "
	id, err := service.Create(ctx, input)
	require.NoError(t, err)

	got, err := service.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, input.SameBooking(*got))
	assert.Equal(t, " John Doe ", got.Name)

	edited := input
	edited.SeatNumber = " 16B "
	require.NoError(t, service.Update(ctx, id, edited))

	got, err = service.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, edited.SameBooking(*got))
}

func TestReservationService_SQLite_EditSeatNumber(t *testing.T) {
	ctx := context.Background()
	service, _ := newSQLiteService(t)

	id, err := service.Create(ctx, johnDoe())
	require.NoError(t, err)
	before, err := service.Get(ctx, id)
	require.NoError(t, err)

	edited := johnDoe()
	edited.SeatNumber = "16B"
	require.NoError(t, service.Update(ctx, id, edited))

	after, err := service.Get(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, "16B", after.SeatNumber)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.FlightNumber, after.FlightNumber)
	assert.Equal(t, before.Departure, after.Departure)
	assert.Equal(t, before.Destination, after.Destination)
	assert.Equal(t, before.Date, after.Date)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)
}

func TestReservationService_SQLite_InvalidCreateLeavesCountUnchanged(t *testing.T) {
	ctx := context.Background()
	service, repo := newSQLiteService(t)

	_, err := service.Create(ctx, johnDoe())
	require.NoError(t, err)

	bad := johnDoe()
	bad.FlightNumber = ""
	_, err = service.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrValidation)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReservationService_SQLite_InitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "flights.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewSQLiteReservationRepository(db)
	service := NewReservationService(repo, nil)

	require.NoError(t, service.Initialize(ctx))
	require.NoError(t, service.Initialize(ctx))

	list, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, len(SampleReservations))

	// Emptying the table does not bring the samples back.
	for _, r := range list {
		require.NoError(t, service.Delete(ctx, r.ID))
	}
	require.NoError(t, service.Initialize(ctx))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
