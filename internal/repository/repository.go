package repository

import (
	"context"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
)

// sqliteTimeLayout keeps timestamps fixed-width so text ordering matches time ordering.
const sqliteTimeLayout = "2006-01-02 15:04:05.000000"

type ReservationRepository interface {
	// EnsureSchema creates the table if needed and reports whether it did.
	EnsureSchema(ctx context.Context) (bool, error)
	Create(ctx context.Context, reservation *domain.Reservation) error
	List(ctx context.Context) ([]domain.Reservation, error)
	// GetByID returns nil and no error when the id is absent.
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	// Update overwrites the business fields of reservation.ID and fills
	// CreatedAt from the stored row. Returns domain.ErrNotFound for unknown ids.
	Update(ctx context.Context, reservation *domain.Reservation) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

type FlightRepository interface {
	EnsureSchema(ctx context.Context) (bool, error)
	Create(ctx context.Context, flight *domain.Flight) error
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	DecrementSeats(ctx context.Context, flightID int64, seats int) error
}

type BookingRepository interface {
	EnsureSchema(ctx context.Context) (bool, error)
	Create(ctx context.Context, booking *domain.Booking) error
	ListWithFlights(ctx context.Context) ([]domain.BookingView, error)
	Count(ctx context.Context) (int, error)
}

type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the source of insert timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// stamp is the insert timestamp at the precision both backends keep.
func (o options) stamp() time.Time {
	return o.now().UTC().Truncate(time.Microsecond)
}

func parseSQLiteTime(s, layout string) (time.Time, error) {
	return time.ParseInLocation(layout, s, time.UTC)
}
