package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/database"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGBookingRepository struct {
	db   *pgxpool.Pool
	opts options
}

func NewPGBookingRepository(db *pgxpool.Pool, opts ...Option) BookingRepository {
	return &PGBookingRepository{db: db, opts: newOptions(opts)}
}

func (r *PGBookingRepository) EnsureSchema(ctx context.Context) (bool, error) {
	return database.CreatePostgres(ctx, r.db, database.FlightBookings)
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	if err := r.db.QueryRow(ctx, `INSERT INTO reservations (flight_id, passenger_name, passenger_email, seats_reserved, reservation_time)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, reservation_time`,
		booking.FlightID, booking.PassengerName, booking.PassengerEmail, booking.SeatsReserved, r.opts.stamp()).
		Scan(&booking.ID, &booking.ReservedAt); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	booking.ReservedAt = booking.ReservedAt.UTC()
	return nil
}

func (r *PGBookingRepository) ListWithFlights(ctx context.Context) ([]domain.BookingView, error) {
	rows, err := r.db.Query(ctx, bookingListQuery)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	views := make([]domain.BookingView, 0)
	for rows.Next() {
		var v domain.BookingView
		if err := rows.Scan(&v.ID, &v.FlightID, &v.FlightNumber, &v.PassengerName, &v.PassengerEmail, &v.SeatsReserved, &v.ReservedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		v.ReservedAt = v.ReservedAt.UTC()
		views = append(views, v)
	}
	return views, rows.Err()
}

func (r *PGBookingRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
