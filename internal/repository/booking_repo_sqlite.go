package repository

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/database"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jmoiron/sqlx"
)

type bookingViewRow struct {
	ID             int64  `db:"id"`
	FlightID       int64  `db:"flight_id"`
	FlightNumber   string `db:"flight_number"`
	PassengerName  string `db:"passenger_name"`
	PassengerEmail string `db:"passenger_email"`
	SeatsReserved  int    `db:"seats_reserved"`
	ReservedAt     string `db:"reservation_time"`
}

const bookingListQuery = `SELECT r.id, r.flight_id, f.flight_number, r.passenger_name, r.passenger_email, r.seats_reserved, r.reservation_time
	FROM reservations r
	JOIN flights f ON r.flight_id = f.id
	ORDER BY r.reservation_time DESC, r.id DESC`

type SQLiteBookingRepository struct {
	db   *sqlx.DB
	opts options
}

func NewSQLiteBookingRepository(db *sqlx.DB, opts ...Option) BookingRepository {
	return &SQLiteBookingRepository{db: db, opts: newOptions(opts)}
}

func (r *SQLiteBookingRepository) EnsureSchema(ctx context.Context) (bool, error) {
	return database.CreateSQLite(ctx, r.db, database.FlightBookings)
}

func (r *SQLiteBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	reserved := r.opts.stamp()
	res, err := r.db.ExecContext(ctx, `INSERT INTO reservations (flight_id, passenger_name, passenger_email, seats_reserved, reservation_time)
		VALUES (?, ?, ?, ?, ?)`,
		booking.FlightID, booking.PassengerName, booking.PassengerEmail, booking.SeatsReserved, reserved.Format(sqliteTimeLayout))
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	booking.ID = id
	booking.ReservedAt = reserved
	return nil
}

func (r *SQLiteBookingRepository) ListWithFlights(ctx context.Context) ([]domain.BookingView, error) {
	var rows []bookingViewRow
	if err := r.db.SelectContext(ctx, &rows, bookingListQuery); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	views := make([]domain.BookingView, 0, len(rows))
	for _, row := range rows {
		reserved, err := parseSQLiteTime(row.ReservedAt, "2006-01-02 15:04:05")
		if err != nil {
			return nil, fmt.Errorf("parse reservation_time of booking %d: %w", row.ID, err)
		}
		views = append(views, domain.BookingView{
			Booking: domain.Booking{
				ID:             row.ID,
				FlightID:       row.FlightID,
				PassengerName:  row.PassengerName,
				PassengerEmail: row.PassengerEmail,
				SeatsReserved:  row.SeatsReserved,
				ReservedAt:     reserved,
			},
			FlightNumber: row.FlightNumber,
		})
	}
	return views, nil
}

func (r *SQLiteBookingRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM reservations`); err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return n, nil
}

var _ BookingRepository = (*SQLiteBookingRepository)(nil)
