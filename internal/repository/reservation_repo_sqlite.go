package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/database"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jmoiron/sqlx"
)

type reservationRow struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	FlightNumber string `db:"flight_number"`
	Departure    string `db:"departure"`
	Destination  string `db:"destination"`
	Date         string `db:"date"`
	SeatNumber   string `db:"seat_number"`
	CreatedAt    string `db:"created_at"`
}

func (r reservationRow) toDomain() (domain.Reservation, error) {
	// Rows inserted without an explicit timestamp carry sqlite's
	// CURRENT_TIMESTAMP, which has no fractional part.
	created, err := parseSQLiteTime(r.CreatedAt, "2006-01-02 15:04:05")
	if err != nil {
		return domain.Reservation{}, fmt.Errorf("parse created_at of reservation %d: %w", r.ID, err)
	}
	return domain.Reservation{
		ID:           r.ID,
		Name:         r.Name,
		FlightNumber: r.FlightNumber,
		Departure:    r.Departure,
		Destination:  r.Destination,
		Date:         r.Date,
		SeatNumber:   r.SeatNumber,
		CreatedAt:    created,
	}, nil
}

const reservationColumns = `id, name, flight_number, departure, destination, date, seat_number, created_at`

type SQLiteReservationRepository struct {
	db   *sqlx.DB
	opts options
}

func NewSQLiteReservationRepository(db *sqlx.DB, opts ...Option) ReservationRepository {
	return &SQLiteReservationRepository{db: db, opts: newOptions(opts)}
}

func (r *SQLiteReservationRepository) EnsureSchema(ctx context.Context) (bool, error) {
	return database.CreateSQLite(ctx, r.db, database.Reservations)
}

func (r *SQLiteReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	created := r.opts.stamp()
	res, err := r.db.ExecContext(ctx, `INSERT INTO reservations (name, flight_number, departure, destination, date, seat_number, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		reservation.Name, reservation.FlightNumber, reservation.Departure, reservation.Destination,
		reservation.Date, reservation.SeatNumber, created.Format(sqliteTimeLayout))
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	reservation.ID = id
	reservation.CreatedAt = created
	return nil
}

func (r *SQLiteReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	var rows []reservationRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+reservationColumns+` FROM reservations ORDER BY created_at DESC, id DESC`); err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	reservations := make([]domain.Reservation, 0, len(rows))
	for _, row := range rows {
		res, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

func (r *SQLiteReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var row reservationRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation %d: %w", id, err)
	}
	res, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *SQLiteReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	res, err := r.db.ExecContext(ctx, `UPDATE reservations
		SET name = ?, flight_number = ?, departure = ?, destination = ?, date = ?, seat_number = ?
		WHERE id = ?`,
		reservation.Name, reservation.FlightNumber, reservation.Departure, reservation.Destination,
		reservation.Date, reservation.SeatNumber, reservation.ID)
	if err != nil {
		return fmt.Errorf("update reservation %d: %w", reservation.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update reservation %d: %w", reservation.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("reservation %d: %w", reservation.ID, domain.ErrNotFound)
	}

	stored, err := r.GetByID(ctx, reservation.ID)
	if err != nil {
		return err
	}
	if stored == nil {
		return fmt.Errorf("reservation %d: %w", reservation.ID, domain.ErrNotFound)
	}
	reservation.CreatedAt = stored.CreatedAt
	return nil
}

func (r *SQLiteReservationRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete reservation %d: %w", id, err)
	}
	return nil
}

func (r *SQLiteReservationRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM reservations`); err != nil {
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return n, nil
}

var _ ReservationRepository = (*SQLiteReservationRepository)(nil)
