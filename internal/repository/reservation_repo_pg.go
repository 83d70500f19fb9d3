package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/database"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGReservationRepository struct {
	db   *pgxpool.Pool
	opts options
}

func NewPGReservationRepository(db *pgxpool.Pool, opts ...Option) ReservationRepository {
	return &PGReservationRepository{db: db, opts: newOptions(opts)}
}

func (r *PGReservationRepository) EnsureSchema(ctx context.Context) (bool, error) {
	return database.CreatePostgres(ctx, r.db, database.Reservations)
}

func (r *PGReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	if err := r.db.QueryRow(ctx, `INSERT INTO reservations (name, flight_number, departure, destination, date, seat_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		reservation.Name, reservation.FlightNumber, reservation.Departure, reservation.Destination,
		reservation.Date, reservation.SeatNumber, r.opts.stamp()).
		Scan(&reservation.ID, &reservation.CreatedAt); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	reservation.CreatedAt = reservation.CreatedAt.UTC()
	return nil
}

func (r *PGReservationRepository) List(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := r.db.Query(ctx, `SELECT `+reservationColumns+` FROM reservations ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}

func (r *PGReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := scanReservation(r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id), &res); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation %d: %w", id, err)
	}
	return &res, nil
}

func (r *PGReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	err := r.db.QueryRow(ctx, `UPDATE reservations
		SET name = $1, flight_number = $2, departure = $3, destination = $4, date = $5, seat_number = $6
		WHERE id = $7
		RETURNING created_at`,
		reservation.Name, reservation.FlightNumber, reservation.Departure, reservation.Destination,
		reservation.Date, reservation.SeatNumber, reservation.ID).Scan(&reservation.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("reservation %d: %w", reservation.ID, domain.ErrNotFound)
		}
		return fmt.Errorf("update reservation %d: %w", reservation.ID, err)
	}
	reservation.CreatedAt = reservation.CreatedAt.UTC()
	return nil
}

func (r *PGReservationRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete reservation %d: %w", id, err)
	}
	return nil
}

func (r *PGReservationRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return n, nil
}

func scanReservation(row pgx.Row, res *domain.Reservation) error {
	if err := row.Scan(&res.ID, &res.Name, &res.FlightNumber, &res.Departure, &res.Destination, &res.Date, &res.SeatNumber, &res.CreatedAt); err != nil {
		return err
	}
	res.CreatedAt = res.CreatedAt.UTC()
	return nil
}

var _ ReservationRepository = (*PGReservationRepository)(nil)
