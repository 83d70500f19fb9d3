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

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewPGFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

func (r *PGFlightRepository) EnsureSchema(ctx context.Context) (bool, error) {
	return database.CreatePostgres(ctx, r.db, database.Flights)
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	if err := r.db.QueryRow(ctx, `INSERT INTO flights (flight_number, origin, destination, departure_time, arrival_time, price, seats_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		flight.FlightNumber, flight.Origin, flight.Destination, flight.DepartureTime, flight.ArrivalTime,
		flight.Price, flight.SeatsAvailable).Scan(&flight.ID); err != nil {
		return fmt.Errorf("insert flight: %w", err)
	}
	return nil
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := scanFlight(rows, &f); err != nil {
			return nil, fmt.Errorf("scan flight: %w", err)
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	var f domain.Flight
	if err := scanFlight(r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE id=$1`, id), &f); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get flight %d: %w", id, err)
	}
	return &f, nil
}

func (r *PGFlightRepository) DecrementSeats(ctx context.Context, flightID int64, seats int) error {
	res, err := r.db.Exec(ctx, `UPDATE flights SET seats_available = seats_available - $1 WHERE id=$2`, seats, flightID)
	if err != nil {
		return fmt.Errorf("decrement seats of flight %d: %w", flightID, err)
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("flight %d: %w", flightID, domain.ErrNotFound)
	}
	return nil
}

func scanFlight(row pgx.Row, f *domain.Flight) error {
	if err := row.Scan(&f.ID, &f.FlightNumber, &f.Origin, &f.Destination, &f.DepartureTime, &f.ArrivalTime, &f.Price, &f.SeatsAvailable); err != nil {
		return err
	}
	f.DepartureTime = f.DepartureTime.UTC()
	f.ArrivalTime = f.ArrivalTime.UTC()
	return nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
