package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Domenick1991/flightdesk/internal/database"
	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/jmoiron/sqlx"
)

type flightRow struct {
	ID             int64   `db:"id"`
	FlightNumber   string  `db:"flight_number"`
	Origin         string  `db:"origin"`
	Destination    string  `db:"destination"`
	DepartureTime  string  `db:"departure_time"`
	ArrivalTime    string  `db:"arrival_time"`
	Price          float64 `db:"price"`
	SeatsAvailable int     `db:"seats_available"`
}

func (r flightRow) toDomain() (domain.Flight, error) {
	dep, err := parseFlightTime(r.DepartureTime)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("parse departure_time of flight %d: %w", r.ID, err)
	}
	arr, err := parseFlightTime(r.ArrivalTime)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("parse arrival_time of flight %d: %w", r.ID, err)
	}
	return domain.Flight{
		ID:             r.ID,
		FlightNumber:   r.FlightNumber,
		Origin:         r.Origin,
		Destination:    r.Destination,
		DepartureTime:  dep,
		ArrivalTime:    arr,
		Price:          r.Price,
		SeatsAvailable: r.SeatsAvailable,
	}, nil
}

// parseFlightTime reads flight times written by this package and the
// minute-precision text of stores created elsewhere.
func parseFlightTime(s string) (time.Time, error) {
	t, err := parseSQLiteTime(s, "2006-01-02 15:04:05")
	if err == nil {
		return t, nil
	}
	return parseSQLiteTime(s, "2006-1-02 15:04")
}

const flightColumns = `id, flight_number, origin, destination, departure_time, arrival_time, price, seats_available`

type SQLiteFlightRepository struct {
	db *sqlx.DB
}

func NewSQLiteFlightRepository(db *sqlx.DB) FlightRepository {
	return &SQLiteFlightRepository{db: db}
}

func (r *SQLiteFlightRepository) EnsureSchema(ctx context.Context) (bool, error) {
	return database.CreateSQLite(ctx, r.db, database.Flights)
}

func (r *SQLiteFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	res, err := r.db.ExecContext(ctx, `INSERT INTO flights (flight_number, origin, destination, departure_time, arrival_time, price, seats_available)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		flight.FlightNumber, flight.Origin, flight.Destination,
		flight.DepartureTime.UTC().Format(sqliteTimeLayout), flight.ArrivalTime.UTC().Format(sqliteTimeLayout),
		flight.Price, flight.SeatsAvailable)
	if err != nil {
		return fmt.Errorf("insert flight: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert flight: %w", err)
	}
	flight.ID = id
	return nil
}

func (r *SQLiteFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	var rows []flightRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+flightColumns+` FROM flights ORDER BY id`); err != nil {
		return nil, fmt.Errorf("list flights: %w", err)
	}

	flights := make([]domain.Flight, 0, len(rows))
	for _, row := range rows {
		f, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, nil
}

func (r *SQLiteFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	var row flightRow
	if err := r.db.GetContext(ctx, &row, `SELECT `+flightColumns+` FROM flights WHERE id = ?`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get flight %d: %w", id, err)
	}
	f, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *SQLiteFlightRepository) DecrementSeats(ctx context.Context, flightID int64, seats int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE flights SET seats_available = seats_available - ? WHERE id = ?`, seats, flightID)
	if err != nil {
		return fmt.Errorf("decrement seats of flight %d: %w", flightID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("decrement seats of flight %d: %w", flightID, err)
	}
	if n == 0 {
		return fmt.Errorf("flight %d: %w", flightID, domain.ErrNotFound)
	}
	return nil
}

var _ FlightRepository = (*SQLiteFlightRepository)(nil)
