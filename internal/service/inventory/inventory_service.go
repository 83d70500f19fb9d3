package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"go.uber.org/zap"
)

type InventoryUseCase interface {
	Initialize(ctx context.Context) error
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.BookingView, error)
}

type ReserveInput struct {
	FlightID       int64
	PassengerName  string
	PassengerEmail string
	Seats          int
}

func sampleTime(month time.Month, day, hour, min int) time.Time {
	return time.Date(2025, month, day, hour, min, 0, 0, time.UTC)
}

// SampleFlights are written once, when the flights table is first created.
var SampleFlights = []domain.Flight{
	{FlightNumber: "AA123", Origin: "New York", Destination: "Los Angeles", DepartureTime: sampleTime(6, 1, 8, 0), ArrivalTime: sampleTime(6, 27, 11, 0), Price: 299.99, SeatsAvailable: 150},
	{FlightNumber: "DL456", Origin: "Chicago", Destination: "Miami", DepartureTime: sampleTime(6, 27, 10, 30), ArrivalTime: sampleTime(6, 27, 14, 15), Price: 249.99, SeatsAvailable: 120},
	{FlightNumber: "UA789", Origin: "San Francisco", Destination: "Seattle", DepartureTime: sampleTime(6, 27, 7, 45), ArrivalTime: sampleTime(6, 27, 9, 30), Price: 199.99, SeatsAvailable: 100},
	{FlightNumber: "SW234", Origin: "Denver", Destination: "Las Vegas", DepartureTime: sampleTime(6, 27, 13, 20), ArrivalTime: sampleTime(6, 27, 15, 10), Price: 159.99, SeatsAvailable: 80},
	{FlightNumber: "BA567", Origin: "London", Destination: "Paris", DepartureTime: sampleTime(6, 27, 9, 15), ArrivalTime: sampleTime(6, 27, 11, 30), Price: 349.99, SeatsAvailable: 200},
}

type InventoryService struct {
	flights  repository.FlightRepository
	bookings repository.BookingRepository
	logger   *zap.SugaredLogger
}

func NewInventoryService(flights repository.FlightRepository, bookings repository.BookingRepository, logger *zap.SugaredLogger) *InventoryService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &InventoryService{flights: flights, bookings: bookings, logger: logger}
}

func (s *InventoryService) Initialize(ctx context.Context) error {
	created, err := s.flights.EnsureSchema(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if _, err := s.bookings.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if !created {
		return nil
	}

	s.logger.Infow("flights table created, seeding samples", "count", len(SampleFlights))
	for _, sample := range SampleFlights {
		f := sample
		if err := s.flights.Create(ctx, &f); err != nil {
			return fmt.Errorf("seed flights: %w", err)
		}
	}
	return nil
}

func (s *InventoryService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	return s.flights.List(ctx)
}

// Reserve books seats on a flight. The booking insert and the seat
// decrement are separate statements; a failed decrement leaves the
// booking in place.
func (s *InventoryService) Reserve(ctx context.Context, input ReserveInput) (*domain.Booking, error) {
	name := strings.TrimSpace(input.PassengerName)
	email := strings.TrimSpace(input.PassengerEmail)
	if name == "" {
		return nil, domain.NewValidationError("please enter passenger name")
	}
	if email == "" {
		return nil, domain.NewValidationError("please enter passenger email")
	}
	if input.Seats < 1 {
		return nil, domain.NewValidationError("please enter at least 1 seat")
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, domain.ErrInvalidFlight
	}
	if input.Seats > flight.SeatsAvailable {
		return nil, &domain.InsufficientSeatsError{Available: flight.SeatsAvailable}
	}

	booking := &domain.Booking{
		FlightID:       flight.ID,
		PassengerName:  name,
		PassengerEmail: email,
		SeatsReserved:  input.Seats,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	if err := s.flights.DecrementSeats(ctx, flight.ID, input.Seats); err != nil {
		s.logger.Errorw("seat decrement failed after booking insert", "booking_id", booking.ID, "flight_id", flight.ID, "seats", input.Seats, "error", err)
		return nil, err
	}
	s.logger.Debugw("seats reserved", "booking_id", booking.ID, "flight_id", flight.ID, "seats", input.Seats)
	return booking, nil
}

func (s *InventoryService) ListBookings(ctx context.Context) ([]domain.BookingView, error) {
	return s.bookings.ListWithFlights(ctx)
}

var _ InventoryUseCase = (*InventoryService)(nil)
