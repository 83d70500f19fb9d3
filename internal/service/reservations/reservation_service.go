package reservations

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/internal/domain"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"go.uber.org/zap"
)

type ReservationUseCase interface {
	Initialize(ctx context.Context) error
	Create(ctx context.Context, input domain.Reservation) (int64, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	// Get returns nil and no error when id does not exist.
	Get(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, id int64, input domain.Reservation) error
	Delete(ctx context.Context, id int64) error
}

// SampleReservations are written once, when the table is first created.
var SampleReservations = []domain.Reservation{
	{Name: "John Doe", FlightNumber: "AA123", Departure: "New York", Destination: "Los Angeles", Date: "2023-12-15", SeatNumber: "15A"},
	{Name: "Jane Smith", FlightNumber: "DL456", Departure: "Chicago", Destination: "Miami", Date: "2023-12-16", SeatNumber: "22B"},
	{Name: "Robert Johnson", FlightNumber: "UA789", Departure: "San Francisco", Destination: "Seattle", Date: "2023-12-17", SeatNumber: "8C"},
}

type ReservationService struct {
	repo   repository.ReservationRepository
	logger *zap.SugaredLogger
}

func NewReservationService(repo repository.ReservationRepository, logger *zap.SugaredLogger) *ReservationService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ReservationService{repo: repo, logger: logger}
}

func (s *ReservationService) Initialize(ctx context.Context) error {
	created, err := s.repo.EnsureSchema(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	if !created {
		return nil
	}

	s.logger.Infow("reservations table created, seeding samples", "count", len(SampleReservations))
	for _, sample := range SampleReservations {
		r := sample
		if err := s.repo.Create(ctx, &r); err != nil {
			return fmt.Errorf("seed reservations: %w", err)
		}
	}
	return nil
}

func (s *ReservationService) Create(ctx context.Context, input domain.Reservation) (int64, error) {
	if err := input.Validate(); err != nil {
		return 0, err
	}
	if err := s.repo.Create(ctx, &input); err != nil {
		return 0, err
	}
	s.logger.Debugw("reservation created", "id", input.ID)
	return input.ID, nil
}

func (s *ReservationService) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.repo.List(ctx)
}

func (s *ReservationService) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ReservationService) Update(ctx context.Context, id int64, input domain.Reservation) error {
	if err := input.Validate(); err != nil {
		return err
	}
	input.ID = id
	if err := s.repo.Update(ctx, &input); err != nil {
		return err
	}
	s.logger.Debugw("reservation updated", "id", id)
	return nil
}

func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Debugw("reservation deleted", "id", id)
	return nil
}

var _ ReservationUseCase = (*ReservationService)(nil)
