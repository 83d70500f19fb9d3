package bootstrap

import (
	"context"
	"fmt"

	"github.com/Domenick1991/flightdesk/config"
	"github.com/Domenick1991/flightdesk/internal/database"
	"github.com/Domenick1991/flightdesk/internal/repository"
	"github.com/Domenick1991/flightdesk/internal/service/inventory"
	"github.com/Domenick1991/flightdesk/internal/service/reservations"
	"go.uber.org/zap"
)

// OpenReservations opens the reservation store described by cfg, creates its
// schema and returns the service with a function that closes the store.
func OpenReservations(ctx context.Context, cfg config.DatabaseConfig, logger *zap.SugaredLogger) (*reservations.ReservationService, func(), error) {
	var (
		repo       repository.ReservationRepository
		closeStore func()
	)

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		repo, closeStore = repository.NewSQLiteReservationRepository(db), func() { db.Close() }
	case config.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, cfg.DSN())
		if err != nil {
			return nil, nil, err
		}
		repo, closeStore = repository.NewPGReservationRepository(pool), pool.Close
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	logger.Infow("reservation store opened", "driver", cfg.Driver, "path", cfg.Path)

	svc := reservations.NewReservationService(repo, logger)
	if err := svc.Initialize(ctx); err != nil {
		closeStore()
		return nil, nil, err
	}
	return svc, closeStore, nil
}

// OpenInventory is OpenReservations for the flight inventory store.
func OpenInventory(ctx context.Context, cfg config.DatabaseConfig, logger *zap.SugaredLogger) (*inventory.InventoryService, func(), error) {
	var (
		flights    repository.FlightRepository
		bookings   repository.BookingRepository
		closeStore func()
	)

	switch cfg.Driver {
	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		flights, bookings = repository.NewSQLiteFlightRepository(db), repository.NewSQLiteBookingRepository(db)
		closeStore = func() { db.Close() }
	case config.DriverPostgres:
		pool, err := database.OpenPostgres(ctx, cfg.DSN())
		if err != nil {
			return nil, nil, err
		}
		flights, bookings = repository.NewPGFlightRepository(pool), repository.NewPGBookingRepository(pool)
		closeStore = pool.Close
	default:
		return nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
	logger.Infow("inventory store opened", "driver", cfg.Driver, "path", cfg.Path)

	svc := inventory.NewInventoryService(flights, bookings, logger)
	if err := svc.Initialize(ctx); err != nil {
		closeStore()
		return nil, nil, err
	}
	return svc, closeStore, nil
}
