package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nekogravitycat/locker-booking-backend/internal/api"
	"github.com/nekogravitycat/locker-booking-backend/internal/booking"
	"github.com/nekogravitycat/locker-booking-backend/internal/pkg/storage"
	"github.com/nekogravitycat/locker-booking-backend/internal/station"
	"github.com/nekogravitycat/locker-booking-backend/internal/web"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  []string

	// Bookings go to DBPool when set, otherwise to DataDir/LockersFile.
	DBPool      *pgxpool.Pool
	DataDir     string
	LockersFile string

	Inventory station.Inventory
	Logger    *zap.Logger

	// PINGenerator overrides the random PIN source (tests).
	PINGenerator booking.PINGenerator
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router         *gin.Engine
	BookingService booking.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Booking Store
	var bookingRepo booking.Repository
	if cfg.DBPool != nil {
		bookingRepo = booking.NewPgxRepository(cfg.DBPool)
	} else {
		store, err := storage.NewLocalStorage(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		bookingRepo = booking.NewJSONRepository(store, cfg.LockersFile, logger.Named("store"))
	}

	// Booking Service
	var bookingService booking.Service
	if cfg.PINGenerator != nil {
		bookingService = booking.NewServiceWithPINGenerator(bookingRepo, cfg.Inventory, logger.Named("booking"), cfg.PINGenerator)
	} else {
		bookingService = booking.NewService(bookingRepo, cfg.Inventory, logger.Named("booking"))
	}

	// Pages
	templates, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:   cfg.IsProduction,
		ProdOrigins:    cfg.ProdOrigins,
		Templates:      templates,
		Inventory:      cfg.Inventory,
		BookingService: bookingService,
		Logger:         logger.Named("http"),
	})

	return &Container{
		Router:         router,
		BookingService: bookingService,
	}, nil
}
