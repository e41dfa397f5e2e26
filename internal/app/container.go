package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/lumadent/clinic-booking-backend/internal/api"
	"github.com/lumadent/clinic-booking-backend/internal/availability"
	"github.com/lumadent/clinic-booking-backend/internal/booking"
	"github.com/lumadent/clinic-booking-backend/internal/catalog"
	"github.com/lumadent/clinic-booking-backend/internal/gallery"
	"github.com/lumadent/clinic-booking-backend/internal/pkg/storage"
	"github.com/lumadent/clinic-booking-backend/internal/testimonial"
	"github.com/lumadent/clinic-booking-backend/internal/wizard"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction      bool
	ProdOrigins       string
	DBPool            *pgxpool.Pool // nil runs with in-memory repositories
	StoragePath       string
	AvailabilityDelay time.Duration
	Logger            *zap.Logger
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router      *gin.Engine
	WizardStore *wizard.Store
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Catalog Module (static service directory)
	cat := catalog.New()

	// Availability Module
	source := availability.NewSimulatedSource(cfg.AvailabilityDelay)

	// Booking Module
	var bookingRepo booking.Repository
	var testimonialRepo testimonial.Repository
	if cfg.DBPool != nil {
		bookingRepo = booking.NewPgxRepository(cfg.DBPool)
		testimonialRepo = testimonial.NewPgxRepository(cfg.DBPool)
	} else {
		bookingRepo = booking.NewMemoryRepository()
		testimonialRepo = testimonial.NewMemoryRepository()
	}
	bookingService := booking.NewService(bookingRepo, cat, logger)

	// Wizard Module: the session store is built here and injected, so wizard
	// state has one explicit owner instead of living in a package global.
	submitter := booking.NewLocalSubmitter(bookingService)
	wizardStore := wizard.NewStore(source, submitter, logger)

	// Testimonial Module
	testimonialService := testimonial.NewService(testimonialRepo, cat)

	// Gallery Module
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("init gallery storage failed: %w", err)
	}
	galleryService := gallery.NewService(gallery.NewMemoryRepository(), store, storage.NewImageProcessor())

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		Catalog:            cat,
		AvailabilitySource: source,
		BookingService:     bookingService,
		WizardStore:        wizardStore,
		TestimonialService: testimonialService,
		GalleryService:     galleryService,
		Logger:             logger,
	})

	return &Container{
		Router:      router,
		WizardStore: wizardStore,
	}, nil
}
