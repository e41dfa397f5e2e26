package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lumadent/clinic-booking-backend/internal/availability"
	availabilityHttp "github.com/lumadent/clinic-booking-backend/internal/availability/http"
	"github.com/lumadent/clinic-booking-backend/internal/booking"
	bookingHttp "github.com/lumadent/clinic-booking-backend/internal/booking/http"
	"github.com/lumadent/clinic-booking-backend/internal/catalog"
	catalogHttp "github.com/lumadent/clinic-booking-backend/internal/catalog/http"
	"github.com/lumadent/clinic-booking-backend/internal/gallery"
	galleryHttp "github.com/lumadent/clinic-booking-backend/internal/gallery/http"
	"github.com/lumadent/clinic-booking-backend/internal/testimonial"
	testimonialHttp "github.com/lumadent/clinic-booking-backend/internal/testimonial/http"
	"github.com/lumadent/clinic-booking-backend/internal/wizard"
	wizardHttp "github.com/lumadent/clinic-booking-backend/internal/wizard/http"
)

// Config holds the services the router wires into handlers.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	Catalog            catalog.Catalog
	AvailabilitySource availability.Source
	BookingService     booking.Service
	WizardStore        *wizard.Store
	TestimonialService testimonial.Service
	GalleryService     gallery.Service
	Logger             *zap.Logger
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Recovery) and registers routes for
// each module. Recovery keeps a panic in one handler from taking down the
// rest of the site; the booking flow stays usable even if a sibling
// region's endpoint is failing.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Site dev server
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(corsConfig))

	catalogHandler := catalogHttp.NewHandler(cfg.Catalog)
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilitySource, cfg.Logger)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	wizardHandler := wizardHttp.NewHandler(cfg.WizardStore)
	testimonialHandler := testimonialHttp.NewHandler(cfg.TestimonialService)
	galleryHandler := galleryHttp.NewHandler(cfg.GalleryService)

	v1 := r.Group("/v1")
	{
		catalogHttp.RegisterRoutes(v1, catalogHandler)
		availabilityHttp.RegisterRoutes(v1, availabilityHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		wizardHttp.RegisterRoutes(v1, wizardHandler)
		testimonialHttp.RegisterRoutes(v1, testimonialHandler)
		galleryHttp.RegisterRoutes(v1, galleryHandler)
	}

	return r
}
