package api

import (
	"html/template"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nekogravitycat/locker-booking-backend/internal/booking"
	bookingHttp "github.com/nekogravitycat/locker-booking-backend/internal/booking/http"
	"github.com/nekogravitycat/locker-booking-backend/internal/station"
	"github.com/nekogravitycat/locker-booking-backend/internal/web"
)

// Config holds what the router needs to build its handlers.
type Config struct {
	IsProduction   bool
	ProdOrigins    []string
	Templates      *template.Template
	Inventory      station.Inventory
	BookingService booking.Service
	Logger         *zap.Logger
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (request ID, access log, recovery, CORS) and
// registers the page and booking routes.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - RequestID: tags the request and the response with X-Request-ID.
	// - AccessLog: logs request information through zap.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(RequestID(), AccessLog(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		if len(cfg.ProdOrigins) > 0 {
			corsConfig.AllowOrigins = cfg.ProdOrigins
		} else {
			corsConfig.AllowOrigins = []string{"http://localhost:8080"}
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", requestIDHeader}
	corsConfig.ExposeHeaders = []string{requestIDHeader}
	r.Use(cors.New(corsConfig))

	r.SetHTMLTemplate(cfg.Templates)

	// Initialize HTTP Handlers (injecting Service dependencies).
	pageHandler := web.NewHandler(cfg.Inventory)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.Logger)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	web.RegisterRoutes(r, pageHandler)
	bookingHttp.RegisterRoutes(r, bookingHandler)

	return r
}
