package api

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/palinaresort/resort-booking-backend/internal/admin"
	adminHttp "github.com/palinaresort/resort-booking-backend/internal/admin/http"
	"github.com/palinaresort/resort-booking-backend/internal/auth"
	"github.com/palinaresort/resort-booking-backend/internal/booking"
	bookingHttp "github.com/palinaresort/resort-booking-backend/internal/booking/http"
	"github.com/palinaresort/resort-booking-backend/internal/catalog"
	catalogHttp "github.com/palinaresort/resort-booking-backend/internal/catalog/http"
	"github.com/palinaresort/resort-booking-backend/internal/excel"
	excelHttp "github.com/palinaresort/resort-booking-backend/internal/excel/http"
	"github.com/palinaresort/resort-booking-backend/internal/media"
	mediaHttp "github.com/palinaresort/resort-booking-backend/internal/media/http"
	"github.com/palinaresort/resort-booking-backend/internal/notification"
	notificationHttp "github.com/palinaresort/resort-booking-backend/internal/notification/http"
)

// Config carries the services the router wires into handlers.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	AdminService       admin.Service
	BookingService     booking.Service
	CatalogService     catalog.Service
	ExcelService       excel.Service
	MediaService       media.Service
	NotificationSender *notification.Sender
	NotificationTrail  notification.Repository
	JWTManager         *auth.JWTManager
}

// NewRouter assembles middleware and registers the routes of every module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Logger prints request lines to the console; Recovery turns panics
	// into 500 responses instead of crashing the process.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authMiddleware := auth.AuthRequired(cfg.JWTManager)

	adminHandler := adminHttp.NewHandler(cfg.AdminService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	excelHandler := excelHttp.NewHandler(cfg.ExcelService)
	mediaHandler := mediaHttp.NewHandler(cfg.MediaService)
	notificationHandler := notificationHttp.NewHandler(cfg.NotificationSender, cfg.NotificationTrail)

	v1 := r.Group("/api/v1")
	adminGroup := v1.Group("/admin")
	adminGroup.Use(authMiddleware)

	adminHttp.RegisterRoutes(v1, adminHandler)
	bookingHttp.RegisterRoutes(v1, adminGroup, bookingHandler)
	catalogHttp.RegisterRoutes(v1, catalogHandler)
	excelHttp.RegisterRoutes(adminGroup, excelHandler)
	mediaHttp.RegisterRoutes(v1, adminGroup, mediaHandler)
	notificationHttp.RegisterRoutes(adminGroup, notificationHandler)

	return r
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
