package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/palinaresort/resort-booking-backend/internal/admin"
	"github.com/palinaresort/resort-booking-backend/internal/api"
	"github.com/palinaresort/resort-booking-backend/internal/auth"
	"github.com/palinaresort/resort-booking-backend/internal/booking"
	"github.com/palinaresort/resort-booking-backend/internal/catalog"
	"github.com/palinaresort/resort-booking-backend/internal/config"
	"github.com/palinaresort/resort-booking-backend/internal/excel"
	"github.com/palinaresort/resort-booking-backend/internal/media"
	"github.com/palinaresort/resort-booking-backend/internal/notification"
	"github.com/palinaresort/resort-booking-backend/internal/pkg/storage"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager

	cfg            *config.Config
	adminService   admin.Service
	catalogService catalog.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, err
	}

	// Admin module
	adminRepo := admin.NewPgxRepository(pool)
	adminService := admin.NewService(adminRepo, passwordHasher, jwtManager)

	// Catalog module
	catalogRepo := catalog.NewPgxRepository(pool)
	catalogService := catalog.NewService(catalogRepo)

	// Notification module. Providers are tried in configuration order,
	// with the console transport as the always-available fallback.
	httpClient := &http.Client{Timeout: cfg.NotifyTimeout}
	var transports []notification.Transport
	if cfg.Meta.Configured() {
		transports = append(transports, notification.NewMetaTransport(
			cfg.Meta.PhoneNumberID, cfg.Meta.AccessToken, httpClient,
		))
	}
	if cfg.Twilio.Configured() {
		transports = append(transports, notification.NewTwilioTransport(
			cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, httpClient,
		))
	}
	transports = append(transports, notification.NewConsoleTransport())

	notificationRepo := notification.NewPgxRepository(pool)

	// Booking module
	bookingRepo := booking.NewPgxRepository(pool)
	sender := notification.NewSender(transports, notificationRepo, bookingRepo, cfg.DefaultCountryCode)
	bookingService := booking.NewService(bookingRepo, sender, cfg.AdminWhatsAppPhone)

	// Excel module
	excelService := excel.NewService(bookingRepo, store)

	// Media module
	mediaRepo := media.NewPgxRepository(pool)
	mediaService := media.NewService(mediaRepo, store, catalogService)

	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		AdminService:       adminService,
		BookingService:     bookingService,
		CatalogService:     catalogService,
		ExcelService:       excelService,
		MediaService:       mediaService,
		NotificationSender: sender,
		NotificationTrail:  notificationRepo,
		JWTManager:         jwtManager,
	})

	return &Container{
		Router:         router,
		JWTManager:     jwtManager,
		cfg:            cfg,
		adminService:   adminService,
		catalogService: catalogService,
	}, nil
}

// Seed inserts the bootstrap admin account and the default catalog.
// Both are no-ops once data exists.
func (c *Container) Seed(ctx context.Context) error {
	if err := c.adminService.Seed(ctx, c.cfg.AdminUsername, c.cfg.AdminPassword); err != nil {
		return err
	}
	return c.catalogService.Seed(ctx)
}
