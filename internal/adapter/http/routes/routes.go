package routes

import (
	"context"
	"net/http"
	"slices"
	"time"

	_ "gadget_garage/docs"
	"gadget_garage/internal/adapter/http/handlers"
	"gadget_garage/internal/adapter/http/middleware"
	"gadget_garage/internal/adapter/persistence/repository"
	"gadget_garage/internal/config"
	"gadget_garage/internal/infrastructure/database"
	"gadget_garage/internal/infrastructure/logging"
	"gadget_garage/internal/infrastructure/notifications"
	"gadget_garage/internal/infrastructure/phone"
	"gadget_garage/internal/infrastructure/timezone"
	"gadget_garage/internal/usecase"
	"gadget_garage/internal/usecase/interfaces"
	"gadget_garage/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const tableSetupTimeout = 30 * time.Second

type app struct {
	catalog      *handlers.CatalogHandler
	quotes       *handlers.QuoteHandler
	appointments *handlers.AppointmentHandler
	admin        *handlers.AdminHandler
	chats        *handlers.ChatHandler
	payments     *handlers.PaymentHandler

	adminAuth      gin.HandlerFunc
	loginLimit     gin.HandlerFunc
	chatStartLimit gin.HandlerFunc
}

// Run will start the server
func Run(cfg *config.Config) {
	logging.Setup(cfg.Env)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	a, cleanup := build(cfg)
	defer cleanup()

	router := newRouter(cfg, a)
	log.Printf("[http][routes] listening addr=%s env=%s", cfg.Addr(), cfg.Env)
	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// newRouter registers middlewares and every route group on a fresh engine.
func newRouter(cfg *config.Config, a *app) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET(PathHealth, a.catalog.Health)

	v1 := router.Group("/v1")
	addCatalogRoutes(v1, a.catalog)
	addQuoteRoutes(v1, a.quotes)
	addAppointmentRoutes(v1, a.appointments)
	addChatRoutes(v1, a.chats, a.chatStartLimit)
	addPaymentRoutes(v1, a.payments)
	addAdminRoutes(v1, a.admin, a.adminAuth, a.loginLimit)
	return router
}

func build(cfg *config.Config) (*app, func()) {
	ddb := database.ConnectDynamoDB(cfg)
	if cfg.DynamoDBCreateTables {
		ctx, cancel := context.WithTimeout(context.Background(), tableSetupTimeout)
		err := database.EnsureTables(ctx, ddb, cfg.QuotesTable, cfg.AppointmentsTable)
		cancel()
		if err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
	}

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)
	appointmentRepo := repository.NewAppointmentDynamoRepository(ddb, cfg.AppointmentsTable)

	var notifier interfaces.INotificationPublisher = notifications.NoopPublisher{}
	cleanup := func() {}
	if cfg.NotificationsEnabled() {
		publisher, err := notifications.NewAsynqPublisher(cfg.RedisURL)
		if err != nil {
			log.Printf("[http][routes] notifications disabled err=%v", err)
		} else {
			notifier = publisher
			cleanup = func() {
				if err := publisher.Close(); err != nil {
					log.Printf("[http][routes] close publisher err=%v", err)
				}
			}
		}
	}

	guard := usecase.NewSubmissionGuard()
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, notifier, guard, phone.NewNormalizer(cfg.ShopPhoneRegion), cfg.StoreTimeout)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo, notifier, guard, cfg.StoreTimeout, timezone.Location(cfg.ShopTimezone))
	adminUseCase, err := usecase.NewAdminUseCase(quoteRepo, appointmentRepo, usecase.AdminConfig{
		Password:     cfg.AdminPassword,
		JWTSecret:    cfg.AdminJWTSecret,
		SessionTTL:   cfg.AdminSessionTTL,
		StoreTimeout: cfg.StoreTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to configure admin access: %v", err)
	}
	chatUseCase := usecase.NewChatUseCase(cfg.ChatReplyDelay, cfg.ChatSessionIdleTTL, cfg.ChatMaxSessions)

	return &app{
		catalog:        handlers.NewCatalogHandler(usecase.NewCatalogUseCase()),
		quotes:         handlers.NewQuoteHandler(quoteUseCase),
		appointments:   handlers.NewAppointmentHandler(appointmentUseCase),
		admin:          handlers.NewAdminHandler(adminUseCase),
		chats:          handlers.NewChatHandler(chatUseCase),
		payments:       handlers.NewPaymentHandler(usecase.NewPaymentUseCase()),
		adminAuth:      middleware.AdminAuth(adminUseCase),
		loginLimit:     middleware.NewLoginRateLimiter(cfg.AdminLoginRatePerMinute).RateLimit(),
		chatStartLimit: middleware.NewPerMinuteRateLimiter(cfg.ChatStartRatePerMinute).RateLimit(),
	}, cleanup
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(logging.RequestLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		internal := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(internal.HTTPStatus, internal.ToHTTPError())
	}))
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", handlers.ClientIDHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}
