package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	financeapp "github.com/studyhall/backend/internal/application/finance"
	identityapp "github.com/studyhall/backend/internal/application/identity"
	membershipapp "github.com/studyhall/backend/internal/application/membership"
	"github.com/studyhall/backend/internal/infrastructure/auth"
	"github.com/studyhall/backend/internal/infrastructure/config"
	"github.com/studyhall/backend/internal/infrastructure/event"
	"github.com/studyhall/backend/internal/infrastructure/logger"
	"github.com/studyhall/backend/internal/infrastructure/persistence"
	"github.com/studyhall/backend/internal/interfaces/http/handler"
	"github.com/studyhall/backend/internal/interfaces/http/middleware"
	"github.com/studyhall/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting StudyHall Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Token blacklist backed by Redis, with in-memory fallback so logout
	// still works (per-instance) when Redis is unavailable
	var blacklist auth.TokenBlacklist
	redisBlacklist, err := auth.NewRedisTokenBlacklist(auth.RedisTokenBlacklistConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
		defer func() {
			if err := redisBlacklist.Close(); err != nil {
				log.Error("Error closing Redis token blacklist", zap.Error(err))
			}
		}()
		log.Info("Redis token blacklist connected")
	}

	// Initialize repositories
	branchRepo := persistence.NewGormBranchRepository(db.DB)
	shiftRepo := persistence.NewGormShiftRepository(db.DB)
	seatRepo := persistence.NewGormSeatRepository(db.DB)
	studentRepo := persistence.NewGormStudentRepository(db.DB)
	assignmentRepo := persistence.NewGormAssignmentRepository(db.DB)
	collectionRepo := persistence.NewGormCollectionRecordRepository(db.DB)
	previousDueRepo := persistence.NewGormPreviousDuePaidRepository(db.DB)
	advanceRepo := persistence.NewGormAdvancePaymentRepository(db.DB)
	expenseRepo := persistence.NewGormExpenseRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)

	// Initialize application services
	branchService := membershipapp.NewBranchService(branchRepo)
	shiftService := membershipapp.NewShiftService(shiftRepo)
	seatService := membershipapp.NewSeatService(seatRepo, assignmentRepo)
	studentService := membershipapp.NewStudentService(studentRepo, assignmentRepo, seatRepo, shiftRepo, collectionRepo)
	availabilityService := membershipapp.NewAvailabilityService(seatRepo, shiftRepo, studentRepo, assignmentRepo)
	collectionService := financeapp.NewCollectionService(collectionRepo)
	advanceService := financeapp.NewAdvancePaymentService(advanceRepo)
	expenseService := financeapp.NewExpenseService(expenseRepo)
	reportService := financeapp.NewReportService(collectionRepo, previousDueRepo, advanceRepo, expenseRepo)

	// Identity services (auth, users)
	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	userService := identityapp.NewUserService(userRepo)

	// Initialize event bus and handlers
	eventBus := event.NewInMemoryEventBus(log)

	// Student deactivation -> seat release
	deactivatedHandler := membershipapp.NewStudentDeactivatedHandler(assignmentRepo, log)
	eventBus.Subscribe(deactivatedHandler)

	log.Info("Event handlers registered",
		zap.Strings("student_deactivated_events", deactivatedHandler.EventTypes()),
	)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Inject event bus into services that publish events
	studentService.SetEventPublisher(eventBus)
	collectionService.SetEventPublisher(eventBus)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(userService),
		Branch:       handler.NewBranchHandler(branchService),
		Seat:         handler.NewSeatHandler(seatService),
		Shift:        handler.NewShiftHandler(shiftService),
		Student:      handler.NewStudentHandler(studentService),
		Availability: handler.NewAvailabilityHandler(availabilityService),
		Collection:   handler.NewCollectionHandler(collectionService),
		Advance:      handler.NewAdvancePaymentHandler(advanceService),
		Expense:      handler.NewExpenseHandler(expenseService),
		Report:       handler.NewReportHandler(reportService),
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom binding validations
	middleware.SetupValidator()

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, in order: request ID, recovery, request logging,
	// security headers, CORS, body limit, rate limits, maintenance gate,
	// then JWT auth
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Stricter limit for credential endpoints
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		authRateLimit := middleware.RateLimit(authLimiter)
		engine.Use(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api/v1/auth") {
				authRateLimit(c)
				return
			}
			c.Next()
		})
	}

	// Maintenance mode gates writes before authentication so the 503 is
	// returned even for unauthenticated requests
	engine.Use(middleware.Maintenance(cfg.Maintenance))
	if cfg.Maintenance.Enabled {
		log.Warn("Maintenance mode is enabled, write operations will be rejected")
	}

	engine.Use(middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		SkipPaths: []string{
			"/health",
			"/api/v1/auth/login",
			"/api/v1/auth/refresh",
		},
		Logger: log,
	}))

	router.Setup(engine, handlers)

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
