package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/school-records-api/api/swagger"
	"github.com/noah-isme/school-records-api/internal/handler"
	"github.com/noah-isme/school-records-api/internal/middleware"
	"github.com/noah-isme/school-records-api/internal/models"
	"github.com/noah-isme/school-records-api/internal/repository"
	"github.com/noah-isme/school-records-api/internal/service"
	"github.com/noah-isme/school-records-api/pkg/cache"
	"github.com/noah-isme/school-records-api/pkg/config"
	"github.com/noah-isme/school-records-api/pkg/database"
	"github.com/noah-isme/school-records-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/school-records-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/school-records-api/pkg/middleware/requestid"
)

// @title School Records API
// @version 1.0.0
// @description CRUD and analytics for students, staff, classrooms, attendance, fees, exams and timetables.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	reporter := logger.NewReporter(cfg)
	defer reporter.Close()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			logr.Fatal("failed to apply migrations", zap.Error(err))
		}
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, analytics cache disabled", zap.Error(err))
		redisClient = nil
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck

	metrics := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Analytics.CacheTTL, logr, redisClient != nil)
	hooks := service.NewWriteHooks(cacheSvc, metrics)
	validate := validator.New()

	deleter := repository.NewDeleter(db, cfg.Database.ReferentialPolicy)
	userRepo := repository.NewUserRepository(db, deleter)

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret: cfg.Auth.Secret,
		Expiry: cfg.Auth.Expiration,
		Issuer: cfg.Auth.Issuer,
	})
	analyticsSvc := service.NewAnalyticsService(repository.NewAnalyticsRepository(db), cacheSvc, metrics, cfg.Analytics.CacheTTL, logr)
	exportSvc := service.NewExportService(analyticsSvc, nil, nil, logr)

	handlers := handler.Handlers{
		Auth:       handler.NewAuthHandler(authSvc),
		Users:      handler.NewUserHandler(service.NewUserService(userRepo, hooks, validate, logr)),
		Students:   handler.NewStudentHandler(service.NewStudentService(repository.NewStudentRepository(db, deleter), hooks, validate, logr)),
		Employees:  handler.NewEmployeeHandler(service.NewEmployeeService(repository.NewEmployeeRepository(db, deleter), hooks, validate, logr)),
		Classrooms: handler.NewClassroomHandler(service.NewClassroomService(repository.NewClassroomRepository(db, deleter), hooks, validate, logr)),
		Attendance: handler.NewAttendanceHandler(service.NewAttendanceService(repository.NewAttendanceRepository(db, deleter), hooks, validate, logr)),
		Payments:   handler.NewPaymentHandler(service.NewPaymentService(repository.NewPaymentRepository(db, deleter), hooks, validate, logr)),
		Exams:      handler.NewExamHandler(service.NewExamService(repository.NewExamRepository(db, deleter), hooks, validate, logr)),
		Results:    handler.NewResultHandler(service.NewResultService(repository.NewResultRepository(db, deleter), hooks, validate, logr)),
		Schedules:  handler.NewScheduleHandler(service.NewScheduleService(repository.NewScheduleRepository(db, deleter), hooks, validate, logr)),
		Analytics:  handler.NewAnalyticsHandler(analyticsSvc, exportSvc),
	}

	var guards handler.Guards
	if cfg.Auth.Enabled {
		guards = handler.Guards{
			Authenticated: middleware.JWT(authSvc),
			Admin:         middleware.RequireRoles(models.RoleAdmin),
		}
	} else {
		handlers.Auth = nil
		logr.Warn("authentication disabled, all routes are public")
	}

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(reporter.GinMiddleware())
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics, "/health", "/metrics"))
	r.Use(middleware.WithResponseMeta())

	ops := handler.NewMetricsHandler(metrics, db)
	r.GET("/health", ops.Health)
	r.GET("/metrics", ops.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	handler.Register(r.Group(cfg.APIPrefix), handlers, guards)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logr.Info("server starting", zap.String("addr", server.Addr), zap.String("env", cfg.Env))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	case sig := <-shutdown:
		logr.Info("shutdown started", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logr.Error("graceful shutdown failed", zap.Error(err))
			_ = server.Close()
		}
	}
}
