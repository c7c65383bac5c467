package main

import (
	"context"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/school-records-api/internal/repository"
	"github.com/noah-isme/school-records-api/internal/seed"
	"github.com/noah-isme/school-records-api/internal/service"
	"github.com/noah-isme/school-records-api/pkg/cache"
	"github.com/noah-isme/school-records-api/pkg/config"
	"github.com/noah-isme/school-records-api/pkg/database"
	"github.com/noah-isme/school-records-api/pkg/logger"
)

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

	fixture, err := seed.Load(cfg.Seed.File)
	if err != nil {
		logr.Fatal("failed to load fixture", zap.String("file", cfg.Seed.File), zap.Error(err))
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logr.Fatal("failed to apply migrations", zap.Error(err))
	}

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Warn("redis unavailable, cached analytics stay until expiry", zap.Error(err))
		redisClient = nil
	}
	cacheRepo := repository.NewCacheRepository(redisClient, logr)
	defer cacheRepo.Close() //nolint:errcheck
	hooks := service.NewWriteHooks(service.NewCacheService(cacheRepo, nil, cfg.Analytics.CacheTTL, logr, redisClient != nil), nil)
	validate := validator.New()
	deleter := repository.NewDeleter(db, cfg.Database.ReferentialPolicy)

	seeder := seed.New(seed.Services{
		Users:      service.NewUserService(repository.NewUserRepository(db, deleter), hooks, validate, logr),
		Employees:  service.NewEmployeeService(repository.NewEmployeeRepository(db, deleter), hooks, validate, logr),
		Students:   service.NewStudentService(repository.NewStudentRepository(db, deleter), hooks, validate, logr),
		Classrooms: service.NewClassroomService(repository.NewClassroomRepository(db, deleter), hooks, validate, logr),
		Schedules:  service.NewScheduleService(repository.NewScheduleRepository(db, deleter), hooks, validate, logr),
		Attendance: service.NewAttendanceService(repository.NewAttendanceRepository(db, deleter), hooks, validate, logr),
		Payments:   service.NewPaymentService(repository.NewPaymentRepository(db, deleter), hooks, validate, logr),
		Exams:      service.NewExamService(repository.NewExamRepository(db, deleter), hooks, validate, logr),
		Results:    service.NewResultService(repository.NewResultRepository(db, deleter), hooks, validate, logr),
	}, logr)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := seeder.Run(ctx, fixture); err != nil {
		logr.Fatal("seed failed", zap.Error(err))
	}
}
