package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-skillmatch-backend/config"
	_ "go-skillmatch-backend/docs" // Important for Swagger
	v1 "go-skillmatch-backend/internal/delivery/http/v1"
	"go-skillmatch-backend/internal/repository/postgres"
	"go-skillmatch-backend/internal/usecase"
	"go-skillmatch-backend/pkg/database"
	"go-skillmatch-backend/pkg/logger"
	"go-skillmatch-backend/pkg/redis"
	"go-skillmatch-backend/pkg/storage"
	"go-skillmatch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           SkillMatch Backend API
// @version         1.0
// @description     Job-seeker/employer platform with skill-based course and profile matching.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting skillmatch backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := database.RunMigrations(cfg.DBUrl); err != nil {
		logger.Log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// 4. Setup Redis (optional; rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory rate limiting", "error", err)
	}
	defer redis.Close()

	// 5. Setup Resume Storage
	store, err := storage.NewS3Store(context.Background(), storage.NewConfigFromEnv())
	if err != nil {
		logger.Log.Error("Failed to set up resume storage", "error", err)
		os.Exit(1)
	}
	if err := store.TestConnection(context.Background()); err != nil {
		logger.Log.Warn("Resume storage connection check failed", "error", err)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	tokenRepo := postgres.NewTokenRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	employerRepo := postgres.NewEmployerProfileRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	courseRepo := postgres.NewCourseRepository(dbPool)
	skillRepo := postgres.NewSkillRepository(dbPool)

	// 7. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo, tokenRepo, profileRepo, validate)
	profileUC := usecase.NewProfileUsecase(userRepo, profileRepo, employerRepo)
	employerUC := usecase.NewEmployerProfileUsecase(userRepo, employerRepo, validate)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, store)
	courseUC := usecase.NewCourseUsecase(courseRepo, profileRepo, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, profileRepo, validate)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:     authUC,
		ProfileUC:  profileUC,
		EmployerUC: employerUC,
		ResumeUC:   resumeUC,
		CourseUC:   courseUC,
		SkillUC:    skillUC,
		Config:     cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
