// Package main is the entry point for the course platform API.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Diatessaron/Best-Course-Ever/internal/config"
	"github.com/Diatessaron/Best-Course-Ever/internal/handlers"
	"github.com/Diatessaron/Best-Course-Ever/internal/metrics"
	"github.com/Diatessaron/Best-Course-Ever/internal/models"
	"github.com/Diatessaron/Best-Course-Ever/internal/repository"
	"github.com/Diatessaron/Best-Course-Ever/internal/routes"
	"github.com/Diatessaron/Best-Course-Ever/internal/service"
	"github.com/Diatessaron/Best-Course-Ever/pkg/redis"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// @title Best Course Ever API
// @version 1.0
// @description Course platform with JWT authentication and role-based access
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()

	// TranslateError maps the unique email index violation to
	// gorm.ErrDuplicatedKey, which the user repository relies on.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Course{}); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		logger.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	blacklist := repository.NewTokenBlacklist(redisClient)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	if tokenService == nil {
		logger.Error("SECURITY_KEY must be at least 32 bytes")
		os.Exit(1)
	}
	authService := service.NewAuthService(userRepo, tokenService, blacklist, logger)

	m := metrics.New()
	authHandler := handlers.NewAuthHandler(authService, logger, m)
	courseHandler := handlers.NewCourseHandler(courseRepo, logger)
	healthHandler := handlers.NewHealthHandler()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	routes.Setup(router, authHandler, courseHandler, healthHandler, tokenService, blacklist)

	logger.Info("starting server", "port", cfg.Port, "environment", cfg.Environment)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}
