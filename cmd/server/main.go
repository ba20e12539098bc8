package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "eventhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"eventhub/internal/auth"
	"eventhub/internal/cache"
	"eventhub/internal/config"
	"eventhub/internal/db"
	"eventhub/internal/handler"
	"eventhub/internal/model"
	"eventhub/internal/repository"
	"eventhub/internal/router"
	"eventhub/internal/service"
)

// @title EventHub API
// @version 1.0
// @description Event publishing, registration, rating and reminder API with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Reminder{},
			&model.Rating{},
			&model.EventRegistration{},
			&model.Event{},
			&model.Category{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Event{},
		&model.EventRegistration{},
		&model.Rating{},
		&model.Reminder{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		log.Printf("redis unreachable, running without cache: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	registrationRepo := repository.NewRegistrationRepository(gormDB)
	ratingRepo := repository.NewRatingRepository(gormDB)
	reminderRepo := repository.NewReminderRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, cacheClient)
	eventService := service.NewEventService(eventRepo, categoryRepo, registrationRepo, ratingRepo, cacheClient)
	registrationService := service.NewRegistrationService(eventRepo, registrationRepo, cacheClient)
	ratingService := service.NewRatingService(eventRepo, ratingRepo, cacheClient)
	reminderService := service.NewReminderService(eventRepo, reminderRepo)
	categoryService := service.NewCategoryService(categoryRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, eventService, reminderService)
	eventHandler := handler.NewEventHandler(eventService, jwtService, cfg.EventsPerPage)
	registrationHandler := handler.NewRegistrationHandler(registrationService, jwtService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	reminderHandler := handler.NewReminderHandler(reminderService)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		eventHandler,
		registrationHandler,
		ratingHandler,
		reminderHandler,
		categoryHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
