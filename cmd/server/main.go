package main

import (
	"log"
	"net/http"
	"os"

	_ "huddle/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"huddle/internal/auth"
	"huddle/internal/cache"
	"huddle/internal/config"
	"huddle/internal/db"
	"huddle/internal/handler"
	"huddle/internal/model"
	"huddle/internal/repository"
	"huddle/internal/router"
	"huddle/internal/seed"
	"huddle/internal/service"
)

// @title Huddle API
// @version 1.0
// @description Team collaboration API with teams, channels, tasks, messages, billing, and cookie-based sessions.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

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
			&model.Message{},
			&model.Task{},
			&model.Project{},
			&model.Channel{},
			&model.Subscription{},
			&model.Team{},
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
		&model.Team{},
		&model.Channel{},
		&model.Project{},
		&model.Task{},
		&model.Message{},
		&model.Subscription{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	teamRepo := repository.NewTeamRepository(gormDB)
	channelRepo := repository.NewChannelRepository(gormDB)
	projectRepo := repository.NewProjectRepository(gormDB)
	taskRepo := repository.NewTaskRepository(gormDB)
	messageRepo := repository.NewMessageRepository(gormDB)
	subscriptionRepo := repository.NewSubscriptionRepository(gormDB)

	// Initialize session tokens
	jwtService := auth.NewJWTService(cfg.SessionSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)
	teamService := service.NewTeamService(teamRepo, userRepo, cacheClient)
	channelService := service.NewChannelService(channelRepo, userRepo)
	projectService := service.NewProjectService(projectRepo, taskRepo, userRepo)
	taskService := service.NewTaskService(taskRepo, userRepo)
	messageService := service.NewMessageService(messageRepo, channelRepo, userRepo)
	billingService := service.NewBillingService(subscriptionRepo, userRepo, cacheClient)

	seedRepos := seed.Repos{
		Users:         userRepo,
		Teams:         teamRepo,
		Channels:      channelRepo,
		Projects:      projectRepo,
		Tasks:         taskRepo,
		Messages:      messageRepo,
		Subscriptions: subscriptionRepo,
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	teamHandler := handler.NewTeamHandler(teamService, billingService)
	channelHandler := handler.NewChannelHandler(channelService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	messageHandler := handler.NewMessageHandler(messageService)
	billingHandler := handler.NewBillingHandler(billingService)
	seedHandler := handler.NewSeedHandler(seedRepos)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		userHandler,
		teamHandler,
		channelHandler,
		projectHandler,
		taskHandler,
		messageHandler,
		billingHandler,
		seedHandler,
	)

	log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.AppURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
