package main

import (
	"context"
	"log"

	"huddle/internal/config"
	"huddle/internal/db"
	"huddle/internal/model"
	"huddle/internal/repository"
	"huddle/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Team{},
		&model.Channel{},
		&model.Project{},
		&model.Task{},
		&model.Message{},
		&model.Subscription{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	repos := seed.Repos{
		Users:         repository.NewUserRepository(gormDB),
		Teams:         repository.NewTeamRepository(gormDB),
		Channels:      repository.NewChannelRepository(gormDB),
		Projects:      repository.NewProjectRepository(gormDB),
		Tasks:         repository.NewTaskRepository(gormDB),
		Messages:      repository.NewMessageRepository(gormDB),
		Subscriptions: repository.NewSubscriptionRepository(gormDB),
	}

	if err := seed.Demo(context.Background(), repos); err != nil {
		log.Fatalf("Failed to seed demo workspace: %v", err)
	}

	log.Printf("Demo workspace ready (admin login: %s)", seed.DemoAdminEmail)
}
