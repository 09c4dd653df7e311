package main

import (
	"log"

	"astro-chat-be/internal/config"
	"astro-chat-be/internal/model"
	"astro-chat-be/pkg/database"
)

func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	log.Println("Running migrations...")
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.BirthChart{},
		&model.ChatSession{},
		&model.ChatMessage{},
		&model.UserActivity{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations complete")
}
