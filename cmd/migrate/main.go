package main

import (
	"log"

	"ai-writing-assistant/internal/config"
	"ai-writing-assistant/internal/model"
	"ai-writing-assistant/pkg/database"
)

func main() {
	// 1. Load Environment Variables
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(cfg.Database.Connection, true)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	if err := db.AutoMigrate(&model.DocumentMetadata{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("✅ Migration completed: document_metadata is up to date")
}
