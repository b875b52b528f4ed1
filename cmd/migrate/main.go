package main

import (
	"log"

	"noteboard-be/internal/config"
	"noteboard-be/internal/model"
	"noteboard-be/pkg/database"
)

func main() {
	cfg := config.Load()

	if cfg.Store.Connection == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.OpenPostgres(cfg.Store.Connection, database.DefaultPool)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Running AutoMigrate for board tables...")
	if err := db.AutoMigrate(&model.BoardKV{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	log.Println("Migration complete.")
}
