// Command migrate applies pending SQL migrations without starting the API.
package main

import (
	"os"

	"monedero/internal/database"
	"monedero/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	log := logger.Get()

	dbConfig, err := database.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load database configuration: %v", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		log.Fatalf("Failed to create database manager: %v", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	log.Info("Migrations applied")
}
