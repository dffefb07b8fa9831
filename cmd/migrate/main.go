// Command migrate applies the database schema explicitly.
//
// In development the server automigrates on startup; production deployments
// run this binary as a release step instead.
package main

import (
	"log"

	"picshare/internal/config"
	"picshare/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations applied")
}
