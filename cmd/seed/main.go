// Command main runs the database seeder for PicShare.
package main

import (
	"flag"
	"log"

	"picshare/internal/config"
	"picshare/internal/database"
	"picshare/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 20, "Number of users to create")
	numPictures := flag.Int("pictures", 100, "Number of pictures to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d pictures, clean=%v\n", *numUsers, *numPictures, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	_, err = database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run seeder
	s := seed.NewSeeder(database.DB)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("❌ Cleanup failed: %v", err)
		}
	}

	users, err := s.SeedUsers(*numUsers)
	if err != nil {
		log.Fatalf("❌ User seeding failed: %v", err)
	}

	pictures, err := s.SeedPictures(users, *numPictures)
	if err != nil {
		log.Fatalf("❌ Picture seeding failed: %v", err)
	}

	if err := s.SeedFavorites(users, pictures); err != nil {
		log.Fatalf("❌ Favorite seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("🔑 Log in with any seeded username, no password needed.")
}
