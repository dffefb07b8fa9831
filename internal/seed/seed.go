// Package seed populates the database with realistic test data.
package seed

import (
	"fmt"
	"log"
	"math/rand"

	"picshare/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Seeder creates fake users, pictures and favorites.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder returns a Seeder writing through the given DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// ClearAll removes all seeded data. Favorites go first to respect foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("🧹 Cleaning database...")
	for _, model := range []interface{}{
		&models.Favorite{},
		&models.Picture{},
		&models.User{},
	} {
		if err := s.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
			return fmt.Errorf("failed to clear %T: %w", model, err)
		}
	}
	return nil
}

// SeedUsers creates n users with unique fake usernames.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	log.Printf("👤 Creating %d users...", n)

	users := make([]*models.User, 0, n)
	seen := make(map[string]bool, n)
	for len(users) < n {
		username := gofakeit.Username()
		if seen[username] {
			continue
		}
		seen[username] = true

		user := &models.User{Username: username}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("failed to create user %s: %w", username, err)
		}
		users = append(users, user)
	}
	return users, nil
}

// SeedPictures creates n pictures spread across the given users. The URLs point
// at picsum.photos so a seeded frontend renders real images.
func (s *Seeder) SeedPictures(users []*models.User, n int) ([]*models.Picture, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to own pictures")
	}
	log.Printf("🖼️  Creating %d pictures...", n)

	pictures := make([]*models.Picture, 0, n)
	for i := 0; i < n; i++ {
		owner := users[rand.Intn(len(users))]
		picture := &models.Picture{
			Title:  gofakeit.Sentence(3),
			URL:    fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
			UserID: owner.ID,
		}
		if err := s.db.Create(picture).Error; err != nil {
			return nil, fmt.Errorf("failed to create picture: %w", err)
		}
		pictures = append(pictures, picture)
	}
	return pictures, nil
}

// SeedFavorites gives every user a random handful of favorites, at most one per
// picture per user.
func (s *Seeder) SeedFavorites(users []*models.User, pictures []*models.Picture) error {
	if len(pictures) == 0 {
		return nil
	}
	log.Println("⭐ Creating favorites...")

	count := 0
	for _, user := range users {
		perUser := rand.Intn(len(pictures)/2 + 1)
		picked := rand.Perm(len(pictures))[:perUser]
		for _, idx := range picked {
			favorite := &models.Favorite{
				UserID:    user.ID,
				PictureID: pictures[idx].ID,
			}
			if err := s.db.Create(favorite).Error; err != nil {
				return fmt.Errorf("failed to create favorite: %w", err)
			}
			count++
		}
	}
	log.Printf("⭐ Created %d favorites", count)
	return nil
}
