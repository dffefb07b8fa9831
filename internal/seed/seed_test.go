package seed

import (
	"fmt"
	"testing"

	"picshare/internal/database"
	"picshare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSeedUsersUnique(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	users, err := s.SeedUsers(10)
	require.NoError(t, err)
	assert.Len(t, users, 10)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Distinct("username").Count(&count).Error)
	assert.Equal(t, int64(10), count)
}

func TestSeedPictures(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	users, err := s.SeedUsers(3)
	require.NoError(t, err)

	pictures, err := s.SeedPictures(users, 15)
	require.NoError(t, err)
	assert.Len(t, pictures, 15)

	owners := map[uint]bool{}
	for _, u := range users {
		owners[u.ID] = true
	}
	for _, p := range pictures {
		assert.True(t, owners[p.UserID], "picture owned by unknown user %d", p.UserID)
		assert.NotEmpty(t, p.Title)
		assert.Contains(t, p.URL, "https://picsum.photos/")
	}
}

func TestSeedPicturesRequiresUsers(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	_, err := s.SeedPictures(nil, 5)
	assert.Error(t, err)
}

func TestSeedFavoritesNoDuplicatePairs(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	users, err := s.SeedUsers(5)
	require.NoError(t, err)
	pictures, err := s.SeedPictures(users, 20)
	require.NoError(t, err)
	require.NoError(t, s.SeedFavorites(users, pictures))

	var favorites []models.Favorite
	require.NoError(t, db.Find(&favorites).Error)

	pairs := map[string]bool{}
	for _, f := range favorites {
		key := fmt.Sprintf("%d-%d", f.UserID, f.PictureID)
		assert.False(t, pairs[key], "duplicate favorite pair %s", key)
		pairs[key] = true
	}
}

func TestClearAll(t *testing.T) {
	db := setupSeedDB(t)
	s := NewSeeder(db)

	users, err := s.SeedUsers(2)
	require.NoError(t, err)
	pictures, err := s.SeedPictures(users, 4)
	require.NoError(t, err)
	require.NoError(t, s.SeedFavorites(users, pictures))

	require.NoError(t, s.ClearAll())

	for _, model := range []interface{}{&models.User{}, &models.Picture{}, &models.Favorite{}} {
		var count int64
		require.NoError(t, db.Model(model).Count(&count).Error)
		assert.Zero(t, count, "%T not cleared", model)
	}
}
