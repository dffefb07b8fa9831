package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"picshare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// seedPictures creates one user and n pictures with strictly decreasing age, so
// picture n is the newest.
func seedPictures(t *testing.T, db *gorm.DB, n int) (*models.User, []*models.Picture) {
	t.Helper()
	ctx := context.Background()

	user := &models.User{Username: "uploader"}
	require.NoError(t, NewUserRepository(db).Create(ctx, user))

	base := time.Now().Add(-time.Duration(n) * time.Minute)
	pictures := make([]*models.Picture, 0, n)
	for i := 0; i < n; i++ {
		picture := &models.Picture{
			Title:     fmt.Sprintf("picture %d", i),
			URL:       fmt.Sprintf("https://example.com/%d.jpg", i),
			UserID:    user.ID,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(picture).Error)
		pictures = append(pictures, picture)
	}
	return user, pictures
}

func TestPictureListOrderAndTotal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPictureRepository(db)
	_, pictures := seedPictures(t, db, 5)

	items, total, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	require.Len(t, items, 5)
	// Newest first
	assert.Equal(t, pictures[4].ID, items[0].ID)
	assert.Equal(t, pictures[0].ID, items[4].ID)
	// Owner is preloaded
	assert.Equal(t, "uploader", items[0].User.Username)
}

func TestPictureListPagination(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPictureRepository(db)
	seedPictures(t, db, 7)
	ctx := context.Background()

	seen := map[uint]bool{}
	for offset := 0; offset < 7; offset += 3 {
		items, total, err := repo.List(ctx, 3, offset)
		require.NoError(t, err)
		assert.Equal(t, int64(7), total)
		for _, item := range items {
			assert.False(t, seen[item.ID], "picture %d returned on two pages", item.ID)
			seen[item.ID] = true
		}
	}
	// Every picture shows up on exactly one page.
	assert.Len(t, seen, 7)
}

func TestPictureListEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPictureRepository(db)

	items, total, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestPictureGetByIDMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPictureRepository(db)

	_, err := repo.GetByID(context.Background(), 999)
	require.Error(t, err)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.ErrCodeNotFound, appErr.Code)
}

func TestFavoriteRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPictureRepository(db)
	user, pictures := seedPictures(t, db, 3)
	ctx := context.Background()

	// Nothing favorited yet
	found, err := repo.FindFavorite(ctx, user.ID, pictures[0].ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	favorite := &models.Favorite{UserID: user.ID, PictureID: pictures[0].ID}
	require.NoError(t, repo.CreateFavorite(ctx, favorite))

	found, err = repo.FindFavorite(ctx, user.ID, pictures[0].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, favorite.ID, found.ID)

	require.NoError(t, repo.DeleteFavorite(ctx, found.ID))

	found, err = repo.FindFavorite(ctx, user.ID, pictures[0].ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFavoritePictureIDsBatch(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPictureRepository(db)
	user, pictures := seedPictures(t, db, 4)
	ctx := context.Background()

	require.NoError(t, repo.CreateFavorite(ctx, &models.Favorite{UserID: user.ID, PictureID: pictures[1].ID}))
	require.NoError(t, repo.CreateFavorite(ctx, &models.Favorite{UserID: user.ID, PictureID: pictures[3].ID}))

	all := []uint{pictures[0].ID, pictures[1].ID, pictures[2].ID, pictures[3].ID}
	ids, err := repo.FavoritePictureIDs(ctx, user.ID, all)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{pictures[1].ID, pictures[3].ID}, ids)

	// Empty input short-circuits without touching the database.
	ids, err = repo.FavoritePictureIDs(ctx, user.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListFavorites(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPictureRepository(db)
	user, pictures := seedPictures(t, db, 3)
	ctx := context.Background()

	other := &models.User{Username: "other"}
	require.NoError(t, NewUserRepository(db).Create(ctx, other))

	require.NoError(t, repo.CreateFavorite(ctx, &models.Favorite{UserID: user.ID, PictureID: pictures[0].ID}))
	require.NoError(t, repo.CreateFavorite(ctx, &models.Favorite{UserID: other.ID, PictureID: pictures[1].ID}))

	favorites, err := repo.ListFavorites(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, pictures[0].ID, favorites[0].ID)
	assert.Equal(t, "uploader", favorites[0].User.Username)
}
