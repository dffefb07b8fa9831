package repository

import (
	"context"
	"errors"

	"picshare/internal/cache"
	"picshare/internal/models"

	"gorm.io/gorm"
)

// PictureRepository defines persistence operations for pictures and favorites.
type PictureRepository interface {
	Create(ctx context.Context, picture *models.Picture) error
	GetByID(ctx context.Context, id uint) (*models.Picture, error)
	List(ctx context.Context, limit, offset int) ([]*models.Picture, int64, error)
	FavoritePictureIDs(ctx context.Context, userID uint, pictureIDs []uint) ([]uint, error)
	ListFavorites(ctx context.Context, userID uint) ([]*models.Picture, error)
	FindFavorite(ctx context.Context, userID, pictureID uint) (*models.Favorite, error)
	CreateFavorite(ctx context.Context, favorite *models.Favorite) error
	DeleteFavorite(ctx context.Context, id uint) error
}

type pictureRepository struct {
	db *gorm.DB
}

// NewPictureRepository creates a new picture repository
func NewPictureRepository(db *gorm.DB) PictureRepository {
	return &pictureRepository{db: db}
}

func (r *pictureRepository) Create(ctx context.Context, picture *models.Picture) error {
	if err := r.db.WithContext(ctx).Create(picture).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateFeed(ctx)
	return nil
}

func (r *pictureRepository) GetByID(ctx context.Context, id uint) (*models.Picture, error) {
	var picture models.Picture
	if err := r.db.WithContext(ctx).Preload("User").First(&picture, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Picture", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &picture, nil
}

// feedPage is the cached representation of one feed page.
type feedPage struct {
	Items []*models.Picture `json:"items"`
	Total int64             `json:"total"`
}

// List returns one page of the feed ordered by creation time descending, plus the
// total row count for client-side pagination. Pages are served cache-aside; the
// cache is invalidated whenever a picture is created.
func (r *pictureRepository) List(ctx context.Context, limit, offset int) ([]*models.Picture, int64, error) {
	var page feedPage
	key := cache.FeedKey(limit, offset)

	err := cache.Aside(ctx, key, &page, cache.FeedTTL, func() error {
		if err := r.db.WithContext(ctx).
			Model(&models.Picture{}).
			Count(&page.Total).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := r.db.WithContext(ctx).
			Preload("User").
			Order("created_at DESC").
			Limit(limit).
			Offset(offset).
			Find(&page.Items).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	if page.Items == nil {
		page.Items = []*models.Picture{}
	}
	return page.Items, page.Total, nil
}

// FavoritePictureIDs returns which of the given picture IDs the user has favorited,
// as a single batched query per page.
func (r *pictureRepository) FavoritePictureIDs(ctx context.Context, userID uint, pictureIDs []uint) ([]uint, error) {
	if len(pictureIDs) == 0 {
		return nil, nil
	}
	var favoriteIDs []uint
	err := r.db.WithContext(ctx).
		Model(&models.Favorite{}).
		Where("user_id = ? AND picture_id IN ?", userID, pictureIDs).
		Pluck("picture_id", &favoriteIDs).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return favoriteIDs, nil
}

// ListFavorites returns every picture the user has favorited, unpaginated.
func (r *pictureRepository) ListFavorites(ctx context.Context, userID uint) ([]*models.Picture, error) {
	pictures := []*models.Picture{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Joins("INNER JOIN favorites ON favorites.picture_id = pictures.id").
		Where("favorites.user_id = ?", userID).
		Order("pictures.created_at DESC").
		Find(&pictures).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return pictures, nil
}

// FindFavorite returns (nil, nil) when the user has not favorited the picture.
func (r *pictureRepository) FindFavorite(ctx context.Context, userID, pictureID uint) (*models.Favorite, error) {
	var favorite models.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND picture_id = ?", userID, pictureID).
		First(&favorite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &favorite, nil
}

func (r *pictureRepository) CreateFavorite(ctx context.Context, favorite *models.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *pictureRepository) DeleteFavorite(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Favorite{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
