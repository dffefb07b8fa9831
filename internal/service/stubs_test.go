package service

import (
	"context"

	"picshare/internal/models"
)

// stubUserRepo implements repository.UserRepository with overridable functions.
type stubUserRepo struct {
	getByID       func(ctx context.Context, id uint) (*models.User, error)
	getByUsername func(ctx context.Context, username string) (*models.User, error)
	create        func(ctx context.Context, user *models.User) error
}

func (s *stubUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByID(ctx, id)
}

func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsername(ctx, username)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error {
	return s.create(ctx, user)
}

// stubPictureRepo implements repository.PictureRepository with overridable functions.
type stubPictureRepo struct {
	create             func(ctx context.Context, picture *models.Picture) error
	getByID            func(ctx context.Context, id uint) (*models.Picture, error)
	list               func(ctx context.Context, limit, offset int) ([]*models.Picture, int64, error)
	favoritePictureIDs func(ctx context.Context, userID uint, pictureIDs []uint) ([]uint, error)
	listFavorites      func(ctx context.Context, userID uint) ([]*models.Picture, error)
	findFavorite       func(ctx context.Context, userID, pictureID uint) (*models.Favorite, error)
	createFavorite     func(ctx context.Context, favorite *models.Favorite) error
	deleteFavorite     func(ctx context.Context, id uint) error
}

func (s *stubPictureRepo) Create(ctx context.Context, picture *models.Picture) error {
	return s.create(ctx, picture)
}

func (s *stubPictureRepo) GetByID(ctx context.Context, id uint) (*models.Picture, error) {
	return s.getByID(ctx, id)
}

func (s *stubPictureRepo) List(ctx context.Context, limit, offset int) ([]*models.Picture, int64, error) {
	return s.list(ctx, limit, offset)
}

func (s *stubPictureRepo) FavoritePictureIDs(ctx context.Context, userID uint, pictureIDs []uint) ([]uint, error) {
	return s.favoritePictureIDs(ctx, userID, pictureIDs)
}

func (s *stubPictureRepo) ListFavorites(ctx context.Context, userID uint) ([]*models.Picture, error) {
	return s.listFavorites(ctx, userID)
}

func (s *stubPictureRepo) FindFavorite(ctx context.Context, userID, pictureID uint) (*models.Favorite, error) {
	return s.findFavorite(ctx, userID, pictureID)
}

func (s *stubPictureRepo) CreateFavorite(ctx context.Context, favorite *models.Favorite) error {
	return s.createFavorite(ctx, favorite)
}

func (s *stubPictureRepo) DeleteFavorite(ctx context.Context, id uint) error {
	return s.deleteFavorite(ctx, id)
}
