package service

import (
	"context"

	"picshare/internal/models"
	"picshare/internal/notifications"
	"picshare/internal/repository"
	"picshare/internal/validation"
)

// PictureService implements the feed and favorite operations.
type PictureService struct {
	pictureRepo repository.PictureRepository
	userRepo    repository.UserRepository
	notifier    *notifications.Notifier
}

// NewPictureService returns a new PictureService. notifier may be nil.
func NewPictureService(pictureRepo repository.PictureRepository, userRepo repository.UserRepository, notifier *notifications.Notifier) *PictureService {
	return &PictureService{pictureRepo: pictureRepo, userRepo: userRepo, notifier: notifier}
}

// CreatePicture validates the input, stores the picture for the given owner and
// returns it with the owner preloaded.
func (s *PictureService) CreatePicture(ctx context.Context, userID uint, title, url string) (*models.Picture, error) {
	if err := validation.ValidatePictureTitle(title); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePictureURL(url); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	// The owner comes from a verified token but may have been removed since the
	// token was issued.
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	picture := &models.Picture{
		Title:  title,
		URL:    url,
		UserID: userID,
	}
	if err := s.pictureRepo.Create(ctx, picture); err != nil {
		return nil, err
	}

	created, err := s.pictureRepo.GetByID(ctx, picture.ID)
	if err != nil {
		return nil, err
	}

	s.notifier.PublishPictureCreated(ctx, created)
	return created, nil
}

// ListPictures returns one feed page plus the total picture count.
func (s *PictureService) ListPictures(ctx context.Context, limit, offset int) ([]*models.Picture, int64, error) {
	return s.pictureRepo.List(ctx, limit, offset)
}

// ListPicturesForUser returns one feed page with each item's IsFavorite flag set
// for the given viewer. The flags come from a single batched query per page.
func (s *PictureService) ListPicturesForUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Picture, int64, error) {
	pictures, total, err := s.pictureRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	if len(pictures) == 0 {
		return pictures, total, nil
	}

	ids := make([]uint, 0, len(pictures))
	for _, p := range pictures {
		ids = append(ids, p.ID)
	}
	favoriteIDs, err := s.pictureRepo.FavoritePictureIDs(ctx, userID, ids)
	if err != nil {
		return nil, 0, err
	}

	favorited := make(map[uint]bool, len(favoriteIDs))
	for _, id := range favoriteIDs {
		favorited[id] = true
	}
	for _, p := range pictures {
		p.IsFavorite = favorited[p.ID]
	}
	return pictures, total, nil
}

// ListFavorites returns every picture the user has favorited, flagged as such.
func (s *PictureService) ListFavorites(ctx context.Context, userID uint) ([]*models.Picture, error) {
	pictures, err := s.pictureRepo.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, p := range pictures {
		p.IsFavorite = true
	}
	return pictures, nil
}

// ToggleFavorite flips the user's favorite for the picture and reports whether
// it was added. The picture must exist; the favorite lookup and write are not
// atomic, concurrent toggles for the same pair can leave duplicate rows.
func (s *PictureService) ToggleFavorite(ctx context.Context, pictureID, userID uint) (bool, error) {
	picture, err := s.pictureRepo.GetByID(ctx, pictureID)
	if err != nil {
		return false, err
	}

	existing, err := s.pictureRepo.FindFavorite(ctx, userID, picture.ID)
	if err != nil {
		return false, err
	}

	if existing != nil {
		if err := s.pictureRepo.DeleteFavorite(ctx, existing.ID); err != nil {
			return false, err
		}
		s.notifier.PublishFavoriteToggled(ctx, userID, picture.ID, false)
		return false, nil
	}

	favorite := &models.Favorite{UserID: userID, PictureID: picture.ID}
	if err := s.pictureRepo.CreateFavorite(ctx, favorite); err != nil {
		return false, err
	}
	s.notifier.PublishFavoriteToggled(ctx, userID, picture.ID, true)
	return true, nil
}
