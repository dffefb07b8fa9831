package server

import (
	"context"

	"picshare/internal/config"
	"picshare/internal/models"
	"picshare/internal/service"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockPictureRepository is a mock of the PictureRepository interface
type MockPictureRepository struct {
	mock.Mock
}

func (m *MockPictureRepository) Create(ctx context.Context, picture *models.Picture) error {
	args := m.Called(ctx, picture)
	return args.Error(0)
}

func (m *MockPictureRepository) GetByID(ctx context.Context, id uint) (*models.Picture, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Picture), args.Error(1)
}

func (m *MockPictureRepository) List(ctx context.Context, limit, offset int) ([]*models.Picture, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*models.Picture), args.Get(1).(int64), args.Error(2)
}

func (m *MockPictureRepository) FavoritePictureIDs(ctx context.Context, userID uint, pictureIDs []uint) ([]uint, error) {
	args := m.Called(ctx, userID, pictureIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

func (m *MockPictureRepository) ListFavorites(ctx context.Context, userID uint) ([]*models.Picture, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*models.Picture), args.Error(1)
}

func (m *MockPictureRepository) FindFavorite(ctx context.Context, userID, pictureID uint) (*models.Favorite, error) {
	args := m.Called(ctx, userID, pictureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Favorite), args.Error(1)
}

func (m *MockPictureRepository) CreateFavorite(ctx context.Context, favorite *models.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockPictureRepository) DeleteFavorite(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const testJWTSecret = "handler-test-secret"

// newTestServer wires real services over the given mocks, no DB or Redis.
func newTestServer(userRepo *MockUserRepository, pictureRepo *MockPictureRepository) *Server {
	s := &Server{
		config:      &config.Config{JWTSecret: testJWTSecret, Port: "3000"},
		userRepo:    userRepo,
		pictureRepo: pictureRepo,
	}
	s.authService = service.NewAuthService(userRepo, testJWTSecret)
	s.pictureService = service.NewPictureService(pictureRepo, userRepo, nil)
	s.userService = service.NewUserService(userRepo)
	return s
}
