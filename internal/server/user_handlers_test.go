package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"picshare/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetUser(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockSetup      func(userRepo *MockUserRepository)
		expectedStatus int
	}{
		{
			name: "Found",
			path: "/users/5",
			mockSetup: func(userRepo *MockUserRepository) {
				userRepo.On("GetByID", mock.Anything, uint(5)).
					Return(&models.User{ID: 5, Username: "carol"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Not found",
			path: "/users/999",
			mockSetup: func(userRepo *MockUserRepository) {
				userRepo.On("GetByID", mock.Anything, uint(999)).
					Return(nil, models.NewNotFoundError("User", 999))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "Invalid ID",
			path:           "/users/zero",
			mockSetup:      func(*MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			tt.mockSetup(userRepo)

			s := newTestServer(userRepo, new(MockPictureRepository))
			app := fiber.New()
			app.Get("/users/:id", s.GetUser)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.path, nil))
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			if tt.expectedStatus == http.StatusOK {
				var user models.User
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
				assert.Equal(t, "carol", user.Username)
			}
		})
	}
}
