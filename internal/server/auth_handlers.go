package server

import (
	"picshare/internal/models"
	"picshare/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// Login handles POST /api/auth/login
//
// There is no password. Logging in with a new username registers it, logging
// in with an existing one picks up the same account.
func (s *Server) Login(c *fiber.Ctx) error {
	ctx := c.Context()

	var req struct {
		Username string `json:"username"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	result, err := s.authService.Login(ctx, req.Username)
	if err != nil {
		return respondServiceError(c, err)
	}

	outcome := "existing"
	if result.Created {
		outcome = "created"
	}
	observability.LoginsTotal.WithLabelValues(outcome).Inc()

	return c.JSON(fiber.Map{
		"access_token": result.AccessToken,
		"user":         result.User,
	})
}
