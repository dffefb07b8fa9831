package server

import (
	"picshare/internal/models"
	"picshare/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// CreatePicture handles POST /api/pictures
func (s *Server) CreatePicture(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	picture, err := s.pictureService.CreatePicture(ctx, userID, req.Title, req.URL)
	if err != nil {
		return respondServiceError(c, err)
	}

	observability.PicturesCreated.Inc()
	return c.Status(fiber.StatusCreated).JSON(picture)
}

// GetPictures handles GET /api/pictures
//
// The response is a two-element array of [items, totalCount], which is what
// the frontend pagination expects. Anonymous requests get no favorite flags;
// a valid bearer token upgrades the page to the personalized variant.
func (s *Server) GetPictures(c *fiber.Ctx) error {
	ctx := c.Context()
	page := parsePagination(c)

	if userID, ok := s.optionalUserID(c); ok {
		pictures, total, err := s.pictureService.ListPicturesForUser(ctx, userID, page.Limit, page.Offset)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON([]interface{}{pictures, total})
	}

	pictures, total, err := s.pictureService.ListPictures(ctx, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON([]interface{}{pictures, total})
}

// GetSecurePictures handles GET /api/pictures/secure
//
// Same page shape as GetPictures but authentication is mandatory, so the
// favorite flags are always present.
func (s *Server) GetSecurePictures(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	page := parsePagination(c)

	pictures, total, err := s.pictureService.ListPicturesForUser(ctx, userID, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON([]interface{}{pictures, total})
}

// GetFavorites handles GET /api/pictures/favorites
func (s *Server) GetFavorites(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	pictures, err := s.pictureService.ListFavorites(ctx, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(pictures)
}

// ToggleFavorite handles POST /api/pictures/:id/favorite
func (s *Server) ToggleFavorite(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	pictureID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	added, err := s.pictureService.ToggleFavorite(ctx, pictureID, userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	action := "removed"
	if added {
		action = "added"
	}
	observability.FavoriteToggles.WithLabelValues(action).Inc()

	return c.JSON(fiber.Map{
		"message": "Favorite toggled successfully",
	})
}
