// Package service implements the application's business logic.
package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"picshare/internal/models"
	"picshare/internal/repository"
	"picshare/internal/validation"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenIssuer and TokenAudience identify tokens minted by this API.
	TokenIssuer   = "picshare-api"
	TokenAudience = "picshare-client"

	tokenLifetime = 7 * 24 * time.Hour
)

// AuthService issues identities for usernames. Logging in with an unseen username
// creates the user.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

// LoginResult carries the outcome of a login.
type LoginResult struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
	Created     bool         `json:"-"`
}

// NewAuthService returns a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{userRepo: userRepo, jwtSecret: jwtSecret}
}

// Login finds or creates the user for the given username and returns a signed
// token referencing it. A second login with the same username returns the same
// user and creates no new row.
func (s *AuthService) Login(ctx context.Context, username string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if err := validation.ValidateUsername(username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	created := false
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &models.User{Username: username}
		if createErr := s.userRepo.Create(ctx, user); createErr != nil {
			// A concurrent login may have won the race on the unique username
			// index; fall back to the row it created.
			existing, lookupErr := s.userRepo.GetByUsername(ctx, username)
			if lookupErr != nil || existing == nil {
				return nil, createErr
			}
			user = existing
		} else {
			created = true
		}
	}

	token, err := s.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &LoginResult{AccessToken: token, User: user, Created: created}, nil
}

// GenerateToken creates a signed JWT for the given user ID and username.
func (s *AuthService) GenerateToken(userID uint, username string) (string, error) {
	if s.jwtSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(userID), 10), // Subject (user ID as string)
		"username": username,                               // Username (cached in token)
		"iss":      TokenIssuer,                            // Issuer
		"aud":      TokenAudience,                          // Audience
		"exp":      now.Add(tokenLifetime).Unix(),          // Expiration (7 days)
		"iat":      now.Unix(),                             // Issued at
		"nbf":      now.Unix(),                             // Not before
		"jti":      generateJTI(),                          // JWT ID (unique identifier)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
