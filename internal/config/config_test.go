package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBase() Config {
	return Config{
		Port:       "3000",
		JWTSecret:  "a-development-secret",
		DBPassword: "password",
		Env:        "development",
	}
}

func TestValidate(t *testing.T) {
	t.Run("Development defaults pass", func(t *testing.T) {
		cfg := validBase()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("Port required", func(t *testing.T) {
		cfg := validBase()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("JWT secret required", func(t *testing.T) {
		cfg := validBase()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestValidateProductionHardening(t *testing.T) {
	strongSecret := strings.Repeat("s", 40)

	t.Run("Default secret rejected", func(t *testing.T) {
		cfg := validBase()
		cfg.Env = "production"
		cfg.JWTSecret = "your-secret-key-change-in-production"
		cfg.DBPassword = "strong-password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Short secret rejected", func(t *testing.T) {
		cfg := validBase()
		cfg.Env = "production"
		cfg.JWTSecret = "short"
		cfg.DBPassword = "strong-password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Weak DB password rejected", func(t *testing.T) {
		cfg := validBase()
		cfg.Env = "production"
		cfg.JWTSecret = strongSecret
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("Hardened config passes", func(t *testing.T) {
		cfg := validBase()
		cfg.Env = "production"
		cfg.JWTSecret = strongSecret
		cfg.DBPassword = "strong-password"
		cfg.DBSSLMode = "require"
		assert.NoError(t, cfg.Validate())
	})
}

func TestIsProduction(t *testing.T) {
	tests := []struct {
		env  string
		want bool
	}{
		{"production", true},
		{"prod", true},
		{"development", false},
		{"test", false},
		{"", false},
	}

	for _, tt := range tests {
		cfg := Config{Env: tt.env}
		assert.Equal(t, tt.want, cfg.IsProduction(), "env=%q", tt.env)
	}
}
