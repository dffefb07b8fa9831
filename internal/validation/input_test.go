package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Simple", "alice", false},
		{"With digits and symbols", "alice_99.dev-x", false},
		{"Empty", "", true},
		{"Only whitespace", "   ", true},
		{"Spaces inside", "alice smith", true},
		{"Emoji", "alice🦊", true},
		{"At limit", strings.Repeat("a", 30), false},
		{"Over limit", strings.Repeat("a", 31), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePictureTitle(t *testing.T) {
	assert.NoError(t, ValidatePictureTitle("A sunset"))
	assert.Error(t, ValidatePictureTitle(""))
	assert.Error(t, ValidatePictureTitle("   "))
	assert.Error(t, ValidatePictureTitle(strings.Repeat("x", 201)))
	assert.NoError(t, ValidatePictureTitle(strings.Repeat("x", 200)))
}

func TestValidatePictureURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"HTTPS", "https://example.com/cat.jpg", false},
		{"HTTP", "http://example.com/cat.jpg", false},
		{"Empty", "", true},
		{"Relative", "/cat.jpg", true},
		{"No scheme", "example.com/cat.jpg", true},
		{"FTP", "ftp://example.com/cat.jpg", true},
		{"Garbage", "not a url", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePictureURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
