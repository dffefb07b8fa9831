// Package validation contains input validation rules for API payloads.
package validation

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

const (
	maxUsernameLen = 30
	maxTitleLen    = 200
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateUsername checks that a login username is present and well-formed.
func ValidateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username is required")
	}
	if len(username) > maxUsernameLen {
		return errors.New("username too long (max 30 characters)")
	}
	if !usernamePattern.MatchString(username) {
		return errors.New("username may only contain letters, digits, '.', '-' and '_'")
	}
	return nil
}

// ValidatePictureTitle checks that a picture title is present and within bounds.
func ValidatePictureTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required")
	}
	if len(title) > maxTitleLen {
		return errors.New("title too long (max 200 characters)")
	}
	return nil
}

// ValidatePictureURL checks that a picture URL is a syntactically valid absolute
// http(s) URL.
func ValidatePictureURL(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errors.New("url is required")
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return errors.New("url must be a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("url must use http or https")
	}
	if u.Host == "" {
		return errors.New("url must include a host")
	}
	return nil
}
