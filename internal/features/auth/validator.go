package auth

import (
	"errors"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSignup checks the signup payload and normalizes its fields in place.
func ValidateSignup(req *SignupRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return errors.New("please provide name, email, and password")
	}

	if !emailRegex.MatchString(req.Email) {
		return errors.New("invalid email address")
	}

	if len(req.Password) < 6 {
		return errors.New("password must be at least 6 characters")
	}

	return nil
}

// ValidateLogin checks the login payload.
func ValidateLogin(req *LoginRequest) error {
	req.Email = strings.TrimSpace(req.Email)

	if req.Email == "" || req.Password == "" {
		return errors.New("please provide email and password")
	}

	return nil
}
