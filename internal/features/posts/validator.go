package posts

import (
	"errors"
	"strings"
)

const maxContentLength = 5000

// ValidateContent checks post content and returns it trimmed.
func ValidateContent(content string) (string, error) {
	content = strings.TrimSpace(content)

	if content == "" {
		return "", errors.New("content is required")
	}

	if len(content) > maxContentLength {
		return "", errors.New("content is too long")
	}

	return content, nil
}
