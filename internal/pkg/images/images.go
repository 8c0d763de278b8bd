package images

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
)

// Uploaded images are stored inline in the owning document as base64, so the
// size cap doubles as a document-size guard (MongoDB documents max out at 16MB).
var (
	AllowedImageTypes = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

	MaxImageSize = int64(5 * 1024 * 1024) // 5MB
)

// ValidateFile checks the upload's extension and size before it is read.
func ValidateFile(header *multipart.FileHeader) error {
	if header.Size > MaxImageSize {
		return fmt.Errorf("image file size exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !isAllowed(ext) {
		return fmt.Errorf("invalid image file type: %s. Allowed types: %s", ext, strings.Join(AllowedImageTypes, ", "))
	}

	return nil
}

// Encode reads the uploaded file and returns it base64-encoded for inline
// storage.
func Encode(file multipart.File) (string, error) {
	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if int64(len(data)) > MaxImageSize {
		return "", fmt.Errorf("image file size exceeds maximum allowed size of %d MB", MaxImageSize/(1024*1024))
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// EncodeHeader opens, validates and encodes a multipart upload in one step.
func EncodeHeader(header *multipart.FileHeader) (string, error) {
	if err := ValidateFile(header); err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	return Encode(file)
}

func isAllowed(ext string) bool {
	for _, allowed := range AllowedImageTypes {
		if ext == allowed {
			return true
		}
	}
	return false
}
