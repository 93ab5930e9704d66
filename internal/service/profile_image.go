package service

import (
	"bytes"
	"path/filepath"
	"strings"

	"planpulse-api/internal/dto"
	"planpulse-api/internal/response"
)

// maxProfileImageSize caps profile image uploads at 5 MiB
const maxProfileImageSize = 5 << 20

// imageTypeByMIME maps the accepted content types to a canonical image type
var imageTypeByMIME = map[string]string{
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
	"image/bmp":  "bmp",
}

// imageTypeByExtension maps the accepted file extensions to a canonical image type
var imageTypeByExtension = map[string]string{
	".jpg":  "jpeg",
	".jpeg": "jpeg",
	".png":  "png",
	".gif":  "gif",
	".webp": "webp",
	".bmp":  "bmp",
}

// detectImageType sniffs the leading bytes of data and returns the canonical
// image type, or empty when no known signature matches.
func detectImageType(data []byte) string {
	switch {
	case len(data) >= 3 && bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return "jpeg"
	case len(data) >= 8 && bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}):
		return "png"
	case len(data) >= 4 && bytes.HasPrefix(data, []byte("GIF8")):
		return "gif"
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "webp"
	case len(data) >= 2 && bytes.HasPrefix(data, []byte("BM")):
		return "bmp"
	}
	return ""
}

// validateProfileImage enforces the upload contract: size bounds, a content
// type and extension from the allow-lists, a recognizable magic number, and
// agreement between what the file claims to be and what its bytes say it is.
// Returns the lowercased file extension for key generation.
func validateProfileImage(upload *dto.ProfileImageUpload) (string, error) {
	if upload == nil || len(upload.Data) == 0 {
		return "", response.NewValidationError("Profile image is empty", "")
	}
	if upload.Size > maxProfileImageSize {
		return "", response.NewValidationError("Profile image exceeds the maximum allowed size", "")
	}

	mimeType := strings.ToLower(strings.TrimSpace(upload.ContentType))
	claimedByMIME, ok := imageTypeByMIME[mimeType]
	if !ok {
		return "", response.NewValidationError("Unsupported image content type: "+upload.ContentType, "")
	}

	ext := strings.ToLower(filepath.Ext(upload.FileName))
	claimedByExt, ok := imageTypeByExtension[ext]
	if !ok {
		return "", response.NewValidationError("Unsupported image file extension", "")
	}

	detected := detectImageType(upload.Data)
	if detected == "" {
		return "", response.NewValidationError("File content is not a recognized image", "")
	}

	// A JPEG payload named .png (or declared image/png) is rejected outright
	if detected != claimedByMIME || detected != claimedByExt {
		return "", response.NewValidationError("Image content does not match its declared type", "")
	}

	return ext, nil
}
