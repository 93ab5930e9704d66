package handler

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"planpulse-api/internal/dto"
	"planpulse-api/internal/response"
)

// requesterID extracts the authenticated user id set by the auth middleware.
// Writes the 401 response itself when the id is missing.
func requesterID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authentication required")
		return uuid.Nil, false
	}
	return userID, true
}

// readProfileImage pulls an optional image file out of a multipart form.
// Returns nil with no error when the field is absent.
func readProfileImage(c *gin.Context, field string) (*dto.ProfileImageUpload, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, err
	}
	return uploadFromHeader(fileHeader)
}

func uploadFromHeader(fileHeader *multipart.FileHeader) (*dto.ProfileImageUpload, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &dto.ProfileImageUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Data:        data,
	}, nil
}
