package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest carries the multipart registration fields
type RegisterRequest struct {
	FirstName       string `form:"firstname"`
	LastName        string `form:"lastname"`
	Username        string `form:"username"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
}

// UpdateProfileRequest carries optional multipart profile fields; empty
// values leave the stored field untouched
type UpdateProfileRequest struct {
	FirstName string `form:"firstname"`
	LastName  string `form:"lastname"`
	Username  string `form:"username"`
	Email     string `form:"email"`
}

// ProfileImageUpload is a profile image taken off a multipart request
type ProfileImageUpload struct {
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
}

// ChangePasswordRequest is the authenticated self-service password change payload
type ChangePasswordRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	Email           string    `json:"email"`
	Username        string    `json:"username"`
	ProfileImageURL string    `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
