package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBoardRequest is the payload for creating a board
type CreateBoardRequest struct {
	Title      string `json:"title" binding:"required"`
	Visibility string `json:"visibility,omitempty"`
}

// BoardResponse represents a board in API responses
type BoardResponse struct {
	ID              uuid.UUID   `json:"id"`
	Title           string      `json:"title"`
	Visibility      string      `json:"visibility"`
	CreatorID       uuid.UUID   `json:"creatorId"`
	CollaboratorIDs []uuid.UUID `json:"collaboratorIds"`
	TaskIDs         []uuid.UUID `json:"taskIds"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

// BoardDetailResponse is BoardResponse plus the board's tasks
type BoardDetailResponse struct {
	BoardResponse
	Tasks []TaskResponse `json:"tasks"`
}
