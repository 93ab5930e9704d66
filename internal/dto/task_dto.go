package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTaskRequest is the payload for attaching a task to a board
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority,omitempty"`
	AssigneeID  *uuid.UUID `json:"assigneeId,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// UpdateTaskStatusRequest is the payload for a status transition
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TrackTimeRequest is the payload for logging time against a task
type TrackTimeRequest struct {
	Minutes int64 `json:"minutes"`
}

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID          uuid.UUID  `json:"id"`
	BoardID     uuid.UUID  `json:"boardId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	ReporterID  uuid.UUID  `json:"reporterId"`
	AssigneeID  *uuid.UUID `json:"assigneeId,omitempty"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	TimeSpent   int64      `json:"timeSpent"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
