package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskPriority represents the priority of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

// TaskStatus represents the workflow status of a task
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "TO_DO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusInReview   TaskStatus = "IN_REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
)

// ValidTaskStatus reports whether s is one of the four workflow statuses.
// Any member of the set is a legal transition target from any current status.
func ValidTaskStatus(s string) bool {
	switch TaskStatus(s) {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusInReview, TaskStatusDone:
		return true
	}
	return false
}

// ValidTaskPriority reports whether p is a known priority.
func ValidTaskPriority(p string) bool {
	switch TaskPriority(p) {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task belongs to exactly one board. Tasks carry no access-control state of
// their own; authorization is always delegated to the owning board.
type Task struct {
	BaseModel
	BoardID     uuid.UUID    `gorm:"type:uuid;not null;index:idx_tasks_board_id" json:"boardId"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description string       `gorm:"type:text" json:"description"`
	ReporterID  uuid.UUID    `gorm:"type:uuid;not null;index:idx_tasks_reporter_id" json:"reporterId"`
	AssigneeID  *uuid.UUID   `gorm:"type:uuid;index:idx_tasks_assignee_id" json:"assigneeId,omitempty"`
	Priority    TaskPriority `gorm:"type:varchar(20);not null;default:'LOW'" json:"priority"`
	Status      TaskStatus   `gorm:"type:varchar(20);not null;default:'TO_DO'" json:"status"`
	TimeSpent   int64        `gorm:"not null;default:0" json:"timeSpent"` // minutes
	Deadline    *time.Time   `gorm:"type:timestamp" json:"deadline,omitempty"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}
