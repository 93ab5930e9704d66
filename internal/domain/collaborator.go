package domain

import "github.com/google/uuid"

// Collaborator grants a user mutation access to a board without making them
// its creator. The unique (board_id, user_id) index enforces set semantics;
// the creator is never inserted here.
type Collaborator struct {
	BaseModel
	BoardID uuid.UUID `gorm:"type:uuid;not null;index:idx_collaborators_board_id;uniqueIndex:uq_collaborators_board_user" json:"boardId"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_collaborators_user_id;uniqueIndex:uq_collaborators_board_user" json:"userId"`
}

// TableName specifies the table name for Collaborator
func (Collaborator) TableName() string {
	return "collaborators"
}
