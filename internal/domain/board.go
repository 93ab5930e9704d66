package domain

import "github.com/google/uuid"

// BoardVisibility is advisory only; access control never consults it.
type BoardVisibility string

const (
	BoardVisibilityPublic  BoardVisibility = "PUBLIC"
	BoardVisibilityPrivate BoardVisibility = "PRIVATE"
)

// Board represents a task board owned by its creator and shared with
// collaborators. CreatorID is stamped once at creation; it only ever changes
// when the creator account is deleted and a collaborator is promoted.
type Board struct {
	BaseModel
	Title         string          `gorm:"type:varchar(255);not null" json:"title"`
	Visibility    BoardVisibility `gorm:"type:varchar(20);not null;default:'PUBLIC'" json:"visibility"`
	CreatorID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_boards_creator_id" json:"creatorId"`
	Collaborators []Collaborator  `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"collaborators,omitempty"`
	Tasks         []Task          `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
}

// TableName specifies the table name for Board
func (Board) TableName() string {
	return "boards"
}

// IsCreator reports whether userID created this board.
func (b *Board) IsCreator(userID uuid.UUID) bool {
	return b.CreatorID == userID
}
