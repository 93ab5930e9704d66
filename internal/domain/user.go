package domain

// User represents a registered account.
//
// Board membership is intentionally not cached on the user: access decisions
// are always derived from the board side (Board.CreatorID plus the
// collaborators table), so there is no boardIds back-reference to keep in
// sync.
type User struct {
	BaseModel
	FirstName       string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName        string `gorm:"type:varchar(100);not null" json:"lastName"`
	Email           string `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null" json:"email"`
	Username        string `gorm:"type:varchar(50);uniqueIndex:uq_users_username;not null" json:"username"`
	PasswordHash    string `gorm:"type:varchar(255);not null" json:"-"`
	ProfileImageKey string `gorm:"type:text" json:"-"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
