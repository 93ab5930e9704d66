package domain

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetTokenTTL is how long a reset token stays redeemable.
const PasswordResetTokenTTL = 15 * time.Minute

// PasswordResetToken is a single-use credential for the password-reset flow.
// The unique user_id index models the one-live-token-per-user slot; issuing a
// new token replaces any prior one. A token is never updated in place, only
// created and deleted.
type PasswordResetToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Token     string    `gorm:"type:varchar(64);uniqueIndex:uq_reset_tokens_token;not null" json:"token"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_reset_tokens_user_id;not null" json:"userId"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	ExpiresAt time.Time `gorm:"not null;index:idx_reset_tokens_expires_at" json:"expiresAt"`
}

// TableName specifies the table name for PasswordResetToken
func (PasswordResetToken) TableName() string {
	return "password_reset_tokens"
}

// NewPasswordResetToken issues a fresh token for userID with the standard TTL.
func NewPasswordResetToken(userID uuid.UUID) *PasswordResetToken {
	now := time.Now()
	return &PasswordResetToken{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(PasswordResetTokenTTL),
	}
}

// IsExpired reports whether the token is past its expiry.
func (t *PasswordResetToken) IsExpired() bool {
	return time.Now().After(t.ExpiresAt)
}
