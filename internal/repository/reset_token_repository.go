package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"planpulse-api/internal/domain"
)

// ResetTokenRepository defines the interface for password-reset token data access
type ResetTokenRepository interface {
	Create(ctx context.Context, token *domain.PasswordResetToken) error
	FindByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// resetTokenRepositoryImpl is the GORM implementation of ResetTokenRepository
type resetTokenRepositoryImpl struct {
	db *gorm.DB
}

// NewResetTokenRepository creates a new instance of ResetTokenRepository
func NewResetTokenRepository(db *gorm.DB) ResetTokenRepository {
	return &resetTokenRepositoryImpl{db: db}
}

func (r *resetTokenRepositoryImpl) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *resetTokenRepositoryImpl) FindByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	var reset domain.PasswordResetToken
	if err := r.db.WithContext(ctx).First(&reset, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *resetTokenRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.PasswordResetToken{}, "id = ?", id).Error
}

// DeleteByUserID clears the user's token slot. Called before issuing a new
// token so at most one token is ever live per user.
func (r *resetTokenRepositoryImpl) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&domain.PasswordResetToken{}, "user_id = ?", userID).Error
}

// DeleteExpired prunes tokens whose expiry is before now and returns how many
// rows were removed. Redemption-time checks remain the authoritative cleanup;
// this only keeps the table from accumulating dead rows.
func (r *resetTokenRepositoryImpl) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&domain.PasswordResetToken{})
	return result.RowsAffected, result.Error
}
