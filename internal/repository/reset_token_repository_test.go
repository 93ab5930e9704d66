package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"planpulse-api/internal/domain"
)

func insertResetToken(t *testing.T, db *gorm.DB, userID uuid.UUID, expiresAt time.Time) *domain.PasswordResetToken {
	t.Helper()
	token := &domain.PasswordResetToken{
		ID:        uuid.New(),
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
	if err := db.Create(token).Error; err != nil {
		t.Fatalf("failed to insert reset token: %v", err)
	}
	return token
}

func TestResetTokenRepository_FindByToken(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResetTokenRepository(db)
	ctx := context.Background()

	token := insertResetToken(t, db, uuid.New(), time.Now().Add(15*time.Minute))

	found, err := repo.FindByToken(ctx, token.Token)
	if err != nil {
		t.Fatalf("FindByToken() unexpected error = %v", err)
	}
	if found.ID != token.ID || found.UserID != token.UserID {
		t.Errorf("FindByToken() = %+v, want %+v", found, token)
	}

	_, err = repo.FindByToken(ctx, "nonexistent")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByToken() unknown token error = %v, want ErrRecordNotFound", err)
	}
}

func TestResetTokenRepository_OneTokenPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResetTokenRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	old := insertResetToken(t, db, userID, time.Now().Add(15*time.Minute))

	// A second token for the same user violates the slot without a prior delete
	dup := domain.NewPasswordResetToken(userID)
	dup.ID = uuid.New()
	if err := repo.Create(ctx, dup); err == nil {
		t.Error("Create() accepted a second live token for the same user")
	}

	// The issue path clears the slot first
	if err := repo.DeleteByUserID(ctx, userID); err != nil {
		t.Fatalf("DeleteByUserID() unexpected error = %v", err)
	}
	replacement := domain.NewPasswordResetToken(userID)
	replacement.ID = uuid.New()
	if err := repo.Create(ctx, replacement); err != nil {
		t.Fatalf("Create() after clearing slot unexpected error = %v", err)
	}
	if _, err := repo.FindByToken(ctx, old.Token); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByToken() for replaced token error = %v, want ErrRecordNotFound", err)
	}
}

func TestResetTokenRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResetTokenRepository(db)
	ctx := context.Background()

	token := insertResetToken(t, db, uuid.New(), time.Now().Add(15*time.Minute))

	if err := repo.Delete(ctx, token.ID); err != nil {
		t.Fatalf("Delete() unexpected error = %v", err)
	}
	if _, err := repo.FindByToken(ctx, token.Token); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByToken() after delete error = %v, want ErrRecordNotFound", err)
	}
}

func TestResetTokenRepository_DeleteExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewResetTokenRepository(db)
	ctx := context.Background()

	now := time.Now()
	insertResetToken(t, db, uuid.New(), now.Add(-time.Hour))
	insertResetToken(t, db, uuid.New(), now.Add(-time.Minute))
	live := insertResetToken(t, db, uuid.New(), now.Add(15*time.Minute))

	deleted, err := repo.DeleteExpired(ctx, now)
	if err != nil {
		t.Fatalf("DeleteExpired() unexpected error = %v", err)
	}
	if deleted != 2 {
		t.Errorf("DeleteExpired() = %d, want 2", deleted)
	}
	if _, err := repo.FindByToken(ctx, live.Token); err != nil {
		t.Errorf("FindByToken() for live token unexpected error = %v", err)
	}
}
