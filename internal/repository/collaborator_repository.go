package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"planpulse-api/internal/domain"
)

// CollaboratorRepository defines the interface for board membership data access
type CollaboratorRepository interface {
	Create(ctx context.Context, collaborator *domain.Collaborator) error
	FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Collaborator, error)
	FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.Collaborator, error)
	CountByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error)
	Delete(ctx context.Context, boardID, userID uuid.UUID) error
	DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error
}

// collaboratorRepositoryImpl is the GORM implementation of CollaboratorRepository
type collaboratorRepositoryImpl struct {
	db *gorm.DB
}

// NewCollaboratorRepository creates a new instance of CollaboratorRepository
func NewCollaboratorRepository(db *gorm.DB) CollaboratorRepository {
	return &collaboratorRepositoryImpl{db: db}
}

func (r *collaboratorRepositoryImpl) Create(ctx context.Context, collaborator *domain.Collaborator) error {
	return r.db.WithContext(ctx).Create(collaborator).Error
}

// FindByBoardID returns the board's collaborators ordered by join time, so
// index zero is always the longest-standing member (the promotion candidate).
func (r *collaboratorRepositoryImpl) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Collaborator, error) {
	var collaborators []*domain.Collaborator
	if err := r.db.WithContext(ctx).
		Where("board_id = ?", boardID).
		Order("created_at ASC").
		Find(&collaborators).Error; err != nil {
		return nil, err
	}
	return collaborators, nil
}

func (r *collaboratorRepositoryImpl) FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.Collaborator, error) {
	var collaborator domain.Collaborator
	if err := r.db.WithContext(ctx).
		First(&collaborator, "board_id = ? AND user_id = ?", boardID, userID).Error; err != nil {
		return nil, err
	}
	return &collaborator, nil
}

func (r *collaboratorRepositoryImpl) CountByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Collaborator{}).
		Where("board_id = ?", boardID).
		Count(&count).Error
	return count, err
}

func (r *collaboratorRepositoryImpl) Delete(ctx context.Context, boardID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&domain.Collaborator{}, "board_id = ? AND user_id = ?", boardID, userID).Error
}

func (r *collaboratorRepositoryImpl) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&domain.Collaborator{}, "board_id = ?", boardID).Error
}
