package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"planpulse-api/internal/domain"
	"planpulse-api/internal/repository"
	"planpulse-api/internal/response"
)

// authorizeBoardAccess checks that requesterID may read or mutate the board.
// Access is granted to the creator and to collaborators; everyone else gets
// FORBIDDEN. Every board and task operation goes through this single gate.
func authorizeBoardAccess(ctx context.Context, collaboratorRepo repository.CollaboratorRepository, board *domain.Board, requesterID uuid.UUID) error {
	if board.IsCreator(requesterID) {
		return nil
	}

	_, err := collaboratorRepo.FindByBoardAndUser(ctx, board.ID, requesterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewForbiddenError("You do not have access to this board", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to check board access", err.Error())
	}
	return nil
}
