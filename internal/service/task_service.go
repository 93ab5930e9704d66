package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"planpulse-api/internal/domain"
	"planpulse-api/internal/dto"
	"planpulse-api/internal/repository"
	"planpulse-api/internal/response"
)

// TaskService defines the interface for task business logic
type TaskService interface {
	GetTask(ctx context.Context, taskID, requesterID uuid.UUID) (*dto.TaskResponse, error)
	GetTasksByBoard(ctx context.Context, boardID, requesterID uuid.UUID) ([]*dto.TaskResponse, error)
	UpdateTaskStatus(ctx context.Context, taskID, requesterID uuid.UUID, status string) (*dto.TaskResponse, error)
	TrackTime(ctx context.Context, taskID, requesterID uuid.UUID, minutes int64) (*dto.TaskResponse, error)
}

// taskServiceImpl is the implementation of TaskService
type taskServiceImpl struct {
	taskRepo         repository.TaskRepository
	boardRepo        repository.BoardRepository
	collaboratorRepo repository.CollaboratorRepository
	logger           *zap.Logger
}

// NewTaskService creates a new instance of TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	boardRepo repository.BoardRepository,
	collaboratorRepo repository.CollaboratorRepository,
	logger *zap.Logger,
) TaskService {
	return &taskServiceImpl{
		taskRepo:         taskRepo,
		boardRepo:        boardRepo,
		collaboratorRepo: collaboratorRepo,
		logger:           logger,
	}
}

// getAuthorizedTask loads a task and checks access via its owning board.
// Tasks have no access state of their own.
func (s *taskServiceImpl) getAuthorizedTask(ctx context.Context, taskID, requesterID uuid.UUID) (*domain.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Task not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch task", err.Error())
	}

	board, err := s.boardRepo.FindByID(ctx, task.BoardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Orphaned task; its board is gone so nobody may touch it
			return nil, response.NewNotFoundError("Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	if err := authorizeBoardAccess(ctx, s.collaboratorRepo, board, requesterID); err != nil {
		return nil, err
	}

	return task, nil
}

// GetTask retrieves a task by ID
func (s *taskServiceImpl) GetTask(ctx context.Context, taskID, requesterID uuid.UUID) (*dto.TaskResponse, error) {
	task, err := s.getAuthorizedTask(ctx, taskID, requesterID)
	if err != nil {
		return nil, err
	}
	return toTaskResponse(task), nil
}

// GetTasksByBoard lists a board's tasks
func (s *taskServiceImpl) GetTasksByBoard(ctx context.Context, boardID, requesterID uuid.UUID) ([]*dto.TaskResponse, error) {
	board, err := s.boardRepo.FindByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Board not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board", err.Error())
	}

	if err := authorizeBoardAccess(ctx, s.collaboratorRepo, board, requesterID); err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}

	responses := make([]*dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = toTaskResponse(task)
	}
	return responses, nil
}

// UpdateTaskStatus moves a task to a new workflow status. Any of the four
// statuses is reachable from any other; there is no transition graph.
func (s *taskServiceImpl) UpdateTaskStatus(ctx context.Context, taskID, requesterID uuid.UUID, status string) (*dto.TaskResponse, error) {
	if !domain.ValidTaskStatus(status) {
		return nil, response.NewValidationError("Invalid status: "+status, "")
	}

	task, err := s.getAuthorizedTask(ctx, taskID, requesterID)
	if err != nil {
		return nil, err
	}

	task.Status = domain.TaskStatus(status)
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	return toTaskResponse(task), nil
}

// TrackTime adds minutes to a task's accumulated time. Negative amounts are
// rejected; logged time never decreases.
func (s *taskServiceImpl) TrackTime(ctx context.Context, taskID, requesterID uuid.UUID, minutes int64) (*dto.TaskResponse, error) {
	if minutes < 0 {
		return nil, response.NewValidationError("Tracked time must not be negative", "")
	}

	task, err := s.getAuthorizedTask(ctx, taskID, requesterID)
	if err != nil {
		return nil, err
	}

	task.TimeSpent += minutes
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update task", err.Error())
	}

	return toTaskResponse(task), nil
}
