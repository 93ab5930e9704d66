package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"planpulse-api/internal/domain"
	"planpulse-api/internal/dto"
	"planpulse-api/internal/metrics"
	"planpulse-api/internal/repository"
	"planpulse-api/internal/response"
	"planpulse-api/internal/validation"
)

// BoardService defines the interface for board business logic
type BoardService interface {
	CreateBoard(ctx context.Context, creatorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error)
	GetBoard(ctx context.Context, boardID, requesterID uuid.UUID) (*dto.BoardDetailResponse, error)
	GetBoardsForUser(ctx context.Context, userID uuid.UUID) ([]*dto.BoardResponse, error)
	AddCollaborator(ctx context.Context, boardID uuid.UUID, requesterID uuid.UUID, identifier string) (*dto.BoardResponse, error)
	GetCollaboratorUsernames(ctx context.Context, boardID, requesterID uuid.UUID) ([]string, error)
	AddTaskToBoard(ctx context.Context, boardID, requesterID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	boardRepo        repository.BoardRepository
	collaboratorRepo repository.CollaboratorRepository
	taskRepo         repository.TaskRepository
	userRepo         repository.UserRepository
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	boardRepo repository.BoardRepository,
	collaboratorRepo repository.CollaboratorRepository,
	taskRepo repository.TaskRepository,
	userRepo repository.UserRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		boardRepo:        boardRepo,
		collaboratorRepo: collaboratorRepo,
		taskRepo:         taskRepo,
		userRepo:         userRepo,
		metrics:          m,
		logger:           logger,
	}
}

// CreateBoard creates a new board owned by creatorID
func (s *boardServiceImpl) CreateBoard(ctx context.Context, creatorID uuid.UUID, req *dto.CreateBoardRequest) (*dto.BoardResponse, error) {
	// Verify the creator account still exists
	exists, err := s.userRepo.ExistsByID(ctx, creatorID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return nil, response.NewNotFoundError("User not found", "")
	}

	visibility := domain.BoardVisibilityPublic
	if req.Visibility != "" {
		switch domain.BoardVisibility(req.Visibility) {
		case domain.BoardVisibilityPublic, domain.BoardVisibilityPrivate:
			visibility = domain.BoardVisibility(req.Visibility)
		default:
			return nil, response.NewValidationError("Invalid visibility: "+req.Visibility, "")
		}
	}

	board := &domain.Board{
		Title:      req.Title,
		Visibility: visibility,
		CreatorID:  creatorID,
	}

	if err := s.boardRepo.Create(ctx, board); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create board", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementBoardCreated()
	}

	return s.toBoardResponse(ctx, board)
}

// GetBoard retrieves a board with its tasks. Requester must be the creator
// or a collaborator.
func (s *boardServiceImpl) GetBoard(ctx context.Context, boardID, requesterID uuid.UUID) (*dto.BoardDetailResponse, error) {
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

	base, err := s.toBoardResponse(ctx, board)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch board tasks", err.Error())
	}

	taskResponses := make([]dto.TaskResponse, len(tasks))
	for i, task := range tasks {
		taskResponses[i] = *toTaskResponse(task)
	}

	return &dto.BoardDetailResponse{
		BoardResponse: *base,
		Tasks:         taskResponses,
	}, nil
}

// GetBoardsForUser returns every board the user created plus every board they
// collaborate on. The union is exact; membership never comes from a cache.
func (s *boardServiceImpl) GetBoardsForUser(ctx context.Context, userID uuid.UUID) ([]*dto.BoardResponse, error) {
	exists, err := s.userRepo.ExistsByID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify user", err.Error())
	}
	if !exists {
		return nil, response.NewNotFoundError("User not found", "")
	}

	created, err := s.boardRepo.FindByCreatorID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch created boards", err.Error())
	}

	collaborating, err := s.boardRepo.FindByCollaboratorID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch collaborating boards", err.Error())
	}

	seen := make(map[uuid.UUID]bool, len(created)+len(collaborating))
	boards := make([]*domain.Board, 0, len(created)+len(collaborating))
	for _, board := range append(created, collaborating...) {
		if seen[board.ID] {
			continue
		}
		seen[board.ID] = true
		boards = append(boards, board)
	}

	responses := make([]*dto.BoardResponse, 0, len(boards))
	for _, board := range boards {
		resp, err := s.toBoardResponse(ctx, board)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	return responses, nil
}

// AddCollaborator grants another user access to the board. The identifier is
// an email when it matches the email shape, a username otherwise.
func (s *boardServiceImpl) AddCollaborator(ctx context.Context, boardID uuid.UUID, requesterID uuid.UUID, identifier string) (*dto.BoardResponse, error) {
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

	// Resolve the identifier to a user
	var user *domain.User
	if validation.IsEmail(identifier) {
		user, err = s.userRepo.FindByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found: "+identifier, "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}

	// The creator already has full access and is never listed as a collaborator
	if board.IsCreator(user.ID) {
		return nil, response.NewAlreadyExistsError("User already has access to this board", "")
	}

	if _, err := s.collaboratorRepo.FindByBoardAndUser(ctx, boardID, user.ID); err == nil {
		return nil, response.NewAlreadyExistsError("User is already a collaborator on this board", "")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check membership", err.Error())
	}

	collaborator := &domain.Collaborator{
		BoardID: boardID,
		UserID:  user.ID,
	}
	if err := s.collaboratorRepo.Create(ctx, collaborator); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to add collaborator", err.Error())
	}

	// Bump the board's updated timestamp so clients see the membership change
	if err := s.boardRepo.Update(ctx, board); err != nil {
		s.logger.Warn("Failed to touch board after adding collaborator",
			zap.String("board_id", boardID.String()),
			zap.Error(err))
	}

	if s.metrics != nil {
		s.metrics.IncrementCollaboratorAdded()
	}

	return s.toBoardResponse(ctx, board)
}

// GetCollaboratorUsernames returns the usernames of the board's collaborators.
// The access check runs before anything else, so an outsider is told FORBIDDEN
// even when the list is empty. Collaborator rows whose user account has since
// been removed are silently skipped.
func (s *boardServiceImpl) GetCollaboratorUsernames(ctx context.Context, boardID, requesterID uuid.UUID) ([]string, error) {
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

	collaborators, err := s.collaboratorRepo.FindByBoardID(ctx, boardID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch collaborators", err.Error())
	}

	usernames := make([]string, 0, len(collaborators))
	for _, collaborator := range collaborators {
		user, err := s.userRepo.FindByID(ctx, collaborator.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up collaborator", err.Error())
		}
		usernames = append(usernames, user.Username)
	}

	return usernames, nil
}

// AddTaskToBoard attaches a new task to the board with the requester as
// reporter. Status always starts at TO_DO.
func (s *boardServiceImpl) AddTaskToBoard(ctx context.Context, boardID, requesterID uuid.UUID, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
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

	priority := domain.TaskPriorityLow
	if req.Priority != "" {
		if !domain.ValidTaskPriority(req.Priority) {
			return nil, response.NewValidationError("Invalid priority: "+req.Priority, "")
		}
		priority = domain.TaskPriority(req.Priority)
	}

	task := &domain.Task{
		BoardID:     boardID,
		Title:       req.Title,
		Description: req.Description,
		ReporterID:  requesterID,
		AssigneeID:  req.AssigneeID,
		Priority:    priority,
		Status:      domain.TaskStatusToDo,
		Deadline:    req.Deadline,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create task", err.Error())
	}

	// Bump the board's updated timestamp
	if err := s.boardRepo.Update(ctx, board); err != nil {
		s.logger.Warn("Failed to touch board after adding task",
			zap.String("board_id", boardID.String()),
			zap.Error(err))
	}

	if s.metrics != nil {
		s.metrics.IncrementTaskCreated()
	}

	return toTaskResponse(task), nil
}

// toBoardResponse converts a board to its response DTO, resolving the
// collaborator and task id lists from their owning tables.
func (s *boardServiceImpl) toBoardResponse(ctx context.Context, board *domain.Board) (*dto.BoardResponse, error) {
	collaborators, err := s.collaboratorRepo.FindByBoardID(ctx, board.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch collaborators", err.Error())
	}
	collaboratorIDs := make([]uuid.UUID, len(collaborators))
	for i, collaborator := range collaborators {
		collaboratorIDs[i] = collaborator.UserID
	}

	tasks, err := s.taskRepo.FindByBoardID(ctx, board.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch tasks", err.Error())
	}
	taskIDs := make([]uuid.UUID, len(tasks))
	for i, task := range tasks {
		taskIDs[i] = task.ID
	}

	return &dto.BoardResponse{
		ID:              board.ID,
		Title:           board.Title,
		Visibility:      string(board.Visibility),
		CreatorID:       board.CreatorID,
		CollaboratorIDs: collaboratorIDs,
		TaskIDs:         taskIDs,
		CreatedAt:       board.CreatedAt,
		UpdatedAt:       board.UpdatedAt,
	}, nil
}

// toTaskResponse converts a task to its response DTO
func toTaskResponse(task *domain.Task) *dto.TaskResponse {
	return &dto.TaskResponse{
		ID:          task.ID,
		BoardID:     task.BoardID,
		Title:       task.Title,
		Description: task.Description,
		ReporterID:  task.ReporterID,
		AssigneeID:  task.AssigneeID,
		Priority:    string(task.Priority),
		Status:      string(task.Status),
		TimeSpent:   task.TimeSpent,
		Deadline:    task.Deadline,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
