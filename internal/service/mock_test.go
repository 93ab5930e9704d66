package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"planpulse-api/internal/domain"
	"planpulse-api/internal/metrics"
)

// newTestMetrics registers metrics on a throwaway registry so tests never
// collide on the default one
func newTestMetrics() *metrics.Metrics {
	return metrics.NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *domain.User) error
	FindByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	FindByEmailFunc      func(ctx context.Context, email string) (*domain.User, error)
	FindByUsernameFunc   func(ctx context.Context, username string) (*domain.User, error)
	ExistsByIDFunc       func(ctx context.Context, id uuid.UUID) (bool, error)
	ExistsByEmailFunc    func(ctx context.Context, email string) (bool, error)
	ExistsByUsernameFunc func(ctx context.Context, username string) (bool, error)
	UpdateFunc           func(ctx context.Context, user *domain.User) error
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockUserRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, id)
	}
	return false, nil
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	if m.ExistsByUsernameFunc != nil {
		return m.ExistsByUsernameFunc(ctx, username)
	}
	return false, nil
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBoardRepository is a mock implementation of BoardRepository
type MockBoardRepository struct {
	CreateFunc               func(ctx context.Context, board *domain.Board) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.Board, error)
	FindByCreatorIDFunc      func(ctx context.Context, creatorID uuid.UUID) ([]*domain.Board, error)
	FindByCollaboratorIDFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error)
	UpdateFunc               func(ctx context.Context, board *domain.Board) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Board, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockBoardRepository) FindByCreatorID(ctx context.Context, creatorID uuid.UUID) ([]*domain.Board, error) {
	if m.FindByCreatorIDFunc != nil {
		return m.FindByCreatorIDFunc(ctx, creatorID)
	}
	return nil, nil
}

func (m *MockBoardRepository) FindByCollaboratorID(ctx context.Context, userID uuid.UUID) ([]*domain.Board, error) {
	if m.FindByCollaboratorIDFunc != nil {
		return m.FindByCollaboratorIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCollaboratorRepository is a mock implementation of CollaboratorRepository
type MockCollaboratorRepository struct {
	CreateFunc             func(ctx context.Context, collaborator *domain.Collaborator) error
	FindByBoardIDFunc      func(ctx context.Context, boardID uuid.UUID) ([]*domain.Collaborator, error)
	FindByBoardAndUserFunc func(ctx context.Context, boardID, userID uuid.UUID) (*domain.Collaborator, error)
	CountByBoardIDFunc     func(ctx context.Context, boardID uuid.UUID) (int64, error)
	DeleteFunc             func(ctx context.Context, boardID, userID uuid.UUID) error
	DeleteByBoardIDFunc    func(ctx context.Context, boardID uuid.UUID) error
}

func (m *MockCollaboratorRepository) Create(ctx context.Context, collaborator *domain.Collaborator) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, collaborator)
	}
	return nil
}

func (m *MockCollaboratorRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Collaborator, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockCollaboratorRepository) FindByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*domain.Collaborator, error) {
	if m.FindByBoardAndUserFunc != nil {
		return m.FindByBoardAndUserFunc(ctx, boardID, userID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockCollaboratorRepository) CountByBoardID(ctx context.Context, boardID uuid.UUID) (int64, error) {
	if m.CountByBoardIDFunc != nil {
		return m.CountByBoardIDFunc(ctx, boardID)
	}
	return 0, nil
}

func (m *MockCollaboratorRepository) Delete(ctx context.Context, boardID, userID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, boardID, userID)
	}
	return nil
}

func (m *MockCollaboratorRepository) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error {
	if m.DeleteByBoardIDFunc != nil {
		return m.DeleteByBoardIDFunc(ctx, boardID)
	}
	return nil
}

// MockTaskRepository is a mock implementation of TaskRepository
type MockTaskRepository struct {
	CreateFunc          func(ctx context.Context, task *domain.Task) error
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	FindByBoardIDFunc   func(ctx context.Context, boardID uuid.UUID) ([]*domain.Task, error)
	UpdateFunc          func(ctx context.Context, task *domain.Task) error
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	DeleteByBoardIDFunc func(ctx context.Context, boardID uuid.UUID) error
}

func (m *MockTaskRepository) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockTaskRepository) FindByBoardID(ctx context.Context, boardID uuid.UUID) ([]*domain.Task, error) {
	if m.FindByBoardIDFunc != nil {
		return m.FindByBoardIDFunc(ctx, boardID)
	}
	return nil, nil
}

func (m *MockTaskRepository) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, task)
	}
	return nil
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockTaskRepository) DeleteByBoardID(ctx context.Context, boardID uuid.UUID) error {
	if m.DeleteByBoardIDFunc != nil {
		return m.DeleteByBoardIDFunc(ctx, boardID)
	}
	return nil
}

// MockResetTokenRepository is a mock implementation of ResetTokenRepository
type MockResetTokenRepository struct {
	CreateFunc         func(ctx context.Context, token *domain.PasswordResetToken) error
	FindByTokenFunc    func(ctx context.Context, token string) (*domain.PasswordResetToken, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	DeleteByUserIDFunc func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFunc  func(ctx context.Context, now time.Time) (int64, error)
}

func (m *MockResetTokenRepository) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, token)
	}
	return nil
}

func (m *MockResetTokenRepository) FindByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	if m.FindByTokenFunc != nil {
		return m.FindByTokenFunc(ctx, token)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *MockResetTokenRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockResetTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *MockResetTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, now)
	}
	return 0, nil
}

// MockEmailSender is a mock implementation of email.Sender
type MockEmailSender struct {
	SendFunc                   func(ctx context.Context, to, subject, body string) error
	SendPasswordResetEmailFunc func(ctx context.Context, to, token string) error
}

func (m *MockEmailSender) Send(ctx context.Context, to, subject, body string) error {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, to, subject, body)
	}
	return nil
}

func (m *MockEmailSender) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	if m.SendPasswordResetEmailFunc != nil {
		return m.SendPasswordResetEmailFunc(ctx, to, token)
	}
	return nil
}
