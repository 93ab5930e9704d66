package handler

import (
	"context"

	"github.com/google/uuid"

	"planpulse-api/internal/dto"
	"planpulse-api/internal/service"
)

var _ service.UserService = (*MockUserService)(nil)

// MockUserService is a mock implementation of service.UserService
type MockUserService struct {
	RegisterFunc               func(ctx context.Context, req *dto.RegisterRequest, image *dto.ProfileImageUpload) (*dto.AuthResponse, error)
	AuthenticateFunc           func(ctx context.Context, identifier, password string) (*dto.AuthResponse, error)
	GetUserFunc                func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	GetUserByEmailFunc         func(ctx context.Context, emailAddr string, requesterID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfileFunc          func(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	UpdateProfileImageFunc     func(ctx context.Context, userID uuid.UUID, image *dto.ProfileImageUpload) (*dto.UserResponse, error)
	ChangePasswordFunc         func(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error
	DeleteUserFunc             func(ctx context.Context, userID uuid.UUID) error
	InitiatePasswordResetFunc  func(ctx context.Context, emailAddr string) error
	ResetPasswordWithTokenFunc func(ctx context.Context, req *dto.ResetPasswordRequest) error
}

func (m *MockUserService) Register(ctx context.Context, req *dto.RegisterRequest, image *dto.ProfileImageUpload) (*dto.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req, image)
	}
	return &dto.AuthResponse{Token: "token", UserID: uuid.NewString()}, nil
}

func (m *MockUserService) Authenticate(ctx context.Context, identifier, password string) (*dto.AuthResponse, error) {
	if m.AuthenticateFunc != nil {
		return m.AuthenticateFunc(ctx, identifier, password)
	}
	return &dto.AuthResponse{Token: "token", UserID: uuid.NewString()}, nil
}

func (m *MockUserService) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, userID)
	}
	return &dto.UserResponse{ID: userID}, nil
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, emailAddr string, requesterID uuid.UUID) (*dto.UserResponse, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, emailAddr, requesterID)
	}
	return &dto.UserResponse{ID: requesterID, Email: emailAddr}, nil
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, userID, req)
	}
	return &dto.UserResponse{ID: userID}, nil
}

func (m *MockUserService) UpdateProfileImage(ctx context.Context, userID uuid.UUID, image *dto.ProfileImageUpload) (*dto.UserResponse, error) {
	if m.UpdateProfileImageFunc != nil {
		return m.UpdateProfileImageFunc(ctx, userID, image)
	}
	return &dto.UserResponse{ID: userID}, nil
}

func (m *MockUserService) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, userID, req)
	}
	return nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, userID)
	}
	return nil
}

func (m *MockUserService) InitiatePasswordReset(ctx context.Context, emailAddr string) error {
	if m.InitiatePasswordResetFunc != nil {
		return m.InitiatePasswordResetFunc(ctx, emailAddr)
	}
	return nil
}

func (m *MockUserService) ResetPasswordWithToken(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if m.ResetPasswordWithTokenFunc != nil {
		return m.ResetPasswordWithTokenFunc(ctx, req)
	}
	return nil
}
