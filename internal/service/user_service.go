package service

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"planpulse-api/internal/auth"
	"planpulse-api/internal/client"
	"planpulse-api/internal/domain"
	"planpulse-api/internal/dto"
	"planpulse-api/internal/email"
	"planpulse-api/internal/metrics"
	"planpulse-api/internal/repository"
	"planpulse-api/internal/response"
	"planpulse-api/internal/validation"
)

// bcryptCost is the work factor for password hashing
const bcryptCost = 12

// UserService defines the interface for account business logic
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, image *dto.ProfileImageUpload) (*dto.AuthResponse, error)
	Authenticate(ctx context.Context, identifier, password string) (*dto.AuthResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	GetUserByEmail(ctx context.Context, emailAddr string, requesterID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	UpdateProfileImage(ctx context.Context, userID uuid.UUID, image *dto.ProfileImageUpload) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	InitiatePasswordReset(ctx context.Context, emailAddr string) error
	ResetPasswordWithToken(ctx context.Context, req *dto.ResetPasswordRequest) error
}

// UserServiceConfig carries the auth and throttling settings the service needs
type UserServiceConfig struct {
	JWTSecret            string
	JWTTTL               time.Duration
	ResetRequestCooldown time.Duration
}

// userServiceImpl is the implementation of UserService
type userServiceImpl struct {
	userRepo         repository.UserRepository
	boardRepo        repository.BoardRepository
	collaboratorRepo repository.CollaboratorRepository
	taskRepo         repository.TaskRepository
	resetTokenRepo   repository.ResetTokenRepository
	imageStore       client.ImageStore
	emailSender      email.Sender
	redisClient      *redis.Client
	config           UserServiceConfig
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(
	userRepo repository.UserRepository,
	boardRepo repository.BoardRepository,
	collaboratorRepo repository.CollaboratorRepository,
	taskRepo repository.TaskRepository,
	resetTokenRepo repository.ResetTokenRepository,
	imageStore client.ImageStore,
	emailSender email.Sender,
	redisClient *redis.Client,
	config UserServiceConfig,
	m *metrics.Metrics,
	logger *zap.Logger,
) UserService {
	return &userServiceImpl{
		userRepo:         userRepo,
		boardRepo:        boardRepo,
		collaboratorRepo: collaboratorRepo,
		taskRepo:         taskRepo,
		resetTokenRepo:   resetTokenRepo,
		imageStore:       imageStore,
		emailSender:      emailSender,
		redisClient:      redisClient,
		config:           config,
		metrics:          m,
		logger:           logger,
	}
}

// Register creates a new account, optionally with a profile image, and
// returns a signed token for the fresh session.
func (s *userServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest, image *dto.ProfileImageUpload) (*dto.AuthResponse, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, response.NewValidationError("First name and last name are required", "")
	}
	if !validation.ValidEmail(req.Email) {
		return nil, response.NewValidationError("Invalid email address", "")
	}
	if !validation.ValidUsername(req.Username) {
		return nil, response.NewValidationError("Username must be 3-30 characters of letters, digits, dots, underscores, or hyphens", "")
	}
	if !validation.ValidPassword(req.Password) {
		return nil, response.NewValidationError("Password must be at least 8 characters with an uppercase letter, a lowercase letter, a digit, and a special character", "")
	}
	if req.Password != req.ConfirmPassword {
		return nil, response.NewValidationError("Passwords do not match", "")
	}

	// Validate the image before touching any state
	var imageExt string
	if image != nil {
		ext, err := validateProfileImage(image)
		if err != nil {
			return nil, err
		}
		imageExt = ext
	}

	if exists, err := s.userRepo.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check email", err.Error())
	} else if exists {
		return nil, response.NewAlreadyExistsError("Email is already registered", "")
	}
	if exists, err := s.userRepo.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check username", err.Error())
	} else if exists {
		return nil, response.NewAlreadyExistsError("Username is already taken", "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}

	user := &domain.User{
		BaseModel:    domain.BaseModel{ID: uuid.New()},
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
	}

	// The image is stored before the account exists; a failed upload
	// fails the whole registration
	if image != nil {
		key := s.imageStore.GenerateFileKey(user.ID.String(), imageExt)
		if _, err := s.imageStore.UploadFile(ctx, key, bytes.NewReader(image.Data), image.ContentType); err != nil {
			s.logger.Error("Failed to upload profile image during registration",
				zap.String("user_id", user.ID.String()),
				zap.Error(err))
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store profile image", err.Error())
		}
		user.ProfileImageKey = key
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create user", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementUserRegistered()
	}

	token, err := auth.GenerateToken(user.ID, s.config.JWTSecret, s.config.JWTTTL)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to issue token", err.Error())
	}

	return &dto.AuthResponse{Token: token, UserID: user.ID.String()}, nil
}

// Authenticate verifies credentials and issues a token. The identifier is an
// email when it matches the email shape, a username otherwise.
func (s *userServiceImpl) Authenticate(ctx context.Context, identifier, password string) (*dto.AuthResponse, error) {
	var user *domain.User
	var err error
	if validation.IsEmail(identifier) {
		user, err = s.userRepo.FindByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.FindByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a bad password so the response does not leak
			// which accounts exist
			return nil, response.NewUnauthorizedError("Invalid credentials", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, response.NewUnauthorizedError("Invalid credentials", "")
	}

	token, err := auth.GenerateToken(user.ID, s.config.JWTSecret, s.config.JWTTTL)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to issue token", err.Error())
	}

	return &dto.AuthResponse{Token: token, UserID: user.ID.String()}, nil
}

// GetUser retrieves a user's own profile
func (s *userServiceImpl) GetUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}
	return s.toUserResponse(user), nil
}

// GetUserByEmail retrieves a profile by email address. Users may only look
// up their own account this way.
func (s *userServiceImpl) GetUserByEmail(ctx context.Context, emailAddr string, requesterID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}
	if user.ID != requesterID {
		return nil, response.NewForbiddenError("You can only view your own profile", "")
	}
	return s.toUserResponse(user), nil
}

// UpdateProfile applies the non-empty fields of req to the user's profile.
// Empty fields leave the stored values untouched.
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	if req.Email != "" && req.Email != user.Email {
		if !validation.ValidEmail(req.Email) {
			return nil, response.NewValidationError("Invalid email address", "")
		}
		if exists, err := s.userRepo.ExistsByEmail(ctx, req.Email); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check email", err.Error())
		} else if exists {
			return nil, response.NewAlreadyExistsError("Email is already registered", "")
		}
		user.Email = req.Email
	}
	if req.Username != "" && req.Username != user.Username {
		if !validation.ValidUsername(req.Username) {
			return nil, response.NewValidationError("Username must be 3-30 characters of letters, digits, dots, underscores, or hyphens", "")
		}
		if exists, err := s.userRepo.ExistsByUsername(ctx, req.Username); err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check username", err.Error())
		} else if exists {
			return nil, response.NewAlreadyExistsError("Username is already taken", "")
		}
		user.Username = req.Username
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
	}

	return s.toUserResponse(user), nil
}

// UpdateProfileImage validates and stores a new profile image. The new image
// is uploaded before the old one is deleted so a failed upload never leaves
// the account without an image.
func (s *userServiceImpl) UpdateProfileImage(ctx context.Context, userID uuid.UUID, image *dto.ProfileImageUpload) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("User not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	ext, err := validateProfileImage(image)
	if err != nil {
		return nil, err
	}

	key := s.imageStore.GenerateFileKey(user.ID.String(), ext)
	if _, err := s.imageStore.UploadFile(ctx, key, bytes.NewReader(image.Data), image.ContentType); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store profile image", err.Error())
	}

	oldKey := user.ProfileImageKey
	user.ProfileImageKey = key
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
	}

	if oldKey != "" {
		if err := s.imageStore.DeleteFile(ctx, oldKey); err != nil {
			s.logger.Warn("Failed to delete previous profile image",
				zap.String("user_id", user.ID.String()),
				zap.String("key", oldKey),
				zap.Error(err))
		}
	}

	return s.toUserResponse(user), nil
}

// ChangePassword replaces the password of an authenticated user after
// verifying the current one.
func (s *userServiceImpl) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("User not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	// A user may only change their own password
	if req.Email != user.Email {
		return response.NewForbiddenError("You may only change your own password", "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return response.NewUnauthorizedError("Current password is incorrect", "")
	}

	if !validation.ValidPassword(req.NewPassword) {
		return response.NewValidationError("Password must be at least 8 characters with an uppercase letter, a lowercase letter, a digit, and a special character", "")
	}
	if req.NewPassword != req.ConfirmPassword {
		return response.NewValidationError("Passwords do not match", "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}
	user.PasswordHash = string(hash)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to update user", err.Error())
	}
	return nil
}

// DeleteUser removes an account and cascades through everything it touches:
// the profile image, boards the user created, and memberships on other
// boards. Boards with remaining collaborators survive under a promoted
// creator rather than being destroyed.
func (s *userServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("User not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	// Step 1: profile image, best effort
	if user.ProfileImageKey != "" {
		if err := s.imageStore.DeleteFile(ctx, user.ProfileImageKey); err != nil {
			s.logger.Warn("Failed to delete profile image during account deletion",
				zap.String("user_id", userID.String()),
				zap.Error(err))
		}
	}

	// Step 2: boards this user created
	created, err := s.boardRepo.FindByCreatorID(ctx, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch created boards", err.Error())
	}
	for _, board := range created {
		if err := s.dissolveOrPromote(ctx, board); err != nil {
			s.logger.Warn("Failed to clean up created board, continuing",
				zap.String("user_id", userID.String()),
				zap.String("board_id", board.ID.String()),
				zap.Error(err))
		}
	}

	// Step 3: boards this user collaborates on
	collaborating, err := s.boardRepo.FindByCollaboratorID(ctx, userID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch collaborating boards", err.Error())
	}
	for _, board := range collaborating {
		if err := s.leaveBoard(ctx, board, userID); err != nil {
			s.logger.Warn("Failed to leave board, continuing",
				zap.String("user_id", userID.String()),
				zap.String("board_id", board.ID.String()),
				zap.Error(err))
		}
	}

	// Step 4: any outstanding reset token
	if err := s.resetTokenRepo.DeleteByUserID(ctx, userID); err != nil {
		s.logger.Warn("Failed to delete reset token during account deletion",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}

	// Step 5: the account itself
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete user", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementUserDeleted()
	}
	return nil
}

// dissolveOrPromote handles a board whose creator is being deleted. With no
// collaborators the board and its tasks go away; otherwise the
// longest-standing collaborator becomes the new creator.
func (s *userServiceImpl) dissolveOrPromote(ctx context.Context, board *domain.Board) error {
	collaborators, err := s.collaboratorRepo.FindByBoardID(ctx, board.ID)
	if err != nil {
		return err
	}

	if len(collaborators) == 0 {
		if err := s.taskRepo.DeleteByBoardID(ctx, board.ID); err != nil {
			return err
		}
		return s.boardRepo.Delete(ctx, board.ID)
	}

	// FindByBoardID orders by join time, so index 0 is the oldest member
	promoted := collaborators[0]
	board.CreatorID = promoted.UserID
	if err := s.collaboratorRepo.Delete(ctx, board.ID, promoted.UserID); err != nil {
		return err
	}
	return s.boardRepo.Update(ctx, board)
}

// leaveBoard removes the user's membership row. If that leaves the board
// with no collaborators and a creator account that no longer exists, the
// board is dissolved too.
func (s *userServiceImpl) leaveBoard(ctx context.Context, board *domain.Board, userID uuid.UUID) error {
	if err := s.collaboratorRepo.Delete(ctx, board.ID, userID); err != nil {
		return err
	}

	remaining, err := s.collaboratorRepo.CountByBoardID(ctx, board.ID)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return nil
	}

	creatorExists, err := s.userRepo.ExistsByID(ctx, board.CreatorID)
	if err != nil {
		return err
	}
	if creatorExists {
		return nil
	}

	if err := s.taskRepo.DeleteByBoardID(ctx, board.ID); err != nil {
		return err
	}
	return s.boardRepo.Delete(ctx, board.ID)
}

// resetCooldownKey is the Redis key prefix for reset-request throttling
const resetCooldownKey = "pwreset:cooldown:"

// InitiatePasswordReset issues a fresh reset token for the account and mails
// out the reset link. Issuing replaces any earlier token for the same user.
func (s *userServiceImpl) InitiatePasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("No account with that email", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to look up user", err.Error())
	}

	// Throttle repeat requests per email when Redis is available
	if s.redisClient != nil && s.config.ResetRequestCooldown > 0 {
		ok, err := s.redisClient.SetNX(ctx, resetCooldownKey+emailAddr, 1, s.config.ResetRequestCooldown).Result()
		if err != nil {
			s.logger.Warn("Reset cooldown check failed, allowing request", zap.Error(err))
		} else if !ok {
			s.logger.Info("Reset request throttled", zap.String("email", emailAddr))
			return nil
		}
	}

	if err := s.resetTokenRepo.DeleteByUserID(ctx, user.ID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to clear previous token", err.Error())
	}

	token := domain.NewPasswordResetToken(user.ID)
	if err := s.resetTokenRepo.Create(ctx, token); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to create reset token", err.Error())
	}

	if err := s.emailSender.SendPasswordResetEmail(ctx, user.Email, token.Token); err != nil {
		return response.NewAppError(response.ErrCodeDeliveryFailed, "Failed to send reset email", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementPasswordResetRequested()
	}
	return nil
}

// ResetPasswordWithToken redeems a reset token. A token works exactly once:
// success consumes it, and an expired token is removed the moment it is
// presented.
func (s *userServiceImpl) ResetPasswordWithToken(ctx context.Context, req *dto.ResetPasswordRequest) error {
	if !validation.ValidPassword(req.NewPassword) {
		return response.NewValidationError("Password must be at least 8 characters with an uppercase letter, a lowercase letter, a digit, and a special character", "")
	}
	if req.NewPassword != req.ConfirmPassword {
		return response.NewValidationError("Passwords do not match", "")
	}

	token, err := s.resetTokenRepo.FindByToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Invalid reset token", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to look up token", err.Error())
	}

	if token.IsExpired() {
		if err := s.resetTokenRepo.Delete(ctx, token.ID); err != nil {
			s.logger.Warn("Failed to delete expired reset token", zap.Error(err))
		}
		if s.metrics != nil {
			s.metrics.AddResetTokensExpired(1)
		}
		return response.NewTokenExpiredError("Reset token has expired", "")
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Account deleted since the token was issued; the token is dead
			if delErr := s.resetTokenRepo.Delete(ctx, token.ID); delErr != nil {
				s.logger.Warn("Failed to delete orphaned reset token", zap.Error(delErr))
			}
			return response.NewNotFoundError("User not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch user", err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to hash password", err.Error())
	}
	user.PasswordHash = string(hash)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to update password", err.Error())
	}

	if err := s.resetTokenRepo.Delete(ctx, token.ID); err != nil {
		// The password did change; a stale token row must not stay redeemable
		return response.NewAppError(response.ErrCodeInternal, "Failed to consume reset token", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementPasswordResetCompleted()
	}
	return nil
}

// toUserResponse converts a user to its response DTO
func (s *userServiceImpl) toUserResponse(user *domain.User) *dto.UserResponse {
	resp := &dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
	if user.ProfileImageKey != "" && s.imageStore != nil {
		resp.ProfileImageURL = s.imageStore.GetFileURL(user.ProfileImageKey)
	}
	return resp
}
