package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planpulse-api/internal/dto"
	"planpulse-api/internal/response"
	"planpulse-api/internal/service"
)

type UserHandler struct {
	userService service.UserService
	logger      *zap.Logger
}

func NewUserHandler(userService service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile godoc
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse}
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// GetUserByEmail godoc
// @Summary      Look up own profile by email
// @Description  Only the account's own email resolves; other addresses are forbidden
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email path string true "Email address"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /users/by-email/{email} [get]
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByEmail(c.Request.Context(), c.Param("email"), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// GetProfileImage godoc
// @Summary      Get the profile image URL
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /users/profile-image [get]
func (h *UserHandler) GetProfileImage(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}
	if user.ProfileImageURL == "" {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "No profile image set")
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"profileImageUrl": user.ProfileImageURL})
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Applies the non-empty multipart fields; omitted fields keep their stored values
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        firstname formData string false "First name"
// @Param        lastname formData string false "Last name"
// @Param        username formData string false "Username"
// @Param        email formData string false "Email address"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// UpdateProfileImage godoc
// @Summary      Replace the profile image
// @Description  Validates content type, extension, and file signature before storing
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        profileImage formData file true "Profile image"
// @Success      200 {object} response.SuccessResponse{data=dto.UserResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /users/profile-image [put]
func (h *UserHandler) UpdateProfileImage(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	image, err := readProfileImage(c, "profileImage")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read profile image")
		return
	}
	if image == nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Profile image is required")
		return
	}

	user, err := h.userService.UpdateProfileImage(c.Request.Context(), userID, image)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, user)
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.ChangePasswordRequest true "Current and new password"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Router       /users/reset-password [put]
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Password changed"})
}

// DeleteAccount godoc
// @Summary      Delete own account
// @Description  Removes the account and cascades through its boards, memberships, and stored image
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse
// @Failure      401 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /users/profile [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), userID); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Account deleted"})
}
