package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"planpulse-api/internal/dto"
	"planpulse-api/internal/response"
	"planpulse-api/internal/service"
)

// resetRequestedMessage is returned for every forgot-password call that is
// not an internal failure, so the response never reveals whether the email
// belongs to an account.
const resetRequestedMessage = "If an account with that email exists, a reset link has been sent."

type AuthHandler struct {
	userService service.UserService
	logger      *zap.Logger
}

func NewAuthHandler(userService service.UserService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates an account from multipart form fields with an optional profile image
// @Tags         auth
// @Accept       multipart/form-data
// @Produce      json
// @Param        firstname formData string true "First name"
// @Param        lastname formData string true "Last name"
// @Param        username formData string true "Username"
// @Param        email formData string true "Email address"
// @Param        password formData string true "Password"
// @Param        confirmPassword formData string true "Password confirmation"
// @Param        profileImage formData file false "Profile image"
// @Success      201 {object} response.SuccessResponse{data=dto.AuthResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	image, err := readProfileImage(c, "profileImage")
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Failed to read profile image")
		return
	}

	result, err := h.userService.Register(c.Request.Context(), &req, image)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, result)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates with an email or username plus password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Credentials"
// @Success      200 {object} response.SuccessResponse{data=dto.AuthResponse}
// @Failure      401 {object} response.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	result, err := h.userService.Authenticate(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, result)
}

// Logout godoc
// @Summary      Log out
// @Description  Ends the session. Tokens are stateless, so the client simply discards its copy.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// ForgotPassword godoc
// @Summary      Request a password reset
// @Description  Issues a reset token and mails a reset link to the account's email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.ForgotPasswordRequest true "Account email"
// @Success      200 {object} response.SuccessResponse
// @Failure      502 {object} response.ErrorResponse
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.userService.InitiatePasswordReset(c.Request.Context(), req.Email); err != nil {
		// An unknown email gets the same masked success as a known one;
		// only delivery and internal failures surface to the client
		if serviceErrorCode(err) == response.ErrCodeNotFound {
			response.SendSuccess(c, http.StatusOK, gin.H{"message": resetRequestedMessage})
			return
		}
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": resetRequestedMessage})
}

// ResetPassword godoc
// @Summary      Reset password with a token
// @Description  Redeems a single-use reset token and sets a new password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body dto.ResetPasswordRequest true "Token and new password"
// @Success      200 {object} response.SuccessResponse
// @Failure      400 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      410 {object} response.ErrorResponse
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	if err := h.userService.ResetPasswordWithToken(c.Request.Context(), &req); err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, gin.H{"message": "Password has been reset"})
}
