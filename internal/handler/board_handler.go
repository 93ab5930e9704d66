package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"planpulse-api/internal/dto"
	"planpulse-api/internal/response"
	"planpulse-api/internal/service"
)

type BoardHandler struct {
	boardService service.BoardService
	logger       *zap.Logger
}

func NewBoardHandler(boardService service.BoardService, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
		logger:       logger,
	}
}

// GetBoards godoc
// @Summary      List own boards
// @Description  Returns every board the requester created or collaborates on
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.SuccessResponse{data=[]dto.BoardResponse}
// @Failure      401 {object} response.ErrorResponse
// @Router       /boards/all [get]
func (h *BoardHandler) GetBoards(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	boards, err := h.boardService.GetBoardsForUser(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, boards)
}

// CreateBoard godoc
// @Summary      Create a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateBoardRequest true "Board fields"
// @Success      201 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      400 {object} response.ErrorResponse
// @Router       /boards/create-board [post]
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	board, err := h.boardService.CreateBoard(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, board)
}

// GetBoard godoc
// @Summary      Get a board with its tasks
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardDetailResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/{id} [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	boardID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	board, err := h.boardService.GetBoard(c.Request.Context(), boardID, userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// AddCollaborator godoc
// @Summary      Add a collaborator to a board
// @Description  The identifier is treated as an email when it looks like one, a username otherwise
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Param        identifier path string true "Email or username"
// @Success      200 {object} response.SuccessResponse{data=dto.BoardResponse}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Failure      409 {object} response.ErrorResponse
// @Router       /boards/add-user/{boardId}/{identifier} [put]
func (h *BoardHandler) AddCollaborator(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	identifier := c.Param("identifier")
	if identifier == "" {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Identifier is required")
		return
	}

	board, err := h.boardService.AddCollaborator(c.Request.Context(), boardID, userID, identifier)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, board)
}

// GetCollaborators godoc
// @Summary      List a board's collaborator usernames
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Success      200 {object} response.SuccessResponse{data=[]string}
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/collaborators/{boardId} [get]
func (h *BoardHandler) GetCollaborators(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	usernames, err := h.boardService.GetCollaboratorUsernames(c.Request.Context(), boardID, userID)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusOK, usernames)
}

// AddTask godoc
// @Summary      Add a task to a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        boardId path string true "Board ID (UUID)"
// @Param        request body dto.CreateTaskRequest true "Task fields"
// @Success      201 {object} response.SuccessResponse{data=dto.TaskResponse}
// @Failure      400 {object} response.ErrorResponse
// @Failure      403 {object} response.ErrorResponse
// @Failure      404 {object} response.ErrorResponse
// @Router       /boards/add-task/{boardId} [post]
func (h *BoardHandler) AddTask(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	boardID, err := uuid.Parse(c.Param("boardId"))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid board ID")
		return
	}

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, "Invalid request body")
		return
	}

	task, err := h.boardService.AddTaskToBoard(c.Request.Context(), boardID, userID, &req)
	if err != nil {
		handleServiceError(c, h.logger, err)
		return
	}

	response.SendSuccess(c, http.StatusCreated, task)
}
