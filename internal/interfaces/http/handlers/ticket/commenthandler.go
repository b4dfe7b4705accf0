package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vforit/ticktrack/internal/application/ticket/usecases"
	"github.com/vforit/ticktrack/internal/shared/logger"
	"github.com/vforit/ticktrack/internal/shared/utils"
)

type CommentHandler struct {
	addCommentUC    usecases.AddCommentExecutor
	getCommentUC    usecases.GetCommentExecutor
	listCommentsUC  usecases.ListCommentsExecutor
	updateCommentUC usecases.UpdateCommentExecutor
	deleteCommentUC usecases.DeleteCommentExecutor
	logger          logger.Interface
}

func NewCommentHandler(
	addCommentUC usecases.AddCommentExecutor,
	getCommentUC usecases.GetCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	updateCommentUC usecases.UpdateCommentExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
) *CommentHandler {
	return &CommentHandler{
		addCommentUC:    addCommentUC,
		getCommentUC:    getCommentUC,
		listCommentsUC:  listCommentsUC,
		updateCommentUC: updateCommentUC,
		deleteCommentUC: deleteCommentUC,
		logger:          logger.NewLogger(),
	}
}

// AddComment handles POST /ticket/:id/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		TicketID: ticketID,
		UserID:   userID,
		Content:  req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// ListComments handles GET /ticket/:id/comments
func (h *CommentHandler) ListComments(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comments retrieved successfully", result)
}

// GetComment handles GET /comments/:id
func (h *CommentHandler) GetComment(c *gin.Context) {
	commentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getCommentUC.Execute(c.Request.Context(), commentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment retrieved successfully", result)
}

// UpdateComment handles PUT /comments/:id. Only the author may edit.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateCommentUC.Execute(c.Request.Context(), usecases.UpdateCommentCommand{
		CommentID: commentID,
		UserID:    userID,
		Content:   req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment updated successfully", result)
}

// DeleteComment handles DELETE /comments/:id
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteCommentUC.Execute(c.Request.Context(), commentID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment deleted successfully", nil)
}
