package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vforit/ticktrack/internal/application/ticket/usecases"
	apperrors "github.com/vforit/ticktrack/internal/shared/errors"
	"github.com/vforit/ticktrack/internal/shared/logger"
	"github.com/vforit/ticktrack/internal/shared/utils"
)

type AttachmentHandler struct {
	createAttachmentUC   usecases.CreateAttachmentExecutor
	uploadAttachmentUC   usecases.UploadAttachmentExecutor
	downloadAttachmentUC usecases.DownloadAttachmentExecutor
	getAttachmentUC      usecases.GetAttachmentExecutor
	listAttachmentsUC    usecases.ListAttachmentsExecutor
	deleteAttachmentUC   usecases.DeleteAttachmentExecutor
	logger               logger.Interface
}

func NewAttachmentHandler(
	createAttachmentUC usecases.CreateAttachmentExecutor,
	uploadAttachmentUC usecases.UploadAttachmentExecutor,
	downloadAttachmentUC usecases.DownloadAttachmentExecutor,
	getAttachmentUC usecases.GetAttachmentExecutor,
	listAttachmentsUC usecases.ListAttachmentsExecutor,
	deleteAttachmentUC usecases.DeleteAttachmentExecutor,
) *AttachmentHandler {
	return &AttachmentHandler{
		createAttachmentUC:   createAttachmentUC,
		uploadAttachmentUC:   uploadAttachmentUC,
		downloadAttachmentUC: downloadAttachmentUC,
		getAttachmentUC:      getAttachmentUC,
		listAttachmentsUC:    listAttachmentsUC,
		deleteAttachmentUC:   deleteAttachmentUC,
		logger:               logger.NewLogger(),
	}
}

// CreateAttachment handles POST /ticket/:id/attachments. It records the
// attachment metadata; the file content arrives through a later upload call.
func (h *AttachmentHandler) CreateAttachment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create attachment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createAttachmentUC.Execute(c.Request.Context(), usecases.CreateAttachmentCommand{
		TicketID: ticketID,
		Filename: req.Filename,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment created successfully")
}

// UploadAttachment handles POST /ticket/:id/attachments/:attachment_id/upload.
// The file is expected as the multipart form field "file".
func (h *AttachmentHandler) UploadAttachment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	attachmentID, err := utils.ParseUintParam(c, "attachment_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewValidationError("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.uploadAttachmentUC.Execute(c.Request.Context(), usecases.UploadAttachmentCommand{
		TicketID:     ticketID,
		AttachmentID: attachmentID,
		Filename:     fileHeader.Filename,
		Content:      file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment uploaded successfully", result)
}

// DownloadAttachment handles GET /ticket/:id/attachments/:attachment_id/download
func (h *AttachmentHandler) DownloadAttachment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	attachmentID, err := utils.ParseUintParam(c, "attachment_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.downloadAttachmentUC.Execute(c.Request.Context(), ticketID, attachmentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.FileAttachment(result.Path, result.Filename)
}

// ListAttachments handles GET /ticket/:id/attachments
func (h *AttachmentHandler) ListAttachments(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listAttachmentsUC.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachments retrieved successfully", result)
}

// GetAttachment handles GET /ticket/:id/attachment/:attachment_id
func (h *AttachmentHandler) GetAttachment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	attachmentID, err := utils.ParseUintParam(c, "attachment_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getAttachmentUC.Execute(c.Request.Context(), ticketID, attachmentID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment retrieved successfully", result)
}

// DeleteAttachment handles DELETE /ticket/:id/attachment/:attachment_id.
// Removes the stored file before dropping the record.
func (h *AttachmentHandler) DeleteAttachment(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	attachmentID, err := utils.ParseUintParam(c, "attachment_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteAttachmentUC.Execute(c.Request.Context(), ticketID, attachmentID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment deleted successfully", nil)
}
