package activity

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vforit/ticktrack/internal/application/activity/usecases"
	"github.com/vforit/ticktrack/internal/shared/logger"
	"github.com/vforit/ticktrack/internal/shared/utils"
)

type ActivityHandler struct {
	createLogUC usecases.CreateLogExecutor
	getLogUC    usecases.GetLogExecutor
	listLogsUC  usecases.ListLogsExecutor
	updateLogUC usecases.UpdateLogExecutor
	deleteLogUC usecases.DeleteLogExecutor
	logger      logger.Interface
}

func NewActivityHandler(
	createLogUC usecases.CreateLogExecutor,
	getLogUC usecases.GetLogExecutor,
	listLogsUC usecases.ListLogsExecutor,
	updateLogUC usecases.UpdateLogExecutor,
	deleteLogUC usecases.DeleteLogExecutor,
) *ActivityHandler {
	return &ActivityHandler{
		createLogUC: createLogUC,
		getLogUC:    getLogUC,
		listLogsUC:  listLogsUC,
		updateLogUC: updateLogUC,
		deleteLogUC: deleteLogUC,
		logger:      logger.NewLogger(),
	}
}

// CreateLog handles POST /activity-log
func (h *ActivityHandler) CreateLog(c *gin.Context) {
	var req CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create activity log", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createLogUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Activity log created successfully")
}

// ListLogs handles GET /activity-log
func (h *ActivityHandler) ListLogs(c *gin.Context) {
	result, err := h.listLogsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Activity logs retrieved successfully", result)
}

// ListLogsByUser handles GET /activity-log/user/:id
func (h *ActivityHandler) ListLogsByUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listLogsUC.ExecuteByUser(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Activity logs retrieved successfully", result)
}

// ListLogsByTicket handles GET /activity-log/ticket/:id
func (h *ActivityHandler) ListLogsByTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listLogsUC.ExecuteByTicket(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Activity logs retrieved successfully", result)
}

// GetLog handles GET /activity-log/:id
func (h *ActivityHandler) GetLog(c *gin.Context) {
	logID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getLogUC.Execute(c.Request.Context(), logID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Activity log retrieved successfully", result)
}

// UpdateLog handles PUT /activity-log/:id
func (h *ActivityHandler) UpdateLog(c *gin.Context) {
	logID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update activity log", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateLogUC.Execute(c.Request.Context(), req.ToCommand(logID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Activity log updated successfully", result)
}

// DeleteLog handles DELETE /activity-log/:id
func (h *ActivityHandler) DeleteLog(c *gin.Context) {
	logID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteLogUC.Execute(c.Request.Context(), logID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Activity log deleted successfully", nil)
}
