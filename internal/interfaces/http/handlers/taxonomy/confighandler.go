package taxonomy

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vforit/ticktrack/internal/application/taxonomy/usecases"
	"github.com/vforit/ticktrack/internal/shared/logger"
	"github.com/vforit/ticktrack/internal/shared/utils"
)

// ConfigHandler serves the config master entries that drive ticket
// statuses, priorities and categories.
type ConfigHandler struct {
	createEntryUC usecases.CreateEntryExecutor
	getEntryUC    usecases.GetEntryExecutor
	listEntriesUC usecases.ListEntriesExecutor
	updateEntryUC usecases.UpdateEntryExecutor
	deleteEntryUC usecases.DeleteEntryExecutor
	logger        logger.Interface
}

func NewConfigHandler(
	createEntryUC usecases.CreateEntryExecutor,
	getEntryUC usecases.GetEntryExecutor,
	listEntriesUC usecases.ListEntriesExecutor,
	updateEntryUC usecases.UpdateEntryExecutor,
	deleteEntryUC usecases.DeleteEntryExecutor,
) *ConfigHandler {
	return &ConfigHandler{
		createEntryUC: createEntryUC,
		getEntryUC:    getEntryUC,
		listEntriesUC: listEntriesUC,
		updateEntryUC: updateEntryUC,
		deleteEntryUC: deleteEntryUC,
		logger:        logger.NewLogger(),
	}
}

// CreateEntry handles POST /configmaster
func (h *ConfigHandler) CreateEntry(c *gin.Context) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create config entry", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createEntryUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Config entry created successfully")
}

// ListEntries handles GET /configmaster
func (h *ConfigHandler) ListEntries(c *gin.Context) {
	result, err := h.listEntriesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Config entries retrieved successfully", result)
}

// GetEntry handles GET /configmaster/:id
func (h *ConfigHandler) GetEntry(c *gin.Context) {
	entryID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getEntryUC.Execute(c.Request.Context(), entryID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Config entry retrieved successfully", result)
}

// UpdateEntry handles PUT /configmaster/:id
func (h *ConfigHandler) UpdateEntry(c *gin.Context) {
	entryID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update config entry", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateEntryUC.Execute(c.Request.Context(), req.ToCommand(entryID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Config entry updated successfully", result)
}

// DeleteEntry handles DELETE /configmaster/:id
func (h *ConfigHandler) DeleteEntry(c *gin.Context) {
	entryID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteEntryUC.Execute(c.Request.Context(), entryID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Config entry deleted successfully", nil)
}
