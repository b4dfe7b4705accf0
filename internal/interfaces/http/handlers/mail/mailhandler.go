package mail

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vforit/ticktrack/internal/application/mail/usecases"
	"github.com/vforit/ticktrack/internal/shared/logger"
	"github.com/vforit/ticktrack/internal/shared/utils"
)

type SendMailRequest struct {
	Subject    string   `json:"subject" binding:"required,not_blank"`
	Recipients []string `json:"recipients" binding:"required,min=1"`
	Body       string   `json:"body"`
	Sender     string   `json:"sender"`
}

type MailHandler struct {
	sendMailUC usecases.SendMailExecutor
	logger     logger.Interface
}

func NewMailHandler(sendMailUC usecases.SendMailExecutor) *MailHandler {
	return &MailHandler{
		sendMailUC: sendMailUC,
		logger:     logger.NewLogger(),
	}
}

// SendMail handles POST /mail/send
func (h *MailHandler) SendMail(c *gin.Context) {
	var req SendMailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for send mail", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	err := h.sendMailUC.Execute(c.Request.Context(), usecases.SendMailCommand{
		Subject:    req.Subject,
		Recipients: req.Recipients,
		Body:       req.Body,
		Sender:     req.Sender,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Mail sent successfully", nil)
}
