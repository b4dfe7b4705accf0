package activity

import (
	"github.com/vforit/ticktrack/internal/application/activity/usecases"
	"github.com/vforit/ticktrack/internal/shared/utils"
)

type CreateLogRequest struct {
	UserID   uint   `json:"user_id" binding:"required"`
	TicketID *uint  `json:"ticket_id"`
	Action   string `json:"action" binding:"required,not_blank,max=200"`
}

func (r CreateLogRequest) ToCommand() usecases.CreateLogCommand {
	return usecases.CreateLogCommand{
		UserID:   r.UserID,
		TicketID: r.TicketID,
		Action:   r.Action,
	}
}

// UpdateLogRequest patches a log entry. ticket_id accepts an explicit null
// to detach the entry from its ticket.
type UpdateLogRequest struct {
	UserID   *uint              `json:"user_id"`
	TicketID utils.OptionalUint `json:"ticket_id"`
	Action   *string            `json:"action"`
}

func (r *UpdateLogRequest) ToCommand(logID uint) usecases.UpdateLogCommand {
	cmd := usecases.UpdateLogCommand{
		LogID:  logID,
		UserID: r.UserID,
		Action: r.Action,
	}
	if r.TicketID.Set {
		cmd.TicketID = &r.TicketID.Value
	}
	return cmd
}
