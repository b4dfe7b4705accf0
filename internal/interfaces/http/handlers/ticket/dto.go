package ticket

import (
	"github.com/vforit/ticktrack/internal/application/ticket/usecases"
	"github.com/vforit/ticktrack/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,not_blank,max=200"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	AssignedTo  *uint  `json:"assigned_to"`
	ApprovedBy  *uint  `json:"approved_by"`
}

func (r CreateTicketRequest) ToCommand(createdBy uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		CreatedBy:   createdBy,
		AssignedTo:  r.AssignedTo,
		ApprovedBy:  r.ApprovedBy,
	}
}

// UpdateTicketRequest patches a ticket. Omitted fields are left alone;
// assigned_to and approved_by accept an explicit null to clear the reference.
type UpdateTicketRequest struct {
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Status      *string            `json:"status"`
	Priority    *string            `json:"priority"`
	Category    *string            `json:"category"`
	Subcategory *string            `json:"subcategory"`
	AssignedTo  utils.OptionalUint `json:"assigned_to"`
	ApprovedBy  utils.OptionalUint `json:"approved_by"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	cmd := usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Category:    r.Category,
		Subcategory: r.Subcategory,
	}
	if r.AssignedTo.Set {
		cmd.AssignedTo = &r.AssignedTo.Value
	}
	if r.ApprovedBy.Set {
		cmd.ApprovedBy = &r.ApprovedBy.Value
	}
	return cmd
}

type CommentRequest struct {
	Content string `json:"content" binding:"required,not_blank,max=5000"`
}

type CreateAttachmentRequest struct {
	Filename string `json:"filename" binding:"required,not_blank,max=200"`
}
