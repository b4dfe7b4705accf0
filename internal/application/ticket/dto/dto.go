package dto

import "github.com/vforit/ticktrack/internal/domain/ticket"

type TicketDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	CreatedBy   uint   `json:"created_by"`
	AssignedTo  *uint  `json:"assigned_to"`
	ApprovedBy  *uint  `json:"approved_by"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func NewTicketDTO(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status(),
		Priority:    t.Priority(),
		Category:    t.Category(),
		Subcategory: t.Subcategory(),
		CreatedBy:   t.CreatedBy(),
		AssignedTo:  t.AssignedTo(),
		ApprovedBy:  t.ApprovedBy(),
		CreatedAt:   t.CreatedAt().UnixMilli(),
		UpdatedAt:   t.UpdatedAt().UnixMilli(),
	}
}

func NewTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, NewTicketDTO(t))
	}
	return dtos
}

type CommentDTO struct {
	ID        uint   `json:"id"`
	TicketID  uint   `json:"ticket_id"`
	UserID    uint   `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

func NewCommentDTO(c *ticket.Comment) *CommentDTO {
	return &CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		UserID:    c.UserID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt().UnixMilli(),
		UpdatedAt: c.UpdatedAt().UnixMilli(),
	}
}

func NewCommentDTOs(comments []*ticket.Comment) []*CommentDTO {
	dtos := make([]*CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, NewCommentDTO(c))
	}
	return dtos
}

type AttachmentDTO struct {
	ID         uint   `json:"id"`
	TicketID   uint   `json:"ticket_id"`
	Filename   string `json:"filename"`
	Filepath   string `json:"filepath"`
	Uploaded   bool   `json:"uploaded"`
	UploadedAt int64  `json:"uploaded_at"`
}

func NewAttachmentDTO(a *ticket.Attachment) *AttachmentDTO {
	return &AttachmentDTO{
		ID:         a.ID(),
		TicketID:   a.TicketID(),
		Filename:   a.Filename(),
		Filepath:   a.Filepath(),
		Uploaded:   a.IsUploaded(),
		UploadedAt: a.UploadedAt().UnixMilli(),
	}
}

func NewAttachmentDTOs(attachments []*ticket.Attachment) []*AttachmentDTO {
	dtos := make([]*AttachmentDTO, 0, len(attachments))
	for _, a := range attachments {
		dtos = append(dtos, NewAttachmentDTO(a))
	}
	return dtos
}
