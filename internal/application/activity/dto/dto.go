package dto

import "github.com/vforit/ticktrack/internal/domain/activity"

type ActivityLogDTO struct {
	ID        uint   `json:"id"`
	UserID    uint   `json:"user_id"`
	TicketID  *uint  `json:"ticket_id"`
	Action    string `json:"action"`
	CreatedAt int64  `json:"created_at"`
}

func NewActivityLogDTO(l *activity.Log) *ActivityLogDTO {
	return &ActivityLogDTO{
		ID:        l.ID(),
		UserID:    l.UserID(),
		TicketID:  l.TicketID(),
		Action:    l.Action(),
		CreatedAt: l.CreatedAt().UnixMilli(),
	}
}

func NewActivityLogDTOs(logs []*activity.Log) []*ActivityLogDTO {
	dtos := make([]*ActivityLogDTO, 0, len(logs))
	for _, l := range logs {
		dtos = append(dtos, NewActivityLogDTO(l))
	}
	return dtos
}
