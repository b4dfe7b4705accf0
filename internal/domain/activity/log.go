// Package activity holds the audit trail entity. Every log entry belongs
// to a user and optionally to a ticket.
package activity

import (
	"fmt"
	"time"

	"github.com/vforit/ticktrack/internal/shared/biztime"
)

type Log struct {
	id        uint
	userID    uint
	ticketID  *uint
	action    string
	createdAt time.Time
}

func NewLog(userID uint, ticketID *uint, action string) (*Log, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}
	if len(action) > 200 {
		return nil, fmt.Errorf("action exceeds maximum length of 200 characters")
	}

	return &Log{
		userID:    userID,
		ticketID:  ticketID,
		action:    action,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructLog(
	id uint,
	userID uint,
	ticketID *uint,
	action string,
	createdAt time.Time,
) (*Log, error) {
	if id == 0 {
		return nil, fmt.Errorf("log ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &Log{
		id:        id,
		userID:    userID,
		ticketID:  ticketID,
		action:    action,
		createdAt: createdAt,
	}, nil
}

func (l *Log) ID() uint {
	return l.id
}

func (l *Log) UserID() uint {
	return l.userID
}

func (l *Log) TicketID() *uint {
	return l.ticketID
}

func (l *Log) Action() string {
	return l.action
}

func (l *Log) CreatedAt() time.Time {
	return l.createdAt
}

func (l *Log) SetID(id uint) error {
	if l.id != 0 {
		return fmt.Errorf("log ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("log ID cannot be zero")
	}
	l.id = id
	return nil
}

// Patch carries the optional fields of a partial log update. The double
// pointer on TicketID lets a present-but-null field clear the reference.
type Patch struct {
	UserID   *uint
	TicketID **uint
	Action   *string
}

func (l *Log) ApplyPatch(p Patch) error {
	if p.UserID != nil {
		if *p.UserID == 0 {
			return fmt.Errorf("user ID cannot be zero")
		}
		l.userID = *p.UserID
	}
	if p.TicketID != nil {
		l.ticketID = *p.TicketID
	}
	if p.Action != nil {
		if len(*p.Action) == 0 {
			return fmt.Errorf("action cannot be empty")
		}
		if len(*p.Action) > 200 {
			return fmt.Errorf("action exceeds maximum length of 200 characters")
		}
		l.action = *p.Action
	}
	return nil
}
