package ticket

import (
	"fmt"
	"time"

	"github.com/vforit/ticktrack/internal/shared/biztime"
)

// Workflow field defaults applied at creation. Status, priority and
// category values are free-form beyond these defaults; the configured
// taxonomy (config_master) drives what clients offer, the server does
// not enforce an enum.
const (
	DefaultStatus      = "open"
	DefaultPriority    = "medium"
	DefaultCategory    = "ALL"
	DefaultSubcategory = "ALL"
)

type Ticket struct {
	id          uint
	title       string
	description string
	status      string
	priority    string
	category    string
	subcategory string
	createdBy   uint
	assignedTo  *uint
	approvedBy  *uint
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	title string,
	description string,
	status string,
	priority string,
	category string,
	subcategory string,
	createdBy uint,
	assignedTo *uint,
	approvedBy *uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	if status == "" {
		status = DefaultStatus
	}
	if priority == "" {
		priority = DefaultPriority
	}
	if category == "" {
		category = DefaultCategory
	}
	if subcategory == "" {
		subcategory = DefaultSubcategory
	}

	now := biztime.NowUTC()
	return &Ticket{
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		category:    category,
		subcategory: subcategory,
		createdBy:   createdBy,
		assignedTo:  assignedTo,
		approvedBy:  approvedBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	title string,
	description string,
	status string,
	priority string,
	category string,
	subcategory string,
	createdBy uint,
	assignedTo *uint,
	approvedBy *uint,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if createdBy == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		category:    category,
		subcategory: subcategory,
		createdBy:   createdBy,
		assignedTo:  assignedTo,
		approvedBy:  approvedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() string {
	return t.status
}

func (t *Ticket) Priority() string {
	return t.priority
}

func (t *Ticket) Category() string {
	return t.category
}

func (t *Ticket) Subcategory() string {
	return t.subcategory
}

func (t *Ticket) CreatedBy() uint {
	return t.createdBy
}

func (t *Ticket) AssignedTo() *uint {
	return t.assignedTo
}

func (t *Ticket) ApprovedBy() *uint {
	return t.approvedBy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Patch carries the optional fields of a partial ticket update. Nil fields
// leave the current value untouched. AssignedTo and ApprovedBy use a
// double pointer so a present-but-null field clears the reference.
type Patch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	Category    *string
	Subcategory *string
	AssignedTo  **uint
	ApprovedBy  **uint
}

// ApplyPatch merges the present fields of the patch into the ticket and
// bumps updatedAt when anything changed.
func (t *Ticket) ApplyPatch(p Patch) error {
	changed := false

	if p.Title != nil {
		if len(*p.Title) == 0 {
			return fmt.Errorf("title cannot be empty")
		}
		if len(*p.Title) > 200 {
			return fmt.Errorf("title exceeds maximum length of 200 characters")
		}
		t.title = *p.Title
		changed = true
	}
	if p.Description != nil {
		if len(*p.Description) == 0 {
			return fmt.Errorf("description cannot be empty")
		}
		t.description = *p.Description
		changed = true
	}
	if p.Status != nil {
		t.status = *p.Status
		changed = true
	}
	if p.Priority != nil {
		t.priority = *p.Priority
		changed = true
	}
	if p.Category != nil {
		t.category = *p.Category
		changed = true
	}
	if p.Subcategory != nil {
		t.subcategory = *p.Subcategory
		changed = true
	}
	if p.AssignedTo != nil {
		t.assignedTo = *p.AssignedTo
		changed = true
	}
	if p.ApprovedBy != nil {
		t.approvedBy = *p.ApprovedBy
		changed = true
	}

	if changed {
		t.updatedAt = biztime.NowUTC()
	}
	return nil
}
