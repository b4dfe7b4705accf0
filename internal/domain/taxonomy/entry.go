// Package taxonomy holds config_master entries: the configurable
// status/priority/category values that drive client-side dropdowns.
// Entries have no relations to other entities.
package taxonomy

import (
	"fmt"
	"time"

	"github.com/vforit/ticktrack/internal/shared/biztime"
)

type Entry struct {
	id        uint
	entryType string
	value     string
	label     string
	color     *string
	parent    *string
	createdAt time.Time
	updatedAt time.Time
}

func NewEntry(entryType, value, label string, color, parent *string) (*Entry, error) {
	if len(entryType) == 0 {
		return nil, fmt.Errorf("type is required")
	}
	if len(value) == 0 {
		return nil, fmt.Errorf("value is required")
	}
	if len(label) == 0 {
		return nil, fmt.Errorf("label is required")
	}

	now := biztime.NowUTC()
	return &Entry{
		entryType: entryType,
		value:     value,
		label:     label,
		color:     color,
		parent:    parent,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructEntry(
	id uint,
	entryType string,
	value string,
	label string,
	color *string,
	parent *string,
	createdAt, updatedAt time.Time,
) (*Entry, error) {
	if id == 0 {
		return nil, fmt.Errorf("entry ID cannot be zero")
	}
	if len(entryType) == 0 {
		return nil, fmt.Errorf("type is required")
	}

	return &Entry{
		id:        id,
		entryType: entryType,
		value:     value,
		label:     label,
		color:     color,
		parent:    parent,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (e *Entry) ID() uint {
	return e.id
}

func (e *Entry) Type() string {
	return e.entryType
}

func (e *Entry) Value() string {
	return e.value
}

func (e *Entry) Label() string {
	return e.label
}

func (e *Entry) Color() *string {
	return e.color
}

func (e *Entry) Parent() *string {
	return e.parent
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) UpdatedAt() time.Time {
	return e.updatedAt
}

func (e *Entry) SetID(id uint) error {
	if e.id != 0 {
		return fmt.Errorf("entry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("entry ID cannot be zero")
	}
	e.id = id
	return nil
}

// Patch carries the optional fields of a partial entry update.
type Patch struct {
	Type   *string
	Value  *string
	Label  *string
	Color  **string
	Parent **string
}

func (e *Entry) ApplyPatch(p Patch) error {
	changed := false

	if p.Type != nil {
		if len(*p.Type) == 0 {
			return fmt.Errorf("type cannot be empty")
		}
		e.entryType = *p.Type
		changed = true
	}
	if p.Value != nil {
		if len(*p.Value) == 0 {
			return fmt.Errorf("value cannot be empty")
		}
		e.value = *p.Value
		changed = true
	}
	if p.Label != nil {
		if len(*p.Label) == 0 {
			return fmt.Errorf("label cannot be empty")
		}
		e.label = *p.Label
		changed = true
	}
	if p.Color != nil {
		e.color = *p.Color
		changed = true
	}
	if p.Parent != nil {
		e.parent = *p.Parent
		changed = true
	}

	if changed {
		e.updatedAt = biztime.NowUTC()
	}
	return nil
}
