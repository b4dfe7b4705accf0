package taxonomy

import (
	"github.com/vforit/ticktrack/internal/application/taxonomy/usecases"
	"github.com/vforit/ticktrack/internal/shared/utils"
)

type CreateEntryRequest struct {
	Type   string  `json:"type" binding:"required,not_blank,max=50"`
	Value  string  `json:"value" binding:"required,not_blank,max=100"`
	Label  string  `json:"label" binding:"required,not_blank,max=100"`
	Color  *string `json:"color"`
	Parent *string `json:"parent"`
}

func (r CreateEntryRequest) ToCommand() usecases.CreateEntryCommand {
	return usecases.CreateEntryCommand{
		Type:   r.Type,
		Value:  r.Value,
		Label:  r.Label,
		Color:  r.Color,
		Parent: r.Parent,
	}
}

// UpdateEntryRequest patches a config entry. color and parent accept an
// explicit null to clear the value.
type UpdateEntryRequest struct {
	Type   *string              `json:"type"`
	Value  *string              `json:"value"`
	Label  *string              `json:"label"`
	Color  utils.OptionalString `json:"color"`
	Parent utils.OptionalString `json:"parent"`
}

func (r *UpdateEntryRequest) ToCommand(entryID uint) usecases.UpdateEntryCommand {
	cmd := usecases.UpdateEntryCommand{
		EntryID: entryID,
		Type:    r.Type,
		Value:   r.Value,
		Label:   r.Label,
	}
	if r.Color.Set {
		cmd.Color = &r.Color.Value
	}
	if r.Parent.Set {
		cmd.Parent = &r.Parent.Value
	}
	return cmd
}
