package dto

import "github.com/vforit/ticktrack/internal/domain/taxonomy"

type ConfigEntryDTO struct {
	ID        uint    `json:"id"`
	Type      string  `json:"type"`
	Value     string  `json:"value"`
	Label     string  `json:"label"`
	Color     *string `json:"color"`
	Parent    *string `json:"parent"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}

func NewConfigEntryDTO(e *taxonomy.Entry) *ConfigEntryDTO {
	return &ConfigEntryDTO{
		ID:        e.ID(),
		Type:      e.Type(),
		Value:     e.Value(),
		Label:     e.Label(),
		Color:     e.Color(),
		Parent:    e.Parent(),
		CreatedAt: e.CreatedAt().UnixMilli(),
		UpdatedAt: e.UpdatedAt().UnixMilli(),
	}
}

func NewConfigEntryDTOs(entries []*taxonomy.Entry) []*ConfigEntryDTO {
	dtos := make([]*ConfigEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, NewConfigEntryDTO(e))
	}
	return dtos
}
