// Package prompts implements the prompt override domain for Safenet.
// It provides types, data access, and HTTP handlers for managing
// named prompt instruction overrides per classification mode.
package prompts

import "github.com/google/uuid"

// Prompt represents a named instruction override for a classification mode.
type Prompt struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Mode         Mode      `json:"mode"`
	Instructions string    `json:"instructions"`
	Description  *string   `json:"description"`
	Active       bool      `json:"active"`
}

// CreateCommand carries the data needed to create a new prompt override.
type CreateCommand struct {
	Name         string  `json:"name"`
	Mode         Mode    `json:"mode"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
}

// UpdateCommand carries the data needed to update an existing prompt override.
type UpdateCommand struct {
	Name         string  `json:"name"`
	Mode         Mode    `json:"mode"`
	Instructions string  `json:"instructions"`
	Description  *string `json:"description"`
}
