package model

import (
	"time"

	"github.com/google/uuid"
)

// Word is a globally shared dictionary entry addressed by its business identifier (WordID).
// Example and ImageURL stay nil until explicitly set.
type Word struct {
	ID         uuid.UUID
	WordID     string
	Word       string
	Definition string
	Example    *string
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// WordInput is the payload accepted when creating a dictionary entry.
type WordInput struct {
	WordID     string  `json:"word_id" validate:"required,max=50,businessid"`
	Word       string  `json:"word" validate:"required,max=100"`
	Definition string  `json:"definition" validate:"required,max=1000"`
	Example    *string `json:"example" validate:"omitempty,max=500"`
}

// WordPatch is a partial dictionary update. The image reference is managed by image uploads.
type WordPatch struct {
	Word       Nullable[string] `json:"word"`
	Definition Nullable[string] `json:"definition"`
	Example    Nullable[string] `json:"example"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p WordPatch) IsEmpty() bool {
	return !p.Word.Set && !p.Definition.Set && !p.Example.Set
}
