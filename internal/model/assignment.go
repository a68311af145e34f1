package model

import (
	"time"

	"github.com/google/uuid"
)

// Assignment links a dictionary word to one of a user's folders.
// Word, Definition, Example and ImageURL are copied from the dictionary for cheap listing.
type Assignment struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	FolderID   uuid.UUID
	WordID     string
	Word       string
	Definition string
	Example    *string
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AssignmentInput is the body of an assign-word-to-folder request.
type AssignmentInput struct {
	WordID string `json:"word_id" validate:"required,max=50,businessid"`
}

// NewAssignment copies the dictionary fields of w into a fresh assignment record.
func NewAssignment(userID, folderID uuid.UUID, w Word, now time.Time) Assignment {
	return Assignment{
		ID:         uuid.New(),
		UserID:     userID,
		FolderID:   folderID,
		WordID:     w.WordID,
		Word:       w.Word,
		Definition: w.Definition,
		Example:    w.Example,
		ImageURL:   w.ImageURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
