package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultFolderColor is applied when a folder is created without a color.
	DefaultFolderColor = "#4A90E2"
	// DefaultFolderIcon is applied when a folder is created without an icon.
	DefaultFolderIcon = "📁"
)

// Folder is a named grouping of words owned by one user.
// Description is nil when it was never set or has been cleared.
type Folder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	Color       string
	Icon        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FolderInput is the payload accepted when creating a folder.
type FolderInput struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,hexcolor,len=7"`
	Icon        *string `json:"icon" validate:"omitempty,min=1,max=32"`
}

// FolderPatch is a partial folder update; only fields present in the request are applied.
type FolderPatch struct {
	Name        Nullable[string] `json:"name"`
	Description Nullable[string] `json:"description"`
	Color       Nullable[string] `json:"color"`
	Icon        Nullable[string] `json:"icon"`
}

// IsEmpty reports whether the patch carries no field at all.
func (p FolderPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Description.Set && !p.Color.Set && !p.Icon.Set
}
