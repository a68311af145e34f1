package repository

import (
	"context"
	"time"

	"vocabapi/internal/model"
)

// WordRepository defines data access for the global dictionary, keyed by business identifier.
type WordRepository interface {
	// FindByWordID returns the entry or sql.ErrNoRows.
	FindByWordID(ctx context.Context, wordID string) (*model.Word, error)

	// Create inserts a new entry; ErrDuplicate if the business identifier is taken.
	Create(ctx context.Context, w *model.Word) (*model.Word, error)

	// Update applies the fields present in patch. Returns sql.ErrNoRows on a miss.
	Update(ctx context.Context, wordID string, patch model.WordPatch, now time.Time) (*model.Word, error)

	// SetImage replaces (or clears, when imageURL is nil) the image reference.
	SetImage(ctx context.Context, wordID string, imageURL *string, now time.Time) (*model.Word, error)
}
