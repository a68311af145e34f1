package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vocabapi/internal/model"
)

// FolderRepository defines data access for folders. Every lookup and mutation is scoped by
// the owning user so another user's folder is indistinguishable from a missing one.
type FolderRepository interface {
	// List returns the user's folders, newest first.
	List(ctx context.Context, userID uuid.UUID, pq PageQuery) ([]model.Folder, error)

	// FindByID returns the folder if it exists for userID, sql.ErrNoRows otherwise.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Folder, error)

	// Create inserts a folder and returns the stored record.
	Create(ctx context.Context, f *model.Folder) (*model.Folder, error)

	// Update applies the fields present in patch and stamps updated_at with now, or one
	// microsecond past the previous value when now is not later. Returns sql.ErrNoRows on a miss.
	Update(ctx context.Context, userID, id uuid.UUID, patch model.FolderPatch, now time.Time) (*model.Folder, error)

	// Delete removes only the folder row; assignments pointing at it are kept.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// DeleteCascade removes the folder and the user's assignments in it atomically and
	// returns the number of assignments removed.
	DeleteCascade(ctx context.Context, userID, id uuid.UUID) (int64, error)
}
