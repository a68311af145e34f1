package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vocabapi/internal/model"
)

// AssignmentRepository defines data access for folder-word links.
type AssignmentRepository interface {
	// Create inserts the assignment; ErrDuplicate if the (user, folder, word) triple exists.
	Create(ctx context.Context, a *model.Assignment) (*model.Assignment, error)

	// ListByFolder returns the folder's assignments ordered by headword, then id. It does not
	// consult the folders table, so assignments of a deleted folder are still returned.
	ListByFolder(ctx context.Context, userID, folderID uuid.UUID, pq PageQuery) ([]model.Assignment, error)

	// Delete removes a single assignment. Returns sql.ErrNoRows if nothing matched.
	Delete(ctx context.Context, userID, folderID uuid.UUID, wordID string) error

	// RefreshWord rewrites the copied dictionary fields of every assignment of w.WordID and
	// returns how many rows changed.
	RefreshWord(ctx context.Context, w model.Word, now time.Time) (int64, error)
}
