package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"vocabapi/internal/model"
	"vocabapi/internal/repository"
)

const assignmentColumns = `id, user_id, folder_id, word_id, word, definition, example, image_url, created_at, updated_at`

// AssignmentPostgres is a PostgreSQL implementation of repository.AssignmentRepository.
type AssignmentPostgres struct {
	db *sql.DB
}

// NewAssignmentPostgres creates a new AssignmentPostgres repository.
func NewAssignmentPostgres(db *sql.DB) *AssignmentPostgres {
	return &AssignmentPostgres{db: db}
}

var _ repository.AssignmentRepository = (*AssignmentPostgres)(nil)

func scanAssignment(s rowScanner) (*model.Assignment, error) {
	var a model.Assignment
	if err := s.Scan(
		&a.ID,
		&a.UserID,
		&a.FolderID,
		&a.WordID,
		&a.Word,
		&a.Definition,
		&a.Example,
		&a.ImageURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AssignmentPostgres) Create(ctx context.Context, a *model.Assignment) (*model.Assignment, error) {
	const q = `
		INSERT INTO folder_words (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + assignmentColumns
	row := r.db.QueryRowContext(ctx, q,
		a.ID,
		a.UserID,
		a.FolderID,
		a.WordID,
		a.Word,
		a.Definition,
		a.Example,
		a.ImageURL,
		a.CreatedAt,
		a.UpdatedAt,
	)
	out, err := scanAssignment(row)
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *AssignmentPostgres) ListByFolder(ctx context.Context, userID, folderID uuid.UUID, pq repository.PageQuery) ([]model.Assignment, error) {
	const q = `
		SELECT ` + assignmentColumns + `
		FROM folder_words
		WHERE user_id = $1 AND folder_id = $2
		ORDER BY word ASC, id ASC
		LIMIT $3 OFFSET $4
	`
	rows, err := r.db.QueryContext(ctx, q, userID, folderID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Assignment, 0)
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *AssignmentPostgres) Delete(ctx context.Context, userID, folderID uuid.UUID, wordID string) error {
	const q = `DELETE FROM folder_words WHERE user_id = $1 AND folder_id = $2 AND word_id = $3`
	res, err := r.db.ExecContext(ctx, q, userID, folderID, wordID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *AssignmentPostgres) RefreshWord(ctx context.Context, w model.Word, now time.Time) (int64, error) {
	const q = `
		UPDATE folder_words
		SET word = $1,
		    definition = $2,
		    example = $3,
		    image_url = $4,
		    updated_at = GREATEST($5, updated_at + interval '1 microsecond')
		WHERE word_id = $6
	`
	res, err := r.db.ExecContext(ctx, q, w.Word, w.Definition, w.Example, w.ImageURL, now, w.WordID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
