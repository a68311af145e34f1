package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"vocabapi/internal/model"
	"vocabapi/internal/repository"
)

const folderColumns = `id, user_id, name, description, color, icon, created_at, updated_at`

// FolderPostgres is a PostgreSQL implementation of repository.FolderRepository.
type FolderPostgres struct {
	db *sql.DB
}

// NewFolderPostgres creates a new FolderPostgres repository.
func NewFolderPostgres(db *sql.DB) *FolderPostgres {
	return &FolderPostgres{db: db}
}

var _ repository.FolderRepository = (*FolderPostgres)(nil)

func scanFolder(s rowScanner) (*model.Folder, error) {
	var f model.Folder
	if err := s.Scan(
		&f.ID,
		&f.UserID,
		&f.Name,
		&f.Description,
		&f.Color,
		&f.Icon,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FolderPostgres) List(ctx context.Context, userID uuid.UUID, pq repository.PageQuery) ([]model.Folder, error) {
	const q = `
		SELECT ` + folderColumns + `
		FROM folders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, q, userID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Folder, 0)
	for rows.Next() {
		f, err := scanFolder(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FolderPostgres) FindByID(ctx context.Context, userID, id uuid.UUID) (*model.Folder, error) {
	const q = `SELECT ` + folderColumns + ` FROM folders WHERE id = $1 AND user_id = $2`
	return scanFolder(r.db.QueryRowContext(ctx, q, id, userID))
}

func (r *FolderPostgres) Create(ctx context.Context, f *model.Folder) (*model.Folder, error) {
	const q = `
		INSERT INTO folders (` + folderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + folderColumns
	row := r.db.QueryRowContext(ctx, q,
		f.ID,
		f.UserID,
		f.Name,
		f.Description,
		f.Color,
		f.Icon,
		f.CreatedAt,
		f.UpdatedAt,
	)
	out, err := scanFolder(row)
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *FolderPostgres) Update(ctx context.Context, userID, id uuid.UUID, patch model.FolderPatch, now time.Time) (*model.Folder, error) {
	var b setBuilder
	if patch.Name.Set {
		b.add("name", patch.Name.Value)
	}
	if patch.Description.Set {
		b.add("description", patch.Description.Ptr())
	}
	if patch.Color.Set {
		b.add("color", patch.Color.Value)
	}
	if patch.Icon.Set {
		b.add("icon", patch.Icon.Value)
	}
	b.touch(now)

	q := fmt.Sprintf(`UPDATE folders SET %s WHERE id = %s AND user_id = %s RETURNING %s`,
		b.clause(), b.arg(id), b.arg(userID), folderColumns)
	return scanFolder(r.db.QueryRowContext(ctx, q, b.args...))
}

func (r *FolderPostgres) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM folders WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, q, id, userID)
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

func (r *FolderPostgres) DeleteCascade(ctx context.Context, userID, id uuid.UUID) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM folders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, sql.ErrNoRows
	}

	res, err = tx.ExecContext(ctx, `DELETE FROM folder_words WHERE folder_id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, err
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return removed, nil
}
