package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"vocabapi/internal/model"
	"vocabapi/internal/repository"
)

const wordColumns = `id, word_id, word, definition, example, image_url, created_at, updated_at`

// WordPostgres is a PostgreSQL implementation of repository.WordRepository.
type WordPostgres struct {
	db *sql.DB
}

// NewWordPostgres creates a new WordPostgres repository.
func NewWordPostgres(db *sql.DB) *WordPostgres {
	return &WordPostgres{db: db}
}

var _ repository.WordRepository = (*WordPostgres)(nil)

func scanWord(s rowScanner) (*model.Word, error) {
	var w model.Word
	if err := s.Scan(
		&w.ID,
		&w.WordID,
		&w.Word,
		&w.Definition,
		&w.Example,
		&w.ImageURL,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WordPostgres) FindByWordID(ctx context.Context, wordID string) (*model.Word, error) {
	const q = `SELECT ` + wordColumns + ` FROM words WHERE word_id = $1`
	return scanWord(r.db.QueryRowContext(ctx, q, wordID))
}

func (r *WordPostgres) Create(ctx context.Context, w *model.Word) (*model.Word, error) {
	const q = `
		INSERT INTO words (` + wordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + wordColumns
	row := r.db.QueryRowContext(ctx, q,
		w.ID,
		w.WordID,
		w.Word,
		w.Definition,
		w.Example,
		w.ImageURL,
		w.CreatedAt,
		w.UpdatedAt,
	)
	out, err := scanWord(row)
	if err != nil {
		return nil, translate(err)
	}
	return out, nil
}

func (r *WordPostgres) Update(ctx context.Context, wordID string, patch model.WordPatch, now time.Time) (*model.Word, error) {
	var b setBuilder
	if patch.Word.Set {
		b.add("word", patch.Word.Value)
	}
	if patch.Definition.Set {
		b.add("definition", patch.Definition.Value)
	}
	if patch.Example.Set {
		b.add("example", patch.Example.Ptr())
	}
	b.touch(now)

	q := fmt.Sprintf(`UPDATE words SET %s WHERE word_id = %s RETURNING %s`,
		b.clause(), b.arg(wordID), wordColumns)
	return scanWord(r.db.QueryRowContext(ctx, q, b.args...))
}

func (r *WordPostgres) SetImage(ctx context.Context, wordID string, imageURL *string, now time.Time) (*model.Word, error) {
	const q = `
		UPDATE words
		SET image_url = $1, updated_at = GREATEST($2, updated_at + interval '1 microsecond')
		WHERE word_id = $3
		RETURNING ` + wordColumns
	return scanWord(r.db.QueryRowContext(ctx, q, imageURL, now, wordID))
}
