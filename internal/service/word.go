package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vocabapi/internal/model"
	"vocabapi/internal/repository"
)

// WordService defines the use cases for the shared dictionary.
type WordService interface {
	Get(ctx context.Context, businessID string) (*model.Word, error)

	// Create fails with DUPLICATE_WORD when the business id is taken; it never upserts.
	Create(ctx context.Context, in model.WordInput) (*model.Word, error)

	// Update applies the fields present in patch and then refreshes the copies held by
	// folder assignments. A failed refresh is logged and does not fail the update.
	Update(ctx context.Context, businessID string, patch model.WordPatch) (*model.Word, error)
}

type wordService struct {
	words       repository.WordRepository
	assignments repository.AssignmentRepository
	log         *zap.Logger
	now         func() time.Time
}

// NewWordService constructs a new WordService.
func NewWordService(words repository.WordRepository, assignments repository.AssignmentRepository, log *zap.Logger) WordService {
	return &wordService{
		words:       words,
		assignments: assignments,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var errWordNotFound = newNotFound(CodeWordNotFound, "word not found")

func (s *wordService) Get(ctx context.Context, businessID string) (*model.Word, error) {
	if !ValidBusinessID(businessID) {
		return nil, errWordNotFound
	}
	w, err := s.words.FindByWordID(ctx, businessID)
	if err != nil {
		return nil, mapWordErr(err)
	}
	return w, nil
}

func (s *wordService) Create(ctx context.Context, in model.WordInput) (*model.Word, error) {
	in.WordID = strings.TrimSpace(in.WordID)
	in.Word = strings.TrimSpace(in.Word)
	in.Definition = strings.TrimSpace(in.Definition)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	now := s.now()
	w := &model.Word{
		ID:         uuid.New(),
		WordID:     in.WordID,
		Word:       in.Word,
		Definition: in.Definition,
		Example:    in.Example,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	stored, err := s.words.Create(ctx, w)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newConflict(CodeDuplicateWord, "word '"+in.WordID+"' already exists", err)
		}
		return nil, Internal(err)
	}
	s.log.Info("word_created", zap.String("word_id", stored.WordID))
	return stored, nil
}

func (s *wordService) Update(ctx context.Context, businessID string, patch model.WordPatch) (*model.Word, error) {
	if !ValidBusinessID(businessID) {
		return nil, errWordNotFound
	}
	if patch.IsEmpty() {
		return nil, ErrNoUpdateFields
	}
	patch, err := normalizeWordPatch(patch)
	if err != nil {
		return nil, err
	}

	now := s.now()
	w, err := s.words.Update(ctx, businessID, patch, now)
	if err != nil {
		return nil, mapWordErr(err)
	}
	refreshAssignments(ctx, s.assignments, s.log, *w, now)
	return w, nil
}

func normalizeWordPatch(p model.WordPatch) (model.WordPatch, error) {
	if p.Word.Set {
		if p.Word.Null {
			return p, newValidation(CodeValidation, "word", "word cannot be null")
		}
		p.Word.Value = strings.TrimSpace(p.Word.Value)
		if err := validateField("word", p.Word.Value, "required,max=100"); err != nil {
			return p, err
		}
	}
	if p.Definition.Set {
		if p.Definition.Null {
			return p, newValidation(CodeValidation, "definition", "definition cannot be null")
		}
		p.Definition.Value = strings.TrimSpace(p.Definition.Value)
		if err := validateField("definition", p.Definition.Value, "required,max=1000"); err != nil {
			return p, err
		}
	}
	if p.Example.Set && !p.Example.Null {
		if err := validateField("example", p.Example.Value, "max=500"); err != nil {
			return p, err
		}
	}
	return p, nil
}

// refreshAssignments pushes w's current fields into every assignment copy.
func refreshAssignments(ctx context.Context, repo repository.AssignmentRepository, log *zap.Logger, w model.Word, now time.Time) {
	n, err := repo.RefreshWord(ctx, w, now)
	if err != nil {
		log.Warn("assignment_refresh_failed", zap.String("word_id", w.WordID), zap.Error(err))
		return
	}
	if n > 0 {
		log.Debug("assignments_refreshed", zap.String("word_id", w.WordID), zap.Int64("count", n))
	}
}

func mapWordErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errWordNotFound
	}
	return Internal(err)
}
