package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vocabapi/internal/model"
	"vocabapi/internal/repository"
)

// AssignmentService defines the use cases for words placed in a user's folders.
type AssignmentService interface {
	// Add copies the word's current fields into a new assignment. The folder must belong to
	// userID and the word must exist; a repeated triple is DUPLICATE_ASSIGNMENT.
	Add(ctx context.Context, userID uuid.UUID, rawFolderID, businessID string) (*model.Assignment, error)

	// List returns the folder's assignments by headword. Assignments left behind by a
	// non-cascading folder delete are still listed under the old folder id.
	List(ctx context.Context, userID uuid.UUID, rawFolderID string, pp PageParams) ([]model.Assignment, error)

	// Remove deletes a single assignment; the dictionary word is never touched.
	Remove(ctx context.Context, userID uuid.UUID, rawFolderID, businessID string) error
}

type assignmentService struct {
	folders     repository.FolderRepository
	words       repository.WordRepository
	assignments repository.AssignmentRepository
	log         *zap.Logger
	now         func() time.Time
}

// NewAssignmentService constructs a new AssignmentService.
func NewAssignmentService(
	folders repository.FolderRepository,
	words repository.WordRepository,
	assignments repository.AssignmentRepository,
	log *zap.Logger,
) AssignmentService {
	return &assignmentService{
		folders:     folders,
		words:       words,
		assignments: assignments,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var errAssignmentNotFound = newNotFound(CodeNotFound, "word is not assigned to this folder")

func (s *assignmentService) Add(ctx context.Context, userID uuid.UUID, rawFolderID, businessID string) (*model.Assignment, error) {
	folderID, err := ParseObjectID("folder_id", rawFolderID)
	if err != nil {
		return nil, err
	}
	if err := validateField("word_id", businessID, "required"); err != nil {
		return nil, err
	}
	if _, err := s.folders.FindByID(ctx, userID, folderID); err != nil {
		return nil, mapFolderErr(err)
	}
	// no stored word can carry a malformed id
	if !ValidBusinessID(businessID) {
		return nil, errWordNotFound
	}
	w, err := s.words.FindByWordID(ctx, businessID)
	if err != nil {
		return nil, mapWordErr(err)
	}

	a := model.NewAssignment(userID, folderID, *w, s.now())
	stored, err := s.assignments.Create(ctx, &a)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newConflict(CodeDuplicateAssignment, "word '"+businessID+"' is already in this folder", err)
		}
		return nil, Internal(err)
	}
	s.log.Info("word_assigned",
		zap.String("folder_id", folderID.String()),
		zap.String("word_id", businessID),
	)
	return stored, nil
}

func (s *assignmentService) List(ctx context.Context, userID uuid.UUID, rawFolderID string, pp PageParams) ([]model.Assignment, error) {
	folderID, err := ParseObjectID("folder_id", rawFolderID)
	if err != nil {
		return nil, err
	}
	page, err := Clamp(pp)
	if err != nil {
		return nil, err
	}
	if err := s.requireFolderOrOrphans(ctx, userID, folderID); err != nil {
		return nil, err
	}

	items, err := s.assignments.ListByFolder(ctx, userID, folderID, page.Query())
	if err != nil {
		return nil, Internal(err)
	}
	return items, nil
}

// requireFolderOrOrphans passes when the folder exists for userID, or when it is gone but
// the user still has assignments under its id.
func (s *assignmentService) requireFolderOrOrphans(ctx context.Context, userID, folderID uuid.UUID) error {
	_, err := s.folders.FindByID(ctx, userID, folderID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return Internal(err)
	}
	first, err := s.assignments.ListByFolder(ctx, userID, folderID, repository.PageQuery{Limit: 1})
	if err != nil {
		return Internal(err)
	}
	if len(first) == 0 {
		return errFolderNotFound
	}
	return nil
}

func (s *assignmentService) Remove(ctx context.Context, userID uuid.UUID, rawFolderID, businessID string) error {
	folderID, err := ParseObjectID("folder_id", rawFolderID)
	if err != nil {
		return err
	}
	if err := s.requireFolderOrOrphans(ctx, userID, folderID); err != nil {
		return err
	}
	if err := s.assignments.Delete(ctx, userID, folderID, businessID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errAssignmentNotFound
		}
		return Internal(err)
	}
	s.log.Info("word_unassigned", zap.String("folder_id", folderID.String()), zap.String("word_id", businessID))
	return nil
}
