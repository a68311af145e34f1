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

// FolderService defines the use cases for a user's folders.
type FolderService interface {
	List(ctx context.Context, userID uuid.UUID, pp PageParams) ([]model.Folder, error)
	Get(ctx context.Context, userID uuid.UUID, rawID string) (*model.Folder, error)
	Create(ctx context.Context, userID uuid.UUID, in model.FolderInput) (*model.Folder, error)

	// Update applies the fields present in patch; an empty patch is NO_UPDATE_FIELDS.
	Update(ctx context.Context, userID uuid.UUID, rawID string, patch model.FolderPatch) (*model.Folder, error)

	// Delete removes the folder. With cascade the folder's assignments are removed in the
	// same transaction and their count is returned; without it they are left in place.
	Delete(ctx context.Context, userID uuid.UUID, rawID string, cascade bool) (int64, error)
}

type folderService struct {
	repo repository.FolderRepository
	log  *zap.Logger
	now  func() time.Time
}

// NewFolderService constructs a new FolderService.
func NewFolderService(repo repository.FolderRepository, log *zap.Logger) FolderService {
	return &folderService{repo: repo, log: log, now: func() time.Time { return time.Now().UTC() }}
}

var errFolderNotFound = newNotFound(CodeFolderNotFound, "folder not found")

func (s *folderService) List(ctx context.Context, userID uuid.UUID, pp PageParams) ([]model.Folder, error) {
	page, err := Clamp(pp)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.List(ctx, userID, page.Query())
	if err != nil {
		return nil, Internal(err)
	}
	return items, nil
}

func (s *folderService) Get(ctx context.Context, userID uuid.UUID, rawID string) (*model.Folder, error) {
	id, err := ParseObjectID("folder_id", rawID)
	if err != nil {
		return nil, err
	}
	f, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, mapFolderErr(err)
	}
	return f, nil
}

func (s *folderService) Create(ctx context.Context, userID uuid.UUID, in model.FolderInput) (*model.Folder, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateStruct(in); err != nil {
		return nil, err
	}

	now := s.now()
	f := &model.Folder{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        in.Name,
		Description: in.Description,
		Color:       model.DefaultFolderColor,
		Icon:        model.DefaultFolderIcon,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Color != nil && *in.Color != "" {
		f.Color = *in.Color
	}
	if in.Icon != nil && *in.Icon != "" {
		f.Icon = *in.Icon
	}

	stored, err := s.repo.Create(ctx, f)
	if err != nil {
		return nil, Internal(err)
	}
	s.log.Info("folder_created", zap.String("folder_id", stored.ID.String()), zap.String("user_id", userID.String()))
	return stored, nil
}

func (s *folderService) Update(ctx context.Context, userID uuid.UUID, rawID string, patch model.FolderPatch) (*model.Folder, error) {
	id, err := ParseObjectID("folder_id", rawID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, ErrNoUpdateFields
	}
	if patch, err = normalizeFolderPatch(patch); err != nil {
		return nil, err
	}

	f, err := s.repo.Update(ctx, userID, id, patch, s.now())
	if err != nil {
		return nil, mapFolderErr(err)
	}
	return f, nil
}

// normalizeFolderPatch validates present fields. A null name is rejected; a null color or
// icon resets it to the default.
func normalizeFolderPatch(p model.FolderPatch) (model.FolderPatch, error) {
	if p.Name.Set {
		if p.Name.Null {
			return p, newValidation(CodeValidation, "name", "name cannot be null")
		}
		p.Name.Value = strings.TrimSpace(p.Name.Value)
		if err := validateField("name", p.Name.Value, "required,max=100"); err != nil {
			return p, err
		}
	}
	if p.Description.Set && !p.Description.Null {
		if err := validateField("description", p.Description.Value, "max=500"); err != nil {
			return p, err
		}
	}
	if p.Color.Set {
		if p.Color.Null {
			p.Color = model.Some(model.DefaultFolderColor)
		} else if err := validateField("color", p.Color.Value, "hexcolor,len=7"); err != nil {
			return p, err
		}
	}
	if p.Icon.Set {
		if p.Icon.Null {
			p.Icon = model.Some(model.DefaultFolderIcon)
		} else if err := validateField("icon", p.Icon.Value, "min=1,max=32"); err != nil {
			return p, err
		}
	}
	return p, nil
}

func (s *folderService) Delete(ctx context.Context, userID uuid.UUID, rawID string, cascade bool) (int64, error) {
	id, err := ParseObjectID("folder_id", rawID)
	if err != nil {
		return 0, err
	}

	if !cascade {
		if err := s.repo.Delete(ctx, userID, id); err != nil {
			return 0, mapFolderErr(err)
		}
		s.log.Info("folder_deleted", zap.String("folder_id", id.String()), zap.Bool("cascade", false))
		return 0, nil
	}

	removed, err := s.repo.DeleteCascade(ctx, userID, id)
	if err != nil {
		return 0, mapFolderErr(err)
	}
	s.log.Info("folder_deleted",
		zap.String("folder_id", id.String()),
		zap.Bool("cascade", true),
		zap.Int64("assignments_removed", removed),
	)
	return removed, nil
}

func mapFolderErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errFolderNotFound
	}
	return Internal(err)
}
