package memory

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabapi/internal/model"
	"vocabapi/internal/repository"
)

func newFolder(userID uuid.UUID, name string, at time.Time) *model.Folder {
	return &model.Folder{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     model.DefaultFolderColor,
		Icon:      model.DefaultFolderIcon,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func TestFolderRepository_ListOrderAndScope(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	repo := s.Folders()
	alice, bob := uuid.New(), uuid.New()
	base := time.Now().UTC()

	for i, name := range []string{"a", "b", "c"} {
		_, err := repo.Create(ctx, newFolder(alice, name, base.Add(time.Duration(i)*time.Second)))
		require.NoError(t, err)
	}
	_, err := repo.Create(ctx, newFolder(bob, "other", base))
	require.NoError(t, err)

	items, err := repo.List(ctx, alice, repository.PageQuery{Limit: 100})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].Name)
	assert.Equal(t, "a", items[2].Name)

	items, err = repo.List(ctx, alice, repository.PageQuery{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Name)

	items, err = repo.List(ctx, alice, repository.PageQuery{Limit: 10, Offset: 50})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFolderRepository_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Folders()
	owner := uuid.New()
	f, err := repo.Create(ctx, newFolder(owner, "mine", time.Now()))
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, uuid.New(), f.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
	_, err = repo.Update(ctx, uuid.New(), f.ID, model.FolderPatch{Name: model.Some("x")}, time.Now())
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New(), f.ID), sql.ErrNoRows)
}

func TestFolderRepository_UpdateStrictlyIncreasesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Folders()
	at := time.Now().UTC()
	f, err := repo.Create(ctx, newFolder(uuid.New(), "x", at))
	require.NoError(t, err)

	// A clock that did not move still yields a later timestamp.
	out, err := repo.Update(ctx, f.UserID, f.ID, model.FolderPatch{Icon: model.Some("🍎")}, at)
	require.NoError(t, err)
	assert.True(t, out.UpdatedAt.After(f.UpdatedAt))
	assert.Equal(t, f.CreatedAt, out.CreatedAt)
	assert.Equal(t, "🍎", out.Icon)
}

func TestDeleteKeepsAssignmentsUnlessCascading(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	folders, assignments := s.Folders(), s.Assignments()
	user := uuid.New()
	now := time.Now()

	f, err := folders.Create(ctx, newFolder(user, "keep", now))
	require.NoError(t, err)
	a := model.NewAssignment(user, f.ID, model.Word{WordID: "apple_001", Word: "apple", Definition: "d"}, now)
	_, err = assignments.Create(ctx, &a)
	require.NoError(t, err)

	require.NoError(t, folders.Delete(ctx, user, f.ID))
	items, err := assignments.ListByFolder(ctx, user, f.ID, repository.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, items, 1)

	g, err := folders.Create(ctx, newFolder(user, "drop", now))
	require.NoError(t, err)
	b := model.NewAssignment(user, g.ID, model.Word{WordID: "apple_001", Word: "apple", Definition: "d"}, now)
	_, err = assignments.Create(ctx, &b)
	require.NoError(t, err)

	n, err := folders.DeleteCascade(ctx, user, g.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	items, err = assignments.ListByFolder(ctx, user, g.ID, repository.PageQuery{Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestWordRepository_DuplicateAndImage(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Words()
	now := time.Now()
	w := &model.Word{ID: uuid.New(), WordID: "apple_001", Word: "apple", Definition: "d", CreatedAt: now, UpdatedAt: now}

	_, err := repo.Create(ctx, w)
	require.NoError(t, err)
	_, err = repo.Create(ctx, w)
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	url := "/images/image_users/apple_001.png"
	out, err := repo.SetImage(ctx, "apple_001", &url, now)
	require.NoError(t, err)
	assert.Equal(t, &url, out.ImageURL)
	assert.True(t, out.UpdatedAt.After(now))

	_, err = repo.SetImage(ctx, "missing", &url, now)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAssignmentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Assignments()
	user, folder := uuid.New(), uuid.New()
	now := time.Now()

	for _, word := range []string{"pear", "apple", "fig"} {
		a := model.NewAssignment(user, folder, model.Word{WordID: word + "_1", Word: word, Definition: "d"}, now)
		_, err := repo.Create(ctx, &a)
		require.NoError(t, err)
	}
	dup := model.NewAssignment(user, folder, model.Word{WordID: "fig_1", Word: "fig"}, now)
	_, err := repo.Create(ctx, &dup)
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	items, err := repo.ListByFolder(ctx, user, folder, repository.PageQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, []string{"apple", "fig", "pear"}, []string{items[0].Word, items[1].Word, items[2].Word})

	n, err := repo.RefreshWord(ctx, model.Word{WordID: "fig_1", Word: "fig", Definition: "a sweet fruit"}, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, repo.Delete(ctx, user, folder, "fig_1"))
	assert.ErrorIs(t, repo.Delete(ctx, user, folder, "fig_1"), sql.ErrNoRows)
}

func TestUserRepository_CreateIsIdempotentByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Users()
	first, err := repo.Create(ctx, &model.User{ID: uuid.New(), Email: "a@b.c"})
	require.NoError(t, err)
	second, err := repo.Create(ctx, &model.User{ID: uuid.New(), Email: "a@b.c"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, err = repo.FindByEmail(ctx, "x@y.z")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
