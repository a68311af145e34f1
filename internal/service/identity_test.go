package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vocabapi/internal/model"
	repoMocks "vocabapi/internal/repository/mocks"
)

func TestIdentityService_Resolve(t *testing.T) {
	ctx := context.Background()
	existing := &model.User{ID: uuid.New(), Email: "learner@vocab.local", Name: "Learner"}

	t.Run("existing user is cached", func(t *testing.T) {
		repo := new(repoMocks.MockUserRepository)
		repo.On("FindByEmail", ctx, "learner@vocab.local").Return(existing, nil).Once()

		svc := NewIdentityService(repo, "learner@vocab.local", "Learner", zap.NewNop())
		u1, err := svc.Resolve(ctx)
		require.NoError(t, err)
		u2, err := svc.Resolve(ctx)
		require.NoError(t, err)

		assert.Equal(t, existing.ID, u1.ID)
		assert.Equal(t, u1.ID, u2.ID)
		repo.AssertExpectations(t)
	})

	t.Run("missing user is created", func(t *testing.T) {
		repo := new(repoMocks.MockUserRepository)
		repo.On("FindByEmail", ctx, "new@vocab.local").Return(nil, sql.ErrNoRows)
		repo.On("Create", ctx, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@vocab.local" && u.Name == "New" && u.ID != uuid.Nil && !u.CreatedAt.IsZero()
		})).Return(&model.User{ID: uuid.New(), Email: "new@vocab.local", Name: "New"}, nil)

		svc := NewIdentityService(repo, "new@vocab.local", "New", zap.NewNop())
		u, err := svc.Resolve(ctx)
		require.NoError(t, err)
		assert.Equal(t, "new@vocab.local", u.Email)
		repo.AssertExpectations(t)
	})

	t.Run("storage failure is internal", func(t *testing.T) {
		repo := new(repoMocks.MockUserRepository)
		repo.On("FindByEmail", ctx, "x@vocab.local").Return(nil, assert.AnError)

		svc := NewIdentityService(repo, "x@vocab.local", "", zap.NewNop())
		_, err := svc.Resolve(ctx)
		requireCode(t, err, CodeInternal)
	})
}

func TestMatchesUser(t *testing.T) {
	u := &model.User{ID: uuid.New(), Email: "Learner@vocab.local"}

	assert.True(t, MatchesUser(u, "me"))
	assert.True(t, MatchesUser(u, u.ID.String()))
	assert.True(t, MatchesUser(u, "learner@vocab.local"))
	assert.False(t, MatchesUser(u, uuid.NewString()))
	assert.False(t, MatchesUser(u, "someone@else"))
	assert.False(t, MatchesUser(nil, "me"))
}
