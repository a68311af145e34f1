package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vocabapi/internal/model"
	"vocabapi/internal/repository"
	repoMocks "vocabapi/internal/repository/mocks"
	"vocabapi/internal/repository/memory"
)

func appleInput() model.WordInput {
	return model.WordInput{WordID: "apple_001", Word: "apple", Definition: "a round fruit"}
}

func TestWordService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("optional fields stay null", func(t *testing.T) {
		s := memory.NewStore()
		svc := NewWordService(s.Words(), s.Assignments(), zap.NewNop())
		w, err := svc.Create(ctx, appleInput())
		require.NoError(t, err)
		assert.Nil(t, w.Example)
		assert.Nil(t, w.ImageURL)
		assert.Equal(t, w.CreatedAt, w.UpdatedAt)
	})

	t.Run("duplicate keeps the first word", func(t *testing.T) {
		s := memory.NewStore()
		svc := NewWordService(s.Words(), s.Assignments(), zap.NewNop())
		_, err := svc.Create(ctx, appleInput())
		require.NoError(t, err)

		second := appleInput()
		second.Definition = "a tech company"
		_, err = svc.Create(ctx, second)
		e := requireCode(t, err, CodeDuplicateWord)
		assert.Equal(t, 409, e.Status)

		stored, err := svc.Get(ctx, "apple_001")
		require.NoError(t, err)
		assert.Equal(t, "a round fruit", stored.Definition)
	})

	invalid := []struct {
		name  string
		in    model.WordInput
		field string
	}{
		{"missing business id", model.WordInput{Word: "a", Definition: "b"}, "word_id"},
		{"bad business id", model.WordInput{WordID: "apple 1", Word: "a", Definition: "b"}, "word_id"},
		{"long business id", model.WordInput{WordID: strings.Repeat("a", 51), Word: "a", Definition: "b"}, "word_id"},
		{"missing word", model.WordInput{WordID: "a", Definition: "b"}, "word"},
		{"missing definition", model.WordInput{WordID: "a", Word: "b"}, "definition"},
		{"long definition", model.WordInput{WordID: "a", Word: "b", Definition: strings.Repeat("d", 1001)}, "definition"},
		{"long example", model.WordInput{WordID: "a", Word: "b", Definition: "c", Example: strPtr(strings.Repeat("e", 501))}, "example"},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			s := memory.NewStore()
			svc := NewWordService(s.Words(), s.Assignments(), zap.NewNop())
			_, err := svc.Create(ctx, tt.in)
			e := requireCode(t, err, CodeValidation)
			assert.Equal(t, tt.field, e.Field)
		})
	}

	t.Run("storage failure", func(t *testing.T) {
		words := new(repoMocks.MockWordRepository)
		words.On("Create", ctx, mock.Anything).Return(nil, assert.AnError)
		svc := NewWordService(words, new(repoMocks.MockAssignmentRepository), zap.NewNop())
		_, err := svc.Create(ctx, appleInput())
		requireCode(t, err, CodeInternal)
	})
}

func TestWordService_Get(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	svc := NewWordService(s.Words(), s.Assignments(), zap.NewNop())

	_, err := svc.Get(ctx, "nope")
	requireCode(t, err, CodeWordNotFound)
	_, err = svc.Get(ctx, "bad id!")
	requireCode(t, err, CodeWordNotFound)
}

func TestWordService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("refreshes assignment copies", func(t *testing.T) {
		s := memory.NewStore()
		svc := NewWordService(s.Words(), s.Assignments(), zap.NewNop())
		w, err := svc.Create(ctx, appleInput())
		require.NoError(t, err)

		user, folder := uuid.New(), uuid.New()
		a := model.NewAssignment(user, folder, *w, w.CreatedAt)
		_, err = s.Assignments().Create(ctx, &a)
		require.NoError(t, err)

		out, err := svc.Update(ctx, "apple_001", model.WordPatch{Definition: model.Some("a crisp fruit"), Example: model.Some("apple pie")})
		require.NoError(t, err)
		assert.Equal(t, "apple", out.Word)
		assert.Equal(t, "a crisp fruit", out.Definition)
		assert.True(t, out.UpdatedAt.After(w.UpdatedAt))

		items, err := s.Assignments().ListByFolder(ctx, user, folder, repository.PageQuery{Limit: 10})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a crisp fruit", items[0].Definition)
		require.NotNil(t, items[0].Example)
		assert.Equal(t, "apple pie", *items[0].Example)
	})

	t.Run("explicit null clears example", func(t *testing.T) {
		s := memory.NewStore()
		svc := NewWordService(s.Words(), s.Assignments(), zap.NewNop())
		in := appleInput()
		in.Example = strPtr("I ate an apple")
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)

		out, err := svc.Update(ctx, "apple_001", model.WordPatch{Example: model.Null[string]()})
		require.NoError(t, err)
		assert.Nil(t, out.Example)
	})

	t.Run("empty patch", func(t *testing.T) {
		s := memory.NewStore()
		svc := NewWordService(s.Words(), s.Assignments(), zap.NewNop())
		_, err := svc.Update(ctx, "apple_001", model.WordPatch{})
		requireCode(t, err, CodeNoUpdateFields)
	})

	t.Run("unknown word", func(t *testing.T) {
		s := memory.NewStore()
		svc := NewWordService(s.Words(), s.Assignments(), zap.NewNop())
		_, err := svc.Update(ctx, "ghost", model.WordPatch{Word: model.Some("boo")})
		requireCode(t, err, CodeWordNotFound)
	})

	t.Run("null headword rejected", func(t *testing.T) {
		s := memory.NewStore()
		svc := NewWordService(s.Words(), s.Assignments(), zap.NewNop())
		_, err := svc.Update(ctx, "apple_001", model.WordPatch{Word: model.Null[string]()})
		requireCode(t, err, CodeValidation)
	})

	t.Run("refresh failure does not fail the update", func(t *testing.T) {
		words := new(repoMocks.MockWordRepository)
		assignments := new(repoMocks.MockAssignmentRepository)
		updated := &model.Word{WordID: "apple_001", Word: "apple", Definition: "new"}
		words.On("Update", ctx, "apple_001", mock.Anything, mock.Anything).Return(updated, nil)
		assignments.On("RefreshWord", ctx, *updated, mock.Anything).Return(int64(0), assert.AnError)

		svc := NewWordService(words, assignments, zap.NewNop())
		out, err := svc.Update(ctx, "apple_001", model.WordPatch{Definition: model.Some("new")})
		require.NoError(t, err)
		assert.Equal(t, "new", out.Definition)
		assignments.AssertExpectations(t)
	})
}
