package model

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderPatch_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantEmpty bool
		check     func(t *testing.T, p FolderPatch)
	}{
		{
			name:      "empty object",
			body:      `{}`,
			wantEmpty: true,
		},
		{
			name: "value present",
			body: `{"name":"Fruits"}`,
			check: func(t *testing.T, p FolderPatch) {
				assert.True(t, p.Name.Set)
				assert.False(t, p.Name.Null)
				assert.Equal(t, "Fruits", p.Name.Value)
				assert.False(t, p.Description.Set)
			},
		},
		{
			name: "explicit null clears",
			body: `{"description":null}`,
			check: func(t *testing.T, p FolderPatch) {
				assert.True(t, p.Description.Set)
				assert.True(t, p.Description.Null)
				assert.Nil(t, p.Description.Ptr())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p FolderPatch
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.wantEmpty, p.IsEmpty())
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}

func TestWordPatch_IsEmpty(t *testing.T) {
	assert.True(t, WordPatch{}.IsEmpty())
	assert.False(t, WordPatch{Example: Null[string]()}.IsEmpty())
	assert.False(t, WordPatch{Definition: Some("a round fruit")}.IsEmpty())
}

func TestNullable_Ptr(t *testing.T) {
	assert.Nil(t, Nullable[string]{}.Ptr())
	assert.Nil(t, Null[string]().Ptr())

	v := Some("apple").Ptr()
	require.NotNil(t, v)
	assert.Equal(t, "apple", *v)
}

func TestNullable_Marshal(t *testing.T) {
	b, err := json.Marshal(WordPatch{Word: Some("pear"), Example: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"word":"pear","definition":null,"example":null}`, string(b))
}

func TestNewAssignment_CopiesDictionaryFields(t *testing.T) {
	example := "I ate an apple"
	w := Word{WordID: "apple_001", Word: "apple", Definition: "a round fruit", Example: &example}

	a := NewAssignment(uuid.New(), uuid.New(), w, w.CreatedAt)

	assert.Equal(t, "apple_001", a.WordID)
	assert.Equal(t, "apple", a.Word)
	assert.Equal(t, "a round fruit", a.Definition)
	assert.Equal(t, &example, a.Example)
	assert.Nil(t, a.ImageURL)
	assert.Equal(t, a.CreatedAt, a.UpdatedAt)
}
