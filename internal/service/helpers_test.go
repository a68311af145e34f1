package service

import (
	"database/sql"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCode(t *testing.T, err error, code string) *Error {
	t.Helper()
	require.Error(t, err)
	e, ok := AsError(err)
	require.True(t, ok, "expected *service.Error, got %T: %v", err, err)
	assert.Equal(t, code, e.Code)
	return e
}

func intPtr(v int) *int { return &v }

func TestError(t *testing.T) {
	err := newNotFound(CodeFolderNotFound, "folder not found")
	assert.ErrorIs(t, err, &Error{Code: CodeFolderNotFound})
	assert.NotErrorIs(t, err, &Error{Code: CodeWordNotFound})
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Equal(t, "FOLDER_NOT_FOUND: folder not found", err.Error())

	assert.Equal(t, CodeInternal, CodeOf(assert.AnError))
	internal := Internal(assert.AnError)
	assert.ErrorIs(t, internal, assert.AnError)
	assert.Equal(t, "internal server error", internal.Message)
}

func TestParseObjectID(t *testing.T) {
	id, err := ParseObjectID("folder_id", "6f1c1f7e-93a4-4f0a-8d6e-1a1b2c3d4e5f")
	require.NoError(t, err)
	assert.Equal(t, "6f1c1f7e-93a4-4f0a-8d6e-1a1b2c3d4e5f", id.String())

	for _, raw := range []string{"", "abc", "507f1f77bcf86cd799439011", "6f1c1f7e-93a4-4f0a-8d6e-1a1b2c3d4e5"} {
		_, err := ParseObjectID("folder_id", raw)
		e := requireCode(t, err, CodeMalformedID)
		assert.Equal(t, "folder_id", e.Field)
		assert.Equal(t, http.StatusBadRequest, e.Status)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		in        PageParams
		want      Page
		wantField string
	}{
		{name: "defaults", in: PageParams{}, want: Page{Limit: 100, Skip: 0}},
		{name: "explicit", in: PageParams{Limit: intPtr(5), Skip: intPtr(10)}, want: Page{Limit: 5, Skip: 10}},
		{name: "lower bound", in: PageParams{Limit: intPtr(1)}, want: Page{Limit: 1}},
		{name: "upper bound", in: PageParams{Limit: intPtr(1000)}, want: Page{Limit: 1000}},
		{name: "limit zero", in: PageParams{Limit: intPtr(0)}, wantField: "limit"},
		{name: "limit too large", in: PageParams{Limit: intPtr(1001)}, wantField: "limit"},
		{name: "negative skip", in: PageParams{Skip: intPtr(-1)}, wantField: "skip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Clamp(tt.in)
			if tt.wantField != "" {
				e := requireCode(t, err, CodeInvalidPagination)
				assert.Equal(t, tt.wantField, e.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePageParams(t *testing.T) {
	p, err := ParsePageParams("", " ")
	require.NoError(t, err)
	assert.Nil(t, p.Limit)
	assert.Nil(t, p.Skip)

	p, err = ParsePageParams("20", "40")
	require.NoError(t, err)
	assert.Equal(t, 20, *p.Limit)
	assert.Equal(t, 40, *p.Skip)

	_, err = ParsePageParams("ten", "")
	e := requireCode(t, err, CodeInvalidPagination)
	assert.Equal(t, "limit", e.Field)

	_, err = ParsePageParams("1", "1.5")
	e = requireCode(t, err, CodeInvalidPagination)
	assert.Equal(t, "skip", e.Field)
}

func TestValidBusinessID(t *testing.T) {
	assert.True(t, ValidBusinessID("apple_001"))
	assert.True(t, ValidBusinessID("APPLE-1"))
	assert.False(t, ValidBusinessID(""))
	assert.False(t, ValidBusinessID("apple 001"))
	assert.False(t, ValidBusinessID("../etc"))
	assert.True(t, ValidBusinessID(strings.Repeat("a", 50)))
	assert.False(t, ValidBusinessID(strings.Repeat("a", 51)))
}

func errNoRows() error { return sql.ErrNoRows }
