package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewLocal(dir)
	require.NoError(t, err)

	payload := []byte("\x89PNG\r\n\x1a\nfake")
	info, err := s.Put(ctx, "image_users/apple_001.png", bytes.NewReader(payload), PutObjectOptions{
		Size:        int64(len(payload)),
		ContentType: "image/png",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(len(payload)), info.Size)
	assert.Equal(t, "image/png", info.ContentType)
	assert.NotEmpty(t, info.ETag)

	rc, got, err := s.Get(ctx, "image_users/apple_001.png")
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Equal(t, payload, body)
	assert.Equal(t, "image/png", got.ContentType)

	require.NoError(t, s.Delete(ctx, "image_users/apple_001.png"))
	require.NoError(t, s.Delete(ctx, "image_users/apple_001.png"))

	_, _, err = s.Get(ctx, "image_users/apple_001.png")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestLocalStorage_SizeMismatchLeavesNothingBehind(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocal(dir)
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "image_users/x.png", bytes.NewReader([]byte("abc")), PutObjectOptions{Size: 10})
	require.Error(t, err)

	entries, err := os.ReadDir(filepath.Join(dir, "image_users"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = s.Put(context.Background(), "../escape.png", bytes.NewReader(nil), PutObjectOptions{Size: -1})
	assert.Error(t, err)
}

func TestLocalStorage_ConcurrentPutsLeaveOneCompleteObject(t *testing.T) {
	ctx := context.Background()
	s, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	a := bytes.Repeat([]byte("a"), 64*1024)
	b := bytes.Repeat([]byte("b"), 64*1024)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		data := a
		if i%2 == 1 {
			data = b
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Put(ctx, "image_users/race.webp", bytes.NewReader(data), PutObjectOptions{Size: int64(len(data))})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rc, info, err := s.Get(ctx, "image_users/race.webp")
	require.NoError(t, err)
	defer rc.Close()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(body, a) || bytes.Equal(body, b))
	assert.Equal(t, "image/webp", info.ContentType)
}
