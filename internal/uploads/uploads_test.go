package uploads

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedAPI fails on the attempt numbers listed in failOn.
type scriptedAPI struct {
	calls     int
	failOn    map[int]bool
	filenames []string
}

func (a *scriptedAPI) UploadPhoto(_ context.Context, filename string, content io.Reader) (string, error) {
	a.calls++
	a.filenames = append(a.filenames, filename)
	if a.failOn[a.calls] {
		return "", errors.New("upload exploded")
	}
	if _, err := io.ReadAll(content); err != nil {
		return "", err
	}
	return "https://cdn.test/" + filename, nil
}

func writeTempFiles(t *testing.T, names ...string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, 0, len(names))
	for _, name := range names {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("image-bytes"), 0o600))
		paths = append(paths, p)
	}
	return paths
}

func TestUploadImage(t *testing.T) {
	api := &scriptedAPI{}
	s := NewService(api, zerolog.Nop())
	paths := writeTempFiles(t, "perfil.jpg")

	url := s.UploadImage(context.Background(), paths[0])
	require.NotNil(t, url)
	assert.Equal(t, "https://cdn.test/perfil.jpg", *url)
}

func TestUploadImageNeverReturnsErrors(t *testing.T) {
	api := &scriptedAPI{failOn: map[int]bool{1: true}}
	s := NewService(api, zerolog.Nop())

	// Empty path, unreadable path, failing upload: all yield nil.
	assert.Nil(t, s.UploadImage(context.Background(), ""))
	assert.Nil(t, s.UploadImage(context.Background(), filepath.Join(t.TempDir(), "missing.jpg")))

	paths := writeTempFiles(t, "x.jpg")
	assert.Nil(t, s.UploadImage(context.Background(), paths[0]))
}

func TestUploadImagesSkipsFailuresAndKeepsOrder(t *testing.T) {
	api := &scriptedAPI{failOn: map[int]bool{2: true}}
	s := NewService(api, zerolog.Nop())
	paths := writeTempFiles(t, "uno.jpg", "dos.jpg", "tres.jpg")

	urls := s.UploadImages(context.Background(), paths)

	assert.Equal(t, []string{"https://cdn.test/uno.jpg", "https://cdn.test/tres.jpg"}, urls)
	// Strictly one at a time: all three attempted, in order.
	assert.Equal(t, []string{"uno.jpg", "dos.jpg", "tres.jpg"}, api.filenames)
}

func TestUploadImagesEmptyBatch(t *testing.T) {
	s := NewService(&scriptedAPI{}, zerolog.Nop())
	assert.Empty(t, s.UploadImages(context.Background(), nil))
}
