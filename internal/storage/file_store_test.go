package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreLifecycle(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)
	fs.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }

	tmp, err := fs.SaveTemp("cv.pdf", strings.NewReader("content"))
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(tmp))
	assert.True(t, strings.HasPrefix(filepath.Base(tmp), "temp_"))
	assert.True(t, strings.HasSuffix(tmp, "_cv.pdf"))

	stored, err := fs.MoveProcessed(tmp, "cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "20250304_050607_cv.pdf", stored)

	_, err = os.Stat(tmp)
	assert.True(t, os.IsNotExist(err))

	b, err := os.ReadFile(fs.ProcessedPath(stored))
	require.NoError(t, err)
	assert.Equal(t, "content", string(b))
}

func TestFileStoreSaveTemp_StripsDirectories(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	require.NoError(t, err)

	path, err := fs.SaveTemp("../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_passwd"))

	_, err = fs.SaveTemp("..", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestFileStoreSaveTemp_SameNameGetsSeparateFiles(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	first, err := fs.SaveTemp("cv.pdf", strings.NewReader("first"))
	require.NoError(t, err)
	second, err := fs.SaveTemp("cv.pdf", strings.NewReader("second"))
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	b, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "first", string(b))
}

func TestFileStoreMoveProcessed_NeverReplaces(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	fs.now = func() time.Time { return time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC) }

	var stored []string
	for _, content := range []string{"one", "two", "three"} {
		tmp, err := fs.SaveTemp("cv.pdf", strings.NewReader(content))
		require.NoError(t, err)
		name, err := fs.MoveProcessed(tmp, "cv.pdf")
		require.NoError(t, err)
		stored = append(stored, name)
	}
	assert.Equal(t, []string{"20250304_050607_cv.pdf", "20250304_050607_1_cv.pdf", "20250304_050607_2_cv.pdf"}, stored)

	for i, content := range []string{"one", "two", "three"} {
		b, err := os.ReadFile(fs.ProcessedPath(stored[i]))
		require.NoError(t, err)
		assert.Equal(t, content, string(b))
	}
}

func TestFileStoreRemove_Missing(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, fs.Remove(filepath.Join(fs.Dir(), "nope")))
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "cv.docx", SafeName(`C:\Users\ana\cv.docx`))
	assert.Equal(t, "cv.docx", SafeName("cv.docx"))
	assert.Equal(t, "", SafeName(""))
}
