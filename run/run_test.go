package run

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateName(t *testing.T) {
	name := GenerateName()
	parts := strings.Split(name, "-")
	require.Len(t, parts, 2)
	assert.Contains(t, adjectives, parts[0])
	assert.Contains(t, nouns, parts[1])
}

func TestCreateDirectory(t *testing.T) {
	base := t.TempDir()
	d, err := CreateDirectory(base)
	require.NoError(t, err)

	assert.DirExists(t, d.Path)
	assert.True(t, filepath.IsAbs(d.Path))
	assert.Equal(t, filepath.Join(d.Path, "beam.png"), d.GetFilePath("beam.png"))

	target, err := os.Readlink(filepath.Join(base, LatestSymlink))
	require.NoError(t, err)
	assert.Equal(t, d.ID, target)
}

func TestCopyFile(t *testing.T) {
	d, err := CreateDirectory(t.TempDir())
	require.NoError(t, err)

	src := filepath.Join("..", "testdata", "levels", "intro.txt")
	require.NoError(t, d.CopyFile(src))
	want, err := os.ReadFile(src)
	require.NoError(t, err)
	got, err := os.ReadFile(d.GetFilePath("intro.txt"))
	require.NoError(t, err)
	assert.Equal(t, want, got)

	assert.Error(t, d.CopyFile(filepath.Join("..", "testdata", "levels", "missing.txt")))
}
