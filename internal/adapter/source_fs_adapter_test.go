package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutview/internal/model"
)

func TestLocalSourceFSAdapter_Walk(t *testing.T) {
	t.Run("non recursive skips nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "report.yaml"), "mutants: []\n")

		nestedDir := filepath.Join(root, "shard_1")
		mustMkdir(t, nestedDir)
		writeTestFile(t, filepath.Join(nestedDir, "report.yaml"), "mutants: []\n")

		var visited []string
		err := adapter.Walk(m.Path(root), false, func(path string, _ os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)

		assert.NotContains(t, visited, filepath.Join(nestedDir, "report.yaml"))
		assert.Contains(t, visited, filepath.Join(root, "report.yaml"))
	})

	t.Run("recursive visits nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		nestedDir := filepath.Join(root, "shard_1")
		mustMkdir(t, nestedDir)
		child := filepath.Join(nestedDir, "report.yaml")
		writeTestFile(t, child, "mutants: []\n")

		var visited []string
		err := adapter.Walk(m.Path(root), true, func(path string, _ os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			visited = append(visited, path)
			return nil
		})
		require.NoError(t, err)
		assert.Contains(t, visited, child)
	})
}

func TestLocalSourceFSAdapter_ReadFileAndLines(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "main.c")
	content := "int main() {\n  return a < b;\n}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, content, string(got))

	lines, err := adapter.ReadLines(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, []string{"int main() {", "  return a < b;", "}"}, lines)

	_, err = adapter.ReadLines(m.Path(filepath.Join(t.TempDir(), "missing.c")))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalSourceFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "report.yaml")
	content := []byte("mutants: []\n")
	writeTestBytes(t, path, content)

	hash, err := adapter.HashFile(m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%x", sha256.Sum256(content)), hash)
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "report.yaml")
	writeTestFile(t, path, "mutants: []\n")

	info, err := adapter.FileInfo(m.Path(path))
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	dirInfo, err := adapter.FileInfo(m.Path(root))
	require.NoError(t, err)
	assert.True(t, dirInfo.IsDir())
}

func TestLocalSourceFSAdapter_WriteFileCreatesParents(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	path := adapter.JoinPath(t.TempDir(), "nested", "dir", "report.msgpack")
	require.NoError(t, adapter.WriteFile(path, []byte{0x80}, 0o644))

	got, err := os.ReadFile(string(path))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80}, got)
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, contents, 0o644))
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.Mkdir(path, 0o755))
}
