package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch_FromDisk(t *testing.T) {
	t.Parallel()

	content := []byte("artifacts_root: artifacts\n")
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, os.WriteFile(configPath, content, 0o600))

	fetcher, err := NewFetcher(afero.NewOsFs(), configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Equal(t, configPath, fetcher.Path())
}

func TestFetcher_NilFilesystemUsesDisk(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("alpha: 0.2"), 0o600))

	fetcher, err := NewFetcher(nil, configPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []byte("alpha: 0.2"), data)
}

func TestFetcher_FromMemory(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "config/config.yaml", []byte("a: 1"), 0o600))

	fetcher, err := NewFetcher(fsys, "config/./config.yaml")()
	require.NoError(t, err)
	assert.Equal(t, filepath.Clean("config/config.yaml"), fetcher.Path())

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []byte("a: 1"), data)
}

func TestFetcher_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(afero.NewMemMapFs(), "/nonexistent/config.yaml")()

	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestFetcher_DirectoryPath(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(afero.NewOsFs(), t.TempDir())()

	require.ErrorIs(t, err, ErrPathIsDirectory)
	assert.Nil(t, fetcher)
}

func TestFetcher_EmptyFile(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "empty.yaml", nil, 0o600))

	fetcher, err := NewFetcher(fsys, "empty.yaml")()
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFetcher_CachesContentAtConstruction(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "params.yaml", []byte(`version: "1"`), 0o600))

	fetcher, err := NewFetcher(fsys, "params.yaml")()
	require.NoError(t, err)

	require.NoError(t, afero.WriteFile(fsys, "params.yaml", []byte(`version: "2"`), 0o600))

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []byte(`version: "1"`), data)
}

func TestFetcher_ReturnsCopies(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "params.yaml", []byte("original"), 0o600))

	fetcher, err := NewFetcher(fsys, "params.yaml")()
	require.NoError(t, err)

	first, err := fetcher.Fetch()
	require.NoError(t, err)

	first[0] = 'X'

	second, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), second)
}
