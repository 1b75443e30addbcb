package scaffold

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/0xalexb/pipeio/logging"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScaffolder(fsys afero.Fs, root string) (*Scaffolder, *bytes.Buffer) {
	var buf bytes.Buffer

	scaffolder := New(logging.NewLogger(logging.LoggerConfig{Format: "text"}, &buf), fsys, root)

	return scaffolder, &buf
}

func TestScaffolder_Run_CreatesDefaultLayout(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	scaffolder, logs := newTestScaffolder(fsys, "project")

	layout := DefaultLayout("")

	result, err := scaffolder.Run(layout)
	require.NoError(t, err)
	assert.Equal(t, layout.Files, result.Created)
	assert.Empty(t, result.Existing)

	for _, entry := range layout.Files {
		info, err := fsys.Stat(filepath.Join("project", filepath.FromSlash(entry)))
		require.NoError(t, err, entry)
		assert.False(t, info.IsDir())
		assert.Zero(t, info.Size())
	}

	output := logs.String()
	assert.Equal(t, len(layout.Files), strings.Count(output, `msg="processing file"`))
	assert.Equal(t, len(layout.Files), strings.Count(output, `msg="creating file"`))
}

func TestScaffolder_Run_LeavesNonEmptyFilesAlone(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "main.py", []byte("print('hi')\n"), 0o644))

	scaffolder, logs := newTestScaffolder(fsys, "")

	result, err := scaffolder.Run(Layout{Project: "p", Files: []string{"main.py", "setup.py"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"setup.py"}, result.Created)
	assert.Equal(t, []string{"main.py"}, result.Existing)

	content, err := afero.ReadFile(fsys, "main.py")
	require.NoError(t, err)
	assert.Equal(t, "print('hi')\n", string(content))
	assert.Contains(t, logs.String(), `msg="file already exists"`)
}

func TestScaffolder_Run_TouchesEmptyFiles(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "params.yaml", nil, 0o644))

	old := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, fsys.Chtimes("params.yaml", old, old))

	scaffolder, _ := newTestScaffolder(fsys, "")
	fixed := time.Date(2026, time.October, 16, 12, 0, 0, 0, time.UTC)
	scaffolder.now = func() time.Time { return fixed }

	result, err := scaffolder.Run(Layout{Project: "p", Files: []string{"params.yaml"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"params.yaml"}, result.Created)

	info, err := fsys.Stat("params.yaml")
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(fixed))
}

func TestScaffolder_Run_IsRepeatable(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	scaffolder, _ := newTestScaffolder(afero.NewOsFs(), root)
	layout := DefaultLayout("Churn")

	_, err := scaffolder.Run(layout)
	require.NoError(t, err)

	result, err := scaffolder.Run(layout)
	require.NoError(t, err)
	assert.Len(t, result.Created, len(layout.Files), "empty files are touched again")

	assert.FileExists(t, filepath.Join(root, "src", "Churn", "utils", "common.py"))
	assert.DirExists(t, filepath.Join(root, ".github", "workflows"))
}

func TestScaffolder_Run_Errors(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("research/research.ipynb", 0o755))

	scaffolder, _ := newTestScaffolder(fsys, "")

	result, err := scaffolder.Run(Layout{Project: "p", Files: []string{"main.py", "research/research.ipynb", "setup.py"}})
	require.ErrorIs(t, err, ErrNotRegularFile)
	assert.Equal(t, []string{"main.py"}, result.Created, "entries before the failure are kept")

	exists, err := afero.Exists(fsys, "setup.py")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = scaffolder.Run(Layout{Project: "p", Files: []string{"../escape"}})
	require.ErrorIs(t, err, ErrPathEscapesRoot)

	readOnly, _ := newTestScaffolder(afero.NewReadOnlyFs(afero.NewMemMapFs()), "")

	_, err = readOnly.Run(Layout{Project: "p", Files: []string{"src/p/__init__.py"}})
	require.Error(t, err)
}
