package scaffold

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/0xalexb/pipeio/config"
	filefetcher "github.com/0xalexb/pipeio/config/fetcher/file"
	yamlparser "github.com/0xalexb/pipeio/config/parser/yaml"

	"github.com/spf13/afero"
)

// DefaultProject is the project name used when none is given.
const DefaultProject = "DataScience"

var (
	// ErrEmptyEntry is returned when a layout contains an empty path.
	ErrEmptyEntry = errors.New("layout entry must not be empty")

	// ErrAbsolutePath is returned when a layout entry is absolute.
	ErrAbsolutePath = errors.New("layout entry must be relative")

	// ErrPathEscapesRoot is returned when a layout entry points outside the root directory.
	ErrPathEscapesRoot = errors.New("layout entry escapes the root directory")

	// ErrInvalidProject is returned when the project name cannot be used as a directory name.
	ErrInvalidProject = errors.New("invalid project name")
)

// Layout is the list of files to scaffold.
type Layout struct {
	Project string   `yaml:"project"`
	Files   []string `yaml:"files"`
}

// DefaultFiles returns the standard project skeleton for project.
func DefaultFiles(project string) []string {
	pkg := "src/" + project

	return []string{
		".github/workflows/.gitkeep",
		pkg + "/__init__.py",
		pkg + "/components/__init__.py",
		pkg + "/utils/__init__.py",
		pkg + "/utils/common.py",
		pkg + "/config/__init__.py",
		pkg + "/config/configuration.py",
		pkg + "/pipeline/__init__.py",
		pkg + "/entity/__init__.py",
		pkg + "/entity/config_entity.py",
		pkg + "/constants/__init__.py",
		"config/config.yaml",
		"params.yaml",
		"schema.yaml",
		"main.py",
		"Dockerfile",
		"setup.py",
		"research/research.ipynb",
		"template/index.html",
	}
}

// DefaultLayout returns the standard layout for project, or for DefaultProject when project is empty.
func DefaultLayout(project string) Layout {
	layout := Layout{Project: project}
	layout.SetDefaults()

	return layout
}

// SetDefaults fills an empty project name and an empty file list.
func (l *Layout) SetDefaults() bool {
	changed := false

	if l.Project == "" {
		l.Project = DefaultProject
		changed = true
	}

	if len(l.Files) == 0 {
		l.Files = DefaultFiles(l.Project)
		changed = true
	}

	return changed
}

// Validate rejects entries that are empty, absolute or leave the root directory.
func (l *Layout) Validate() error {
	if strings.ContainsAny(l.Project, `/\`) || l.Project == "." || l.Project == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidProject, l.Project)
	}

	for i, entry := range l.Files {
		switch {
		case strings.TrimSpace(entry) == "":
			return fmt.Errorf("%w: entry %d", ErrEmptyEntry, i)
		case path.IsAbs(entry) || strings.HasPrefix(entry, `\`) || hasVolume(entry):
			return fmt.Errorf("%w: %q", ErrAbsolutePath, entry)
		}

		cleaned := path.Clean(entry)
		if cleaned == ".." || strings.HasPrefix(cleaned, "../") || cleaned == "." {
			return fmt.Errorf("%w: %q", ErrPathEscapesRoot, entry)
		}
	}

	return nil
}

func hasVolume(entry string) bool {
	return len(entry) >= 2 && entry[1] == ':'
}

// LoadLayout reads a layout from a YAML file on fsys. Missing fields get defaults.
func LoadLayout(fsys afero.Fs, layoutPath string) (*Layout, error) {
	fetcher, err := filefetcher.NewFetcher(fsys, layoutPath)()
	if err != nil {
		return nil, fmt.Errorf("loading layout: %w", err)
	}

	layout, err := config.Load(yamlparser.NewParser(yamlparser.WithStrict()), fetcher, &Layout{}, "")
	if err != nil {
		return nil, fmt.Errorf("loading layout %q: %w", layoutPath, err)
	}

	return layout, nil
}
