package file

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for a single file.
type Fetcher struct {
	path string
	data []byte
}

// NewFetcher returns a constructor that reads fpath from fsys and caches its contents.
// A nil fsys reads from the operating system filesystem.
func NewFetcher(fsys afero.Fs, fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		if fsys == nil {
			fsys = afero.NewOsFs()
		}

		cleanPath := filepath.Clean(fpath)

		stat, err := fsys.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := afero.ReadFile(fsys, cleanPath)
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			path: cleanPath,
			data: data,
		}, nil
	}
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.path
}

// Fetch returns a copy of the cached file contents.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
