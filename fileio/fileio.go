package fileio

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	filefetcher "github.com/0xalexb/pipeio/config/fetcher/file"
	"github.com/0xalexb/pipeio/logging"

	"github.com/spf13/afero"
)

const (
	defaultFileMode os.FileMode = 0o644
	defaultDirMode  os.FileMode = 0o755
)

// Helper performs file operations on a filesystem and logs successes.
type Helper struct {
	logger   *slog.Logger
	fs       afero.Fs
	fileMode os.FileMode
	dirMode  os.FileMode
	compress bool
}

// Option configures a Helper.
type Option func(*Helper)

// WithBinaryCompression enables zstd compression for SaveBinary.
// LoadBinary reads both compressed and uncompressed payloads regardless.
func WithBinaryCompression(enabled bool) Option {
	return func(h *Helper) {
		h.compress = enabled
	}
}

// WithFileMode sets the permission bits for newly created files.
func WithFileMode(mode os.FileMode) Option {
	return func(h *Helper) {
		h.fileMode = mode
	}
}

// WithDirMode sets the permission bits for directories created by CreateDirectories.
func WithDirMode(mode os.FileMode) Option {
	return func(h *Helper) {
		h.dirMode = mode
	}
}

// New creates a Helper. A nil logger discards records; a nil fsys uses the OS filesystem.
func New(logger *slog.Logger, fsys afero.Fs, opts ...Option) *Helper {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	helper := &Helper{
		logger:   logging.OrDiscard(logger),
		fs:       fsys,
		fileMode: defaultFileMode,
		dirMode:  defaultDirMode,
	}

	for _, apply := range opts {
		apply(helper)
	}

	return helper
}

// CreateDirectories creates every directory in paths along with missing parents.
// Existing directories are fine. Processing stops at the first failure; directories
// created for earlier entries are left in place.
func (h *Helper) CreateDirectories(paths []string, verbose bool) error {
	for _, path := range paths {
		if path == "" {
			return ErrEmptyPath
		}

		err := h.fs.MkdirAll(path, h.dirMode)
		if err != nil {
			return fmt.Errorf("creating directory %q: %w", path, err)
		}

		if verbose {
			h.logger.Info("directory created or already exists", slog.String("path", path))
		}
	}

	return nil
}

func (h *Helper) readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	fetcher, err := filefetcher.NewFetcher(h.fs, path)()
	if err != nil {
		return nil, err //nolint:wrapcheck // fetcher errors already name the path
	}

	return fetcher.Fetch()
}

// writeFile truncates or creates path and hands the open file to write.
// The file is closed on every return path; a close failure is reported when write succeeded.
//
//nolint:nonamedreturns // named return lets the deferred Close report its error.
func (h *Helper) writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := h.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, h.fileMode)
	if err != nil {
		return fmt.Errorf("opening %q for writing: %w", path, err)
	}

	defer func() {
		closeErr := file.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("closing %q: %w", path, closeErr)
		}
	}()

	err = write(file)
	if err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}

	return nil
}
