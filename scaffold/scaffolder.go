package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/0xalexb/pipeio/logging"

	"github.com/spf13/afero"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrNotRegularFile is returned when a layout entry already exists as a directory.
var ErrNotRegularFile = errors.New("path exists and is not a regular file")

// Result reports what a run did, using the layout's own entries.
type Result struct {
	Created  []string
	Existing []string
}

// Scaffolder creates layout files below a root directory.
type Scaffolder struct {
	fs     afero.Fs
	logger *slog.Logger
	root   string
	now    func() time.Time
}

// New creates a Scaffolder rooted at root. A nil logger discards records;
// a nil fsys uses the OS filesystem; an empty root means the working directory.
func New(logger *slog.Logger, fsys afero.Fs, root string) *Scaffolder {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	if root == "" {
		root = "."
	}

	return &Scaffolder{
		fs:     fsys,
		logger: logging.OrDiscard(logger),
		root:   root,
		now:    time.Now,
	}
}

// Run validates layout and creates each entry in order.
// It stops at the first failure; files created before it are kept.
func (s *Scaffolder) Run(layout Layout) (Result, error) {
	var result Result

	err := layout.Validate()
	if err != nil {
		return result, err
	}

	for _, entry := range layout.Files {
		created, err := s.ensureFile(entry)
		if err != nil {
			return result, err
		}

		if created {
			result.Created = append(result.Created, entry)
		} else {
			result.Existing = append(result.Existing, entry)
		}
	}

	return result, nil
}

func (s *Scaffolder) ensureFile(entry string) (bool, error) {
	target := filepath.Join(s.root, filepath.FromSlash(entry))
	dir := filepath.Dir(target)

	s.logger.Info("processing file",
		slog.String("name", filepath.Base(target)),
		slog.String("dir", dir),
	)

	err := s.fs.MkdirAll(dir, dirPerm)
	if err != nil {
		return false, fmt.Errorf("creating directory %q: %w", dir, err)
	}

	info, err := s.fs.Stat(target)

	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = s.create(target)
		if err != nil {
			return false, err
		}
	case err != nil:
		return false, fmt.Errorf("stat %q: %w", target, err)
	case info.IsDir():
		return false, fmt.Errorf("%q: %w", target, ErrNotRegularFile)
	case info.Size() == 0:
		now := s.now()

		err = s.fs.Chtimes(target, now, now)
		if err != nil {
			return false, fmt.Errorf("touching %q: %w", target, err)
		}
	default:
		s.logger.Info("file already exists", slog.String("path", target))

		return false, nil
	}

	s.logger.Info("creating file", slog.String("path", target))

	return true, nil
}

func (s *Scaffolder) create(target string) error {
	file, err := s.fs.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return fmt.Errorf("creating %q: %w", target, err)
	}

	err = file.Close()
	if err != nil {
		return fmt.Errorf("closing %q: %w", target, err)
	}

	return nil
}
