package fileio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/0xalexb/pipeio/config"
	filefetcher "github.com/0xalexb/pipeio/config/fetcher/file"
	jsonparser "github.com/0xalexb/pipeio/config/parser/json"
	yamlparser "github.com/0xalexb/pipeio/config/parser/yaml"
	"github.com/0xalexb/pipeio/document"
)

const jsonIndent = "    "

// ReadYAML reads a YAML file holding a single document whose top level is a mapping.
// Syntax errors and multi-document streams are ErrParse. Documents without a
// mapping at the top, including empty, comment-only and null documents, are ErrConversion.
func (h *Helper) ReadYAML(path string) (*document.Document, error) {
	data, err := h.readFile(path)
	if err != nil {
		return nil, err
	}

	var raw any

	err = yamlparser.NewParser().Parse(data, &raw, "")
	if errors.Is(err, yamlparser.ErrEmptyData) {
		return nil, fmt.Errorf("%w: converting YAML content of %q to a document: %w", ErrConversion, path, err)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: yaml file %q: %w", ErrParse, path, err)
	}

	doc, err := toDocument(raw, "YAML", path)
	if err != nil {
		return nil, err
	}

	h.logger.Info("yaml file read", slog.String("path", path))

	return doc, nil
}

// ReadYAMLInto decodes the section of a YAML file at a colon-separated path into target.
// An empty section decodes the whole file. Targets implementing config.Defaulter and
// config.Validator get defaults applied and are validated.
func ReadYAMLInto[T any](h *Helper, path, section string, target *T) (*T, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}

	fetcher, err := filefetcher.NewFetcher(h.fs, path)()
	if err != nil {
		return nil, err //nolint:wrapcheck // fetcher errors already name the path
	}

	result, err := config.Load(yamlparser.NewParser(), fetcher, target, section)
	if err != nil {
		if errors.Is(err, yamlparser.ErrMultipleDocuments) {
			return nil, fmt.Errorf("%w: yaml file %q: %w", ErrParse, path, err)
		}

		return nil, fmt.Errorf("%w: yaml file %q: %w", ErrConversion, path, err)
	}

	h.logger.Info("yaml file read", slog.String("path", path), slog.String("section", section))

	return result, nil
}

// SaveJSON writes data as JSON indented with four spaces, replacing any existing file.
// Nothing is written when data cannot be encoded.
func (h *Helper) SaveJSON(path string, data map[string]any) error {
	if path == "" {
		return ErrEmptyPath
	}

	if data == nil {
		return ErrNilData
	}

	encoded, err := json.MarshalIndent(data, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("%w: json for %q: %w", ErrSerialize, path, err)
	}

	err = h.writeFile(path, func(w io.Writer) error {
		_, writeErr := w.Write(encoded)

		return writeErr //nolint:wrapcheck // wrapped by writeFile
	})
	if err != nil {
		return err
	}

	h.logger.Info("json file saved", slog.String("path", path))

	return nil
}

// LoadJSON reads a JSON file whose top level is an object.
// Integral numbers come back as int64 and other numbers as float64.
func (h *Helper) LoadJSON(path string) (*document.Document, error) {
	data, err := h.readFile(path)
	if err != nil {
		return nil, err
	}

	var raw any

	err = jsonparser.NewParser().Parse(data, &raw, "")
	if err != nil {
		return nil, fmt.Errorf("%w: json file %q: %w", ErrParse, path, err)
	}

	doc, err := toDocument(raw, "JSON", path)
	if err != nil {
		return nil, err
	}

	h.logger.Info("json file loaded", slog.String("path", path))

	return doc, nil
}

func toDocument(raw any, format, path string) (*document.Document, error) {
	doc, err := document.New(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: converting %s content of %q to a document: %w", ErrConversion, format, path, err)
	}

	return doc, nil
}
