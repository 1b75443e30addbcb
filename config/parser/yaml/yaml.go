package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ErrMultipleDocuments is returned when a whole-document parse finds more than one YAML document.
var ErrMultipleDocuments = errors.New("expected a single document")

// Parser implements config.Parser for YAML data.
type Parser struct {
	options []yaml.DecodeOption
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict rejects mapping keys that have no matching struct field.
func WithStrict() Option {
	return func(p *Parser) {
		p.options = append(p.options, yaml.Strict())
	}
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse decodes YAML data into target. An empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		return p.parseSingle(data, target)
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, p.options...)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// parseSingle decodes the only document in data. Streams holding no document
// yield ErrEmptyData and streams holding more than one yield ErrMultipleDocuments.
func (p *Parser) parseSingle(data []byte, target any) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data), p.options...)

	err := decoder.Decode(target)
	if errors.Is(err, io.EOF) {
		return ErrEmptyData
	}

	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	var next any

	err = decoder.Decode(&next)
	if errors.Is(err, io.EOF) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("unmarshal error: %w", err)
	}

	return ErrMultipleDocuments
}

func convertToYAMLPath(path string) string {
	return "$." + strings.ReplaceAll(path, ":", ".")
}
