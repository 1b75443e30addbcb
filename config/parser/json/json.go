package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrInvalidJSON is returned when the input is not a single well-formed JSON value.
var ErrInvalidJSON = errors.New("invalid json")

// ErrPathNotFound is returned when the specified path is not found in the JSON document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser for JSON data.
type Parser struct {
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict rejects object keys that have no matching struct field.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// NewParser creates a new JSON parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse decodes JSON data into target. An empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if !gjson.ValidBytes(data) {
		return syntaxError(data)
	}

	raw := data

	if path != "" {
		result := gjson.GetBytes(data, convertToGJSONPath(path))
		if !result.Exists() {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		raw = []byte(result.Raw)
	}

	err := p.decode(raw, target)
	if err != nil {
		if path == "" {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

func (p *Parser) decode(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	if p.strict {
		decoder.DisallowUnknownFields()
	}

	err := decoder.Decode(target)
	if err != nil {
		return err //nolint:wrapcheck // wrapped by Parse with path context
	}

	if generic, ok := target.(*any); ok {
		*generic = normalizeNumbers(*generic)
	}

	return nil
}

func syntaxError(data []byte) error {
	var probe any

	err := json.Unmarshal(data, &probe)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return ErrInvalidJSON
}

// normalizeNumbers replaces json.Number values with int64 or float64.
func normalizeNumbers(value any) any {
	switch typed := value.(type) {
	case json.Number:
		if i, err := typed.Int64(); err == nil {
			return i
		}

		if u, err := strconv.ParseUint(typed.String(), 10, 64); err == nil {
			return u
		}

		if f, err := typed.Float64(); err == nil {
			return f
		}

		return typed.String()
	case map[string]any:
		for key, item := range typed {
			typed[key] = normalizeNumbers(item)
		}

		return typed
	case []any:
		for i, item := range typed {
			typed[i] = normalizeNumbers(item)
		}

		return typed
	default:
		return value
	}
}

const gjsonMeta = `\.*?|#@!`

func convertToGJSONPath(path string) string {
	parts := strings.Split(path, ":")
	for i, part := range parts {
		parts[i] = escapeKey(part)
	}

	return strings.Join(parts, ".")
}

func escapeKey(key string) string {
	if !strings.ContainsAny(key, gjsonMeta) {
		return key
	}

	var builder strings.Builder

	for _, r := range key {
		if strings.ContainsRune(gjsonMeta, r) {
			builder.WriteByte('\\')
		}

		builder.WriteRune(r)
	}

	return builder.String()
}
