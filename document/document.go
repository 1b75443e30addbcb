package document

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// ErrNotMapping is returned when the value given to New is not a mapping.
var ErrNotMapping = errors.New("value is not a mapping")

// ErrKeyNotFound is returned when a key or path does not exist in the document.
var ErrKeyNotFound = errors.New("key not found")

// ErrTypeMismatch is returned when a typed accessor finds a value of another type.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrDecode is returned when Decode cannot fill the target.
var ErrDecode = errors.New("decode error")

const pathSeparator = "."

// Document is an immutable view over a string-keyed mapping.
type Document struct {
	entries map[string]any
}

// New builds a Document from a decoded tree. The top-level value must be a
// map[string]any or map[any]any; any other value yields ErrNotMapping.
func New(raw any) (*Document, error) {
	mapping, ok := asMapping(raw)
	if !ok {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, describe(raw))
	}

	return fromMapping(mapping), nil
}

// Empty returns a document without keys.
func Empty() *Document {
	return &Document{entries: map[string]any{}}
}

func fromMapping(mapping map[string]any) *Document {
	entries := make(map[string]any, len(mapping))
	for key, value := range mapping {
		entries[key] = normalize(value)
	}

	return &Document{entries: entries}
}

func asMapping(raw any) (map[string]any, bool) {
	switch typed := raw.(type) {
	case map[string]any:
		return typed, true
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for key, value := range typed {
			converted[fmt.Sprint(key)] = value
		}

		return converted, true
	case *Document:
		if typed == nil {
			return nil, false
		}

		return typed.entries, true
	default:
		return nil, false
	}
}

func normalize(value any) any {
	if mapping, ok := asMapping(value); ok {
		return fromMapping(mapping)
	}

	if list, ok := value.([]any); ok {
		normalized := make([]any, len(list))
		for i, item := range list {
			normalized[i] = normalize(item)
		}

		return normalized
	}

	return value
}

// Len returns the number of top-level keys.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}

	return len(d.entries)
}

// Keys returns the top-level keys in sorted order.
func (d *Document) Keys() []string {
	if d == nil {
		return nil
	}

	keys := make([]string, 0, len(d.entries))
	for key := range d.entries {
		keys = append(keys, key)
	}

	slices.Sort(keys)

	return keys
}

// Has reports whether key exists at the top level.
func (d *Document) Has(key string) bool {
	_, ok := d.Lookup(key)

	return ok
}

// Lookup returns the value stored under key and whether it exists.
// Nested mappings are returned as *Document and sequences as fresh []any copies.
func (d *Document) Lookup(key string) (any, bool) {
	if d == nil {
		return nil, false
	}

	value, ok := d.entries[key]
	if !ok {
		return nil, false
	}

	return detach(value), true
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (d *Document) Get(key string) (any, error) {
	value, ok := d.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	return value, nil
}

// Path resolves a dotted path such as "model.params.depth".
func (d *Document) Path(path string) (any, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrKeyNotFound)
	}

	current := d
	parts := strings.Split(path, pathSeparator)

	for i, part := range parts {
		value, ok := current.Lookup(part)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, strings.Join(parts[:i+1], pathSeparator))
		}

		if i == len(parts)-1 {
			return value, nil
		}

		nested, isDocument := value.(*Document)
		if !isDocument {
			return nil, fmt.Errorf("%w: %q is %s, not a mapping",
				ErrTypeMismatch, strings.Join(parts[:i+1], pathSeparator), describe(value))
		}

		current = nested
	}

	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, path)
}

// Document returns the nested mapping stored at path.
func (d *Document) Document(path string) (*Document, error) {
	return typed(d, path, "mapping", func(value any) (*Document, bool) {
		nested, ok := value.(*Document)

		return nested, ok
	})
}

// String returns the string stored at path.
func (d *Document) String(path string) (string, error) {
	return typed(d, path, "string", func(value any) (string, bool) {
		s, ok := value.(string)

		return s, ok
	})
}

// Bool returns the boolean stored at path.
func (d *Document) Bool(path string) (bool, error) {
	return typed(d, path, "bool", func(value any) (bool, bool) {
		b, ok := value.(bool)

		return b, ok
	})
}

// Int returns the integer stored at path. Integral floats are accepted.
func (d *Document) Int(path string) (int64, error) {
	return typed(d, path, "integer", toInt)
}

// Float returns the number stored at path as float64.
func (d *Document) Float(path string) (float64, error) {
	return typed(d, path, "number", toFloat)
}

// List returns a copy of the sequence stored at path.
func (d *Document) List(path string) ([]any, error) {
	return typed(d, path, "sequence", func(value any) ([]any, bool) {
		list, ok := value.([]any)

		return list, ok
	})
}

// Map returns a deep copy of the document as plain maps and slices.
func (d *Document) Map() map[string]any {
	if d == nil {
		return nil
	}

	result := make(map[string]any, len(d.entries))
	for key, value := range d.entries {
		result[key] = plain(value)
	}

	return result
}

// Decode fills target (a pointer to a struct or map) from the document
// using mapstructure conventions.
func (d *Document) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		ErrorUnused:      false,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	err = decoder.Decode(d.Map())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return nil
}

func typed[T any](d *Document, path, kind string, convert func(any) (T, bool)) (T, error) {
	var zero T

	value, err := d.Path(path)
	if err != nil {
		return zero, err
	}

	result, ok := convert(value)
	if !ok {
		return zero, fmt.Errorf("%w: %q is %s, not %s", ErrTypeMismatch, path, describe(value), kind)
	}

	return result, nil
}

func detach(value any) any {
	list, ok := value.([]any)
	if !ok {
		return value
	}

	copied := make([]any, len(list))
	for i, item := range list {
		copied[i] = detach(item)
	}

	return copied
}

func plain(value any) any {
	switch typed := value.(type) {
	case *Document:
		return typed.Map()
	case []any:
		copied := make([]any, len(typed))
		for i, item := range typed {
			copied[i] = plain(item)
		}

		return copied
	default:
		return value
	}
}

func toInt(value any) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return toInt(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}

		return int64(n), true
	case float32:
		return toInt(float64(n))
	case float64:
		if n != math.Trunc(n) || n > math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}

		return int64(n), true
	default:
		return 0, false
	}
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		i, ok := toInt(value)

		return float64(i), ok
	}
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case *Document:
		return "a mapping"
	case []any:
		return "a sequence"
	default:
		return fmt.Sprintf("a %T", value)
	}
}
