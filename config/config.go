package config

import (
	"errors"
	"fmt"
)

// ErrFetch wraps failures of a DataFetcher.
var ErrFetch = errors.New("reading data error")

// ErrParse wraps failures of a Parser.
var ErrParse = errors.New("parsing error")

// ErrValidate wraps failures of a Validator.
var ErrValidate = errors.New("validating error")

// Parser decodes configuration data into a target structure.
//
// The path parameter selects a nested section using colon (:) as the
// separator; an empty path decodes the whole document.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Load fetches data, parses the section at path into target, applies defaults and validates.
func Load[T any](parser Parser, fetcher DataFetcher, target *T, path string) (*T, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetch, err)
	}

	err = parser.Parse(data, target, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if defaulter, ok := any(target).(Defaulter); ok {
		defaulter.SetDefaults()
	}

	if validator, ok := any(target).(Validator); ok {
		err = validator.Validate()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrValidate, err)
		}
	}

	return target, nil
}

// Provider returns an Fx-friendly constructor around Load.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, fetcher DataFetcher) (*T, error) {
		return Load(parser, fetcher, target, path)
	}
}
