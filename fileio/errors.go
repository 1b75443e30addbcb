package fileio

import "errors"

var (
	// ErrEmptyPath is returned when a path argument is empty.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrNilData is returned when there is nothing to save.
	ErrNilData = errors.New("data must not be nil")

	// ErrParse wraps YAML and JSON syntax errors, multi-document YAML streams and empty JSON files.
	ErrParse = errors.New("parse error")

	// ErrConversion is returned when parsed or decoded content cannot take the requested shape,
	// such as a YAML scalar where a mapping is required.
	ErrConversion = errors.New("conversion error")

	// ErrSerialize is returned when a value cannot be encoded.
	ErrSerialize = errors.New("serialization error")

	// ErrBinaryFormat is returned when a binary payload file has an unknown header or corrupt body.
	ErrBinaryFormat = errors.New("invalid binary payload")
)
