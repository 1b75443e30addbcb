// Package fileio provides the file helpers pipeline code uses instead of touching
// serialization libraries directly.
//
// A Helper reads YAML and JSON configuration into read-only document.Document
// views, writes JSON with four-space indentation, ensures directories exist,
// and persists arbitrary Go values as binary payloads (msgpack, optionally
// zstd-compressed, inside a small versioned container). Binary payloads keep
// exported struct fields only; unexported fields load as zero values.
//
// Every successful operation emits exactly one Info record carrying the path.
// Failures are returned, never logged: the caller decides what to do with them.
// Errors wrap both a fileio sentinel (ErrParse, ErrConversion, ...) and the
// underlying cause, so errors.Is(err, fs.ErrNotExist) keeps working.
//
// Helpers hold no state between calls and take no locks. Concurrent writers to
// the same path race and the last one wins.
package fileio
