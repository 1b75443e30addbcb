// Package json implements config.Parser for JSON documents.
//
// Decoding uses encoding/json; path selection uses github.com/tidwall/gjson,
// so "training:params" extracts the raw "training.params" value before it is
// decoded. Keys containing gjson metacharacters are escaped.
//
// When the target is *any, integral numbers decode as int64 (uint64 above the
// int64 range) and other numbers as float64, instead of encoding/json's
// float64-only default.
package json
