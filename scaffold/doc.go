// Package scaffold creates the empty file skeleton of a new data-science project.
//
// A Layout lists slash-separated file paths relative to a root directory. The
// default layout mirrors the standard project template (src/<project>/...,
// config/config.yaml, params.yaml, Dockerfile, ...). Layouts can also be read
// from a YAML file:
//
//	project: DataScience
//	files:
//	  - src/DataScience/__init__.py
//	  - config/config.yaml
//
// Scaffolder.Run creates missing parent directories and empty files. Existing
// non-empty files are never modified; existing empty files are touched.
package scaffold
