package pipeio

import (
	"io"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules    []fx.Option
	LogLevel   string
	LogFormat  string
	LogWriter  io.Writer
	Filesystem afero.Fs
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects "json" (default) or "text" log records.
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogWriter sends log records to w instead of stderr.
func WithLogWriter(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogWriter = w
	}
}

// WithFilesystem sets the afero.Fs provided to modules. Defaults to the OS filesystem.
func WithFilesystem(fsys afero.Fs) Option {
	return func(opts *Options) {
		opts.Filesystem = fsys
	}
}
