package fileio

import (
	"log/slog"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// Module provides a *Helper built from the container's *slog.Logger and afero.Fs.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(opts ...Option) fx.Option {
	return fx.Module("fileio",
		fx.Provide(func(logger *slog.Logger, fsys afero.Fs) *Helper {
			return New(logger, fsys, opts...)
		}),
	)
}
