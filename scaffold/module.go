package scaffold

import (
	"context"
	"log/slog"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// Module runs the scaffolder against root when the Fx app starts.
// The *Layout comes from the container; see DefaultLayoutModule and LayoutFileModule.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(root string) fx.Option {
	return fx.Module("scaffold",
		fx.Provide(func(logger *slog.Logger, fsys afero.Fs) *Scaffolder {
			return New(logger, fsys, root)
		}),
		fx.Invoke(func(lifecycle fx.Lifecycle, scaffolder *Scaffolder, layout *Layout, logger *slog.Logger) {
			lifecycle.Append(fx.Hook{
				OnStart: func(context.Context) error {
					result, err := scaffolder.Run(*layout)
					if err != nil {
						return err
					}

					logger.Info("scaffold complete",
						slog.String("project", layout.Project),
						slog.Int("created", len(result.Created)),
						slog.Int("existing", len(result.Existing)),
					)

					return nil
				},
			})
		}),
	)
}

// DefaultLayoutModule supplies the default layout for project.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func DefaultLayoutModule(project string) fx.Option {
	layout := DefaultLayout(project)

	return fx.Supply(&layout)
}

// LayoutFileModule provides the layout read from a YAML file on the container's filesystem.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func LayoutFileModule(layoutPath string) fx.Option {
	return fx.Provide(func(fsys afero.Fs) (*Layout, error) {
		return LoadLayout(fsys, layoutPath)
	})
}
