// Package pipeio wires logging, the filesystem and pipeio modules into an Fx application.
package pipeio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/pipeio/logging"

	"github.com/spf13/afero"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for applications using Fx.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	config := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}

	writer := options.LogWriter
	if writer == nil {
		writer = os.Stderr
	}

	logger := logging.NewLogger(config, writer)
	slog.SetDefault(logger)

	fsys := options.Filesystem
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			eventLogger := &fxevent.SlogLogger{Logger: logger}
			eventLogger.UseLogLevel(slog.LevelDebug)

			return eventLogger
		}),
		fx.Supply(config),
		fx.Supply(logger),
		fx.Provide(func() afero.Fs { return fsys }),
		fx.Options(options.Modules...),
	)
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
