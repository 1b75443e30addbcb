// Command scaffold creates the empty file skeleton of a new data-science project.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/0xalexb/pipeio"
	"github.com/0xalexb/pipeio/scaffold"

	"github.com/spf13/cobra"
)

type options struct {
	root     string
	project  string
	layout   string
	logLevel string
}

func main() {
	cmd := newRootCmd()

	err := cmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:           "scaffold",
		Short:         "Create the empty file skeleton of a data-science project",
		Args:          cobra.NoArgs,
		Version:       pipeio.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := run(cmd.ErrOrStderr(), opts)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}

			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.root, "root", ".", "directory the skeleton is created in")
	flags.StringVar(&opts.project, "project", scaffold.DefaultProject, "project name used by the default layout")
	flags.StringVar(&opts.layout, "layout", "", "YAML file listing the files to create instead of the default layout; sets its own project")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	cmd.MarkFlagsMutuallyExclusive("project", "layout")

	return cmd
}

func run(logWriter io.Writer, opts options) error {
	layoutModule := scaffold.DefaultLayoutModule(opts.project)
	if opts.layout != "" {
		layoutModule = scaffold.LayoutFileModule(opts.layout)
	}

	app := pipeio.NewApp(
		pipeio.WithLogLevel(opts.logLevel),
		pipeio.WithLogFormat("text"),
		pipeio.WithLogWriter(logWriter),
		pipeio.WithModules(layoutModule, scaffold.Module(opts.root)),
	)

	err := app.Start()
	if err != nil {
		return err
	}

	return app.Stop()
}
