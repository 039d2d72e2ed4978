package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jotter/internal/app"
	"jotter/internal/logging"
	"jotter/internal/notes"
)

type commandWiring struct {
	stdout     io.Writer
	stderr     io.Writer
	openLogger func(path string, level logging.Level) (logging.Logger, io.Closer, error)
	runUI      func(ctx context.Context, session *notes.Session, opts app.Options) error
	version    string
}

func defaultCommandWiring(stdout, stderr io.Writer) commandWiring {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdout:     stdout,
		stderr:     stderr,
		openLogger: logging.OpenFile,
		runUI:      app.Run,
		version:    buildVersion(),
	}
}

// newRootCommand builds the jotter command tree. Running jotter without a
// subcommand starts the UI.
func newRootCommand(wiring commandWiring) *cobra.Command {
	var configPath string
	ui := newUICommand(wiring, &configPath)

	root := &cobra.Command{
		Use:           "jotter",
		Short:         "A terminal notebook for short titled notes",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          ui.RunE,
	}
	root.SetOut(wiring.stdout)
	root.SetErr(wiring.stderr)
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default $JOTTER_HOME/config.toml)")

	root.AddCommand(
		ui,
		newConfigCommand(wiring, &configPath),
		newVersionCommand(wiring),
	)
	return root
}
