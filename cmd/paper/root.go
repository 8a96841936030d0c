package main

import (
	"io"
	"time"

	"github.com/go-drift/paper/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	log     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:           "paper",
		Short:         "Paper resolves themes and checks color contrast",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			flags.log = newLogger(cmd.ErrOrStderr(), flags.verbose)
			errors.SetHandler(&errors.LogHandler{Verbose: flags.verbose, Logger: &flags.log})
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newContrastCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger returns a console logger on w. Verbose runs log at debug level.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.TimeFormat = time.RFC3339
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}
