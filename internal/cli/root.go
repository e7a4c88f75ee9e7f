// Package cli implements the csvchart command line interface.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/ukaji3/csvchart-go/pkg/csvchart"
	"github.com/ukaji3/csvchart-go/pkg/log"
)

// NewRootCmd returns the root command with all subcommands attached.
func NewRootCmd(name, shortDesc, longDesc string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		flags := cc.Flags()

		var merr error

		logLevel, err := flags.GetString("log_level")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		logFormat, err := flags.GetString("log_format")
		if err != nil {
			merr = multierror.Append(merr, err)
		}

		if merr != nil {
			return fmt.Errorf("invalid argument: %w", merr)
		}

		h, err := log.CreateHandler(cc.ErrOrStderr(), logLevel, logFormat)
		if err != nil {
			return fmt.Errorf("failed creating log handler: %w", err)
		}
		slog.SetDefault(slog.New(h))

		return nil
	}

	cmd.AddCommand(NewShowCmd())
	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewGalleryCmd())

	return cmd
}

// loadOptions reads options from configPath, or returns the defaults when
// configPath is empty.
func loadOptions(configPath string) (csvchart.Options, error) {
	if configPath == "" {
		return csvchart.DefaultOptions(), nil
	}
	return csvchart.LoadOptions(configPath)
}
