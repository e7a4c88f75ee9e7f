package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/csvchart-go/pkg/csvchart"
	"github.com/ukaji3/csvchart-go/pkg/csvchart/output"
)

// NewShowCmd returns the command printing a loaded table as JSON.
func NewShowCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "show [input.csv]",
		Short: "Print a CSV or xlsx table as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := csvchart.Load(args[0])
			if err != nil {
				return err
			}

			jsonData, err := output.TableToJSON(data, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}

			if outputPath == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
				return nil
			}

			if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			slog.Info("table written", "path", outputPath, "rows", data.Len())

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	return cmd
}
