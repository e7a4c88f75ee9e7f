package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"

	"github.com/ukaji3/csvchart-go/pkg/csvchart"
	"github.com/ukaji3/csvchart-go/pkg/csvchart/gallery"
)

// NewGalleryCmd returns the command exporting the demonstration charts.
func NewGalleryCmd() *cobra.Command {
	var (
		dir        string
		format     string
		list       bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "gallery [name...]",
		Short: "Export the demonstration charts",
		Long: `Export the built-in demonstration charts, one file per chart.
Without arguments every chart is exported. Use --list to print the names.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := gallery.Default()

			if list {
				for _, name := range reg.Names() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			if _, ok := csvchart.FormatOf("chart." + format); !ok {
				return fmt.Errorf("unsupported format %q (supported: %v)", format, csvchart.SupportedFormats())
			}

			opts, err := loadOptions(configPath)
			if err != nil {
				return err
			}

			names := args
			if len(names) == 0 {
				names = reg.Names()
			}

			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}

			var merr error
			for _, name := range names {
				path := filepath.Join(dir, GalleryFileName(name, format))
				if err := exportDemo(reg, name, path, opts); err != nil {
					merr = multierror.Append(merr, err)
					continue
				}
				slog.Info("chart written", "name", name, "path", path)
			}

			return merr
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "Output directory")
	cmd.Flags().StringVar(&format, "format", "png", "Output format (file extension)")
	cmd.Flags().BoolVar(&list, "list", false, "List chart names and exit")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML options file")

	return cmd
}

func exportDemo(reg *gallery.Registry, name, path string, opts csvchart.Options) error {
	chart, err := reg.Render(name)
	if err != nil {
		return err
	}
	return csvchart.ExportWithOptions(chart, path, opts)
}

// GalleryFileName returns the output file name for a demo chart.
func GalleryFileName(name, format string) string {
	return strcase.ToSnake(name) + "." + format
}
