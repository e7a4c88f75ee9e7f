package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ukaji3/csvchart-go/pkg/csvchart"
	"github.com/ukaji3/csvchart-go/pkg/csvchart/models"
)

// NewRenderCmd returns the command rendering a chart from a table.
func NewRenderCmd() *cobra.Command {
	var (
		outputPath  string
		xColumn     string
		yColumn     string
		kind        string
		title       string
		customColor bool
		configPath  string
	)

	cmd := &cobra.Command{
		Use:   "render [input.csv]",
		Short: "Render a chart from two columns and export it",
		Long: `Render a line, bar, or scatter chart from two columns of a CSV or
xlsx file. The output format follows the file extension of --output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			chartKind, err := models.ParseKind(kind)
			if err != nil {
				return err
			}

			opts, err := loadOptions(configPath)
			if err != nil {
				return err
			}

			if _, ok := csvchart.FormatOf(outputPath); !ok {
				return fmt.Errorf("unsupported output format %q (supported: %v)", outputPath, csvchart.SupportedFormats())
			}

			var session csvchart.Session
			if err := session.Load(args[0]); err != nil {
				return err
			}

			req := models.ChartRequest{
				Kind:           chartKind,
				XColumn:        xColumn,
				YColumn:        yColumn,
				UseCustomColor: customColor,
				Title:          title,
			}

			chart, err := csvchart.RenderWithOptions(session.Data(), req, opts)
			if err != nil {
				return err
			}

			if err := csvchart.ExportWithOptions(chart, outputPath, opts); err != nil {
				return err
			}
			slog.Info("chart written", "path", outputPath, "kind", chartKind.String())

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output image path (png, jpg, bmp, tiff, svg, pdf, xlsx)")
	cmd.Flags().StringVarP(&xColumn, "x", "x", "", "Column for the x axis")
	cmd.Flags().StringVarP(&yColumn, "y", "y", "", "Column for the y axis")
	cmd.Flags().StringVarP(&kind, "kind", "k", "line", "Chart kind: line, bar, or scatter")
	cmd.Flags().StringVar(&title, "title", "", "Chart title")
	cmd.Flags().BoolVar(&customColor, "custom-color", false, "Use the alternate series color")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML options file")

	for _, name := range []string{"output", "x", "y"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	return cmd
}
