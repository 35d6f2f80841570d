package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guttosm/move-labels/internal/export"
	"github.com/guttosm/move-labels/internal/render"
)

var renderFormats = []string{"pdf", "png", "csv"}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		format   string
		preset   string
		template string
		provider string
		out      string
		dpi      int
		box      boxFlags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one sample label to a file",
		Long: `Render a single box through an export provider, exactly as the service
would, and write the result to --out. PNG output of a sheet preset is a ZIP.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if !isValidFormat(format) {
				return fmt.Errorf("invalid format %q: must be one of %v", format, renderFormats)
			}
			size, tpl, err := resolvePreset(preset, template)
			if err != nil {
				return err
			}

			p, known := export.NewRegistry().Get(provider)
			if !known && rootOpts.Verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "unknown provider %q, using %s\n", provider, p.Name())
			}

			req := render.Request{
				Boxes:     []render.Box{box.box()},
				Template:  tpl,
				LabelSize: &size,
				BaseURL:   rootOpts.BaseURL,
				DPI:       dpi,
			}

			var data []byte
			switch format {
			case "pdf":
				data, err = p.ExportPDF(cmd.Context(), req)
			case "png":
				data, _, err = p.ExportPNG(cmd.Context(), req)
			case "csv":
				data = p.ExportCSV(req.Boxes, req.BaseURL)
			}
			if err != nil {
				return fmt.Errorf("render %s: %w", format, err)
			}

			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			if g := p.Guidance(); g != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), g)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(data), out)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "pdf", "output format (pdf|png|csv)")
	cmd.Flags().StringVar(&preset, "preset", "supvan-50x30", "label preset id")
	cmd.Flags().StringVar(&template, "template", "", "label template")
	cmd.Flags().StringVar(&provider, "provider", export.NamePDF, "export provider")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (required)")
	cmd.Flags().IntVar(&dpi, "dpi", 0, "PNG resolution, default 300")
	box.register(cmd)
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range renderFormats {
		if f == format {
			return true
		}
	}
	return false
}
