package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/guttosm/move-labels/internal/label"
	"github.com/guttosm/move-labels/internal/render"
)

// LayoutResult is the JSON printed by the layout command.
type LayoutResult struct {
	Preset   string               `json:"preset"`
	Template label.Template       `json:"template"`
	Strategy label.StrategyKind   `json:"strategy"`
	Layout   label.RenderedLayout `json:"layout"`
	Plan     label.Strategy       `json:"plan"`
}

// NewLayoutCommand creates the layout command.
func NewLayoutCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		preset   string
		template string
		box      boxFlags
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the solved layout of one label as JSON",
		Long: `Solve font sizes, QR size and optional lines for a label preset.

Warnings report collapsed lines, forced QR sizes and font floors.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, tpl, err := resolvePreset(preset, template)
			if err != nil {
				return err
			}
			data := render.RenderData(box.box(), rootOpts.BaseURL)
			plan := label.Plan(size, data, tpl)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(LayoutResult{
				Preset:   size.ID,
				Template: tpl,
				Strategy: plan.Kind(),
				Layout:   label.ComputeLayout(size, data, tpl),
				Plan:     plan,
			})
		},
	}

	cmd.Flags().StringVar(&preset, "preset", "supvan-50x30", "label preset id")
	cmd.Flags().StringVar(&template, "template", string(label.DefaultTemplate), "label template")
	box.register(cmd)

	return cmd
}
