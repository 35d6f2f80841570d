// Package cli implements labelctl, the offline companion of the label service.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guttosm/move-labels/internal/label"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	BaseURL string
	Verbose bool
}

// NewRootCommand creates the labelctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "labelctl",
		Short: "labelctl - moving box labels from the command line",
		Long:  "Solve label layouts, suggest room codes and render sample labels without running the service.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !strings.HasPrefix(opts.BaseURL, "http://") && !strings.HasPrefix(opts.BaseURL, "https://") {
				return fmt.Errorf("invalid base URL %q: must start with http:// or https://", opts.BaseURL)
			}
			opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", "http://localhost:3000", "base URL encoded in QR codes")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewLayoutCommand(opts))
	cmd.AddCommand(NewRoomCodeCommand(opts))
	cmd.AddCommand(NewRenderCommand(opts))

	return cmd
}

// resolvePreset looks a preset up by id and the template by key.
func resolvePreset(presetID, templateKey string) (label.LabelSize, label.Template, error) {
	size, ok := label.PresetByID(presetID)
	if !ok {
		ids := make([]string, 0, len(label.Presets()))
		for _, p := range label.Presets() {
			ids = append(ids, p.ID)
		}
		return label.LabelSize{}, "", fmt.Errorf("unknown preset %q: must be one of %s", presetID, strings.Join(ids, ", "))
	}
	tpl, ok := label.ParseTemplate(templateKey)
	if !ok {
		return label.LabelSize{}, "", fmt.Errorf("unknown template %q", templateKey)
	}
	return size, tpl, nil
}
