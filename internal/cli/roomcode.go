package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/guttosm/move-labels/internal/codes"
)

// NewRoomCodeCommand creates the roomcode command.
func NewRoomCodeCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		existing      []string
		abbreviations string
	)

	cmd := &cobra.Command{
		Use:          "roomcode <room>",
		Short:        "Suggest a room code that does not collide with existing ones",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := codes.DefaultAbbreviations()
			if abbreviations != "" {
				overrides, err := codes.ParseAbbreviations(abbreviations)
				if err != nil {
					return err
				}
				table = lo.Assign(table, overrides)
			}

			suggester := codes.NewRoomCodeSuggester(table)
			if rootOpts.Verbose {
				fmt.Fprintf(cmd.ErrOrStderr(), "base code for %q: %s\n", args[0], suggester.Base(args[0]))
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), suggester.Suggest(args[0], existing))
			return err
		},
	}

	cmd.Flags().StringSliceVar(&existing, "existing", nil, "room codes already in use")
	cmd.Flags().StringVar(&abbreviations, "abbreviations", "", `extra room codes, e.g. "den=DN,loft=LFT"`)

	return cmd
}
