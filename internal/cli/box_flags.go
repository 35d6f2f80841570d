package cli

import (
	"github.com/spf13/cobra"

	"github.com/guttosm/move-labels/internal/codes"
	"github.com/guttosm/move-labels/internal/render"
)

// boxFlags describes the sample box printed by layout and render.
type boxFlags struct {
	RoomCode  string
	ShortCode string
	Room      string
	Zone      string
	Priority  string
	Notes     string
	Items     string
	Fragile   bool
}

func (f *boxFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.RoomCode, "room-code", "", "room code printed in large type (required)")
	cmd.Flags().StringVar(&f.ShortCode, "short-code", codes.FormatShortCode(1), "box short code")
	cmd.Flags().StringVar(&f.Room, "room", "", "destination room")
	cmd.Flags().StringVar(&f.Zone, "zone", "", "zone inside the room")
	cmd.Flags().StringVar(&f.Priority, "priority", "", "priority (high, medium, low)")
	cmd.Flags().StringVar(&f.Notes, "notes", "", "free-text notes")
	cmd.Flags().StringVar(&f.Items, "items", "", `inventory, e.g. "plates x6, mugs (4)"`)
	cmd.Flags().BoolVar(&f.Fragile, "fragile", false, "mark the box fragile")
	_ = cmd.MarkFlagRequired("room-code")
}

func (f *boxFlags) box() render.Box {
	parsed := codes.ParseBulkItems(f.Items)
	items := make([]render.Item, 0, len(parsed))
	for _, it := range parsed {
		items = append(items, render.Item{Name: it.Name, Qty: it.Qty})
	}
	return render.Box{
		ShortCode: f.ShortCode,
		RoomCode:  f.RoomCode,
		Room:      f.Room,
		Zone:      f.Zone,
		Priority:  f.Priority,
		Fragile:   f.Fragile,
		Notes:     f.Notes,
		Items:     items,
	}
}
