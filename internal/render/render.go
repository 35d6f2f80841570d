// Package render turns solved label layouts into PDF, PNG and CSV bytes.
// Renderers never size anything themselves: they draw what the label
// package planned.
package render

import (
	"errors"

	"github.com/guttosm/move-labels/internal/label"
)

var (
	// ErrNoBoxes is returned when a render request carries no boxes.
	ErrNoBoxes = errors.New("no boxes to render")
	// ErrMissingLabelSize is returned when a label render has no usable size.
	ErrMissingLabelSize = errors.New("label size is required")
	// ErrDPIOutOfRange is returned for a raster resolution above label.MaxDPI.
	ErrDPIOutOfRange = errors.New("dpi must be between 1 and 1200")
	// ErrRasterTooLarge is returned when a label image would exceed maxRasterPixels.
	ErrRasterTooLarge = errors.New("label image is too large")
)

// Item is an inventory entry of a box.
type Item struct {
	Name string
	Qty  int
}

// Box is the read model renderers consume.
type Box struct {
	ID             string
	ShortCode      string
	RoomCode       string
	Room           string
	Zone           string
	Priority       string
	Fragile        bool
	Status         string
	Notes          string
	Condition      string
	DamageNotes    string
	EstimatedValue string
	Items          []Item
}

// Request is the input of every label renderer.
type Request struct {
	Boxes     []Box
	Template  label.Template
	LabelSize *label.LabelSize
	BaseURL   string
	// DPI applies to raster output only; zero means label.DefaultDPI.
	DPI int
}

func (r Request) validate() error {
	if len(r.Boxes) == 0 {
		return ErrNoBoxes
	}
	if r.LabelSize == nil {
		return ErrMissingLabelSize
	}
	if err := r.LabelSize.Validate(); err != nil {
		return errors.Join(ErrMissingLabelSize, err)
	}
	if r.DPI > label.MaxDPI {
		return ErrDPIOutOfRange
	}
	return nil
}

func (r Request) dpi() int {
	if r.DPI <= 0 {
		return label.DefaultDPI
	}
	return r.DPI
}

// RenderData converts a box into layout input, building the QR payload from baseURL.
func RenderData(b Box, baseURL string) label.RenderData {
	items := make([]label.Item, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, label.Item{Name: it.Name, Qty: it.Qty})
	}
	return label.RenderData{
		RoomCode:  b.RoomCode,
		ShortCode: b.ShortCode,
		Room:      b.Room,
		Zone:      b.Zone,
		Priority:  b.Priority,
		Fragile:   b.Fragile,
		Notes:     b.Notes,
		QRURL:     label.QRPayload(baseURL, b.ShortCode),
		Items:     items,
	}
}
