package label

import (
	"fmt"
	"math"
)

// LineHeightFactor is the spacing between inventory lines as a multiple of
// the font size. Solving and drawing must both use it.
const LineHeightFactor = 1.45

// Inventory font bounds in points.
const (
	InventoryMinFontPt = 6.0
	InventoryMaxFontPt = 14.0
)

// InventoryFit is the solved item list of an inventory label.
type InventoryFit struct {
	FontSize   float64 `json:"fontSize"`
	LineHeight float64 `json:"lineHeight"`
	Visible    int     `json:"visible"`
	Warning    string  `json:"warning,omitempty"`
}

// ReadabilityWarning is the message raised when the item list had to shrink below minFont.
func ReadabilityWarning(items int) string {
	return fmt.Sprintf("label text may be hard to read with %d items", items)
}

// FitInventory sizes the font so that all items fit in availableHeight
// (any unit, the font comes back in the same unit). The font is the height
// per item divided by LineHeightFactor, clamped to [minFont, maxFont]. If even
// minFont would overflow, the font keeps shrinking so nothing is dropped and
// a readability warning is set.
func FitInventory(items int, availableHeight, minFont, maxFont float64) InventoryFit {
	if minFont > maxFont {
		minFont, maxFont = maxFont, minFont
	}
	if items <= 0 {
		return InventoryFit{FontSize: maxFont, LineHeight: maxFont * LineHeightFactor}
	}
	if availableHeight <= 0 {
		return InventoryFit{Visible: items, Warning: ReadabilityWarning(items)}
	}

	font := availableHeight / float64(items) / LineHeightFactor
	fit := InventoryFit{Visible: items}
	switch {
	case font > maxFont:
		font = maxFont
	case font < minFont:
		fit.Warning = ReadabilityWarning(items)
	}
	// Guard against float rounding pushing the last line past the edge.
	for font*float64(items)*LineHeightFactor > availableHeight {
		font = math.Nextafter(font, 0)
	}
	fit.FontSize = font
	fit.LineHeight = font * LineHeightFactor
	return fit
}
