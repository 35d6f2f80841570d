package label

import (
	"errors"
	"math"
	"strings"
)

// Orientation is the declared print direction of a label.
type Orientation string

const (
	Portrait  Orientation = "portrait"
	Landscape Orientation = "landscape"
)

// ParseOrientation maps free-form input to an Orientation. Anything that is
// not "landscape" is treated as portrait.
func ParseOrientation(s string) Orientation {
	if strings.EqualFold(strings.TrimSpace(s), string(Landscape)) {
		return Landscape
	}
	return Portrait
}

// LabelSize describes the physical stock a label is printed on. All lengths are in millimeters.
type LabelSize struct {
	ID               string      `json:"id,omitempty"`
	Name             string      `json:"name"`
	WidthMm          float64     `json:"widthMm"`
	HeightMm         float64     `json:"heightMm"`
	Orientation      Orientation `json:"orientation"`
	MarginTopMm      float64     `json:"marginTopMm"`
	MarginRightMm    float64     `json:"marginRightMm"`
	MarginBottomMm   float64     `json:"marginBottomMm"`
	MarginLeftMm     float64     `json:"marginLeftMm"`
	SafePaddingMm    float64     `json:"safePaddingMm"`
	CornerRadiusMm   *float64    `json:"cornerRadiusMm,omitempty"`
	IsPreset         bool        `json:"isPreset"`
	IsAvery5160Sheet bool        `json:"isAvery5160Sheet"`
}

// MaxDimensionMm bounds each side of a label size.
const MaxDimensionMm = 1000.0

var (
	ErrInvalidDimensions  = errors.New("label width and height must be positive")
	ErrDimensionsTooLarge = errors.New("label width and height must not exceed 1000 mm")
	ErrNegativeMargin     = errors.New("label margins and padding must not be negative")
)

// Validate checks the size for values no renderer can work with. Tight or
// overflowing content rectangles are not errors; ComputeLayout reports them as warnings.
func (s LabelSize) Validate() error {
	if s.WidthMm <= 0 || s.HeightMm <= 0 || math.IsNaN(s.WidthMm) || math.IsNaN(s.HeightMm) {
		return ErrInvalidDimensions
	}
	if s.WidthMm > MaxDimensionMm || s.HeightMm > MaxDimensionMm {
		return ErrDimensionsTooLarge
	}
	for _, v := range []float64{s.MarginTopMm, s.MarginRightMm, s.MarginBottomMm, s.MarginLeftMm, s.SafePaddingMm} {
		if v < 0 {
			return ErrNegativeMargin
		}
	}
	return nil
}

// EffectiveSize returns the printable rectangle after orientation normalization:
// landscape puts the longer side on the width, portrait the shorter one.
func EffectiveSize(s LabelSize) (widthMm, heightMm float64) {
	long := math.Max(s.WidthMm, s.HeightMm)
	short := math.Min(s.WidthMm, s.HeightMm)
	if s.Orientation == Landscape {
		return long, short
	}
	return short, long
}

// ContentRect returns the area left for glyphs and the QR code once margins
// and the safe padding on both sides of each axis are removed. The result may be negative.
func ContentRect(s LabelSize) (widthMm, heightMm float64) {
	w, h := EffectiveSize(s)
	widthMm = w - s.MarginLeftMm - s.MarginRightMm - s.SafePaddingMm*2
	heightMm = h - s.MarginTopMm - s.MarginBottomMm - s.SafePaddingMm*2
	return widthMm, heightMm
}

// Slug derives the stable identifier used for presets: the lower-cased name
// with each run of whitespace replaced by a dash.
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
