package model

import (
	"time"

	"github.com/guttosm/move-labels/internal/label"
)

// LabelSize is the stored form of a label stock. Its ID is the slug of the
// name, which keeps preset ids stable across databases.
//
// @Description Label stock dimensions and margins
type LabelSize struct {
	ID               string    `bson:"_id" json:"id" example:"supvan-50x30"`
	Name             string    `bson:"name" json:"name" example:"Supvan 50x30"`
	WidthMm          float64   `bson:"width_mm" json:"widthMm" example:"50"`
	HeightMm         float64   `bson:"height_mm" json:"heightMm" example:"30"`
	Orientation      string    `bson:"orientation" json:"orientation" example:"landscape"`
	MarginTopMm      float64   `bson:"margin_top_mm" json:"marginTopMm"`
	MarginRightMm    float64   `bson:"margin_right_mm" json:"marginRightMm"`
	MarginBottomMm   float64   `bson:"margin_bottom_mm" json:"marginBottomMm"`
	MarginLeftMm     float64   `bson:"margin_left_mm" json:"marginLeftMm"`
	SafePaddingMm    float64   `bson:"safe_padding_mm" json:"safePaddingMm"`
	CornerRadiusMm   *float64  `bson:"corner_radius_mm,omitempty" json:"cornerRadiusMm,omitempty"`
	IsPreset         bool      `bson:"is_preset" json:"isPreset"`
	IsAvery5160Sheet bool      `bson:"is_avery_5160_sheet" json:"isAvery5160Sheet"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
} // @name LabelSize

// Geometry returns the layout engine view of the size.
func (s LabelSize) Geometry() label.LabelSize {
	return label.LabelSize{
		ID:               s.ID,
		Name:             s.Name,
		WidthMm:          s.WidthMm,
		HeightMm:         s.HeightMm,
		Orientation:      label.ParseOrientation(s.Orientation),
		MarginTopMm:      s.MarginTopMm,
		MarginRightMm:    s.MarginRightMm,
		MarginBottomMm:   s.MarginBottomMm,
		MarginLeftMm:     s.MarginLeftMm,
		SafePaddingMm:    s.SafePaddingMm,
		CornerRadiusMm:   s.CornerRadiusMm,
		IsPreset:         s.IsPreset,
		IsAvery5160Sheet: s.IsAvery5160Sheet,
	}
}

// LabelSizeFromGeometry converts a layout engine size into its stored form.
func LabelSizeFromGeometry(g label.LabelSize) LabelSize {
	id := g.ID
	if id == "" {
		id = label.Slug(g.Name)
	}
	return LabelSize{
		ID:               id,
		Name:             g.Name,
		WidthMm:          g.WidthMm,
		HeightMm:         g.HeightMm,
		Orientation:      string(g.Orientation),
		MarginTopMm:      g.MarginTopMm,
		MarginRightMm:    g.MarginRightMm,
		MarginBottomMm:   g.MarginBottomMm,
		MarginLeftMm:     g.MarginLeftMm,
		SafePaddingMm:    g.SafePaddingMm,
		CornerRadiusMm:   g.CornerRadiusMm,
		IsPreset:         g.IsPreset,
		IsAvery5160Sheet: g.IsAvery5160Sheet,
	}
}
