package label

import "github.com/samber/lo"

// Presets returns the built-in label stock, in display order.
func Presets() []LabelSize {
	return []LabelSize{
		uniform("Avery 5160", 66.675, 25.4, 2, 1, true),
		uniform("Generic 2x3 inch", 76.2, 50.8, 1, 1, false),
		uniform("Supvan 50x30", 50, 30, 0.8, 1, false),
		uniform("Supvan 50x40", 50, 40, 0.8, 1, false),
		uniform("FlashLabel 40x30", 40, 30, 1, 1, false),
		uniform("4x6 inch (inventory)", 152.4, 101.6, 3, 2, false),
	}
}

// PresetByID looks a preset up by its slug.
func PresetByID(id string) (LabelSize, bool) {
	return lo.Find(Presets(), func(s LabelSize) bool { return s.ID == id })
}

// DefaultSingleLabel returns the first preset that is not a sheet. Single
// label downloads use it when the caller does not choose a size.
func DefaultSingleLabel(sizes []LabelSize) (LabelSize, bool) {
	return lo.Find(sizes, func(s LabelSize) bool { return !s.IsAvery5160Sheet })
}

func uniform(name string, w, h, margin, pad float64, avery bool) LabelSize {
	return LabelSize{
		ID:               Slug(name),
		Name:             name,
		WidthMm:          w,
		HeightMm:         h,
		Orientation:      Landscape,
		MarginTopMm:      margin,
		MarginRightMm:    margin,
		MarginBottomMm:   margin,
		MarginLeftMm:     margin,
		SafePaddingMm:    pad,
		IsPreset:         true,
		IsAvery5160Sheet: avery,
	}
}
