package label

import "math"

const (
	// MmPerInch is the number of millimeters in one inch.
	MmPerInch = 25.4
	// PointsPerInch is the PDF user-space resolution.
	PointsPerInch = 72.0
	// DefaultDPI is used for raster output when the caller does not pick one.
	DefaultDPI = 300
	// MaxDPI is the highest raster resolution accepted from callers.
	MaxDPI = 1200
)

// MmToPt converts millimeters to PDF points.
func MmToPt(mm float64) float64 {
	return mm * PointsPerInch / MmPerInch
}

// PtToMm converts PDF points to millimeters.
func PtToMm(pt float64) float64 {
	return pt * MmPerInch / PointsPerInch
}

// MmToPx converts millimeters to whole pixels at the given DPI, rounding down.
// A non-positive dpi falls back to DefaultDPI.
func MmToPx(mm float64, dpi int) int {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return int(math.Floor(mm / MmPerInch * float64(dpi)))
}

// PtToPx converts points to whole pixels at the given DPI, rounding to nearest.
func PtToPx(pt float64, dpi int) int {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return int(math.Round(pt / PointsPerInch * float64(dpi)))
}

// InchToPt converts inches to points.
func InchToPt(in float64) float64 {
	return in * PointsPerInch
}
