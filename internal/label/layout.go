package label

import (
	"math"
	"unicode/utf8"
)

const (
	// MinQRMm is the smallest QR edge that still scans reliably from a phone at arm's length.
	MinQRMm = 18.0
	// MinShortCodePx is the floor for the short code font.
	MinShortCodePx = 12
	// MinRoomCodePx is the floor for the room code font.
	MinRoomCodePx = 20
)

const (
	qrWidthShare       = 0.35
	qrHeightShare      = 0.6
	roomCodeScale      = 4.2
	shortCodeShare     = 0.32
	qrTextGapMm        = 8.0
	minLineStride      = 12
	smallLabelWidthMm  = 25.0
	smallLabelHeightMm = 20.0
)

// Warning messages attached to a RenderedLayout.
const (
	WarnLinesCollapsed = "Optional lines were collapsed due to tight label size."
	WarnSmallLabel     = "Label is extremely small and readability may be affected."
	WarnQRForced       = "QR size was increased to maintain scan reliability."
	WarnShortCodeFloor = "Short code reached minimum font size."
)

// Item is a single inventory line printed on inventory labels.
type Item struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// RenderData is the box information a label is built from.
type RenderData struct {
	RoomCode  string `json:"roomCode"`
	ShortCode string `json:"shortCode"`
	Room      string `json:"room,omitempty"`
	Zone      string `json:"zone,omitempty"`
	Priority  string `json:"priority,omitempty"`
	Fragile   bool   `json:"fragile,omitempty"`
	Notes     string `json:"notes,omitempty"`
	QRURL     string `json:"qrUrl,omitempty"`
	Items     []Item `json:"items,omitempty"`
}

// RenderedLayout is the solved layout of a single label. It is recomputed on
// every render and never stored.
type RenderedLayout struct {
	RoomCodeFontPx  int      `json:"roomCodeFontPx"`
	ShortCodeFontPx int      `json:"shortCodeFontPx"`
	OptionalLines   []string `json:"optionalLines"`
	QRSizeMm        float64  `json:"qrSizeMm"`
	Warnings        []string `json:"warnings"`
}

// ComputeLayout solves font sizes, QR size and the optional lines for a label.
// It never fails: anything that does not fit is reported in Warnings.
func ComputeLayout(size LabelSize, data RenderData, tpl Template) RenderedLayout {
	warnings := make([]string, 0, 4)
	contentW, contentH := ContentRect(size)

	lines := ApplyTemplate(BuildOptionalLines(data), tpl)

	rawQR := math.Min(contentW*qrWidthShare, contentH*qrHeightShare)
	qrSize := math.Max(MinQRMm, rawQR)

	roomFont := RoomCodeFontPx(contentW, data.RoomCode)
	shortFont := ShortCodeFontPx(roomFont)

	capacity := LineCapacity(tpl, contentH, qrSize, shortFont)
	if len(lines) > capacity {
		lines = collapseLines(lines, capacity, tpl)
		warnings = append(warnings, WarnLinesCollapsed)
	}

	if contentW < smallLabelWidthMm || contentH < smallLabelHeightMm {
		warnings = append(warnings, WarnSmallLabel)
	}

	// The floor was already applied above; the warning reports that it had to be.
	if !(rawQR >= MinQRMm) {
		warnings = append(warnings, WarnQRForced)
	}

	if shortFont <= MinShortCodePx {
		warnings = append(warnings, WarnShortCodeFloor)
	}

	return RenderedLayout{
		RoomCodeFontPx:  roomFont,
		ShortCodeFontPx: shortFont,
		OptionalLines:   lines,
		QRSizeMm:        qrSize,
		Warnings:        warnings,
	}
}

// RoomCodeFontPx scales the room code inversely with its length so short and
// long codes fill the content width similarly.
func RoomCodeFontPx(contentWidthMm float64, roomCode string) int {
	chars := math.Max(float64(utf8.RuneCountInString(roomCode)), 2)
	font := math.Floor(contentWidthMm / chars * roomCodeScale)
	if math.IsNaN(font) || font < MinRoomCodePx {
		return MinRoomCodePx
	}
	return int(font)
}

// ShortCodeFontPx derives the short code size from the room code size.
func ShortCodeFontPx(roomCodeFontPx int) int {
	font := int(math.Floor(float64(roomCodeFontPx) * shortCodeShare))
	if font < MinShortCodePx {
		return MinShortCodePx
	}
	return font
}

// LineCapacity is the number of optional lines a label keeps. It is
// MaxLinesThatFit, except that a template banner always keeps its slot.
func LineCapacity(tpl Template, contentHeightMm, qrSizeMm float64, shortCodeFontPx int) int {
	n := MaxLinesThatFit(contentHeightMm, qrSizeMm, shortCodeFontPx)
	if _, ok := banners[tpl]; ok && n < 1 {
		return 1
	}
	return n
}

// collapseLines drops lines from the front, keeping the newest ones and the banner.
func collapseLines(lines []string, capacity int, tpl Template) []string {
	if _, ok := banners[tpl]; ok && len(lines) > 0 {
		rest := lines[1:]
		keep := capacity - 1
		out := make([]string, 0, capacity)
		out = append(out, lines[0])
		return append(out, rest[len(rest)-keep:]...)
	}
	return lines[len(lines)-capacity:]
}

// MaxLinesThatFit returns how many optional lines fit below the QR block.
func MaxLinesThatFit(contentHeightMm, qrSizeMm float64, shortCodeFontPx int) int {
	stride := shortCodeFontPx
	if stride < minLineStride {
		stride = minLineStride
	}
	n := math.Floor((contentHeightMm - qrSizeMm - qrTextGapMm) / float64(stride))
	if math.IsNaN(n) || n < 0 {
		return 0
	}
	return int(n)
}
