package label

import "unicode/utf8"

// Avery 5160 geometry on US Letter, in points. The sheet is a fixed special
// case and is not derived from the general solver.
const (
	AveryPageWidthPt   = 612.0
	AveryPageHeightPt  = 792.0
	AveryColumns       = 3
	AveryRows          = 10
	AveryCellWidthPt   = 2.625 * PointsPerInch
	AveryCellHeightPt  = 1.0 * PointsPerInch
	AveryLeftMarginPt  = 0.1875 * PointsPerInch
	AveryTopMarginPt   = 0.5 * PointsPerInch
	AveryQRSizePt      = 52.0
	AveryRoomCodePt    = 15.0
	AveryShortCodePt   = 8.0
	AveryRoomNamePt    = 7.0
	AveryFragilePt     = 7.0
	AveryInsetPt       = 5.0
	AveryRoomNameRunes = 20
	AveryPerPage       = AveryColumns * AveryRows
)

// AveryCell is one box placed on a 5160 sheet. X and Y are the top-left
// corner of the cell measured from the top-left of the page.
type AveryCell struct {
	Page      int     `json:"page"`
	Row       int     `json:"row"`
	Column    int     `json:"column"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	QRX       float64 `json:"qrX"`
	QRY       float64 `json:"qrY"`
	RoomCode  string  `json:"roomCode"`
	ShortCode string  `json:"shortCode"`
	RoomName  string  `json:"roomName,omitempty"`
	Fragile   bool    `json:"fragile"`
	QRURL     string  `json:"qrUrl"`
}

// Text baselines inside a cell, from the top edge of the cell.
const (
	AveryRoomCodeBaselinePt  = 22.0
	AveryShortCodeBaselinePt = 36.0
	AveryRoomNameBaselinePt  = 48.0
	AveryFragileBaselinePt   = AveryCellHeightPt - 6.0
)

// AverySheetLayout places a run of boxes onto consecutive 5160 sheets, 30 per page.
type AverySheetLayout struct {
	Pages int         `json:"pages"`
	Cells []AveryCell `json:"cells"`
}

// Kind implements Strategy.
func (AverySheetLayout) Kind() StrategyKind { return KindAverySheet }

// PlanAverySheet lays out every box in order, row by row.
func PlanAverySheet(boxes []RenderData) AverySheetLayout {
	out := AverySheetLayout{Cells: make([]AveryCell, 0, len(boxes))}
	for i, data := range boxes {
		page := i / AveryPerPage
		onPage := i % AveryPerPage
		row := onPage / AveryColumns
		col := onPage % AveryColumns
		x := AveryLeftMarginPt + float64(col)*AveryCellWidthPt
		y := AveryTopMarginPt + float64(row)*AveryCellHeightPt
		out.Cells = append(out.Cells, AveryCell{
			Page:      page,
			Row:       row,
			Column:    col,
			X:         x,
			Y:         y,
			QRX:       x + AveryCellWidthPt - AveryQRSizePt - AveryInsetPt,
			QRY:       y + (AveryCellHeightPt-AveryQRSizePt)/2,
			RoomCode:  data.RoomCode,
			ShortCode: data.ShortCode,
			RoomName:  truncateRunes(data.Room, AveryRoomNameRunes),
			Fragile:   data.Fragile,
			QRURL:     data.QRURL,
		})
		out.Pages = page + 1
	}
	return out
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
