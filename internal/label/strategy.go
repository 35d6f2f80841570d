package label

import (
	"math"
	"strconv"
)

// StrategyKind tags the layout variant a renderer has to draw.
type StrategyKind string

const (
	KindSingleLabel StrategyKind = "single"
	KindInventory   StrategyKind = "inventory"
	KindAverySheet  StrategyKind = "avery_5160"
)

// Strategy is one of SingleLabelLayout, InventoryLayout or AverySheetLayout.
type Strategy interface {
	Kind() StrategyKind
}

// Drawing constants for single labels, in points.
const (
	singleRoomCodeScale = 0.6
	singleRoomCodeMaxPt = 36.0
	singleShortScale    = 0.6
	singleShortMinPt    = 10.0
	singleLinePt        = 9.0
	singleLineGapPt     = 2.0
	singleColumnGapPt   = 4.0
)

// Drawing constants for inventory labels, in points.
const (
	inventoryHeaderShare  = 0.4
	inventoryPadPt        = 8.0
	inventoryCaptionPt    = 8.0
	inventoryRoomScale    = 0.55
	inventoryRoomMinPt    = 18.0
	inventoryRoomMaxPt    = 32.0
	inventoryShortMinPt   = 9.0
	inventoryRoomNamePt   = 8.0
	inventoryBulletIndent = 8.0
)

// Rect is a rectangle in points, origin at the top-left of the page.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// SingleLabelLayout is the general one-label-per-page variant.
type SingleLabelLayout struct {
	PageWidthPt  float64        `json:"pageWidthPt"`
	PageHeightPt float64        `json:"pageHeightPt"`
	Content      Rect           `json:"content"`
	QR           Rect           `json:"qr"`
	Text         Rect           `json:"text"`
	RoomCodePt   float64        `json:"roomCodePt"`
	ShortCodePt  float64        `json:"shortCodePt"`
	LinePt       float64        `json:"linePt"`
	LineStridePt float64        `json:"lineStridePt"`
	Template     Template       `json:"template"`
	Layout       RenderedLayout `json:"layout"`
	Data         RenderData     `json:"data"`
}

// Kind implements Strategy.
func (SingleLabelLayout) Kind() StrategyKind { return KindSingleLabel }

// InventoryLayout is a header band with room code, short code and QR code
// above a list holding every item.
type InventoryLayout struct {
	PageWidthPt  float64        `json:"pageWidthPt"`
	PageHeightPt float64        `json:"pageHeightPt"`
	Header       Rect           `json:"header"`
	QR           Rect           `json:"qr"`
	List         Rect           `json:"list"`
	CaptionY     float64        `json:"captionY"`
	CaptionPt    float64        `json:"captionPt"`
	RoomCodePt   float64        `json:"roomCodePt"`
	ShortCodePt  float64        `json:"shortCodePt"`
	RoomNamePt   float64        `json:"roomNamePt"`
	Fit          InventoryFit   `json:"fit"`
	Layout       RenderedLayout `json:"layout"`
	Data         RenderData     `json:"data"`
	Warnings     []string       `json:"warnings"`
}

// Kind implements Strategy.
func (InventoryLayout) Kind() StrategyKind { return KindInventory }

// Plan selects and solves the layout variant for one box. Avery sheets
// cover many boxes at once and are planned with PlanAverySheet.
func Plan(size LabelSize, data RenderData, tpl Template) Strategy {
	if size.IsAvery5160Sheet {
		return PlanAverySheet([]RenderData{data})
	}
	if tpl.IsInventory() {
		return PlanInventory(size, data)
	}
	return PlanSingle(size, data, tpl)
}

// PlanSingle translates ComputeLayout into page coordinates.
func PlanSingle(size LabelSize, data RenderData, tpl Template) SingleLabelLayout {
	layout := ComputeLayout(size, data, tpl)
	w, h := EffectiveSize(size)
	pageW, pageH := MmToPt(w), MmToPt(h)
	content := contentBox(size)

	qr := MmToPt(layout.QRSizeMm)
	qrBox := Rect{
		X: math.Max(0, content.X+content.W-qr),
		Y: math.Max(0, content.Y+content.H-qr),
		W: qr,
		H: qr,
	}
	text := Rect{
		X: content.X,
		Y: content.Y,
		W: math.Max(0, qrBox.X-content.X-singleColumnGapPt),
		H: content.H,
	}

	return SingleLabelLayout{
		PageWidthPt:  pageW,
		PageHeightPt: pageH,
		Content:      content,
		QR:           qrBox,
		Text:         text,
		RoomCodePt:   math.Min(float64(layout.RoomCodeFontPx)*singleRoomCodeScale, singleRoomCodeMaxPt),
		ShortCodePt:  math.Max(float64(layout.ShortCodeFontPx)*singleShortScale, singleShortMinPt),
		LinePt:       singleLinePt,
		LineStridePt: singleLinePt + singleLineGapPt,
		Template:     tpl,
		Layout:       layout,
		Data:         data,
	}
}

// PlanInventory solves the header band and fits every item into the list area.
func PlanInventory(size LabelSize, data RenderData) InventoryLayout {
	layout := ComputeLayout(size, data, TemplateInventory4x6)
	w, h := EffectiveSize(size)
	pageW, pageH := MmToPt(w), MmToPt(h)
	content := contentBox(size)

	header := Rect{X: content.X, Y: content.Y, W: content.W, H: pageH * inventoryHeaderShare}
	qr := math.Max(MmToPt(MinQRMm), math.Min(MmToPt(layout.QRSizeMm), header.H-inventoryPadPt))
	qrBox := Rect{X: math.Max(0, header.X+header.W-qr), Y: header.Y, W: qr, H: qr}
	if bottom := qrBox.Y + qrBox.H; bottom > header.Y+header.H {
		header.H = bottom - header.Y
	}

	captionY := header.Y + header.H + inventoryPadPt/2
	listTop := captionY + inventoryCaptionPt*LineHeightFactor
	list := Rect{
		X: content.X + inventoryBulletIndent,
		Y: listTop,
		W: math.Max(0, content.W-inventoryBulletIndent),
		H: math.Max(0, content.Y+content.H-listTop),
	}
	fit := FitInventory(len(data.Items), list.H, InventoryMinFontPt, InventoryMaxFontPt)

	warnings := append([]string(nil), layout.Warnings...)
	if fit.Warning != "" {
		warnings = append(warnings, fit.Warning)
	}

	return InventoryLayout{
		PageWidthPt:  pageW,
		PageHeightPt: pageH,
		Header:       header,
		QR:           qrBox,
		List:         list,
		CaptionY:     captionY,
		CaptionPt:    inventoryCaptionPt,
		RoomCodePt:   math.Min(math.Max(float64(layout.RoomCodeFontPx)*inventoryRoomScale, inventoryRoomMinPt), inventoryRoomMaxPt),
		ShortCodePt:  math.Max(float64(layout.ShortCodeFontPx)*inventoryRoomScale, inventoryShortMinPt),
		RoomNamePt:   inventoryRoomNamePt,
		Fit:          fit,
		Layout:       layout,
		Data:         data,
		Warnings:     warnings,
	}
}

// ItemY returns the top of the i-th item line.
func (l InventoryLayout) ItemY(i int) float64 {
	return l.List.Y + float64(i)*l.Fit.LineHeight
}

// LineY returns the top of the i-th optional line below the short code.
func (l SingleLabelLayout) LineY(i int) float64 {
	return l.Text.Y + l.RoomCodePt + l.ShortCodePt + singleLineGapPt*2 + float64(i)*l.LineStridePt
}

func contentBox(size LabelSize) Rect {
	cw, ch := ContentRect(size)
	inset := size.SafePaddingMm
	return Rect{
		X: MmToPt(size.MarginLeftMm + inset),
		Y: MmToPt(size.MarginTopMm + inset),
		W: math.Max(0, MmToPt(cw)),
		H: math.Max(0, MmToPt(ch)),
	}
}

// DrawableLines returns the optional lines whose box stays inside the text
// column, collapsed the same way ComputeLayout collapses them.
func (l SingleLabelLayout) DrawableLines() []string {
	lines := l.Layout.OptionalLines
	n := 0
	for n < len(lines) && l.LineY(n)+l.LinePt <= l.Text.Y+l.Text.H {
		n++
	}
	if n == len(lines) {
		return lines
	}
	if n == 0 {
		return nil
	}
	return collapseLines(lines, n, l.Template)
}

// InventoryLine formats one item of the list.
func InventoryLine(item Item) string {
	if item.Qty > 1 {
		return "· " + item.Name + " ×" + strconv.Itoa(item.Qty)
	}
	return "· " + item.Name
}
