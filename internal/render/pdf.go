package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/guttosm/move-labels/internal/label"
)

const (
	fontFamily   = "Helvetica"
	ascentRatio  = 0.8
	minTextPt    = 4.0
	borderInset  = 1.0
	fragileTag   = "FRAGILE"
	itemsCaption = "CONTENTS"
)

// PDF renders one page per label at the label's physical size, or 30-up
// Avery 5160 sheets when the size is flagged as such.
func PDF(ctx context.Context, req Request) ([]byte, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "pt", Size: gofpdf.SizeType{Wd: label.AveryPageWidthPt, Ht: label.AveryPageHeightPt}})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("move-labels", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if req.LabelSize.IsAvery5160Sheet {
		data := make([]label.RenderData, 0, len(req.Boxes))
		for _, b := range req.Boxes {
			data = append(data, RenderData(b, req.BaseURL))
		}
		if err := drawAverySheet(pdf, tr, label.PlanAverySheet(data)); err != nil {
			return nil, err
		}
	} else {
		for i, b := range req.Boxes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			var err error
			switch l := label.Plan(*req.LabelSize, RenderData(b, req.BaseURL), req.Template).(type) {
			case label.InventoryLayout:
				err = drawInventoryPage(pdf, tr, l, i)
			case label.SingleLabelLayout:
				err = drawSinglePage(pdf, tr, l, i)
			}
			if err != nil {
				return nil, fmt.Errorf("render label %s: %w", b.ShortCode, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawSinglePage(pdf *gofpdf.Fpdf, tr func(string) string, l label.SingleLabelLayout, index int) error {
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: l.PageWidthPt, Ht: l.PageHeightPt})
	drawBorder(pdf, l.PageWidthPt, l.PageHeightPt)

	if err := placeQR(pdf, l.Data.QRURL, qrName(l.Data.ShortCode, index), l.QR); err != nil {
		return err
	}

	y := l.Text.Y
	pdf.SetFont(fontFamily, "B", l.RoomCodePt)
	size := fitText(pdf, tr(l.Data.RoomCode), l.RoomCodePt, l.Text.W)
	pdf.Text(l.Text.X, y+size*ascentRatio, tr(l.Data.RoomCode))
	y += l.RoomCodePt

	pdf.SetFont(fontFamily, "", l.ShortCodePt)
	size = fitText(pdf, l.Data.ShortCode, l.ShortCodePt, l.Text.W)
	pdf.Text(l.Text.X, y+size*ascentRatio, l.Data.ShortCode)

	pdf.SetTextColor(55, 65, 81)
	for i, line := range l.DrawableLines() {
		pdf.SetFont(fontFamily, "", l.LinePt)
		size = fitText(pdf, tr(line), l.LinePt, l.Text.W)
		pdf.Text(l.Text.X, l.LineY(i)+size*ascentRatio, tr(line))
	}
	pdf.SetTextColor(0, 0, 0)
	return pdf.Error()
}

func drawInventoryPage(pdf *gofpdf.Fpdf, tr func(string) string, l label.InventoryLayout, index int) error {
	pdf.AddPageFormat("P", gofpdf.SizeType{Wd: l.PageWidthPt, Ht: l.PageHeightPt})
	drawBorder(pdf, l.PageWidthPt, l.PageHeightPt)

	if err := placeQR(pdf, l.Data.QRURL, qrName(l.Data.ShortCode, index), l.QR); err != nil {
		return err
	}

	textW := l.QR.X - l.Header.X - borderInset*4
	y := l.Header.Y
	pdf.SetFont(fontFamily, "B", l.RoomCodePt)
	size := fitText(pdf, tr(l.Data.RoomCode), l.RoomCodePt, textW)
	pdf.Text(l.Header.X, y+size*ascentRatio, tr(l.Data.RoomCode))
	y += l.RoomCodePt + 3

	pdf.SetFont(fontFamily, "", l.ShortCodePt)
	pdf.Text(l.Header.X, y+l.ShortCodePt*ascentRatio, l.Data.ShortCode)
	y += l.ShortCodePt + 4

	if room := roomWithZone(l.Data.Room, l.Data.Zone); room != "" {
		pdf.SetFont(fontFamily, "", l.RoomNamePt)
		pdf.SetTextColor(102, 102, 102)
		size = fitText(pdf, tr(room), l.RoomNamePt, textW)
		pdf.Text(l.Header.X, y+size*ascentRatio, tr(room))
		y += l.RoomNamePt + 4
	}
	if l.Data.Fragile {
		pdf.SetFont(fontFamily, "B", l.RoomNamePt)
		pdf.SetTextColor(204, 102, 0)
		pdf.Text(l.Header.X, y+l.RoomNamePt*ascentRatio, fragileTag)
	}

	dividerY := l.Header.Y + l.Header.H + 2
	pdf.SetDrawColor(204, 204, 204)
	pdf.SetLineWidth(0.5)
	pdf.Line(l.Header.X, dividerY, l.Header.X+l.Header.W, dividerY)

	pdf.SetTextColor(89, 89, 89)
	pdf.SetFont(fontFamily, "B", l.CaptionPt)
	pdf.Text(l.Header.X, l.CaptionY+l.CaptionPt*ascentRatio, contentsCaption(len(l.Data.Items)))

	lines := inventoryLines(l)
	if len(lines) > 0 {
		pdf.SetTextColor(26, 26, 26)
		pdf.SetFont(fontFamily, "", l.Fit.FontSize)
	}
	for i, line := range lines {
		pdf.Text(l.List.X, l.ItemY(i)+l.Fit.FontSize*ascentRatio, tr(line))
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	return pdf.Error()
}

func drawAverySheet(pdf *gofpdf.Fpdf, tr func(string) string, sheet label.AverySheetLayout) error {
	page := -1
	for i, cell := range sheet.Cells {
		if cell.Page != page {
			pdf.AddPageFormat("P", gofpdf.SizeType{Wd: label.AveryPageWidthPt, Ht: label.AveryPageHeightPt})
			page = cell.Page
		}

		pdf.SetDrawColor(179, 179, 179)
		pdf.SetLineWidth(0.5)
		pdf.Rect(cell.X, cell.Y, label.AveryCellWidthPt, label.AveryCellHeightPt, "D")

		x := cell.X + label.AveryInsetPt
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(fontFamily, "B", label.AveryRoomCodePt)
		pdf.Text(x, cell.Y+label.AveryRoomCodeBaselinePt, tr(cell.RoomCode))
		pdf.SetFont(fontFamily, "", label.AveryShortCodePt)
		pdf.Text(x, cell.Y+label.AveryShortCodeBaselinePt, cell.ShortCode)
		if cell.RoomName != "" {
			pdf.SetFont(fontFamily, "", label.AveryRoomNamePt)
			pdf.SetTextColor(77, 77, 77)
			pdf.Text(x, cell.Y+label.AveryRoomNameBaselinePt, tr(cell.RoomName))
		}
		if cell.Fragile {
			pdf.SetFont(fontFamily, "B", label.AveryFragilePt)
			pdf.SetTextColor(204, 102, 0)
			pdf.Text(x, cell.Y+label.AveryFragileBaselinePt, fragileTag)
		}

		qr := label.Rect{X: cell.QRX, Y: cell.QRY, W: label.AveryQRSizePt, H: label.AveryQRSizePt}
		if err := placeQR(pdf, cell.QRURL, qrName(cell.ShortCode, i), qr); err != nil {
			return fmt.Errorf("render label %s: %w", cell.ShortCode, err)
		}
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)
	return pdf.Error()
}

func placeQR(pdf *gofpdf.Fpdf, content, name string, r label.Rect) error {
	png, err := QRPNG(content, qrPixels)
	if err != nil {
		return err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, r.X, r.Y, r.W, r.H, false, opts, 0, "")
	return pdf.Error()
}

func drawBorder(pdf *gofpdf.Fpdf, w, h float64) {
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1)
	pdf.Rect(borderInset, borderInset, w-borderInset*2, h-borderInset*2, "D")
}

// fitText shrinks the current font until s fits into maxW and returns the size used.
func fitText(pdf *gofpdf.Fpdf, s string, size, maxW float64) float64 {
	pdf.SetFontSize(size)
	w := pdf.GetStringWidth(s)
	if w <= maxW || w == 0 {
		return size
	}
	fitted := size * maxW / w
	if fitted < minTextPt {
		fitted = minTextPt
	}
	pdf.SetFontSize(fitted)
	return fitted
}

func qrName(shortCode string, index int) string {
	return "qr-" + shortCode + "-" + strconv.Itoa(index)
}

func roomWithZone(room, zone string) string {
	switch {
	case room != "" && zone != "":
		return room + " · " + zone
	case room != "":
		return room
	default:
		return zone
	}
}

// inventoryLines returns the item lines to draw. A list area with no height
// leaves no font size to draw at, so nothing is listed; the layout carries the
// readability warning.
func inventoryLines(l label.InventoryLayout) []string {
	if l.Fit.FontSize <= 0 {
		return nil
	}
	lines := make([]string, 0, len(l.Data.Items))
	for _, item := range l.Data.Items {
		lines = append(lines, label.InventoryLine(item))
	}
	return lines
}

func contentsCaption(n int) string {
	switch n {
	case 0:
		return itemsCaption
	case 1:
		return itemsCaption + " (1 item)"
	default:
		return itemsCaption + " (" + strconv.Itoa(n) + " items)"
	}
}
