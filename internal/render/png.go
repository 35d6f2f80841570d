package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/guttosm/move-labels/internal/label"
)

const (
	ContentTypePNG = "image/png"
	ContentTypeZIP = "application/zip"
)

var (
	colorInk     = color.RGBA{0, 0, 0, 255}
	colorMuted   = color.RGBA{55, 65, 81, 255}
	colorGrey    = color.RGBA{102, 102, 102, 255}
	colorDivider = color.RGBA{204, 204, 204, 255}
	colorWarning = color.RGBA{204, 102, 0, 255}
)

type fontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

var loadFonts = sync.OnceValues(func() (fontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return fontSet{}, fmt.Errorf("parse bold font: %w", err)
	}
	return fontSet{regular: regular, bold: bold}, nil
})

// PNG renders one label image for a single box, or a ZIP archive holding
// {shortCode}.png per box when more than one box is requested.
func PNG(ctx context.Context, req Request) ([]byte, string, error) {
	if err := req.validate(); err != nil {
		return nil, "", err
	}
	fonts, err := loadFonts()
	if err != nil {
		return nil, "", err
	}

	images := make([]namedFile, 0, len(req.Boxes))
	for _, b := range req.Boxes {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		img, err := renderLabelImage(fonts, req, b)
		if err != nil {
			return nil, "", fmt.Errorf("render label %s: %w", b.ShortCode, err)
		}
		if len(req.Boxes) == 1 {
			return img, ContentTypePNG, nil
		}
		images = append(images, namedFile{Name: b.ShortCode + ".png", Data: img})
	}

	archive, err := zipFiles(images)
	if err != nil {
		return nil, "", err
	}
	return archive, ContentTypeZIP, nil
}

func renderLabelImage(fonts fontSet, req Request, b Box) ([]byte, error) {
	data := RenderData(b, req.BaseURL)
	dpi := req.dpi()

	var (
		r   *raster
		err error
	)
	switch l := label.Plan(*req.LabelSize, data, req.Template).(type) {
	case label.AverySheetLayout:
		if r, err = newRaster(fonts, label.AveryCellWidthPt, label.AveryCellHeightPt, dpi); err != nil {
			return nil, err
		}
		for _, cell := range l.Cells {
			r.drawAveryCell(cell)
		}
	case label.InventoryLayout:
		if r, err = newRaster(fonts, l.PageWidthPt, l.PageHeightPt, dpi); err != nil {
			return nil, err
		}
		r.drawInventory(l)
	case label.SingleLabelLayout:
		if r, err = newRaster(fonts, l.PageWidthPt, l.PageHeightPt, dpi); err != nil {
			return nil, err
		}
		r.drawSingle(l)
	}
	defer r.close()
	if r.err != nil {
		return nil, r.err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, r.img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// raster draws point-based geometry onto an RGBA image at a fixed DPI.
type raster struct {
	img   *image.RGBA
	scale float64
	fonts fontSet
	faces map[faceKey]font.Face
	err   error
}

type faceKey struct {
	bold bool
	px   float64
}

// maxRasterPixels caps a single label image at about 256 MB of RGBA. A 4x6
// inch label at label.MaxDPI stays well below it.
const maxRasterPixels = 64 << 20

func newRaster(fonts fontSet, widthPt, heightPt float64, dpi int) (*raster, error) {
	w := max(1, label.PtToPx(widthPt, dpi))
	h := max(1, label.PtToPx(heightPt, dpi))
	if int64(w)*int64(h) > maxRasterPixels {
		return nil, fmt.Errorf("%w: %dx%d px at %d dpi", ErrRasterTooLarge, w, h, dpi)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	return &raster{
		img:   img,
		scale: float64(dpi) / label.PointsPerInch,
		fonts: fonts,
		faces: make(map[faceKey]font.Face),
	}, nil
}

func (r *raster) close() {
	for _, f := range r.faces {
		_ = f.Close()
	}
}

func (r *raster) px(pt float64) int {
	return int(math.Round(pt * r.scale))
}

func (r *raster) face(bold bool, sizePt float64) font.Face {
	key := faceKey{bold: bold, px: math.Max(1, math.Round(sizePt*r.scale))}
	if f, ok := r.faces[key]; ok {
		return f
	}
	fnt := r.fonts.regular
	if bold {
		fnt = r.fonts.bold
	}
	f, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: key.px, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		r.setErr(fmt.Errorf("create font face: %w", err))
		return nil
	}
	r.faces[key] = f
	return f
}

func (r *raster) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

// text draws s with its top at yPt, shrinking the face until it fits maxWPt.
func (r *raster) text(s string, xPt, yPt, sizePt, maxWPt float64, bold bool, c color.Color) {
	if s == "" {
		return
	}
	f := r.face(bold, sizePt)
	if f == nil {
		return
	}
	if maxWPt > 0 {
		if w := font.MeasureString(f, s).Ceil(); w > r.px(maxWPt) && w > 0 {
			fitted := math.Max(minTextPt, sizePt*float64(r.px(maxWPt))/float64(w))
			if f = r.face(bold, fitted); f == nil {
				return
			}
		}
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: f,
		Dot:  fixed.P(r.px(xPt), r.px(yPt)+f.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}

// baselineText draws s with its baseline at yPt.
func (r *raster) baselineText(s string, xPt, yPt, sizePt float64, bold bool, c color.Color) {
	f := r.face(bold, sizePt)
	if f == nil || s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: f,
		Dot:  fixed.P(r.px(xPt), r.px(yPt)),
	}
	d.DrawString(s)
}

func (r *raster) qr(content string, box label.Rect) {
	size := r.px(box.W)
	if size <= 0 {
		return
	}
	src, err := QRImage(content, size)
	if err != nil {
		r.setErr(err)
		return
	}
	x, y := r.px(box.X), r.px(box.Y)
	draw.NearestNeighbor.Scale(r.img, image.Rect(x, y, x+size, y+size), src, src.Bounds(), draw.Over, nil)
}

func (r *raster) stroke(box label.Rect, widthPt float64, c color.Color) {
	w := max(1, r.px(widthPt))
	x0, y0 := r.px(box.X), r.px(box.Y)
	x1, y1 := r.px(box.X+box.W), r.px(box.Y+box.H)
	src := image.NewUniform(c)
	for _, edge := range []image.Rectangle{
		image.Rect(x0, y0, x1, y0+w),
		image.Rect(x0, y1-w, x1, y1),
		image.Rect(x0, y0, x0+w, y1),
		image.Rect(x1-w, y0, x1, y1),
	} {
		draw.Draw(r.img, edge, src, image.Point{}, draw.Src)
	}
}

func (r *raster) hline(xPt, yPt, wPt, widthPt float64, c color.Color) {
	w := max(1, r.px(widthPt))
	y := r.px(yPt)
	draw.Draw(r.img, image.Rect(r.px(xPt), y, r.px(xPt+wPt), y+w), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *raster) border(widthPt, heightPt float64) {
	r.stroke(label.Rect{X: borderInset, Y: borderInset, W: widthPt - borderInset*2, H: heightPt - borderInset*2}, 1, colorInk)
}

func (r *raster) drawSingle(l label.SingleLabelLayout) {
	r.border(l.PageWidthPt, l.PageHeightPt)
	r.qr(l.Data.QRURL, l.QR)

	r.text(l.Data.RoomCode, l.Text.X, l.Text.Y, l.RoomCodePt, l.Text.W, true, colorInk)
	r.text(l.Data.ShortCode, l.Text.X, l.Text.Y+l.RoomCodePt, l.ShortCodePt, l.Text.W, false, colorInk)
	for i, line := range l.DrawableLines() {
		r.text(line, l.Text.X, l.LineY(i), l.LinePt, l.Text.W, false, colorMuted)
	}
}

func (r *raster) drawInventory(l label.InventoryLayout) {
	r.border(l.PageWidthPt, l.PageHeightPt)
	r.qr(l.Data.QRURL, l.QR)

	textW := l.QR.X - l.Header.X - borderInset*4
	y := l.Header.Y
	r.text(l.Data.RoomCode, l.Header.X, y, l.RoomCodePt, textW, true, colorInk)
	y += l.RoomCodePt + 3
	r.text(l.Data.ShortCode, l.Header.X, y, l.ShortCodePt, textW, false, colorInk)
	y += l.ShortCodePt + 4
	if room := roomWithZone(l.Data.Room, l.Data.Zone); room != "" {
		r.text(room, l.Header.X, y, l.RoomNamePt, textW, false, colorGrey)
		y += l.RoomNamePt + 4
	}
	if l.Data.Fragile {
		r.text(fragileTag, l.Header.X, y, l.RoomNamePt, 0, true, colorWarning)
	}

	r.hline(l.Header.X, l.Header.Y+l.Header.H+2, l.Header.W, 0.5, colorDivider)
	r.text(contentsCaption(len(l.Data.Items)), l.Header.X, l.CaptionY, l.CaptionPt, 0, true, colorGrey)

	for i, line := range inventoryLines(l) {
		r.text(line, l.List.X, l.ItemY(i), l.Fit.FontSize, 0, false, colorInk)
	}
}

// drawAveryCell draws one 5160 cell as a stand-alone image.
func (r *raster) drawAveryCell(cell label.AveryCell) {
	r.stroke(label.Rect{W: label.AveryCellWidthPt, H: label.AveryCellHeightPt}, 0.5, colorDivider)

	x := label.AveryInsetPt
	r.baselineText(cell.RoomCode, x, label.AveryRoomCodeBaselinePt, label.AveryRoomCodePt, true, colorInk)
	r.baselineText(cell.ShortCode, x, label.AveryShortCodeBaselinePt, label.AveryShortCodePt, false, colorInk)
	r.baselineText(cell.RoomName, x, label.AveryRoomNameBaselinePt, label.AveryRoomNamePt, false, colorGrey)
	if cell.Fragile {
		r.baselineText(fragileTag, x, label.AveryFragileBaselinePt, label.AveryFragilePt, true, colorWarning)
	}
	r.qr(cell.QRURL, label.Rect{
		X: cell.QRX - cell.X,
		Y: cell.QRY - cell.Y,
		W: label.AveryQRSizePt,
		H: label.AveryQRSizePt,
	})
}
