package render

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/samber/lo"
)

const (
	ContentTypePDF = "application/pdf"

	reportMarginMm   = 14
	indexTopItems    = 3
	reportTitleSize  = 18
	reportGroupSize  = 12
	reportLineSize   = 9
	reportTitleRowMm = 12
	reportGroupRowMm = 8
	reportLineRowMm  = 5
)

var reportMuted = &props.Color{Red: 90, Green: 90, Blue: 90}

// MasterIndexPDF lists every box grouped by room code, with the first few
// items of each box, on US Letter pages.
func MasterIndexPDF(boxes []Box) ([]byte, error) {
	m := newReport()
	m.AddRows(titleRow("Master Box Index"))

	groups := lo.GroupBy(boxes, func(b Box) string { return b.RoomCode })
	codes := lo.Keys(groups)
	sort.Strings(codes)

	for _, code := range codes {
		list := groups[code]
		sort.SliceStable(list, func(i, j int) bool { return list[i].ShortCode < list[j].ShortCode })

		m.AddRows(row.New(reportGroupRowMm).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s (%s)", code, plural(len(list), "box", "boxes")), props.Text{
				Size:  reportGroupSize,
				Style: fontstyle.Bold,
				Top:   2,
			}),
		)))
		for _, b := range list {
			m.AddRows(lineRow(indexLine(b), 1))
		}
		m.AddRows(row.New(2).Add(col.New(12).Add(line.New(props.Line{Thickness: 0.2, Color: reportMuted}))))
	}
	return generate(m)
}

// InsurancePDF summarises condition and estimated value per box.
func InsurancePDF(boxes []Box) ([]byte, error) {
	m := newReport()
	m.AddRows(titleRow("Insurance Summary"))
	for _, b := range boxes {
		m.AddRows(lineRow(insuranceLine(b), 0))
	}
	return generate(m)
}

func newReport() core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(reportMarginMm).
		WithRightMargin(reportMarginMm).
		WithTopMargin(reportMarginMm).
		WithBottomMargin(reportMarginMm).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(title string) core.Row {
	return row.New(reportTitleRowMm).Add(col.New(12).Add(text.New(title, props.Text{
		Size:  reportTitleSize,
		Style: fontstyle.Bold,
		Align: align.Left,
	})))
}

func lineRow(s string, indentCols int) core.Row {
	r := row.New(reportLineRowMm)
	if indentCols > 0 {
		r.Add(col.New(indentCols))
	}
	return r.Add(col.New(12 - indentCols).Add(text.New(s, props.Text{
		Size:  reportLineSize,
		Color: reportMuted,
	})))
}

func indexLine(b Box) string {
	var sb strings.Builder
	sb.WriteString(b.ShortCode)
	sb.WriteString(" - ")
	sb.WriteString(b.Room)
	if b.Zone != "" {
		sb.WriteString(" / ")
		sb.WriteString(b.Zone)
	}
	top := lo.Map(b.Items[:min(indexTopItems, len(b.Items))], func(it Item, _ int) string {
		return it.Name + " x" + strconv.Itoa(it.Qty)
	})
	if len(top) > 0 {
		sb.WriteString(" - ")
		sb.WriteString(strings.Join(top, "; "))
	}
	return sb.String()
}

func insuranceLine(b Box) string {
	value := b.EstimatedValue
	if value == "" {
		value = "0"
	}
	damage := b.DamageNotes
	if damage == "" {
		damage = "-"
	}
	return fmt.Sprintf("%s | condition: %s | estimated value: %s | damage: %s", b.ShortCode, b.Condition, value, damage)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
