package render

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/guttosm/move-labels/internal/label"
)

const ContentTypeCSV = "text/csv; charset=utf-8"

var (
	csvHeader          = []string{"room_code", "short_code", "room", "zone", "qr_url", "fragile", "priority", "status", "notes"}
	insuranceCSVHeader = "short_code,condition,damage_notes,estimated_value,room,zone"
)

// CSV exports one row per box. Every field, the header included, is wrapped
// in double quotes with inner quotes doubled; rows are joined with "\n".
func CSV(boxes []Box, baseURL string) []byte {
	rows := make([]string, 0, len(boxes)+1)
	rows = append(rows, quoteRow(csvHeader))
	for _, b := range boxes {
		rows = append(rows, quoteRow([]string{
			b.RoomCode,
			b.ShortCode,
			b.Room,
			b.Zone,
			label.QRPayload(baseURL, b.ShortCode),
			strconv.FormatBool(b.Fragile),
			b.Priority,
			b.Status,
			strings.ReplaceAll(b.Notes, "\n", " "),
		}))
	}
	return []byte(strings.Join(rows, "\n"))
}

// InsuranceCSV exports the condition and value columns used for claims.
// Boxes are written in the order given.
func InsuranceCSV(boxes []Box) []byte {
	rows := make([]string, 0, len(boxes)+1)
	rows = append(rows, insuranceCSVHeader)
	for _, b := range boxes {
		rows = append(rows, quoteRow([]string{b.ShortCode, b.Condition, b.DamageNotes, b.EstimatedValue, b.Room, b.Zone}))
	}
	return []byte(strings.Join(rows, "\n"))
}

func quoteRow(fields []string) string {
	return strings.Join(lo.Map(fields, func(f string, _ int) string {
		return `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}), ",")
}
