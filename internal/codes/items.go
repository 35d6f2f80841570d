package codes

import (
	"regexp"
	"strconv"
	"strings"
)

// ParsedItem is one entry of a bulk item list.
type ParsedItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

var (
	itemSplit       = regexp.MustCompile(`\n|,`)
	itemTimesSuffix = regexp.MustCompile(`^(.*?)\s*(?:\s[xX]|×)\s*(\d+)$`)
	itemParenSuffix = regexp.MustCompile(`^(.*?)\s*\((\d+)\)$`)
)

// ParseBulkItems splits free text on newlines and commas. "mugs x 4",
// "mugs ×4" and "mugs (4)" carry a quantity, anything else counts as one.
func ParseBulkItems(input string) []ParsedItem {
	parts := itemSplit.Split(input, -1)
	items := make([]ParsedItem, 0, len(parts))
	for _, part := range parts {
		line := strings.TrimSpace(part)
		if line == "" {
			continue
		}
		items = append(items, parseItemLine(line))
	}
	return items
}

func parseItemLine(line string) ParsedItem {
	for _, re := range []*regexp.Regexp{itemTimesSuffix, itemParenSuffix} {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		qty, err := strconv.Atoi(m[2])
		if name == "" || err != nil {
			continue
		}
		if qty < 1 {
			qty = 1
		}
		return ParsedItem{Name: name, Qty: qty}
	}
	return ParsedItem{Name: line, Qty: 1}
}
