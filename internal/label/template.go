package label

import (
	"strings"

	"github.com/samber/lo"
)

// Template selects which optional lines a label carries and, for the
// inventory template, a different sub-layout altogether.
type Template string

const (
	TemplateStandardInventory Template = "standard_inventory"
	TemplateDestinationOnly   Template = "destination_only"
	TemplateFragile           Template = "fragile"
	TemplateOpenFirst         Template = "open_first"
	TemplateStorage           Template = "storage"
	TemplateInventory4x6      Template = "inventory_4x6"
)

// DefaultTemplate is used when a request does not name one.
const DefaultTemplate = TemplateStandardInventory

var templateNames = map[Template]string{
	TemplateStandardInventory: "Standard inventory",
	TemplateDestinationOnly:   "Destination-only",
	TemplateFragile:           "FRAGILE",
	TemplateOpenFirst:         "OPEN FIRST",
	TemplateStorage:           "Storage",
	TemplateInventory4x6:      "Inventory 4x6",
}

// banners are prepended ahead of every other optional line.
var banners = map[Template]string{
	TemplateFragile:   "FRAGILE",
	TemplateOpenFirst: "OPEN FIRST",
	TemplateStorage:   "STORAGE",
}

// Templates lists every known template in display order.
func Templates() []Template {
	return []Template{
		TemplateStandardInventory,
		TemplateDestinationOnly,
		TemplateFragile,
		TemplateOpenFirst,
		TemplateStorage,
		TemplateInventory4x6,
	}
}

// ParseTemplate resolves a template key. Empty input yields DefaultTemplate.
func ParseTemplate(s string) (Template, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTemplate, true
	}
	t := Template(s)
	if _, ok := templateNames[t]; !ok {
		return DefaultTemplate, false
	}
	return t, true
}

// DisplayName returns the human label of the template.
func (t Template) DisplayName() string {
	if name, ok := templateNames[t]; ok {
		return name
	}
	return string(t)
}

// IsInventory reports whether the template uses the item-list sub-layout.
func (t Template) IsInventory() bool {
	return t == TemplateInventory4x6
}

// BuildOptionalLines assembles the candidate lines from box data in their
// canonical order: room, priority/fragile composite, zone, notes.
func BuildOptionalLines(data RenderData) []string {
	lines := make([]string, 0, 4)
	if data.Room != "" {
		lines = append(lines, data.Room)
	}
	if data.Priority != "" || data.Fragile {
		composite := data.Priority
		if data.Fragile {
			composite += " • FRAGILE"
		}
		lines = append(lines, strings.TrimSpace(composite))
	}
	if data.Zone != "" {
		lines = append(lines, "Zone: "+data.Zone)
	}
	if data.Notes != "" {
		lines = append(lines, data.Notes)
	}
	return lines
}

// ApplyTemplate filters or prefixes lines according to the template rules.
// The input slice is not modified.
func ApplyTemplate(lines []string, tpl Template) []string {
	if tpl == TemplateDestinationOnly {
		return lo.Filter(lines, func(line string, _ int) bool {
			return !strings.HasPrefix(line, "Zone") && !strings.Contains(line, "FRAGILE")
		})
	}
	out := make([]string, 0, len(lines)+1)
	if banner, ok := banners[tpl]; ok {
		out = append(out, banner)
	}
	return append(out, lines...)
}
