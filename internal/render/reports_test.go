package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMasterIndexPDF(t *testing.T) {
	boxes := append(sampleBoxes(3), Box{ShortCode: "BX-000010", RoomCode: "BED", Room: "Bedroom"})

	out, err := MasterIndexPDF(boxes)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestInsurancePDF(t *testing.T) {
	out, err := InsurancePDF(csvBoxes())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestIndexLine(t *testing.T) {
	tests := []struct {
		name     string
		box      Box
		expected string
	}{
		{
			"room and zone with top three items",
			Box{ShortCode: "BX-000001", Room: "Kitchen", Zone: "Pantry", Items: []Item{
				{Name: "Flour", Qty: 2}, {Name: "Rice", Qty: 1}, {Name: "Oil", Qty: 3}, {Name: "Salt", Qty: 1},
			}},
			"BX-000001 - Kitchen / Pantry - Flour x2; Rice x1; Oil x3",
		},
		{"no items", Box{ShortCode: "BX-000002", Room: "Office"}, "BX-000002 - Office"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, indexLine(tt.box))
		})
	}
}

func TestInsuranceLine(t *testing.T) {
	assert.Equal(t, "BX-000002 | condition: ok | estimated value: 0 | damage: -",
		insuranceLine(Box{ShortCode: "BX-000002", Condition: "ok"}))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 box", plural(1, "box", "boxes"))
	assert.Equal(t, "4 boxes", plural(4, "box", "boxes"))
}
