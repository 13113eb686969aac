package picker

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
)

// columnGap separates aligned columns in display cells.
const columnGap = 4

// AlignColumns pads tab-separated fields so every column lines up across the
// list. Widths are display widths, so wide runes stay aligned. Items without
// tabs pass through unchanged.
func AlignColumns(items []string) []string {
	rows := make([][]string, len(items))
	var widths []int
	for i, item := range items {
		fields := strings.Split(item, "\t")
		rows[i] = fields
		for j, field := range fields {
			if j >= len(widths) {
				widths = append(widths, 0)
			}
			if w := text.StringWidth(field); w > widths[j] {
				widths[j] = w
			}
		}
	}

	aligned := make([]string, len(items))
	for i, fields := range rows {
		var b strings.Builder
		for j, field := range fields {
			if j == len(fields)-1 {
				b.WriteString(field)
				break
			}
			b.WriteString(text.Pad(field, widths[j]+columnGap, ' '))
		}
		aligned[i] = b.String()
	}
	return aligned
}
