package tui

import "strings"

// digitRows is the height of the block font.
const digitRows = 5

// blockFont maps decimal digits to 4-column block glyphs.
//
//nolint:gochecknoglobals // immutable lookup table.
var blockFont = map[rune][digitRows]string{
	'0': {"████", "█  █", "█  █", "█  █", "████"},
	'1': {"   █", "   █", "   █", "   █", "   █"},
	'2': {"████", "   █", "████", "█   ", "████"},
	'3': {"████", "   █", "████", "   █", "████"},
	'4': {"█  █", "█  █", "████", "   █", "   █"},
	'5': {"████", "█   ", "████", "   █", "████"},
	'6': {"████", "█   ", "████", "█  █", "████"},
	'7': {"████", "   █", "   █", "   █", "   █"},
	'8': {"████", "█  █", "████", "█  █", "████"},
	'9': {"████", "█  █", "████", "   █", "████"},
}

// bigDigits renders a decimal string in the block font, one glyph column
// per digit with a single space between them. Unknown runes render blank.
func bigDigits(s string) []string {
	rows := make([]string, digitRows)
	for r := 0; r < digitRows; r++ {
		parts := make([]string, 0, len(s))
		for _, c := range s {
			glyph, ok := blockFont[c]
			if !ok {
				parts = append(parts, "    ")
				continue
			}
			parts = append(parts, glyph[r])
		}
		rows[r] = strings.Join(parts, " ")
	}
	return rows
}
