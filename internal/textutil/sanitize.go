// Package textutil prepares discovered names for terminal output.
package textutil

import "strings"

// invisibleNames gives a short tag to every zero-width, bidi or otherwise
// invisible formatting rune a file name may carry.
var invisibleNames = map[rune]string{
	0x00AD: "SHY",
	0x061C: "ALM",
	0x180E: "MVS",
	0x200B: "ZWSP",
	0x200C: "ZWNJ",
	0x200D: "ZWJ",
	0x200E: "LRM",
	0x200F: "RLM",
	0x2028: "LSEP",
	0x2029: "PSEP",
	0x202A: "LRE",
	0x202B: "RLE",
	0x202C: "PDF",
	0x202D: "LRO",
	0x202E: "RLO",
	0x2060: "WJ",
	0x2066: "LRI",
	0x2067: "RLI",
	0x2068: "FSI",
	0x2069: "PDI",
	0x206A: "ISS",
	0x206B: "ASS",
	0x206C: "IAFS",
	0x206D: "AAFS",
	0x206E: "NADS",
	0x206F: "NODS",
	0xFEFF: "BOM",
}

// SanitizeTerminalText makes a path safe to print: control characters
// become '?', line breaks become spaces and invisible formatting runes are
// shown as ⟪TAG⟫. A name can then neither emit escape sequences nor
// reorder the line it is printed on. Safe input is returned as is.
func SanitizeTerminalText(text string) string {
	if strings.IndexFunc(text, unsafeRune) < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		if tag, ok := invisibleNames[r]; ok {
			b.WriteString("⟪" + tag + "⟫")
			continue
		}
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			b.WriteByte(' ')
		case isControl(r):
			b.WriteByte('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func unsafeRune(r rune) bool {
	if r == '\t' {
		return false
	}
	_, invisible := invisibleNames[r]
	return invisible || isControl(r)
}

// isControl covers C0, DEL and C1; a lone 0x9b acts as CSI on some terminals.
func isControl(r rune) bool {
	return (r >= 0 && r < 0x20) || (r >= 0x7f && r < 0xa0)
}
