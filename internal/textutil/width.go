package textutil

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Ellipsis marks text removed by TruncateLeft.
const Ellipsis = "…"

// DisplayWidth reports the printable width of text, measuring grapheme
// clusters so emoji sequences count once.
func DisplayWidth(text string) int {
	return uniseg.StringWidth(text)
}

// TruncateLeft shortens text from the left until it fits in width cells,
// prefixing the kept tail with Ellipsis. Paths keep their most specific
// components this way. A width below 1 returns text unchanged.
func TruncateLeft(text string, width int) string {
	if width < 1 || DisplayWidth(text) <= width {
		return text
	}
	if width == 1 {
		return Ellipsis
	}
	total := runewidth.StringWidth(text)
	cut := total - (width - 1)
	out := runewidth.TruncateLeft(text, cut, Ellipsis)
	// A wide rune straddling the cut is kept whole; cut further until it fits.
	for DisplayWidth(out) > width && cut < total {
		cut++
		out = runewidth.TruncateLeft(text, cut, Ellipsis)
	}
	return out
}

// PadRight appends spaces until text occupies width cells.
func PadRight(text string, width int) string {
	return runewidth.FillRight(text, width)
}
