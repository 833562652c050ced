package carton

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// MaxColumnWidth is the readability ceiling for wrapped text. Text never
// renders wider than this, regardless of how much width the caller offers.
const MaxColumnWidth = 70

// VisualWidth returns the number of terminal columns a string occupies,
// ignoring ANSI escape sequences and accounting for wide and zero-width
// characters.
func VisualWidth(s string) int {
	return ansi.StringWidth(s)
}

// Wrap word-wraps text to the given visual width. Words longer than the
// width are broken with a trailing hyphen. Existing newlines are preserved.
// A non-positive width falls back to MaxColumnWidth.
func Wrap(text string, width int) []string {
	if width <= 0 {
		width = MaxColumnWidth
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		out = append(out, wrapLine(line, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	if VisualWidth(line) <= width {
		return []string{line}
	}
	var out []string
	for _, wrapped := range strings.Split(ansi.Wordwrap(line, width, "-"), "\n") {
		if VisualWidth(wrapped) <= width {
			out = append(out, wrapped)
			continue
		}
		// A single word wider than the whole line: break it, hyphenating
		// every cut so the continuation is recognizable.
		out = append(out, hyphenBreak(wrapped, width)...)
	}
	return out
}

// hyphenBreak splits a string into pieces of at most width columns, suffixing
// every piece but the last with a hyphen. Below three columns there is no
// room for a meaningful hyphen, so pieces are cut bare.
func hyphenBreak(s string, width int) []string {
	budget := width - 1
	if width <= 2 {
		budget = width
	}
	var (
		out   []string
		piece strings.Builder
		w     int
	)
	for len(s) > 0 {
		if n := ansiPrefixLen(s); n > 0 {
			piece.WriteString(s[:n])
			s = s[n:]
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		cw := runewidth.StringWidth(cluster)
		if w+cw > budget && w > 0 {
			if width > 2 {
				piece.WriteString("-")
			}
			out = append(out, piece.String())
			piece.Reset()
			w = 0
		}
		piece.WriteString(cluster)
		w += cw
		s = rest
	}
	if piece.Len() > 0 {
		out = append(out, piece.String())
	}
	return out
}

// truncate cuts a string to at most width visual columns, keeping ANSI escape
// sequences intact.
func truncate(s string, width int) string {
	if VisualWidth(s) <= width {
		return s
	}
	var (
		b strings.Builder
		w int
	)
	for len(s) > 0 {
		if n := ansiPrefixLen(s); n > 0 {
			b.WriteString(s[:n])
			s = s[n:]
			continue
		}
		cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
		cw := runewidth.StringWidth(cluster)
		if w+cw > width {
			break
		}
		b.WriteString(cluster)
		w += cw
		s = rest
	}
	return b.String()
}

// repeatTo repeats a fill fragment until it spans exactly width columns.
func repeatTo(fill string, width int) string {
	fw := VisualWidth(fill)
	if fw <= 0 || width <= 0 {
		return ""
	}
	n := (width + fw - 1) / fw
	return truncate(strings.Repeat(fill, n), width)
}

// pad extends a string with spaces to the given visual width.
func pad(s string, width int) string {
	if d := width - VisualWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// ansiPrefixLen returns the byte length of the ANSI escape sequence at the
// start of s, or 0 if s does not start with one.
func ansiPrefixLen(s string) int {
	if len(s) < 2 || s[0] != 0x1b {
		return 0
	}
	switch s[1] {
	case '[': // CSI: parameters, intermediates, then a final byte
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
		return len(s)
	case ']': // OSC: terminated by BEL or ST
		for i := 2; i < len(s); i++ {
			if s[i] == 0x07 {
				return i + 1
			}
			if s[i] == 0x1b && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return len(s)
	default:
		return 2
	}
}
