package carton

import "github.com/charmbracelet/lipgloss"

// BorderStyle is the character set used to draw box edges. It aliases the
// lipgloss border type so the catalog and any custom styles interoperate
// with the wider charm ecosystem.
type BorderStyle = lipgloss.Border

// The border catalog. Single is the reference style; the others behave
// identically apart from their characters.
var (
	BorderSingle  = lipgloss.NormalBorder()
	BorderRounded = lipgloss.RoundedBorder()
	BorderDouble  = lipgloss.DoubleBorder()
	BorderThick   = lipgloss.ThickBorder()
)

// borderTop draws the top border row across an interior of the given width.
// A title is embedded after the first horizontal char: ┌─ TITLE ───┐.
// Corners appear only when the adjacent vertical edge is drawn.
func borderTop(style BorderStyle, left, right bool, width int, title string) string {
	run := repeatTo(style.Top, width)
	if title != "" && width > 0 {
		label := truncate(style.Top+" "+title+" ", width)
		run = label + repeatTo(style.Top, width-VisualWidth(label))
	}
	var l, r string
	if left {
		l = style.TopLeft
	}
	if right {
		r = style.TopRight
	}
	return l + run + r
}

// borderBottom draws the bottom border row across an interior of the given
// width.
func borderBottom(style BorderStyle, left, right bool, width int) string {
	var l, r string
	if left {
		l = style.BottomLeft
	}
	if right {
		r = style.BottomRight
	}
	return l + repeatTo(style.Bottom, width) + r
}
