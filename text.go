package carton

import (
	"fmt"
	"strings"
)

// Text is a leaf node holding a string. Rendering wraps the string to the
// effective width ceiling; content already narrow enough passes through
// unmodified.
type Text struct {
	content string
}

// NewText creates a text node.
func NewText(s string) *Text {
	return &Text{content: s}
}

// NewTextf creates a text node with printf-style formatting.
func NewTextf(format string, args ...any) *Text {
	return NewText(fmt.Sprintf(format, args...))
}

// Content returns the raw string.
func (t *Text) Content() string {
	return t.content
}

// Render implements Node. The readability cap applies even when the context
// offers more width, or none at all.
func (t *Text) Render(ctx Context) Result {
	max := MaxColumnWidth
	if ctx.MaxWidth > 0 && ctx.MaxWidth < max {
		max = ctx.MaxWidth
	}
	lines := Wrap(t.content, max)
	width := 0
	for _, line := range lines {
		if w := VisualWidth(line); w > width {
			width = w
		}
	}
	return Result{
		Shape: Shape{Width: width, Height: len(lines), Desired: -1},
		Value: strings.Join(lines, "\n"),
	}
}
