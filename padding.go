package carton

import "strings"

// Pad describes one side of a padding band. A zero Fill pads with Count
// blank cells (left/right) or Count blank lines (top/bottom). A non-zero
// Fill is a literal fragment: used once per line on the left/right, repeated
// across the band width on the top/bottom.
type Pad struct {
	Count int
	Fill  string
}

// PadN returns numeric padding of n cells or lines.
func PadN(n int) Pad {
	return Pad{Count: n}
}

// PadFill returns fill-string padding, e.g. PadFill("> ") for a quote gutter.
func PadFill(s string) Pad {
	return Pad{Fill: s}
}

// padString returns the literal prefix/suffix a left or right padding side
// contributes to every rendered line, and its visual width.
func padString(side Opt[Pad]) (string, int) {
	p, ok := side.Get()
	if !ok {
		return "", 0
	}
	if p.Fill != "" {
		return p.Fill, VisualWidth(p.Fill)
	}
	return strings.Repeat(" ", p.Count), p.Count
}

// bandLines returns the lines a top or bottom padding side inserts. Blank
// bands carry spaces only when the surrounding chrome needs uniform width.
func bandLines(side Opt[Pad], width int, full bool) []string {
	p, ok := side.Get()
	if !ok {
		return nil
	}
	n := p.Count
	line := ""
	if p.Fill != "" {
		if n < 1 {
			n = 1
		}
		line = repeatTo(p.Fill, width)
	} else if full {
		line = strings.Repeat(" ", width)
	}
	if n <= 0 {
		return nil
	}
	lines := make([]string, n)
	for i := range lines {
		lines[i] = line
	}
	return lines
}

// bandHeight is the number of lines bandLines will produce.
func bandHeight(side Opt[Pad]) int {
	p, ok := side.Get()
	if !ok {
		return 0
	}
	if p.Fill != "" && p.Count < 1 {
		return 1
	}
	if p.Count < 0 {
		return 0
	}
	return p.Count
}
