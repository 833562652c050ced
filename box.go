package carton

import "strings"

// Box is a container node. It composes its children along an orientation,
// wraps them in padding bands and an optional border, and constrains its
// own extent with a SpanRange.
//
// Sizing is two-pass: children are first rendered under the inherited width
// ceiling to obtain their intrinsic shapes, then re-rendered with a tighter
// budget where the first pass overflowed. The second pass is unavoidable
// because wrapped text changes shape with its assigned width; there is no
// cached layout to consult.
type Box struct {
	children    []Node
	orientation Orientation
	padding     Sides[Pad]
	border      *BorderStyle
	edges       Sides[bool]
	span        SpanRange
	gap         int
	title       string
}

// VBox creates a container that stacks children top-to-bottom.
func VBox(children ...Node) *Box {
	return &Box{orientation: Vertical, children: children}
}

// HBox creates a container that places children left-to-right.
func HBox(children ...Node) *Box {
	return &Box{orientation: Horizontal, children: children}
}

// Add appends children.
func (b *Box) Add(children ...Node) *Box {
	b.children = append(b.children, children...)
	return b
}

// Orient sets the flow direction.
func (b *Box) Orient(o Orientation) *Box {
	b.orientation = o
	return b
}

// Gap sets blank space between adjacent children: rows in a vertical box,
// columns in a horizontal one.
func (b *Box) Gap(n int) *Box {
	b.gap = n
	return b
}

// Title sets a label embedded in the top border. It only renders when the
// border's top edge is drawn; a box without one shows no title.
func (b *Box) Title(s string) *Box {
	b.title = s
	return b
}

// Pad sets padding from a 1-4 value shorthand (all / vertical,horizontal /
// top,horizontal,bottom / top,right,bottom,left). Invalid arity panics at
// construction time.
func (b *Box) Pad(parts ...Pad) *Box {
	b.padding = expandValues(parts)
	return b
}

// PadSides sets padding from an already resolved per-side specification,
// which may leave individual sides absent.
func (b *Box) PadSides(s Sides[Pad]) *Box {
	b.padding = s
	return b
}

// Border draws the given style on all four edges.
func (b *Box) Border(style BorderStyle) *Box {
	b.border = &style
	b.edges = Uniform(true)
	return b
}

// BorderEdges draws the given style on the edges selected by a 1-4 value
// shorthand of booleans.
func (b *Box) BorderEdges(style BorderStyle, parts ...bool) *Box {
	b.border = &style
	b.edges = expandValues(parts)
	return b
}

// BorderSides draws the given style on the edges selected per side.
func (b *Box) BorderSides(style BorderStyle, s Sides[bool]) *Box {
	b.border = &style
	b.edges = s
	return b
}

// Span constrains the box's extent along both axes.
func (b *Box) Span(r SpanRange) *Box {
	b.span = r
	return b
}

// WidthSpan constrains the box's horizontal extent, whichever axis that is
// for its orientation. Zero leaves a bound unset.
func (b *Box) WidthSpan(min, max int) *Box {
	if b.orientation == Horizontal {
		b.span.Main = Span{Min: min, Max: max}
	} else {
		b.span.Cross = Span{Min: min, Max: max}
	}
	return b
}

// HeightSpan constrains the box's vertical extent.
func (b *Box) HeightSpan(min, max int) *Box {
	if b.orientation == Horizontal {
		b.span.Cross = Span{Min: min, Max: max}
	} else {
		b.span.Main = Span{Min: min, Max: max}
	}
	return b
}

// Render implements Node.
func (b *Box) Render(ctx Context) Result {
	ws := b.span.widthSpan(b.orientation)
	hs := b.span.heightSpan(b.orientation)

	outer := ctx.MaxWidth
	if ws.Max > 0 && (outer == 0 || ws.Max < outer) {
		outer = ws.Max
	}

	chromeW := b.chromeWidth()
	inner := 0
	if outer > 0 {
		inner = outer - chromeW
		if inner < 1 {
			inner = 1
		}
	}

	var (
		lines    []string
		contentW int
	)
	if b.orientation == Horizontal {
		lines, contentW = b.composeHorizontal(ctx, inner)
	} else {
		lines, contentW = b.composeVertical(ctx, inner)
	}

	// A span minimum stretches the content area. If it exceeds the available
	// width the box overflows; rendering something beats failing.
	if min := ws.Min - chromeW; contentW < min {
		contentW = min
	}

	lines = b.clampHeight(lines, contentW, hs)
	lines, width := b.applyChrome(lines, contentW, ctx)

	desired := -1
	if ws.IsSet() {
		desired = ws.Clamp(width)
	}
	return Result{
		Shape: Shape{Width: width, Height: len(lines), Desired: desired},
		Value: strings.Join(lines, "\n"),
	}
}

// composeVertical stacks child values, separated by gap rows. Children that
// render to zero height contribute nothing: no row, no separator.
func (b *Box) composeVertical(ctx Context, inner int) ([]string, int) {
	n := len(b.children)
	var (
		lines    []string
		contentW int
		prev     Node
	)
	for i, c := range b.children {
		adj := b.gap == 0 && facingEdge(prev, b.orientation)
		res := c.Render(ctx.child(b.orientation, inner, i, n, adj))
		if res.Shape.Height == 0 {
			continue
		}
		if prev != nil {
			for g := 0; g < b.gap; g++ {
				lines = append(lines, "")
			}
		}
		lines = append(lines, splitLines(res.Value)...)
		if res.Shape.Width > contentW {
			contentW = res.Shape.Width
		}
		prev = c
	}
	return lines, contentW
}

// facingEdge reports whether node draws a border on its trailing edge in the
// given flow, the edge a following flush sibling's leading edge would double
// up against. Only that case allows the follower to drop its leading edge.
func facingEdge(node Node, flow Orientation) bool {
	box, ok := node.(*Box)
	if !ok || box.border == nil {
		return false
	}
	if flow == Vertical {
		return box.edges.Bottom.Or(false)
	}
	return box.edges.Right.Or(false)
}

// composeHorizontal lays children side by side. The intrinsic pass renders
// every child under the full inner budget; when the results overflow, the
// budget is redistributed left to right and the overflowing children are
// re-rendered with their tightened share. Zero-height children contribute
// nothing: no column, no separator.
func (b *Box) composeHorizontal(ctx Context, inner int) ([]string, int) {
	total := len(b.children)
	var (
		kept    []Node
		results []Result
		pos     []int
		adj     []bool
		prev    Node
	)
	for i, c := range b.children {
		a := b.gap == 0 && facingEdge(prev, b.orientation)
		res := c.Render(ctx.child(b.orientation, inner, i, total, a))
		if res.Shape.Height == 0 {
			continue
		}
		kept = append(kept, c)
		results = append(results, res)
		pos = append(pos, i)
		adj = append(adj, a)
		prev = c
	}
	n := len(kept)
	if n == 0 {
		return nil, 0
	}

	gapW := b.gap * (n - 1)
	if inner > 0 {
		avail := inner - gapW
		if avail < n {
			avail = n
		}
		sum := 0
		for _, r := range results {
			sum += r.Shape.Width
		}
		if sum > avail {
			remaining := avail
			for i, c := range kept {
				// Later siblings keep at least one column each.
				others := n - 1 - i
				budget := remaining - others
				if budget < 1 {
					budget = 1
				}
				if results[i].Shape.Width > budget {
					results[i] = c.Render(ctx.child(b.orientation, budget, pos[i], total, adj[i]))
				}
				remaining -= results[i].Shape.Width
				if remaining < others {
					remaining = others
				}
			}
		}
	}

	// Equalize heights: shorter children are padded with blank rows to the
	// tallest sibling, then rows are concatenated column by column.
	maxH := 0
	cols := make([][]string, n)
	colW := make([]int, n)
	for i, r := range results {
		cols[i] = splitLines(r.Value)
		colW[i] = r.Shape.Width
		if len(cols[i]) > maxH {
			maxH = len(cols[i])
		}
	}

	full := b.needFull()
	gapStr := strings.Repeat(" ", b.gap)
	lines := make([]string, maxH)
	for row := 0; row < maxH; row++ {
		var sb strings.Builder
		for i := 0; i < n; i++ {
			cell := ""
			if row < len(cols[i]) {
				cell = cols[i][row]
			}
			if i < n-1 || full {
				cell = pad(cell, colW[i])
			}
			sb.WriteString(cell)
			if i < n-1 {
				sb.WriteString(gapStr)
			}
		}
		line := sb.String()
		if !full {
			line = strings.TrimRight(line, " ")
		}
		lines[row] = line
	}

	contentW := gapW
	for _, w := range colW {
		contentW += w
	}
	return lines, contentW
}

// clampHeight applies the vertical span to the content stack: a minimum adds
// blank rows, a maximum crops.
func (b *Box) clampHeight(lines []string, contentW int, hs Span) []string {
	if !hs.IsSet() {
		return lines
	}
	chromeH := b.chromeHeight()
	if hs.Max > 0 && len(lines)+chromeH > hs.Max {
		keep := hs.Max - chromeH
		if keep < 0 {
			keep = 0
		}
		lines = lines[:keep]
	}
	if min := hs.Min - chromeH; len(lines) < min {
		blank := ""
		if b.needFull() {
			blank = strings.Repeat(" ", contentW)
		}
		for len(lines) < min {
			lines = append(lines, blank)
		}
	}
	return lines
}

// applyChrome wraps the content stack in left/right padding, top/bottom
// bands, and the border. It returns the final lines and their visual width.
func (b *Box) applyChrome(lines []string, contentW int, ctx Context) ([]string, int) {
	full := b.needFull()
	leftPad, leftW := padString(b.padding.Left)
	rightPad, rightW := padString(b.padding.Right)

	body := make([]string, 0, len(lines)+bandHeight(b.padding.Top)+bandHeight(b.padding.Bottom))
	paddedW := leftW + contentW + rightW

	body = append(body, bandLines(b.padding.Top, paddedW, full)...)
	for _, line := range lines {
		if full {
			line = pad(line, contentW)
		}
		body = append(body, leftPad+line+rightPad)
	}
	body = append(body, bandLines(b.padding.Bottom, paddedW, full)...)

	if b.border == nil {
		return body, paddedW
	}

	style := *b.border
	top := b.edges.Top.Or(false)
	right := b.edges.Right.Or(false)
	bottom := b.edges.Bottom.Or(false)
	left := b.edges.Left.Or(false)

	// Collapse against the preceding sibling: a box rendered flush against
	// its predecessor drops the edge facing it so borders do not double up.
	if ctx.Adjacent {
		if ctx.Flow == Vertical {
			top = false
		} else {
			left = false
		}
	}

	out := make([]string, 0, len(body)+2)
	if top {
		out = append(out, borderTop(style, left, right, paddedW, b.title))
	}
	var l, r string
	if left {
		l = style.Left
	}
	if right {
		r = style.Right
	}
	for _, line := range body {
		out = append(out, l+pad(line, paddedW)+r)
	}
	if bottom {
		out = append(out, borderBottom(style, left, right, paddedW))
	}

	width := paddedW + VisualWidth(l) + VisualWidth(r)
	return out, width
}

// needFull reports whether every rendered line must be padded to uniform
// width. Plain stacks keep their natural line widths; anything drawn to the
// right of the content needs alignment.
func (b *Box) needFull() bool {
	return b.border != nil || b.padding.Right.IsSet()
}

// chromeWidth is the horizontal space claimed by padding and border.
func (b *Box) chromeWidth() int {
	_, lw := padString(b.padding.Left)
	_, rw := padString(b.padding.Right)
	w := lw + rw
	if b.border != nil {
		if b.edges.Left.Or(false) {
			w += VisualWidth(b.border.Left)
		}
		if b.edges.Right.Or(false) {
			w += VisualWidth(b.border.Right)
		}
	}
	return w
}

// chromeHeight is the vertical space claimed by padding bands and border.
func (b *Box) chromeHeight() int {
	h := bandHeight(b.padding.Top) + bandHeight(b.padding.Bottom)
	if b.border != nil {
		if b.edges.Top.Or(false) {
			h++
		}
		if b.edges.Bottom.Or(false) {
			h++
		}
	}
	return h
}
