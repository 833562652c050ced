package carton

import "strings"

// Shape describes the extent a rendered node occupies and, for boxes with
// span constraints, the width it would prefer to be given.
type Shape struct {
	// Width is the maximum visual width across the rendered lines.
	Width int

	// Height is the number of rendered lines.
	Height int

	// Desired is the width the node requests from its parent, or -1 when the
	// node has no preference beyond its content. Text never requests one.
	Desired int
}

// Result is the outcome of rendering a node: the composed string and the
// shape the parent needs for its own layout decisions.
type Result struct {
	Shape Shape
	Value string
}

// Node is a renderable element of a layout tree. Exactly two variants exist,
// Text and Box; rendering is a pure function of the node and the context, so
// the same tree can be rendered repeatedly or concurrently with different
// contexts.
type Node interface {
	Render(ctx Context) Result
}

// splitLines splits a rendered value into its lines. An empty value is a
// single empty line, matching how it renders.
func splitLines(s string) []string {
	return strings.Split(s, "\n")
}
