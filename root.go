package carton

// DefaultWidth is the width ceiling used when no terminal width is injected.
const DefaultWidth = 120

// Root seeds a render pass with a top-level width ceiling. The ambient
// terminal width is a caller concern: query it once (x/term.GetSize or
// similar) and inject it with WithWidth, so the layout core stays free of
// environment coupling.
type Root struct {
	child Node
	width int
}

// RootOption configures a Root.
type RootOption func(*Root)

// WithWidth sets the top-level width ceiling. Zero or negative values keep
// the default.
func WithWidth(n int) RootOption {
	return func(r *Root) {
		if n > 0 {
			r.width = n
		}
	}
}

// NewRoot wraps a node tree for rendering.
func NewRoot(child Node, opts ...RootOption) *Root {
	r := &Root{child: child, width: DefaultWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render performs one full top-down pass and returns the composed output.
func (r *Root) Render() string {
	if r.child == nil {
		return ""
	}
	return r.child.Render(RootContext(r.width)).Value
}
