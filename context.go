package carton

// Index identifies a node's position among its siblings. Border and
// separator decisions depend on it: a non-first bordered sibling drops the
// edge it would otherwise double up against its predecessor.
type Index struct {
	Position int
	Total    int
}

// First reports whether the node is the first among its siblings.
func (ix Index) First() bool {
	return ix.Position == 0
}

// Last reports whether the node is the last among its siblings.
func (ix Index) Last() bool {
	return ix.Position == ix.Total-1
}

// Context carries the per-call constraints for a single render pass down the
// tree. Contexts are values; a parent derives child contexts without
// mutating its own.
type Context struct {
	// MaxWidth is the width ceiling imposed by ancestors. Zero means
	// unconstrained; text is still subject to MaxColumnWidth.
	MaxWidth int

	// Flow is the orientation of the containing box, so a child knows which
	// of its border edges faces the preceding sibling.
	Flow Orientation

	// Index is the node's position among its siblings.
	Index Index

	// Adjacent reports that the node is rendered flush against a previous
	// sibling whose border draws the facing edge. Border collapse applies
	// only then; a gap or an unbordered predecessor leaves edges intact.
	Adjacent bool
}

// RootContext returns the context for a top-level render pass. The root has
// no siblings.
func RootContext(maxWidth int) Context {
	return Context{
		MaxWidth: maxWidth,
		Flow:     Vertical,
		Index:    Index{Position: 0, Total: 1},
	}
}

// child derives the context a contained node is rendered with.
func (c Context) child(flow Orientation, maxWidth, position, total int, adjacent bool) Context {
	return Context{
		MaxWidth: maxWidth,
		Flow:     flow,
		Index:    Index{Position: position, Total: total},
		Adjacent: adjacent && position > 0,
	}
}
