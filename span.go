package carton

// Orientation specifies the main axis a Box lays its children along.
type Orientation uint8

const (
	Vertical   Orientation = iota // children stacked top-to-bottom
	Horizontal                    // children placed left-to-right
)

// String returns the orientation name.
func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Span bounds a box's extent along one axis. Zero means unset: Min 0 imposes
// no floor, Max 0 imposes no ceiling.
type Span struct {
	Min int
	Max int
}

// Clamp bounds n to the span. When Min exceeds Max, Min wins; a floor that
// overflows the available space is rendered anyway rather than rejected.
func (s Span) Clamp(n int) int {
	if s.Max > 0 && n > s.Max {
		n = s.Max
	}
	if n < s.Min {
		n = s.Min
	}
	return n
}

// IsSet reports whether either bound is set.
func (s Span) IsSet() bool {
	return s.Min > 0 || s.Max > 0
}

// SpanRange bounds a box along both of its axes. Main follows the box's
// orientation; Cross is perpendicular to it.
type SpanRange struct {
	Main  Span
	Cross Span
}

// widthSpan returns the span that constrains horizontal extent for a box of
// the given orientation.
func (r SpanRange) widthSpan(o Orientation) Span {
	if o == Horizontal {
		return r.Main
	}
	return r.Cross
}

// heightSpan returns the span that constrains vertical extent for a box of
// the given orientation.
func (r SpanRange) heightSpan(o Orientation) Span {
	if o == Horizontal {
		return r.Cross
	}
	return r.Main
}
