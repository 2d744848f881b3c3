package layout

import "fmt"

// GridSpan is a half-open interval [Start, End) over grid-axis track
// indices. A span is definite once both endpoints are known; items awaiting
// auto-placement carry an indefinite span that only knows its size.
type GridSpan struct {
	start, end int
	// spanSize is the requested track count while the span is indefinite;
	// zero for definite spans.
	spanSize int
}

// DefiniteSpan returns the span [start, end). It panics on a degenerate
// interval: producing one is a placement bug, not an input condition.
func DefiniteSpan(start, end int) GridSpan {
	if start < 0 || end <= start {
		panic(fmt.Sprintf("layout: degenerate grid span [%d, %d)", start, end))
	}
	return GridSpan{start: start, end: end}
}

// IndefiniteSpan returns a span of the given size with no position yet.
func IndefiniteSpan(size int) GridSpan {
	if size < 1 {
		panic(fmt.Sprintf("layout: indefinite span of size %d", size))
	}
	return GridSpan{spanSize: size}
}

func (s GridSpan) IsIndefinite() bool { return s.spanSize > 0 }
func (s GridSpan) IsDefinite() bool   { return s.spanSize == 0 }

// Start returns the first track index of a definite span.
func (s GridSpan) Start() int {
	s.checkDefinite()
	return s.start
}

// End returns the exclusive end line of a definite span.
func (s GridSpan) End() int {
	s.checkDefinite()
	return s.end
}

// Size returns the number of tracks the span covers or requests.
func (s GridSpan) Size() int {
	if s.IsIndefinite() {
		return s.spanSize
	}
	return s.end - s.start
}

// IndefiniteSpanSize returns the requested size of an indefinite span.
func (s GridSpan) IndefiniteSpanSize() int {
	if !s.IsIndefinite() {
		panic("layout: IndefiniteSpanSize on a definite span")
	}
	return s.spanSize
}

// Translate returns the span shifted by delta lines.
func (s GridSpan) Translate(delta int) GridSpan {
	s.checkDefinite()
	return GridSpan{start: s.start + delta, end: s.end + delta}
}

// Intersects reports whether two definite spans share any track.
func (s GridSpan) Intersects(other GridSpan) bool {
	s.checkDefinite()
	other.checkDefinite()
	return s.start < other.end && other.start < s.end
}

// Contains reports whether the definite span covers the given track.
func (s GridSpan) Contains(track int) bool {
	s.checkDefinite()
	return track >= s.start && track < s.end
}

func (s GridSpan) String() string {
	if s.IsIndefinite() {
		return fmt.Sprintf("span(%d)", s.spanSize)
	}
	return fmt.Sprintf("[%d, %d)", s.start, s.end)
}

func (s GridSpan) checkDefinite() {
	if s.IsIndefinite() {
		panic("layout: position of an indefinite grid span")
	}
}
