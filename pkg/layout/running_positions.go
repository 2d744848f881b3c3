package layout

import "fmt"

// RunningPositions tracks, per grid-axis track, the maximum stacking-axis
// extent occupied by the items placed so far, plus the auto-placement
// cursor. One instance lives for exactly one placement pass.
type RunningPositions struct {
	positions []float64
	cursor    int
	tolerance float64
	collapsed []bool // may be nil; collapsed start lines are avoided
}

// NewRunningPositions returns a zeroed tracker. tolerance is the slack
// above the true minimum position within which an earlier start line still
// wins a placement query. collapsed marks auto-fit tracks that collapsed;
// nil means none.
func NewRunningPositions(trackCount int, tolerance float64, collapsed []bool) *RunningPositions {
	if trackCount < 1 {
		panic(fmt.Sprintf("layout: running positions over %d tracks", trackCount))
	}
	if collapsed != nil && len(collapsed) != trackCount {
		panic("layout: collapsed vector length mismatch")
	}
	return &RunningPositions{
		positions: make([]float64, trackCount),
		tolerance: tolerance,
		collapsed: collapsed,
	}
}

// GetMaxPositionForSpan returns the earliest stacking-axis offset at which
// an item covering exactly span could start without overlap.
func (r *RunningPositions) GetMaxPositionForSpan(span GridSpan) float64 {
	pos := 0.0
	for t := span.Start(); t < span.End(); t++ {
		if r.positions[t] > pos {
			pos = r.positions[t]
		}
	}
	return pos
}

// GetFirstEligibleLine scans candidate start lines for a span of spanSize
// tracks, beginning at the auto-placement cursor, and returns the
// lowest-index line whose max position is within the tolerance of the
// minimum among all candidates. Ties go to the earlier line for positional
// stability rather than strictly optimal packing. When the cursor already
// sits past the last legal start line the scan restarts at line zero; the
// stored cursor itself only ever advances.
func (r *RunningPositions) GetFirstEligibleLine(spanSize int) (GridSpan, float64) {
	last := len(r.positions) - spanSize
	if last < 0 {
		panic(fmt.Sprintf("layout: span of %d tracks exceeds the %d-track grid", spanSize, len(r.positions)))
	}
	first := r.cursor
	if first > last {
		first = 0
	}

	if span, pos, ok := r.firstEligible(first, last, spanSize, true); ok {
		return span, pos
	}
	// Every candidate overlaps a collapsed track; consider them all.
	span, pos, _ := r.firstEligible(first, last, spanSize, false)
	return span, pos
}

func (r *RunningPositions) firstEligible(first, last, spanSize int, skipCollapsed bool) (GridSpan, float64, bool) {
	minPos := -1.0
	candidates := 0
	for line := first; line <= last; line++ {
		span := DefiniteSpan(line, line+spanSize)
		if skipCollapsed && r.spanCollapsed(span) {
			continue
		}
		candidates++
		if pos := r.GetMaxPositionForSpan(span); minPos < 0 || pos < minPos {
			minPos = pos
		}
	}
	if candidates == 0 {
		return GridSpan{}, 0, false
	}
	for line := first; line <= last; line++ {
		span := DefiniteSpan(line, line+spanSize)
		if skipCollapsed && r.spanCollapsed(span) {
			continue
		}
		if pos := r.GetMaxPositionForSpan(span); pos <= minPos+r.tolerance {
			return span, pos, true
		}
	}
	panic("layout: no eligible line despite candidates")
}

func (r *RunningPositions) spanCollapsed(span GridSpan) bool {
	if r.collapsed == nil {
		return false
	}
	for t := span.Start(); t < span.End(); t++ {
		if r.collapsed[t] {
			return true
		}
	}
	return false
}

// UpdateAutoPlacementCursor advances the cursor to endLine. The cursor is
// monotonic; a smaller line is ignored.
func (r *RunningPositions) UpdateAutoPlacementCursor(endLine int) {
	if endLine > r.cursor {
		r.cursor = endLine
	}
}

// UpdateRunningPositionsForSpan sets every track in span to newValue. The
// caller passes the already-maximized value (old max + item extent + gap),
// so entries stay monotonically non-decreasing.
func (r *RunningPositions) UpdateRunningPositionsForSpan(span GridSpan, newValue float64) {
	for t := span.Start(); t < span.End(); t++ {
		r.positions[t] = newValue
	}
}

// MaxPosition returns the largest running position over all tracks.
func (r *RunningPositions) MaxPosition() float64 {
	pos := 0.0
	for _, p := range r.positions {
		if p > pos {
			pos = p
		}
	}
	return pos
}

// Positions returns a copy of the per-track vector, for tests and
// introspection.
func (r *RunningPositions) Positions() []float64 {
	out := make([]float64, len(r.positions))
	copy(out, r.positions)
	return out
}
