package layout

import (
	"fmt"

	"mason/pkg/style"
)

// trackSet is a contiguous run of tracks sized together: same sizing
// function, same template group. The sizing engine assigns one per-track
// base size and growth limit to the whole set; the masonry algorithm
// treats sets as opaque.
type trackSet struct {
	begin, end     int // track index range [begin, end)
	size           style.TrackSize
	fromAutoRepeat bool

	baseSize    float64 // per track
	growthLimit float64 // per track; growthLimitInfinite until capped
}

const growthLimitInfinite = -1.0

func (s *trackSet) trackCount() int { return s.end - s.begin }

// TrackCollection is the expanded grid axis: per-track sizing functions
// grouped into sets, collapse state for empty auto-fit tracks, and (after
// FinalizeGeometry) final sizes and offsets.
type TrackCollection struct {
	gap  float64
	sets []trackSet

	setOfTrack []int  // track index -> set index
	collapsed  []bool // per track

	offsets   []float64 // per track, content-relative; valid after FinalizeGeometry
	extent    float64   // total extent, gutters included, collapsed gutters skipped
	finalized bool
}

// NewTrackCollection expands a template into a collection. percentBase is
// the definite grid-axis available size, or Indefinite.
func NewTrackCollection(template style.TrackList, autoRepetitions int, gap, percentBase float64) *TrackCollection {
	sizes, fromAuto := template.Expand(autoRepetitions)
	if len(sizes) == 0 {
		sizes = []style.TrackSize{style.AutoTrack()}
		fromAuto = []bool{false}
	}

	c := &TrackCollection{
		gap:        gap,
		setOfTrack: make([]int, len(sizes)),
		collapsed:  make([]bool, len(sizes)),
	}
	for i, size := range sizes {
		n := len(c.sets)
		if n > 0 && c.sets[n-1].size == size && c.sets[n-1].fromAutoRepeat == fromAuto[i] {
			c.sets[n-1].end++
		} else {
			c.sets = append(c.sets, trackSet{begin: i, end: i + 1, size: size, fromAutoRepeat: fromAuto[i]})
			n++
		}
		c.setOfTrack[i] = n - 1
	}

	// Initialize base sizes and growth limits from the definite parts of
	// the sizing functions; intrinsic parts start at zero / infinite.
	for i := range c.sets {
		s := &c.sets[i]
		if s.size.Min.IsDefinite() {
			s.baseSize = s.size.Min.Resolve(percentBase)
		}
		switch {
		case s.size.Max.IsDefinite():
			s.growthLimit = s.size.Max.Resolve(percentBase)
			if s.growthLimit < s.baseSize {
				s.growthLimit = s.baseSize
			}
		default:
			s.growthLimit = growthLimitInfinite
		}
	}
	return c
}

// TrackCount returns the number of tracks in the collection.
func (c *TrackCollection) TrackCount() int { return len(c.setOfTrack) }

// HasNonDefiniteTrack reports whether any track needs the sizing engine
// (an intrinsic or flexible sizing function).
func (c *TrackCollection) HasNonDefiniteTrack() bool {
	for _, s := range c.sets {
		if !s.size.Min.IsDefinite() || !s.size.Max.IsDefinite() {
			return true
		}
	}
	return false
}

// AutoFitSpan returns the definite span the auto-fit repetitions occupy,
// or an ok=false when the template has no auto-fit repeater.
func AutoFitSpan(template style.TrackList, autoRepetitions int) (GridSpan, bool) {
	if !template.IsAutoFit() {
		return GridSpan{}, false
	}
	start := template.TrackCountBeforeAutoRepeat()
	count := autoRepetitions * template.AutoRepeatTrackCount()
	if count == 0 {
		return GridSpan{}, false
	}
	return DefiniteSpan(start, start+count), true
}

// CollapseEmptyAutoFitTracks collapses every auto-fit track not covered by
// any of the given spans. Collapsed tracks size to zero and drop their
// gutters. Returns the collapsed track indexes in increasing order.
func (c *TrackCollection) CollapseEmptyAutoFitTracks(autoFitSpan GridSpan, covered []GridSpan) []int {
	var collapsed []int
	for t := autoFitSpan.Start(); t < autoFitSpan.End(); t++ {
		inUse := false
		for _, span := range covered {
			if span.IsDefinite() && span.Contains(t) {
				inUse = true
				break
			}
		}
		if !inUse {
			c.collapsed[t] = true
			collapsed = append(collapsed, t)
		}
	}
	return collapsed
}

// IsCollapsed reports whether the given track collapsed.
func (c *TrackCollection) IsCollapsed(track int) bool { return c.collapsed[track] }

// TrackSize returns the final per-track size (zero for collapsed tracks).
func (c *TrackCollection) TrackSize(track int) float64 {
	if c.collapsed[track] {
		return 0
	}
	return c.sets[c.setOfTrack[track]].baseSize
}

// AutoRepeaterBaseSize returns the base size the sizing engine assigned to
// the auto-sized repeater track. It panics when the collection has none:
// callers only ask after an InitialSizing pass, which requires one.
func (c *TrackCollection) AutoRepeaterBaseSize() float64 {
	for _, s := range c.sets {
		if s.fromAutoRepeat && s.size.IsAutoSized() {
			return s.baseSize
		}
	}
	panic("layout: no auto-sized repeater track in collection")
}

// FinalizeGeometry computes per-track offsets relative to the container's
// border box, starting at startOffset (the border+scrollbar+padding start).
func (c *TrackCollection) FinalizeGeometry(startOffset float64) {
	c.offsets = make([]float64, c.TrackCount())
	pos := startOffset
	placedAny := false
	for t := range c.offsets {
		c.offsets[t] = pos
		if c.collapsed[t] {
			continue
		}
		pos += c.TrackSize(t) + c.gap
		placedAny = true
	}
	c.extent = 0
	if placedAny {
		c.extent = pos - c.gap - startOffset
	}
	c.finalized = true
}

// SetSpanSize returns the extent of all tracks plus their gutters. Valid
// after FinalizeGeometry.
func (c *TrackCollection) SetSpanSize() float64 {
	c.checkFinalized()
	return c.extent
}

// SpanExtent returns the offset and size of the extent a definite span
// covers, inner gutters included. Valid after FinalizeGeometry.
func (c *TrackCollection) SpanExtent(span GridSpan) (offset, size float64) {
	c.checkFinalized()
	offset = c.offsets[span.Start()]
	live := 0
	for t := span.Start(); t < span.End(); t++ {
		if c.collapsed[t] {
			continue
		}
		size += c.TrackSize(t)
		live++
	}
	if live > 1 {
		size += c.gap * float64(live-1)
	}
	return offset, size
}

// Geometry exports final per-track sizes and offsets for introspection.
func (c *TrackCollection) Geometry() []TrackGeometry {
	c.checkFinalized()
	geometry := make([]TrackGeometry, c.TrackCount())
	for t := range geometry {
		geometry[t] = TrackGeometry{
			Offset:    c.offsets[t],
			Size:      c.TrackSize(t),
			Collapsed: c.collapsed[t],
		}
	}
	return geometry
}

// setsForSpan returns the set index range [first, last] covered by a span.
func (c *TrackCollection) setsForSpan(span GridSpan) (first, last int) {
	return c.setOfTrack[span.Start()], c.setOfTrack[span.End()-1]
}

func (c *TrackCollection) checkFinalized() {
	if !c.finalized {
		panic("layout: track geometry read before FinalizeGeometry")
	}
}

func (c *TrackCollection) String() string {
	return fmt.Sprintf("TrackCollection{%d tracks, %d sets, gap %g}", c.TrackCount(), len(c.sets), c.gap)
}
