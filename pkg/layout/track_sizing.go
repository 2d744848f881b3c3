package layout

import (
	"sort"

	"mason/pkg/style"
)

// ContributionType selects which contribution the sizing engine is asking
// for during a distribution round.
type ContributionType int

const (
	ForIntrinsicMinimums ContributionType = iota
	ForContentBasedMinimums
	ForMaxContentMinimums
	ForIntrinsicMaximums
	ForMaxContentMaximums
	ForFreeSpace
)

// ContributionFunc returns the contribution size of a virtual item,
// identified by its index into the span slice handed to the engine.
type ContributionFunc func(t ContributionType, virtualItem int) float64

// TrackSizingEngine computes used sizes for every set of a track
// collection. spans are the virtual items' definite spans; contribution
// supplies their size envelopes. skipFreeSpace suppresses free-space
// distribution during the InitialSizing pass of an auto-sized repeater,
// so the base size read back is the pure intrinsic track size.
type TrackSizingEngine interface {
	ComputeUsedSizes(c *TrackCollection, spans []GridSpan, contribution ContributionFunc,
		available float64, constraint SizingConstraint, skipFreeSpace bool)
}

// DefaultTrackSizingEngine is the built-in multi-pass distribution
// algorithm: initialize from definite sizing functions, resolve intrinsic
// sizes from item contributions in span order, maximize tracks, then
// expand flexible tracks.
type DefaultTrackSizingEngine struct{}

func (DefaultTrackSizingEngine) ComputeUsedSizes(c *TrackCollection, spans []GridSpan,
	contribution ContributionFunc, available float64, constraint SizingConstraint, skipFreeSpace bool) {

	// Resolve intrinsic sizes, narrowest spans first so single-track
	// contributions are locked in before spanning items distribute.
	order := make([]int, len(spans))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return spans[order[a]].Size() < spans[order[b]].Size()
	})

	for _, item := range order {
		span := spans[item]
		if c.spanHasFlexTrack(span) {
			// Spans crossing flexible tracks are resolved by the flex
			// expansion step instead.
			continue
		}
		// Base sizes.
		c.distribute(span, contribution(ForIntrinsicMinimums, item), sizeBase, func(s *trackSet) bool {
			return s.size.Min.IsIntrinsic()
		})
		c.distribute(span, contribution(ForContentBasedMinimums, item), sizeBase, func(s *trackSet) bool {
			k := s.size.Min.Kind
			return k == style.SizingMinContent || k == style.SizingMaxContent
		})
		c.distribute(span, contribution(ForMaxContentMinimums, item), sizeBase, func(s *trackSet) bool {
			k := s.size.Min.Kind
			return k == style.SizingMaxContent || (constraint == ConstraintMaxContent && k == style.SizingAuto)
		})
		// Growth limits.
		c.distribute(span, contribution(ForIntrinsicMaximums, item), sizeLimit, func(s *trackSet) bool {
			return s.size.Max.IsIntrinsic()
		})
		c.distribute(span, contribution(ForMaxContentMaximums, item), sizeLimit, func(s *trackSet) bool {
			k := s.size.Max.Kind
			return k == style.SizingMaxContent || k == style.SizingAuto
		})
	}

	// Fix infinite growth limits and re-establish base <= limit.
	for i := range c.sets {
		s := &c.sets[i]
		if s.growthLimit == growthLimitInfinite {
			s.growthLimit = s.baseSize
		}
		if s.growthLimit < s.baseSize {
			s.growthLimit = s.baseSize
		}
	}

	if skipFreeSpace {
		return
	}

	switch constraint {
	case ConstraintMaxContent:
		// Infinite free space: every track grows to its growth limit.
		for i := range c.sets {
			s := &c.sets[i]
			if s.growthLimit > s.baseSize {
				s.baseSize = s.growthLimit
			}
		}
	case ConstraintLayout:
		if available >= 0 {
			c.maximizeTracks(available)
			c.expandFlexTracks(available)
		}
	}
}

// track-size field selector for distribute.
type sizeField int

const (
	sizeBase sizeField = iota
	sizeLimit
)

// distribute grows the selected size of every affected set covered by span
// until the span accommodates the contribution. Space is split equally
// between affected tracks, first up to growth limits, then beyond them
// (base sizes only). No-op when the contribution is already covered.
func (c *TrackCollection) distribute(span GridSpan, space float64, field sizeField, affected func(*trackSet) bool) {
	if space <= 0 {
		return
	}
	first, last := c.setsForSpan(span)

	// Subtract what the span already provides, gutters included.
	covered := 0.0
	liveTracks := 0
	for i := first; i <= last; i++ {
		s := &c.sets[i]
		n := c.liveTracksInSpan(s, span)
		liveTracks += n
		if field == sizeBase || s.growthLimit == growthLimitInfinite {
			covered += s.baseSize * float64(n)
		} else {
			covered += s.growthLimit * float64(n)
		}
	}
	if liveTracks == 0 {
		return
	}
	space -= covered + c.gap*float64(liveTracks-1)
	if space <= 0 {
		return
	}

	var affectedSets []int
	affectedTracks := 0
	for i := first; i <= last; i++ {
		if affected(&c.sets[i]) {
			affectedSets = append(affectedSets, i)
			affectedTracks += c.liveTracksInSpan(&c.sets[i], span)
		}
	}
	if affectedTracks == 0 {
		return
	}

	// Up to limits.
	perTrack := space / float64(affectedTracks)
	for _, i := range affectedSets {
		s := &c.sets[i]
		increase := perTrack
		if field == sizeBase && s.growthLimit != growthLimitInfinite && s.baseSize+increase > s.growthLimit {
			increase = s.growthLimit - s.baseSize
			if increase < 0 {
				increase = 0
			}
		}
		n := float64(c.liveTracksInSpan(s, span))
		if field == sizeBase {
			s.baseSize += increase
		} else {
			if s.growthLimit == growthLimitInfinite {
				s.growthLimit = s.baseSize
			}
			s.growthLimit += increase
		}
		space -= increase * n
	}

	// Beyond limits: base sizes of intrinsic-min tracks may exceed their
	// growth limit when the contribution demands it.
	if field == sizeBase && space > 0 {
		perTrack = space / float64(affectedTracks)
		for _, i := range affectedSets {
			c.sets[i].baseSize += perTrack
		}
	}
}

// maximizeTracks distributes positive free space equally, up to growth
// limits.
func (c *TrackCollection) maximizeTracks(available float64) {
	free := available - c.totalBaseSize()
	if free <= 0 {
		return
	}
	// Iterate because capped sets return their share to the pool.
	for {
		var open []int
		openTracks := 0
		for i := range c.sets {
			s := &c.sets[i]
			if s.baseSize < s.growthLimit {
				open = append(open, i)
				openTracks += s.trackCount()
			}
		}
		if len(open) == 0 || free <= 1e-9 {
			return
		}
		perTrack := free / float64(openTracks)
		progressed := false
		for _, i := range open {
			s := &c.sets[i]
			increase := perTrack
			if s.baseSize+increase > s.growthLimit {
				increase = s.growthLimit - s.baseSize
			}
			if increase > 0 {
				s.baseSize += increase
				free -= increase * float64(s.trackCount())
				progressed = true
			}
		}
		if !progressed {
			return
		}
	}
}

// expandFlexTracks resolves fr tracks against the remaining free space.
func (c *TrackCollection) expandFlexTracks(available float64) {
	free := available - c.totalBaseSize()
	if free <= 0 {
		return
	}
	var factorSum float64
	for i := range c.sets {
		s := &c.sets[i]
		if s.size.Max.Kind == style.SizingFr {
			factorSum += s.size.Max.Value * float64(s.trackCount())
			free += s.baseSize * float64(s.trackCount())
		}
	}
	if factorSum <= 0 {
		return
	}
	if factorSum < 1 {
		factorSum = 1
	}
	frSize := free / factorSum
	for i := range c.sets {
		s := &c.sets[i]
		if s.size.Max.Kind == style.SizingFr {
			if size := frSize * s.size.Max.Value; size > s.baseSize {
				s.baseSize = size
			}
		}
	}
}

func (c *TrackCollection) totalBaseSize() float64 {
	total := 0.0
	live := 0
	for t := 0; t < c.TrackCount(); t++ {
		if c.collapsed[t] {
			continue
		}
		total += c.sets[c.setOfTrack[t]].baseSize
		live++
	}
	if live > 1 {
		total += c.gap * float64(live-1)
	}
	return total
}

func (c *TrackCollection) spanHasFlexTrack(span GridSpan) bool {
	first, last := c.setsForSpan(span)
	for i := first; i <= last; i++ {
		if c.sets[i].size.Max.Kind == style.SizingFr {
			return true
		}
	}
	return false
}

// liveTracksInSpan counts the set's non-collapsed tracks inside span.
func (c *TrackCollection) liveTracksInSpan(s *trackSet, span GridSpan) int {
	begin, end := s.begin, s.end
	if span.Start() > begin {
		begin = span.Start()
	}
	if span.End() < end {
		end = span.End()
	}
	n := 0
	for t := begin; t < end; t++ {
		if !c.collapsed[t] {
			n++
		}
	}
	return n
}

// EnsureCoverage splits sets at the given span boundaries so every span
// covers whole sets. Must run before ComputeUsedSizes.
func (c *TrackCollection) EnsureCoverage(spans []GridSpan) {
	boundary := make(map[int]bool)
	for _, span := range spans {
		if span.IsDefinite() {
			boundary[span.Start()] = true
			boundary[span.End()] = true
		}
	}
	var split []trackSet
	for _, s := range c.sets {
		begin := s.begin
		for t := s.begin + 1; t < s.end; t++ {
			if boundary[t] {
				part := s
				part.begin, part.end = begin, t
				split = append(split, part)
				begin = t
			}
		}
		s.begin = begin
		split = append(split, s)
	}
	c.sets = split
	for i, s := range c.sets {
		for t := s.begin; t < s.end; t++ {
			c.setOfTrack[t] = i
		}
	}
}
