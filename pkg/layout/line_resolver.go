package layout

import (
	"mason/pkg/style"
)

// LineResolver turns style placements into concrete grid-axis spans. The
// masonry algorithm constructs one per track-sizing pass; the resolver for
// the second pass of an auto-sized repeater carries the corrected
// repetition count.
type LineResolver interface {
	// AutoRepetitions returns the repetition count used for the template's
	// auto repeater (0 when there is none).
	AutoRepetitions() int
	// TranslateSpan resolves a raw placement to a span. Explicit
	// placements become definite spans clamped to the implicit grid;
	// auto placements stay indefinite, carrying only their span size.
	TranslateSpan(p style.Placement) GridSpan
	// EndLine returns the end line of the implicit grid, i.e. the track
	// count.
	EndLine() int
}

type templateLineResolver struct {
	autoRepetitions int
	trackCount      int
}

// NewLineResolver builds the default resolver for a template and a
// resolved auto-repetition count.
func NewLineResolver(template style.TrackList, autoRepetitions int) LineResolver {
	count := template.TrackCount(autoRepetitions)
	if count < 1 {
		count = 1
	}
	return &templateLineResolver{autoRepetitions: autoRepetitions, trackCount: count}
}

func (r *templateLineResolver) AutoRepetitions() int { return r.autoRepetitions }
func (r *templateLineResolver) EndLine() int         { return r.trackCount }

func (r *templateLineResolver) TranslateSpan(p style.Placement) GridSpan {
	start, end := p.Start, p.End

	// line / line
	if start.Kind == style.LineNumber && end.Kind == style.LineNumber {
		return r.clamp(start.Value-1, end.Value-1)
	}
	// line / span and span / line
	if start.Kind == style.LineNumber && end.Kind == style.LineSpan {
		s := start.Value - 1
		return r.clamp(s, s+max(1, end.Value))
	}
	if start.Kind == style.LineSpan && end.Kind == style.LineNumber {
		e := end.Value - 1
		return r.clamp(e-max(1, start.Value), e)
	}

	// Anything involving auto is resolved by auto-placement; only the span
	// size survives translation. Sizes larger than the implicit grid are
	// clamped so a candidate start line always exists.
	size := p.SpanSize()
	if size > r.trackCount {
		size = r.trackCount
	}
	return IndefiniteSpan(size)
}

// clamp normalizes a raw 0-indexed [start, end) interval into the implicit
// grid, keeping at least one track.
func (r *templateLineResolver) clamp(start, end int) GridSpan {
	if end < start {
		start, end = end, start
	}
	if end == start {
		end++
	}
	if start < 0 {
		end -= start
		start = 0
	}
	if end > r.trackCount {
		end = r.trackCount
		if start >= end {
			start = end - 1
		}
	}
	return DefiniteSpan(start, end)
}

// CalculateAutomaticRepetitions computes the repetition count for an
// auto-fill/auto-fit repeater against the available grid-axis size, per
// css-grid-2 "auto-repeat". autoRepeatSize, when non-nil, substitutes for
// auto-sized tracks inside the repeater (the ResolvedSizing pass of the
// masonry intrinsic-repeat resolution).
func CalculateAutomaticRepetitions(template style.TrackList, gap, available float64, autoRepeatSize *float64) int {
	if !template.HasAutoRepeater() {
		return 0
	}
	if available < 0 {
		// Indefinite available size: a single repetition.
		return 1
	}

	trackSize := func(t style.TrackSize) float64 {
		if t.IsAutoSized() {
			if autoRepeatSize != nil {
				return *autoRepeatSize
			}
			return 0
		}
		// Prefer the max sizing function when definite, else the min.
		if t.Max.IsDefinite() {
			return t.Max.Resolve(available)
		}
		return t.Min.Resolve(available)
	}

	var fixedSum, repeatSum float64
	var fixedCount, repeatCount int
	for _, g := range template.Groups {
		if g.Repeat.IsAuto() {
			for _, t := range g.Tracks {
				repeatSum += trackSize(t)
				repeatCount++
			}
			continue
		}
		for rep := 0; rep < int(g.Repeat); rep++ {
			for _, t := range g.Tracks {
				fixedSum += trackSize(t)
				fixedCount++
			}
		}
	}
	if repeatSum <= 0 {
		return 1
	}

	// Largest n such that the expanded template, gutters included, still
	// fits. Always at least one repetition.
	repetitions := 1
	for n := 2; ; n++ {
		tracks := fixedCount + n*repeatCount
		total := fixedSum + float64(n)*repeatSum + gap*float64(tracks-1)
		if total > available {
			break
		}
		repetitions = n
	}
	return repetitions
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
