package layout

import (
	"mason/pkg/style"
)

// Params configures one algorithm invocation. Margins and Engine default
// to FixedMargins and the built-in sizing engine when nil.
type Params struct {
	Style         style.Container
	Children      []Child
	AvailableSize LogicalSize

	// BorderScrollbarPadding is the container's combined edge extent; the
	// box-model layer resolves it before layout runs.
	BorderScrollbarPadding BoxStrut

	Margins MarginResolver
	Engine  TrackSizingEngine
}

// Algorithm computes masonry layout for one container: track sizes along
// the grid axis, tight packing along the stacking axis. An instance is a
// pure function of its params; Layout and ComputeMinMaxSizes may be called
// any number of times and never observe each other's work.
type Algorithm struct {
	style         style.Container
	children      []Child
	availableSize LogicalSize
	bsp           BoxStrut
	margins       MarginResolver
	engine        TrackSizingEngine
}

// New builds an algorithm instance.
func New(p Params) *Algorithm {
	a := &Algorithm{
		style:         p.Style,
		children:      p.Children,
		availableSize: p.AvailableSize,
		bsp:           p.BorderScrollbarPadding,
		margins:       p.Margins,
		engine:        p.Engine,
	}
	if a.margins == nil {
		a.margins = FixedMargins
	}
	if a.engine == nil {
		a.engine = DefaultTrackSizingEngine{}
	}
	return a
}

// sizingState is the auto-repeat resolution state machine. InitialSizing
// runs only when the template contains an auto-sized repeater: the
// repeater is sized as a single repetition, and the base size the engine
// assigns to it feeds the real repetition count for ResolvedSizing.
type sizingState int

const (
	stateInitialSizing sizingState = iota
	stateResolvedSizing
)

// buildGridAxisTracks runs line resolution, item construction, virtual
// item aggregation and track sizing, iterating once when an auto-sized
// repeater forces the two-pass resolution. gridAvailable is the content
// size along the grid axis, or Indefinite.
func (a *Algorithm) buildGridAxisTracks(constraint SizingConstraint, gridAvailable float64) (*TrackCollection, []masonryItem, []OutOfFlowCandidate) {
	template := a.style.Template
	gap := a.style.GridGap

	state := stateResolvedSizing
	if template.HasAutoSizedRepeater() {
		state = stateInitialSizing
	}

	var (
		autoRepeatSize *float64
		items          []masonryItem
		outOfFlow      []OutOfFlowCandidate
	)
	for round := 0; ; round++ {
		if round > 1 {
			panic("layout: auto-repeat resolution requested a third sizing round")
		}

		autoRepetitions := 1
		if state == stateResolvedSizing {
			autoRepetitions = CalculateAutomaticRepetitions(template, gap, gridAvailable, autoRepeatSize)
		}
		resolver := NewLineResolver(template, autoRepetitions)
		if items == nil {
			items, outOfFlow = constructItems(a.children, a.style, resolver)
		} else {
			// Second pass: re-resolve spans only, keeping the items (and any
			// child measurements they cached).
			adjustItemSpans(items, resolver)
		}

		tracks := NewTrackCollection(template, autoRepetitions, gap, gridAvailable)
		fitSpan, hasFit := AutoFitSpan(template, autoRepetitions)
		if hasFit && state == stateResolvedSizing {
			// Collapse fit repetitions no definite span covers, leaving
			// room for the items still waiting on auto-placement.
			covered := definiteSpans(items)
			budget := unplacedSpanCount(items)
			for t := fitSpan.Start(); t < fitSpan.End() && budget > 0; t++ {
				covered = append(covered, DefiniteSpan(t, t+1))
				budget--
			}
			tracks.CollapseEmptyAutoFitTracks(fitSpan, covered)
		}

		virtual := buildVirtualItems(items, tracks.TrackCount(), fitSpan, hasFit,
			state == stateInitialSizing, gap, a.measureContribution)
		spans := virtualSpans(virtual)
		tracks.EnsureCoverage(spans)
		a.engine.ComputeUsedSizes(tracks, spans, func(t ContributionType, i int) float64 {
			return contributionForVirtualItem(virtual, t, i)
		}, gridAvailable, constraint, state == stateInitialSizing)

		if state == stateInitialSizing {
			base := tracks.AutoRepeaterBaseSize()
			autoRepeatSize = &base
			state = stateResolvedSizing
			continue
		}
		return tracks, items, outOfFlow
	}
}

// Layout runs the full pipeline in real-layout mode and returns the
// container's fragment: final sizes, placed children, baselines, track
// geometry, and out-of-flow candidates for the abs-pos subsystem.
func (a *Algorithm) Layout() *Result {
	var gridAvailable, gridEdges, gridStart float64
	if a.gridAxisIsInline() {
		gridAvailable, gridEdges, gridStart = a.availableSize.Inline, a.bsp.InlineSum(), a.bsp.InlineStart
	} else {
		gridAvailable, gridEdges, gridStart = a.availableSize.Block, a.bsp.BlockSum(), a.bsp.BlockStart
	}

	tracks, items, outOfFlow := a.buildGridAxisTracks(ConstraintLayout, contentSize(gridAvailable, gridEdges))
	tracks.FinalizeGeometry(gridStart)
	placed := a.placeItems(items, tracks, ConstraintLayout)

	res := &Result{
		Children:  placed.children,
		OutOfFlow: outOfFlow,
		Tracks:    tracks.Geometry(),
	}
	for i := range res.OutOfFlow {
		res.OutOfFlow[i].StaticOffset = a.bsp.StartOffset()
	}

	gridExtent := tracks.SetSpanSize()
	if a.gridAxisIsInline() {
		res.InlineSize = resolveContainerSize(a.availableSize.Inline, a.bsp.InlineSum()+gridExtent)
		res.BlockSize = a.bsp.BlockSum() + placed.stackingExtent
	} else {
		res.BlockSize = resolveContainerSize(a.availableSize.Block, a.bsp.BlockSum()+gridExtent)
		res.InlineSize = resolveContainerSize(a.availableSize.Inline, a.bsp.InlineSum()+placed.stackingExtent)
	}

	if placed.baselines.hasFirst {
		res.FirstBaseline, res.HasFirstBaseline = placed.baselines.first, true
	}
	if placed.baselines.hasLast {
		res.LastBaseline, res.HasLastBaseline = placed.baselines.last, true
	}
	return res
}

// ComputeMinMaxSizes measures the container's intrinsic inline sizes by
// running the pipeline once per constraint in measurement mode. With an
// inline grid axis the track extent alone determines the inline size;
// with a block grid axis items must actually be packed to find how far
// the stacking axis reaches.
func (a *Algorithm) ComputeMinMaxSizes() MinMaxSizesResult {
	var sizes MinMaxSizes
	for _, constraint := range []SizingConstraint{ConstraintMinContent, ConstraintMaxContent} {
		var inline float64
		if a.gridAxisIsInline() {
			tracks, _, _ := a.buildGridAxisTracks(constraint, Indefinite)
			tracks.FinalizeGeometry(0)
			inline = tracks.SetSpanSize() + a.bsp.InlineSum()
		} else {
			gridAvailable := contentSize(a.availableSize.Block, a.bsp.BlockSum())
			tracks, items, _ := a.buildGridAxisTracks(constraint, gridAvailable)
			tracks.FinalizeGeometry(0)
			placed := a.placeItems(items, tracks, constraint)
			inline = placed.stackingExtent + a.bsp.InlineSum()
		}
		if constraint == ConstraintMinContent {
			sizes.MinSize = inline
		} else {
			sizes.MaxSize = inline
		}
	}
	if sizes.MaxSize < sizes.MinSize {
		sizes.MaxSize = sizes.MinSize
	}
	return MinMaxSizesResult{Sizes: sizes}
}

// resolveContainerSize prefers the definite available size along the grid
// axis; otherwise the container wraps its tracks.
func resolveContainerSize(available, content float64) float64 {
	if available >= 0 {
		return available
	}
	return content
}
