package layout

import (
	"mason/pkg/style"
)

// placementResult is the Item Placer's output for one pass: placed
// children (layout mode only), the final running positions, the baseline
// fold, and the packed stacking-axis extent with its trailing gutter
// removed.
type placementResult struct {
	children       []PlacedChild
	positions      *RunningPositions
	baselines      baselineAccumulator
	stackingExtent float64
}

// placeItems resolves every item's span, lays the child out (or measures
// it under a min/max constraint), applies alignment, and advances the
// running positions. Items are processed in document order; indefinite
// spans resolve against the auto-placement cursor as encountered.
func (a *Algorithm) placeItems(items []masonryItem, tracks *TrackCollection, constraint SizingConstraint) placementResult {
	positions := NewRunningPositions(tracks.TrackCount(), a.style.ItemTolerance, tracks.collapsed)
	res := placementResult{positions: positions}
	slot := CacheSlotLayout
	if constraint != ConstraintLayout {
		slot = CacheSlotMeasure
	}

	placedAny := false
	for i := range items {
		it := &items[i]

		var pos float64
		if it.span.IsIndefinite() {
			span, eligible := positions.GetFirstEligibleLine(it.span.IndefiniteSpanSize())
			it.span = span
			pos = eligible
		} else {
			pos = positions.GetMaxPositionForSpan(it.span)
		}
		if it.span.IsIndefinite() {
			panic("layout: item span still indefinite at placement")
		}
		// Every item advances the cursor, explicitly placed ones included.
		positions.UpdateAutoPlacementCursor(it.span.End())

		gridOffset, gridExtent := tracks.SpanExtent(it.span)
		margins := a.margins(a.marginSpace(gridExtent, slot), it.style)
		space := a.childSpace(gridExtent, it, margins, slot)

		var fragment Fragment
		var stackingExtent, gridSize float64
		if a.gridAxisIsInline() {
			// Stacking along the block axis always requires layout, even
			// under a measurement constraint; the measure cache slot keeps
			// the child's persisted layout state untouched.
			fragment = it.node.Layout(space)
			stackingExtent = fragment.Size.Block + margins.BlockSum()
			gridSize = fragment.Size.Inline + margins.InlineSum()
		} else if constraint == ConstraintLayout {
			fragment = it.node.Layout(space)
			stackingExtent = fragment.Size.Inline + margins.InlineSum()
			gridSize = fragment.Size.Block + margins.BlockSum()
		} else {
			mm := it.node.MinMaxContribution(space)
			extent := mm.MinSize
			if constraint == ConstraintMaxContent {
				extent = mm.MaxSize
			}
			stackingExtent = extent + margins.InlineSum()
		}

		if constraint == ConstraintLayout {
			align := alignmentOffset(it.alignment, it.style.OverflowSafe, gridExtent, gridSize)
			var offset LogicalOffset
			if a.gridAxisIsInline() {
				offset = LogicalOffset{
					Inline: gridOffset + align + margins.InlineStart,
					Block:  a.bsp.BlockStart + pos + margins.BlockStart,
				}
			} else {
				offset = LogicalOffset{
					Inline: a.bsp.InlineStart + pos + margins.InlineStart,
					Block:  gridOffset + align + margins.BlockStart,
				}
			}
			if fragment.HasBaseline && it.style.BaselineSource {
				res.baselines.accumulate(gridOffset, offset.Block+fragment.Baseline)
			}
			res.children = append(res.children, PlacedChild{
				Node:     it.node,
				Offset:   offset,
				Fragment: fragment,
				Margins:  margins,
				Span:     it.span,
			})
		}

		positions.UpdateRunningPositionsForSpan(it.span, pos+stackingExtent+a.style.StackingGap)
		placedAny = true
	}

	if placedAny {
		res.stackingExtent = positions.MaxPosition() - a.style.StackingGap
		if res.stackingExtent < 0 {
			res.stackingExtent = 0
		}
	}
	return res
}

func (a *Algorithm) gridAxisIsInline() bool {
	return a.style.Direction == style.ForColumns
}

// marginSpace is the preliminary space margins resolve against: the
// spanned grid-axis extent as percentage base, nothing else known yet.
func (a *Algorithm) marginSpace(gridExtent float64, slot CacheSlot) ConstraintSpace {
	space := ConstraintSpace{
		AvailableSize:  IndefiniteSize(),
		PercentageSize: IndefiniteSize(),
		CacheSlot:      slot,
	}
	if a.gridAxisIsInline() {
		space.AvailableSize.Inline = gridExtent
		space.PercentageSize.Inline = gridExtent
	} else {
		space.AvailableSize.Block = gridExtent
		space.PercentageSize.Block = gridExtent
	}
	return space
}

// childSpace builds the constraint space a child is laid out in: the
// spanned grid-axis extent minus margins, the stacking axis indefinite so
// content determines it. Stretch alignment turns the grid-axis offer into
// a requirement.
func (a *Algorithm) childSpace(gridExtent float64, it *masonryItem, margins BoxStrut, slot CacheSlot) ConstraintSpace {
	space := ConstraintSpace{
		AvailableSize:  IndefiniteSize(),
		PercentageSize: IndefiniteSize(),
		CacheSlot:      slot,
	}
	if a.gridAxisIsInline() {
		inner := gridExtent - margins.InlineSum()
		if inner < 0 {
			inner = 0
		}
		space.AvailableSize.Inline = inner
		space.FixedInline = it.alignment == style.AxisStretch
		space.PercentageSize.Inline = gridExtent
	} else {
		inner := gridExtent - margins.BlockSum()
		if inner < 0 {
			inner = 0
		}
		space.AvailableSize.Block = inner
		space.FixedBlock = it.alignment == style.AxisStretch
		space.PercentageSize.Block = gridExtent
	}
	return space
}

// measureContribution returns one item's grid-axis contribution envelope
// for virtual-item aggregation. Along an inline grid axis that is the
// child's inline min/max contribution; along a block grid axis the child
// is laid out once (measure slot) and its block size is both bounds.
func (a *Algorithm) measureContribution(it *masonryItem) MinMaxSizes {
	if a.gridAxisIsInline() {
		space := ConstraintSpace{
			AvailableSize:  IndefiniteSize(),
			PercentageSize: IndefiniteSize(),
			CacheSlot:      CacheSlotMeasure,
		}
		mm := it.node.MinMaxContribution(space)
		m := a.margins(space, it.style)
		mm.MinSize += m.InlineSum()
		mm.MaxSize += m.InlineSum()
		return mm
	}

	inline := contentSize(a.availableSize.Inline, a.bsp.InlineSum())
	space := ConstraintSpace{
		AvailableSize:  LogicalSize{Inline: inline, Block: Indefinite},
		PercentageSize: LogicalSize{Inline: inline, Block: Indefinite},
		CacheSlot:      CacheSlotMeasure,
	}
	fragment := it.node.Layout(space)
	m := a.margins(space, it.style)
	extent := fragment.Size.Block + m.BlockSum()
	return MinMaxSizes{MinSize: extent, MaxSize: extent}
}

// contentSize shrinks an available size by the container's own edges,
// preserving indefiniteness.
func contentSize(available, edges float64) float64 {
	if available < 0 {
		return Indefinite
	}
	size := available - edges
	if size < 0 {
		size = 0
	}
	return size
}
