package layout

import (
	"fmt"

	"mason/pkg/style"
)

// virtualItem is an ephemeral aggregate over real items sharing a span and
// grid-axis alignment. It carries only the componentwise maximum of its
// members' contribution envelopes and exists for one track-sizing pass.
type virtualItem struct {
	span         GridSpan // always definite
	alignment    style.AxisEdge
	contribution MinMaxSizes
}

// virtualGroupKey partitions items for aggregation. Indefinite spans key on
// their size; definite spans on their exact interval.
type virtualGroupKey struct {
	definite   bool
	start, end int
	spanSize   int
	alignment  style.AxisEdge
}

func groupKey(it *masonryItem) virtualGroupKey {
	if it.span.IsDefinite() {
		return virtualGroupKey{definite: true, start: it.span.Start(), end: it.span.End(), alignment: it.alignment}
	}
	return virtualGroupKey{spanSize: it.span.IndefiniteSpanSize(), alignment: it.alignment}
}

// buildVirtualItems aggregates the item list for track sizing. measure
// returns one item's grid-axis contribution envelope; the caller decides
// whether that means an inline min/max measurement or a block-axis layout.
//
// Items with an indefinite span could land at any legal start line, so one
// copy of their group's envelope is emitted at every candidate line
// (sliding window). Copies reaching into auto-fit repetitions are capped
// by the number of unplaced auto-placed tracks, so sizing alone never
// keeps an otherwise-empty fit repetition alive.
//
// When sizingAutoRepeater is set, the pass exists only to find the size of
// an auto-sized repeat() track (css-grid-3 masonry-intrinsic-repeat):
// every group contributes as if it spanned one track, with spanned gaps
// deducted and the remainder split evenly, and placement is ignored — one
// single-track copy of each group lands on every line.
func buildVirtualItems(items []masonryItem, trackCount int, autoFitSpan GridSpan, hasAutoFit bool,
	sizingAutoRepeater bool, gridGap float64, measure func(*masonryItem) MinMaxSizes) []virtualItem {

	type group struct {
		key      virtualGroupKey
		envelope MinMaxSizes
	}
	var groups []group
	index := make(map[virtualGroupKey]int)
	for i := range items {
		key := groupKey(&items[i])
		g, ok := index[key]
		if !ok {
			g = len(groups)
			index[key] = g
			groups = append(groups, group{key: key})
		}
		env := measure(&items[i])
		if sizingAutoRepeater {
			if size := itemSpanSize(&items[i]); size > 1 {
				gaps := gridGap * float64(size-1)
				env.MinSize = (env.MinSize - gaps) / float64(size)
				env.MaxSize = (env.MaxSize - gaps) / float64(size)
			}
		}
		groups[g].envelope.Encompass(env)
	}

	if sizingAutoRepeater {
		var out []virtualItem
		for _, g := range groups {
			for line := 0; line < trackCount; line++ {
				out = append(out, virtualItem{
					span:         DefiniteSpan(line, line+1),
					alignment:    g.key.alignment,
					contribution: g.envelope,
				})
			}
		}
		return out
	}

	fitBudget := 0
	if hasAutoFit {
		fitBudget = unplacedSpanCount(items)
	}

	var out []virtualItem
	for _, g := range groups {
		if g.key.definite {
			out = append(out, virtualItem{
				span:         DefiniteSpan(g.key.start, g.key.end),
				alignment:    g.key.alignment,
				contribution: g.envelope,
			})
			continue
		}
		size := g.key.spanSize
		for line := 0; line+size <= trackCount; line++ {
			span := DefiniteSpan(line, line+size)
			if hasAutoFit && span.Intersects(autoFitSpan) {
				if fitBudget < size {
					continue
				}
				fitBudget -= size
			}
			out = append(out, virtualItem{span: span, alignment: g.key.alignment, contribution: g.envelope})
		}
	}
	return out
}

// virtualSpans extracts the span slice the sizing engine consumes.
func virtualSpans(virtual []virtualItem) []GridSpan {
	spans := make([]GridSpan, len(virtual))
	for i := range virtual {
		spans[i] = virtual[i].span
	}
	return spans
}

// contributionForVirtualItem maps the sizing engine's contribution request
// onto a virtual item's envelope. Intrinsic growth limits grow from the
// minimum contribution; only the max-content rounds read the maximum.
// Free-space distribution never asks for an item contribution; receiving
// that request is an engine defect.
func contributionForVirtualItem(virtual []virtualItem, t ContributionType, item int) float64 {
	v := &virtual[item]
	switch t {
	case ForIntrinsicMinimums, ForContentBasedMinimums, ForIntrinsicMaximums:
		return v.contribution.MinSize
	case ForMaxContentMinimums, ForMaxContentMaximums:
		return v.contribution.MaxSize
	}
	panic(fmt.Sprintf("layout: contribution type %d has no virtual-item size", t))
}
