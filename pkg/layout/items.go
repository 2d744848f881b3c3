package layout

import (
	"mason/pkg/style"
)

// masonryItem is one in-flow child for the duration of an invocation.
// Items live in a single contiguous slice owned by the algorithm; every
// grouping refers to indices into that slice.
type masonryItem struct {
	node      Node
	style     style.Item
	alignment style.AxisEdge

	// span is the requested grid-axis span: definite for explicit
	// placements, indefinite until auto-placement resolves it.
	span GridSpan
}

// constructItems builds the item list from the container's children in
// document order, splitting off out-of-flow children as candidates for the
// absolute-positioning subsystem. Their static offsets are filled in when
// the container finalizes.
func constructItems(children []Child, container style.Container, resolver LineResolver) ([]masonryItem, []OutOfFlowCandidate) {
	items := make([]masonryItem, 0, len(children))
	var outOfFlow []OutOfFlowCandidate
	for _, child := range children {
		if child.Style.IsOutOfFlow() {
			outOfFlow = append(outOfFlow, OutOfFlowCandidate{
				Node:       child.Node,
				Style:      child.Style,
				InlineEdge: style.AxisStart,
				BlockEdge:  style.AxisStart,
			})
			continue
		}
		items = append(items, masonryItem{
			node:      child.Node,
			style:     child.Style,
			alignment: child.Style.ResolvedAlignment(container),
			span:      resolver.TranslateSpan(child.Style.Placement),
		})
	}
	return items, outOfFlow
}

// adjustItemSpans re-resolves every item's span against a corrected line
// resolver. Used by the second pass of auto-repeat resolution; the items
// themselves are kept so cacheable child measurements survive.
func adjustItemSpans(items []masonryItem, resolver LineResolver) {
	for i := range items {
		items[i].span = resolver.TranslateSpan(items[i].style.Placement)
	}
}

// definiteSpans collects the definite spans of the item list, for auto-fit
// collapse and set-coverage decisions.
func definiteSpans(items []masonryItem) []GridSpan {
	var spans []GridSpan
	for i := range items {
		if items[i].span.IsDefinite() {
			spans = append(spans, items[i].span)
		}
	}
	return spans
}

// itemSpanSize is the number of tracks an item covers regardless of
// whether its start line has been resolved yet.
func itemSpanSize(it *masonryItem) int {
	if it.span.IsDefinite() {
		return it.span.Size()
	}
	return it.span.IndefiniteSpanSize()
}

// unplacedSpanCount sums the span sizes of items still awaiting
// auto-placement. The auto-fit heuristic bounds how far into collapsed
// repetitions virtual-item copies may reach by this count.
func unplacedSpanCount(items []masonryItem) int {
	var count int
	for i := range items {
		if items[i].span.IsIndefinite() {
			count += items[i].span.IndefiniteSpanSize()
		}
	}
	return count
}
