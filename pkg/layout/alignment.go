package layout

import (
	"mason/pkg/style"
)

// alignmentOffset positions an item of the given outer size (margins
// included) inside the extent its span covers. overflowSafe falls back to
// start alignment when the item would overflow the extent.
func alignmentOffset(edge style.AxisEdge, overflowSafe bool, extent, itemSize float64) float64 {
	free := extent - itemSize
	if overflowSafe && free < 0 {
		return 0
	}
	switch edge {
	case style.AxisCenter:
		return free / 2
	case style.AxisEnd:
		return free
	}
	// Start, and stretch (a stretched item fills the extent, so free is
	// zero or the item refused to stretch and keeps its start position).
	return 0
}
