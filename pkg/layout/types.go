package layout

import (
	"mason/pkg/style"
)

// Indefinite marks an unknown extent in a logical size. Sizes are logical
// (inline/block) rather than physical; this module only supports
// horizontal-tb, so inline maps to x and block to y.
const Indefinite = -1.0

// LogicalSize is an inline/block extent pair. Either component may be
// Indefinite.
type LogicalSize struct {
	Inline float64
	Block  float64
}

// IndefiniteSize returns a size with both components unknown.
func IndefiniteSize() LogicalSize {
	return LogicalSize{Inline: Indefinite, Block: Indefinite}
}

// LogicalOffset is an inline/block coordinate pair.
type LogicalOffset struct {
	Inline float64
	Block  float64
}

// LogicalRect combines an offset and a size.
type LogicalRect struct {
	Offset LogicalOffset
	Size   LogicalSize
}

// BoxStrut holds per-edge lengths in logical order (margins, or the
// container's combined border+scrollbar+padding).
type BoxStrut struct {
	InlineStart, InlineEnd float64
	BlockStart, BlockEnd   float64
}

func (s BoxStrut) InlineSum() float64 { return s.InlineStart + s.InlineEnd }
func (s BoxStrut) BlockSum() float64  { return s.BlockStart + s.BlockEnd }

// StartOffset returns the offset of the content corner.
func (s BoxStrut) StartOffset() LogicalOffset {
	return LogicalOffset{Inline: s.InlineStart, Block: s.BlockStart}
}

// MinMaxSizes is a min-content/max-content contribution pair.
type MinMaxSizes struct {
	MinSize float64
	MaxSize float64
}

// Encompass grows both components to cover other.
func (m *MinMaxSizes) Encompass(other MinMaxSizes) {
	if other.MinSize > m.MinSize {
		m.MinSize = other.MinSize
	}
	if other.MaxSize > m.MaxSize {
		m.MaxSize = other.MaxSize
	}
}

// EncompassScalar grows both components to cover a single contribution.
func (m *MinMaxSizes) EncompassScalar(v float64) {
	m.Encompass(MinMaxSizes{MinSize: v, MaxSize: v})
}

// SizingConstraint selects between real layout and the two intrinsic
// measurement modes.
type SizingConstraint int

const (
	ConstraintLayout SizingConstraint = iota
	ConstraintMinContent
	ConstraintMaxContent
)

// CacheSlot tells a caching Node implementation which result slot a layout
// call may populate. Measurement passes use a separate slot so they can
// never clobber state a later real layout depends on.
type CacheSlot int

const (
	CacheSlotLayout CacheSlot = iota
	CacheSlotMeasure
)

// ConstraintSpace packages the inputs for laying out one child. Immutable
// once built; the algorithm constructs a fresh space per child per pass.
type ConstraintSpace struct {
	// AvailableSize is the space offered to the child. A Fixed* flag turns
	// the corresponding component from an offer into a requirement.
	AvailableSize LogicalSize
	FixedInline   bool
	FixedBlock    bool

	// PercentageSize is the size child percentages resolve against.
	PercentageSize LogicalSize

	CacheSlot CacheSlot
}

// Fragment is the immutable output of laying out one child: its border-box
// size and, when the child has one, its first baseline (distance from the
// block start edge).
type Fragment struct {
	Size        LogicalSize
	Baseline    float64
	HasBaseline bool
}

// Node is the capability a masonry child exposes to the algorithm. The
// algorithm depends only on this interface, never on concrete child types.
type Node interface {
	// Layout produces a fragment for the given constraints.
	Layout(space ConstraintSpace) Fragment
	// MinMaxContribution returns the child's inline-axis intrinsic
	// contribution under the given constraints.
	MinMaxContribution(space ConstraintSpace) MinMaxSizes
}

// MarginResolver computes a child's resolved margins for a constraint
// space. The default resolver reads the fixed lengths off the item style;
// callers with percentage margins can inject their own.
type MarginResolver func(space ConstraintSpace, item style.Item) BoxStrut

// FixedMargins is the default MarginResolver.
func FixedMargins(_ ConstraintSpace, item style.Item) BoxStrut {
	return BoxStrut{
		InlineStart: item.Margin.InlineStart,
		InlineEnd:   item.Margin.InlineEnd,
		BlockStart:  item.Margin.BlockStart,
		BlockEnd:    item.Margin.BlockEnd,
	}
}

// Child pairs a node with its computed style, in document order.
type Child struct {
	Node  Node
	Style style.Item
}

// PlacedChild is one in-flow child's final placement in the container's
// coordinate space.
type PlacedChild struct {
	Node     Node
	Offset   LogicalOffset
	Fragment Fragment
	Margins  BoxStrut
	Span     GridSpan
}

// OutOfFlowCandidate is a child excluded from masonry placement, recorded
// for the absolute-positioning subsystem with its static position.
type OutOfFlowCandidate struct {
	Node         Node
	Style        style.Item
	StaticOffset LogicalOffset
	InlineEdge   style.AxisEdge
	BlockEdge    style.AxisEdge
}

// TrackGeometry is the final size and offset of one grid-axis track,
// exposed for introspection tooling.
type TrackGeometry struct {
	Offset    float64
	Size      float64
	Collapsed bool
}

// Result is the outcome of a full layout pass.
type Result struct {
	InlineSize float64
	BlockSize  float64

	Children  []PlacedChild
	OutOfFlow []OutOfFlowCandidate

	FirstBaseline    float64
	LastBaseline     float64
	HasFirstBaseline bool
	HasLastBaseline  bool

	Tracks []TrackGeometry
}

// MinMaxSizesResult is the outcome of intrinsic size measurement.
type MinMaxSizesResult struct {
	Sizes MinMaxSizes
	// DependsOnBlockConstraints is reserved; masonry intrinsic inline sizes
	// currently never vary with the block constraint.
	DependsOnBlockConstraints bool
}
