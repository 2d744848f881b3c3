package style

// Style model for masonry containers and their items. This is a typed,
// already-cascaded view of the handful of properties the layout algorithm
// reads; parsing CSS text into these values is someone else's job.

// TrackDirection identifies the grid axis of a masonry container: the axis
// along which tracks are sized. Items stack along the perpendicular axis.
type TrackDirection int

const (
	ForColumns TrackDirection = iota
	ForRows
)

func (d TrackDirection) String() string {
	if d == ForColumns {
		return "columns"
	}
	return "rows"
}

// SizingKind enumerates the track sizing function forms.
type SizingKind int

const (
	SizingFixed SizingKind = iota // length in px
	SizingPercent
	SizingFr
	SizingMinContent
	SizingMaxContent
	SizingAuto
)

// Sizing is a single track sizing function: a length, percentage, flex
// factor, or one of the content-based keywords.
type Sizing struct {
	Kind  SizingKind
	Value float64 // px, percent (0-100), or flex factor depending on Kind
}

func Px(v float64) Sizing      { return Sizing{Kind: SizingFixed, Value: v} }
func Percent(v float64) Sizing { return Sizing{Kind: SizingPercent, Value: v} }
func Fr(v float64) Sizing      { return Sizing{Kind: SizingFr, Value: v} }
func MinContent() Sizing       { return Sizing{Kind: SizingMinContent} }
func MaxContent() Sizing       { return Sizing{Kind: SizingMaxContent} }
func Auto() Sizing             { return Sizing{Kind: SizingAuto} }

// IsIntrinsic reports whether the function depends on item contributions.
func (s Sizing) IsIntrinsic() bool {
	return s.Kind == SizingMinContent || s.Kind == SizingMaxContent || s.Kind == SizingAuto
}

// IsDefinite reports whether the function resolves to a length without
// looking at content (a fixed length, or a percentage of a definite size).
func (s Sizing) IsDefinite() bool {
	return s.Kind == SizingFixed || s.Kind == SizingPercent
}

// Resolve returns the used length for a definite sizing function.
// percentBase is the size percentages resolve against; an indefinite base
// resolves percentages to zero.
func (s Sizing) Resolve(percentBase float64) float64 {
	switch s.Kind {
	case SizingFixed:
		return s.Value
	case SizingPercent:
		if percentBase < 0 {
			return 0
		}
		return s.Value / 100 * percentBase
	}
	return 0
}

// TrackSize is the min/max sizing function pair for one track. A plain
// track size <s> is shorthand for minmax(<s>, <s>).
type TrackSize struct {
	Min, Max Sizing
}

func Track(s Sizing) TrackSize            { return TrackSize{Min: s, Max: s} }
func MinMax(min, max Sizing) TrackSize    { return TrackSize{Min: min, Max: max} }
func FixedTrack(px float64) TrackSize     { return Track(Px(px)) }
func AutoTrack() TrackSize                { return Track(Auto()) }
func FlexTrack(factor float64) TrackSize  { return MinMax(Auto(), Fr(factor)) }

// IsAutoSized reports whether neither sizing function resolves to a length
// without item contributions. Inside an auto repeater this is what forces
// the two-pass resolution: the repetition count depends on a track size
// that only track sizing can produce.
func (t TrackSize) IsAutoSized() bool {
	return !t.Min.IsDefinite() && !t.Max.IsDefinite()
}

// AxisEdge is an alignment position along one axis.
type AxisEdge int

const (
	AxisStart AxisEdge = iota
	AxisCenter
	AxisEnd
	AxisStretch
)

func (e AxisEdge) String() string {
	switch e {
	case AxisStart:
		return "start"
	case AxisCenter:
		return "center"
	case AxisEnd:
		return "end"
	}
	return "stretch"
}

// LineKind discriminates grid placement line values.
type LineKind int

const (
	LineAuto LineKind = iota
	LineNumber
	LineSpan
)

// Line is one endpoint of a grid placement: auto, a 1-indexed line number,
// or a span count.
type Line struct {
	Kind  LineKind
	Value int
}

func AutoLine() Line      { return Line{Kind: LineAuto} }
func LineAt(n int) Line   { return Line{Kind: LineNumber, Value: n} }
func SpanOf(n int) Line   { return Line{Kind: LineSpan, Value: n} }

// Placement is an item's requested grid-axis placement.
type Placement struct {
	Start, End Line
}

// AutoPlacement spans one track, position chosen by auto-placement.
func AutoPlacement() Placement {
	return Placement{Start: AutoLine(), End: AutoLine()}
}

// SpanPlacement spans n tracks, position chosen by auto-placement.
func SpanPlacement(n int) Placement {
	return Placement{Start: SpanOf(n), End: AutoLine()}
}

// ExplicitPlacement occupies lines [start, end), 1-indexed per CSS.
func ExplicitPlacement(start, end int) Placement {
	return Placement{Start: LineAt(start), End: LineAt(end)}
}

// IsDefinite reports whether both endpoints are known without auto-placement.
func (p Placement) IsDefinite() bool {
	return p.Start.Kind == LineNumber && p.End.Kind == LineNumber
}

// SpanSize returns the number of tracks the placement requests.
func (p Placement) SpanSize() int {
	switch {
	case p.IsDefinite():
		n := p.End.Value - p.Start.Value
		if n < 0 {
			n = -n
		}
		if n == 0 {
			n = 1
		}
		return n
	case p.Start.Kind == LineSpan:
		return max(1, p.Start.Value)
	case p.End.Kind == LineSpan:
		return max(1, p.End.Value)
	}
	return 1
}

// Position enumerates the positioning schemes the algorithm distinguishes.
// Absolutely positioned children are excluded from masonry placement.
type Position int

const (
	PositionStatic Position = iota
	PositionAbsolute
	PositionFixed
)

// Sides holds resolved margin lengths for an item, in logical order.
type Sides struct {
	InlineStart, InlineEnd, BlockStart, BlockEnd float64
}

// Container is the computed style of a masonry container.
type Container struct {
	Direction TrackDirection
	Template  TrackList

	// GridGap is the gutter between adjacent tracks along the grid axis;
	// StackingGap is the gutter between consecutive items in one track.
	GridGap     float64
	StackingGap float64

	// ItemAlignment is the default grid-axis alignment for items whose own
	// alignment is unset (justify-items / align-items).
	ItemAlignment AxisEdge

	// ItemTolerance is the slack above the minimum running position within
	// which an earlier start line still wins auto-placement. Resolved by the
	// style layer; the algorithm treats it as an opaque policy scalar.
	ItemTolerance float64
}

// DefaultContainer returns a container style with CSS initial values:
// column tracks, a single auto track, no gaps, stretch alignment.
func DefaultContainer() Container {
	return Container{
		Direction:     ForColumns,
		Template:      TrackList{Groups: []TrackGroup{{Repeat: 1, Tracks: []TrackSize{AutoTrack()}}}},
		ItemAlignment: AxisStretch,
	}
}

// Item is the computed style of one masonry child.
type Item struct {
	Placement Placement

	// Alignment is the item's grid-axis self-alignment; HasAlignment is
	// false when it should fall back to the container's ItemAlignment.
	Alignment    AxisEdge
	HasAlignment bool

	// OverflowSafe requests fallback to start alignment when the item
	// overflows its spanned extent (the "safe" keyword).
	OverflowSafe bool

	Margin   Sides
	Position Position

	// BaselineSource marks the item as contributing to the container's
	// first/last baseline.
	BaselineSource bool
}

// IsOutOfFlow reports whether the child is excluded from masonry placement.
func (it Item) IsOutOfFlow() bool {
	return it.Position == PositionAbsolute || it.Position == PositionFixed
}

// ResolvedAlignment returns the grid-axis alignment to use given the
// container default.
func (it Item) ResolvedAlignment(c Container) AxisEdge {
	if it.HasAlignment {
		return it.Alignment
	}
	return c.ItemAlignment
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
