package scene

import (
	"mason/pkg/layout"
)

// BoxNode is a concrete layout.Node: a rectangular child with a natural
// size. Stretch constraints override the natural size on the fixed axis.
//
// Results are memoized per cache slot, mirroring how a real engine keeps
// measurement passes from clobbering state a later layout depends on: a
// measure-slot call never touches the layout-slot entry.
type BoxNode struct {
	NaturalInline float64
	NaturalBlock  float64
	Baseline      float64
	HasBaseline   bool

	// Color is carried through for rendering; layout ignores it.
	Color string

	cache [2]*cachedFragment
}

type cachedFragment struct {
	space    layout.ConstraintSpace
	fragment layout.Fragment
}

// Layout returns the node's fragment for the given constraints.
func (n *BoxNode) Layout(space layout.ConstraintSpace) layout.Fragment {
	if c := n.cache[space.CacheSlot]; c != nil && c.space == space {
		return c.fragment
	}

	inline, block := n.NaturalInline, n.NaturalBlock
	if space.FixedInline {
		inline = space.AvailableSize.Inline
	} else if space.AvailableSize.Inline >= 0 && inline > space.AvailableSize.Inline {
		inline = space.AvailableSize.Inline
	}
	if space.FixedBlock {
		block = space.AvailableSize.Block
	}

	fragment := layout.Fragment{
		Size:        layout.LogicalSize{Inline: inline, Block: block},
		Baseline:    n.Baseline,
		HasBaseline: n.HasBaseline,
	}
	n.cache[space.CacheSlot] = &cachedFragment{space: space, fragment: fragment}
	return fragment
}

// MinMaxContribution returns the node's inline-axis intrinsic sizes. A box
// has no text to wrap, so min and max coincide.
func (n *BoxNode) MinMaxContribution(layout.ConstraintSpace) layout.MinMaxSizes {
	return layout.MinMaxSizes{MinSize: n.NaturalInline, MaxSize: n.NaturalInline}
}
