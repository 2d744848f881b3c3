package layout

// baselineAccumulator folds placed children's baselines into the
// container's first and last baseline. First belongs to the baseline item
// at the lowest grid-axis offset, last to the highest; among items at the
// same offset the earliest placed wins first and the latest wins last.
//
// The zero value is the identity: combining with it changes nothing.
type baselineAccumulator struct {
	hasFirst, hasLast bool
	firstKey, lastKey float64
	first, last       float64
}

// accumulate records one child's baseline. key is the child's grid-axis
// offset; baseline is in the container's block axis.
func (a *baselineAccumulator) accumulate(key, baseline float64) {
	if !a.hasFirst || key < a.firstKey {
		a.hasFirst, a.firstKey, a.first = true, key, baseline
	}
	if !a.hasLast || key >= a.lastKey {
		a.hasLast, a.lastKey, a.last = true, key, baseline
	}
}

// combine merges another accumulator, preserving the ordering rules.
func (a *baselineAccumulator) combine(other baselineAccumulator) {
	if other.hasFirst && (!a.hasFirst || other.firstKey < a.firstKey) {
		a.hasFirst, a.firstKey, a.first = true, other.firstKey, other.first
	}
	if other.hasLast && (!a.hasLast || other.lastKey >= a.lastKey) {
		a.hasLast, a.lastKey, a.last = true, other.lastKey, other.last
	}
}
