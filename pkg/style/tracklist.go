package style

// RepeatCount is the repetition count of a track group. Positive values are
// literal counts; the two negative sentinels are the automatic keywords.
type RepeatCount int

const (
	RepeatAutoFill RepeatCount = -1
	RepeatAutoFit  RepeatCount = -2
)

// IsAuto reports whether the count must be computed from the available size.
func (r RepeatCount) IsAuto() bool { return r == RepeatAutoFill || r == RepeatAutoFit }

// TrackGroup is one entry of a track template: either a single track
// (Repeat == 1, one element in Tracks) or a repeat() of a track pattern.
type TrackGroup struct {
	Repeat RepeatCount
	Tracks []TrackSize
}

// TrackList is a grid-axis track template.
type TrackList struct {
	Groups []TrackGroup
}

// Tracks builds a template of single fixed groups, one per size.
func Tracks(sizes ...TrackSize) TrackList {
	groups := make([]TrackGroup, len(sizes))
	for i, s := range sizes {
		groups[i] = TrackGroup{Repeat: 1, Tracks: []TrackSize{s}}
	}
	return TrackList{Groups: groups}
}

// Repeat appends a repeat() group to the template.
func (l TrackList) Repeat(count RepeatCount, sizes ...TrackSize) TrackList {
	groups := make([]TrackGroup, len(l.Groups), len(l.Groups)+1)
	copy(groups, l.Groups)
	return TrackList{Groups: append(groups, TrackGroup{Repeat: count, Tracks: sizes})}
}

// HasAutoRepeater reports whether the template contains an auto-fill or
// auto-fit group. At most one is allowed; the style layer enforces that.
func (l TrackList) HasAutoRepeater() bool { return l.AutoRepeatIndex() >= 0 }

// AutoRepeatIndex returns the group index of the auto repeater, or -1.
func (l TrackList) AutoRepeatIndex() int {
	for i, g := range l.Groups {
		if g.Repeat.IsAuto() {
			return i
		}
	}
	return -1
}

// IsAutoFit reports whether the auto repeater, if any, is auto-fit.
func (l TrackList) IsAutoFit() bool {
	i := l.AutoRepeatIndex()
	return i >= 0 && l.Groups[i].Repeat == RepeatAutoFit
}

// HasAutoSizedRepeater reports whether the auto repeater contains a track
// whose size cannot be resolved without running track sizing, which
// triggers the InitialSizing pass.
func (l TrackList) HasAutoSizedRepeater() bool {
	i := l.AutoRepeatIndex()
	if i < 0 {
		return false
	}
	for _, t := range l.Groups[i].Tracks {
		if t.IsAutoSized() {
			return true
		}
	}
	return false
}

// TrackCountBeforeAutoRepeat returns how many tracks precede the auto
// repeater in the expanded template.
func (l TrackList) TrackCountBeforeAutoRepeat() int {
	count := 0
	for _, g := range l.Groups {
		if g.Repeat.IsAuto() {
			break
		}
		count += int(g.Repeat) * len(g.Tracks)
	}
	return count
}

// AutoRepeatTrackCount returns the number of tracks in one repetition of
// the auto repeater, or 0 when there is none.
func (l TrackList) AutoRepeatTrackCount() int {
	i := l.AutoRepeatIndex()
	if i < 0 {
		return 0
	}
	return len(l.Groups[i].Tracks)
}

// Expand flattens the template into per-track sizes, repeating the auto
// group autoRepetitions times. The second return value marks, per track,
// whether it came from the auto repeater.
func (l TrackList) Expand(autoRepetitions int) ([]TrackSize, []bool) {
	var sizes []TrackSize
	var fromAuto []bool
	for _, g := range l.Groups {
		reps := int(g.Repeat)
		auto := g.Repeat.IsAuto()
		if auto {
			reps = autoRepetitions
		}
		for r := 0; r < reps; r++ {
			for _, t := range g.Tracks {
				sizes = append(sizes, t)
				fromAuto = append(fromAuto, auto)
			}
		}
	}
	return sizes, fromAuto
}

// TrackCount returns the expanded track count for the given repetitions.
func (l TrackList) TrackCount(autoRepetitions int) int {
	count := 0
	for _, g := range l.Groups {
		reps := int(g.Repeat)
		if g.Repeat.IsAuto() {
			reps = autoRepetitions
		}
		count += reps * len(g.Tracks)
	}
	return count
}
