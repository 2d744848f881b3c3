package layout

import (
	"testing"

	"mason/pkg/style"
)

func TestTranslateSpan_ExplicitLines(t *testing.T) {
	r := NewLineResolver(style.Tracks(
		style.FixedTrack(10), style.FixedTrack(10), style.FixedTrack(10), style.FixedTrack(10)), 0)

	if got := r.TranslateSpan(style.ExplicitPlacement(2, 4)); got != DefiniteSpan(1, 3) {
		t.Errorf("Expected [1,3) from lines 2/4, got %v", got)
	}
	// Reversed endpoints normalize.
	if got := r.TranslateSpan(style.ExplicitPlacement(4, 2)); got != DefiniteSpan(1, 3) {
		t.Errorf("Expected [1,3) from lines 4/2, got %v", got)
	}
	// Out-of-range lines clamp into the implicit grid.
	if got := r.TranslateSpan(style.ExplicitPlacement(1, 9)); got != DefiniteSpan(0, 4) {
		t.Errorf("Expected clamp to [0,4), got %v", got)
	}
}

func TestTranslateSpan_LineAndSpan(t *testing.T) {
	r := NewLineResolver(style.Tracks(
		style.FixedTrack(10), style.FixedTrack(10), style.FixedTrack(10), style.FixedTrack(10)), 0)

	p := style.Placement{Start: style.LineAt(2), End: style.SpanOf(2)}
	if got := r.TranslateSpan(p); got != DefiniteSpan(1, 3) {
		t.Errorf("Expected [1,3) from line 2 span 2, got %v", got)
	}
	p = style.Placement{Start: style.SpanOf(2), End: style.LineAt(4)}
	if got := r.TranslateSpan(p); got != DefiniteSpan(1, 3) {
		t.Errorf("Expected [1,3) from span 2 / line 4, got %v", got)
	}
}

func TestTranslateSpan_AutoStaysIndefinite(t *testing.T) {
	r := NewLineResolver(style.Tracks(style.FixedTrack(10), style.FixedTrack(10)), 0)

	got := r.TranslateSpan(style.AutoPlacement())
	if !got.IsIndefinite() || got.IndefiniteSpanSize() != 1 {
		t.Errorf("Expected indefinite span of 1, got %v", got)
	}

	// A span request wider than the grid clamps so a start line exists.
	got = r.TranslateSpan(style.SpanPlacement(5))
	if !got.IsIndefinite() || got.IndefiniteSpanSize() != 2 {
		t.Errorf("Expected indefinite span clamped to 2, got %v", got)
	}
}

func TestCalculateAutomaticRepetitions(t *testing.T) {
	template := style.Tracks(style.FixedTrack(100)).Repeat(style.RepeatAutoFill, style.FixedTrack(50))

	// 100 fixed + n*50 + gutters within 400: n=5 fits exactly at
	// 100 + 250 + 5*10.
	if got := CalculateAutomaticRepetitions(template, 10, 400, nil); got != 5 {
		t.Errorf("Expected 5 repetitions, got %d", got)
	}
	// Indefinite available size yields a single repetition.
	if got := CalculateAutomaticRepetitions(template, 10, Indefinite, nil); got != 1 {
		t.Errorf("Expected 1 repetition for indefinite size, got %d", got)
	}
	// Too little room still yields one repetition.
	if got := CalculateAutomaticRepetitions(template, 10, 120, nil); got != 1 {
		t.Errorf("Expected the 1-repetition floor, got %d", got)
	}
	// No auto repeater: nothing to compute.
	if got := CalculateAutomaticRepetitions(style.Tracks(style.FixedTrack(100)), 10, 400, nil); got != 0 {
		t.Errorf("Expected 0 without a repeater, got %d", got)
	}
}

func TestCalculateAutomaticRepetitions_AutoSizedUsesInjectedSize(t *testing.T) {
	template := style.TrackList{}.Repeat(style.RepeatAutoFill, style.AutoTrack())

	// Without a substitute the auto track counts as zero-sized; the floor
	// of one repetition applies.
	if got := CalculateAutomaticRepetitions(template, 0, 300, nil); got != 1 {
		t.Errorf("Expected 1 repetition for zero-sized tracks, got %d", got)
	}
	size := 60.0
	if got := CalculateAutomaticRepetitions(template, 0, 300, &size); got != 5 {
		t.Errorf("Expected 5 repetitions at 60px, got %d", got)
	}
}
