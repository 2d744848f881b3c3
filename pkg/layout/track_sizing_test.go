package layout

import (
	"testing"

	"mason/pkg/style"
)

// fixedContribution adapts a per-item envelope table for the engine.
func fixedContribution(envelopes []MinMaxSizes) ContributionFunc {
	return func(t ContributionType, item int) float64 {
		switch t {
		case ForIntrinsicMinimums, ForContentBasedMinimums, ForIntrinsicMaximums:
			return envelopes[item].MinSize
		default:
			return envelopes[item].MaxSize
		}
	}
}

func TestTrackSizing_SingleSpanContributions(t *testing.T) {
	template := style.Tracks(style.AutoTrack(), style.AutoTrack())
	c := NewTrackCollection(template, 0, 0, Indefinite)
	spans := []GridSpan{DefiniteSpan(0, 1), DefiniteSpan(1, 2)}
	c.EnsureCoverage(spans)

	envelopes := []MinMaxSizes{{MinSize: 30, MaxSize: 70}, {MinSize: 20, MaxSize: 20}}
	DefaultTrackSizingEngine{}.ComputeUsedSizes(c, spans, fixedContribution(envelopes), Indefinite, ConstraintLayout, false)

	if c.sets[0].baseSize != 30 {
		t.Errorf("Expected base 30 from the min contribution, got %f", c.sets[0].baseSize)
	}
	if c.sets[0].growthLimit != 70 {
		t.Errorf("Expected growth limit 70 from the max contribution, got %f", c.sets[0].growthLimit)
	}
	if c.sets[1].baseSize != 20 {
		t.Errorf("Expected base 20, got %f", c.sets[1].baseSize)
	}
}

func TestTrackSizing_SpanningContributionSplitsAfterGutters(t *testing.T) {
	template := style.Tracks(style.AutoTrack(), style.AutoTrack())
	c := NewTrackCollection(template, 0, 10, Indefinite)
	spans := []GridSpan{DefiniteSpan(0, 2)}
	c.EnsureCoverage(spans)

	envelopes := []MinMaxSizes{{MinSize: 100, MaxSize: 100}}
	DefaultTrackSizingEngine{}.ComputeUsedSizes(c, spans, fixedContribution(envelopes), Indefinite, ConstraintLayout, false)

	// 100 minus the inner 10px gutter, split over two tracks.
	for i := 0; i < 2; i++ {
		if got := c.TrackSize(i); got != 45 {
			t.Errorf("Track %d: expected 45, got %f", i, got)
		}
	}
}

func TestTrackSizing_NarrowSpansSizeBeforeWideOnes(t *testing.T) {
	template := style.Tracks(style.AutoTrack(), style.AutoTrack())
	c := NewTrackCollection(template, 0, 0, Indefinite)
	// Submitted widest-first; the engine must still resolve the
	// single-track item before distributing the spanning one.
	spans := []GridSpan{DefiniteSpan(0, 2), DefiniteSpan(0, 1)}
	c.EnsureCoverage(spans)

	envelopes := []MinMaxSizes{{MinSize: 100, MaxSize: 100}, {MinSize: 80, MaxSize: 80}}
	DefaultTrackSizingEngine{}.ComputeUsedSizes(c, spans, fixedContribution(envelopes), Indefinite, ConstraintLayout, false)

	// Track 0 holds 80 from the single-span item first; the spanning
	// item's uncovered 20 then splits equally across both auto tracks.
	if got := c.TrackSize(0); got != 90 {
		t.Errorf("Expected track 0 at 90, got %f", got)
	}
	if got := c.TrackSize(1); got != 10 {
		t.Errorf("Expected track 1 at 10, got %f", got)
	}
}

func TestTrackSizing_FixedTracksIgnoreContributions(t *testing.T) {
	template := style.Tracks(style.FixedTrack(50))
	c := NewTrackCollection(template, 0, 0, Indefinite)
	spans := []GridSpan{DefiniteSpan(0, 1)}
	c.EnsureCoverage(spans)

	envelopes := []MinMaxSizes{{MinSize: 500, MaxSize: 500}}
	DefaultTrackSizingEngine{}.ComputeUsedSizes(c, spans, fixedContribution(envelopes), Indefinite, ConstraintLayout, false)

	if got := c.TrackSize(0); got != 50 {
		t.Errorf("Expected the fixed track to stay at 50, got %f", got)
	}
}

func TestTrackSizing_MinMaxTrackClampsContribution(t *testing.T) {
	template := style.Tracks(style.MinMax(style.Px(20), style.Px(60)))
	c := NewTrackCollection(template, 0, 0, Indefinite)
	spans := []GridSpan{DefiniteSpan(0, 1)}
	c.EnsureCoverage(spans)

	// Free space grows the track from its 20px base to the 60px limit.
	DefaultTrackSizingEngine{}.ComputeUsedSizes(c, spans,
		fixedContribution([]MinMaxSizes{{MinSize: 10, MaxSize: 10}}), 200, ConstraintLayout, false)
	if got := c.TrackSize(0); got != 60 {
		t.Errorf("Expected maximize to reach the 60px limit, got %f", got)
	}
}

func TestTrackSizing_MinContentLimitGrowsFromMinContribution(t *testing.T) {
	template := style.Tracks(style.MinMax(style.Px(10), style.MinContent()))
	c := NewTrackCollection(template, 0, 0, Indefinite)
	spans := []GridSpan{DefiniteSpan(0, 1)}
	c.EnsureCoverage(spans)

	// The intrinsic growth limit comes from the minimum contribution, so
	// maximize stops at 40 even with 200px available and an 80px
	// max-content contribution.
	envelopes := []MinMaxSizes{{MinSize: 40, MaxSize: 80}}
	DefaultTrackSizingEngine{}.ComputeUsedSizes(c, spans, fixedContribution(envelopes), 200, ConstraintLayout, false)

	if got := c.TrackSize(0); got != 40 {
		t.Errorf("Expected the min-content limit to cap the track at 40, got %f", got)
	}
}

func TestTrackSizing_FlexTracksShareFreeSpace(t *testing.T) {
	template := style.Tracks(style.FixedTrack(100), style.FlexTrack(1), style.FlexTrack(2))
	c := NewTrackCollection(template, 0, 0, Indefinite)

	DefaultTrackSizingEngine{}.ComputeUsedSizes(c, nil, nil, 400, ConstraintLayout, false)

	if got := c.TrackSize(1); got != 100 {
		t.Errorf("Expected 1fr = 100, got %f", got)
	}
	if got := c.TrackSize(2); got != 200 {
		t.Errorf("Expected 2fr = 200, got %f", got)
	}
}

func TestTrackSizing_MaxContentConstraintGrowsToLimits(t *testing.T) {
	template := style.Tracks(style.AutoTrack())
	c := NewTrackCollection(template, 0, 0, Indefinite)
	spans := []GridSpan{DefiniteSpan(0, 1)}
	c.EnsureCoverage(spans)

	envelopes := []MinMaxSizes{{MinSize: 30, MaxSize: 90}}
	DefaultTrackSizingEngine{}.ComputeUsedSizes(c, spans, fixedContribution(envelopes), Indefinite, ConstraintMaxContent, false)

	if got := c.TrackSize(0); got != 90 {
		t.Errorf("Expected max-content sizing to reach 90, got %f", got)
	}
}

func TestTrackSizing_SkipFreeSpaceFreezesIntrinsicBases(t *testing.T) {
	template := style.Tracks(style.AutoTrack())
	c := NewTrackCollection(template, 0, 0, Indefinite)
	spans := []GridSpan{DefiniteSpan(0, 1)}
	c.EnsureCoverage(spans)

	envelopes := []MinMaxSizes{{MinSize: 40, MaxSize: 90}}
	DefaultTrackSizingEngine{}.ComputeUsedSizes(c, spans, fixedContribution(envelopes), 500, ConstraintLayout, true)

	// With free-space distribution suppressed the base stays at the pure
	// intrinsic minimum despite 500px being available.
	if got := c.TrackSize(0); got != 40 {
		t.Errorf("Expected base frozen at 40, got %f", got)
	}
}
