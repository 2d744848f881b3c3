package scene

import (
	"testing"

	"mason/pkg/layout"
	"mason/pkg/style"
)

const sampleScene = `
[container]
direction = "columns"
tracks = ["100px", "150px"]
stacking_gap = 10
width = 250.0

[[item]]
width = 100
height = 50

[[item]]
width = 150
height = 80

[[item]]
width = 100
height = 30
`

func TestParseAndBuild(t *testing.T) {
	s, err := Parse([]byte(sampleScene))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	params, err := s.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(params.Children) != 3 {
		t.Fatalf("Expected 3 children, got %d", len(params.Children))
	}
	if params.Style.Direction != style.ForColumns {
		t.Errorf("Expected columns, got %v", params.Style.Direction)
	}
	if params.AvailableSize.Inline != 250 || params.AvailableSize.Block != layout.Indefinite {
		t.Errorf("Unexpected available size %+v", params.AvailableSize)
	}

	res := layout.New(params).Layout()
	if res.BlockSize != 90 {
		t.Errorf("Expected block size 90, got %f", res.BlockSize)
	}
	if res.Children[2].Offset != (layout.LogicalOffset{Inline: 0, Block: 60}) {
		t.Errorf("Unexpected third item offset %+v", res.Children[2].Offset)
	}
}

func TestParseTrackList(t *testing.T) {
	list, err := parseTrackList([]string{
		"100px", "25%", "1.5fr", "auto", "min-content",
		"minmax(50px, 1fr)", "repeat(3, 40px)", "repeat(auto-fill, 50px auto)",
	})
	if err != nil {
		t.Fatalf("parseTrackList failed: %v", err)
	}
	if len(list.Groups) != 8 {
		t.Fatalf("Expected 8 groups, got %d", len(list.Groups))
	}
	if list.Groups[0].Tracks[0] != style.FixedTrack(100) {
		t.Errorf("Expected 100px, got %+v", list.Groups[0].Tracks[0])
	}
	if list.Groups[2].Tracks[0] != style.Track(style.Fr(1.5)) {
		t.Errorf("Expected 1.5fr, got %+v", list.Groups[2].Tracks[0])
	}
	if list.Groups[5].Tracks[0] != style.MinMax(style.Px(50), style.Fr(1)) {
		t.Errorf("Expected minmax(50px,1fr), got %+v", list.Groups[5].Tracks[0])
	}
	if list.Groups[6].Repeat != 3 || len(list.Groups[6].Tracks) != 1 {
		t.Errorf("Unexpected repeat(3, 40px) group %+v", list.Groups[6])
	}
	if list.Groups[7].Repeat != style.RepeatAutoFill || len(list.Groups[7].Tracks) != 2 {
		t.Errorf("Unexpected auto-fill group %+v", list.Groups[7])
	}

	if _, err := parseTrackList([]string{"12em"}); err == nil {
		t.Error("Expected an error for an unsupported unit")
	}
	if _, err := parseTrackList([]string{"repeat(0, 40px)"}); err == nil {
		t.Error("Expected an error for a zero repeat count")
	}
}

func TestItemPlacementForms(t *testing.T) {
	s, err := Parse([]byte(`
[container]
tracks = ["40px", "40px", "40px", "40px"]

[[item]]
width = 10
height = 10
column = 2
column_end = 4

[[item]]
width = 10
height = 10
span = 2

[[item]]
width = 10
height = 10
column = 3
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	params, err := s.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []style.Placement{
		style.ExplicitPlacement(2, 4),
		style.SpanPlacement(2),
		style.ExplicitPlacement(3, 4),
	}
	for i, child := range params.Children {
		if child.Style.Placement != want[i] {
			t.Errorf("Item %d: expected %+v, got %+v", i, want[i], child.Style.Placement)
		}
	}
}

func TestBoxNodeCacheSlotsAreIndependent(t *testing.T) {
	node := &BoxNode{NaturalInline: 40, NaturalBlock: 20}

	layoutSpace := layout.ConstraintSpace{
		AvailableSize:  layout.LogicalSize{Inline: 100, Block: layout.Indefinite},
		FixedInline:    true,
		PercentageSize: layout.IndefiniteSize(),
		CacheSlot:      layout.CacheSlotLayout,
	}
	first := node.Layout(layoutSpace)
	if first.Size.Inline != 100 {
		t.Fatalf("Expected stretched inline 100, got %f", first.Size.Inline)
	}

	measureSpace := layoutSpace
	measureSpace.FixedInline = false
	measureSpace.AvailableSize.Inline = 60
	measureSpace.CacheSlot = layout.CacheSlotMeasure
	if got := node.Layout(measureSpace); got.Size.Inline != 40 {
		t.Fatalf("Expected natural inline 40 under measurement, got %f", got.Size.Inline)
	}

	// The measurement must not have evicted the layout-slot entry.
	if got := node.Layout(layoutSpace); got != first {
		t.Error("Measurement clobbered the layout cache slot")
	}
}
