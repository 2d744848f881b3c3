// Package scene loads masonry scene descriptions from TOML files and turns
// them into layout inputs. Scenes are the fixture format used by the CLI
// and the renderer.
package scene

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"mason/pkg/layout"
	"mason/pkg/style"
)

// Scene is the top-level TOML document.
type Scene struct {
	Container ContainerConfig `toml:"container"`
	Items     []ItemConfig    `toml:"item"`
}

// ContainerConfig mirrors the masonry container properties.
type ContainerConfig struct {
	Direction   string   `toml:"direction"` // "columns" (default) or "rows"
	Tracks      []string `toml:"tracks"`
	GridGap     float64  `toml:"grid_gap"`
	StackingGap float64  `toml:"stacking_gap"`
	Align       string   `toml:"align"` // default item alignment
	Tolerance   float64  `toml:"tolerance"`

	// Width and Height are the available sizes in px; omit for indefinite.
	Width  *float64 `toml:"width"`
	Height *float64 `toml:"height"`

	Padding float64 `toml:"padding"`
}

// ItemConfig mirrors one child.
type ItemConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// Column/ColumnEnd are 1-indexed grid lines; Span requests a width in
	// tracks for auto-placement. All zero means "span 1, auto-placed".
	Column    int `toml:"column"`
	ColumnEnd int `toml:"column_end"`
	Span      int `toml:"span"`

	Align    string    `toml:"align"`
	Safe     bool      `toml:"safe"`
	Margin   []float64 `toml:"margin"` // start/end inline, start/end block
	Absolute bool      `toml:"absolute"`
	Baseline float64   `toml:"baseline"`
	Color    string    `toml:"color"`
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a TOML scene document.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("scene: parse: %w", err)
	}
	return &s, nil
}

// Build converts the scene into algorithm parameters. The returned params
// carry the default margin resolver and sizing engine.
func (s *Scene) Build() (layout.Params, error) {
	container, err := s.Container.build()
	if err != nil {
		return layout.Params{}, err
	}

	children := make([]layout.Child, 0, len(s.Items))
	for i, item := range s.Items {
		child, err := item.build(container)
		if err != nil {
			return layout.Params{}, fmt.Errorf("item %d: %w", i, err)
		}
		children = append(children, child)
	}

	available := layout.IndefiniteSize()
	if s.Container.Width != nil {
		available.Inline = *s.Container.Width
	}
	if s.Container.Height != nil {
		available.Block = *s.Container.Height
	}
	pad := s.Container.Padding
	return layout.Params{
		Style:         container,
		Children:      children,
		AvailableSize: available,
		BorderScrollbarPadding: layout.BoxStrut{
			InlineStart: pad, InlineEnd: pad, BlockStart: pad, BlockEnd: pad,
		},
	}, nil
}

func (c ContainerConfig) build() (style.Container, error) {
	container := style.DefaultContainer()

	switch c.Direction {
	case "", "columns":
		container.Direction = style.ForColumns
	case "rows":
		container.Direction = style.ForRows
	default:
		return style.Container{}, fmt.Errorf("scene: unknown direction %q", c.Direction)
	}

	if len(c.Tracks) > 0 {
		template, err := parseTrackList(c.Tracks)
		if err != nil {
			return style.Container{}, err
		}
		container.Template = template
	}

	if c.Align != "" {
		edge, err := parseAlign(c.Align)
		if err != nil {
			return style.Container{}, err
		}
		container.ItemAlignment = edge
	}

	container.GridGap = c.GridGap
	container.StackingGap = c.StackingGap
	container.ItemTolerance = c.Tolerance
	return container, nil
}

func (ic ItemConfig) build(container style.Container) (layout.Child, error) {
	item := style.Item{Placement: style.AutoPlacement()}

	switch {
	case ic.Column > 0 && ic.ColumnEnd > 0:
		item.Placement = style.ExplicitPlacement(ic.Column, ic.ColumnEnd)
	case ic.Column > 0:
		span := ic.Span
		if span < 1 {
			span = 1
		}
		item.Placement = style.ExplicitPlacement(ic.Column, ic.Column+span)
	case ic.Span > 1:
		item.Placement = style.SpanPlacement(ic.Span)
	}

	if ic.Align != "" {
		edge, err := parseAlign(ic.Align)
		if err != nil {
			return layout.Child{}, err
		}
		item.Alignment = edge
		item.HasAlignment = true
	}
	item.OverflowSafe = ic.Safe

	switch len(ic.Margin) {
	case 0:
	case 4:
		item.Margin = style.Sides{
			InlineStart: ic.Margin[0], InlineEnd: ic.Margin[1],
			BlockStart: ic.Margin[2], BlockEnd: ic.Margin[3],
		}
	default:
		return layout.Child{}, fmt.Errorf("margin needs 4 values, got %d", len(ic.Margin))
	}

	if ic.Absolute {
		item.Position = style.PositionAbsolute
	}

	node := &BoxNode{
		NaturalInline: ic.Width,
		NaturalBlock:  ic.Height,
		Color:         ic.Color,
	}
	if ic.Baseline > 0 {
		node.Baseline = ic.Baseline
		node.HasBaseline = true
		item.BaselineSource = true
	}
	return layout.Child{Node: node, Style: item}, nil
}

func parseAlign(s string) (style.AxisEdge, error) {
	switch s {
	case "start":
		return style.AxisStart, nil
	case "center":
		return style.AxisCenter, nil
	case "end":
		return style.AxisEnd, nil
	case "stretch":
		return style.AxisStretch, nil
	}
	return 0, fmt.Errorf("scene: unknown alignment %q", s)
}
