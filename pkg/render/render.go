// Package render rasterizes masonry layout results to PNG images, mainly
// for eyeballing placement decisions and for the CLI's render command.
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"mason/pkg/layout"
	"mason/pkg/scene"
)

// Options controls rasterization.
type Options struct {
	// Scale is the device pixels per layout unit; 0 means 1.
	Scale float64
	// ShowTracks draws the grid-axis track extents as guides.
	ShowTracks bool
	// Columns tells the renderer which physical axis the tracks run along.
	Columns bool
}

// Default fill colors for items that don't carry their own, cycled in
// placement order.
var palette = []string{
	"#4E79A7", "#F28E2B", "#E15759", "#76B7B2",
	"#59A14F", "#EDC948", "#B07AA1", "#FF9DA7",
}

// Renderer draws one layout result into a gg context.
type Renderer struct {
	context *gg.Context
	scale   float64
}

// NewRenderer allocates a canvas sized for the result.
func NewRenderer(res *layout.Result, opts Options) *Renderer {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(res.InlineSize * scale))
	h := int(math.Ceil(res.BlockSize * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Renderer{context: gg.NewContext(w, h), scale: scale}
}

// Render paints the container background, optional track guides, and every
// placed child.
func (r *Renderer) Render(res *layout.Result, opts Options) {
	r.context.SetRGB(1, 1, 1)
	r.context.Clear()

	if opts.ShowTracks {
		r.drawTracks(res, opts.Columns)
	}
	for i, child := range res.Children {
		r.drawChild(child, i)
	}
}

func (r *Renderer) drawTracks(res *layout.Result, columns bool) {
	r.context.SetRGBA(0, 0, 0, 0.08)
	for _, tr := range res.Tracks {
		if tr.Collapsed {
			continue
		}
		if columns {
			r.context.DrawRectangle(tr.Offset*r.scale, 0, tr.Size*r.scale, float64(r.context.Height()))
		} else {
			r.context.DrawRectangle(0, tr.Offset*r.scale, float64(r.context.Width()), tr.Size*r.scale)
		}
		r.context.Fill()
	}
}

func (r *Renderer) drawChild(child layout.PlacedChild, index int) {
	color := palette[index%len(palette)]
	if box, ok := child.Node.(*scene.BoxNode); ok && box.Color != "" {
		color = box.Color
	}

	x := child.Offset.Inline * r.scale
	y := child.Offset.Block * r.scale
	w := child.Fragment.Size.Inline * r.scale
	h := child.Fragment.Size.Block * r.scale

	r.context.SetHexColor(color)
	r.context.DrawRectangle(x, y, w, h)
	r.context.Fill()

	r.context.SetRGBA(0, 0, 0, 0.35)
	r.context.SetLineWidth(1)
	r.context.DrawRectangle(x, y, w, h)
	r.context.Stroke()
}

// Image returns the rendered canvas.
func (r *Renderer) Image() image.Image {
	return r.context.Image()
}

// SavePNG writes the canvas to disk.
func (r *Renderer) SavePNG(path string) error {
	if err := r.context.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

// ToPNG renders the result on a fresh canvas and writes it in one call.
func ToPNG(path string, res *layout.Result, opts Options) error {
	r := NewRenderer(res, opts)
	r.Render(res, opts)
	return r.SavePNG(path)
}
