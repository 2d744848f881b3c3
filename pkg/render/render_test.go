package render

import (
	"image/color"
	"testing"

	"mason/pkg/layout"
	"mason/pkg/scene"
)

func renderedScene(t *testing.T) *layout.Result {
	t.Helper()
	s, err := scene.Parse([]byte(`
[container]
tracks = ["100px", "150px"]
stacking_gap = 10
width = 250.0

[[item]]
width = 100
height = 50
color = "#FF0000"

[[item]]
width = 150
height = 80
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	params, err := s.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return layout.New(params).Layout()
}

func TestRender_CanvasMatchesResult(t *testing.T) {
	res := renderedScene(t)

	r := NewRenderer(res, Options{})
	r.Render(res, Options{Columns: true})

	img := r.Image()
	bounds := img.Bounds()
	if bounds.Dx() != 250 || bounds.Dy() != 80 {
		t.Fatalf("Expected a 250x80 canvas, got %dx%d", bounds.Dx(), bounds.Dy())
	}

	// Center of the first item: its explicit red fill.
	cr, cg, cb, _ := img.At(50, 25).RGBA()
	if cr>>8 != 0xFF || cg>>8 != 0 || cb>>8 != 0 {
		t.Errorf("Expected red at (50,25), got %v", color.RGBA{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), 0xFF})
	}

	// Below the shorter column the background shows through.
	br, bg, bb, _ := img.At(50, 70).RGBA()
	if br>>8 != 0xFF || bg>>8 != 0xFF || bb>>8 != 0xFF {
		t.Errorf("Expected white background at (50,70), got (%d,%d,%d)", br>>8, bg>>8, bb>>8)
	}

	r2 := NewRenderer(res, Options{Scale: 2})
	if got := r2.Image().Bounds(); got.Dx() != 500 || got.Dy() != 160 {
		t.Errorf("Expected a scaled 500x160 canvas, got %dx%d", got.Dx(), got.Dy())
	}
}

func TestRender_EmptyResultStillProducesCanvas(t *testing.T) {
	res := &layout.Result{}
	r := NewRenderer(res, Options{})
	r.Render(res, Options{})
	if got := r.Image().Bounds(); got.Dx() != 1 || got.Dy() != 1 {
		t.Errorf("Expected a 1x1 fallback canvas, got %dx%d", got.Dx(), got.Dy())
	}
}
