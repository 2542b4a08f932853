package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/render"
	"github.com/san-kum/sortviz/internal/sorting"
)

func TestFrameToSVG(t *testing.T) {
	step := sorting.Step{
		Array:     []int{1, 2, 4},
		Primary:   0,
		Secondary: sorting.Span(1, 2),
		Scope:     sorting.Span(0, 2),
	}
	frame := render.Bars(step, render.Layout{Width: 300, Height: 100})
	svg := FrameToSVG(frame, "#ffffff")

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not an svg document: %q", svg)
	}
	if got := strings.Count(svg, "<rect "); got != 5 {
		t.Errorf("rects = %d, want 5 (background, 3 bars, border)", got)
	}
	if !strings.Contains(svg, `fill="#ff6f6f"`) {
		t.Error("primary bar color missing")
	}
	if !strings.Contains(svg, `<rect x="200.00" y="0.00" width="100.00" height="100.00"`) {
		t.Error("tallest bar geometry wrong")
	}
	if !strings.Contains(svg, `width="200.00" height="100.00" fill="none" stroke="#ffffff"`) {
		t.Error("scope border missing")
	}
}

func TestFrameToSVGNoScope(t *testing.T) {
	frame := render.Bars(sorting.Initial([]int{2, 1}), render.DefaultLayout())
	svg := FrameToSVG(frame, "#ffffff")
	if strings.Contains(svg, "stroke=") {
		t.Error("border drawn without a scope")
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	frame := render.Bars(sorting.Initial(nil), render.DefaultLayout())
	if err := WriteSVG(&buf, frame, "#fff"); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "<rect "); got != 1 {
		t.Errorf("empty frame rects = %d, want 1", got)
	}
}
