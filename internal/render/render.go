// Package render maps a sort step to bar geometry and colors. It keeps no
// state between calls.
package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	DefaultWidth  = 600.0
	DefaultHeight = 200.0
)

type Role int

const (
	RoleNormal Role = iota
	RoleSecondary
	RolePrimary
)

type Rect struct {
	X, Y, Width, Height float64
}

type Bar struct {
	Rect
	Index int
	Value int
	Fill  colorful.Color
	Role  Role
}

// Layout is the drawing area. Y grows downward and bars stand on the bottom edge.
type Layout struct {
	Width  float64
	Height float64
}

func DefaultLayout() Layout {
	return Layout{Width: DefaultWidth, Height: DefaultHeight}
}

type Palette struct {
	Primary   colorful.Color
	Secondary colorful.Color
	Hue       float64
	Sat       float64
	// lightness of the smallest and largest value
	Light, Dark float64
}

var DefaultPalette = Palette{
	Primary:   mustHex("#ff6f6f"),
	Secondary: mustHex("#ffe1b6"),
	Hue:       240,
	Sat:       0.5,
	Light:     0.9,
	Dark:      0.2,
}

// Frame is one rendered step.
type Frame struct {
	Bars   []Bar
	Border *Rect
	Width  float64
	Height float64
}

func Bars(step sorting.Step, layout Layout) Frame {
	return DefaultPalette.Bars(step, layout)
}

func (p Palette) Bars(step sorting.Step, layout Layout) Frame {
	n := len(step.Array)
	frame := Frame{Width: layout.Width, Height: layout.Height}
	if n == 0 {
		return frame
	}

	w := layout.Width / float64(n)
	peak := maxValue(step.Array)

	frame.Bars = make([]Bar, n)
	for i, v := range step.Array {
		h := 0.0
		if peak > 0 && v > 0 {
			h = float64(v) / float64(peak) * layout.Height
		}
		role := roleOf(step, i)
		frame.Bars[i] = Bar{
			Rect:  Rect{X: float64(i) * w, Y: layout.Height - h, Width: w, Height: h},
			Index: i,
			Value: v,
			Role:  role,
			Fill:  p.fill(role, v, peak),
		}
	}

	if !step.Scope.Empty() {
		frame.Border = &Rect{
			X:      float64(step.Scope.Start) * w,
			Width:  float64(step.Scope.Len()) * w,
			Height: layout.Height,
		}
	}
	return frame
}

func roleOf(step sorting.Step, i int) Role {
	switch {
	case step.Primary == i:
		return RolePrimary
	case step.Secondary.Contains(i):
		return RoleSecondary
	default:
		return RoleNormal
	}
}

func (p Palette) fill(role Role, v, peak int) colorful.Color {
	switch role {
	case RolePrimary:
		return p.Primary
	case RoleSecondary:
		return p.Secondary
	}
	return p.Gradient(v, peak)
}

// Gradient shades a value from Light (small) to Dark (large).
func (p Palette) Gradient(v, peak int) colorful.Color {
	t := 0.0
	if peak > 0 {
		t = math.Max(0, math.Min(1, float64(v)/float64(peak)))
	}
	l := p.Light + (p.Dark-p.Light)*t
	return colorful.Hsl(p.Hue, p.Sat, l).Clamped()
}

// Columns returns the height of each bar in whole terminal rows. Positive
// values always get at least one row.
func Columns(step sorting.Step, rows int) []int {
	peak := maxValue(step.Array)
	cols := make([]int, len(step.Array))
	if peak <= 0 || rows <= 0 {
		return cols
	}
	for i, v := range step.Array {
		if v <= 0 {
			continue
		}
		h := int(math.Ceil(float64(v) * float64(rows) / float64(peak)))
		cols[i] = min(max(h, 1), rows)
	}
	return cols
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func maxValue(values []int) int {
	peak := 0
	for _, v := range values {
		peak = max(peak, v)
	}
	return peak
}
