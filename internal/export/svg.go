package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/sortviz/internal/render"
)

const background = "#0a0a0a"

// FrameToSVG draws the bars of a rendered frame and outlines the scope border
// with the given stroke color.
func FrameToSVG(frame render.Frame, border string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g>
`, frame.Width, frame.Height, frame.Width, frame.Height, background))

	for _, bar := range frame.Bars {
		sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>
`, bar.X, bar.Y, bar.Width, bar.Height, bar.Fill.Hex()))
	}
	sb.WriteString("</g>\n")

	if b := frame.Border; b != nil {
		sb.WriteString(fmt.Sprintf(`<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" stroke="%s" stroke-width="2"/>
`, b.X, b.Y, b.Width, b.Height, border))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func WriteSVG(w io.Writer, frame render.Frame, border string) error {
	_, err := io.WriteString(w, FrameToSVG(frame, border))
	return err
}
