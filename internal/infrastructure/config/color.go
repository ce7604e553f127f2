package config

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA parses the layer colour written as #RRGGBB or #RGB
func (b BackgroundLayer) RGBA() (color.RGBA, error) {
	c, err := colorful.Hex(b.Color)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", b.Color, err)
	}
	r, g, bl := c.RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}, nil
}
