package render

import "image"

// Render draws layers in order onto a fresh canvas and returns the image.
func Render(vp Viewport, theme Theme, layers ...Layer) *image.RGBA {
	c := NewCanvas(vp, theme)
	for _, l := range layers {
		l.Draw(c)
	}
	return c.Image()
}
