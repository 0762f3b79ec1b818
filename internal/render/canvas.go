package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// lineHeight is the baseline-to-baseline distance of the text font.
const lineHeight = 12

// Canvas is an RGBA raster with world-to-pixel mapping. It implements
// drivers.Displayer so tinyfont can draw text straight onto it.
type Canvas struct {
	Viewport Viewport
	Theme    Theme

	img  *image.RGBA
	z    *vector.Rasterizer
	font tinyfont.Fonter
}

var _ drivers.Displayer = (*Canvas)(nil)

func NewCanvas(vp Viewport, theme Theme) *Canvas {
	c := &Canvas{
		Viewport: vp,
		Theme:    theme,
		img:      image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height)),
		z:        vector.NewRasterizer(vp.Width, vp.Height),
		font:     &proggy.TinySZ8pt7b,
	}
	c.Clear()
	return c
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the canvas with the theme background.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.Theme.RGBA(c.Theme.Background)), image.Point{}, draw.Src)
}

func (c *Canvas) Size() (x, y int16) {
	return int16(c.Viewport.Width), int16(c.Viewport.Height)
}

func (c *Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.Set(int(x), int(y), col)
}

func (c *Canvas) Display() error {
	return nil
}

// Set paints one pixel; out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, col)
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col color.RGBA) {
	x0, y0 = c.clampPoint(x0, y0)
	x1, y1 = c.clampPoint(x1, y1)

	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillRect paints r opaquely.
func (c *Canvas) FillRect(r image.Rectangle, col color.RGBA) {
	draw.Draw(c.img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// FillPolygon composites the closed polygon pts over the canvas. The alpha
// of col is honored.
func (c *Canvas) FillPolygon(pts [][2]float32, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	c.z.Reset(c.Viewport.Width, c.Viewport.Height)
	c.z.DrawOp = draw.Over
	c.z.MoveTo(pts[0][0], pts[0][1])
	for _, p := range pts[1:] {
		c.z.LineTo(p[0], p[1])
	}
	c.z.ClosePath()
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// Text writes s with its baseline at y.
func (c *Canvas) Text(x, y int, s string, col color.RGBA) {
	tinyfont.WriteLine(c, c.font, int16(x), int16(y), s, col)
}

// TextWidth is the rendered width of s in pixels.
func (c *Canvas) TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(c.font, s)
	return int(outbox)
}

// the limit keeps Bresenham from walking far outside the image when a
// function blows up
func (c *Canvas) clampPoint(x, y int) (int, int) {
	w, h := c.Viewport.Width, c.Viewport.Height
	return clampInt(x, -w, 2*w), clampInt(y, -h, 2*h)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
