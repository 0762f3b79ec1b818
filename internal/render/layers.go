package render

import (
	"image"
	"image/color"
	"math"
	"strconv"
)

// Layer is one drawable stratum of a frame. Layers are drawn in order, so
// later layers sit on top.
type Layer interface {
	Draw(c *Canvas)
}

// Axes draws the coordinate axes with ticks and tick labels. The axes cross
// at the origin when it is visible, otherwise they hug the plot border.
type Axes struct{}

func (Axes) Draw(c *Canvas) {
	vp := c.Viewport
	w := vp.World
	axis := c.Theme.RGBA(c.Theme.Axis)
	text := c.Theme.RGBA(c.Theme.Text)

	yAt := clampFloat(0, w.YMin, w.YMax)
	xAt := clampFloat(0, w.XMin, w.XMax)

	x0, yRow := vp.ToPixelInt(w.XMin, yAt)
	x1, _ := vp.ToPixelInt(w.XMax, yAt)
	c.DrawLine(x0, yRow, x1, yRow, axis)

	xCol, y0 := vp.ToPixelInt(xAt, w.YMin)
	_, y1 := vp.ToPixelInt(xAt, w.YMax)
	c.DrawLine(xCol, y0, xCol, y1, axis)

	for _, t := range Ticks(w.XMin, w.XMax, 6) {
		px, _ := vp.ToPixelInt(t, yAt)
		c.DrawLine(px, yRow-2, px, yRow+2, axis)
		if t == xAt && xAt != w.XMin {
			continue
		}
		label := formatTick(t)
		c.Text(px-c.TextWidth(label)/2, yRow+lineHeight, label, text)
	}

	for _, t := range Ticks(w.YMin, w.YMax, 5) {
		_, py := vp.ToPixelInt(xAt, t)
		c.DrawLine(xCol-2, py, xCol+2, py, axis)
		if t == yAt && yAt != w.YMin {
			continue
		}
		label := formatTick(t)
		c.Text(xCol-4-c.TextWidth(label), py+4, label, text)
	}
}

// Curve is a polyline through world points. Non-finite points break the
// line.
type Curve struct {
	Points []Point
}

func (l Curve) Draw(c *Canvas) {
	col := c.Theme.RGBA(c.Theme.Curve)
	prevOK := false
	var px, py int
	for _, p := range l.Points {
		if !isFinite(p.Y) {
			prevOK = false
			continue
		}
		x, y := c.Viewport.ToPixelInt(p.X, p.Y)
		if prevOK {
			c.DrawLine(px, py, x, y, col)
			c.DrawLine(px, py+1, x, y+1, col)
		}
		px, py, prevOK = x, y, true
	}
}

// Box is a rectangle standing on the horizontal axis between X0 and X1.
type Box struct {
	X0, X1 float64
	Height float64
}

// Rectangles draws translucent boxes with a solid edge.
type Rectangles struct {
	Boxes []Box
	Alpha float64
}

func (l Rectangles) Draw(c *Canvas) {
	vp := c.Viewport
	alpha := l.Alpha
	if alpha <= 0 {
		alpha = 0.5
	}
	fill := c.Theme.Translucent(c.Theme.Fill, alpha)
	edge := c.Theme.RGBA(c.Theme.Edge)

	for _, b := range l.Boxes {
		ax, ay := vp.ToPixel(b.X0, 0)
		bx, by := vp.ToPixel(b.X1, b.Height)
		c.FillPolygon([][2]float32{{ax, ay}, {ax, by}, {bx, by}, {bx, ay}}, fill)

		x0, y0 := vp.ToPixelInt(b.X0, 0)
		x1, y1 := vp.ToPixelInt(b.X1, b.Height)
		c.DrawLine(x0, y0, x0, y1, edge)
		c.DrawLine(x0, y1, x1, y1, edge)
		c.DrawLine(x1, y1, x1, y0, edge)
	}
}

// Title is centered above the plot area.
type Title struct {
	Text string
}

func (l Title) Draw(c *Canvas) {
	x := (c.Viewport.Width - c.TextWidth(l.Text)) / 2
	c.Text(x, MarginTop/2+4, l.Text, c.Theme.RGBA(c.Theme.Text))
}

// Legend labels the curve in the top-right corner of the plot area.
type Legend struct {
	Label string
}

func (l Legend) Draw(c *Canvas) {
	right, top := c.Viewport.Relative(1, 1)
	width := c.TextWidth(l.Label) + 32
	x := right - width - 6
	y := top + 6

	c.FillRect(image.Rect(x, y, x+width, y+lineHeight+6), c.Theme.RGBA(c.Theme.Box))
	outline(c, image.Rect(x, y, x+width, y+lineHeight+6), c.Theme.RGBA(c.Theme.Axis))

	mid := y + (lineHeight+6)/2
	curve := c.Theme.RGBA(c.Theme.Curve)
	c.DrawLine(x+4, mid, x+22, mid, curve)
	c.DrawLine(x+4, mid+1, x+22, mid+1, curve)
	c.Text(x+26, mid+4, l.Label, c.Theme.RGBA(c.Theme.Text))
}

// Caption is a boxed text block anchored at axis coordinates (X, Y), both
// in [0, 1]. Lines share a left edge so aligned labels stay aligned.
type Caption struct {
	Lines []string
	X, Y  float64
}

func (l Caption) Draw(c *Canvas) {
	if len(l.Lines) == 0 {
		return
	}
	width := 0
	for _, line := range l.Lines {
		if w := c.TextWidth(line); w > width {
			width = w
		}
	}
	height := len(l.Lines) * lineHeight

	cx, cy := c.Viewport.Relative(l.X, l.Y)
	left := cx - width/2
	top := cy - height/2

	box := image.Rect(left-6, top-5, left+width+6, top+height+5)
	c.FillRect(box, c.Theme.RGBA(c.Theme.Box))
	roundedOutline(c, box, c.Theme.RGBA(c.Theme.Axis))

	text := c.Theme.RGBA(c.Theme.Text)
	for i, line := range l.Lines {
		c.Text(left, top+(i+1)*lineHeight-3, line, text)
	}
}

// Ticks returns about n evenly spaced "nice" values (multiples of 1, 2 or
// 5 times a power of ten) within [lo, hi].
func Ticks(lo, hi float64, n int) []float64 {
	if !(hi > lo) || n <= 0 {
		return nil
	}
	step := niceStep((hi - lo) / float64(n))
	if !isFinite(step) || step <= 0 {
		return nil
	}
	var out []float64
	first := math.Ceil(lo / step)
	for i := 0.0; i <= 4*float64(n); i++ {
		t := (first + i) * step
		if t > hi+step*1e-9 {
			break
		}
		out = append(out, t)
	}
	return out
}

func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	norm := raw / mag
	switch {
	case norm < 1.5:
		return mag
	case norm < 3:
		return 2 * mag
	case norm < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}

func formatTick(v float64) string {
	if math.Abs(v) < 1e-12 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 4, 64)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func outline(c *Canvas, r image.Rectangle, col color.RGBA) {
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	c.DrawLine(x0, y0, x1, y0, col)
	c.DrawLine(x1, y0, x1, y1, col)
	c.DrawLine(x1, y1, x0, y1, col)
	c.DrawLine(x0, y1, x0, y0, col)
}

// roundedOutline is outline with the corner pixels knocked off.
func roundedOutline(c *Canvas, r image.Rectangle, col color.RGBA) {
	x0, y0, x1, y1 := r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1
	bg := c.Theme.RGBA(c.Theme.Background)
	for _, p := range [][2]int{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y1}} {
		c.Set(p[0], p[1], bg)
	}
	c.DrawLine(x0+2, y0, x1-2, y0, col)
	c.DrawLine(x1, y0+2, x1, y1-2, col)
	c.DrawLine(x1-2, y1, x0+2, y1, col)
	c.DrawLine(x0, y1-2, x0, y0+2, col)
	c.Set(x0+1, y0+1, col)
	c.Set(x1-1, y0+1, col)
	c.Set(x0+1, y1-1, col)
	c.Set(x1-1, y1-1, col)
}
