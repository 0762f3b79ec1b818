package render

import "math"

// Point is a point in world coordinates.
type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned world rectangle.
type Bounds struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Include grows b so that (x, y) lies inside it. Non-finite values are
// ignored.
func (b Bounds) Include(x, y float64) Bounds {
	if !isFinite(x) || !isFinite(y) {
		return b
	}
	b.XMin = math.Min(b.XMin, x)
	b.XMax = math.Max(b.XMax, x)
	b.YMin = math.Min(b.YMin, y)
	b.YMax = math.Max(b.YMax, y)
	return b
}

// Pad widens the vertical range by frac of its span on both sides.
// Degenerate ranges are widened by one unit.
func (b Bounds) Pad(frac float64) Bounds {
	if b.XMax == b.XMin {
		b.XMin--
		b.XMax++
	}
	span := b.YMax - b.YMin
	if span == 0 {
		b.YMin--
		b.YMax++
		return b
	}
	b.YMin -= span * frac
	b.YMax += span * frac
	return b
}

// Margins around the plot area, in pixels.
const (
	MarginLeft   = 48
	MarginRight  = 16
	MarginTop    = 36
	MarginBottom = 28
)

// MaxSize bounds both image dimensions; text is drawn in int16 pixel
// coordinates.
const MaxSize = math.MaxInt16

// Viewport maps world coordinates onto a Width x Height image.
type Viewport struct {
	Width, Height int
	World         Bounds
}

func NewViewport(width, height int, world Bounds) Viewport {
	return Viewport{Width: width, Height: height, World: world}
}

func (v Viewport) innerWidth() float64 {
	return float64(v.Width - MarginLeft - MarginRight)
}

func (v Viewport) innerHeight() float64 {
	return float64(v.Height - MarginTop - MarginBottom)
}

// ToPixel converts world coordinates to sub-pixel image coordinates.
func (v Viewport) ToPixel(x, y float64) (float32, float32) {
	w := v.World
	px := float64(MarginLeft) + (x-w.XMin)/(w.XMax-w.XMin)*v.innerWidth()
	py := float64(MarginTop) + (w.YMax-y)/(w.YMax-w.YMin)*v.innerHeight()
	return float32(px), float32(py)
}

// ToPixelInt is ToPixel rounded to the nearest pixel.
func (v Viewport) ToPixelInt(x, y float64) (int, int) {
	px, py := v.ToPixel(x, y)
	return int(math.Round(float64(px))), int(math.Round(float64(py)))
}

// Relative converts axis coordinates, (0,0) bottom-left and (1,1) top-right
// of the plot area, to pixels.
func (v Viewport) Relative(ax, ay float64) (int, int) {
	px := float64(MarginLeft) + ax*v.innerWidth()
	py := float64(MarginTop) + (1-ay)*v.innerHeight()
	return int(math.Round(px)), int(math.Round(py))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
