package render

import (
	"image/color"
	"math"
	"testing"
)

func testViewport() Viewport {
	return NewViewport(200, 150, Bounds{XMin: 0, XMax: 2, YMin: -1, YMax: 3})
}

func TestViewportMapping(t *testing.T) {
	vp := testViewport()

	x, y := vp.ToPixelInt(0, 3)
	if x != MarginLeft || y != MarginTop {
		t.Errorf("top-left corner: expected (%d,%d), got (%d,%d)", MarginLeft, MarginTop, x, y)
	}

	x, y = vp.ToPixelInt(2, -1)
	if x != vp.Width-MarginRight || y != vp.Height-MarginBottom {
		t.Errorf("bottom-right corner: expected (%d,%d), got (%d,%d)",
			vp.Width-MarginRight, vp.Height-MarginBottom, x, y)
	}

	rx, ry := vp.Relative(0, 0)
	if rx != MarginLeft || ry != vp.Height-MarginBottom {
		t.Errorf("relative origin: got (%d,%d)", rx, ry)
	}
}

func TestBounds(t *testing.T) {
	b := Bounds{XMin: 0, XMax: 1}
	b = b.Include(0.5, 2).Include(0.2, -3).Include(0.1, math.NaN())
	if b.YMin != -3 || b.YMax != 2 {
		t.Errorf("unexpected bounds %+v", b)
	}

	p := b.Pad(0.1)
	if p.YMin != -3.5 || p.YMax != 2.5 {
		t.Errorf("unexpected padded bounds %+v", p)
	}

	flat := Bounds{XMin: 0, XMax: 1, YMin: 2, YMax: 2}.Pad(0.1)
	if flat.YMin != 1 || flat.YMax != 3 {
		t.Errorf("degenerate range should widen by one: %+v", flat)
	}
}

func TestTicks(t *testing.T) {
	ticks := Ticks(0, 2, 6)
	if len(ticks) == 0 {
		t.Fatal("expected ticks")
	}
	if ticks[0] != 0 || ticks[len(ticks)-1] != 2 {
		t.Errorf("expected ticks from 0 to 2, got %v", ticks)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i] <= ticks[i-1] {
			t.Errorf("ticks not increasing: %v", ticks)
		}
	}

	if Ticks(1, 1, 5) != nil {
		t.Error("expected no ticks for an empty range")
	}
}

func TestThemes(t *testing.T) {
	for _, name := range ListThemes() {
		theme, err := GetTheme(name)
		if err != nil {
			t.Fatalf("theme %s: %v", name, err)
		}
		if theme.RGBA(theme.Background).A != 0xff {
			t.Errorf("theme %s: background should be opaque", name)
		}
	}

	if _, err := GetTheme("nonexistent"); err == nil {
		t.Error("expected error for unknown theme")
	}

	white := ThemeLight.RGBA(ThemeLight.Background)
	if white != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("expected white, got %v", white)
	}

	half := ThemeLight.Translucent(ThemeLight.Fill, 0.5)
	if half.A != 128 {
		t.Errorf("expected alpha 128, got %d", half.A)
	}
}

func TestRenderLayers(t *testing.T) {
	vp := testViewport()
	theme := ThemeLight
	bg := theme.RGBA(theme.Background)

	empty := Render(vp, theme)
	if empty.RGBAAt(100, 75) != bg {
		t.Error("empty render should be background only")
	}

	img := Render(vp, theme,
		Axes{},
		Rectangles{Boxes: []Box{{X0: 0.5, X1: 1.5, Height: 2}}},
		Curve{Points: []Point{{0, 0}, {1, 1}, {2, 2}}},
	)

	// inside the box, away from edges and the curve
	x, y := vp.ToPixelInt(0.7, 0.5)
	inside := img.RGBAAt(x, y)
	if inside == bg {
		t.Error("rectangle interior should be filled")
	}
	if inside == theme.RGBA(theme.Fill) {
		t.Error("rectangle fill should be translucent")
	}

	x, y = vp.ToPixelInt(1, 1)
	if img.RGBAAt(x, y) != theme.RGBA(theme.Curve) {
		t.Errorf("expected curve color at (1,1), got %v", img.RGBAAt(x, y))
	}

	x, y = vp.ToPixelInt(1.8, 0)
	if img.RGBAAt(x, y) != theme.RGBA(theme.Axis) {
		t.Errorf("expected x axis at y=0, got %v", img.RGBAAt(x, y))
	}
}

func TestTextLayers(t *testing.T) {
	vp := NewViewport(320, 240, Bounds{XMin: 0, XMax: 1, YMin: 0, YMax: 1})
	theme := ThemeDark
	text := theme.RGBA(theme.Text)

	img := Render(vp, theme,
		Title{Text: "Riemann"},
		Caption{Lines: []string{"Actual area: 1", "Approximated area: 1.1250"}, X: 0.5, Y: 0.1},
		Legend{Label: "f(x)=x"},
	)

	found := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == text {
				found++
			}
		}
	}
	if found == 0 {
		t.Error("expected text pixels")
	}
}

func TestCanvasDisplayer(t *testing.T) {
	c := NewCanvas(testViewport(), ThemeLight)
	w, h := c.Size()
	if int(w) != 200 || int(h) != 150 {
		t.Errorf("unexpected size %dx%d", w, h)
	}

	red := color.RGBA{R: 0xff, A: 0xff}
	c.SetPixel(3, 4, red)
	c.SetPixel(-1, 500, red)
	if c.Image().RGBAAt(3, 4) != red {
		t.Error("SetPixel did not paint")
	}
	if err := c.Display(); err != nil {
		t.Error(err)
	}
	if c.TextWidth("abc") <= 0 {
		t.Error("expected positive text width")
	}
}
