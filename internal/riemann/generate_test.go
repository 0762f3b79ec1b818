package riemann

import (
	"errors"
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/riemann/internal/function"
	"github.com/san-kum/riemann/internal/render"
)

func TestGenerateCubic(t *testing.T) {
	g := NewWithT(t)

	fn := function.MustParse("x*(x-2)*(x-1)+1")
	plot := Interval{Low: 0, High: 2}
	integral := Interval{Low: 0.5, High: 1.5}

	anim, err := Generate(fn, plot, integral, 3, Left)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(anim.Frames).To(HaveLen(3))
	g.Expect(anim.Variable).To(Equal("x"))
	g.Expect(anim.Actual).To(BeNumerically("~", 1, 1e-12))
	g.Expect(anim.ActualText()).To(Equal("1"))

	for k, frame := range anim.Frames {
		g.Expect(frame.Step).To(Equal(k + 1))
		g.Expect(frame.Rectangles).To(HaveLen(k + 1))
		g.Expect(frame.Layers).To(HaveLen(6))
	}

	// left sum over width 1/3: (f(0.5) + f(5/6) + f(7/6)) / 3
	manual := 0.0
	for _, x := range []float64{0.5, 0.5 + 1.0/3, 0.5 + 2.0/3} {
		manual += (x*(x-2)*(x-1) + 1) / 3
	}
	g.Expect(anim.Frames[2].Approx).To(BeNumerically("~", manual, 1e-12))
	g.Expect(anim.Frames[2].Approx).To(BeNumerically("~", 1.125, 1e-12))
}

func TestGenerateLayers(t *testing.T) {
	fn := function.MustParse("x^2")
	anim, err := Generate(fn, Interval{Low: 0, High: 2}, Interval{Low: 0, High: 1}, 2, Center)
	if err != nil {
		t.Fatal(err)
	}

	frame := anim.Frames[1]
	rects, ok := frame.Layers[1].(render.Rectangles)
	if !ok {
		t.Fatalf("expected rectangles as second layer, got %T", frame.Layers[1])
	}
	if len(rects.Boxes) != 2 {
		t.Errorf("expected 2 boxes, got %d", len(rects.Boxes))
	}

	caption, ok := frame.Layers[5].(render.Caption)
	if !ok {
		t.Fatalf("expected caption on top, got %T", frame.Layers[5])
	}
	if caption.Lines[1] != "Approximated area: 0.3125" {
		t.Errorf("unexpected caption line %q", caption.Lines[1])
	}

	// the base curve is shared, not rebuilt per frame
	c0 := anim.Frames[0].Layers[2].(render.Curve)
	c1 := anim.Frames[1].Layers[2].(render.Curve)
	if &c0.Points[0] != &c1.Points[0] {
		t.Error("frames should share the base curve samples")
	}

	if anim.Bounds.YMin > 0 || anim.Bounds.YMax < 4 {
		t.Errorf("bounds should cover the curve and the axis: %+v", anim.Bounds)
	}
}

func TestGenerateVariable(t *testing.T) {
	g := NewWithT(t)

	anim, err := Generate(function.MustParse("t^2"), Interval{Low: 0, High: 3}, Interval{Variable: "t", Low: 0, High: 3}, 1, Right)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(anim.Actual).To(BeNumerically("~", 9, 1e-9))

	// inferred from the only free variable
	anim, err = Generate(function.MustParse("sin(u)"), Interval{Low: 0, High: math.Pi}, Interval{Low: 0, High: math.Pi}, 4, Center)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(anim.Variable).To(Equal("u"))
	g.Expect(anim.Actual).To(BeNumerically("~", 2, 1e-9))

	// a constant defaults to x
	anim, err = Generate(function.MustParse("2"), Interval{Low: 0, High: 1}, Interval{Low: 0, High: 1}, 2, Left)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(anim.Variable).To(Equal(DefaultVariable))
	g.Expect(anim.Frames[1].Approx).To(BeNumerically("~", 2, 1e-12))
}

func TestGenerateAmbiguousVariable(t *testing.T) {
	fn := function.MustParse("x*y")

	_, err := Generate(fn, Interval{Low: 0, High: 1}, Interval{Low: 0, High: 1}, 3, Left)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}

	// naming the variable leaves y unbound, which the function reports
	_, err = Generate(fn, Interval{Low: 0, High: 1}, Interval{Variable: "x", Low: 0, High: 1}, 3, Left)
	if err == nil {
		t.Fatal("expected error for unbound y")
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unbound variables are not argument errors: %v", err)
	}
}

func TestGenerateRejects(t *testing.T) {
	fn := function.MustParse("x")
	iv := Interval{Low: 0, High: 1}

	_, err := Generate(fn, iv, iv, 3, Mode("middle"))
	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("expected ArgumentError, got %v", err)
	}
	if argErr.Value != "middle" {
		t.Errorf("expected offending value middle, got %q", argErr.Value)
	}

	if _, err := Generate(fn, iv, iv, 0, Left); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for zero steps, got %v", err)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	fn := function.MustParse("x*(x-2)*(x-1)+1")
	plot := Interval{Low: 0, High: 2}
	integral := Interval{Low: 0.5, High: 1.5}

	a, err := Generate(fn, plot, integral, 10, Center)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(fn, plot, integral, 10, Center)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Frames {
		if a.Frames[i].Approx != b.Frames[i].Approx {
			t.Errorf("frame %d differs: %g vs %g", i, a.Frames[i].Approx, b.Frames[i].Approx)
		}
	}
}

func TestGenerateCurveSamples(t *testing.T) {
	fn := function.MustParse("x^2")
	iv := Interval{Low: 0, High: 1}

	anim, err := Generate(fn, iv, iv, 1, Left, WithCurveSamples(640))
	if err != nil {
		t.Fatal(err)
	}
	curve := anim.Frames[0].Layers[2].(render.Curve)
	if len(curve.Points) != 640 {
		t.Errorf("expected 640 curve points, got %d", len(curve.Points))
	}
	if curve.Points[0].X != 0 || math.Abs(curve.Points[639].X-1) > 1e-12 {
		t.Errorf("curve should span the plot interval, got %g..%g", curve.Points[0].X, curve.Points[639].X)
	}

	// fewer than two samples cannot draw a line and is ignored
	anim, err = Generate(fn, iv, iv, 1, Left, WithCurveSamples(1))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(anim.Frames[0].Layers[2].(render.Curve).Points); n != defaultCurveSamples {
		t.Errorf("expected default %d samples, got %d", defaultCurveSamples, n)
	}
}
