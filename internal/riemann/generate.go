package riemann

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/riemann/internal/function"
	"github.com/san-kum/riemann/internal/render"
)

// DefaultVariable names the variable of a function with no free variables.
const DefaultVariable = "x"

const defaultCurveSamples = 400

// Frame is one step of the animation: the rectangles for Step equal
// sub-intervals, their accumulated area, and the layers that draw it.
type Frame struct {
	Step       int
	Rectangles []Rectangle
	Approx     float64
	Layers     []render.Layer
}

// Animation is the ordered frame sequence plus what every frame shares.
type Animation struct {
	Function string
	Variable string
	Mode     Mode
	Plot     Interval
	Integral Interval
	Actual   float64
	Bounds   render.Bounds
	Frames   []Frame
}

// ActualText is the exact area as displayed in the caption.
func (a *Animation) ActualText() string {
	return formatActual(a.Actual)
}

type options struct {
	samples int
	alpha   float64
}

// Option tunes frame generation.
type Option func(*options)

// WithCurveSamples sets how many points sample the base curve.
func WithCurveSamples(n int) Option {
	return func(o *options) {
		if n > 1 {
			o.samples = n
		}
	}
}

// WithAlpha sets rectangle opacity in (0, 1].
func WithAlpha(alpha float64) Option {
	return func(o *options) {
		if alpha > 0 && alpha <= 1 {
			o.alpha = alpha
		}
	}
}

// ResolveVariable picks the variable of integration: the one named by
// integral, else the function's only free variable. A function of several
// variables must name it explicitly.
func ResolveVariable(fn *function.Function, integral Interval) (string, error) {
	if integral.Variable != "" {
		return integral.Variable, nil
	}
	vars := fn.Variables()
	switch len(vars) {
	case 0:
		return DefaultVariable, nil
	case 1:
		return vars[0], nil
	default:
		return "", argErr("integral interval", integral.String(),
			fmt.Sprintf("%s has variables %s; name one as (variable,low,high)", fn, strings.Join(vars, ", ")))
	}
}

// Generate builds one frame per step count from 1 to steps. The definite
// integral and the base curve are computed once and shared by every frame.
func Generate(fn *function.Function, plot, integral Interval, steps int, mode Mode, opts ...Option) (*Animation, error) {
	o := options{samples: defaultCurveSamples, alpha: 0.5}
	for _, opt := range opts {
		opt(&o)
	}

	if steps <= 0 {
		return nil, argErr("step count", strconv.Itoa(steps), "must be a positive integer")
	}
	if !mode.Valid() {
		return nil, argErr("mode", string(mode), "must be left, right, or center")
	}

	variable, err := ResolveVariable(fn, integral)
	if err != nil {
		return nil, err
	}
	integral.Variable = variable

	bound, err := fn.Bind(variable)
	if err != nil {
		return nil, err
	}
	f := Func(bound)

	actual, err := Integrate(f, integral)
	if err != nil {
		return nil, err
	}

	curve := sampleCurve(f, plot, o.samples)
	bounds := render.Bounds{XMin: plot.Low, XMax: plot.High}
	for _, p := range curve {
		bounds = bounds.Include(p.X, p.Y)
	}

	axes := render.Axes{}
	base := render.Curve{Points: curve}
	title := render.Title{Text: fmt.Sprintf(
		"Visualization of Riemann Sum Approximation of int_{%.1f}^{%.1f} f(%s) d%s",
		integral.Low, integral.High, variable, variable)}
	legend := render.Legend{Label: fmt.Sprintf("f(%s)=%s", variable, fn)}

	anim := &Animation{
		Function: fn.String(),
		Variable: variable,
		Mode:     mode,
		Plot:     plot,
		Integral: integral,
		Actual:   actual,
		Frames:   make([]Frame, 0, steps),
	}

	for step := 1; step <= steps; step++ {
		rects, approx, err := Sum(f, integral, step, mode)
		if err != nil {
			return nil, err
		}

		boxes := make([]render.Box, len(rects))
		for i, r := range rects {
			boxes[i] = render.Box{X0: r.Start, X1: r.End, Height: r.Height}
			bounds = bounds.Include(r.Start, r.Height).Include(r.End, r.Height)
		}

		caption := render.Caption{
			Lines: []string{
				"      Actual area: " + anim.ActualText(),
				fmt.Sprintf("Approximated area: %1.4f", approx),
			},
			X: 0.5,
			Y: 0.1,
		}

		anim.Frames = append(anim.Frames, Frame{
			Step:       step,
			Rectangles: rects,
			Approx:     approx,
			Layers: []render.Layer{
				axes,
				render.Rectangles{Boxes: boxes, Alpha: o.alpha},
				base,
				title,
				legend,
				caption,
			},
		})
	}

	anim.Bounds = bounds.Pad(0.08)
	return anim, nil
}

func sampleCurve(f Func, plot Interval, n int) []render.Point {
	points := make([]render.Point, n)
	step := plot.Width() / float64(n-1)
	for i := range points {
		x := plot.Low + float64(i)*step
		y, err := f(x)
		if err != nil {
			// undefined points leave a gap in the curve
			y = math.NaN()
		}
		points[i] = render.Point{X: x, Y: y}
	}
	return points
}

func formatActual(v float64) string {
	if math.Abs(v) < 1e-12 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', 12, 64)
}
