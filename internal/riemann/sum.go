package riemann

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Func is a real function of one variable that may fail to evaluate.
type Func func(x float64) (float64, error)

// Rectangle is one box of a Riemann sum over [Start, End].
type Rectangle struct {
	Start  float64
	End    float64
	Sample float64
	Height float64
}

func (r Rectangle) Width() float64 { return r.End - r.Start }

func (r Rectangle) Area() float64 { return r.Width() * r.Height }

// Sum partitions iv into step equal sub-intervals and returns their
// rectangles together with the accumulated area. Heights that are not
// finite fail with an *EvaluationError.
func Sum(f Func, iv Interval, step int, mode Mode) ([]Rectangle, float64, error) {
	if step <= 0 {
		return nil, 0, argErr("step count", fmt.Sprint(step), "must be a positive integer")
	}
	if !mode.Valid() {
		return nil, 0, argErr("mode", string(mode), "must be left, right, or center")
	}

	width := iv.Width() / float64(step)
	rects := make([]Rectangle, 0, step)
	area := 0.0

	for particular := 1; particular <= step; particular++ {
		start := iv.Low + float64(particular-1)*width
		end := iv.Low + float64(particular)*width

		at, err := mode.Sample(start, end)
		if err != nil {
			return nil, 0, err
		}
		height, err := f(at)
		if err != nil {
			return nil, 0, err
		}
		if math.IsNaN(height) || math.IsInf(height, 0) {
			return nil, 0, &EvaluationError{Variable: iv.Variable, At: at, Value: height}
		}

		r := Rectangle{Start: start, End: end, Sample: at, Height: height}
		rects = append(rects, r)
		area += r.Area()
	}

	return rects, area, nil
}

// quadratureNodes is exact for polynomials up to degree 2*n-1.
const quadratureNodes = 64

// Integrate estimates the definite integral of f over iv with
// Gauss-Legendre quadrature. The result is exact, up to rounding, for
// polynomials of degree below 128.
func Integrate(f Func, iv Interval) (float64, error) {
	var evalErr error
	g := func(x float64) float64 {
		if evalErr != nil {
			return 0
		}
		y, err := f(x)
		if err != nil {
			evalErr = err
			return 0
		}
		return y
	}

	lo, hi, sign := iv.Low, iv.High, 1.0
	switch {
	case lo == hi:
		return 0, nil
	case lo > hi:
		lo, hi, sign = hi, lo, -1
	}

	v := sign * quad.Fixed(g, lo, hi, quadratureNodes, quad.Legendre{}, 1)
	if evalErr != nil {
		return 0, evalErr
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("riemann: integral over %s does not converge", iv)
	}
	return v, nil
}
