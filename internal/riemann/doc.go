// Package riemann computes Riemann sum approximations and the frames that
// animate them.
//
// The package defines:
//
//   - [Mode]: left, right or center sampling of each sub-interval
//   - [Interval]: display and integration intervals, with parsers
//   - [Sum]: rectangles and accumulated area for one step count
//   - [Integrate]: the exact area the approximations converge to
//   - [Generate]: one [Frame] per step count, ready for rendering
//
// # Example
//
//	f, _ := function.Parse("x*(x-2)*(x-1)+1")
//	plot, _ := riemann.ParseInterval("(0,2)")
//	bounds, _ := riemann.ParseBounds("(0.5,1.5)")
//	anim, _ := riemann.Generate(f, plot, bounds, 45, riemann.Left)
//
// Generation is sequential and deterministic. Frames share the base curve
// and never mutate it.
package riemann
