package report

import (
	"fmt"
	"math"
	"os"

	"github.com/guptarohit/asciigraph"
	"golang.org/x/term"

	"github.com/san-kum/riemann/internal/riemann"
)

// Point is the approximation quality of one frame.
type Point struct {
	Step   int     `json:"step"`
	Approx float64 `json:"approx"`
	Error  float64 `json:"error"`
}

// Convergence lists approximate area and signed error (approx - actual)
// per step count.
func Convergence(anim *riemann.Animation) []Point {
	points := make([]Point, len(anim.Frames))
	for i, f := range anim.Frames {
		points[i] = Point{Step: f.Step, Approx: f.Approx, Error: f.Approx - anim.Actual}
	}
	return points
}

// Chart plots |error| against step count.
func Chart(points []Point, width int) string {
	if len(points) == 0 {
		return ""
	}
	data := make([]float64, len(points))
	for i, p := range points {
		data[i] = math.Abs(p.Error)
	}

	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("|approx - actual| for 1..%d rectangles", len(points))),
	)
}

// TerminalWidth is the chart width that fits stdout, 80 when stdout is
// not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 80
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w < 20 {
		return 80
	}
	// leave room for the y-axis labels
	return w - 12
}
