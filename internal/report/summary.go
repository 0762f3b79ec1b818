package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/riemann/internal/riemann"
)

var (
	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 2)

	title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)
)

// Summary renders the run as a bordered panel.
func Summary(anim *riemann.Animation, output string) string {
	rows := [][2]string{
		{"function", fmt.Sprintf("f(%s) = %s", anim.Variable, anim.Function)},
		{"integral", fmt.Sprintf("[%g, %g] d%s", anim.Integral.Low, anim.Integral.High, anim.Variable)},
		{"mode", string(anim.Mode)},
		{"frames", fmt.Sprintf("%d", len(anim.Frames))},
		{"actual area", anim.ActualText()},
	}
	if n := len(anim.Frames); n > 0 {
		last := anim.Frames[n-1]
		rows = append(rows,
			[2]string{"final approx", fmt.Sprintf("%1.4f", last.Approx)},
			[2]string{"final error", fmt.Sprintf("%.3e", last.Approx-anim.Actual)},
		)
	}
	rows = append(rows, [2]string{"output", output})

	var b strings.Builder
	b.WriteString(title.Render("riemann sum animation"))
	b.WriteString("\n\n")
	for i, r := range rows {
		b.WriteString(label.Render(fmt.Sprintf("%-13s", r[0])))
		b.WriteString(value.Render(r[1]))
		if i < len(rows)-1 {
			b.WriteString("\n")
		}
	}
	return panel.Render(b.String())
}
