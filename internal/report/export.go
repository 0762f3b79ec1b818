package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/san-kum/riemann/internal/riemann"
)

type ExportData struct {
	Function string  `json:"function"`
	Variable string  `json:"variable"`
	Mode     string  `json:"mode"`
	Low      float64 `json:"low"`
	High     float64 `json:"high"`
	Actual   float64 `json:"actual"`
	Frames   []Point `json:"frames"`
}

var exporters = map[string]func(string, *riemann.Animation) error{
	".json": ExportJSON,
	".csv":  ExportCSV,
}

// CheckExportPath fails unless path ends in an extension Export knows.
func CheckExportPath(path string) error {
	_, err := exporterFor(path)
	return err
}

func exporterFor(path string) (func(string, *riemann.Animation) error, error) {
	fn, ok := exporters[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, &riemann.ArgumentError{Name: "export", Value: path, Reason: "must end in .json or .csv"}
	}
	return fn, nil
}

// Export writes per-frame convergence data as JSON or CSV, chosen by the
// extension of path.
func Export(path string, anim *riemann.Animation) error {
	fn, err := exporterFor(path)
	if err != nil {
		return err
	}
	return fn(path, anim)
}

func ExportJSON(path string, anim *riemann.Animation) error {
	data := ExportData{
		Function: anim.Function,
		Variable: anim.Variable,
		Mode:     string(anim.Mode),
		Low:      anim.Integral.Low,
		High:     anim.Integral.High,
		Actual:   anim.Actual,
		Frames:   Convergence(anim),
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportCSV(path string, anim *riemann.Animation) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"step", "approx", "actual", "error"}); err != nil {
		return err
	}

	actual := strconv.FormatFloat(anim.Actual, 'f', 10, 64)
	for _, p := range Convergence(anim) {
		row := []string{
			strconv.Itoa(p.Step),
			strconv.FormatFloat(p.Approx, 'f', 10, 64),
			actual,
			strconv.FormatFloat(p.Error, 'e', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export csv %s: %w", path, err)
	}
	return nil
}
