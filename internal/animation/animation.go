package animation

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/san-kum/riemann/internal/riemann"
)

// Writer encodes an ordered frame sequence into a single animated file.
// Delay is the per-frame delay in hundredths of a second.
type Writer interface {
	Write(path string, frames []image.Image, delay int) error
	Name() string
}

// Formats lists the accepted format names.
func Formats() []string {
	return []string{"gif", "apng"}
}

// ForPath picks the writer for format, or by the extension of path when
// format is empty: ".png" and ".apng" select APNG, anything else GIF.
func ForPath(path, format string) (Writer, error) {
	if format == "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".png", ".apng":
			format = "apng"
		default:
			format = "gif"
		}
	}

	switch strings.ToLower(format) {
	case "gif":
		return &GIF{}, nil
	case "apng", "png":
		return &APNG{}, nil
	default:
		return nil, &riemann.ArgumentError{Name: "format", Value: format, Reason: "must be gif or apng"}
	}
}
