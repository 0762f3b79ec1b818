package animation

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/setanarut/apng"
)

// APNG writes animated PNGs, which keep full color where GIF is limited to
// a 256 color palette.
type APNG struct{}

func (a *APNG) Name() string { return "apng" }

// Write encodes into a temporary file next to path and renames it into
// place, so a failed encode never leaves path looking written.
func (a *APNG) Write(path string, frames []image.Image, delay int) (err error) {
	if len(frames) == 0 {
		return fmt.Errorf("animation: no frames to write")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("animation: apng %s: %w", path, err)
	}
	name := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(name)
		}
	}()

	if err := saveAPNG(name, frames, delay); err != nil {
		return fmt.Errorf("animation: apng %s: %w", path, err)
	}

	info, err := os.Stat(name)
	if err != nil {
		return fmt.Errorf("animation: apng %s: %w", path, err)
	}
	if info.Size() == 0 {
		return fmt.Errorf("animation: apng %s: encoder wrote nothing", path)
	}
	return os.Rename(name, path)
}

// saveAPNG turns an encoder panic into an error.
func saveAPNG(path string, frames []image.Image, delay int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("encode: %v", r)
		}
	}()
	apng.Save(path, frames, delay)
	return nil
}
