package animation

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"os"

	"golang.org/x/image/draw"
)

// GIF writes looping GIF animations.
type GIF struct {
	// Dither enables Floyd-Steinberg dithering when mapping to the palette.
	Dither bool
}

func (g *GIF) Name() string { return "gif" }

func (g *GIF) Write(path string, frames []image.Image, delay int) error {
	if len(frames) == 0 {
		return fmt.Errorf("animation: no frames to write")
	}

	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, g.quantize(frame))
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return fmt.Errorf("animation: encode %s: %w", path, err)
	}
	return f.Close()
}

func (g *GIF) quantize(img image.Image) *image.Paletted {
	if p, ok := img.(*image.Paletted); ok {
		return p
	}
	b := img.Bounds()
	dst := image.NewPaletted(b, palette.Plan9)
	if g.Dither {
		draw.FloydSteinberg.Draw(dst, b, img, b.Min)
	} else {
		draw.Copy(dst, b.Min, img, b, draw.Src, nil)
	}
	return dst
}
