package images

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// CanvasSize returns the 16:9 canvas a w×h image should be centered on.
// The canvas matches the image's width or height — whichever keeps the
// whole original visible — so the image is letterboxed, never cropped.
func CanvasSize(w, h int) (int, int) {
	if w*9 >= h*16 {
		// Wide image: keep width, pad top/bottom.
		return w, w * 9 / 16
	}
	// Tall image: keep height, pad left/right.
	return h * 16 / 9, h
}

// Letterbox pads the image at path onto a centered black 16:9 canvas and
// rewrites it in place. Images already at 16:9 are left untouched.
func Letterbox(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	src, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	cw, ch := CanvasSize(w, h)
	if cw == w && ch == h {
		return nil
	}

	canvas := image.NewRGBA(image.Rect(0, 0, cw, ch))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
	offset := image.Pt((cw-w)/2, (ch-h)/2)
	draw.Draw(canvas, bounds.Add(offset).Sub(bounds.Min), src, bounds.Min, draw.Over)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(out, canvas)
	default:
		return jpeg.Encode(out, canvas, &jpeg.Options{Quality: 92})
	}
}
