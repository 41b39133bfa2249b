package button

import (
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// LoadFace tries each candidate TTF path in order and returns the first one
// that parses, falling back to the built-in bitmap face when no file is
// usable. The fallback keeps the game renderable on a bare checkout.
func LoadFace(candidates []string, size float64) font.Face {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ft, err := opentype.Parse(data)
		if err != nil {
			continue
		}
		face, err := opentype.NewFace(ft, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			continue
		}
		return face
	}
	return basicfont.Face7x13
}

// renderTextRun rasterizes one literal run in the accent colour with
// antialiasing off: the glyph coverage mask is thresholded so every pixel is
// either fully the accent colour or fully transparent. That keeps surfaces
// byte-deterministic and matches the chunky bitmap look of the original art.
func renderTextRun(face font.Face, s string, accent color.RGBA) *image.RGBA {
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	width := font.MeasureString(face, s).Ceil()
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return out
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.Alpha{255}),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(s)

	for i, a := range mask.Pix {
		if a >= 128 {
			out.Pix[i*4+0] = accent.R
			out.Pix[i*4+1] = accent.G
			out.Pix[i*4+2] = accent.B
			out.Pix[i*4+3] = accent.A
		}
	}
	return out
}
