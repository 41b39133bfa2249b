package button

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
)

// glyphBaselinePad is blank space added below an inline glyph run so symbol
// art sits on the same baseline as neighbouring text.
const glyphBaselinePad = 4

// labelComposer turns a label string, possibly multi-line and mixing
// literal text with brace-delimited glyph tokens, into a single image.
type labelComposer struct {
	glyphs *Glyphs
	face   font.Face
	accent color.RGBA
}

// compose renders label. The returned flag reports the single-symbol case:
// when the whole label is one known glyph token the glyph image is returned
// directly and the compositor centres it without the usual text bias.
//
// An empty label yields a zero-size image; the compositor blits it as a
// no-op rather than treating it as an error.
func (lc *labelComposer) compose(label string) (*image.RGBA, bool) {
	if img, ok := lc.glyphs.Lookup(label); ok {
		return img, true
	}

	var (
		lines  []*image.RGBA
		width  int
		height int
	)
	for _, line := range strings.Split(label, "\n") {
		img := lc.composeLine(line)
		lines = append(lines, img)
		height += img.Bounds().Dy()
		if img.Bounds().Dx() > width {
			width = img.Bounds().Dx()
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	y := 0
	for _, line := range lines {
		blit(out, (width-line.Bounds().Dx())/2, y, line)
		y += line.Bounds().Dy()
	}
	return out, false
}

// composeLine renders one line: runs are concatenated left to right with no
// gap, and the line is as tall as its tallest run.
func (lc *labelComposer) composeLine(line string) *image.RGBA {
	var (
		runs   []*image.RGBA
		width  int
		height int
	)
	for _, token := range tokenizeLine(line) {
		var run *image.RGBA
		if glyph, ok := lc.glyphs.Lookup(token); ok {
			b := glyph.Bounds()
			run = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+glyphBaselinePad))
			blit(run, 0, 0, glyph)
		} else {
			run = renderTextRun(lc.face, token, lc.accent)
		}
		runs = append(runs, run)
		width += run.Bounds().Dx()
		if run.Bounds().Dy() > height {
			height = run.Bounds().Dy()
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	x := 0
	for _, run := range runs {
		blit(out, x, 0, run)
		x += run.Bounds().Dx()
	}
	return out
}

// tokenizeLine splits a line into literal and brace-delimited runs. "{"
// always opens a new run and "}" closes the current one, so "a{DICE}b"
// becomes ["a", "{DICE}", "b"]. An unmatched "{" keeps accumulating
// characters into its run; the run then fails glyph lookup and renders as
// literal text.
func tokenizeLine(line string) []string {
	var (
		tokens  []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}
	for _, r := range line {
		switch r {
		case '{':
			flush()
			current.WriteRune(r)
		case '}':
			current.WriteRune(r)
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return tokens
}

// blit draws src onto dst at (x, y) with source-over alpha, the same
// compositing every tile blit in this package uses.
func blit(dst *image.RGBA, x, y int, src image.Image) {
	b := src.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(dst, r, src, b.Min, draw.Over)
}
