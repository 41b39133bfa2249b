package button

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func composeOrDie(t *testing.T, d Descriptor) *image.RGBA {
	t.Helper()
	img, err := Compose(d, PlaceholderGlyphs(AccentColor), basicfont.Face7x13)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	return img
}

func TestComposeIsDeterministic(t *testing.T) {
	d := DefaultDescriptor(60, 30, "Attack\n{DICE}")
	d.Hanging = false
	a := composeOrDie(t, d)
	b := composeOrDie(t, d)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatalf("equal descriptors must compose pixel-identical surfaces")
	}
}

func TestComposeSizeContract(t *testing.T) {
	for _, tc := range []struct {
		w, h    int
		hanging bool
	}{
		{40, 40, false},
		{60, 30, false},
		{60, 36, true},
		{21, 19, false}, // odd sizes pad edge strips, never the surface
	} {
		d := DefaultDescriptor(tc.w, tc.h, "")
		d.Hanging = tc.hanging
		img := composeOrDie(t, d)
		b := img.Bounds()
		if b.Dx() != tc.w || b.Dy() != tc.h {
			t.Fatalf("composed %dx%d (hanging=%v), want %dx%d", b.Dx(), b.Dy(), tc.hanging, tc.w, tc.h)
		}
	}
}

func TestComposeRejectsInvalidSizes(t *testing.T) {
	for _, d := range []Descriptor{
		DefaultDescriptor(0, 40, ""),
		DefaultDescriptor(40, 0, ""),
		{Width: 40, Height: 6, Hanging: true, Rounded: AllCorners, Shadows: TopLeftShadow},
	} {
		if _, err := Compose(d, PlaceholderGlyphs(AccentColor), basicfont.Face7x13); !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("descriptor %+v should be rejected before drawing", d)
		}
	}
}

// The stock square button: 40x40, empty label, rounded everywhere, shadow
// top and left.
func TestComposeStockSquareButton(t *testing.T) {
	img := composeOrDie(t, DefaultDescriptor(40, 40, ""))
	pal := PaletteDefault

	checks := []struct {
		x, y int
		want color.RGBA
		what string
	}{
		{20, 20, pal.Fill, "centre fill"},
		{4, 0, pal.Outline, "rounded corner outline staircase"},
		{0, 4, pal.Outline, "rounded corner outline left leg"},
		{4, 2, pal.Inline, "corner inline band"},
		{6, 4, pal.Shadow, "corner shadow cell (top edge shadowed)"},
		{15, 0, pal.Outline, "top edge outline band"},
		{15, 4, pal.Shadow, "top edge shadowed fill band"},
		{0, 15, pal.Outline, "left edge outline band"},
		{4, 15, pal.Shadow, "left edge shadowed fill band"},
		{39, 15, pal.Outline, "right edge outline band"},
		{34, 15, pal.Fill, "right edge unshadowed fill band"},
		{15, 39, pal.Outline, "bottom edge outline band"},
		{15, 34, pal.Fill, "bottom edge unshadowed fill band"},
	}
	for _, c := range checks {
		if got := img.RGBAAt(c.x, c.y); got != c.want {
			t.Fatalf("%s at (%d,%d): got %v, want %v", c.what, c.x, c.y, got, c.want)
		}
	}
	// Rounded corners leave the extreme pixels transparent.
	for _, p := range [][2]int{{0, 0}, {39, 0}, {0, 39}, {39, 39}} {
		if a := img.RGBAAt(p[0], p[1]).A; a != 0 {
			t.Fatalf("corner pixel (%d,%d) should be transparent, alpha=%d", p[0], p[1], a)
		}
	}
}

func TestComposeHoverUsesHoverPalette(t *testing.T) {
	d := DefaultDescriptor(60, 30, "Attack")
	d.Hover = true
	img := composeOrDie(t, d)

	if got := img.RGBAAt(30, 8); got != PaletteHover.Fill {
		t.Fatalf("hover fill = %v, want %v", got, PaletteHover.Fill)
	}
	// Rectangular rounded corner: the fill cell turns shadow when both
	// adjacent edges are shadowed, which the stock lighting does at
	// top-left.
	if got := img.RGBAAt(6, 6); got != PaletteHover.Shadow {
		t.Fatalf("corner fill cell = %v, want hover shadow", got)
	}
	// The label rasterizes in the accent colour somewhere on the surface.
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) == AccentColor {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("expected accent-coloured label pixels")
	}
}

func TestComposeSquareAndRectCornersDiffer(t *testing.T) {
	square := composeOrDie(t, DefaultDescriptor(40, 40, ""))
	rect := composeOrDie(t, DefaultDescriptor(42, 40, ""))

	// The square variant starts its outline run at (4,0); the rect
	// variant's top-left tile has nothing before (6,2) on that row.
	if got := square.RGBAAt(4, 0); got != PaletteDefault.Outline {
		t.Fatalf("square corner should have outline at (4,0), got %v", got)
	}
	if got := rect.RGBAAt(4, 0); got.A != 0 {
		t.Fatalf("rect corner should be transparent at (4,0), got %v", got)
	}
	if got := rect.RGBAAt(6, 2); got != PaletteDefault.Outline {
		t.Fatalf("rect corner should have outline at (6,2), got %v", got)
	}
}

func TestComposeHangingRopeBand(t *testing.T) {
	d := DefaultDescriptor(60, 36, "")
	d.Hanging = true
	d.Hover = true // ropes ignore state palettes
	img := composeOrDie(t, d)

	// Rope connectors sit in the 6px band above the body, always in the
	// default palette: inline, shadow, fill, shadow, inline in 2px runs.
	conn := []struct {
		dx   int
		want color.RGBA
	}{
		{0, PaletteDefault.Inline},
		{2, PaletteDefault.Shadow},
		{4, PaletteDefault.Fill},
		{6, PaletteDefault.Shadow},
		{8, PaletteDefault.Inline},
	}
	for _, c := range conn {
		if got := img.RGBAAt(ropeInset+c.dx, 2); got != c.want {
			t.Fatalf("rope pixel at x=%d: got %v, want %v", ropeInset+c.dx, got, c.want)
		}
		if got := img.RGBAAt(60-ropeInset-ropeW+c.dx, 2); got != c.want {
			t.Fatalf("second rope pixel at dx=%d: got %v, want %v", c.dx, got, c.want)
		}
	}
	// Between the ropes the band is empty.
	if a := img.RGBAAt(30, 2).A; a != 0 {
		t.Fatalf("band between ropes should be transparent, alpha=%d", a)
	}
	// The body starts below the band: its top outline is on row 6, in the
	// hover palette.
	if got := img.RGBAAt(30, 6); got != PaletteHover.Outline {
		t.Fatalf("body outline under the band = %v, want %v", got, PaletteHover.Outline)
	}
}

func TestComposeOversizedLabelOverflowsSilently(t *testing.T) {
	d := DefaultDescriptor(30, 20, "a label far wider than the button")
	if _, err := Compose(d, PlaceholderGlyphs(AccentColor), basicfont.Face7x13); err != nil {
		t.Fatalf("oversized labels overflow visually, they do not error: %v", err)
	}
}
