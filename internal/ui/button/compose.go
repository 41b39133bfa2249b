package button

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/font"
)

// Tile geometry. Corners are 10 wide by 8 tall; edge strips are 6-pixel
// bands; the hanging rope band adds 6 pixels above the body.
const (
	cornerW   = 10
	cornerH   = 8
	edgeBand  = 6
	hangBand  = 6
	ropeW     = 10
	ropeInset = 12
)

// ErrInvalidSize reports a compose request whose target rectangle cannot
// hold a button body. Raised before any drawing happens.
var ErrInvalidSize = errors.New("button: invalid surface size")

// Compose renders the full surface for d without consulting any cache.
// The result is deterministic: equal descriptors produce pixel-identical
// images. The returned surface is exactly d.Width by d.Height; a hanging
// button draws its body 6px short and spends the difference on the rope
// band, so the caller's layout rectangle is unchanged.
func Compose(d Descriptor, glyphs *Glyphs, face font.Face) (*image.RGBA, error) {
	if d.Width < 1 || d.Height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, d.Width, d.Height)
	}
	if d.Hanging && d.Height <= hangBand {
		return nil, fmt.Errorf("%w: %dx%d leaves no room under the rope band", ErrInvalidSize, d.Width, d.Height)
	}
	pal := paletteFor(d.Hover, d.Unavailable)
	lc := labelComposer{glyphs: glyphs, face: face, accent: glyphs.accent}
	label, symbol := lc.compose(d.Label)
	return composite(d, pal, label, symbol), nil
}

func composite(d Descriptor, pal Palette, label *image.RGBA, symbol bool) *image.RGBA {
	w, h := d.Width, d.Height
	bodyH := h
	if d.Hanging {
		bodyH = h - hangBand
	}
	// Square targets get the square-button corner art; the check uses the
	// requested size, before the hanging adjustment.
	square := w == h

	surf := image.NewRGBA(image.Rect(0, 0, w, bodyH))

	// Centre fill first; corner and edge tiles draw over it.
	fillRect(surf, 4, 4, w-8, bodyH-8, pal.Fill)

	top := d.Shadows.Has(EdgeTop)
	left := d.Shadows.Has(EdgeLeft)
	right := d.Shadows.Has(EdgeRight)
	bottom := d.Shadows.Has(EdgeBottom)

	// Corners: one base tile per placement, mirrored into position.
	blit(surf, 0, 0,
		cornerTile(pal, square, top, left, d.Rounded.Has(CornerTopLeft)))
	blit(surf, w-cornerW, 0,
		transform.FlipH(cornerTile(pal, square, top, right, d.Rounded.Has(CornerTopRight))))
	blit(surf, 0, bodyH-cornerH,
		transform.FlipV(cornerTile(pal, square, bottom, left, d.Rounded.Has(CornerBottomLeft))))
	blit(surf, w-cornerW, bodyH-cornerH,
		transform.FlipH(transform.FlipV(cornerTile(pal, square, bottom, right, d.Rounded.Has(CornerBottomRight)))))

	// Edges between the corners.
	blit(surf, cornerW, 0, edgeTile(pal, w-2*cornerW, false, false, top))
	blit(surf, 0, cornerH, edgeTile(pal, bodyH-2*cornerH, true, false, left))
	blit(surf, w-edgeBand, cornerH, edgeTile(pal, bodyH-2*cornerH, true, true, right))
	blit(surf, cornerW, bodyH-edgeBand, edgeTile(pal, w-2*cornerW, false, true, bottom))

	if d.Hanging {
		surf = hangBody(surf, w, bodyH)
	}

	// Label placement: centred, with a +1,+2 bias for text labels. A
	// hanging label centres against the body below the rope band; a pure
	// symbol centres exactly.
	var cx, cy int
	switch {
	case d.Hanging:
		cx, cy = w/2+1, bodyH/2+2+hangBand
	case symbol:
		cx, cy = w/2, h/2
	default:
		cx, cy = w/2+1, h/2+2
	}
	lb := label.Bounds()
	blit(surf, cx-lb.Dx()/2, cy-lb.Dy()/2, label)

	return surf
}

// cornerTile draws the 10x8 base corner for the top-left placement. The
// other three placements mirror it. shadow1/shadow2 are the shadow flags of
// the two edges meeting at this corner, horizontal edge first.
func cornerTile(pal Palette, square, shadow1, shadow2, rounded bool) *image.RGBA {
	if !rounded {
		return plainCorner(pal, shadow1, shadow2)
	}
	tile := image.NewRGBA(image.Rect(0, 0, cornerW, cornerH))
	if square {
		// outline staircase
		fillRect(tile, 4, 0, 6, 2, pal.Outline)
		fillRect(tile, 2, 2, 2, 2, pal.Outline)
		fillRect(tile, 0, 4, 2, 4, pal.Outline)
		// fill
		fillRect(tile, 4, 4, 4, 4, pal.Fill)
		// inline
		fillRect(tile, 4, 2, 6, 2, pal.Inline)
		fillRect(tile, 2, 4, 4, 2, pal.Inline)
		fillRect(tile, 2, 4, 2, 4, pal.Inline)
		// shadow cells, keyed to whichever adjacent edge is shadowed
		if shadow1 {
			fillRect(tile, 6, 4, 4, 2, pal.Shadow)
			fillRect(tile, 4, 6, 2, 2, pal.Shadow)
		} else if shadow2 {
			fillRect(tile, 4, 6, 2, 2, pal.Shadow)
			fillRect(tile, 6, 4, 2, 2, pal.Shadow)
		}
		return tile
	}
	// outline staircase
	fillRect(tile, 6, 2, 4, 2, pal.Outline)
	fillRect(tile, 4, 4, 2, 2, pal.Outline)
	fillRect(tile, 2, 6, 2, 2, pal.Outline)
	// inline
	fillRect(tile, 6, 4, 4, 2, pal.Inline)
	fillRect(tile, 4, 6, 2, 2, pal.Inline)
	// fill cell goes to shadow tone only when both adjacent edges shadow
	if shadow1 && shadow2 {
		fillRect(tile, 6, 6, 4, 2, pal.Shadow)
	} else {
		fillRect(tile, 6, 6, 4, 2, pal.Fill)
	}
	return tile
}

// plainCorner is the non-rounded L-shaped corner, shared by the square and
// rectangular variants, with independent per-edge shadow fill.
func plainCorner(pal Palette, shadow1, shadow2 bool) *image.RGBA {
	tile := image.NewRGBA(image.Rect(0, 0, cornerW, cornerH))
	// outline
	fillRect(tile, 0, 0, 10, 2, pal.Outline)
	fillRect(tile, 0, 0, 2, 8, pal.Outline)
	// inline
	fillRect(tile, 2, 2, 8, 2, pal.Inline)
	fillRect(tile, 2, 2, 2, 6, pal.Inline)
	// fill
	fillRect(tile, 4, 4, 6, 2, pal.Fill)
	if shadow1 {
		fillRect(tile, 4, 4, 6, 2, pal.Shadow)
	}
	if shadow2 {
		fillRect(tile, 4, 4, 2, 4, pal.Shadow)
	}
	return tile
}

// edgeTile draws one edge strip of the given length: a 2px outline band, a
// 2px inline band, and a 2px fill band that switches to the shadow tone
// when the edge is shadowed. Horizontal strips with odd lengths are padded
// to even and the padding trimmed from the inner bands, so band boundaries
// never land on half pixels. rotate turns the strip vertical (outline on
// the left); flip mirrors it for the trailing side.
func edgeTile(pal Palette, length int, rotate, flip, shadow bool) *image.RGBA {
	if length < 0 {
		length = 0
	}
	odd := false
	if length%2 != 0 && !rotate {
		length++
		odd = true
	}
	strip := image.NewRGBA(image.Rect(0, 0, length, edgeBand))
	inner := length
	if odd {
		inner--
	}
	fillRect(strip, 0, 0, length, 2, pal.Outline)
	fillRect(strip, 0, 2, inner, 2, pal.Inline)
	if shadow {
		fillRect(strip, 0, 4, inner, 2, pal.Shadow)
	} else {
		fillRect(strip, 0, 4, inner, 2, pal.Fill)
	}

	switch {
	case rotate && flip:
		return transform.FlipH(rotate90CCW(strip))
	case rotate:
		return rotate90CCW(strip)
	case flip:
		return transform.FlipV(strip)
	}
	return strip
}

// hangBody extends the finished body upward by the rope band and blits the
// two connector tiles. Connectors always use the default palette, whatever
// state the button is in.
func hangBody(body *image.RGBA, w, bodyH int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, bodyH+hangBand))
	blit(out, 0, hangBand, body)
	conn := ropeConnector()
	blit(out, ropeInset, 0, conn)
	blit(out, w-ropeInset-ropeW, 0, conn)
	return out
}

// ropeConnector is the 10x6 three-tone connector: inline at the sides,
// shadow inside that, fill down the middle.
func ropeConnector() *image.RGBA {
	conn := image.NewRGBA(image.Rect(0, 0, ropeW, hangBand))
	fillRect(conn, 0, 0, 10, 6, PaletteDefault.Inline)
	fillRect(conn, 2, 0, 6, 6, PaletteDefault.Shadow)
	fillRect(conn, 4, 0, 2, 6, PaletteDefault.Fill)
	return conn
}

// fillRect writes c directly into the rectangle, clipped to the image
// bounds. No blending: tile colours land exactly as specified.
func fillRect(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(img.Bounds())
	for py := r.Min.Y; py < r.Max.Y; py++ {
		off := img.PixOffset(r.Min.X, py)
		for px := r.Min.X; px < r.Max.X; px++ {
			img.Pix[off+0] = c.R
			img.Pix[off+1] = c.G
			img.Pix[off+2] = c.B
			img.Pix[off+3] = c.A
			off += 4
		}
	}
}

// rotate90CCW rotates a strip a quarter turn counter-clockwise, so a
// horizontal strip with its outline band on top becomes a vertical strip
// with the outline on the left.
func rotate90CCW(src *image.RGBA) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < w; y++ {
		for x := 0; x < h; x++ {
			dst.SetRGBA(x, y, src.RGBAAt(b.Min.X+w-1-y, b.Min.Y+x))
		}
	}
	return dst
}
