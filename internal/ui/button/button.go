// Package button procedurally renders the game's 9-slice button surfaces:
// corner, edge and fill tiles drawn from a fixed palette, inline symbol
// glyphs mixed into rasterized label text, optional hanging rope
// connectors, and a process-lifetime cache keyed by the full style
// descriptor.
package button

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// State is the interaction state a surface is rendered for. Each state has
// its own palette and its own cache entries; the widget layer re-requests a
// surface on every hover/enable/disable transition.
type State int

const (
	StateDefault State = iota
	StateHover
	StateDisabled
)

// Localizer resolves a button identifier to its display text. The second
// return distinguishes "no translation" from a genuinely empty label.
type Localizer interface {
	Resolve(id string) (string, bool)
}

type noLocale struct{}

func (noLocale) Resolve(string) (string, bool) { return "", false }

// Config wires a Renderer. Zero-value fields get safe defaults: an empty
// style sheet, placeholder glyphs, the built-in bitmap face and no
// localization.
type Config struct {
	Styles *Styles
	Glyphs *Glyphs
	Face   font.Face
	Locale Localizer
}

// Renderer is the public entry point the widget layer renders buttons
// through. It owns the surface cache; everything else it holds is
// immutable after construction, so a single Renderer serves the whole
// process.
type Renderer struct {
	styles *Styles
	glyphs *Glyphs
	face   font.Face
	locale Localizer
	cache  *Cache
}

// New builds a Renderer from cfg.
func New(cfg Config) *Renderer {
	r := &Renderer{
		styles: cfg.Styles,
		glyphs: cfg.Glyphs,
		face:   cfg.Face,
		locale: cfg.Locale,
		cache:  NewCache(),
	}
	if r.styles == nil {
		r.styles = EmptyStyles()
	}
	if r.glyphs == nil {
		r.glyphs = PlaceholderGlyphs(AccentColor)
	}
	if r.face == nil {
		r.face = basicfont.Face7x13
	}
	if r.locale == nil {
		r.locale = noLocale{}
	}
	return r
}

// Button renders the surface for a widget placement request. Explicit text
// wins; otherwise the label comes from the localization collaborator keyed
// by id. The id also selects the shape overrides from the style sheet. The
// result is sized to rect and ready to blit.
func (r *Renderer) Button(rect image.Rectangle, text, id string, state State) (*image.RGBA, error) {
	label := text
	if label == "" {
		if resolved, ok := r.locale.Resolve(id); ok {
			label = resolved
		}
	}
	d := Descriptor{
		Width:       rect.Dx(),
		Height:      rect.Dy(),
		Label:       label,
		Hover:       state == StateHover,
		Unavailable: state == StateDisabled,
		Rounded:     r.styles.Rounded(id),
		Shadows:     r.styles.Shadows(id),
		Hanging:     r.styles.Hanging(id),
	}
	img, err := r.Render(d)
	if err != nil {
		return nil, err
	}
	return scaleTo(img, rect.Dx(), rect.Dy()), nil
}

// Render returns the surface for d, composing and caching it on first use.
func (r *Renderer) Render(d Descriptor) (*image.RGBA, error) {
	if img, ok := r.cache.Lookup(d); ok {
		return img, nil
	}
	img, err := Compose(d, r.glyphs, r.face)
	if err != nil {
		return nil, err
	}
	return r.cache.Store(d, img), nil
}

// AutoPad sizes a stock-shaped button from its rendered text plus padding
// and renders it. Handy for labels whose width is not known at layout time.
func (r *Renderer) AutoPad(text string, padding int, state State) (*image.RGBA, error) {
	run := renderTextRun(r.face, text, r.glyphs.accent)
	b := run.Bounds()
	d := DefaultDescriptor(b.Dx()+padding+12, b.Dy()+padding+10, text)
	d.Hover = state == StateHover
	d.Unavailable = state == StateDisabled
	return r.Render(d)
}

// CacheLen reports how many surfaces the renderer has cached so far.
func (r *Renderer) CacheLen() int { return r.cache.Len() }

// scaleTo resizes src to w by h with nearest-neighbour sampling, keeping
// the pixel-art look. Returns src unchanged when it is already that size.
func scaleTo(src *image.RGBA, w, h int) *image.RGBA {
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
	return dst
}
