package button

import (
	"image"
	"testing"
)

type stubLocale map[string]string

func (s stubLocale) Resolve(id string) (string, bool) {
	text, ok := s[id]
	return text, ok
}

func TestRendererExplicitTextWinsOverLocale(t *testing.T) {
	r := New(Config{Locale: stubLocale{"#attack_button": "Attack"}})
	rect := image.Rect(0, 0, 60, 30)

	explicit, err := r.Button(rect, "Retreat", "#attack_button", StateDefault)
	if err != nil {
		t.Fatalf("Button: %v", err)
	}
	localized, err := r.Button(rect, "", "#attack_button", StateDefault)
	if err != nil {
		t.Fatalf("Button: %v", err)
	}
	if explicit == localized {
		t.Fatalf("explicit text and localized text should cache separately")
	}
	if r.CacheLen() != 2 {
		t.Fatalf("expected 2 cached surfaces, got %d", r.CacheLen())
	}
}

func TestRendererCachesPerState(t *testing.T) {
	r := New(Config{})
	rect := image.Rect(0, 0, 40, 40)

	for _, state := range []State{StateDefault, StateHover, StateDisabled} {
		if _, err := r.Button(rect, "Go", "#go_button", state); err != nil {
			t.Fatalf("Button(%v): %v", state, err)
		}
	}
	if r.CacheLen() != 3 {
		t.Fatalf("each state should get its own surface, cache has %d", r.CacheLen())
	}

	// The same request again must hit the cache, not re-compose.
	a, _ := r.Button(rect, "Go", "#go_button", StateHover)
	b, _ := r.Button(rect, "Go", "#go_button", StateHover)
	if a != b {
		t.Fatalf("repeat requests should return the cached surface")
	}
	if r.CacheLen() != 3 {
		t.Fatalf("repeat requests should not grow the cache, got %d", r.CacheLen())
	}
}

func TestRendererAppliesStyleSheet(t *testing.T) {
	s, err := ParseStyles([]byte(`{"hanging": {"#events_button": true}}`))
	if err != nil {
		t.Fatalf("ParseStyles: %v", err)
	}
	r := New(Config{Styles: s})

	img, err := r.Button(image.Rect(0, 0, 60, 40), "Events", "#events_button", StateDefault)
	if err != nil {
		t.Fatalf("Button: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 60 || b.Dy() != 40 {
		t.Fatalf("hanging buttons keep the requested size, got %dx%d", b.Dx(), b.Dy())
	}
	// Rope connector pixels only exist on hanging surfaces.
	if got := img.RGBAAt(ropeInset, 0); got != PaletteDefault.Inline {
		t.Fatalf("expected a rope connector at (%d,0), got %v", ropeInset, got)
	}
}

func TestAutoPadSizesFromText(t *testing.T) {
	r := New(Config{})

	img, err := r.AutoPad("Go", 4, StateDefault)
	if err != nil {
		t.Fatalf("AutoPad: %v", err)
	}
	// basicfont runs are 7px per glyph and 13px tall.
	wantW := 2*7 + 4 + 12
	wantH := 13 + 4 + 10
	if b := img.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Fatalf("AutoPad surface = %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}
}

func TestScaleToResamplesOnlyWhenNeeded(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 10, 10))
	src.SetRGBA(0, 0, PaletteDefault.Outline)

	if got := scaleTo(src, 10, 10); got != src {
		t.Fatalf("same-size scaling should be a no-op")
	}
	big := scaleTo(src, 20, 20)
	if b := big.Bounds(); b.Dx() != 20 || b.Dy() != 20 {
		t.Fatalf("scaled to %dx%d, want 20x20", b.Dx(), b.Dy())
	}
	// Nearest-neighbour keeps hard pixel edges: the source pixel becomes a
	// 2x2 block.
	if big.RGBAAt(1, 1) != PaletteDefault.Outline || big.RGBAAt(2, 2).A != 0 {
		t.Fatalf("expected a crisp 2x2 block at the origin")
	}
}
