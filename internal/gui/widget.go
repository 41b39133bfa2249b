package gui

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/wildclans/internal/ui/button"
)

// widgetPair keeps a button's two on-screen elements, the drawn surface
// and the transparent hit target above it, in lock-step. Exactly the
// fields that must stay mirrored get setters; nothing is mirrored
// implicitly.
type widgetPair struct {
	image pairElement
	hit   pairElement
}

type pairElement struct {
	visible bool
	anchor  rl.Vector2
	clip    rl.Rectangle
}

func (p *widgetPair) SetVisible(v bool) {
	p.image.visible = v
	p.hit.visible = v
}

func (p *widgetPair) SetAnchor(a rl.Vector2) {
	p.image.anchor = a
	p.hit.anchor = a
}

func (p *widgetPair) SetClip(r rl.Rectangle) {
	p.image.clip = r
	p.hit.clip = r
}

func (p *widgetPair) Visible() bool { return p.image.visible }

// buttonWidget is one interactive button on a screen. Its surface comes
// from the shared renderer; a state change re-requests the surface (cache
// hit after the first time) and re-uploads the texture.
type buttonWidget struct {
	id      string
	text    string
	rect    rl.Rectangle
	state   button.State
	enabled bool
	pair    widgetPair
	tex     rl.Texture2D
	onClick func()
}

func newButtonWidget(r *button.Renderer, rect rl.Rectangle, text, id string, onClick func()) (*buttonWidget, error) {
	w := &buttonWidget{
		id:      id,
		text:    text,
		rect:    rect,
		enabled: true,
		onClick: onClick,
	}
	w.pair.SetVisible(true)
	w.pair.SetAnchor(rl.Vector2{X: rect.X, Y: rect.Y})
	if err := w.applyState(r, button.StateDefault); err != nil {
		return nil, err
	}
	return w, nil
}

// applyState renders the surface for the new state and swaps the texture.
func (w *buttonWidget) applyState(r *button.Renderer, s button.State) error {
	surf, err := r.Button(w.bounds(), w.text, w.id, s)
	if err != nil {
		return err
	}
	if w.tex.ID != 0 {
		rl.UnloadTexture(w.tex)
	}
	w.tex = uploadSurface(surf)
	w.state = s
	return nil
}

// setEnabled flips the widget between the default and disabled palettes.
func (w *buttonWidget) setEnabled(r *button.Renderer, enabled bool) error {
	w.enabled = enabled
	if enabled {
		return w.applyState(r, button.StateDefault)
	}
	return w.applyState(r, button.StateDisabled)
}

// update runs per-frame hover tracking and click dispatch, re-rendering on
// hover-enter and hover-exit.
func (w *buttonWidget) update(r *button.Renderer) error {
	if !w.pair.Visible() || !w.enabled {
		return nil
	}
	hovered := rl.CheckCollisionPointRec(rl.GetMousePosition(), w.rect)
	switch {
	case hovered && w.state != button.StateHover:
		if err := w.applyState(r, button.StateHover); err != nil {
			return err
		}
	case !hovered && w.state == button.StateHover:
		if err := w.applyState(r, button.StateDefault); err != nil {
			return err
		}
	}
	if hovered && rl.IsMouseButtonPressed(rl.MouseLeftButton) && w.onClick != nil {
		w.onClick()
	}
	return nil
}

func (w *buttonWidget) draw() {
	if !w.pair.Visible() || w.tex.ID == 0 {
		return
	}
	rl.DrawTexture(w.tex, int32(w.rect.X), int32(w.rect.Y), rl.White)
}

func (w *buttonWidget) unload() {
	if w.tex.ID != 0 {
		rl.UnloadTexture(w.tex)
		w.tex = rl.Texture2D{}
	}
}

func (w *buttonWidget) bounds() image.Rectangle {
	return image.Rect(0, 0, int(w.rect.Width), int(w.rect.Height))
}
