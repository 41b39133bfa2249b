// Package gui runs the desktop front end: a raylib window with the classic
// poll/update/draw frame loop, screens built from procedurally rendered
// button surfaces, and the texture plumbing between the CPU compositor and
// the GPU.
package gui

import (
	"fmt"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/appengine-ltd/wildclans/internal/locale"
	"github.com/appengine-ltd/wildclans/internal/ui/button"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string
	// Locale is the language tag for button text, e.g. "en-us".
	Locale string
	// PlaceholderGlyphs skips symbol art loading and renders blank tiles,
	// for style work on a checkout without assets.
	PlaceholderGlyphs bool
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	return &App{cfg: cfg}
}

type gameUI struct {
	cfg      AppConfig
	width    int32
	height   int32
	renderer *button.Renderer
	widgets  []*buttonWidget
	status   string
	quit     bool
}

// buildRenderer assembles the shared button renderer from the resource
// tree. A missing style sheet or language catalog degrades to defaults;
// missing symbol art is fatal, because no label can render without it.
func buildRenderer(cfg AppConfig) (*button.Renderer, error) {
	styles, err := button.LoadStyles(filepath.Join("resources", "styles.json"))
	if err != nil {
		zap.L().Warn("style sheet unavailable, every button gets the stock shape", zap.Error(err))
		styles = button.EmptyStyles()
	}

	var glyphs *button.Glyphs
	if cfg.PlaceholderGlyphs {
		glyphs = button.PlaceholderGlyphs(button.AccentColor)
	} else {
		glyphs, err = button.LoadGlyphs(filepath.Join("resources", "images", "symbols"), button.AccentColor)
		if err != nil {
			return nil, fmt.Errorf("load symbol glyphs: %w", err)
		}
	}

	var localizer button.Localizer
	if cat, err := locale.Load(filepath.Join("resources", "languages"), cfg.Locale); err != nil {
		zap.L().Warn("language catalogs unavailable, buttons keep their literal text", zap.Error(err))
	} else {
		localizer = cat
	}

	face := button.LoadFace([]string{
		filepath.Join("resources", "fonts", "clangen.ttf"),
		filepath.Join("resources", "fonts", "NotoSans-Regular.ttf"),
	}, 16)

	return button.New(button.Config{
		Styles: styles,
		Glyphs: glyphs,
		Face:   face,
		Locale: localizer,
	}), nil
}

func (a *App) Run() error {
	renderer, err := buildRenderer(a.cfg)
	if err != nil {
		return err
	}

	ui := &gameUI{
		cfg:      a.cfg,
		width:    800,
		height:   700,
		renderer: renderer,
	}

	rl.InitWindow(ui.width, ui.height, "wildclans")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	if err := ui.buildStartScreen(); err != nil {
		return err
	}
	defer ui.unload()

	for !ui.quit && !rl.WindowShouldClose() {
		if err := ui.update(); err != nil {
			return err
		}
		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(57, 50, 36, 255))
		ui.draw()
		rl.EndDrawing()
	}
	return nil
}

// buildStartScreen lays out the start-screen buttons. Needs the GL context,
// so it runs after InitWindow.
func (ui *gameUI) buildStartScreen() error {
	centre := float32(ui.width)/2 - 100
	specs := []struct {
		rect    rl.Rectangle
		text    string
		id      string
		onClick func()
	}{
		{rl.NewRectangle(centre, 220, 200, 40), "", "#continue_button", func() { ui.status = "continuing last clan" }},
		{rl.NewRectangle(centre, 270, 200, 40), "", "#new_clan_button", func() { ui.status = "starting a new clan" }},
		{rl.NewRectangle(centre, 320, 200, 40), "", "#settings_button", func() { ui.status = "settings" }},
		{rl.NewRectangle(centre, 370, 200, 40), "", "#quit_button", func() { ui.quit = true }},
		{rl.NewRectangle(centre+220, 220, 40, 40), "", "#random_dice_button", func() { ui.status = "rerolled" }},
		{rl.NewRectangle(centre, 150, 200, 46), "", "#events_button", func() { ui.status = "events" }},
	}
	for _, s := range specs {
		w, err := newButtonWidget(ui.renderer, s.rect, s.text, s.id, s.onClick)
		if err != nil {
			return err
		}
		ui.widgets = append(ui.widgets, w)
	}
	return nil
}

func (ui *gameUI) update() error {
	// F3 toggles every button between enabled and disabled, mostly for
	// eyeballing the unavailable palette.
	if rl.IsKeyPressed(rl.KeyF3) {
		for _, w := range ui.widgets {
			if err := w.setEnabled(ui.renderer, !w.enabled); err != nil {
				return err
			}
		}
	}
	for _, w := range ui.widgets {
		if err := w.update(ui.renderer); err != nil {
			return err
		}
	}
	return nil
}

func (ui *gameUI) draw() {
	for _, w := range ui.widgets {
		w.draw()
	}
	if ui.status != "" {
		rl.DrawText(ui.status, 16, ui.height-52, 18, rl.NewColor(239, 229, 0, 255))
	}
	rl.DrawText(fmt.Sprintf("%s (%s)", ui.cfg.Version, ui.cfg.Commit), 16, ui.height-26, 16, rl.Gray)
}

func (ui *gameUI) unload() {
	for _, w := range ui.widgets {
		w.unload()
	}
}
