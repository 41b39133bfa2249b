//go:build ignore

// gen_symbol_placeholders.go – run with:
//
//	go run scripts/gen_symbol_placeholders.go
//
// Creates resources/images/symbols/*.png placeholder art for the inline
// button glyphs. Each file is a 16x16 PNG drawn in opaque black (the exact
// colour the glyph loader recolours to the accent) on a transparent
// background. Replace with real art at any time; file names are the ones
// internal/ui/button/glyph.go loads.
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

var symbolFiles = []string{
	"random_dice.png",
	"arrow_short.png",
	"arrow_medium.png",
	"patrol_claws.png",
	"patrol_paw.png",
	"patrol_mouse.png",
	"patrol_herb.png",
	"your_clan.png",
	"outside_clan.png",
	"starclan.png",
	"unknown_residence.png",
	"dark_forest.png",
	"leader_ceremony.png",
	"mediation.png",
}

func main() {
	dir := filepath.Join("resources", "images", "symbols")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatal(err)
	}

	for i, name := range symbolFiles {
		if err := writeSymbol(filepath.Join(dir, name), i); err != nil {
			log.Fatal(err)
		}
	}

	log.Printf("Placeholder symbols written to %s", dir)
}

// writeSymbol draws a crude distinguishing mark per symbol: a filled ring
// with idx tick marks, enough to tell placeholders apart on a button.
func writeSymbol(path string, idx int) error {
	const size = 16
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	black := color.RGBA{0, 0, 0, 255}

	// ring
	for x := 2; x < size-2; x++ {
		img.SetRGBA(x, 2, black)
		img.SetRGBA(x, size-3, black)
	}
	for y := 2; y < size-2; y++ {
		img.SetRGBA(2, y, black)
		img.SetRGBA(size-3, y, black)
	}
	// tick marks
	for t := 0; t <= idx && t < 10; t++ {
		img.SetRGBA(4+t, size/2, black)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
