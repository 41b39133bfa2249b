package button

import "image/color"

// Palette is the five-tone colour table a button surface is drawn from.
// Slot order follows the original art guide: transparent, outline, inline
// (the band between outline and fill), fill, shadow.
type Palette struct {
	Transparent color.RGBA
	Outline     color.RGBA
	Inline      color.RGBA
	Fill        color.RGBA
	Shadow      color.RGBA
}

// The three stock palettes. Selection is driven entirely by the
// hover/unavailable flags on the descriptor.
var (
	PaletteDefault = Palette{
		Transparent: color.RGBA{0, 0, 0, 0},
		Outline:     color.RGBA{47, 41, 24, 255},
		Inline:      color.RGBA{121, 96, 69, 255},
		Fill:        color.RGBA{101, 89, 52, 255},
		Shadow:      color.RGBA{87, 76, 45, 255},
	}
	PaletteHover = Palette{
		Transparent: color.RGBA{0, 0, 0, 0},
		Outline:     color.RGBA{14, 11, 4, 255},
		Inline:      color.RGBA{41, 27, 15, 255},
		Fill:        color.RGBA{30, 24, 9, 255},
		Shadow:      color.RGBA{23, 18, 7, 255},
	}
	PaletteUnavailable = Palette{
		Transparent: color.RGBA{0, 0, 0, 0},
		Outline:     color.RGBA{58, 56, 51, 255},
		Inline:      color.RGBA{112, 107, 100, 255},
		Fill:        color.RGBA{92, 88, 80, 255},
		Shadow:      color.RGBA{80, 78, 70, 255},
	}
)

// AccentColor is the text and symbol colour shared by every palette.
var AccentColor = color.RGBA{239, 229, 0, 255}

// paletteFor picks the palette for a button state. Unavailable wins over
// hover; callers are expected not to set both.
func paletteFor(hover, unavailable bool) Palette {
	switch {
	case unavailable:
		return PaletteUnavailable
	case hover:
		return PaletteHover
	default:
		return PaletteDefault
	}
}
