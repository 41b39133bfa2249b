package button

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
)

// placeholderSize is the tile size used when glyphs are stubbed out for
// style iteration without the symbol art on disk.
const placeholderSize = 16

// glyphSources maps each token to its source file under the symbol
// directory. Right-facing arrows are the left arrows mirrored, so they do
// not appear here.
var glyphSources = map[string]string{
	"{DICE}":              "random_dice.png",
	"{ARROW_LEFT_SHORT}":  "arrow_short.png",
	"{ARROW_LEFT_MED}":    "arrow_medium.png",
	"{PATROL_CLAW}":       "patrol_claws.png",
	"{PATROL_PAW}":        "patrol_paw.png",
	"{PATROL_MOUSE}":      "patrol_mouse.png",
	"{PATROL_HERB}":       "patrol_herb.png",
	"{YOUR_CLAN}":         "your_clan.png",
	"{OUTSIDE_CLAN}":      "outside_clan.png",
	"{STARCLAN}":          "starclan.png",
	"{UNKNOWN_RESIDENCE}": "unknown_residence.png",
	"{DARK_FOREST}":       "dark_forest.png",
	"{LEADER_CEREMONY}":   "leader_ceremony.png",
	"{MEDIATION}":         "mediation.png",
}

// mirroredGlyphs are derived tokens: each value is flipped horizontally from
// the already-loaded source token.
var mirroredGlyphs = map[string]string{
	"{ARROW_RIGHT_SHORT}": "{ARROW_LEFT_SHORT}",
	"{ARROW_RIGHT_MED}":   "{ARROW_LEFT_MED}",
}

// Glyphs holds the symbol images rendered inline in button labels, already
// recoloured to the accent colour. Populated once at startup and read-only
// afterwards.
type Glyphs struct {
	accent color.RGBA
	images map[string]*image.RGBA
}

// LoadGlyphs reads every symbol image from dir and recolours it. A missing
// or undecodable file is an error: no button label renders meaningfully
// without the full glyph set.
func LoadGlyphs(dir string, accent color.RGBA) (*Glyphs, error) {
	g := &Glyphs{accent: accent, images: make(map[string]*image.RGBA, len(glyphSources)+len(mirroredGlyphs))}
	for token, file := range glyphSources {
		img, err := loadGlyphImage(filepath.Join(dir, file))
		if err != nil {
			return nil, fmt.Errorf("glyph %s: %w", token, err)
		}
		recolorBlack(img, accent)
		g.images[token] = img
	}
	for token, src := range mirroredGlyphs {
		g.images[token] = transform.FlipH(g.images[src])
	}
	return g, nil
}

// PlaceholderGlyphs builds a library of blank placeholder tiles without
// touching the filesystem. Used for style iteration before symbol art
// exists; never in production.
func PlaceholderGlyphs(accent color.RGBA) *Glyphs {
	g := &Glyphs{accent: accent, images: make(map[string]*image.RGBA, len(glyphSources)+len(mirroredGlyphs))}
	for token := range glyphSources {
		g.images[token] = blankTile(placeholderSize, placeholderSize)
	}
	for token := range mirroredGlyphs {
		g.images[token] = blankTile(placeholderSize, placeholderSize)
	}
	return g
}

// Lookup returns the image for a glyph token, e.g. "{DICE}".
func (g *Glyphs) Lookup(token string) (*image.RGBA, bool) {
	img, ok := g.images[token]
	return img, ok
}

// Tokens reports how many glyph tokens are registered.
func (g *Glyphs) Tokens() int { return len(g.images) }

func loadGlyphImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return clone.AsRGBA(img), nil
}

// recolorBlack rewrites every fully opaque black pixel to c, leaving all
// other pixels untouched. The substitution is exact, never blended, so
// applying it twice is the same as applying it once.
func recolorBlack(img *image.RGBA, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		row := img.Pix[off : off+b.Dx()*4]
		for x := 0; x < b.Dx()*4; x += 4 {
			if row[x] == 0 && row[x+1] == 0 && row[x+2] == 0 && row[x+3] == 255 {
				row[x], row[x+1], row[x+2], row[x+3] = c.R, c.G, c.B, c.A
			}
		}
	}
}

// blankTile is an opaque black tile, matching the colour the recolour pass
// targets so placeholder art picks up the accent once real loading is used.
func blankTile(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}
