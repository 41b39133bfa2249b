package gui

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// uploadSurface copies a composed CPU surface into a GPU texture. Point
// filtering keeps the pixel art crisp if the texture is ever drawn scaled.
func uploadSurface(img *image.RGBA) rl.Texture2D {
	tex := rl.LoadTextureFromImage(rl.NewImageFromImage(img))
	rl.SetTextureFilter(tex, rl.FilterPoint)
	return tex
}
