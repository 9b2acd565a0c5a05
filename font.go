package main

import (
	"strings"

	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Texture containing a predefined font for debugging, etc. It is nil
	/// when the font bitmap couldn't be loaded, and text isn't drawn.
	///
	Font *sdl.Texture
)

/// InitFont loads the bitmap surface with font on it.
///
func InitFont(file string) {
	surface, err := sdl.LoadBMP(file)
	if err != nil {
		Logln("No debug font:", err.Error())
		return
	}
	defer surface.Free()

	// magenta is transparent
	mask := sdl.MapRGB(surface.Format, 255, 0, 255)
	surface.SetColorKey(true, mask)

	// create the texture
	if Font, err = Renderer.CreateTextureFromSurface(surface); err != nil {
		Logln("No debug font:", err.Error())
	}
}

/// DrawText using the loaded font.
///
func DrawText(s string, x, y int32) {
	if Font == nil {
		return
	}

	src := sdl.Rect{W: 5, H: 7}
	dst := sdl.Rect{
		X: x,
		Y: y,
		W: 5,
		H: 7,
	}

	// loop over all the characters in the string
	for _, c := range strings.ToUpper(s) {
		if c > 32 && c < 94 {
			src.X = (c - 33) * 6

			// draw the character to the renderer
			Renderer.Copy(Font, &src, &dst)
		}

		// advance
		dst.X += 7
	}
}
