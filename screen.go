package main

import (
	"github.com/massung/chip-8/chip8"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Render target the CHIP-8 display is drawn into before scaling.
	///
	ScreenTexture *sdl.Texture
)

/// InitScreen creates the render target for the CHIP-8 display.
///
func InitScreen() error {
	var err error

	// create a render target for the display
	ScreenTexture, err = Renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_RGB888),
		sdl.TEXTUREACCESS_TARGET,
		chip8.ScreenWidth,
		chip8.ScreenHeight)

	return err
}

/// RefreshScreen with the current CHIP-8 display. The VM is only ever
/// stepped from the same loop, so the bitmap isn't changing underneath.
///
func RefreshScreen() {
	if err := Renderer.SetRenderTarget(ScreenTexture); err != nil {
		panic(err)
	}

	// the background color for the screen
	Renderer.SetDrawColor(143, 145, 133, 255)
	Renderer.Clear()

	// set the pixel color
	Renderer.SetDrawColor(17, 29, 43, 255)

	// draw all the lit pixels, a row at a time
	for y, row := range Display.Rows() {
		for x := 0; row != 0; x, row = x+1, row>>1 {
			if row&1 != 0 {
				Renderer.DrawPoint(int32(x), int32(y))
			}
		}
	}

	// restore the render target
	Renderer.SetRenderTarget(nil)
}

/// CopyScreen to the window at <x,y>, scaled up.
///
func CopyScreen(x, y, scale int32) {
	src := sdl.Rect{
		W: chip8.ScreenWidth,
		H: chip8.ScreenHeight,
	}

	dst := sdl.Rect{
		X: x,
		Y: y,
		W: chip8.ScreenWidth * scale,
		H: chip8.ScreenHeight * scale,
	}

	// stretch the render target to fit
	Renderer.Copy(ScreenTexture, &src, &dst)
}
