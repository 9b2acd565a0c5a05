package main

import (
	"errors"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	/// Mapping of modern keyboard to CHIP-8 keys.
	///
	KeyMap = map[sdl.Scancode]uint{
		sdl.SCANCODE_X: 0x0,
		sdl.SCANCODE_1: 0x1,
		sdl.SCANCODE_2: 0x2,
		sdl.SCANCODE_3: 0x3,
		sdl.SCANCODE_Q: 0x4,
		sdl.SCANCODE_W: 0x5,
		sdl.SCANCODE_E: 0x6,
		sdl.SCANCODE_A: 0x7,
		sdl.SCANCODE_S: 0x8,
		sdl.SCANCODE_D: 0x9,
		sdl.SCANCODE_Z: 0xA,
		sdl.SCANCODE_C: 0xB,
		sdl.SCANCODE_4: 0xC,
		sdl.SCANCODE_R: 0xD,
		sdl.SCANCODE_F: 0xE,
		sdl.SCANCODE_V: 0xF,
	}
)

/// ProcessEvents from SDL and map keys to the CHIP-8 VM. Returns false
/// once the window is closed.
///
func ProcessEvents() bool {
	for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
		switch ev := e.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYUP {
				if key, ok := KeyMap[ev.Keysym.Scancode]; ok {
					VM.ReleaseKey(key)
				}
				continue
			}

			if key, ok := KeyMap[ev.Keysym.Scancode]; ok {
				VM.PressKey(key)
				continue
			}

			// emulator keys don't auto-repeat
			if ev.Repeat != 0 {
				continue
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				File = ""

				// go back to the boot program
				Logln("Unloading ROM")
				Load()
			case sdl.SCANCODE_BACKSPACE:
				VM.Reset()
				Display.Clear()

				// holding control during reset will reboot paused
				if ev.Keysym.Mod&sdl.KMOD_CTRL != 0 {
					Paused = true
				}
			case sdl.SCANCODE_UP, sdl.SCANCODE_PAGEUP:
				Console.ScrollUp()
			case sdl.SCANCODE_DOWN, sdl.SCANCODE_PAGEDOWN:
				Console.ScrollDown(LogLines)
			case sdl.SCANCODE_HOME:
				Console.Home()
			case sdl.SCANCODE_END:
				Console.End()
			case sdl.SCANCODE_H:
				DebugHelp()
			case sdl.SCANCODE_F2:
				Load()
			case sdl.SCANCODE_F3:
				LoadDialog()
			case sdl.SCANCODE_LEFTBRACKET:
				SetSpeed(Speed - Speed/4)
			case sdl.SCANCODE_RIGHTBRACKET:
				SetSpeed(Speed + Speed/4)
			case sdl.SCANCODE_F5, sdl.SCANCODE_SPACE:
				Paused = !Paused
			case sdl.SCANCODE_F6, sdl.SCANCODE_F10:
				if Paused {
					Step()
				}
			}
		}
	}

	return true
}

/// LoadDialog asks for a ROM file and loads it.
///
func LoadDialog() {
	file, err := dialog.File().
		Title("Load CHIP-8 ROM").
		Filter("CHIP-8 ROMs", "ch8", "c8").
		Filter("All files", "*").
		Load()

	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			Logln("Failed to open dialog:", err.Error())
		}
		return
	}

	File = file
	Load()
}
