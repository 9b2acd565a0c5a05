package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/massung/chip-8/chip8"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// Instruction rate limits, in instructions per second.
const (
	MinSpeed = 60
	MaxSpeed = 6000
)

var (
	/// The CHIP-8 virtual machine and the display it draws to.
	///
	VM      *chip8.CHIP_8
	Display *chip8.Screen

	/// The SDL Window and Renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer

	/// Logger for messages outside the window.
	///
	Log *log.Logger

	/// The ROM file currently loaded, empty for the boot program.
	///
	File string

	/// Instructions executed per second.
	///
	Speed int
)

/// Boot program shown when no ROM is loaded; draws "C8" and spins.
///
var Boot = []byte{
	0x00, 0xE0, // CLS
	0x60, 0x1C, // LD V0, #1C
	0x61, 0x0D, // LD V1, #0D
	0x62, 0x0C, // LD V2, #0C
	0xF2, 0x29, // LD F, V2
	0xD0, 0x15, // DRW V0, V1, 5
	0x70, 0x05, // ADD V0, #05
	0x62, 0x08, // LD V2, #08
	0xF2, 0x29, // LD F, V2
	0xD0, 0x15, // DRW V0, V1, 5
	0x12, 0x14, // JP #214
}

func init() {
	runtime.LockOSThread()
}

func main() {
	opts := ParseFlags()

	// log output would tear the terminal display
	if opts.Terminal && !opts.Debug && !opts.Trace {
		opts.Quiet = true
	}

	Log = CreateLogger(opts)
	Speed = opts.Speed
	File = opts.ROM

	// create a new CHIP-8 virtual machine, must happen early!
	VM = chip8.New(
		chip8.WithLogger(Log),
		chip8.WithTrace(opts.Trace),
		chip8.WithQuirks(opts.Quirks))

	Display = chip8.NewScreen()
	VM.AttachDisplay(Display)

	Load()

	if opts.Terminal {
		if err := RunTerminal(app.Context()); err != nil {
			Log.Fatal(err.Error())
		}
		return
	}

	if err := RunWindow(opts); err != nil {
		Log.Fatal(err.Error())
	}
}

/// Load the current ROM file (or the boot program) into a fresh VM.
///
func Load() {
	VM.Init()
	Display.Clear()

	if File == "" {
		VM.Load(Boot)
		return
	}

	if err := VM.LoadFile(File); err != nil {
		Logln("Failed to load", File, "-", err.Error())

		// fall back to the boot program
		File = ""
		VM.Load(Boot)
		return
	}

	Logln("Loaded", File)
}

/// Step the VM once and report anything that stops emulation.
///
func Step() {
	status, err := VM.Step()

	switch status {
	case chip8.StatusUnsupportedOpcode, chip8.StatusAddressOverflow:
		Logln(err.Error())

		// stop so the state can be inspected
		Paused = true
	}
}

/// SetSpeed changes the instruction rate, clamped to a sane range.
///
func SetSpeed(n int) {
	if n < MinSpeed {
		n = MinSpeed
	}
	if n > MaxSpeed {
		n = MaxSpeed
	}

	Speed = n
	Logln(fmt.Sprintf("Speed %d instructions/sec", Speed))
}

/// RunWindow opens the SDL window and runs until it's closed.
///
func RunWindow(opts Options) error {
	var err error

	// initialize SDL
	if err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}
	defer sdl.Quit()

	w := int32(338 + 210)
	h := int32(348)

	// create the main window and renderer
	if Window, Renderer, err = sdl.CreateWindowAndRenderer(w, h, uint32(sdl.WINDOW_SHOWN)); err != nil {
		return err
	}
	defer Window.Destroy()
	defer Renderer.Destroy()

	// set the title
	Window.SetTitle("CHIP-8")

	// initialize subsystems
	if err = InitScreen(); err != nil {
		return err
	}
	InitFont(opts.Font)

	// set processor speed and refresh rate
	rate := Speed
	clock := time.NewTicker(time.Second / time.Duration(rate))
	video := time.NewTicker(time.Second / 60)

	defer clock.Stop()
	defer video.Stop()

	// loop until window closed or user quit
	for ProcessEvents() {
		if rate != Speed {
			rate = Speed
			clock.Reset(time.Second / time.Duration(rate))
		}

		select {
		case <-video.C:
			VM.Tick()
			Refresh()
		case <-clock.C:
			if !Paused {
				Step()
			}
		}
	}

	return nil
}

/// Refresh the whole window.
///
func Refresh() {
	Renderer.SetDrawColor(32, 42, 53, 255)
	Renderer.Clear()

	// frame various portions of the app
	Frame(8, 8, 322, 162)
	Frame(338, 8, 204, 162)
	Frame(8, 176, 146, 164)
	Frame(162, 176, 380, 164)

	// update the video screen and copy it
	RefreshScreen()
	CopyScreen(10, 10, 5)

	// debug registers and log
	DebugRegisters(12, 180)
	DebugStatus(342, 12)
	DebugLog(166, 180)

	// show the new frame
	Renderer.Present()
}

/// Frame draws a beveled box.
///
func Frame(x, y, w, h int32) {
	Renderer.SetDrawColor(0, 0, 0, 255)
	Renderer.DrawLine(x, y, x+w, y)
	Renderer.DrawLine(x, y, x, y+h)

	// highlight
	Renderer.SetDrawColor(95, 112, 120, 255)
	Renderer.DrawLine(x+w, y, x+w, y+h)
	Renderer.DrawLine(x, y+h, x+w, y+h)
}
