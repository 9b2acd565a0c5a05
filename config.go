package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/massung/chip-8/chip8"
	"github.com/retroenv/retrogolib/log"
)

// Options are the command line settings of the emulator.
type Options struct {
	// ROM is the program file to boot. Empty boots the built-in program.
	ROM string

	// Speed is how many instructions execute per second.
	Speed int

	// Font is the bitmap font used by the debug panel.
	Font string

	// Terminal runs the emulator in the terminal instead of a window.
	Terminal bool

	Debug bool
	Quiet bool
	Trace bool

	Quirks chip8.Quirks
}

// ParseFlags reads the command line into Options.
func ParseFlags() Options {
	var opts Options

	flags := flag.NewFlagSet("chip-8", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: chip-8 [options] [rom]\n\n")
		flags.PrintDefaults()
	}

	flags.StringVar(&opts.ROM, "rom", "", "ROM file to load")
	flags.IntVar(&opts.Speed, "speed", 500, "instructions per second")
	flags.StringVar(&opts.Font, "font", "font.bmp", "bitmap font for the debug panel")
	flags.BoolVar(&opts.Terminal, "term", false, "run in the terminal instead of a window")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.Quiet, "quiet", false, "only log errors")
	flags.BoolVar(&opts.Trace, "trace", false, "log every instruction executed (implies -debug)")
	flags.BoolVar(&opts.Quirks.LogicalRandom, "quirk-rnd", false, "RND stores (rnd && n) like the original interpreter")
	flags.BoolVar(&opts.Quirks.KeyWaitStoresMask, "quirk-keymask", false, "LD Vx, K stores the key bitmask instead of the key")

	_ = flags.Parse(os.Args[1:])

	// allow the ROM as a positional argument
	if opts.ROM == "" && flags.NArg() > 0 {
		opts.ROM = flags.Arg(0)
	}

	if opts.Speed < MinSpeed {
		opts.Speed = MinSpeed
	}
	if opts.Speed > MaxSpeed {
		opts.Speed = MaxSpeed
	}

	return opts
}

// CreateLogger creates a logger with appropriate settings.
func CreateLogger(opts Options) *log.Logger {
	cfg := log.DefaultConfig()
	if opts.Debug || opts.Trace {
		cfg.Level = log.DebugLevel
	} else if opts.Quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}
