package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/massung/chip-8/chip8"
	"golang.org/x/term"
)

var (
	/// Mapping of terminal characters to CHIP-8 keys. Same layout as the
	/// window's KeyMap.
	///
	TermKeyMap = map[byte]uint{
		'x': 0x0,
		'1': 0x1,
		'2': 0x2,
		'3': 0x3,
		'q': 0x4,
		'w': 0x5,
		'e': 0x6,
		'a': 0x7,
		's': 0x8,
		'd': 0x9,
		'z': 0xA,
		'c': 0xB,
		'4': 0xC,
		'r': 0xD,
		'f': 0xE,
		'v': 0xF,
	}
)

/// Terminals don't report key releases, so a key is held down for this
/// many frames after its character arrives.
///
const TermHoldFrames = 6

/// Control characters handled by the terminal host.
///
const (
	ctrlC     = 0x03
	backspace = 0x7F
)

/// TermKeys tracks which CHIP-8 keys are held and for how long.
///
type TermKeys struct {
	held [16]int
}

/// Press a key for TermHoldFrames frames.
///
func (k *TermKeys) Press(key uint) {
	k.held[key&0xF] = TermHoldFrames
}

/// Frame counts every held key down by one frame and returns the
/// resulting bitmask.
///
func (k *TermKeys) Frame() uint16 {
	mask := uint16(0)

	for i := range k.held {
		if k.held[i] > 0 {
			mask |= 1 << uint(i)
			k.held[i]--
		}
	}

	return mask
}

/// RenderTerminal draws the screen using half-block characters, two
/// pixel rows per text line.
///
func RenderTerminal(w io.Writer, s *chip8.Screen) error {
	var b strings.Builder

	// home the cursor
	b.WriteString("\x1b[H")

	rows := s.Rows()

	for y := 0; y < chip8.ScreenHeight; y += 2 {
		for x := uint(0); x < chip8.ScreenWidth; x++ {
			top := rows[y]>>x&1 != 0
			bottom := rows[y+1]>>x&1 != 0

			switch {
			case top && bottom:
				b.WriteString("█")
			case top:
				b.WriteString("▀")
			case bottom:
				b.WriteString("▄")
			default:
				b.WriteByte(' ')
			}
		}

		// raw mode doesn't translate newlines
		b.WriteString("\r\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

/// RunTerminal runs the VM in the controlling terminal until ctx is done
/// or CTRL-C is typed.
///
func RunTerminal(ctx context.Context) error {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return errors.New("stdin is not a terminal")
	}

	if w, h, err := term.GetSize(fd); err == nil && (w < chip8.ScreenWidth || h < chip8.ScreenHeight/2+1) {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, chip8.ScreenWidth, chip8.ScreenHeight/2+1)
	}

	// put terminal in raw mode to disable echo and line buffering
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	// clear the screen, hide the cursor, and show it again on exit
	fmt.Print("\x1b[2J\x1b[?25l")
	defer fmt.Print("\x1b[?25h\r\n")

	input := make(chan byte, 16)

	// stdin reads block, so they happen on their own goroutine; it is
	// abandoned when the process exits
	go func() {
		r := bufio.NewReader(os.Stdin)

		for {
			c, err := r.ReadByte()
			if err != nil {
				close(input)
				return
			}
			input <- c
		}
	}()

	var keys TermKeys

	clock := time.NewTicker(time.Second / time.Duration(Speed))
	video := time.NewTicker(time.Second / 60)

	defer clock.Stop()
	defer video.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case c, ok := <-input:
			if !ok || c == ctrlC {
				return nil
			}

			if key, ok := TermKeyMap[c]; ok {
				keys.Press(key)
				VM.PressKey(key)
			} else if c == backspace {
				VM.Reset()
				Display.Clear()
			}
		case <-video.C:
			VM.SetKeys(keys.Frame())
			VM.Tick()

			if err := RenderTerminal(os.Stdout, Display); err != nil {
				return err
			}
		case <-clock.C:
			// nobody can inspect a stopped VM here, so errors end the run
			if _, err := VM.Step(); err != nil {
				return err
			}
		}
	}
}
