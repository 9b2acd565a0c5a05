package main

import (
	"strings"
	"testing"

	"github.com/massung/chip-8/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermKeys(t *testing.T) {
	assert := assert.New(t)

	var k TermKeys
	k.Press(0x3)
	k.Press(0xF)

	for i := 0; i < TermHoldFrames; i++ {
		assert.Equal(uint16(0x8008), k.Frame())
	}

	// released once the hold runs out
	assert.Equal(uint16(0), k.Frame())
}

func TestTermKeyMap(t *testing.T) {
	assert := assert.New(t)

	seen := map[uint]bool{}
	for _, key := range TermKeyMap {
		seen[key] = true
	}
	assert.Len(seen, 16)

	seen = map[uint]bool{}
	for _, key := range KeyMap {
		seen[key] = true
	}
	assert.Len(seen, 16)
}

func TestRenderTerminal(t *testing.T) {
	assert := assert.New(t)

	s := chip8.NewScreen()
	s.TogglePixel(0, 0)
	s.TogglePixel(1, 1)
	s.TogglePixel(2, 0)
	s.TogglePixel(2, 1)

	var b strings.Builder
	require.NoError(t, RenderTerminal(&b, s))

	out := b.String()
	assert.True(strings.HasPrefix(out, "\x1b[H"))

	lines := strings.Split(strings.TrimPrefix(out, "\x1b[H"), "\r\n")
	assert.Len(lines, chip8.ScreenHeight/2+1)
	assert.True(strings.HasPrefix(lines[0], "▀▄█ "))
	assert.Equal(chip8.ScreenWidth, len([]rune(lines[0])))
	assert.Equal(strings.Repeat(" ", chip8.ScreenWidth), lines[1])
}

func TestBoot(t *testing.T) {
	assert := assert.New(t)

	vm := chip8.New(chip8.WithLogger(log.NewTestLogger(t)))
	screen := chip8.NewScreen()
	vm.AttachDisplay(screen)
	vm.Load(Boot)

	for i := 0; i < 20; i++ {
		status, err := vm.Step()
		require.NoError(t, err)
		require.Equal(t, chip8.StatusOK, status)
	}

	// spinning on the final jump
	assert.Equal(uint(0x214), vm.PC())
	assert.Equal(byte(0), vm.V(0xF))

	// top row of the C and 8 glyphs
	assert.Equal(uint64(0xF)<<28|uint64(0xF)<<33, screen.Rows()[13])
}
