package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreen_TogglePixel(t *testing.T) {
	assert := assert.New(t)

	s := NewScreen()
	assert.False(s.Pixel(3, 4))

	assert.False(s.TogglePixel(3, 4))
	assert.True(s.Pixel(3, 4))
	assert.Equal(uint64(1)<<3, s.Rows()[4])

	// toggling a lit pixel turns it off and reports it
	assert.True(s.TogglePixel(3, 4))
	assert.False(s.Pixel(3, 4))
	assert.Equal(uint64(0), s.Rows()[4])
}

func TestScreen_TogglePixel_Wrap(t *testing.T) {
	assert := assert.New(t)

	s := NewScreen()
	s.TogglePixel(66, 0)
	assert.True(s.Pixel(2, 0))
	assert.True(s.TogglePixel(2, 0))

	s.TogglePixel(5, 33)
	assert.True(s.Pixel(5, 1))
	assert.True(s.TogglePixel(5, 1))

	s.TogglePixel(-1, -1)
	assert.True(s.Pixel(ScreenWidth-1, ScreenHeight-1))
}

func TestScreen_Clear(t *testing.T) {
	assert := assert.New(t)

	s := NewScreen()
	for y := 0; y < ScreenHeight; y++ {
		s.TogglePixel(y, y)
		s.TogglePixel(ScreenWidth-1, y)
	}

	s.Clear()
	assert.Equal([ScreenHeight]uint64{}, s.Rows())
	assert.Equal(ScreenWidth, s.Width())
	assert.Equal(ScreenHeight, s.Height())
}
