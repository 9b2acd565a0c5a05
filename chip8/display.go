package chip8

/// Resolution of the CHIP-8 display.
///
const (
	ScreenWidth  = 64
	ScreenHeight = 32
)

/// Display is what the interpreter draws to. The interpreter never reads
/// pixels back; it only clears and flips them.
///
type Display interface {
	/// Clear turns every pixel off.
	///
	Clear()

	/// TogglePixel flips the pixel at <x,y>, wrapping both coordinates,
	/// and returns true if the pixel was on (and is now off).
	///
	TogglePixel(x, y int) bool
}

/// Screen is a 64x32 monochrome bitmap. Each row is a single 64-bit word
/// and bit x of row y is pixel <x,y>.
///
type Screen struct {
	rows [ScreenHeight]uint64
}

/// NewScreen returns a blank screen.
///
func NewScreen() *Screen {
	return &Screen{}
}

/// Clear turns all pixels off.
///
func (s *Screen) Clear() {
	s.rows = [ScreenHeight]uint64{}
}

/// TogglePixel XORs a single pixel. Coordinates wrap.
///
func (s *Screen) TogglePixel(x, y int) bool {
	x, y = wrap(x, ScreenWidth), wrap(y, ScreenHeight)

	bit := uint64(1) << uint(x)
	on := s.rows[y]&bit != 0

	s.rows[y] ^= bit

	return on
}

/// Pixel returns true if the pixel at <x,y> is on. Coordinates wrap.
///
func (s *Screen) Pixel(x, y int) bool {
	return s.rows[wrap(y, ScreenHeight)]&(1<<uint(wrap(x, ScreenWidth))) != 0
}

/// Rows returns a copy of the bitmap, one word per scan line.
///
func (s *Screen) Rows() [ScreenHeight]uint64 {
	return s.rows
}

/// Width and Height of the screen in pixels.
///
func (s *Screen) Width() int { return ScreenWidth }
func (s *Screen) Height() int { return ScreenHeight }

func wrap(n, size int) int {
	if n %= size; n < 0 {
		n += size
	}

	return n
}
