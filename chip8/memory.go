package chip8

import (
	"encoding/binary"
)

/// Size of the CHIP-8 addressable memory.
///
const MemorySize = 0x1000

/// Fixed locations of the interpreter state inside memory. All of the
/// interpreter state lives in the first 512 bytes, just like the original
/// interpreters shared RAM with the program they ran.
///
const (
	PCAddress      = 0x000
	IAddress       = 0x001
	SCAddress      = 0x003
	DTAddress      = 0x004
	STAddress      = 0x005
	KeysAddress    = 0x006
	DisplayAddress = 0x008
	VAddress       = 0x010
	ScratchAddress = 0x020
	FontAddress    = 0x050
	StackAddress   = 0x100
	ProgramAddress = 0x200
)

/// The call stack occupies 0x100-0x1FF and grows down from 0x200. The
/// stack counter is a single byte, so at most 127 return addresses fit.
///
const (
	StackSize  = ProgramAddress - StackAddress
	StackDepth = 0xFE / 2
)

/// Memory is the flat CHIP-8 address space. Control registers are packed
/// into the reserved area and accessed through the methods below, so a raw
/// dump of Memory is laid out exactly like the original interpreter's.
///
type Memory [MemorySize]byte

/// PC returns the 12-bit program counter packed in 0x000-0x001.
///
func (m *Memory) PC() uint {
	return uint(m[PCAddress])<<4 | uint(m[PCAddress+1])>>4
}

/// SetPC stores a 12-bit program counter without touching the low nibble
/// of 0x001, which belongs to the index register.
///
func (m *Memory) SetPC(address uint) {
	m[PCAddress] = byte(address >> 4)
	m[PCAddress+1] = m[PCAddress+1]&0x0F | byte(address<<4)
}

/// I returns the 12-bit index register packed in 0x001-0x002.
///
func (m *Memory) I() uint {
	return uint(m[IAddress]&0x0F)<<8 | uint(m[IAddress+1])
}

/// SetI stores a 12-bit index register, preserving the PC nibble at 0x001.
///
func (m *Memory) SetI(address uint) {
	m[IAddress] = m[IAddress]&0xF0 | byte(address>>8)&0x0F
	m[IAddress+1] = byte(address)
}

/// SC returns the number of stack bytes in use.
///
func (m *Memory) SC() uint {
	return uint(m[SCAddress])
}

/// push a return address onto the stack.
///
func (m *Memory) push(address uint) bool {
	sc := m.SC() + 2

	if sc > StackDepth*2 {
		return false
	}

	// entries are stored big-endian, growing down from the program
	m[ProgramAddress-sc] = byte(address >> 8)
	m[ProgramAddress-sc+1] = byte(address)
	m[SCAddress] = byte(sc)

	return true
}

/// pop a return address off the stack.
///
func (m *Memory) pop() (uint, bool) {
	sc := m.SC()

	if sc < 2 {
		return 0, false
	}

	address := uint(m[ProgramAddress-sc])<<8 | uint(m[ProgramAddress-sc+1])

	// post-decrement
	m[SCAddress] = byte(sc - 2)

	return address & 0xFFF, true
}

/// Keys returns the 16-bit keyboard bitmask.
///
func (m *Memory) Keys() uint16 {
	return binary.LittleEndian.Uint16(m[KeysAddress:])
}

/// SetKeys stores the 16-bit keyboard bitmask.
///
func (m *Memory) SetKeys(mask uint16) {
	binary.LittleEndian.PutUint16(m[KeysAddress:], mask)
}

/// V returns a pointer to register Vx.
///
func (m *Memory) V(x uint) *byte {
	return &m[VAddress+x&0xF]
}

/// Clear zeroes all of memory.
///
func (m *Memory) Clear() {
	*m = Memory{}
}
