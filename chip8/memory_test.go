package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_PackedRegisters(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	m.SetPC(0xABC)
	m.SetI(0x123)

	assert.Equal(uint(0xABC), m.PC())
	assert.Equal(uint(0x123), m.I())
	assert.Equal([]byte{0xAB, 0xC1, 0x23}, m[0:3])

	// updating one must not disturb the shared nibble of the other
	m.SetPC(0x200)
	assert.Equal(uint(0x123), m.I())

	m.SetI(0xFFF)
	assert.Equal(uint(0x200), m.PC())
	assert.Equal([]byte{0x20, 0x0F, 0xFF}, m[0:3])
}

func TestMemory_Stack(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	assert.True(m.push(0x234))
	assert.True(m.push(0x456))
	assert.Equal(uint(4), m.SC())

	// entries are big-endian, growing down from 0x200
	assert.Equal([]byte{0x04, 0x56, 0x02, 0x34}, m[0x1FC:0x200])

	a, ok := m.pop()
	assert.True(ok)
	assert.Equal(uint(0x456), a)

	a, ok = m.pop()
	assert.True(ok)
	assert.Equal(uint(0x234), a)
	assert.Equal(uint(0), m.SC())

	_, ok = m.pop()
	assert.False(ok)
}

func TestMemory_StackFull(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	for i := 0; i < StackDepth; i++ {
		assert.True(m.push(uint(0x200 + i)))
	}

	assert.False(m.push(0x300))
	assert.Equal(uint(StackDepth*2), m.SC())

	// the stack never spills into the font or the program
	assert.Equal(byte(0), m[ProgramAddress])
	assert.Equal(byte(0), m[StackAddress])
}

func TestMemory_Keys(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	m.SetKeys(0x8001)

	assert.Equal(uint16(0x8001), m.Keys())
	assert.Equal([]byte{0x01, 0x80}, m[KeysAddress:KeysAddress+2])
}

func TestMemory_V(t *testing.T) {
	assert := assert.New(t)

	m := &Memory{}
	*m.V(0xF) = 0x42

	assert.Equal(byte(0x42), m[VAddress+0xF])
	assert.Equal(byte(0x42), *m.V(0x1F))
}
