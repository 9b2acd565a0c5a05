package chip8

/// Decoded operand fields of a single instruction. These are filled in
/// once per Step and never outlive it.
///
type operands struct {
	op uint // top nibble
	x  uint // register x
	y  uint // register y
	n  byte // low nibble
	b  byte // low byte
	a  uint // 12-bit address
}

/// decode splits an instruction into its operand fields.
///
func decode(inst uint) operands {
	return operands{
		op: inst >> 12 & 0xF,
		x:  inst >> 8 & 0xF,
		y:  inst >> 4 & 0xF,
		n:  byte(inst & 0xF),
		b:  byte(inst & 0xFF),
		a:  inst & 0xFFF,
	}
}

/// exec dispatches a single decoded instruction.
///
func (vm *CHIP_8) exec(inst uint) error {
	o := decode(inst)

	switch o.op {
	case 0x0:
		switch o.a {
		case 0x0E0:
			return vm.cls()
		case 0x0EE:
			return vm.ret()
		}
	case 0x1:
		vm.jump(o.a)
		return nil
	case 0x2:
		return vm.call(o.a)
	case 0x3:
		return vm.skipIf(vm.vx(o.x) == o.b)
	case 0x4:
		return vm.skipIf(vm.vx(o.x) != o.b)
	case 0x5:
		if o.n == 0 {
			return vm.skipIf(vm.vx(o.x) == vm.vx(o.y))
		}
	case 0x6:
		vm.loadX(o.x, o.b)
		return nil
	case 0x7:
		vm.addX(o.x, o.b)
		return nil
	case 0x8:
		return vm.alu(o)
	case 0x9:
		if o.n == 0 {
			return vm.skipIf(vm.vx(o.x) != vm.vx(o.y))
		}
	case 0xA:
		vm.Memory.SetI(o.a)
		return nil
	case 0xB:
		return vm.jumpV0(o.a)
	case 0xC:
		vm.rnd8(o.x, o.b)
		return nil
	case 0xD:
		return vm.drw(o.x, o.y, o.n)
	case 0xE:
		switch o.b {
		case 0x9E:
			return vm.skipIf(vm.pressed(o.x))
		case 0xA1:
			return vm.skipIf(!vm.pressed(o.x))
		}
	case 0xF:
		return vm.misc(o)
	}

	return unsupported()
}

/// alu executes the 8XYN register instructions.
///
func (vm *CHIP_8) alu(o operands) error {
	x, y := vm.vx(o.x), vm.vx(o.y)

	switch o.n {
	case 0x0:
		vm.setV(o.x, y)
	case 0x1:
		vm.setV(o.x, x|y)
	case 0x2:
		vm.setV(o.x, x&y)
	case 0x3:
		vm.setV(o.x, x^y)
	case 0x4:
		sum := uint(x) + uint(y)

		vm.setV(o.x, byte(sum))
		vm.flag(sum > 0xFF)
	case 0x5:
		vm.setV(o.x, x-y)
		vm.flag(x < y)
	case 0x6:
		vm.setV(o.x, x>>1)
		vm.flag(x&1 == 1)
	case 0x7:
		vm.setV(o.x, y-x)
		vm.flag(y < x)
	case 0xE:
		vm.setV(o.x, x<<1)
		vm.flag(x&0x80 != 0)
	default:
		return unsupported()
	}

	return nil
}

/// misc executes the FXNN timer, key, and memory instructions.
///
func (vm *CHIP_8) misc(o operands) error {
	switch o.b {
	case 0x07:
		vm.setV(o.x, vm.DelayTimer())
	case 0x0A:
		vm.loadXK(o.x)
	case 0x15:
		vm.SetDelayTimer(vm.vx(o.x))
	case 0x18:
		vm.SetSoundTimer(vm.vx(o.x))
	case 0x1E:
		vm.Memory.SetI((vm.Memory.I() + uint(vm.vx(o.x))) & 0xFFF)
	case 0x29:
		vm.Memory.SetI(GlyphAddress(vm.vx(o.x)))
	case 0x33:
		return vm.loadB(o.x)
	case 0x55:
		return vm.saveRegs(o.x)
	case 0x65:
		return vm.loadRegs(o.x)
	default:
		return unsupported()
	}

	return nil
}

func (vm *CHIP_8) vx(x uint) byte {
	return *vm.Memory.V(x)
}

func (vm *CHIP_8) setV(x uint, b byte) {
	*vm.Memory.V(x) = b
}

/// set VF to 1 or 0.
///
func (vm *CHIP_8) flag(set bool) {
	if set {
		vm.setV(0xF, 1)
	} else {
		vm.setV(0xF, 0)
	}
}

/// Clear the display.
///
func (vm *CHIP_8) cls() error {
	if vm.display == nil {
		return noDisplay()
	}

	vm.display.Clear()

	return nil
}

/// call a subroutine at address.
///
func (vm *CHIP_8) call(address uint) error {
	if !vm.Memory.push(vm.Memory.PC()) {
		return overflow("stack overflow")
	}

	// jump to address
	vm.Memory.SetPC(address)

	return nil
}

/// return from subroutine.
///
func (vm *CHIP_8) ret() error {
	address, ok := vm.Memory.pop()
	if !ok {
		return overflow("stack underflow")
	}

	// restore program counter
	vm.Memory.SetPC(address)

	return nil
}

/// jump to address.
///
func (vm *CHIP_8) jump(address uint) {
	vm.Memory.SetPC(address)
}

/// jump to address + v0.
///
func (vm *CHIP_8) jumpV0(address uint) error {
	target := address + uint(vm.vx(0))

	if target > MemorySize-1 {
		return overflow("jump target")
	}

	vm.Memory.SetPC(target)

	return nil
}

/// skip the next instruction if cond is true.
///
func (vm *CHIP_8) skipIf(cond bool) error {
	if !cond {
		return nil
	}

	pc := vm.Memory.PC() + 2

	if pc > MemorySize-1 {
		return overflow("skip")
	}

	vm.Memory.SetPC(pc)

	return nil
}

/// true if the key in vx is held down.
///
func (vm *CHIP_8) pressed(x uint) bool {
	key := vm.vx(x)

	return key < 16 && vm.Memory.Keys()&(1<<key) != 0
}

/// load n into vx.
///
func (vm *CHIP_8) loadX(x uint, b byte) {
	vm.setV(x, b)
}

/// add n to vx.
///
func (vm *CHIP_8) addX(x uint, b byte) {
	vm.setV(x, vm.vx(x)+b)
}

/// load vx with next key hit. If no key is down, the VM waits.
///
func (vm *CHIP_8) loadXK(x uint) {
	vm.W = vm.Memory.V(x)

	// a key already held completes immediately
	vm.keyHit(vm.Memory.Keys())
}

/// load a random number & n into vx.
///
func (vm *CHIP_8) rnd8(x uint, b byte) {
	r := byte(vm.rnd.Intn(256))

	if vm.quirks.LogicalRandom {
		if r != 0 && b != 0 {
			vm.setV(x, 1)
		} else {
			vm.setV(x, 0)
		}

		return
	}

	vm.setV(x, r&b)
}

/// load address with BCD of vx.
///
func (vm *CHIP_8) loadB(x uint) error {
	i := vm.Memory.I()

	if i+2 > MemorySize-1 {
		return overflow("bcd store")
	}

	n := vm.vx(x)

	vm.Memory[i+0] = n / 100
	vm.Memory[i+1] = n / 10 % 10
	vm.Memory[i+2] = n % 10

	return nil
}

/// save registers v0..vx to I.
///
func (vm *CHIP_8) saveRegs(x uint) error {
	i := vm.Memory.I()

	if i+x > MemorySize-1 {
		return overflow("register store")
	}

	copy(vm.Memory[i:i+x+1], vm.Memory[VAddress:VAddress+x+1])

	return nil
}

/// load registers v0..vx from I.
///
func (vm *CHIP_8) loadRegs(x uint) error {
	i := vm.Memory.I()

	if i+x > MemorySize-1 {
		return overflow("register load")
	}

	copy(vm.Memory[VAddress:VAddress+x+1], vm.Memory[i:i+x+1])

	return nil
}

/// draw an n-byte sprite at I to the display at vx, vy. VF is set if
/// any pixel was turned off.
///
func (vm *CHIP_8) drw(x, y uint, n byte) error {
	if vm.display == nil {
		return noDisplay()
	}

	i := vm.Memory.I()

	if n > 0 && i+uint(n)-1 > MemorySize-1 {
		return overflow("sprite read")
	}

	// origin wraps, the sprite itself wraps inside the display
	px := int(vm.vx(x)) % ScreenWidth
	py := int(vm.vx(y)) % ScreenHeight

	c := false

	// draw each row of the sprite, MSB is the leftmost pixel
	for row, s := range vm.Memory[i : i+uint(n)] {
		for col := 0; col < 8; col++ {
			if s&(0x80>>uint(col)) != 0 {
				if vm.display.TogglePixel(px+col, py+row) {
					c = true
				}
			}
		}
	}

	// set carry flag if any collision occurred
	vm.flag(c)

	return nil
}

func unsupported() error {
	return &OpcodeError{Err: ErrUnsupportedOpcode}
}

func overflow(detail string) error {
	return &OpcodeError{Err: ErrAddressOverflow, Detail: detail}
}

func noDisplay() error {
	return &OpcodeError{Err: ErrNoDisplay}
}
