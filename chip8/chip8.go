package chip8

import (
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"
)

/// CHIP_8 virtual machine emulator.
///
type CHIP_8 struct {
	/// Memory addressable by CHIP-8. The first 512 bytes hold the
	/// interpreter state (PC, I, stack counter, timers, keys, registers),
	/// the font sprites, and the call stack.
	///
	Memory Memory

	/// Cycles is how many instructions have been executed since Init.
	///
	Cycles int64

	/// W is the wait key (V-register) pointer. When waiting for a key
	/// to be pressed, it will be set to &V[0..F].
	///
	W *byte

	/// ROM is the last program loaded. Reset restores it.
	///
	ROM []byte

	// the display sprites are drawn to
	display Display

	// random numbers for RND
	rnd *rand.Rand

	log    *log.Logger
	quirks Quirks
	traced bool
}

/// Quirks select behaviors of the original interpreter that differ
/// from the documented CHIP-8 instruction set.
///
type Quirks struct {
	/// LogicalRandom makes RND store (rnd && n), which is only ever 0
	/// or 1, instead of masking the random byte with n.
	///
	LogicalRandom bool

	/// KeyWaitStoresMask makes LD Vx, K store the low byte of the key
	/// bitmask instead of the index of the key pressed.
	///
	KeyWaitStoresMask bool
}

/// Option configures a new CHIP_8.
///
type Option func(*CHIP_8)

/// WithLogger sets the logger used for load, error, and trace messages.
///
func WithLogger(logger *log.Logger) Option {
	return func(vm *CHIP_8) {
		vm.log = logger
	}
}

/// WithRand sets the random source used by RND.
///
func WithRand(src rand.Source) Option {
	return func(vm *CHIP_8) {
		vm.rnd = rand.New(src)
	}
}

/// WithQuirks enables compatibility quirks.
///
func WithQuirks(q Quirks) Option {
	return func(vm *CHIP_8) {
		vm.quirks = q
	}
}

/// WithTrace logs every executed instruction at debug level.
///
func WithTrace(on bool) Option {
	return func(vm *CHIP_8) {
		vm.traced = on
	}
}

/// New creates a CHIP-8 virtual machine with an empty program.
///
func New(opts ...Option) *CHIP_8 {
	vm := &CHIP_8{}

	for _, opt := range opts {
		opt(vm)
	}

	if vm.log == nil {
		cfg := log.DefaultConfig()
		cfg.Level = log.ErrorLevel

		vm.log = log.NewWithConfig(cfg)
	}

	if vm.rnd == nil {
		vm.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	vm.Init()

	return vm
}

/// Init zeroes all of memory (including any loaded program), loads the
/// font sprites, and points the program counter at 0x200. The attached
/// display is kept.
///
func (vm *CHIP_8) Init() {
	vm.Memory.Clear()

	// copy the font sprites
	copy(vm.Memory[FontAddress:], font[:])

	// all programs begin at 0x200
	vm.Memory.SetPC(ProgramAddress)

	// not waiting for a key
	vm.W = nil

	vm.Cycles = 0
}

/// Load copies a program into memory at 0x200. Bytes that don't fit are
/// dropped. Returns the number of bytes loaded.
///
func (vm *CHIP_8) Load(program []byte) int {
	n := copy(vm.Memory[ProgramAddress:], program)

	if n < len(program) {
		vm.log.Info("Program truncated",
			log.Int("size", len(program)),
			log.Int("loaded", n))
	}

	// keep a copy for Reset
	vm.ROM = append(vm.ROM[:0], program[:n]...)

	return n
}

/// LoadFile reads a ROM file from disk and loads it.
///
func (vm *CHIP_8) LoadFile(file string) error {
	program, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	n := vm.Load(program)

	vm.log.Info("Loaded ROM",
		log.String("file", file),
		log.Int("size", n))

	return nil
}

/// Reset the virtual machine and reload the last program.
///
func (vm *CHIP_8) Reset() {
	rom := vm.ROM

	vm.Init()
	vm.Load(rom)
}

/// AttachDisplay sets the display CLS and DRW render to.
///
func (vm *CHIP_8) AttachDisplay(d Display) {
	vm.display = d
}

/// Display returns the attached display, if any.
///
func (vm *CHIP_8) Display() Display {
	return vm.display
}

/// Dump returns a copy of the entire address space.
///
func (vm *CHIP_8) Dump() Memory {
	return vm.Memory
}

/// PC returns the program counter.
///
func (vm *CHIP_8) PC() uint {
	return vm.Memory.PC()
}

/// I returns the address register.
///
func (vm *CHIP_8) I() uint {
	return vm.Memory.I()
}

/// V returns the value of register Vx.
///
func (vm *CHIP_8) V(x uint) byte {
	return *vm.Memory.V(x)
}

/// StackDepth returns the number of return addresses on the stack.
///
func (vm *CHIP_8) StackDepth() int {
	return int(vm.Memory.SC() / 2)
}

/// Waiting is true while an LD Vx, K instruction waits for a key.
///
func (vm *CHIP_8) Waiting() bool {
	return vm.W != nil
}

/// PressKey emulates a CHIP-8 key being pressed.
///
func (vm *CHIP_8) PressKey(key uint) {
	if key < 16 {
		vm.SetKeys(vm.Memory.Keys() | 1<<key)
	}
}

/// ReleaseKey emulates a CHIP-8 key being released.
///
func (vm *CHIP_8) ReleaseKey(key uint) {
	if key < 16 {
		vm.Memory.SetKeys(vm.Memory.Keys() &^ (1 << key))
	}
}

/// SetKeys replaces the entire keyboard bitmask. If waiting for a key
/// and any key is down, the wait completes immediately.
///
func (vm *CHIP_8) SetKeys(mask uint16) {
	vm.Memory.SetKeys(mask)

	if vm.W != nil {
		vm.keyHit(mask)
	}
}

/// Keys returns the keyboard bitmask.
///
func (vm *CHIP_8) Keys() uint16 {
	return vm.Memory.Keys()
}

/// DelayTimer returns the delay timer register.
///
func (vm *CHIP_8) DelayTimer() byte {
	return vm.Memory[DTAddress]
}

/// SoundTimer returns the sound timer register.
///
func (vm *CHIP_8) SoundTimer() byte {
	return vm.Memory[STAddress]
}

/// SetDelayTimer sets the delay timer register.
///
func (vm *CHIP_8) SetDelayTimer(n byte) {
	vm.Memory[DTAddress] = n
}

/// SetSoundTimer sets the sound timer register.
///
func (vm *CHIP_8) SetSoundTimer(n byte) {
	vm.Memory[STAddress] = n
}

/// Tick counts down both timers. The host should call it at 60 Hz,
/// independent of how fast instructions are stepped.
///
func (vm *CHIP_8) Tick() {
	if vm.Memory[DTAddress] > 0 {
		vm.Memory[DTAddress]--
	}

	if vm.Memory[STAddress] > 0 {
		vm.Memory[STAddress]--
	}
}

/// Step the CHIP-8 virtual machine a single instruction.
///
func (vm *CHIP_8) Step() (Status, error) {
	if vm.W != nil {
		if !vm.keyHit(vm.Memory.Keys()) {
			return StatusAwaitingKey, nil
		}

		// the wait instruction has now completed
		vm.Cycles += 1

		return StatusOK, nil
	}

	address := vm.Memory.PC()

	// the instruction and the address after it must both be in memory
	if address+2 > MemorySize-1 {
		err := &OpcodeError{Address: address, Err: ErrAddressOverflow, Detail: "program counter"}

		vm.log.Error("Program counter overflow", log.Hex("pc", address))

		return StatusAddressOverflow, err
	}

	// fetch the next instruction
	inst := vm.fetch()

	if vm.traced {
		vm.trace(address, inst)
	}

	if err := vm.exec(inst); err != nil {
		var opErr *OpcodeError

		if errors.As(err, &opErr) {
			opErr.Address = address
			opErr.Inst = inst
		}

		vm.log.Error("Instruction failed",
			log.Hex("pc", address),
			log.Hex("inst", inst),
			log.Err(err))

		return status(err), err
	}

	if vm.W != nil {
		return StatusAwaitingKey, nil
	}

	// increment the cycle count
	vm.Cycles += 1

	return StatusOK, nil
}

/// Fetch the next 16-bit instruction to execute.
///
func (vm *CHIP_8) fetch() uint {
	i := vm.Memory.PC()

	// advance the program counter
	vm.Memory.SetPC(i + 2)

	// return the 16-bit instruction
	return uint(vm.Memory[i])<<8 | uint(vm.Memory[i+1])
}

/// Complete a pending key wait if any key in mask is down.
///
func (vm *CHIP_8) keyHit(mask uint16) bool {
	if mask == 0 {
		return false
	}

	if vm.quirks.KeyWaitStoresMask {
		*vm.W = byte(mask)
	} else {
		key := byte(0)

		// lowest numbered key wins
		for mask&1 == 0 {
			mask >>= 1
			key++
		}

		*vm.W = key
	}

	// clear wait flag
	vm.W = nil

	return true
}
