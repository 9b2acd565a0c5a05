package chip8

import (
	"fmt"
	"math/bits"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/log"
)

/// Mnemonic returns the assembler name of an instruction word, or "???"
/// when the word doesn't match any known CHIP-8 instruction.
///
func Mnemonic(inst uint) string {
	w := uint16(inst)
	name, best := "???", -1

	// prefer the most specific mask, so CLS wins over SYS
	for _, op := range chip8.Opcodes[int(w>>12)] {
		if op.Info.Mask&w != op.Info.Value || op.Instruction == nil {
			continue
		}

		if n := bits.OnesCount16(op.Info.Mask); n > best {
			name, best = op.Instruction.Name, n
		}
	}

	return name
}

/// trace logs the instruction about to execute.
///
func (vm *CHIP_8) trace(address, inst uint) {
	vm.log.Debug("exec",
		log.Hex("pc", address),
		log.String("inst", fmt.Sprintf("%04X", inst)),
		log.String("op", Mnemonic(inst)),
		log.Hex("i", vm.Memory.I()),
		log.String("sc", fmt.Sprint(vm.Memory.SC())))
}
