package main

import (
	"fmt"
)

var (
	/// True if pausing emulation (single stepping).
	///
	Paused bool
)

/// Lines of the log visible in the debug panel.
///
const LogLines = 16

/// Show the HELP text in the log.
///
func DebugHelp() {
	Console.Logln("Virtual keys:")
	Console.Log("  1-2-3-4")
	Console.Log("  Q-W-E-R")
	Console.Log("  A-S-D-F")
	Console.Log("  Z-X-C-V")
	Console.Logln("Emulation keys:")
	Console.Log("  ESC      - Unload ROM")
	Console.Log("  BS       - Reset (CTRL to pause)")
	Console.Log("  Pg Up/Dn - Scroll log")
	Console.Log("  H        - Help")
	Console.Log("  F2       - Reload ROM")
	Console.Log("  F3       - Open ROM")
	Console.Log("  F5/SPACE - Pause")
	Console.Log("  F6/F10   - Step")
	Console.Log("  [ / ]    - Speed")
}

/// Show the current value of all the CHIP-8 registers.
///
func DebugRegisters(x, y int32) {
	for i := uint(0); i < 16; i++ {
		DrawText(fmt.Sprintf("  V%X - #%02X", i, VM.V(i)), x, y+int32(i)*10)
	}

	// shift over for the control registers
	x += 70

	DrawText(fmt.Sprintf("PC - #%03X", VM.PC()), x, y)
	DrawText(fmt.Sprintf("SP - %d", VM.StackDepth()), x, y+10)
	DrawText(fmt.Sprintf("I  - #%03X", VM.I()), x, y+30)
	DrawText(fmt.Sprintf("DT - #%02X", VM.DelayTimer()), x, y+50)
	DrawText(fmt.Sprintf("ST - #%02X", VM.SoundTimer()), x, y+60)
	DrawText(fmt.Sprintf("K  - #%04X", VM.Keys()), x, y+80)
}

/// Show the emulation state: ROM, speed, and run mode.
///
func DebugStatus(x, y int32) {
	rom := File
	if rom == "" {
		rom = "BOOT"
	}

	// trim long paths from the left
	if len(rom) > 26 {
		rom = "..." + rom[len(rom)-23:]
	}

	DrawText(rom, x, y)
	DrawText(fmt.Sprintf("SPEED  %d", Speed), x, y+20)
	DrawText(fmt.Sprintf("CYCLES %d", VM.Cycles), x, y+30)

	switch {
	case Paused:
		DrawText("PAUSED", x, y+50)
	case VM.Waiting():
		DrawText("WAITING FOR KEY", x, y+50)
	default:
		DrawText("RUNNING", x, y+50)
	}

	DrawText("H FOR HELP", x, y+140)
}

/// Show the current log text.
///
func DebugLog(x, y int32) {
	for _, line := range Console.Window(LogLines) {
		if len(line) >= 54 {
			DrawText(line[:51]+"...", x, y)
		} else {
			DrawText(line, x, y)
		}

		// advance to the next line
		y += 10
	}
}
