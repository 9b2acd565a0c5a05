package chip8

import (
	"errors"
	"fmt"
)

/// Status is the outcome of a single Step.
///
type Status uint8

const (
	/// StatusOK means an instruction was executed.
	///
	StatusOK Status = iota

	/// StatusAwaitingKey means the VM is parked on an FX0A instruction
	/// until a key is pressed. Step should be called again once the key
	/// bitmask changes.
	///
	StatusAwaitingKey

	/// StatusUnsupportedOpcode means the fetched instruction isn't valid,
	/// or can't be executed (drawing without an attached display).
	///
	StatusUnsupportedOpcode

	/// StatusAddressOverflow means the instruction would have run the
	/// program counter, stack, or index register past addressable memory.
	///
	StatusAddressOverflow
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusAwaitingKey:
		return "awaiting key"
	case StatusUnsupportedOpcode:
		return "unsupported opcode"
	case StatusAddressOverflow:
		return "address overflow"
	}

	return fmt.Sprintf("status(%d)", uint8(s))
}

var (
	ErrUnsupportedOpcode = errors.New("unsupported opcode")
	ErrAddressOverflow   = errors.New("address overflow")
	ErrNoDisplay         = errors.New("no display attached")
)

/// OpcodeError is returned by Step when an instruction can't be executed.
///
type OpcodeError struct {
	/// Address the instruction was fetched from.
	///
	Address uint

	/// Inst is the 16-bit instruction.
	///
	Inst uint

	/// Err is the reason (ErrUnsupportedOpcode, ErrAddressOverflow, ...).
	///
	Err error

	/// Detail is an optional description of what overflowed.
	///
	Detail string
}

func (e *OpcodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%04X: %04X - %v: %s", e.Address, e.Inst, e.Err, e.Detail)
	}

	return fmt.Sprintf("%04X: %04X - %v", e.Address, e.Inst, e.Err)
}

func (e *OpcodeError) Unwrap() error {
	return e.Err
}

/// status maps an error returned by an instruction to a Step status.
///
func status(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrAddressOverflow):
		return StatusAddressOverflow
	}

	return StatusUnsupportedOpcode
}
