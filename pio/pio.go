//go:build rp2040

// Package pio drives the RP2040 programmable IO blocks far enough to run
// transmit-only programs such as the WS2812 matrix driver: claiming state
// machines, loading relocatable programs and feeding the TX FIFO.
package pio

import (
	"device/rp"
	"errors"
	"machine"
	"runtime/volatile"
	"unsafe"
)

// PIO0 is the PIO block the fixture drives its matrix from.
var PIO0 = &PIO{
	hw: rp.PIO0,
}

// PIO errors.
var (
	ErrOutOfProgramSpace   = errors.New("pio: out of program space")
	errStateMachineClaimed = errors.New("pio: state machine already claimed")
)

const (
	badStateMachineIndex = "invalid state machine index"
	badPIO               = "invalid PIO"
)

// PIO represents a PIO peripheral of the RP2040.
type PIO struct {
	hw *rp.PIO0_Type
	// Bitmask of used instruction space. Each PIO has 32 slots for instructions.
	usedSpaceMask uint32
	// Bitmask of used state machines. Each PIO has 4 state machines.
	claimedSMMask uint8
}

// BlockIndex returns the index of the underlying PIO block.
func (pio *PIO) BlockIndex() uint8 {
	if pio.hw != rp.PIO0 {
		panic(badPIO)
	}
	return 0
}

// StateMachine returns a state machine by index.
func (pio *PIO) StateMachine(index uint8) StateMachine {
	if index > 3 {
		panic(badStateMachineIndex)
	}
	return StateMachine{
		pio:   pio,
		index: index,
	}
}

// ClaimStateMachine returns an unused state machine
// or an error if all state machines on this PIO are claimed.
func (pio *PIO) ClaimStateMachine() (sm StateMachine, err error) {
	for i := uint8(0); i < 4; i++ {
		sm = pio.StateMachine(i)
		if sm.TryClaim() {
			return sm, nil
		}
	}
	return StateMachine{}, errStateMachineClaimed
}

// AddProgram loads prog into PIO memory and returns the offset where it was
// loaded. Jump targets are patched for the load offset.
func (pio *PIO) AddProgram(prog Program) (offset uint8, _ error) {
	maybeOffset := pio.findOffsetForProgram(prog.Instructions, prog.Origin)
	if maybeOffset < 0 {
		return 0, ErrOutOfProgramSpace
	}
	offset = uint8(maybeOffset)
	programLen := uint8(len(prog.Instructions))
	for i := uint8(0); i < programLen; i++ {
		pio.writeInstructionMemory(offset+i, RelocateJmp(prog.Instructions[i], offset))
	}
	programMask := uint32((1 << programLen) - 1)
	pio.usedSpaceMask |= programMask << uint32(offset)
	return offset, nil
}

func (pio *PIO) writeInstructionMemory(offset uint8, value uint16) {
	// Instruction Memory registers are 32-bit, with only lower 16 used
	start := unsafe.Pointer(&pio.hw.INSTR_MEM0)
	reg := (*volatile.Register32)(unsafe.Pointer(uintptr(start) + uintptr(offset)*4))
	reg.Set(uint32(value))
}

func (pio *PIO) findOffsetForProgram(instructions []uint16, origin int8) int8 {
	programLen := uint32(len(instructions))
	programMask := uint32((1 << programLen) - 1)

	// Program has fixed offset (not relocatable)
	if origin >= 0 {
		if uint32(origin) > 32-programLen {
			return -1
		}
		if (pio.usedSpaceMask & (programMask << origin)) != 0 {
			return -1
		}
		return origin
	}

	// work down from the top always
	for i := int8(32 - programLen); i >= 0; i-- {
		if pio.usedSpaceMask&(programMask<<uint32(i)) == 0 {
			return i
		}
	}
	return -1
}

type statemachineHW struct {
	CLKDIV    volatile.Register32 // 0xC8 for SM0
	EXECCTRL  volatile.Register32 // 0xCC for SM0
	SHIFTCTRL volatile.Register32 // 0xD0 for SM0
	ADDR      volatile.Register32 // 0xD4 for SM0
	INSTR     volatile.Register32 // 0xD8 for SM0
	PINCTRL   volatile.Register32 // 0xDC for SM0
}

func (pio *PIO) smHW(index uint8) *statemachineHW {
	if index > 3 {
		panic(badStateMachineIndex)
	}
	// 24 bytes (6 registers) per state machine
	const size = unsafe.Sizeof(statemachineHW{})
	ptrBase := unsafe.Pointer(&pio.hw.SM0_CLKDIV) // 0xC8
	ptr := uintptr(ptrBase) + uintptr(index)*size
	return (*statemachineHW)(unsafe.Pointer(ptr))
}

// PinMode returns the pin function routing a GPIO to this PIO block.
func (pio *PIO) PinMode() machine.PinMode {
	return machine.PinPIO0 + machine.PinMode(pio.BlockIndex())
}
