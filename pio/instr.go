package pio

import (
	"errors"
	"math"
)

// This file contains the primitives for creating instructions dynamically
const (
	_INSTR_BITS_JMP = 0x0000
	_INSTR_BITS_OUT = 0x6000
	_INSTR_BITS_MOV = 0xa000
	_INSTR_BITS_SET = 0xe000

	// Bit mask for instruction code
	_INSTR_BITS_Msk = 0xe000
)

type SrcDest uint8

const (
	SrcDestPins    SrcDest = 0
	SrcDestX       SrcDest = 1
	SrcDestY       SrcDest = 2
	SrcDestNull    SrcDest = 3
	SrcDestPinDirs SrcDest = 4
	SrcDestISR     SrcDest = 6
	SrcDestOSR     SrcDest = 7
)

type JmpCond uint8

const (
	// No condition, always jumps.
	JmpAlways JmpCond = iota
	// Jump if X is zero.
	JmpXZero
	// Jump if X is not zero, prior to decrement of X.
	JmpXNZeroDec
	// Jump if Y is zero.
	JmpYZero
	// Jump if Y is not zero, prior to decrement of Y.
	JmpYNZeroDec
	// Jump if X is not equal to Y.
	JmpXNotEqualY
	// Jump if EXECCTRL_JMP_PIN (state machine configured) is high.
	JmpPinInput
	// Jump if there are bits left to shift out of the OSR.
	JmpOSRNotEmpty
)

// Errors returned by the clock divider helpers.
var (
	ErrClkDivTooLarge = errors.New("pio: clkdiv too large period or CPU frequency")
	ErrClkDivTooSmall = errors.New("pio: clkdiv too small period or CPU frequency")
)

func encodeInstrAndArgs(instr uint16, arg1 uint8, arg2 uint8) uint16 {
	return instr | (uint16(arg1&0b111) << 5) | uint16(arg2&0x1f)
}

func encodeInstrAndSrcDest(instr uint16, dest SrcDest, value uint8) uint16 {
	return encodeInstrAndArgs(instr, uint8(dest)&7, value)
}

// EncodeDelay encodes a delay in cycles into the delay/side-set field.
// The caller must leave room for side-set bits (5 minus side-set bit count).
func EncodeDelay(cycles uint8) uint16 {
	return uint16(cycles&0x1f) << 8
}

// EncodeSideSet encodes a mandatory side-set value occupying the top
// bitCount bits of the delay/side-set field.
func EncodeSideSet(bitCount, value uint8) uint16 {
	return uint16(value) << (13 - bitCount)
}

// EncodeJmp encodes a jump to addr, relative to the program start.
func EncodeJmp(addr uint8, condition JmpCond) uint16 {
	return encodeInstrAndArgs(_INSTR_BITS_JMP, uint8(condition), addr)
}

func EncodeOut(dest SrcDest, bitCount uint8) uint16 {
	return encodeInstrAndSrcDest(_INSTR_BITS_OUT, dest, bitCount)
}

func EncodeMov(dest SrcDest, src SrcDest) uint16 {
	return encodeInstrAndSrcDest(_INSTR_BITS_MOV, dest, uint8(src)&7)
}

func EncodeSet(dest SrcDest, value uint8) uint16 {
	return encodeInstrAndSrcDest(_INSTR_BITS_SET, dest, value)
}

// EncodeNOP encodes "mov y, y".
func EncodeNOP() uint16 {
	return EncodeMov(SrcDestY, SrcDestY)
}

// ClkDivFromPeriod calculates the CLKDIV register values
// to reach a given StateMachine cycle period given the RP2040 CPU frequency.
// period is expected to be in nanoseconds. freq is expected to be in Hz.
//
// Prefer using ClkDivFromFrequency if possible for speed and accuracy.
func ClkDivFromPeriod(period, cpuFreq uint32) (whole uint16, frac uint8, err error) {
	//  freq = 256*clockfreq / (256*whole + frac)
	// where period = 1e9/freq => freq = 1e9/period, so:
	//  256*whole + frac = 256*clockfreq*period/1e9
	return splitClkdiv(256 * uint64(period) * uint64(cpuFreq) / uint64(1e9))
}

// ClkDivFromFrequency calculates the CLKDIV register values
// to reach a given StateMachine cycle frequency. freq and cpuFreq are expected to be in Hz.
func ClkDivFromFrequency(freq, cpuFreq uint32) (whole uint16, frac uint8, err error) {
	//  256*whole + frac = 256*clockfreq / freq
	return splitClkdiv(256 * uint64(cpuFreq) / uint64(freq))
}

func splitClkdiv(clkdiv uint64) (whole uint16, frac uint8, err error) {
	if clkdiv > 256*math.MaxUint16 {
		return 0, 0, ErrClkDivTooLarge
	} else if clkdiv < 256 {
		return 0, 0, ErrClkDivTooSmall
	}
	whole = uint16(clkdiv / 256)
	frac = uint8(clkdiv % 256)
	return whole, frac, nil
}
