package pio

// WS2812 bit timing in state machine cycles. A bit is T1+T2+T3 cycles long:
// a one is high for T1+T2, a zero is high for T1 only.
const (
	WS2812T1 = 2
	WS2812T2 = 5
	WS2812T3 = 3

	WS2812CyclesPerBit = WS2812T1 + WS2812T2 + WS2812T3
	// WS2812BitRate is the nominal data rate of WS2812 LEDs in bits per second.
	WS2812BitRate = 800_000

	// WS2812SidesetBits is the side-set width of the WS2812 program.
	WS2812SidesetBits = 1
)

// Program is a relocatable PIO program with its wrap bounds, relative to the
// program start.
type Program struct {
	Instructions []uint16
	// Origin is the fixed load offset or -1 when relocatable.
	Origin     int8
	WrapTarget uint8
	Wrap       uint8
}

// WS2812Program returns the WS2812 transmit program. The data pin is driven
// by side-set; each 24-bit GRB word is shifted out MSB first.
//
//	.side_set 1
//	.wrap_target
//	bitloop:
//	    out x, 1       side 0 [T3 - 1]
//	    jmp !x do_zero side 1 [T1 - 1]
//	do_one:
//	    jmp bitloop    side 1 [T2 - 1]
//	do_zero:
//	    nop            side 0 [T2 - 1]
//	.wrap
func WS2812Program() Program {
	const (
		bitloop = 0
		doZero  = 3
	)
	side := func(v uint8) uint16 { return EncodeSideSet(WS2812SidesetBits, v) }
	return Program{
		Instructions: []uint16{
			bitloop: EncodeOut(SrcDestX, 1) | side(0) | EncodeDelay(WS2812T3-1),
			EncodeJmp(doZero, JmpXZero) | side(1) | EncodeDelay(WS2812T1-1),
			EncodeJmp(bitloop, JmpAlways) | side(1) | EncodeDelay(WS2812T2-1),
			doZero: EncodeNOP() | side(0) | EncodeDelay(WS2812T2-1),
		},
		Origin:     -1,
		WrapTarget: 0,
		Wrap:       3,
	}
}

// RelocateJmp returns instr with its jump target moved by offset. Non-jump
// instructions are returned unchanged.
func RelocateJmp(instr uint16, offset uint8) uint16 {
	if instr&_INSTR_BITS_Msk == _INSTR_BITS_JMP {
		return instr + uint16(offset)
	}
	return instr
}
