package pio

import (
	"testing"
)

func TestWS2812Program(t *testing.T) {
	prog := WS2812Program()
	var expectedProgram = []uint16{
		//     .wrap_target
		0x6221, //  0: out    x, 1            side 0 [2]
		0x1123, //  1: jmp    !x, 3           side 1 [1]
		0x1400, //  2: jmp    0               side 1 [4]
		0xa442, //  3: nop                    side 0 [4]
		//     .wrap
	}
	if len(prog.Instructions) != len(expectedProgram) {
		t.Fatalf("program length mismatch got!=expected: %d != %d", len(prog.Instructions), len(expectedProgram))
	}
	for i := range expectedProgram {
		if prog.Instructions[i] != expectedProgram[i] {
			t.Errorf("instr %d mismatch got!=expected: %#x != %#x", i, prog.Instructions[i], expectedProgram[i])
		}
	}
	if prog.WrapTarget != 0 || prog.Wrap != 3 || prog.Origin != -1 {
		t.Errorf("bad program bounds: %+v", prog)
	}
}

func TestRelocateJmp(t *testing.T) {
	const offset = 28
	tests := []struct {
		instr, want uint16
	}{
		{0x6221, 0x6221}, // out is not relocated
		{0x1123, 0x1123 + offset},
		{0x1400, 0x1400 + offset},
		{0xa442, 0xa442},
	}
	for _, tt := range tests {
		if got := RelocateJmp(tt.instr, offset); got != tt.want {
			t.Errorf("RelocateJmp(%#x): got %#x, want %#x", tt.instr, got, tt.want)
		}
	}
}

func TestClkDiv(t *testing.T) {
	const cpuFreq = 125_000_000
	whole, frac, err := ClkDivFromFrequency(WS2812BitRate*WS2812CyclesPerBit, cpuFreq)
	if err != nil {
		t.Fatal(err)
	}
	// 125MHz / 8MHz = 15.625
	if whole != 15 || frac != 160 {
		t.Errorf("ClkDivFromFrequency: got %d+%d/256, want 15+160/256", whole, frac)
	}

	// 128ns period at 125MHz is a 16x divider.
	whole, frac, err = ClkDivFromPeriod(128, cpuFreq)
	if err != nil {
		t.Fatal(err)
	}
	if whole != 16 || frac != 0 {
		t.Errorf("ClkDivFromPeriod: got %d+%d/256, want 16+0/256", whole, frac)
	}

	if _, _, err = ClkDivFromFrequency(cpuFreq*2, cpuFreq); err != ErrClkDivTooSmall {
		t.Errorf("faster than CPU: got %v, want %v", err, ErrClkDivTooSmall)
	}
	if _, _, err = ClkDivFromFrequency(1, cpuFreq); err != ErrClkDivTooLarge {
		t.Errorf("1Hz: got %v, want %v", err, ErrClkDivTooLarge)
	}
}
