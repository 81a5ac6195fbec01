package piolib

import (
	"image/color"
	"testing"
)

func TestPixelIndex(t *testing.T) {
	tests := []struct {
		x, y, want int
	}{
		{x: 4, y: 4, want: 0},  // bottom right starts the strip
		{x: 0, y: 4, want: 4},  // bottom row runs right to left
		{x: 0, y: 3, want: 5},  // second row runs left to right
		{x: 4, y: 3, want: 9},
		{x: 4, y: 2, want: 10},
		{x: 2, y: 2, want: 12}, // centre
		{x: 0, y: 0, want: 24}, // top left ends the strip
		{x: 4, y: 0, want: 20},
	}
	for _, tt := range tests {
		if got := PixelIndex(tt.x, tt.y); got != tt.want {
			t.Errorf("PixelIndex(%d, %d): got %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPixelIndexIsPermutation(t *testing.T) {
	var seen [MatrixPixels]bool
	for y := 0; y < MatrixSize; y++ {
		for x := 0; x < MatrixSize; x++ {
			i := PixelIndex(x, y)
			if i < 0 || i >= MatrixPixels || seen[i] {
				t.Fatalf("PixelIndex(%d, %d) = %d duplicated or out of range", x, y, i)
			}
			seen[i] = true
		}
	}
}

func TestRawGRB(t *testing.T) {
	got := RawGRB(color.RGBA{R: 0x11, G: 0x22, B: 0x33})
	if want := uint32(0x22113300); got != want {
		t.Errorf("RawGRB: got %#08x, want %#08x", got, want)
	}
}

func TestDigitFrame(t *testing.T) {
	c := color.RGBA{R: 1, G: 2, B: 3}
	raw := RawGRB(c)
	for n := uint8(0); n <= 9; n++ {
		f := DigitFrame(n, c)
		lit := 0
		for y := 0; y < MatrixSize; y++ {
			for x := 0; x < MatrixSize; x++ {
				px := f[PixelIndex(x, y)]
				switch {
				case GlyphLit(n, x, y) && px != raw:
					t.Errorf("digit %d: pixel (%d,%d) should be lit", n, x, y)
				case !GlyphLit(n, x, y) && px != 0:
					t.Errorf("digit %d: pixel (%d,%d) should be dark", n, x, y)
				}
				if px != 0 {
					lit++
				}
			}
		}
		if lit == 0 {
			t.Errorf("digit %d renders blank", n)
		}
	}
}

func TestDigitFrame_One(t *testing.T) {
	f := DigitFrame(1, color.RGBA{G: 255})
	// Centre column is lit top to bottom.
	for y := 0; y < MatrixSize; y++ {
		if f[PixelIndex(2, y)] == 0 {
			t.Errorf("digit 1: centre pixel row %d dark", y)
		}
	}
	if f[PixelIndex(0, 0)] != 0 || f[PixelIndex(4, 2)] != 0 {
		t.Error("digit 1: corner pixels lit")
	}
}

func TestDigitFrame_ChosenColor(t *testing.T) {
	amber := color.RGBA{R: 24, G: 10}
	f := DigitFrame(8, amber)
	// Centre of the 8 is lit in GRB order.
	if got, want := f[PixelIndex(1, 2)], uint32(0x0a180000); got != want {
		t.Errorf("amber pixel: got %#08x, want %#08x", got, want)
	}
	if f == DigitFrame(8, DefaultDigitColor) {
		t.Error("chosen colour ignored")
	}
}

func TestDigitFrame_OutOfRangeIsBlank(t *testing.T) {
	f := DigitFrame(10, color.RGBA{R: 255})
	if f != (Frame{}) {
		t.Errorf("digit 10 should be blank, got %v", f)
	}
	if _, ok := Glyph(10); ok {
		t.Error("Glyph(10) reported ok")
	}
}

func TestGlyphsDistinct(t *testing.T) {
	for a := uint8(0); a <= 9; a++ {
		for b := a + 1; b <= 9; b++ {
			ga, _ := Glyph(a)
			gb, _ := Glyph(b)
			if ga == gb {
				t.Errorf("digits %d and %d share a glyph", a, b)
			}
		}
	}
}
