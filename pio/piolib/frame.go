package piolib

import "image/color"

// MatrixSize is the side length of the square LED matrix.
const MatrixSize = 5

// MatrixPixels is the number of LEDs in the matrix strip.
const MatrixPixels = MatrixSize * MatrixSize

// DefaultDigitColor is a dim white, bright enough for a 5x5 matrix viewed up close.
var DefaultDigitColor = color.RGBA{R: 16, G: 16, B: 16}

// Frame holds one raw WS2812 word per LED, in strip order.
type Frame [MatrixPixels]uint32

// Rows of each digit glyph, top row first. Bit 4 is the leftmost column.
var digitGlyphs = [10][MatrixSize]uint8{
	{0b01110, 0b10001, 0b10001, 0b10001, 0b01110}, // 0
	{0b00100, 0b01100, 0b00100, 0b00100, 0b01110}, // 1
	{0b01110, 0b00001, 0b01110, 0b10000, 0b11111}, // 2
	{0b11110, 0b00001, 0b01110, 0b00001, 0b11110}, // 3
	{0b10010, 0b10010, 0b11111, 0b00010, 0b00010}, // 4
	{0b11111, 0b10000, 0b11110, 0b00001, 0b11110}, // 5
	{0b01110, 0b10000, 0b11110, 0b10001, 0b01110}, // 6
	{0b11111, 0b00001, 0b00010, 0b00100, 0b00100}, // 7
	{0b01110, 0b10001, 0b01110, 0b10001, 0b01110}, // 8
	{0b01110, 0b10001, 0b01111, 0b00001, 0b01110}, // 9
}

// Glyph returns the rows of digit n, top row first, with bit 4 as the
// leftmost column. ok is false for n > 9.
func Glyph(n uint8) (rows [MatrixSize]uint8, ok bool) {
	if n > 9 {
		return rows, false
	}
	return digitGlyphs[n], true
}

// GlyphLit reports whether the pixel at column x, row y (0,0 is top left) of
// digit n is lit.
func GlyphLit(n uint8, x, y int) bool {
	rows, ok := Glyph(n)
	if !ok || x < 0 || y < 0 || x >= MatrixSize || y >= MatrixSize {
		return false
	}
	return rows[y]&(1<<(MatrixSize-1-x)) != 0
}

// PixelIndex maps column x, row y (0,0 is top left) to the strip position.
// The strip starts at the bottom right corner and snakes upwards, reversing
// direction on every row.
func PixelIndex(x, y int) int {
	row := MatrixSize - 1 - y
	if row%2 == 0 {
		return row*MatrixSize + (MatrixSize - 1 - x)
	}
	return row*MatrixSize + x
}

// RawGRB converts c to the left-aligned GRB word the WS2812 program shifts out.
func RawGRB(c color.RGBA) uint32 {
	return uint32(c.G)<<24 | uint32(c.R)<<16 | uint32(c.B)<<8
}

// DigitFrame returns the frame showing digit n in colour c. Digits above 9
// yield a blank frame.
func DigitFrame(n uint8, c color.RGBA) Frame {
	var f Frame
	raw := RawGRB(c)
	for y := 0; y < MatrixSize; y++ {
		for x := 0; x < MatrixSize; x++ {
			if GlyphLit(n, x, y) {
				f[PixelIndex(x, y)] = raw
			}
		}
	}
	return f
}
