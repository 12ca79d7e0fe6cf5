package oled_tiles

// Tile is one 8x8 cell of the panel. Byte i is pixel row i of the glyph as
// seen on the rotated panel, bit 7 being the leftmost pixel.
type Tile [8]byte

// table sizes
const (
	NumDigits      = 10
	NumLetters     = 27
	NumHeightMarks = 8
	NumVULevels    = 9

	// index of the space glyph in the letter tables
	LetterSpace = 26
)

// symbol positions
const (
	symDash = iota
	symDot
	symBlank
)

var numbers = [NumDigits]Tile{
	{0, 56, 68, 68, 68, 68, 56, 0},
	{0, 48, 80, 16, 16, 16, 124, 0},
	{0, 112, 68, 8, 16, 32, 124, 0},
	{0, 56, 68, 4, 24, 68, 56, 0},
	{0, 8, 24, 40, 72, 124, 8, 0},
	{0, 124, 64, 56, 4, 68, 56, 0},
	{0, 56, 64, 120, 68, 68, 56, 0},
	{0, 124, 4, 8, 16, 32, 64, 0},
	{0, 56, 68, 56, 68, 68, 56, 0},
	{0, 56, 68, 68, 60, 4, 56, 0},
}

var letters = [NumLetters]Tile{
	{0, 56, 68, 68, 124, 68, 68, 0},  // A
	{0, 120, 68, 68, 120, 68, 120, 0}, // B
	{0, 56, 68, 64, 64, 68, 56, 0},   // C
	{0, 120, 68, 68, 68, 68, 120, 0}, // D
	{0, 124, 64, 64, 120, 64, 124, 0}, // E
	{0, 124, 64, 64, 120, 64, 64, 0}, // F
	{0, 56, 68, 64, 92, 68, 56, 0},   // G
	{0, 68, 68, 68, 124, 68, 68, 0},  // H
	{0, 124, 16, 16, 16, 16, 124, 0}, // I
	{0, 4, 4, 4, 4, 68, 56, 0},       // J
	{0, 68, 72, 80, 96, 72, 68, 0},   // K
	{0, 64, 64, 64, 64, 64, 124, 0},  // L
	{0, 68, 108, 84, 68, 68, 68, 0},  // M
	{0, 68, 100, 84, 76, 68, 68, 0},  // N
	{0, 56, 68, 68, 68, 68, 56, 0},   // O
	{0, 120, 68, 68, 120, 64, 64, 0}, // P
	{0, 56, 68, 68, 84, 76, 60, 0},   // Q
	{0, 120, 68, 68, 120, 72, 68, 0}, // R
	{0, 56, 68, 32, 24, 68, 56, 0},   // S
	{0, 124, 16, 16, 16, 16, 16, 0},  // T
	{0, 68, 68, 68, 68, 68, 56, 0},   // U
	{0, 68, 68, 68, 68, 40, 16, 0},   // V
	{0, 68, 68, 84, 84, 84, 40, 0},   // W
	{0, 68, 68, 40, 16, 40, 68, 0},   // X
	{0, 68, 68, 40, 16, 16, 16, 0},   // Y
	{0, 124, 4, 8, 16, 32, 124, 0},   // Z
	{0, 0, 0, 0, 0, 0, 0, 0},         // space
}

// same glyphs with a dotted bar down the right edge
var lettersBar = [NumLetters]Tile{
	{0, 57, 68, 69, 124, 69, 68, 1},
	{0, 121, 68, 69, 120, 69, 120, 1},
	{0, 57, 68, 65, 64, 69, 56, 1},
	{0, 121, 68, 69, 68, 69, 120, 1},
	{0, 125, 64, 65, 120, 65, 124, 1},
	{0, 125, 64, 65, 120, 65, 64, 1},
	{0, 57, 68, 65, 92, 69, 56, 1},
	{0, 69, 68, 69, 124, 69, 68, 1},
	{0, 125, 16, 17, 16, 17, 124, 1},
	{0, 5, 4, 5, 4, 69, 56, 1},
	{0, 69, 72, 81, 96, 73, 68, 1},
	{0, 65, 64, 65, 64, 65, 124, 1},
	{0, 69, 108, 85, 68, 69, 68, 1},
	{0, 69, 100, 85, 76, 69, 68, 1},
	{0, 57, 68, 69, 68, 69, 56, 1},
	{0, 121, 68, 69, 120, 65, 64, 1},
	{0, 57, 68, 69, 84, 77, 60, 1},
	{0, 121, 68, 69, 120, 73, 68, 1},
	{0, 57, 68, 33, 24, 69, 56, 1},
	{0, 125, 16, 17, 16, 17, 16, 1},
	{0, 69, 68, 69, 68, 69, 56, 1},
	{0, 69, 68, 69, 68, 41, 16, 1},
	{0, 69, 68, 85, 84, 85, 40, 1},
	{0, 69, 68, 41, 16, 41, 68, 1},
	{0, 69, 68, 41, 16, 17, 16, 1},
	{0, 125, 4, 9, 16, 33, 124, 1},
	{0, 1, 0, 1, 0, 1, 0, 1},
}

// 2x2 letters: top left, top right, bottom left, bottom right
var letters4 = [NumLetters][4]Tile{
	{{0, 3, 7, 28, 56, 56, 112, 127}, {0, 192, 224, 56, 28, 28, 14, 254}, {127, 96, 96, 96, 96, 96, 96, 96}, {254, 6, 6, 6, 6, 6, 6, 6}},              // A
	{{0, 127, 127, 96, 96, 96, 96, 127}, {0, 248, 252, 12, 6, 6, 12, 252}, {127, 96, 96, 96, 96, 96, 127, 127}, {248, 12, 6, 6, 6, 12, 252, 248}},     // B
	{{0, 15, 31, 56, 112, 96, 96, 96}, {0, 248, 252, 14, 6, 6, 0, 0}, {96, 96, 96, 96, 112, 56, 31, 15}, {0, 0, 0, 6, 6, 14, 252, 248}},              // C
	{{0, 127, 127, 96, 96, 96, 96, 96}, {0, 248, 252, 12, 6, 6, 6, 6}, {96, 96, 96, 96, 96, 96, 127, 127}, {6, 6, 6, 6, 6, 12, 252, 248}},            // D
	{{0, 127, 127, 96, 96, 96, 96, 127}, {0, 254, 254, 0, 0, 0, 0, 248}, {127, 96, 96, 96, 96, 96, 127, 127}, {248, 0, 0, 0, 0, 0, 254, 254}},        // E
	{{0, 127, 127, 96, 96, 96, 96, 127}, {0, 254, 254, 0, 0, 0, 0, 248}, {127, 96, 96, 96, 96, 96, 96, 96}, {248, 0, 0, 0, 0, 0, 0, 0}},              // F
	{{0, 31, 63, 112, 96, 96, 96, 96}, {0, 254, 254, 0, 0, 0, 0, 124}, {96, 96, 96, 96, 96, 112, 63, 31}, {126, 6, 6, 6, 6, 14, 254, 252}},          // G
	{{0, 96, 96, 96, 96, 96, 96, 127}, {0, 6, 6, 6, 6, 6, 6, 254}, {127, 96, 96, 96, 96, 96, 96, 96}, {254, 6, 6, 6, 6, 6, 6, 6}},                    // H
	{{0, 31, 31, 1, 1, 1, 1, 1}, {0, 248, 248, 128, 128, 128, 128, 128}, {1, 1, 1, 1, 1, 1, 31, 31}, {128, 128, 128, 128, 128, 128, 248, 248}},       // I
	{{0, 0, 0, 0, 0, 0, 0, 0}, {0, 62, 62, 6, 6, 6, 6, 6}, {0, 0, 0, 96, 96, 112, 63, 31}, {6, 6, 6, 6, 6, 12, 252, 248}},                            // J
	{{0, 96, 96, 96, 97, 103, 126, 120}, {0, 6, 30, 120, 224, 128, 0, 0}, {120, 124, 102, 103, 97, 96, 96, 96}, {0, 0, 0, 128, 224, 120, 30, 6}},    // K
	{{0, 96, 96, 96, 96, 96, 96, 96}, {0, 0, 0, 0, 0, 0, 0, 0}, {96, 96, 96, 96, 96, 96, 127, 127}, {0, 0, 0, 0, 0, 0, 254, 254}},                    // L
	{{0, 96, 120, 126, 103, 97, 97, 97}, {0, 6, 30, 126, 230, 134, 134, 134}, {96, 96, 96, 96, 96, 96, 96, 96}, {6, 6, 6, 6, 6, 6, 6, 6}},            // M
	{{0, 96, 96, 96, 120, 126, 103, 97}, {0, 6, 6, 6, 6, 6, 134, 230}, {96, 96, 96, 96, 96, 96, 96, 96}, {126, 30, 6, 6, 6, 6, 6, 6}},                // N
	{{0, 31, 63, 112, 96, 96, 96, 96}, {0, 252, 254, 14, 6, 6, 6, 6}, {96, 96, 96, 96, 96, 112, 63, 31}, {6, 6, 6, 6, 6, 14, 254, 252}},              // O
	{{0, 127, 127, 96, 96, 96, 96, 127}, {0, 252, 254, 14, 6, 6, 14, 252}, {127, 96, 96, 96, 96, 96, 96, 96}, {248, 0, 0, 0, 0, 0, 0, 0}},            // P
	{{0, 31, 63, 112, 96, 96, 96, 96}, {0, 252, 254, 14, 6, 6, 6, 6}, {96, 96, 96, 96, 96, 112, 63, 31}, {6, 198, 230, 118, 62, 30, 254, 252}},      // Q
	{{0, 127, 127, 96, 96, 96, 96, 127}, {0, 248, 252, 12, 6, 6, 12, 252}, {127, 124, 111, 99, 96, 96, 96, 96}, {248, 0, 0, 192, 240, 60, 14, 6}},   // R
	{{0, 31, 63, 112, 96, 96, 96, 63}, {0, 248, 252, 14, 6, 0, 0, 252}, {31, 0, 0, 0, 96, 112, 63, 31}, {254, 14, 6, 6, 6, 14, 252, 248}},           // S
	{{0, 127, 127, 1, 1, 1, 1, 1}, {0, 254, 254, 128, 128, 128, 128, 128}, {1, 1, 1, 1, 1, 1, 1, 1}, {128, 128, 128, 128, 128, 128, 128, 128}},       // T
	{{0, 96, 96, 96, 96, 96, 96, 96}, {0, 6, 6, 6, 6, 6, 6, 6}, {96, 96, 96, 96, 96, 112, 63, 31}, {6, 6, 6, 6, 6, 14, 254, 252}},                    // U
	{{0, 96, 96, 96, 96, 96, 96, 96}, {0, 6, 6, 6, 6, 6, 6, 6}, {96, 96, 96, 112, 56, 30, 7, 1}, {6, 6, 6, 14, 28, 120, 224, 128}},                   // V
	{{0, 96, 96, 96, 96, 96, 96, 96}, {0, 6, 6, 6, 6, 6, 6, 6}, {96, 96, 97, 97, 103, 126, 120, 96}, {6, 6, 134, 134, 230, 126, 30, 6}},              // W
	{{0, 96, 96, 96, 96, 120, 30, 7}, {0, 6, 6, 6, 6, 30, 120, 224}, {1, 7, 30, 120, 96, 96, 96, 96}, {224, 248, 30, 6, 6, 6, 6, 6}},                 // X
	{{0, 96, 96, 96, 96, 120, 30, 7}, {0, 6, 6, 6, 6, 30, 120, 224}, {1, 1, 1, 1, 1, 1, 1, 1}, {128, 128, 128, 128, 128, 128, 128, 128}},             // Y
	{{0, 127, 127, 0, 0, 0, 0, 1}, {0, 254, 254, 6, 6, 30, 120, 224}, {7, 30, 120, 96, 96, 96, 127, 127}, {128, 0, 0, 0, 0, 0, 254, 254}},           // Z
	{{0, 0, 0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0, 0, 0}, {0, 0, 0, 0, 0, 0, 0, 0}},                                         // space
}

var symbols = [3]Tile{
	{0, 0, 0, 0, 255, 0, 0, 0}, // dash
	{0, 0, 0, 24, 24, 0, 0, 0}, // dot
	{0, 0, 0, 0, 0, 0, 0, 0},   // blank
}

var heightMarks = [NumHeightMarks]Tile{
	{0, 0, 0, 0, 0, 0, 0, 126},
	{0, 0, 0, 0, 0, 0, 126, 0},
	{0, 0, 0, 0, 0, 126, 0, 0},
	{0, 0, 0, 0, 126, 0, 0, 0},
	{0, 0, 0, 126, 0, 0, 0, 0},
	{0, 0, 126, 0, 0, 0, 0, 0},
	{0, 126, 0, 0, 0, 0, 0, 0},
	{126, 0, 0, 0, 0, 0, 0, 0},
}

// level 0 is the dotted empty marker, 8 is a solid cell
var vuBars = [NumVULevels]Tile{
	{0, 16, 0, 16, 0, 16, 0, 16},
	{0, 16, 0, 16, 0, 16, 0, 124},
	{0, 16, 0, 16, 0, 16, 124, 124},
	{0, 16, 0, 16, 0, 124, 124, 124},
	{0, 16, 0, 16, 124, 124, 124, 124},
	{0, 16, 0, 124, 124, 124, 124, 124},
	{0, 16, 124, 124, 124, 124, 124, 124},
	{0, 124, 124, 124, 124, 124, 124, 124},
	{124, 124, 124, 124, 124, 124, 124, 124},
}

// Digit returns the digit glyph for n.
func Digit(n int) (Tile, bool) {
	if n < 0 || n >= NumDigits {
		return Tile{}, false
	}
	return numbers[n], true
}

// Letter returns the letter glyph for l (0-25 A-Z, 26 space).
func Letter(l int) (Tile, bool) {
	if l < 0 || l >= NumLetters {
		return Tile{}, false
	}
	return letters[l], true
}

// letterIndex maps a character to its letter table index, folding case.
func letterIndex(c byte) (int, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c - 'A'), true
	case c >= 'a' && c <= 'z':
		return int(c - 'a'), true
	case c == ' ':
		return LetterSpace, true
	}
	return 0, false
}

func digitIndex(c byte) (int, bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	return 0, false
}
