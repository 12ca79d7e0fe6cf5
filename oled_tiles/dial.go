package oled_tiles

// dial and gauge face tiles

// NumDialBuckets is the number of needle positions a dial can show.
const NumDialBuckets = 13

// 3x3 circle, row major
var circle9 = [9]Tile{
	{0, 0, 7, 4, 8, 16, 32, 32},
	{0, 126, 129, 0, 0, 0, 0, 0},
	{0, 0, 224, 32, 16, 8, 4, 4},
	{32, 64, 64, 64, 64, 64, 64, 32},
	{0, 0, 0, 24, 24, 16, 16, 16},
	{4, 2, 2, 2, 2, 2, 2, 4},
	{32, 32, 16, 8, 4, 3, 0, 0},
	{16, 16, 16, 16, 16, 129, 126, 0},
	{4, 4, 8, 16, 32, 192, 0, 0},
}

// needle overlays, the comment lists which circle cell each one replaces
var (
	dial1  = [2]Tile{{0, 0, 0, 24, 24, 16, 48, 48}, {112, 112, 112, 240, 240, 240, 126, 0}}                                                                                 // 4, 7
	dial2  = [4]Tile{{32, 64, 64, 64, 64, 64, 64, 35}, {0, 0, 0, 24, 24, 48, 112, 240}, {63, 63, 31, 15, 7, 3, 0, 0}, {240, 240, 240, 240, 240, 241, 126, 0}}               // 3, 4, 6, 7
	dial3  = [2]Tile{{32, 64, 64, 64, 127, 127, 127, 63}, {0, 0, 0, 24, 248, 240, 240, 240}}                                                                                // 3, 4
	dial4  = [2]Tile{{56, 127, 127, 127, 127, 127, 127, 63}, {0, 0, 192, 248, 248, 240, 240, 240}}                                                                          // 3, 4
	dial5  = [4]Tile{{0, 0, 3, 7, 15, 31, 63, 63}, {0, 126, 129, 0, 0, 128, 128, 128}, {63, 127, 127, 127, 127, 127, 127, 63}, {192, 192, 224, 248, 248, 240, 240, 240}}    // 0, 1, 3, 4
	dial6  = [2]Tile{{0, 126, 241, 240, 240, 240, 240, 240}, {240, 240, 240, 248, 248, 240, 240, 240}}                                                                      // 1, 4
	dial7  = [3]Tile{{0, 126, 255, 255, 255, 255, 255, 255}, {0, 0, 224, 160, 144, 8, 4, 4}, {254, 252, 252, 248, 248, 240, 240, 240}}                                    // 1, 2, 4
	dial8  = [3]Tile{{0, 0, 192, 224, 240, 248, 252, 252}, {255, 255, 255, 252, 248, 240, 240, 240}, {240, 194, 2, 2, 2, 2, 2, 4}}                                        // 2, 4, 5
	dial9  = [2]Tile{{255, 255, 255, 255, 248, 240, 240, 240}, {252, 254, 254, 254, 2, 2, 2, 4}}                                                                            // 4, 5
	dial10 = [3]Tile{{255, 255, 255, 255, 255, 243, 240, 240}, {252, 254, 254, 254, 254, 254, 254, 60}, {12, 4, 8, 16, 32, 192, 0, 0}}                                    // 4, 5, 8
	dial11 = [4]Tile{{255, 255, 255, 255, 255, 247, 243, 241}, {252, 254, 254, 254, 254, 254, 254, 252}, {241, 240, 240, 240, 240, 241, 126, 0}, {252, 252, 248, 112, 96, 192, 0, 0}} // 4, 5, 7, 8
	dial12 = [2]Tile{{255, 255, 255, 255, 255, 255, 255, 255}, {255, 255, 255, 255, 255, 255, 126, 0}}                                                                      // 4, 7
)

// placement is one tile of a composed glyph, dx/dy in logical tile units
// from the glyph's anchor.
type placement struct {
	dx, dy int
	tile   Tile
}

// circle cell k sits at dx = k%3, dy = k/3
func cell(k int, t Tile) placement {
	return placement{dx: k % 3, dy: k / 3, tile: t}
}

func circleCells(ks ...int) []placement {
	out := make([]placement, 0, len(ks))
	for _, k := range ks {
		out = append(out, cell(k, circle9[k]))
	}
	return out
}

func concat(parts ...[]placement) []placement {
	var out []placement
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// dialFaces holds the draw list for each needle bucket, in send order.
// Bucket 0 is the bare circle, 12 a fully swept face.
var dialFaces = [NumDialBuckets][]placement{
	circleCells(0, 1, 2, 3, 4, 5, 6, 7, 8),
	concat(
		circleCells(0, 1, 2, 3, 4, 5, 6, 7, 8),
		[]placement{cell(4, dial1[0]), cell(7, dial1[1])},
	),
	concat(
		circleCells(0, 1, 2, 5, 8),
		[]placement{cell(3, dial2[0]), cell(4, dial2[1]), cell(6, dial2[2]), cell(7, dial2[3])},
	),
	concat(
		circleCells(0, 1, 2, 5, 8),
		[]placement{cell(3, dial3[0]), cell(4, dial3[1]), cell(6, dial2[2]), cell(7, dial2[3])},
	),
	concat(
		circleCells(0, 1, 2, 5, 8),
		[]placement{cell(3, dial4[0]), cell(4, dial4[1]), cell(6, dial2[2]), cell(7, dial2[3])},
	),
	concat(
		circleCells(2, 5, 8),
		[]placement{
			cell(0, dial5[0]), cell(1, dial5[1]), cell(3, dial5[2]), cell(4, dial5[3]),
			cell(6, dial2[2]), cell(7, dial2[3]),
		},
	),
	concat(
		circleCells(2, 5, 8),
		[]placement{
			cell(1, dial6[0]), cell(4, dial6[1]), cell(6, dial2[2]),
			cell(0, dial5[0]), cell(3, dial5[2]), cell(7, dial2[3]),
		},
	),
	concat(
		circleCells(5, 8),
		[]placement{
			cell(1, dial7[0]), cell(2, dial7[1]), cell(4, dial7[2]), cell(6, dial2[2]),
			cell(0, dial5[0]), cell(3, dial5[2]), cell(7, dial2[3]),
		},
	),
	concat(
		circleCells(8),
		[]placement{
			cell(2, dial8[0]), cell(4, dial8[1]), cell(5, dial8[2]), cell(6, dial2[2]),
			cell(0, dial5[0]), cell(1, dial7[0]), cell(3, dial5[2]), cell(7, dial2[3]),
		},
	),
	concat(
		circleCells(8),
		[]placement{
			cell(4, dial9[0]), cell(5, dial9[1]), cell(6, dial2[2]),
			cell(0, dial5[0]), cell(1, dial7[0]), cell(2, dial8[0]), cell(3, dial5[2]), cell(7, dial2[3]),
		},
	),
	{
		cell(4, dial10[0]), cell(5, dial10[1]), cell(8, dial10[2]), cell(6, dial2[2]),
		cell(0, dial5[0]), cell(1, dial7[0]), cell(2, dial8[0]), cell(3, dial5[2]), cell(7, dial2[3]),
	},
	{
		cell(4, dial11[0]), cell(5, dial11[1]), cell(7, dial11[2]), cell(8, dial11[3]), cell(6, dial2[2]),
		cell(0, dial5[0]), cell(1, dial7[0]), cell(2, dial8[0]), cell(3, dial5[2]),
	},
	{
		cell(4, dial12[0]), cell(7, dial12[1]), cell(6, dial2[2]),
		cell(0, dial5[0]), cell(1, dial7[0]), cell(2, dial8[0]), cell(5, dial11[1]), cell(3, dial5[2]), cell(8, dial11[3]),
	},
}

// DialMax is the top of the dial's input range.
const DialMax = 1024

// DialBucket maps a dial value in [0, DialMax] to its needle bucket.
// The 0.0118 scale is what the panels were tuned with (roughly val/85).
func DialBucket(val int) (int, bool) {
	if val < 0 || val > DialMax {
		return 0, false
	}
	return int(float64(val) * 0.0118), true
}
