// Package board implements the 8x8 occupancy grid: placement gate, placement and line clearing.
package board

import (
	"math/bits"

	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/piece"
)

const size = constants.BoardSize

// Board is one bitmask per row, origin top-left, bit c of row r = cell (c, r)
type Board [size]uint8

// Clear describes full lines as row and column masks
type Clear struct {
	Rows uint8
	Cols uint8
}

// Count returns full rows plus full columns
func (c Clear) Count() int {
	return bits.OnesCount8(c.Rows) + bits.OnesCount8(c.Cols)
}

// Empty reports whether no line is full
func (c Clear) Empty() bool {
	return c.Rows == 0 && c.Cols == 0
}

// Covers reports whether cell (x, y) lies on a full row or column
func (c Clear) Covers(x, y int) bool {
	return c.Rows>>y&1 == 1 || c.Cols>>x&1 == 1
}

// LineBonus is the score for clearing n lines at once
func LineBonus(n int) uint32 {
	if n <= 0 {
		return 0
	}
	return uint32(constants.LineClearPoints * n * n)
}

// CanPlace reports whether the shape fits at origin (x, y): inside the board and no overlap
func (b *Board) CanPlace(s piece.Shape, x, y int) bool {
	if x < 0 || y < 0 || x+int(s.W) > size || y+int(s.H) > size {
		return false
	}
	for r := 0; r < int(s.H); r++ {
		if b[y+r]&(s.Rows[r]<<x) != 0 {
			return false
		}
	}
	return true
}

// Place ORs the shape in at (x, y) and returns the number of cells filled.
// The caller must have checked CanPlace.
func (b *Board) Place(s piece.Shape, x, y int) int {
	cells := 0
	for r := 0; r < int(s.H); r++ {
		b[y+r] |= s.Rows[r] << x
		cells += bits.OnesCount8(s.Rows[r])
	}
	return cells
}

// FullLines detects full rows and columns without mutating
func (b *Board) FullLines() Clear {
	var c Clear
	cols := uint8(constants.FullLine)
	for y := 0; y < size; y++ {
		if b[y] == constants.FullLine {
			c.Rows |= 1 << y
		}
		cols &= b[y]
	}
	c.Cols = cols
	return c
}

// ClearFullLines zeroes every full row and column. Both sets are detected on the
// pre-clear board, so a cell on a full row and a full column is cleared once.
func (b *Board) ClearFullLines() Clear {
	c := b.FullLines()
	if c.Empty() {
		return c
	}
	for y := 0; y < size; y++ {
		if c.Rows>>y&1 == 1 {
			b[y] = 0
			continue
		}
		b[y] &^= c.Cols
	}
	return c
}

// PreviewClear returns the lines placing s at (x, y) would clear, zero if it does not fit
func (b *Board) PreviewClear(s piece.Shape, x, y int) Clear {
	if !b.CanPlace(s, x, y) {
		return Clear{}
	}
	scratch := *b
	scratch.Place(s, x, y)
	return scratch.FullLines()
}

// Fits reports whether the shape has at least one legal origin
func (b *Board) Fits(s piece.Shape) bool {
	for y := 0; y <= size-int(s.H); y++ {
		for x := 0; x <= size-int(s.W); x++ {
			if b.CanPlace(s, x, y) {
				return true
			}
		}
	}
	return false
}

// Has reports whether cell (x, y) is occupied; out of range is empty
func (b *Board) Has(x, y int) bool {
	if x < 0 || y < 0 || x >= size || y >= size {
		return false
	}
	return b[y]>>x&1 == 1
}

// RowCount returns occupied cells in row y
func (b *Board) RowCount(y int) int {
	return bits.OnesCount8(b[y])
}

// ColCount returns occupied cells in column x
func (b *Board) ColCount(x int) int {
	n := 0
	for y := 0; y < size; y++ {
		n += int(b[y] >> x & 1)
	}
	return n
}

// Filled returns the total occupied cells
func (b *Board) Filled() int {
	return bits.OnesCount64(b.Key())
}

// IsEmpty reports whether no cell is occupied
func (b *Board) IsEmpty() bool {
	return b.Key() == 0
}

// Key packs the board into 64 bits, row r in bits 8r..8r+7
func (b *Board) Key() uint64 {
	var k uint64
	for y := 0; y < size; y++ {
		k |= uint64(b[y]) << (8 * y)
	}
	return k
}

// FromKey unpacks a board produced by Key
func FromKey(k uint64) Board {
	var b Board
	for y := 0; y < size; y++ {
		b[y] = uint8(k >> (8 * y))
	}
	return b
}
