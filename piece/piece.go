// Package piece holds the fixed catalog of placeable shapes.
package piece

import (
	"math/bits"

	"github.com/lixenwraith/blockcast/constants"
)

// Type identifies a catalog shape, 0 through Count-1
type Type uint8

// Catalog order is stable; hands and tests refer to shapes by index
const (
	Single Type = iota // 1x1
	Bar2H              // 2h
	Bar3H              // 3h
	Bar4H              // 4h
	Bar5H              // 5h
	Bar2V              // 2v
	Bar3V              // 3v
	Bar4V              // 4v
	Bar5V              // 5v
	Square2            // 2x2
	Square3            // 3x3
	CornerBL           // L-bl
	CornerBR           // L-br
	CornerTL           // L-tl
	CornerTR           // L-tr
	BigL               // bigL
	BigJ               // bigJ
	BigL2              // bigL2
	BigJ2              // bigJ2

	Count = constants.PieceTypes
)

// Shape is a piece bounding box with one bitmask per row, LSB = left column
type Shape struct {
	W, H uint8
	Rows [constants.MaxPieceDim]uint8
}

var catalog = [Count]Shape{
	// singles & horizontal bars
	Single: {1, 1, [5]uint8{0x01}},
	Bar2H:  {2, 1, [5]uint8{0x03}},
	Bar3H:  {3, 1, [5]uint8{0x07}},
	Bar4H:  {4, 1, [5]uint8{0x0F}},
	Bar5H:  {5, 1, [5]uint8{0x1F}},
	// vertical bars
	Bar2V: {1, 2, [5]uint8{0x01, 0x01}},
	Bar3V: {1, 3, [5]uint8{0x01, 0x01, 0x01}},
	Bar4V: {1, 4, [5]uint8{0x01, 0x01, 0x01, 0x01}},
	Bar5V: {1, 5, [5]uint8{0x01, 0x01, 0x01, 0x01, 0x01}},
	// squares
	Square2: {2, 2, [5]uint8{0x03, 0x03}},
	Square3: {3, 3, [5]uint8{0x07, 0x07, 0x07}},
	// 2x2 corners
	CornerBL: {2, 2, [5]uint8{0x03, 0x01}},
	CornerBR: {2, 2, [5]uint8{0x03, 0x02}},
	CornerTL: {2, 2, [5]uint8{0x01, 0x03}},
	CornerTR: {2, 2, [5]uint8{0x02, 0x03}},
	// 3x3 corners
	BigL:  {3, 3, [5]uint8{0x07, 0x01, 0x01}},
	BigJ:  {3, 3, [5]uint8{0x07, 0x04, 0x04}},
	BigL2: {3, 3, [5]uint8{0x01, 0x01, 0x07}},
	BigJ2: {3, 3, [5]uint8{0x04, 0x04, 0x07}},
}

var names = [Count]string{
	"1x1", "2h", "3h", "4h", "5h",
	"2v", "3v", "4v", "5v",
	"2x2", "3x3",
	"L-bl", "L-br", "L-tl", "L-tr",
	"bigL", "bigJ", "bigL2", "bigJ2",
}

// Shape returns the catalog entry for t
func (t Type) Shape() Shape {
	return catalog[t]
}

// Valid reports whether t indexes the catalog
func (t Type) Valid() bool {
	return t < Count
}

func (t Type) String() string {
	if !t.Valid() {
		return "invalid"
	}
	return names[t]
}

// All returns every catalog type in index order
func All() []Type {
	types := make([]Type, Count)
	for i := range types {
		types[i] = Type(i)
	}
	return types
}

// Has reports whether the shape occupies local cell (x, y)
func (s Shape) Has(x, y int) bool {
	if x < 0 || y < 0 || x >= int(s.W) || y >= int(s.H) {
		return false
	}
	return s.Rows[y]>>x&1 == 1
}

// Cells returns the number of occupied cells
func (s Shape) Cells() int {
	n := 0
	for r := 0; r < int(s.H); r++ {
		n += bits.OnesCount8(s.Rows[r])
	}
	return n
}

// Center returns the origin that centers the shape on the board
func (s Shape) Center() (x, y int) {
	return (constants.BoardSize - int(s.W)) / 2, (constants.BoardSize - int(s.H)) / 2
}
