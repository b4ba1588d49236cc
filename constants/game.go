package constants

// Board & Hand Dimensions
const (
	// BoardSize is the width and height of the square play grid
	BoardSize = 8

	// FullLine is the row mask with every column occupied
	FullLine = 0xFF

	// HandSize is the number of piece slots offered per hand
	HandSize = 3

	// PieceTypes is the number of shapes in the catalog
	PieceTypes = 19

	// MaxPieceDim is the widest/tallest a shape may be
	MaxPieceDim = 5
)

// Scoring
const (
	// CellPoints is awarded per cell filled by a placement
	CellPoints = 1

	// LineClearPoints is multiplied by the square of lines cleared in one placement
	LineClearPoints = 10
)

// Hand Generation Heuristic
const (
	// WeightFloor is the base draw weight every piece type keeps in the weighted policy
	WeightFloor = 3

	// LineUtility is the utility of each line a placement would complete
	LineUtility = 10

	// NearFullUtility is the utility of each line left with NearFullThreshold or more cells
	NearFullUtility = 1

	// NearFullThreshold is the occupied cell count at which an incomplete line counts as near-full
	NearFullThreshold = 6
)
