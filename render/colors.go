package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFrame      = tcell.NewRGBColor(90, 95, 120)   // Board and slot frames
	RgbEmptyCell  = tcell.NewRGBColor(60, 63, 82)    // Empty cell dot
	RgbBlock      = tcell.NewRGBColor(122, 162, 247) // Settled blocks
	RgbText       = tcell.NewRGBColor(192, 202, 245) // Panel text
	RgbDimText    = tcell.NewRGBColor(120, 125, 150) // Labels and help

	// Placement
	RgbGhostValid   = tcell.NewRGBColor(158, 206, 106) // Ghost that can drop
	RgbGhostInvalid = tcell.NewRGBColor(247, 118, 142) // Ghost that overlaps or leaves the board
	RgbClearPreview = tcell.NewRGBColor(255, 255, 200) // Lines that would clear on drop

	// Hand
	RgbSelected = tcell.NewRGBColor(255, 165, 0)   // Frame of the selected slot
	RgbPiece    = tcell.NewRGBColor(187, 154, 247) // Piece that fits somewhere
	RgbUnfit    = tcell.NewRGBColor(86, 95, 137)   // Piece with no legal origin

	// Overlay
	RgbGameOverBg = tcell.NewRGBColor(200, 50, 50)   // Game over banner
	RgbScore      = tcell.NewRGBColor(255, 255, 0)   // Score digits
	RgbMuted      = tcell.NewRGBColor(224, 175, 104) // Muted indicator
)

// Box-drawing runes for frames
const (
	frameTL = '┌'
	frameTR = '┐'
	frameBL = '└'
	frameBR = '┘'
	frameH  = '─'
	frameV  = '│'

	selTL = '╔'
	selTR = '╗'
	selBL = '╚'
	selBR = '╝'
	selH  = '═'
	selV  = '║'

	blockRune = '█'
	ghostRune = '▓'
	emptyRune = '·'
)
