package constants

// Board Layout (terminal cells)
const (
	// CellWidth is the number of terminal columns per board cell; two keeps cells roughly square
	CellWidth = 2

	// BoardOriginX is the left edge of the board frame
	BoardOriginX = 1

	// BoardOriginY is the top edge of the board frame
	BoardOriginY = 1

	// PanelGap separates the board frame from the side panel
	PanelGap = 3

	// SlotBoxWidth is the framed width of one hand slot preview
	SlotBoxWidth = MaxPieceDim*CellWidth + 2

	// SlotBoxHeight is the framed height of one hand slot preview
	SlotBoxHeight = MaxPieceDim + 2

	// SlotGap separates hand slot previews
	SlotGap = 1

	// HandOriginY is the top edge of the hand row, directly below the board frame
	HandOriginY = BoardOriginY + BoardSize + 2
)

// Minimum terminal size that fits the board, panel and status line
const (
	MinScreenWidth  = 40
	MinScreenHeight = 20
)

// Panel text
const (
	TitleText     = "BLOCKCAST"
	ScoreLabel    = "SCORE"
	BestLabel     = "BEST"
	GameOverText  = "GAME OVER"
	RestartHint   = "enter: again  esc: quit"
	TooSmallText  = "terminal too small"
	HelpSelect    = "↑↓ pick  enter place  esc quit"
	HelpSelectAlt = "←→ pick  enter place  esc quit"
	HelpPlace     = "arrows move  enter drop  esc back"
	MutedText     = "muted"
)
