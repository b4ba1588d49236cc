package render

import (
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/blockcast/board"
	"github.com/lixenwraith/blockcast/constants"
	"github.com/lixenwraith/blockcast/engine"
	"github.com/lixenwraith/blockcast/piece"
	"github.com/lixenwraith/blockcast/status"
)

const (
	boardFrameWidth  = constants.BoardSize*constants.CellWidth + 2
	boardFrameHeight = constants.BoardSize + 2
	panelX           = constants.BoardOriginX + boardFrameWidth + constants.PanelGap
	helpY            = constants.HandOriginY + constants.SlotBoxHeight
)

// TerminalRenderer draws engine snapshots onto a tcell screen
type TerminalRenderer struct {
	screen  tcell.Screen
	stats   *status.Registry
	printer *message.Printer
	muted   *atomic.Bool

	// Cached metric pointers
	best  *atomic.Int64
	games *atomic.Int64
	lines *atomic.Int64
}

// NewTerminalRenderer creates a renderer. stats and muted may be nil.
func NewTerminalRenderer(screen tcell.Screen, stats *status.Registry, muted *atomic.Bool) *TerminalRenderer {
	if stats == nil {
		stats = status.NewRegistry()
	}
	if muted == nil {
		muted = &atomic.Bool{}
	}
	return &TerminalRenderer{
		screen:  screen,
		stats:   stats,
		printer: message.NewPrinter(language.English),
		muted:   muted,
		best:    stats.Int(status.KeyBestScore),
		games:   stats.Int(status.KeyGames),
		lines:   stats.Int(status.KeyLines),
	}
}

// RenderFrame draws one complete frame; it satisfies engine.RenderFunc
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	width, height := r.screen.Size()
	if width < constants.MinScreenWidth || height < constants.MinScreenHeight {
		drawCentered(r.screen, 0, width, height/2, constants.TooSmallText, defaultStyle.Foreground(RgbGhostInvalid))
		r.screen.Show()
		return
	}

	r.drawBoard(snap, defaultStyle)
	r.drawHand(snap, defaultStyle)
	r.drawPanel(snap, defaultStyle)
	r.drawHelp(snap, defaultStyle)
	if snap.Phase == engine.PhaseOver {
		r.drawGameOver(snap, defaultStyle)
	}

	r.screen.Show()
}

// cellOrigin returns the screen position of board cell (x, y)
func cellOrigin(x, y int) (int, int) {
	return constants.BoardOriginX + 1 + x*constants.CellWidth, constants.BoardOriginY + 1 + y
}

func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	sx, sy := cellOrigin(x, y)
	for i := 0; i < constants.CellWidth; i++ {
		r.screen.SetContent(sx+i, sy, ch, nil, style)
	}
}

// drawBoard draws the frame, settled blocks, clear preview and ghost
func (r *TerminalRenderer) drawBoard(snap engine.Snapshot, defaultStyle tcell.Style) {
	drawFrame(r.screen, constants.BoardOriginX, constants.BoardOriginY, boardFrameWidth, boardFrameHeight, false, defaultStyle.Foreground(RgbFrame))

	b := snap.Board
	for y := 0; y < constants.BoardSize; y++ {
		for x := 0; x < constants.BoardSize; x++ {
			if b.Has(x, y) {
				r.setCell(x, y, blockRune, defaultStyle.Foreground(RgbBlock))
			} else {
				sx, sy := cellOrigin(x, y)
				r.screen.SetContent(sx, sy, emptyRune, nil, defaultStyle.Foreground(RgbEmptyCell))
				r.screen.SetContent(sx+1, sy, ' ', nil, defaultStyle)
			}
		}
	}

	if !snap.HasGhost {
		return
	}

	ghostStyle := defaultStyle.Foreground(RgbGhostInvalid)
	if snap.Valid {
		ghostStyle = defaultStyle.Foreground(RgbGhostValid)
	}
	for gy := 0; gy < int(snap.Ghost.H); gy++ {
		for gx := 0; gx < int(snap.Ghost.W); gx++ {
			if snap.Ghost.Has(gx, gy) {
				r.setCell(snap.Cursor.X+gx, snap.Cursor.Y+gy, ghostRune, ghostStyle)
			}
		}
	}

	if snap.Valid && !snap.Preview.Empty() {
		r.drawPreview(snap, defaultStyle)
	}
}

// drawPreview highlights every cell of the lines the drop would clear
func (r *TerminalRenderer) drawPreview(snap engine.Snapshot, defaultStyle tcell.Style) {
	after := snap.Board
	after.Place(snap.Ghost, snap.Cursor.X, snap.Cursor.Y)
	style := defaultStyle.Foreground(RgbClearPreview)
	for y := 0; y < constants.BoardSize; y++ {
		for x := 0; x < constants.BoardSize; x++ {
			if snap.Preview.Covers(x, y) && after.Has(x, y) {
				r.setCell(x, y, blockRune, style)
			}
		}
	}
}

// drawHand draws the three slot boxes in a row below the board
func (r *TerminalRenderer) drawHand(snap engine.Snapshot, defaultStyle tcell.Style) {
	for i := 0; i < constants.HandSize; i++ {
		x := constants.BoardOriginX + i*(constants.SlotBoxWidth+constants.SlotGap)
		y := constants.HandOriginY

		selected := i == snap.Selected && snap.Phase != engine.PhaseOver && snap.Hand.Get(i).Occupied()
		frameStyle := defaultStyle.Foreground(RgbFrame)
		if selected {
			frameStyle = defaultStyle.Foreground(RgbSelected)
		}
		drawFrame(r.screen, x, y, constants.SlotBoxWidth, constants.SlotBoxHeight, selected, frameStyle)

		t, ok := snap.Hand.Get(i).Piece()
		if !ok {
			continue
		}
		r.drawPiece(t, &snap.Board, x+1, y+1, defaultStyle)
	}
}

// drawPiece draws a catalog shape centered in a slot interior at (x, y)
func (r *TerminalRenderer) drawPiece(t piece.Type, b *board.Board, x, y int, defaultStyle tcell.Style) {
	shape := t.Shape()
	style := defaultStyle.Foreground(RgbPiece)
	if !b.Fits(shape) {
		style = defaultStyle.Foreground(RgbUnfit)
	}

	offX := x + (constants.MaxPieceDim-int(shape.W))/2*constants.CellWidth
	offY := y + (constants.MaxPieceDim-int(shape.H))/2
	for py := 0; py < int(shape.H); py++ {
		for px := 0; px < int(shape.W); px++ {
			if !shape.Has(px, py) {
				continue
			}
			for i := 0; i < constants.CellWidth; i++ {
				r.screen.SetContent(offX+px*constants.CellWidth+i, offY+py, blockRune, nil, style)
			}
		}
	}
}

// drawPanel draws title, score, best and session counters beside the board
func (r *TerminalRenderer) drawPanel(snap engine.Snapshot, defaultStyle tcell.Style) {
	labelStyle := defaultStyle.Foreground(RgbDimText)
	scoreStyle := defaultStyle.Foreground(RgbScore).Bold(true)
	y := constants.BoardOriginY

	drawText(r.screen, panelX, y, constants.TitleText, defaultStyle.Bold(true))

	drawText(r.screen, panelX, y+2, constants.ScoreLabel, labelStyle)
	drawText(r.screen, panelX, y+3, r.printer.Sprintf("%d", snap.Score), scoreStyle)

	best := r.best.Load()
	if int64(snap.Score) > best {
		best = int64(snap.Score)
	}
	drawText(r.screen, panelX, y+5, constants.BestLabel, labelStyle)
	drawText(r.screen, panelX, y+6, r.printer.Sprintf("%d", best), defaultStyle)

	drawText(r.screen, panelX, y+8, r.printer.Sprintf("game  %d", r.games.Load()), labelStyle)
	drawText(r.screen, panelX, y+9, r.printer.Sprintf("lines %d", r.lines.Load()), labelStyle)

	if r.muted.Load() {
		drawText(r.screen, panelX, y+11, constants.MutedText, defaultStyle.Foreground(RgbMuted))
	}
}

// drawHelp draws the key hint for the current phase
func (r *TerminalRenderer) drawHelp(snap engine.Snapshot, defaultStyle tcell.Style) {
	help := constants.HelpSelect
	switch {
	case snap.Phase == engine.PhasePlace:
		help = constants.HelpPlace
	case snap.Phase == engine.PhaseOver:
		help = constants.RestartHint
	case snap.Layout == engine.LayoutHorizontal:
		help = constants.HelpSelectAlt
	}
	drawText(r.screen, constants.BoardOriginX, helpY, help, defaultStyle.Foreground(RgbDimText))
}

// drawGameOver draws a banner across the middle of the board
func (r *TerminalRenderer) drawGameOver(snap engine.Snapshot, defaultStyle tcell.Style) {
	bannerStyle := defaultStyle.Background(RgbGameOverBg).Foreground(tcell.ColorWhite).Bold(true)
	left := constants.BoardOriginX + 1
	width := boardFrameWidth - 2
	y := constants.BoardOriginY + boardFrameHeight/2 - 1

	fillRect(r.screen, left, y, width, 2, bannerStyle)
	drawCentered(r.screen, left, width, y, constants.GameOverText, bannerStyle)
	drawCentered(r.screen, left, width, y+1, r.printer.Sprintf("%d pts", snap.Score), bannerStyle.Bold(false))
}
