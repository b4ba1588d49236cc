package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s starting at (x, y) and returns the column after the last rune
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		w := runewidth.RuneWidth(ch)
		if w < 1 {
			w = 1
		}
		x += w
	}
	return x
}

// drawCentered writes s centered in the span [left, left+width)
func drawCentered(screen tcell.Screen, left, width, y int, s string, style tcell.Style) {
	x := left + (width-runewidth.StringWidth(s))/2
	if x < left {
		x = left
	}
	drawText(screen, x, y, s, style)
}

// fillRect paints a rectangle with spaces
func fillRect(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			screen.SetContent(x+dx, y+dy, ' ', nil, style)
		}
	}
}

// drawFrame draws a box whose outer corners are (x, y) and (x+w-1, y+h-1)
func drawFrame(screen tcell.Screen, x, y, w, h int, selected bool, style tcell.Style) {
	tl, tr, bl, br, hz, vt := frameTL, frameTR, frameBL, frameBR, frameH, frameV
	if selected {
		tl, tr, bl, br, hz, vt = selTL, selTR, selBL, selBR, selH, selV
	}
	right, bottom := x+w-1, y+h-1
	for cx := x + 1; cx < right; cx++ {
		screen.SetContent(cx, y, hz, nil, style)
		screen.SetContent(cx, bottom, hz, nil, style)
	}
	for cy := y + 1; cy < bottom; cy++ {
		screen.SetContent(x, cy, vt, nil, style)
		screen.SetContent(right, cy, vt, nil, style)
	}
	screen.SetContent(x, y, tl, nil, style)
	screen.SetContent(right, y, tr, nil, style)
	screen.SetContent(x, bottom, bl, nil, style)
	screen.SetContent(right, bottom, br, nil, style)
}
