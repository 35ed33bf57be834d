package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/abalone/internal/board"
)

// Theme defines the color scheme for the board.
type Theme struct {
	CellColor      color.RGBA
	BorderColor    color.RGBA
	SelectedColor  color.RGBA
	LegalMoveColor color.RGBA
	LastMoveColor  color.RGBA
	Background     color.RGBA
	TextColor      color.RGBA
	ButtonColor    color.RGBA
	ButtonHover    color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		CellColor:      color.RGBA{210, 180, 140, 255}, // Tan hex cell
		BorderColor:    color.RGBA{120, 95, 70, 255},
		SelectedColor:  color.RGBA{247, 247, 105, 180}, // Yellow highlight
		LegalMoveColor: color.RGBA{130, 151, 105, 200}, // Green dots
		LastMoveColor:  color.RGBA{180, 190, 100, 90},
		Background:     color.RGBA{40, 44, 52, 255}, // Dark gray
		TextColor:      color.RGBA{220, 220, 220, 255},
		ButtonColor:    color.RGBA{60, 64, 72, 255},
		ButtonHover:    color.RGBA{80, 84, 92, 255},
	}
}

// hexRadius is the center-to-vertex radius of one board cell, in pixels.
const hexRadius = 34.0

// Renderer handles all board drawing for the hex grid.
type Renderer struct {
	sprites   *SpriteManager
	theme     *Theme
	boardSize int
	originX   float64
	originY   float64
}

// NewRenderer creates a new renderer for a board of the given pixel size.
func NewRenderer(boardSize int) *Renderer {
	return &Renderer{
		sprites:   NewSpriteManager(int(hexRadius * 1.6)),
		theme:     DefaultTheme(),
		boardSize: boardSize,
		originX:   float64(boardSize) / 2,
		originY:   60,
	}
}

// cellCenter returns the pixel center of internal cell (row, col).
//
// Row 4 (the middle row, length 9) is centered on originX; each row
// above or below it is progressively narrower and is re-centered so the
// whole board reads as a hexagon, matching the jagged 5..9..5 layout.
func (r *Renderer) cellCenter(row, col int) (float64, float64) {
	rowLen := board.RowLength(row)
	rowWidth := float64(rowLen-1) * hexRadius * 1.5
	x := r.originX - rowWidth/2 + float64(col)*hexRadius*1.5
	y := r.originY + float64(row)*hexRadius*1.75
	return x, y
}

// DrawBoard draws the hex-grid cells.
func (r *Renderer) DrawBoard(screen *ebiten.Image) {
	for row := 0; row < 9; row++ {
		for col := 0; col < board.RowLength(row); col++ {
			x, y := r.cellCenter(row, col)
			vector.DrawFilledCircle(screen, float32(x), float32(y), hexRadius*0.9, r.theme.CellColor, true)
			vector.StrokeCircle(screen, float32(x), float32(y), hexRadius*0.9, 2, r.theme.BorderColor, true)
		}
	}
}

// DrawHighlights draws selection, last-move, and legal-move-target highlights.
func (r *Renderer) DrawHighlights(screen *ebiten.Image, selected []board.Coord, legalTargets []board.Coord, lastMove *board.Move) {
	if lastMove != nil {
		for _, c := range lastMove.Cells {
			r.highlightCell(screen, c, r.theme.LastMoveColor)
		}
	}
	for _, c := range selected {
		r.highlightCell(screen, c, r.theme.SelectedColor)
	}
	for _, c := range legalTargets {
		x, y := r.cellCenter(c.Row, c.Col)
		vector.DrawFilledCircle(screen, float32(x), float32(y), hexRadius*0.2, r.theme.LegalMoveColor, true)
	}
}

func (r *Renderer) highlightCell(screen *ebiten.Image, c board.Coord, col color.RGBA) {
	x, y := r.cellCenter(c.Row, c.Col)
	vector.DrawFilledCircle(screen, float32(x), float32(y), hexRadius*0.95, col, true)
}

// DrawMarbles draws every marble currently on the board.
func (r *Renderer) DrawMarbles(screen *ebiten.Image, b *board.Board) {
	size := r.sprites.Size()
	for row := 0; row < 9; row++ {
		for col := 0; col < board.RowLength(row); col++ {
			c := b.GetRaw(row, col)
			if c == board.Empty {
				continue
			}
			x, y := r.cellCenter(row, col)
			r.sprites.DrawMarbleAt(screen, c, int(x)-size/2, int(y)-size/2)
		}
	}
}

// ScreenToCell converts screen coordinates to the nearest board cell,
// returning false if the click falls outside every cell's radius.
func (r *Renderer) ScreenToCell(x, y int) (board.Coord, bool) {
	fx, fy := float64(x), float64(y)
	best := board.Coord{}
	bestDistSq := hexRadius * hexRadius
	found := false

	for row := 0; row < 9; row++ {
		for col := 0; col < board.RowLength(row); col++ {
			cx, cy := r.cellCenter(row, col)
			dx, dy := fx-cx, fy-cy
			distSq := dx*dx + dy*dy
			if distSq < bestDistSq {
				bestDistSq = distSq
				best = board.Coord{Row: row, Col: col}
				found = true
			}
		}
	}

	return best, found
}

// BoardSize returns the board area size in pixels.
func (r *Renderer) BoardSize() int {
	return r.boardSize
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}
