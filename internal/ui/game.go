package ui

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/abalone/internal/board"
	"github.com/hailam/abalone/internal/engine"
	"github.com/hailam/abalone/internal/storage"
)

// UI Constants
const (
	BoardSize    = 640
	PanelWidth   = 240
	ScreenWidth  = BoardSize + PanelWidth
	ScreenHeight = 640
)

// UIScale is the global HiDPI scale factor. The GUI shell stays thin
// and does not implement HiDPI-aware rendering; this exists only
// because InputHandler divides by it.
var UIScale float64 = 1.0

// GameMode represents the current game mode.
type GameMode int

const (
	ModeHumanVsHuman GameMode = iota
	ModeHumanVsComputer
)

// Difficulty represents AI difficulty levels, mirroring engine.Difficulty.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// Game implements ebiten.Game for Abalone: a hex board, click-to-select
// and click-to-move interaction, and a computer opponent running in the
// background.
type Game struct {
	b           *board.Board
	moveHistory []board.MoveRecord
	lastMove    *board.Move

	selected     []board.Coord
	legalTargets []board.Coord
	legalMoves   []board.Move // legal moves whose Cells == selected

	mode        GameMode
	difficulty  Difficulty
	username    string
	playerColor board.PieceColor
	sideToMove  board.PieceColor

	storage *storage.Storage
	prefs   *storage.UserPreferences

	renderer *Renderer
	input    *InputHandler
	panel    *Panel

	engine     *engine.Engine
	aiThinking bool
	aiMove     chan board.Move

	gameOver   bool
	gameResult string
}

// NewGame creates a new Abalone game on the Default starting layout.
func NewGame() *Game {
	g := &Game{
		b:           board.NewBoard(board.LayoutDefault),
		mode:        ModeHumanVsComputer,
		difficulty:  DifficultyMedium,
		username:    "Player",
		playerColor: board.White,
		sideToMove:  board.Black,
		renderer:    NewRenderer(BoardSize),
		input:       NewInputHandler(),
		engine:      engine.NewEngine(),
		aiMove:      make(chan board.Move, 1),
	}

	var err error
	g.storage, err = storage.NewStorage()
	if err != nil {
		log.Printf("Warning: Failed to initialize storage: %v", err)
	}

	g.loadPreferences()
	g.panel = NewPanel(g)

	if g.mode == ModeHumanVsComputer && g.playerColor != board.Black {
		g.startAIThinking()
	}

	return g
}

// loadPreferences loads user preferences from storage, falling back to
// defaults when storage is unavailable.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Failed to load preferences: %v", err)
		g.prefs = storage.DefaultPreferences()
	}

	g.username = g.prefs.Username
	g.difficulty = Difficulty(g.prefs.Difficulty)
	g.mode = GameMode(g.prefs.GameMode)

	if g.prefs.PlayerColor == storage.ColorBlack {
		g.playerColor = board.Black
	} else {
		g.playerColor = board.White
	}

	g.b = board.NewBoard(layoutFor(g.prefs.StartingLayout))

	switch g.difficulty {
	case DifficultyEasy:
		g.engine.SetDifficulty(engine.Easy)
	case DifficultyMedium:
		g.engine.SetDifficulty(engine.Medium)
	case DifficultyHard:
		g.engine.SetDifficulty(engine.Hard)
	}
}

func layoutFor(l storage.StartingLayout) board.Layout {
	switch l {
	case storage.LayoutBelgianDaisy:
		return board.LayoutBelgianDaisy
	case storage.LayoutGermanDaisy:
		return board.LayoutGermanDaisy
	default:
		return board.LayoutDefault
	}
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}

	g.prefs.Username = g.username
	g.prefs.Difficulty = storage.Difficulty(g.difficulty)
	g.prefs.GameMode = storage.GameMode(g.mode)
	if g.playerColor == board.Black {
		g.prefs.PlayerColor = storage.ColorBlack
	} else {
		g.prefs.PlayerColor = storage.ColorWhite
	}

	if err := g.storage.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Failed to save preferences: %v", err)
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	g.handleBoardInput()
	g.checkAIMove()
	g.updateCursor()

	return nil
}

func (g *Game) updateCursor() {
	if g.panel.AnyButtonHovered() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	g.renderer.DrawBoard(screen)
	g.renderer.DrawHighlights(screen, g.selected, g.legalTargets, g.lastMove)
	g.renderer.DrawMarbles(screen, g.b)

	g.panel.Draw(screen, g.renderer)
}

// Layout returns the game's fixed screen dimensions.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// handleBoardInput processes mouse interactions with the board.
func (g *Game) handleBoardInput() {
	if g.gameOver || g.aiThinking {
		return
	}
	if g.mode == ModeHumanVsComputer && g.sideToMove != g.playerColor {
		return
	}

	mx, my := g.input.MousePosition()
	if mx >= BoardSize {
		return
	}

	if !g.input.IsLeftJustPressed() {
		return
	}

	cell, ok := g.renderer.ScreenToCell(mx, my)
	if !ok {
		return
	}

	if g.tryExtendSelection(cell) {
		return
	}

	if g.tryPlaySelection(cell) {
		return
	}

	g.clearSelection()
	if g.b.GetRaw(cell.Row, cell.Col) == g.sideToMove {
		g.selected = []board.Coord{cell}
		g.refreshLegalMoves()
	}
}

// tryExtendSelection adds or removes cell from the current own-marble
// selection, as long as the result stays a valid 1-3 marble group.
// Clicking an already-selected cell deselects it.
func (g *Game) tryExtendSelection(cell board.Coord) bool {
	if g.b.GetRaw(cell.Row, cell.Col) != g.sideToMove {
		return false
	}

	for i, c := range g.selected {
		if c == cell {
			g.selected = append(g.selected[:i], g.selected[i+1:]...)
			g.refreshLegalMoves()
			return true
		}
	}

	if len(g.selected) == 0 || len(g.selected) >= 3 {
		return false
	}

	candidate := append(append([]board.Coord{}, g.selected...), cell)
	if !g.isSelectableGroup(candidate) {
		return false
	}

	g.selected = candidate
	g.refreshLegalMoves()
	return true
}

// isSelectableGroup reports whether cells is the source-cell set of at
// least one legal move for the side to move, which is exactly the set
// of groups MovePieces will accept (inline or sidestep, 1-3 marbles).
func (g *Game) isSelectableGroup(cells []board.Coord) bool {
	for _, m := range board.LegalMoves(g.b, g.sideToMove) {
		if sameCellSet(m.Cells, cells) {
			return true
		}
	}
	return false
}

// tryPlaySelection applies the legal move, if any, whose destination
// cell matches cell.
func (g *Game) tryPlaySelection(cell board.Coord) bool {
	if len(g.selected) == 0 {
		return false
	}

	for _, m := range g.legalMoves {
		lead := leadDestination(m)
		if lead == cell {
			g.makeMove(m)
			return true
		}
	}
	return false
}

// leadDestination returns the destination cell of the move's leading
// (frontmost, in the direction of travel) source cell, which is what a
// player naturally clicks to indicate a direction.
func leadDestination(m board.Move) board.Coord {
	lead := m.Cells[0]
	for _, c := range m.Cells[1:] {
		nr, nc := board.ApplyDirection(lead.Row, lead.Col, m.Dir)
		if (board.Coord{Row: nr, Col: nc}) == c {
			lead = c
		}
	}
	nr, nc := board.ApplyDirection(lead.Row, lead.Col, m.Dir)
	return board.Coord{Row: nr, Col: nc}
}

// refreshLegalMoves recomputes legalMoves/legalTargets for the current selection.
func (g *Game) refreshLegalMoves() {
	g.legalMoves = nil
	g.legalTargets = nil
	if len(g.selected) == 0 {
		return
	}

	all := board.LegalMoves(g.b, g.sideToMove)
	for _, m := range all {
		if sameCellSet(m.Cells, g.selected) {
			g.legalMoves = append(g.legalMoves, m)
			g.legalTargets = append(g.legalTargets, leadDestination(m))
		}
	}
}

func sameCellSet(a, b []board.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.legalMoves = nil
	g.legalTargets = nil
}

// makeMove applies m, records it, and starts the computer's reply if applicable.
func (g *Game) makeMove(m board.Move) {
	pushedOff, err := g.b.MovePieces(m.Cells, m.Dir, m.Mover)
	if err != nil {
		log.Printf("[Move] rejected: %v", err)
		g.clearSelection()
		return
	}

	g.moveHistory = append(g.moveHistory, board.MoveRecord{Move: m, PushedOff: pushedOff})
	mv := m
	g.lastMove = &mv
	g.clearSelection()

	g.sideToMove = g.sideToMove.Other()
	g.checkGameEnd()

	if !g.gameOver && g.mode == ModeHumanVsComputer && g.sideToMove != g.playerColor {
		g.startAIThinking()
	}
}

func (g *Game) checkGameEnd() {
	winner := g.b.Winner()
	if winner == board.Empty {
		return
	}
	g.gameOver = true
	g.gameResult = winner.String() + " wins!"
	g.recordResult(winner == g.playerColor)
}

func (g *Game) recordResult(won bool) {
	if g.storage == nil {
		return
	}
	result := storage.GameResult{
		Won:        won,
		Mode:       storage.GameMode(g.mode),
		Difficulty: storage.Difficulty(g.difficulty),
	}
	if err := g.storage.RecordGame(result); err != nil {
		log.Printf("Warning: Failed to record game result: %v", err)
	}
}

// startAIThinking starts the engine search in a goroutine.
func (g *Game) startAIThinking() {
	g.aiThinking = true
	snapshot := g.b.Copy()
	side := g.sideToMove

	go func() {
		move, ok := g.engine.BestMove(snapshot, side)
		if !ok {
			g.aiMove <- board.Move{}
			return
		}
		g.aiMove <- move
	}()
}

func (g *Game) checkAIMove() {
	if !g.aiThinking {
		return
	}
	select {
	case move := <-g.aiMove:
		g.aiThinking = false
		if move.Cells == nil {
			g.checkGameEnd()
			return
		}
		g.makeMove(move)
	default:
	}
}

// NewGameAction resets the game to the preferred starting layout.
func (g *Game) NewGameAction() {
	layout := board.LayoutDefault
	if g.prefs != nil {
		layout = layoutFor(g.prefs.StartingLayout)
	}
	g.b = board.NewBoard(layout)
	g.moveHistory = nil
	g.lastMove = nil
	g.clearSelection()
	g.sideToMove = board.Black
	g.gameOver = false
	g.gameResult = ""
	g.aiThinking = false
	g.engine.ClearTranspositionTable()

	select {
	case <-g.aiMove:
	default:
	}

	if g.mode == ModeHumanVsComputer && g.playerColor != board.Black {
		g.startAIThinking()
	}
}

// ToggleModeAction toggles between Human vs Human and Human vs Computer.
func (g *Game) ToggleModeAction() {
	if g.mode == ModeHumanVsHuman {
		g.mode = ModeHumanVsComputer
	} else {
		g.mode = ModeHumanVsHuman
	}
	g.savePreferences()
}

// SetDifficulty sets the AI difficulty.
func (g *Game) SetDifficulty(d Difficulty) {
	g.difficulty = d
	switch d {
	case DifficultyEasy:
		g.engine.SetDifficulty(engine.Easy)
	case DifficultyMedium:
		g.engine.SetDifficulty(engine.Medium)
	case DifficultyHard:
		g.engine.SetDifficulty(engine.Hard)
	}
	g.savePreferences()
}

// Board returns the current board.
func (g *Game) Board() *board.Board {
	return g.b
}

// GameMode returns the current game mode.
func (g *Game) GameMode() GameMode {
	return g.mode
}

// Difficulty returns the current AI difficulty.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// GameOver returns true if the game is over.
func (g *Game) GameOver() bool {
	return g.gameOver
}

// GameResult returns the game result string.
func (g *Game) GameResult() string {
	return g.gameResult
}

// IsAIThinking returns true if the AI is currently thinking.
func (g *Game) IsAIThinking() bool {
	return g.aiThinking
}

// TurnStatus returns a short status string for the current turn.
func (g *Game) TurnStatus() string {
	return g.sideToMove.String() + " to move"
}

// MarbleStatus returns a short summary of marbles lost by each side.
func (g *Game) MarbleStatus() string {
	return fmt.Sprintf("White %d, Black %d", g.b.MarblesLost(board.White), g.b.MarblesLost(board.Black))
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage != nil {
		g.storage.Close()
	}
}
