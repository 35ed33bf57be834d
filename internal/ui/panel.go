package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button represents a clickable button.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	active     bool // For toggle buttons
}

// Panel is the side panel: new-game button, mode toggle, difficulty
// selector, and turn/result status. No move history, no settings
// screen, no countdown timer — this stays deliberately thin.
type Panel struct {
	game        *Game
	buttons     []*Button
	diffButtons []*Button
}

// NewPanel creates a new panel for the given game.
func NewPanel(g *Game) *Panel {
	p := &Panel{game: g}

	p.buttons = append(p.buttons, &Button{
		X: BoardSize + 20, Y: 20, W: 160, H: 40,
		Label:   "New Game",
		OnClick: g.NewGameAction,
	})

	p.buttons = append(p.buttons, &Button{
		X: BoardSize + 20, Y: 70, W: 160, H: 40,
		Label:   "vs Computer",
		OnClick: g.ToggleModeAction,
	})

	diffY := 125
	p.diffButtons = append(p.diffButtons, &Button{
		X: BoardSize + 20, Y: diffY, W: 50, H: 30,
		Label:   "Easy",
		OnClick: func() { g.SetDifficulty(DifficultyEasy) },
	})
	p.diffButtons = append(p.diffButtons, &Button{
		X: BoardSize + 75, Y: diffY, W: 55, H: 30,
		Label:   "Medium",
		OnClick: func() { g.SetDifficulty(DifficultyMedium) },
	})
	p.diffButtons = append(p.diffButtons, &Button{
		X: BoardSize + 135, Y: diffY, W: 50, H: 30,
		Label:   "Hard",
		OnClick: func() { g.SetDifficulty(DifficultyHard) },
	})

	return p
}

// AnyButtonHovered reports whether the cursor is hovering a button,
// for cursor-shape selection.
func (p *Panel) AnyButtonHovered() bool {
	for _, btn := range p.buttons {
		if btn.hovered {
			return true
		}
	}
	for _, btn := range p.diffButtons {
		if btn.hovered {
			return true
		}
	}
	return false
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.MousePosition()

	for _, btn := range p.buttons {
		btn.hovered = mx >= btn.X && mx < btn.X+btn.W && my >= btn.Y && my < btn.Y+btn.H
	}
	for _, btn := range p.diffButtons {
		btn.hovered = mx >= btn.X && mx < btn.X+btn.W && my >= btn.Y && my < btn.Y+btn.H
	}

	if input.IsLeftJustPressed() {
		for _, btn := range p.buttons {
			if btn.hovered && btn.OnClick != nil {
				btn.OnClick()
				return true
			}
		}
		for _, btn := range p.diffButtons {
			if btn.hovered && btn.OnClick != nil {
				btn.OnClick()
				return true
			}
		}
	}

	return false
}

// Draw renders the panel.
func (p *Panel) Draw(screen *ebiten.Image, r *Renderer) {
	theme := r.Theme()

	vector.DrawFilledRect(screen, float32(BoardSize), 0, float32(PanelWidth), float32(ScreenHeight), theme.Background, false)

	for _, btn := range p.buttons {
		p.drawButton(screen, btn, theme)
	}

	if p.game.GameMode() == ModeHumanVsHuman {
		p.buttons[1].Label = "vs Human"
	} else {
		p.buttons[1].Label = "vs Computer"
	}

	if p.game.GameMode() == ModeHumanVsComputer {
		for i, btn := range p.diffButtons {
			btn.active = Difficulty(i) == p.game.Difficulty()
			p.drawButton(screen, btn, theme)
		}
	}

	marbleY := 200
	p.drawText(screen, "Marbles lost", BoardSize+20, marbleY, theme.TextColor)
	p.drawText(screen, p.game.MarbleStatus(), BoardSize+20, marbleY+24, theme.TextColor)

	if p.game.GameOver() {
		p.drawText(screen, p.game.GameResult(), BoardSize+20, ScreenHeight-60, color.RGBA{255, 200, 0, 255})
	} else if p.game.IsAIThinking() {
		p.drawText(screen, "AI thinking...", BoardSize+20, ScreenHeight-60, color.RGBA{150, 200, 255, 255})
	} else {
		p.drawText(screen, p.game.TurnStatus(), BoardSize+20, ScreenHeight-60, theme.TextColor)
	}
}

func (p *Panel) drawButton(screen *ebiten.Image, btn *Button, theme *Theme) {
	var bgColor color.RGBA
	if btn.active {
		bgColor = color.RGBA{100, 150, 100, 255}
	} else if btn.hovered {
		bgColor = theme.ButtonHover
	} else {
		bgColor = theme.ButtonColor
	}

	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bgColor, false)
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 2, theme.TextColor, false)

	centerX := btn.X + btn.W/2
	centerY := btn.Y + btn.H/2
	p.drawTextCentered(screen, btn.Label, centerX, centerY, theme.TextColor)
}

func (p *Panel) drawText(screen *ebiten.Image, s string, x, y int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (p *Panel) drawTextCentered(screen *ebiten.Image, s string, centerX, centerY int, c color.Color) {
	face := GetRegularFace()
	if face == nil {
		return
	}
	w, h := MeasureText(s, face)
	x := float64(centerX) - w/2
	y := float64(centerY) - h/2
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
