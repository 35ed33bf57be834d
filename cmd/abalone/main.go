// Command abalone launches the graphical Abalone game.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/abalone/internal/ui"
)

func main() {
	game := ui.NewGame()
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Abalone")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Enable smooth scaling when window is resized or fullscreen
	ebiten.SetScreenFilterEnabled(true)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
