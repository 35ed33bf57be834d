package ui

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/abalone/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// SpriteManager manages marble sprites.
type SpriteManager struct {
	marbles     map[board.PieceColor]*ebiten.Image
	size        int     // Display size (e.g., 80)
	renderScale float64 // Render at higher resolution for quality (e.g., 3.0)
}

// NewSpriteManager creates a new sprite manager with marbles of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		marbles:     make(map[board.PieceColor]*ebiten.Image),
		size:        size,
		renderScale: 3.0, // Render at 3x resolution for sharp scaling
	}
	sm.loadMarbles()
	return sm
}

// GetMarble returns the sprite for a marble color.
func (sm *SpriteManager) GetMarble(c board.PieceColor) *ebiten.Image {
	return sm.marbles[c]
}

// marbleFiles maps colors to their asset file paths.
var marbleFiles = map[board.PieceColor]string{
	board.White: "assets/pieces/white.svg",
	board.Black: "assets/pieces/black.svg",
}

// loadMarbles loads both marble sprites from embedded SVG files.
func (sm *SpriteManager) loadMarbles() {
	// Render at higher resolution for better quality when scaled
	renderSize := int(float64(sm.size) * sm.renderScale)

	for color, path := range marbleFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read marble asset %s: %v", path, err)
			continue
		}

		// Parse SVG
		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Printf("Failed to parse SVG %s: %v", path, err)
			continue
		}

		// Set target size at higher resolution for quality
		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		// Create RGBA image and render with anti-aliasing at high resolution
		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		sm.marbles[color] = ebiten.NewImageFromImage(rgba)
	}
}

// DrawMarbleAt draws a marble at the given pixel coordinates.
func (sm *SpriteManager) DrawMarbleAt(screen *ebiten.Image, c board.PieceColor, x, y int) {
	if c == board.Empty {
		return
	}
	sprite := sm.GetMarble(c)
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	// Scale down from render resolution to display size
	scale := 1.0 / sm.renderScale
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	// Use linear filtering for smooth scaling
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the size of marble sprites.
func (sm *SpriteManager) Size() int {
	return sm.size
}

// GetHighlightedMarble returns a version of the marble with a highlight effect.
func (sm *SpriteManager) GetHighlightedMarble(c board.PieceColor) *ebiten.Image {
	base := sm.GetMarble(c)
	if base == nil {
		return nil
	}

	bounds := base.Bounds()
	highlighted := ebiten.NewImage(bounds.Dx(), bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.Scale(1.2, 1.2, 1.0, 1.0) // Slightly brighter
	highlighted.DrawImage(base, op)

	return highlighted
}
