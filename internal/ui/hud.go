//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudLineHeight = 14
	hudPadding    = 6
)

// HUD renders a translucent status panel in the top-left corner.
type HUD struct {
	width int
	panel *ebiten.Image
}

// NewHUD constructs a HUD with the provided panel width.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 180
	}
	return &HUD{width: width}
}

// Draw paints the status lines onto screen.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil {
		return
	}
	lines := s.Lines()
	height := len(lines)*hudLineHeight + 2*hudPadding
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	face := basicfont.Face7x13
	for i, line := range lines {
		text.Draw(h.panel, line, face, hudPadding, hudPadding+(i+1)*hudLineHeight-3, color.White)
	}
	screen.DrawImage(h.panel, nil)
}
