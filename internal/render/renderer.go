//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointPainter draws alive-cell centers into a single RGBA image.
type PointPainter struct {
	w, h int
	side float64
	img  *ebiten.Image
	buf  []byte
}

// NewPointPainter allocates a painter for a w x h pixel canvas where every
// point covers a side x side square.
func NewPointPainter(w, h int, side float64) *PointPainter {
	pp := &PointPainter{w: w, h: h, side: side, buf: make([]byte, 4*w*h)}
	pp.img = ebiten.NewImage(w, h)
	return pp
}

// Blit uploads the populated pairs of pts and draws the canvas onto dst.
func (pp *PointPainter) Blit(dst *ebiten.Image, pts []float32, on, off color.Color) {
	fillPointsRGBA(pp.buf, pp.w, pp.h, pts, pp.side, on, off)
	pp.img.WritePixels(pp.buf)
	dst.DrawImage(pp.img, nil)
}

// Size returns the dimensions of the underlying image.
func (pp *PointPainter) Size() (int, int) { return pp.w, pp.h }
