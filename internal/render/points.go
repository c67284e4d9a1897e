package render

import (
	"image/color"
	"math"
)

// fillPointsRGBA clears a w x h RGBA buffer to off and paints one side x side
// square of on around every (x, y) center in pts. Squares are clipped to
// the buffer.
func fillPointsRGBA(buf []byte, w, h int, pts []float32, side float64, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i := 0; i < w*h; i++ {
		base := i * 4
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}

	half := side / 2
	for i := 0; i+1 < len(pts); i += 2 {
		cx, cy := float64(pts[i]), float64(pts[i+1])
		x0 := max(0, int(math.Floor(cx-half)))
		y0 := max(0, int(math.Floor(cy-half)))
		x1 := min(w, int(math.Ceil(cx+half)))
		y1 := min(h, int(math.Ceil(cy+half)))
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				base := (y*w + x) * 4
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
			}
		}
	}
}
