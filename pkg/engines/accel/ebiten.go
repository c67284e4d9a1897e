//go:build ebiten

package accel

import (
	_ "embed"
	"fmt"
	"image"

	"lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed life.kage
var lifeShader []byte

// GPUName is the registry key of the engine backed by EbitenDevice.
const GPUName = "accel-gpu"

// EbitenDevice runs the life kernel as a Kage fragment shader over two
// offscreen images, one fragment per cell. ebiten only reads pixels back
// once the game loop is running, so Advance must be called from
// ebiten.Game.Update.
type EbitenDevice struct {
	cols, rows int
	shader     *ebiten.Shader
	images     [2]*ebiten.Image
	in         int
	upload     []byte
	staging    []byte
}

// NewEbitenDevice returns an unopened device.
func NewEbitenDevice() *EbitenDevice { return &EbitenDevice{} }

// Name identifies the device.
func (d *EbitenDevice) Name() string { return GPUName }

// Open compiles the shader and allocates the images and RGBA transfer
// buffers.
func (d *EbitenDevice) Open(cols, rows int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("allocate %dx%d images: %v", cols, rows, r)
		}
	}()
	shader, err := ebiten.NewShader(lifeShader)
	if err != nil {
		return fmt.Errorf("compile kernel: %w", err)
	}
	d.shader = shader
	d.cols, d.rows = cols, rows
	for i := range d.images {
		d.images[i] = ebiten.NewImageWithOptions(image.Rect(0, 0, cols, rows), &ebiten.NewImageOptions{Unmanaged: true})
	}
	d.upload = make([]byte, 4*cols*rows)
	d.staging = make([]byte, 4*cols*rows)
	d.in = 0
	return nil
}

// Upload expands cells into RGBA and writes them to the input image.
func (d *EbitenDevice) Upload(cells []uint8) error {
	if len(cells) != d.cols*d.rows {
		return fmt.Errorf("%w: got %d cells, want %d", core.ErrGridSize, len(cells), d.cols*d.rows)
	}
	for i, c := range cells {
		v := byte(0)
		if c != core.Dead {
			v = 0xff
		}
		base := i * 4
		d.upload[base+0] = v
		d.upload[base+1] = v
		d.upload[base+2] = v
		d.upload[base+3] = v
	}
	d.images[d.in].WritePixels(d.upload)
	return nil
}

// Dispatch draws the output image with the shader reading the input image.
func (d *EbitenDevice) Dispatch() error {
	if d.shader == nil {
		return fmt.Errorf("dispatch: device not open")
	}
	op := &ebiten.DrawRectShaderOptions{Blend: ebiten.BlendCopy}
	op.Images[0] = d.images[d.in]
	d.images[1-d.in].DrawRectShader(d.cols, d.rows, d.shader, op)
	return nil
}

// Readback reads the output image and thresholds its alpha channel.
func (d *EbitenDevice) Readback(dst []uint8) (err error) {
	if len(dst) != d.cols*d.rows {
		return fmt.Errorf("%w: got %d cells, want %d", core.ErrGridSize, len(dst), d.cols*d.rows)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pixels: %v", r)
		}
	}()
	d.images[1-d.in].ReadPixels(d.staging)
	for i := range dst {
		if d.staging[i*4+3] >= 0x80 {
			dst[i] = core.Alive
			continue
		}
		dst[i] = core.Dead
	}
	return nil
}

// Swap exchanges input and output images.
func (d *EbitenDevice) Swap() { d.in = 1 - d.in }

// Close disposes the images and the shader.
func (d *EbitenDevice) Close() error {
	for i, img := range d.images {
		if img != nil {
			img.Dispose()
			d.images[i] = nil
		}
	}
	if d.shader != nil {
		d.shader.Dispose()
		d.shader = nil
	}
	return nil
}

func init() {
	core.Register(GPUName, func(cfg core.Config) (core.Engine, error) {
		return New(cfg, NewEbitenDevice())
	})
}
