package accel

import (
	"fmt"

	"lifegrid/pkg/core"
	"lifegrid/pkg/rules"
)

// Device is the accelerator side of the engine. Implementations keep the
// grid in two device-resident images of cols x rows cells and run one fixed
// kernel that reads the input image and writes the output image, one
// work-item per cell.
//
// The engine owns the call order: Open once, Upload to seed, then per
// generation Dispatch, Readback, Swap; Close last.
type Device interface {
	Name() string
	// Open loads the kernel and allocates both images and the host-visible
	// transfer buffers.
	Open(cols, rows int) error
	// Upload copies row-major 0/1 cells into the input image.
	Upload(cells []uint8) error
	// Dispatch runs the kernel over cols x rows work-items.
	Dispatch() error
	// Readback blocks until the output image has been copied into dst.
	Readback(dst []uint8) error
	// Swap exchanges the input and output images.
	Swap()
	Close() error
}

// HostName is the registry key of the engine backed by HostDevice.
const HostName = "accel-host"

// kernel computes the next state of work-item (x, y) from the input image.
type kernel func(src []uint8, cols, rows, x, y int) uint8

func lifeKernel(src []uint8, cols, rows, x, y int) uint8 {
	return rules.NextState(src[y*cols+x], rules.Count(src, cols, rows, x, y))
}

// HostDevice emulates an accelerator in host memory. It follows the same
// image/transfer-buffer protocol as a real device, which makes it useful for
// headless runs and for testing the engine's dense-to-sparse path.
type HostDevice struct {
	cols, rows int
	kernel     kernel
	images     [2][]uint8
	staging    []uint8
	in         int
}

// NewHostDevice returns an unopened host device.
func NewHostDevice() *HostDevice { return &HostDevice{} }

// Name identifies the device.
func (d *HostDevice) Name() string { return HostName }

// Open allocates the images and transfer buffer.
func (d *HostDevice) Open(cols, rows int) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: image size %dx%d", core.ErrInvalidConfig, cols, rows)
	}
	d.cols, d.rows = cols, rows
	d.kernel = lifeKernel
	d.images = [2][]uint8{make([]uint8, cols*rows), make([]uint8, cols*rows)}
	d.staging = make([]uint8, cols*rows)
	d.in = 0
	return nil
}

// Upload stages cells and copies them into the input image.
func (d *HostDevice) Upload(cells []uint8) error {
	if len(cells) != len(d.staging) {
		return fmt.Errorf("%w: got %d cells, want %d", core.ErrGridSize, len(cells), len(d.staging))
	}
	copy(d.staging, cells)
	copy(d.images[d.in], d.staging)
	return nil
}

// Dispatch evaluates the kernel for every work-item.
func (d *HostDevice) Dispatch() error {
	if d.kernel == nil {
		return fmt.Errorf("dispatch: device not open")
	}
	src, dst := d.images[d.in], d.images[1-d.in]
	for y := 0; y < d.rows; y++ {
		for x := 0; x < d.cols; x++ {
			dst[y*d.cols+x] = d.kernel(src, d.cols, d.rows, x, y)
		}
	}
	return nil
}

// Readback copies the output image into dst through the transfer buffer.
func (d *HostDevice) Readback(dst []uint8) error {
	if len(dst) != len(d.staging) {
		return fmt.Errorf("%w: got %d cells, want %d", core.ErrGridSize, len(dst), len(d.staging))
	}
	copy(d.staging, d.images[1-d.in])
	copy(dst, d.staging)
	return nil
}

// Swap exchanges input and output images.
func (d *HostDevice) Swap() { d.in = 1 - d.in }

// Close drops the images.
func (d *HostDevice) Close() error {
	d.images = [2][]uint8{}
	d.staging = nil
	d.kernel = nil
	return nil
}
