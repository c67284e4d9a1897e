// Package engines groups the generation-update backends. Each subpackage
// registers itself with core.Register when imported:
//
//	sequential       single goroutine, row-major output (the reference)
//	parallel         row bands, per-band buffers merged in band order
//	parallel-atomic  row bands, spans reserved with one atomic add per band
//	accel-host       Device protocol emulated in host memory
//	accel-gpu        Kage shader on ebiten images (build tag ebiten)
package engines
