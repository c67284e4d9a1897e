package core

import "errors"

var (
	// ErrInvalidConfig reports a configuration rejected at construction.
	ErrInvalidConfig = errors.New("invalid engine config")
	// ErrUnknownEngine reports a lookup for an unregistered backend name.
	ErrUnknownEngine = errors.New("unknown engine")
	// ErrGridSize reports a cell slice whose length does not match rows*cols.
	ErrGridSize = errors.New("cell slice does not match grid size")
	// ErrClosed is returned by engines after Close.
	ErrClosed = errors.New("engine closed")
	// ErrFaulted marks an engine that aborted mid-generation and can no
	// longer advance.
	ErrFaulted = errors.New("engine faulted")
)
