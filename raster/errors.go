package raster

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat indicates a file extension no decoder handles.
	ErrUnsupportedFormat = errors.New("raster: unsupported format")
	// ErrMalformedGrid indicates an ASCII grid whose header or body is invalid.
	ErrMalformedGrid = errors.New("raster: malformed ascii grid")
)

// LoadError reports that a raster could not be opened, read or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("raster: load %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
