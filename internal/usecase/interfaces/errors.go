package interfaces

import "errors"

// ErrVersionConflict is returned by repositories when a conditional write
// finds the stored item at a different version than the caller read.
var ErrVersionConflict = errors.New("entity was modified concurrently")
