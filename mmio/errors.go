package mmio

import "errors"

// Sentinel errors for mmio operations.
var (
	// ErrBadLength indicates a mapping request with a non-positive or
	// non-64-bit-aligned length.
	ErrBadLength = errors.New("mmio: window length must be a positive multiple of 8 bytes")
	// ErrMap indicates the physical window could not be mapped.
	ErrMap = errors.New("mmio: mapping could not be established")
)
