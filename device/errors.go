package device

import "errors"

// Sentinel errors for device operations. Match with errors.Is; context
// is added by wrapping at the call site.
var (
	// ErrMapFailed indicates an FPGA region could not be mapped. This is
	// permanent for the handle: Open aborts and releases any partial
	// mapping.
	ErrMapFailed = errors.New("device: failed to open direct access to FPGA region")
	// ErrConflictingTarget indicates a staged bit belongs to a different
	// 64-bit word than the one already pending. The pending transaction
	// is left untouched.
	ErrConflictingTarget = errors.New("device: cannot stage bits in more than one word per commit")
	// ErrNothingPending indicates Commit was called with nothing staged.
	ErrNothingPending = errors.New("device: nothing to commit")
	// ErrOutOfRange indicates a coordinate, coefficient group or dipole
	// index outside the valid set. The operation does not mutate state.
	ErrOutOfRange = errors.New("device: index out of range")
	// ErrShortImage indicates a truncated snapshot image on read or
	// write. Partial data is reported, never silently applied.
	ErrShortImage = errors.New("device: short snapshot image")
)
