package bootrecord

import "errors"

// Status mirrors the numeric codes of the on-device ABI so hosts that
// surface raw codes can translate errors losslessly.
type Status int32

const (
	// StatusSuccess indicates the operation completed.
	StatusSuccess Status = 0
	// StatusInvalidParameters indicates a nil input, a misaligned region,
	// or use of a recorder that was never initialized.
	StatusInvalidParameters Status = -1
	// StatusInsufficientMemory indicates the region cannot hold the stage
	// header plus at least one entry.
	StatusInsufficientMemory Status = -2
	// StatusOverflow indicates the region is full.
	StatusOverflow Status = -3
)

var (
	// ErrInvalidParameters is returned for nil inputs, misaligned regions,
	// and any use of a Recorder that was never initialized.
	ErrInvalidParameters = errors.New("bootrecord: invalid parameters")
	// ErrInsufficientMemory is returned when the region is too small to
	// hold the stage header plus at least one profile entry.
	ErrInsufficientMemory = errors.New("bootrecord: region too small")
	// ErrOverflow is returned once the region is full. Entries recorded so
	// far stay valid and readable.
	ErrOverflow = errors.New("bootrecord: region full")
)

// StatusOf maps an error returned by this package to its ABI status code.
// A nil error maps to StatusSuccess; unrecognized errors map to
// StatusInvalidParameters.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrInsufficientMemory):
		return StatusInsufficientMemory
	case errors.Is(err, ErrOverflow):
		return StatusOverflow
	default:
		return StatusInvalidParameters
	}
}
