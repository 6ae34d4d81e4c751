package control

import "errors"

var (
	// ErrInvalidGain indicates a gain that would divide the control law by zero.
	ErrInvalidGain = errors.New("control: invalid gain")

	// ErrUnknownKind indicates a controller kind with no implementation.
	ErrUnknownKind = errors.New("control: unknown controller kind")
)
