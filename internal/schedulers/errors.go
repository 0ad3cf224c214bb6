package schedulers

import "errors"

var (
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
	ErrInvalidQuantum       = errors.New("quantum must be a positive integer")
	ErrInvalidBoostInterval = errors.New("boost interval must be a positive integer")
	ErrInvalidProcess       = errors.New("invalid process")
	ErrReadyQueueFull       = errors.New("ready queue is full")
)

// IsClientError reports whether err was caused by the request itself rather
// than by the engine.
func IsClientError(err error) bool {
	return errors.Is(err, ErrUnsupportedAlgorithm) ||
		errors.Is(err, ErrInvalidQuantum) ||
		errors.Is(err, ErrInvalidBoostInterval) ||
		errors.Is(err, ErrInvalidProcess)
}
