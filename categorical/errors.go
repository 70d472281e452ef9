package categorical

import (
	"errors"
	"fmt"
)

// Sentinel errors for categorical sniffing and encoding.
var (
	// ErrInvalidShape indicates input data of rank greater than one.
	ErrInvalidShape = errors.New("categorical: data cannot be more than 1-dimensional")

	// ErrUnhashable indicates a data value or level that cannot be used as
	// a set or map key.
	ErrUnhashable = errors.New("categorical: all items must be hashable")

	// ErrLevelMismatch indicates a declared level sequence that disagrees,
	// in value or in order, with the expected levels.
	ErrLevelMismatch = errors.New("categorical: mismatching levels")

	// ErrUnknownLevel indicates an observed value that matches none of the
	// expected levels.
	ErrUnknownLevel = errors.New("categorical: observation does not match any expected level")

	// ErrSnifferFinalized indicates a Sniff call after LevelsContrast
	// froze the sniffer.
	ErrSnifferFinalized = errors.New("categorical: sniffer is already finalized")
)

// OriginError attaches an opaque provenance token to a failure. The token
// is supplied by the caller via WithOrigin and forwarded unmodified; this
// package never inspects it. Unwrap exposes the underlying sentinel chain,
// so errors.Is keeps working through the wrapper.
type OriginError struct {
	// Origin is the caller's diagnostic token, forwarded as-is.
	Origin any

	// Err is the underlying failure.
	Err error
}

// Error renders the underlying failure followed by the origin token.
func (e *OriginError) Error() string {
	return fmt.Sprintf("%v (origin: %v)", e.Err, e.Origin)
}

// Unwrap returns the wrapped failure.
func (e *OriginError) Unwrap() error { return e.Err }

// wrapOrigin attaches origin to err when a token was configured.
func wrapOrigin(origin any, err error) error {
	if origin == nil {
		return err
	}
	return &OriginError{Origin: origin, Err: err}
}
