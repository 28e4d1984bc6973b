package hex

import "errors"

var (
	// ErrInvalidCoordinate reports a cube triple off the q+r+s=0 plane,
	// or a doubled pair whose coordinates have odd sum.
	ErrInvalidCoordinate = errors.New("invalid hex coordinate")

	// ErrInvalidParity reports an offset parity other than Even or Odd.
	ErrInvalidParity = errors.New("invalid offset parity")

	// ErrIndexOutOfRange reports a direction, diagonal or corner index outside [0, 6).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDegenerateGeometry reports a non-finite length. It is logged, not returned.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)
