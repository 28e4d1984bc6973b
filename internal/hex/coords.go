package hex

import "fmt"

// Parity selects which rows or columns are shoved in offset coordinates.
type Parity int

const (
	Even Parity = 1  // even rows/columns shoved
	Odd  Parity = -1 // odd rows/columns shoved
)

func (p Parity) valid() error {
	if p != Even && p != Odd {
		return fmt.Errorf("%w: %d (want Even=+1 or Odd=-1)", ErrInvalidParity, int(p))
	}
	return nil
}

// String returns "even" or "odd".
func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return fmt.Sprintf("Parity(%d)", int(p))
	}
}

// OffsetCoord is a (col, row) position in an offset layout.
type OffsetCoord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// String returns the coordinate pair.
func (c OffsetCoord) String() string {
	return fmt.Sprintf("OffsetCoord(%d, %d)", c.Col, c.Row)
}

// QOffsetFromCube converts to column-shoved offset coordinates (flat-top grids).
func QOffsetFromCube(p Parity, h Hex) (OffsetCoord, error) {
	if err := p.valid(); err != nil {
		return OffsetCoord{}, err
	}
	return OffsetCoord{
		Col: h.Q,
		Row: h.R + (h.Q+int(p)*(h.Q&1))/2,
	}, nil
}

// QOffsetToCube is the inverse of QOffsetFromCube.
func QOffsetToCube(p Parity, c OffsetCoord) (Hex, error) {
	if err := p.valid(); err != nil {
		return Hex{}, err
	}
	return Hex{
		Q: c.Col,
		R: c.Row - (c.Col+int(p)*(c.Col&1))/2,
	}, nil
}

// ROffsetFromCube converts to row-shoved offset coordinates (pointy-top grids).
func ROffsetFromCube(p Parity, h Hex) (OffsetCoord, error) {
	if err := p.valid(); err != nil {
		return OffsetCoord{}, err
	}
	return OffsetCoord{
		Col: h.Q + (h.R+int(p)*(h.R&1))/2,
		Row: h.R,
	}, nil
}

// ROffsetToCube is the inverse of ROffsetFromCube.
func ROffsetToCube(p Parity, c OffsetCoord) (Hex, error) {
	if err := p.valid(); err != nil {
		return Hex{}, err
	}
	return Hex{
		Q: c.Col - (c.Row+int(p)*(c.Row&1))/2,
		R: c.Row,
	}, nil
}

// DoubledCoord is a (col, row) position with one axis doubled.
// Valid pairs always have an even col+row. Doubled conversions take no parity.
type DoubledCoord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// String returns the coordinate pair.
func (c DoubledCoord) String() string {
	return fmt.Sprintf("DoubledCoord(%d, %d)", c.Col, c.Row)
}

func (c DoubledCoord) valid() error {
	if (c.Col+c.Row)&1 != 0 {
		return fmt.Errorf("%w: doubled %s has odd col+row", ErrInvalidCoordinate, c)
	}
	return nil
}

// QDoubledFromCube doubles the row axis.
func QDoubledFromCube(h Hex) DoubledCoord {
	return DoubledCoord{Col: h.Q, Row: 2*h.R + h.Q}
}

// QDoubledToCube is the inverse of QDoubledFromCube.
func QDoubledToCube(c DoubledCoord) (Hex, error) {
	if err := c.valid(); err != nil {
		return Hex{}, err
	}
	return Hex{Q: c.Col, R: (c.Row - c.Col) / 2}, nil
}

// RDoubledFromCube doubles the column axis.
func RDoubledFromCube(h Hex) DoubledCoord {
	return DoubledCoord{Col: 2*h.Q + h.R, Row: h.R}
}

// RDoubledToCube is the inverse of RDoubledFromCube.
func RDoubledToCube(c DoubledCoord) (Hex, error) {
	if err := c.valid(); err != nil {
		return Hex{}, err
	}
	return Hex{Q: (c.Col - c.Row) / 2, R: c.Row}, nil
}
