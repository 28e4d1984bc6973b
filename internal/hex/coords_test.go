package hex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetScenario(t *testing.T) {
	h := Axial(1, 1) // s = -2
	oc, err := QOffsetFromCube(Even, h)
	require.NoError(t, err)
	back, err := QOffsetToCube(Even, oc)
	require.NoError(t, err)
	assert.Equal(t, h, back)
}

func TestOffsetKnownValues(t *testing.T) {
	a := Axial(3, 4)
	b := Axial(1, -3)

	oc, _ := QOffsetFromCube(Even, a)
	assert.Equal(t, OffsetCoord{Col: 3, Row: 6}, oc)
	oc, _ = QOffsetFromCube(Odd, b)
	assert.Equal(t, OffsetCoord{Col: 1, Row: -3}, oc)
	oc, _ = ROffsetFromCube(Even, a)
	assert.Equal(t, OffsetCoord{Col: 5, Row: 4}, oc)
	oc, _ = ROffsetFromCube(Odd, b)
	assert.Equal(t, OffsetCoord{Col: -1, Row: -3}, oc)

	h, _ := QOffsetToCube(Even, OffsetCoord{Col: 1, Row: 1})
	assert.Equal(t, Axial(1, 0), h)
	h, _ = ROffsetToCube(Odd, OffsetCoord{Col: 1, Row: 1})
	assert.Equal(t, Axial(1, 1), h)
}

func TestOffsetRoundTrip(t *testing.T) {
	type conv struct {
		name string
		from func(Parity, Hex) (OffsetCoord, error)
		to   func(Parity, OffsetCoord) (Hex, error)
	}
	convs := []conv{
		{"q-offset", QOffsetFromCube, QOffsetToCube},
		{"r-offset", ROffsetFromCube, ROffsetToCube},
	}
	for _, c := range convs {
		for _, p := range []Parity{Even, Odd} {
			for _, h := range Spiral(Axial(0, 0), 6) {
				oc, err := c.from(p, h)
				require.NoError(t, err)
				back, err := c.to(p, oc)
				require.NoError(t, err)
				assert.Equal(t, h, back, "%s %s %s", c.name, p, h)
			}
			for col := -5; col <= 5; col++ {
				for row := -5; row <= 5; row++ {
					oc := OffsetCoord{Col: col, Row: row}
					h, err := c.to(p, oc)
					require.NoError(t, err)
					again, err := c.from(p, h)
					require.NoError(t, err)
					assert.Equal(t, oc, again, "%s %s %s", c.name, p, oc)
				}
			}
		}
	}
}

func TestOffsetInvalidParity(t *testing.T) {
	_, err := QOffsetFromCube(Parity(0), Axial(0, 0))
	assert.ErrorIs(t, err, ErrInvalidParity)
	_, err = QOffsetToCube(Parity(2), OffsetCoord{})
	assert.ErrorIs(t, err, ErrInvalidParity)
	_, err = ROffsetFromCube(Parity(-2), Axial(0, 0))
	assert.ErrorIs(t, err, ErrInvalidParity)
	_, err = ROffsetToCube(Parity(0), OffsetCoord{})
	assert.ErrorIs(t, err, ErrInvalidParity)
}

func TestDoubledKnownValues(t *testing.T) {
	a := Axial(3, 4)
	assert.Equal(t, DoubledCoord{Col: 3, Row: 11}, QDoubledFromCube(a))
	assert.Equal(t, DoubledCoord{Col: 10, Row: 4}, RDoubledFromCube(a))

	h, err := QDoubledToCube(DoubledCoord{Col: 1, Row: 5})
	require.NoError(t, err)
	assert.Equal(t, Axial(1, 2), h)
	h, err = RDoubledToCube(DoubledCoord{Col: 5, Row: 1})
	require.NoError(t, err)
	assert.Equal(t, Axial(2, 1), h)
}

func TestDoubledRoundTrip(t *testing.T) {
	for _, h := range Spiral(Axial(0, 0), 6) {
		back, err := QDoubledToCube(QDoubledFromCube(h))
		require.NoError(t, err)
		assert.Equal(t, h, back)

		back, err = RDoubledToCube(RDoubledFromCube(h))
		require.NoError(t, err)
		assert.Equal(t, h, back)
	}
}

func TestDoubledOddSum(t *testing.T) {
	_, err := QDoubledToCube(DoubledCoord{Col: 1, Row: 2})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
	_, err = RDoubledToCube(DoubledCoord{Col: -3, Row: 0})
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}
