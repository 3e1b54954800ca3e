package koishi

import (
	"fmt"
	"math"
)

// AT is an affine transform, a 3x3 matrix flattened by rows. The last row is
// always (0,0,1) for the transforms created by this package.
type AT [9]float64

func (m *AT) set(row, col int, value float64) {
	m[row*3+col] = value
}

func (m AT) get(row, col int) float64 {
	return m[row*3+col]
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	var m AT
	m.set(0, 0, 1)
	m.set(1, 1, 1)
	m.set(2, 2, 1)
	return m
}

// Translation moves a point by v.
func Translation(v Pair) AT {
	m := Identity()
	m.set(0, 2, v.X())
	m.set(1, 2, v.Y())
	return m
}

// Scaling stretches a point by sx horizontally and sy vertically.
func Scaling(sx, sy float64) AT {
	m := Identity()
	m.set(0, 0, sx)
	m.set(1, 1, sy)
	return m
}

// Rotation turns a point counter-clockwise around the origin.
// Argument is in radians.
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	m := Identity()
	m.set(0, 0, cos)
	m.set(0, 1, -sin)
	m.set(1, 0, sin)
	m.set(1, 1, cos)
	return m
}

// Combine returns the transform which applies m first, then n.
// Neither argument is changed.
func (m AT) Combine(n AT) AT {
	var o AT
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += n.get(row, k) * m.get(k, col)
			}
			o.set(row, col, sum)
		}
	}
	return o
}

// Transform a 2D-point. The argument is unchanged and a new pair is returned.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(
		m.get(0, 0)*x+m.get(0, 1)*y+m.get(0, 2),
		m.get(1, 0)*x+m.get(1, 1)*y+m.get(1, 2),
	)
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g|%g,%g,%g]",
		m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8])
}
