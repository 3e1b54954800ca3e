/*
Package koishi draws "Genetics of the Subconscious": two ellipses travel along a
user defined parent path and leave a trace, which is written as a pair of
straight-line paths into an SVG file. The result is meant to be smoothed and
decorated later in a vector editor (e.g., Inkscape).

This root package holds the numeric basics: 2D points and affine transforms.
Trajectories live in package trajectory, sampling in package sampling and the
program driver in package drawing.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package koishi

import (
	"fmt"
	"math"
)

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// IsFinite is a predicate: n is neither NaN nor ±Inf.
func IsFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// === Pair Data Type ========================================================

// Pair is a 2D point or vector, x being the real part and y the imaginary part.
// Pairs may be added and subtracted with the usual operators.
type Pair complex128

// Origin is (0,0).
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// F returns both coordinates.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// IsFinite is true if neither coordinate is NaN or infinite.
func (p Pair) IsFinite() bool {
	return IsFinite(real(p)) && IsFinite(imag(p))
}

// Equal compares two pairs within Epsilon.
func (p Pair) Equal(q Pair) bool {
	return Is0(p.X()-q.X()) && Is0(p.Y()-q.Y())
}

// Scaled returns p scaled by factor a.
func (p Pair) Scaled(a float64) Pair {
	return P(p.X()*a, p.Y()*a)
}

// Shifted returns p translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return p + v
}

// Lerp linearly interpolates between p (f = 0) and q (f = 1).
// f is not clamped.
func (p Pair) Lerp(q Pair, f float64) Pair {
	return P(p.X()+f*(q.X()-p.X()), p.Y()+f*(q.Y()-p.Y()))
}
