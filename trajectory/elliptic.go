package trajectory

import (
	"fmt"
	"math"

	"github.com/npillmayer/koishi"
)

// Elliptic is a trajectory around an ellipse. The ellipse's center either stays
// fixed or follows a parent trajectory.
//
// At time t the position is
//
//	center = parent(t · parentScale)
//	angle  = phase + ω · t · ellipseScale
//	pos    = T(center) · R(θ) · S(a,b) · (cos(angle), sin(angle))
//
// where a and b are the semi-axes, S(a,b) scales the unit circle to the
// ellipse, R(θ) is a rotation by θ and T moves the result to the center.
// With the default scales of 1 and ω = 2π, the ellipse is traversed exactly
// once for t in [0,1].
type Elliptic struct {
	parent       Trajectory
	a, b         float64 // semi-axes along the (unrotated) x- and y-axis
	rotation     float64 // θ
	omega        float64 // angular speed, radians per unit of t
	phase        float64 // angle at t = 0
	parentScale  float64
	ellipseScale float64
	shape        koishi.AT // R(θ)·S(a,b), pre-calculated
}

var _ Bounded = (*Elliptic)(nil)

// EllipticOption configures an elliptic trajectory.
type EllipticOption func(*Elliptic)

// WithParent lets the ellipse's center follow parent.
func WithParent(parent Trajectory) EllipticOption {
	return func(e *Elliptic) {
		e.parent = parent
	}
}

// WithCenter fixes the ellipse's center at c. Replaces any parent.
func WithCenter(c koishi.Pair) EllipticOption {
	return func(e *Elliptic) {
		e.parent = Fixed(c)
	}
}

// WithRotation rotates the ellipse counter-clockwise by theta radians.
func WithRotation(theta float64) EllipticOption {
	return func(e *Elliptic) {
		e.rotation = theta
	}
}

// WithAngularSpeed sets ω in radians per unit of t. Negative values reverse
// the direction. Default is 2π.
func WithAngularSpeed(omega float64) EllipticOption {
	return func(e *Elliptic) {
		e.omega = omega
	}
}

// WithPhase sets the angle on the ellipse at t = 0.
func WithPhase(phi float64) EllipticOption {
	return func(e *Elliptic) {
		e.phase = phi
	}
}

// WithParentScale maps t to the parent's time t · s.
func WithParentScale(s float64) EllipticOption {
	return func(e *Elliptic) {
		e.parentScale = s
	}
}

// WithEllipseScale multiplies the angular progress by s.
func WithEllipseScale(s float64) EllipticOption {
	return func(e *Elliptic) {
		e.ellipseScale = s
	}
}

// NewElliptic creates an elliptic trajectory with semi-axes a and b, both of
// which have to be positive. Without WithParent or WithCenter the ellipse is
// centered at the origin.
func NewElliptic(a, b float64, opts ...EllipticOption) (*Elliptic, error) {
	e := &Elliptic{
		parent:       Fixed(koishi.Origin),
		a:            a,
		b:            b,
		omega:        2 * math.Pi,
		parentScale:  1,
		ellipseScale: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	if !(a > 0) || !(b > 0) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("%w, got a=%g, b=%g", ErrInvalidAxis, a, b)
	}
	params := []float64{e.rotation, e.omega, e.phase, e.parentScale, e.ellipseScale}
	for _, p := range params {
		if !koishi.IsFinite(p) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, params)
		}
	}
	if e.parent == nil {
		e.parent = Fixed(koishi.Origin)
	}
	e.shape = koishi.Scaling(a, b).Combine(koishi.Rotation(e.rotation))
	tracer().Debugf("elliptic trajectory a=%g b=%g θ=%g ω=%g", a, b, e.rotation, e.omega)
	return e, nil
}

// MustElliptic is like NewElliptic, but panics on invalid parameters.
func MustElliptic(a, b float64, opts ...EllipticOption) *Elliptic {
	e, err := NewElliptic(a, b, opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// Domain is [0,1].
func (e *Elliptic) Domain() (float64, float64) {
	return 0, 1
}

// Parent returns the trajectory the center follows.
func (e *Elliptic) Parent() Trajectory {
	return e.parent
}

// Center returns the ellipse's center at time t.
func (e *Elliptic) Center(t float64) koishi.Pair {
	return e.parent.PositionAt(t * e.parentScale)
}

// unit returns the point on the unit circle for time t.
func (e *Elliptic) unit(t float64) koishi.Pair {
	sin, cos := math.Sincos(e.phase + e.omega*t*e.ellipseScale)
	return koishi.P(cos, sin)
}

// Offset returns the position relative to the center at time t.
func (e *Elliptic) Offset(t float64) koishi.Pair {
	return e.shape.Transform(e.unit(t))
}

// PositionAt returns center plus offset at time t.
func (e *Elliptic) PositionAt(t float64) koishi.Pair {
	return e.shape.Combine(koishi.Translation(e.Center(t))).Transform(e.unit(t))
}
