package trajectory

import (
	"errors"
	"fmt"

	"github.com/npillmayer/koishi"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'trajectory'
func tracer() tracing.Trace {
	return tracing.Select("trajectory")
}

var (
	// ErrConfiguration is the root of all errors caused by invalid construction
	// parameters.
	ErrConfiguration = errors.New("configuration error")
	// ErrNumericDegeneracy is the root of errors where a computation would
	// divide by zero or produce an undefined value.
	ErrNumericDegeneracy = errors.New("numeric degeneracy")
)

var (
	// ErrTooFewWaypoints indicates an interpolated trajectory with less than 2 waypoints.
	ErrTooFewWaypoints = fmt.Errorf("%w: trajectory needs at least 2 waypoints", ErrConfiguration)
	// ErrInvalidWaypoint indicates a waypoint with NaN/Inf position or time.
	ErrInvalidWaypoint = fmt.Errorf("%w: waypoint has invalid coordinate or time", ErrConfiguration)
	// ErrNonMonotonicTime indicates waypoint times running backwards.
	ErrNonMonotonicTime = fmt.Errorf("%w: waypoint times must increase", ErrConfiguration)
	// ErrEqualTimes indicates two consecutive waypoints sharing a time.
	ErrEqualTimes = fmt.Errorf("%w: %w: consecutive waypoints share a time", ErrConfiguration, ErrNumericDegeneracy)
	// ErrInvalidAxis indicates a non-positive or non-finite ellipse semi-axis.
	ErrInvalidAxis = fmt.Errorf("%w: ellipse semi-axes must be positive", ErrConfiguration)
	// ErrInvalidParameter indicates a NaN/Inf trajectory parameter.
	ErrInvalidParameter = fmt.Errorf("%w: trajectory parameter must be finite", ErrConfiguration)
)

// Trajectory is anything able to tell its position at time t.
// Implementations must be pure: the same t yields the same point.
type Trajectory interface {
	PositionAt(t float64) koishi.Pair
}

// Bounded is a trajectory with a natural time domain [t0,t1]. Samplers use the
// domain to spread their nodes; trajectories without a domain are sampled over
// [0,1].
type Bounded interface {
	Trajectory
	Domain() (t0, t1 float64)
}

// Domain returns the time domain of tr, [0,1] if tr is not Bounded.
func Domain(tr Trajectory) (float64, float64) {
	if b, ok := tr.(Bounded); ok {
		return b.Domain()
	}
	return 0, 1
}

// Fixed is a trajectory which never moves.
type Fixed koishi.Pair

// PositionAt always returns the fixed point.
func (f Fixed) PositionAt(float64) koishi.Pair {
	return koishi.Pair(f)
}

// Func adapts an ordinary function to the Trajectory interface.
type Func func(t float64) koishi.Pair

// PositionAt calls f(t).
func (f Func) PositionAt(t float64) koishi.Pair {
	return f(t)
}
