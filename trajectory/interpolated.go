package trajectory

import (
	"math"
	"sort"

	"github.com/npillmayer/koishi"
)

// Interpolated is a trajectory along a polyline of waypoints. Between two
// waypoints the position moves linearly in time.
type Interpolated struct {
	waypoints []Waypoint
	cyclic    bool
}

var _ Bounded = (*Interpolated)(nil)

// InterpolatedOption configures an interpolated trajectory.
type InterpolatedOption func(*Interpolated)

// Cyclic makes times outside the domain wrap around, so that the trajectory
// repeats itself. Without it, times before the first waypoint clamp to the
// first waypoint and times after the last one clamp to the last waypoint.
//
// For a closed loop the last waypoint should repeat the position of the first.
func Cyclic() InterpolatedOption {
	return func(it *Interpolated) {
		it.cyclic = true
	}
}

// NewInterpolated creates a trajectory through waypoints, which must be in
// traversal order with strictly increasing times. The slice is copied.
func NewInterpolated(waypoints []Waypoint, opts ...InterpolatedOption) (*Interpolated, error) {
	if err := Validate(waypoints); err != nil {
		return nil, err
	}
	it := &Interpolated{
		waypoints: append([]Waypoint(nil), waypoints...),
	}
	for _, opt := range opts {
		opt(it)
	}
	tracer().Debugf("interpolated trajectory with %d waypoints, t in [%g,%g], cyclic=%v",
		len(it.waypoints), it.waypoints[0].Time, it.waypoints[len(it.waypoints)-1].Time, it.cyclic)
	return it, nil
}

// MustInterpolated is like NewInterpolated, but panics on invalid waypoints.
func MustInterpolated(waypoints []Waypoint, opts ...InterpolatedOption) *Interpolated {
	it, err := NewInterpolated(waypoints, opts...)
	if err != nil {
		panic(err)
	}
	return it
}

// Domain returns the times of the first and the last waypoint.
func (it *Interpolated) Domain() (float64, float64) {
	return it.waypoints[0].Time, it.waypoints[len(it.waypoints)-1].Time
}

// N returns the number of waypoints.
func (it *Interpolated) N() int {
	return len(it.waypoints)
}

// Waypoints returns a copy of the waypoints.
func (it *Interpolated) Waypoints() []Waypoint {
	return append([]Waypoint(nil), it.waypoints...)
}

// IsCyclic is a predicate: does this trajectory repeat itself?
func (it *Interpolated) IsCyclic() bool {
	return it.cyclic
}

// PositionAt returns the position at time t. At the time of a waypoint the
// result is exactly the waypoint's position.
func (it *Interpolated) PositionAt(t float64) koishi.Pair {
	t = it.normalize(t)
	wps := it.waypoints
	// i is the first waypoint with a time > t
	i := sort.Search(len(wps), func(k int) bool { return wps[k].Time > t })
	switch {
	case i == 0:
		return wps[0].At
	case i == len(wps):
		return wps[len(wps)-1].At
	}
	from, to := wps[i-1], wps[i]
	if t == from.Time {
		return from.At
	}
	f := (t - from.Time) / (to.Time - from.Time)
	return from.At.Lerp(to.At, f)
}

// normalize maps t into the domain for cyclic trajectories.
func (it *Interpolated) normalize(t float64) float64 {
	if !it.cyclic {
		return t
	}
	t0, t1 := it.Domain()
	if t >= t0 && t <= t1 {
		return t
	}
	period := t1 - t0
	r := math.Mod(t-t0, period)
	if r < 0 {
		r += period
	}
	return t0 + r
}
