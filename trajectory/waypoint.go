package trajectory

import (
	"fmt"
	"strings"

	"github.com/npillmayer/koishi"
)

// Waypoint is a point of a parent path together with the time it is reached.
type Waypoint struct {
	At   koishi.Pair
	Time float64
}

// W is a quick notation for a waypoint.
func W(at koishi.Pair, time float64) Waypoint {
	return Waypoint{At: at, Time: time}
}

func (w Waypoint) String() string {
	return fmt.Sprintf("%s@%g", w.At, w.Time)
}

// Leg is a waypoint given in relative notation: a position and the duration it
// takes to travel on to the next leg's position.
type Leg struct {
	X, Y     float64
	Duration float64
}

// FromLegs converts legs to waypoints with absolute times, starting at time 0.
// The duration of the last leg is used only if cyclic is set, in which case a
// closing waypoint returns to the first position.
//
// Every duration which is used has to be positive.
func FromLegs(legs []Leg, cyclic bool) ([]Waypoint, error) {
	if len(legs) == 0 {
		return nil, ErrTooFewWaypoints
	}
	n := len(legs)
	if cyclic {
		n++
	}
	wps := make([]Waypoint, 0, n)
	var time float64
	for i, leg := range legs {
		wps = append(wps, W(koishi.P(leg.X, leg.Y), time))
		if i == len(legs)-1 && !cyclic {
			break
		}
		switch {
		case leg.Duration == 0:
			return nil, fmt.Errorf("%w: leg %d has zero duration", ErrEqualTimes, i)
		case !koishi.IsFinite(leg.Duration):
			return nil, fmt.Errorf("%w: leg %d has duration %g", ErrInvalidWaypoint, i, leg.Duration)
		case leg.Duration < 0:
			return nil, fmt.Errorf("%w: leg %d has duration %g", ErrNonMonotonicTime, i, leg.Duration)
		}
		time += leg.Duration
	}
	if cyclic {
		wps = append(wps, W(koishi.P(legs[0].X, legs[0].Y), time))
	}
	return wps, nil
}

// Validate checks a waypoint list for use as an interpolated trajectory.
func Validate(waypoints []Waypoint) error {
	if len(waypoints) < 2 {
		return fmt.Errorf("%w, got %d", ErrTooFewWaypoints, len(waypoints))
	}
	for i, w := range waypoints {
		if !w.At.IsFinite() || !koishi.IsFinite(w.Time) {
			return fmt.Errorf("%w at waypoint %d: %s", ErrInvalidWaypoint, i, w)
		}
		if i == 0 {
			continue
		}
		prev := waypoints[i-1].Time
		if w.Time == prev {
			return fmt.Errorf("%w: waypoints %d and %d at t=%g", ErrEqualTimes, i-1, i, w.Time)
		}
		if w.Time < prev {
			return fmt.Errorf("%w: waypoint %d at t=%g follows t=%g", ErrNonMonotonicTime, i, w.Time, prev)
		}
	}
	return nil
}

// AsString returns a list of waypoints as a (debugging) string.
func AsString(waypoints []Waypoint) string {
	var b strings.Builder
	for i, w := range waypoints {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(w.String())
	}
	return b.String()
}
