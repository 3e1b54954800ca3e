/*
Package trajectory computes positions of moving points. A trajectory answers the
single question "where am I at time t?".

Two kinds of trajectories combine to draw a figure:

  - Interpolated moves along a polyline through user supplied waypoints.
    Every waypoint carries the time it is reached; movement between two
    waypoints is linear in time.
  - Elliptic circles around an ellipse, the center of which is either fixed or
    follows another trajectory (the parent).

Both are pure functions of t: evaluating a trajectory never changes it, so the
same t always yields the same point, and trajectories may be shared freely.

Waypoint times are absolute and strictly increasing. Two consecutive waypoints
with the same time are rejected, as there is no sensible way to travel between
them. To let the parent rest at a point, repeat the point with a later time:

	W(P(0,0), 0), W(P(0,0), 5), W(P(10,10), 6)    // rest at the origin until t=5

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package trajectory
