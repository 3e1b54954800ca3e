/*
Package polygon holds sample sets as polylines (open) or polygons (closed),
and calculates their extent.

Polygons are built with a builder pattern:

	pg := NullPolygon().Knot(P(0,0)).Knot(P(1,3)).Knot(P(3,0)).Cycle()

Bounding box calculations are done by package polyclip.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"errors"
	"fmt"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/koishi"
	"github.com/npillmayer/schuko/tracing"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// ErrEmpty indicates a bounding box request without any knots.
var ErrEmpty = errors.New("polygon has no knots")

// Polygon is a sequence of knots connected by straight lines. A polygon is
// either open (a polyline) or closed (a cycle).
type Polygon struct {
	knots []koishi.Pair
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by Knot.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPairs creates an open polygon from a list of knots. The list is copied.
func FromPairs(knots []koishi.Pair) *Polygon {
	pg := &Polygon{knots: make([]koishi.Pair, 0, len(knots))}
	for _, k := range knots {
		pg.Knot(k)
	}
	return pg.End()
}

// Box creates a rectangle, given two opposite corners.
func Box(p, q koishi.Pair) *Polygon {
	return NullPolygon().
		Knot(p).Knot(koishi.P(q.X(), p.Y())).
		Knot(q).Knot(koishi.P(p.X(), q.Y())).
		Cycle()
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p koishi.Pair) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// End finishes an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Pt returns knot i. For cycles, i is taken modulo N.
func (pg *Polygon) Pt(i int) koishi.Pair {
	if pg.cycle {
		i = ((i % pg.N()) + pg.N()) % pg.N()
	}
	return pg.knots[i]
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, len(pg.knots))
	for _, k := range pg.knots {
		c = append(c, polyclip.Point{X: k.X(), Y: k.Y()})
	}
	return c
}

// BoundingBox returns the lower left and upper right corner of the smallest
// axis-aligned rectangle containing all knots of all polygons.
func BoundingBox(pgs ...*Polygon) (koishi.Pair, koishi.Pair, error) {
	var poly polyclip.Polygon
	for _, pg := range pgs {
		if pg == nil || pg.N() == 0 {
			continue
		}
		poly = append(poly, pg.contour())
	}
	if len(poly) == 0 {
		return koishi.Origin, koishi.Origin, ErrEmpty
	}
	bb := poly.BoundingBox()
	L().Debugf("bounding box of %d polygons = [%g,%g]..[%g,%g]", len(poly),
		bb.Min.X, bb.Min.Y, bb.Max.X, bb.Max.Y)
	return koishi.P(bb.Min.X, bb.Min.Y), koishi.P(bb.Max.X, bb.Max.Y), nil
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i := range pg.N() {
		if i > 0 {
			b.WriteString(" -- ")
		}
		k := pg.Pt(i)
		b.WriteString(fmt.Sprintf("(%.4g,%.4g)", k.X(), k.Y()))
	}
	if pg.IsCycle() {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
