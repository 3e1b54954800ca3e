/*
Package svgout writes sampled point sequences as SVG paths.

Every sequence becomes one open <path> element. The first node is an absolute
move-to, all following nodes are relative line-to commands, which is what vector
editors like Inkscape produce themselves and keeps the output compact. Relative
steps are derived from rounded absolute positions, so rounding errors do not
accumulate along a path.

Writing is all-or-nothing: the document is rendered to memory first and only
copied to the destination if rendering succeeded.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package svgout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	svg "github.com/ajstarks/svgo"
	"github.com/npillmayer/koishi"
	"github.com/npillmayer/koishi/polygon"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'svgout'
func tracer() tracing.Trace {
	return tracing.Select("svgout")
}

var (
	// ErrEmptyPath indicates a path with less than 2 nodes.
	ErrEmptyPath = errors.New("path needs at least 2 nodes")
	// ErrNonFinite indicates a NaN/Inf coordinate.
	ErrNonFinite = errors.New("path has non-finite coordinate")
	// ErrNoPaths indicates a document without any paths.
	ErrNoPaths = errors.New("document has no paths")
	// ErrInvalidID indicates a path id which is not an XML name.
	ErrInvalidID = errors.New("path id must be an XML name")
	// ErrInvalidStyle indicates a style which would leave the style attribute.
	ErrInvalidStyle = errors.New("path style must not contain '\"' or '='")
	// ErrOutOfRange indicates a figure too large for an integer viewBox.
	ErrOutOfRange = errors.New("figure exceeds viewBox range")
)

// maxExtent limits viewBox coordinates and sizes to the int32 range.
const maxExtent = math.MaxInt32

// DefaultPrecision is the number of decimals written for coordinates.
const DefaultPrecision = 4

// DefaultMargin is the space around the bounding box of all paths.
const DefaultMargin = 10.0

// Style returns a CSS style for an unfilled path with the given stroke color
// and width.
func Style(color string, width float64) string {
	return fmt.Sprintf("stroke:%s;fill:none;stroke-width:%g;stroke-miterlimit:4;stroke-dasharray:none",
		color, width)
}

// Path is a named, styled sequence of nodes.
type Path struct {
	ID    string
	Nodes []koishi.Pair
	Style string
}

// Document collects paths to be written as one SVG document.
type Document struct {
	Title     string
	Precision int     // decimals of coordinates
	Margin    float64 // added around the bounding box
	Absolute  bool    // use absolute line-to commands
	paths     []Path
}

// New creates an empty document with default precision and margin.
func New(title string) *Document {
	return &Document{
		Title:     title,
		Precision: DefaultPrecision,
		Margin:    DefaultMargin,
	}
}

// ValidID checks that id may be used as the id of an SVG element: a letter or
// '_' followed by letters, digits, '_', '-' or '.'.
func ValidID(id string) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidID)
	}
	for i, r := range id {
		switch {
		case r == '_', unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return fmt.Errorf("%w: %q", ErrInvalidID, id)
		}
	}
	return nil
}

// ValidStyle checks that style can be written as the value of a style
// attribute.
func ValidStyle(style string) error {
	if strings.ContainsAny(style, `"=`) {
		return fmt.Errorf("%w: %q", ErrInvalidStyle, style)
	}
	return nil
}

// Add appends a path. The nodes are copied.
func (doc *Document) Add(id string, nodes []koishi.Pair, style string) error {
	if err := ValidID(id); err != nil {
		return err
	}
	if err := ValidStyle(style); err != nil {
		return err
	}
	if len(nodes) < 2 {
		return fmt.Errorf("%w: path %q has %d", ErrEmptyPath, id, len(nodes))
	}
	for i, p := range nodes {
		if !p.IsFinite() {
			return fmt.Errorf("%w: path %q, node %d = %s", ErrNonFinite, id, i, p)
		}
	}
	doc.paths = append(doc.paths, Path{
		ID:    id,
		Nodes: append([]koishi.Pair(nil), nodes...),
		Style: style,
	})
	return nil
}

// Paths returns the paths added so far.
func (doc *Document) Paths() []Path {
	return doc.paths
}

// ViewBox returns origin, width and height of the area covering all paths
// plus the margin, rounded outwards to integers.
func (doc *Document) ViewBox() (minx, miny, width, height int, err error) {
	pgs := make([]*polygon.Polygon, len(doc.paths))
	for i, p := range doc.paths {
		pgs[i] = polygon.FromPairs(p.Nodes)
	}
	lo, hi, err := polygon.BoundingBox(pgs...)
	if err != nil {
		return 0, 0, 0, 0, ErrNoPaths
	}
	margin := koishi.P(1, 1).Scaled(doc.Margin)
	box := polygon.Box(lo.Shifted(-margin), hi.Shifted(margin))
	tracer().Debugf("view box = %s", polygon.AsString(box))
	x0, y0 := math.Floor(box.Pt(0).X()), math.Floor(box.Pt(0).Y())
	x1, y1 := math.Ceil(box.Pt(2).X()), math.Ceil(box.Pt(2).Y())
	for _, v := range []float64{x0, y0, x1, y1, x1 - x0, y1 - y0} {
		if math.Abs(v) > maxExtent {
			return 0, 0, 0, 0, fmt.Errorf("%w: [%g,%g]..[%g,%g]", ErrOutOfRange, x0, y0, x1, y1)
		}
	}
	w, h := int(x1-x0), int(y1-y0)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return int(x0), int(y0), w, h, nil
}

// PathData returns the content of a path's d-attribute for nodes.
func (doc *Document) PathData(nodes []koishi.Pair) string {
	if len(nodes) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(nodes)*24)
	first := doc.round(nodes[0])
	buf = append(buf, 'M', ' ')
	buf = doc.appendPair(buf, first)
	prev := first
	for _, n := range nodes[1:] {
		p := doc.round(n)
		if doc.Absolute {
			buf = append(buf, " L "...)
			buf = doc.appendPair(buf, p)
		} else {
			buf = append(buf, " l "...)
			buf = doc.appendPair(buf, doc.round(p-prev))
		}
		prev = p
	}
	return string(buf)
}

// WriteTo renders the document and writes it to w.
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	if len(doc.paths) == 0 {
		return 0, ErrNoPaths
	}
	minx, miny, width, height, err := doc.ViewBox()
	if err != nil {
		return 0, err
	}
	var out bytes.Buffer
	canvas := svg.New(&out)
	canvas.Startview(width, height, minx, miny, width, height)
	if doc.Title != "" {
		canvas.Title(doc.Title)
	}
	for _, p := range doc.paths {
		tracer().Debugf("writing path %q with %d nodes", p.ID, len(p.Nodes))
		attrs := []string{fmt.Sprintf(`id="%s"`, p.ID)}
		if p.Style != "" {
			attrs = append(attrs, p.Style)
		}
		canvas.Path(doc.PathData(p.Nodes), attrs...)
	}
	canvas.End()
	tracer().Infof("SVG document: %d paths, viewBox %d %d %d %d, %d bytes",
		len(doc.paths), minx, miny, width, height, out.Len())
	return out.WriteTo(w)
}

func (doc *Document) round(p koishi.Pair) koishi.Pair {
	scale := math.Pow(10, float64(doc.Precision))
	return koishi.P(math.Round(p.X()*scale)/scale, math.Round(p.Y()*scale)/scale)
}

func (doc *Document) appendPair(buf []byte, p koishi.Pair) []byte {
	buf = doc.appendFloat(buf, p.X())
	buf = append(buf, ' ')
	return doc.appendFloat(buf, p.Y())
}

// appendFloat expects f to be rounded to the document's precision already:
// the shortest representation of a rounded value has at most Precision decimals.
func (doc *Document) appendFloat(buf []byte, f float64) []byte {
	if f == 0 {
		return append(buf, '0') // no "-0"
	}
	return strconv.AppendFloat(buf, f, 'f', -1, 64)
}
