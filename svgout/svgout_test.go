package svgout

import (
	"bytes"
	"errors"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/npillmayer/koishi"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dAttr = regexp.MustCompile(`<path d="([^"]*)"`)

func TestPathDataRelative(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	doc := New("")
	d := doc.PathData([]koishi.Pair{koishi.P(1, 2), koishi.P(1.5, 2), koishi.P(1.5, -0.25)})
	assert.Equal(t, "M 1 2 l 0.5 0 l 0 -2.25", d)
	doc.Absolute = true
	d = doc.PathData([]koishi.Pair{koishi.P(1, 2), koishi.P(1.5, 2)})
	assert.Equal(t, "M 1 2 L 1.5 2", d)
	assert.Equal(t, "", doc.PathData(nil))
}

func TestPathDataPrecision(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	doc := New("")
	doc.Precision = 2
	d := doc.PathData([]koishi.Pair{koishi.P(1.23456, -0.0001), koishi.P(2.1, 0.3)})
	assert.Equal(t, "M 1.23 0 l 0.87 0.3", d)
}

func TestRelativeStepsDoNotDrift(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	nodes := make([]koishi.Pair, 3001)
	for i := range nodes {
		x := float64(i) / 3
		nodes[i] = koishi.P(x, math.Sin(x))
	}
	doc := New("")
	back, err := ParsePathData(doc.PathData(nodes))
	require.NoError(t, err)
	require.Len(t, back, len(nodes))
	for i := range nodes {
		assert.InDelta(t, nodes[i].X(), back[i].X(), 1e-4, "x at node %d", i)
		assert.InDelta(t, nodes[i].Y(), back[i].Y(), 1e-4, "y at node %d", i)
	}
}

func TestWriteDocument(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	doc := New("test")
	require.NoError(t, doc.Add("one", []koishi.Pair{koishi.P(0, 0), koishi.P(100, 50)}, Style("#00ff00", 5)))
	require.NoError(t, doc.Add("two", []koishi.Pair{koishi.P(-20, 10), koishi.P(30, 40)}, ""))
	assert.Len(t, doc.Paths(), 2)
	var out bytes.Buffer
	n, err := doc.WriteTo(&out)
	require.NoError(t, err)
	svg := out.String()
	assert.Equal(t, int64(len(svg)), n)
	t.Logf("svg =\n%s", svg)
	assert.Contains(t, svg, `viewBox="-30 -10 140 70"`)
	assert.Contains(t, svg, `id="one"`)
	assert.Contains(t, svg, `id="two"`)
	assert.Contains(t, svg, "stroke:#00ff00;fill:none;stroke-width:5")
	assert.Contains(t, svg, "<title>test</title>")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(svg), "</svg>"))
	ds := dAttr.FindAllStringSubmatch(svg, -1)
	require.Len(t, ds, 2)
	nodes, err := ParsePathData(ds[1][1])
	require.NoError(t, err)
	assert.Equal(t, []koishi.Pair{koishi.P(-20, 10), koishi.P(30, 40)}, nodes)
}

func TestWriteErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	doc := New("")
	var out bytes.Buffer
	_, err := doc.WriteTo(&out)
	assert.True(t, errors.Is(err, ErrNoPaths))
	assert.Zero(t, out.Len())
	err = doc.Add("short", []koishi.Pair{koishi.P(1, 1)}, "")
	assert.True(t, errors.Is(err, ErrEmptyPath))
	err = doc.Add("nan", []koishi.Pair{koishi.P(1, 1), koishi.P(math.NaN(), 1)}, "")
	assert.True(t, errors.Is(err, ErrNonFinite))
	_, _, _, _, err = doc.ViewBox()
	assert.True(t, errors.Is(err, ErrNoPaths))
}

func TestParsePathDataErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, d := range []string{"l 1 1", "M 1", "M 1 1 C 2 2", "M 1 1 M 2 2", "M x y"} {
		_, err := ParsePathData(d)
		assert.True(t, errors.Is(err, ErrPathData), "%q: %v", d, err)
	}
	nodes, err := ParsePathData("M 1,2 l -1,-2")
	require.NoError(t, err)
	assert.Equal(t, []koishi.Pair{koishi.P(1, 2), koishi.P(0, 0)}, nodes)
}

func TestInvalidIDsAndStyles(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	doc := New("")
	nodes := []koishi.Pair{koishi.P(0, 0), koishi.P(1, 1)}
	for _, id := range []string{"", `a"b`, "a b", "1st", "-x", "a<b"} {
		err := doc.Add(id, nodes, "")
		assert.True(t, errors.Is(err, ErrInvalidID), "%q: %v", id, err)
	}
	for _, id := range []string{"green", "_x", "ellipse-1", "e.2"} {
		assert.NoError(t, ValidID(id), id)
	}
	err := doc.Add("ok", nodes, `stroke:red" onload="x`)
	assert.True(t, errors.Is(err, ErrInvalidStyle), "%v", err)
	err = doc.Add("ok", nodes, `class=x`)
	assert.True(t, errors.Is(err, ErrInvalidStyle), "%v", err)
	assert.Empty(t, doc.Paths())
}

func TestViewBoxOutOfRange(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	doc := New("")
	require.NoError(t, doc.Add("huge", []koishi.Pair{koishi.P(0, 0), koishi.P(1e300, 1)}, ""))
	_, _, _, _, err := doc.ViewBox()
	assert.True(t, errors.Is(err, ErrOutOfRange), "%v", err)
	var out bytes.Buffer
	_, err = doc.WriteTo(&out)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.Zero(t, out.Len())
}
