package polygon

import (
	"errors"
	"testing"

	"github.com/npillmayer/koishi"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(koishi.P(0, 0)).Knot(koishi.P(1, 3)).Knot(koishi.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
	assert.Equal(t, "(0,0) -- (1,3) -- (3,0) -- cycle", AsString(pg))
	assert.Equal(t, koishi.P(0, 0), pg.Pt(3))
	assert.Equal(t, koishi.P(3, 0), pg.Pt(-1))
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(koishi.P(0, 5), koishi.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	assert.True(t, box.IsCycle())
}

func TestBoundingBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a := FromPairs([]koishi.Pair{koishi.P(0, 0), koishi.P(5, -2), koishi.P(3, 7)}).End()
	b := NullPolygon().Knot(koishi.P(-4, 1)).Knot(koishi.P(1, 1)).End()
	assert.False(t, a.IsCycle())
	min, max, err := BoundingBox(a, b, NullPolygon())
	require.NoError(t, err)
	assert.Equal(t, koishi.P(-4, -2), min)
	assert.Equal(t, koishi.P(5, 7), max)

	_, _, err = BoundingBox(NullPolygon(), nil)
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestKnotsAreCopied(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	src := []koishi.Pair{koishi.P(1, 1), koishi.P(2, 2)}
	pg := FromPairs(src)
	src[0] = koishi.P(9, 9)
	assert.Equal(t, koishi.P(1, 1), pg.Pt(0))
	assert.Equal(t, koishi.P(2, 2), pg.Pt(1))
	assert.False(t, pg.IsCycle())
}
