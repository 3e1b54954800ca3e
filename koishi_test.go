package koishi

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestNumericBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !Is0(0.000000008) {
		t.Errorf("Expected a to be zero, is not")
	}
	if IsFinite(math.NaN()) || IsFinite(math.Inf(-1)) {
		t.Errorf("Expected NaN and -Inf to be non-finite")
	}
}

func TestPairBasic(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := P(3, 2)
	q := P(-3, -2)
	if r := p + q; !r.Equal(Origin) {
		t.Errorf("Expected p + q to be (0,0), is %v", r)
	}
	assert.Equal(t, "(3,2)", p.String())
	assert.False(t, P(math.NaN(), 0).IsFinite())
}

func TestLerp(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	a, b := P(0, 0), P(10, -4)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.True(t, a.Lerp(b, 0.5).Equal(P(5, -2)))
}

func TestTranslation(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if !P(1, 1).Shifted(P(-1, -1)).Equal(Origin) {
		t.Errorf("Expected (1,1) shifted (-1,-1) to be origin, is not")
	}
	if !Rotation(math.Pi).Transform(P(1, 0)).Shifted(P(1, 0)).Equal(Origin) {
		t.Errorf("Expected result to be origin, is not")
	}
}

func TestCombine(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// scale first, then rotate by 90°, then move
	m := Scaling(2, 1).Combine(Rotation(math.Pi / 2)).Combine(Translation(P(1, 1)))
	got := m.Transform(P(1, 0))
	assert.InDelta(t, 1.0, got.X(), 1e-9)
	assert.InDelta(t, 3.0, got.Y(), 1e-9)
	assert.Equal(t, P(4, 5), Identity().Transform(P(4, 5)))
	assert.Equal(t, P(3, -6), P(1, -2).Scaled(3))
}
