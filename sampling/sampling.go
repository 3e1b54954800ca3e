/*
Package sampling evaluates trajectories at evenly spaced times ("nodes").

Sample materializes all nodes at once; Nodes returns a lazy, restartable
Sequence producing the same points one by one. Both spread n nodes over the
trajectory's domain [t0,t1], with the first node at exactly t0 and the last one
at exactly t1.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package sampling

import (
	"fmt"
	"iter"

	"github.com/npillmayer/koishi"
	"github.com/npillmayer/koishi/trajectory"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sampling'
func tracer() tracing.Trace {
	return tracing.Select("sampling")
}

var (
	// ErrTooFewNodes indicates a node count below 2: a single point is no path.
	ErrTooFewNodes = fmt.Errorf("%w: at least 2 nodes required", trajectory.ErrConfiguration)
	// ErrNonFiniteSample indicates a trajectory producing NaN or Inf.
	ErrNonFiniteSample = fmt.Errorf("%w: trajectory produced a non-finite point", trajectory.ErrNumericDegeneracy)
	// ErrNilTrajectory indicates a missing trajectory.
	ErrNilTrajectory = fmt.Errorf("%w: trajectory must not be nil", trajectory.ErrConfiguration)
)

// Sequence is a finite, lazy sequence of sample nodes. It may be restarted
// with Reset and is not safe for concurrent use; create one per goroutine.
type Sequence struct {
	tr     trajectory.Trajectory
	t0, t1 float64
	n      int
	next   int
}

// Nodes creates a sequence of n nodes on tr, spread over tr's domain.
func Nodes(tr trajectory.Trajectory, n int) (*Sequence, error) {
	if tr == nil {
		return nil, ErrNilTrajectory
	}
	if n < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewNodes, n)
	}
	t0, t1 := trajectory.Domain(tr)
	return &Sequence{tr: tr, t0: t0, t1: t1, n: n}, nil
}

// Len returns the total number of nodes.
func (seq *Sequence) Len() int {
	return seq.n
}

// T returns the time of node i.
func (seq *Sequence) T(i int) float64 {
	if i == seq.n-1 {
		return seq.t1
	}
	return seq.t0 + float64(i)*(seq.t1-seq.t0)/float64(seq.n-1)
}

// Next returns the next node, or false if the sequence is exhausted.
func (seq *Sequence) Next() (koishi.Pair, bool) {
	if seq.next >= seq.n {
		return koishi.Origin, false
	}
	p := seq.tr.PositionAt(seq.T(seq.next))
	seq.next++
	return p, true
}

// Reset restarts the sequence at the first node.
func (seq *Sequence) Reset() {
	seq.next = 0
}

// All iterates over all nodes from the start, independent of the position of
// Next.
func (seq *Sequence) All() iter.Seq2[int, koishi.Pair] {
	return func(yield func(int, koishi.Pair) bool) {
		for i := 0; i < seq.n; i++ {
			if !yield(i, seq.tr.PositionAt(seq.T(i))) {
				return
			}
		}
	}
}

// Sample evaluates tr at n evenly spaced times across its domain. It fails if
// n < 2 or if any node is not finite.
func Sample(tr trajectory.Trajectory, n int) ([]koishi.Pair, error) {
	seq, err := Nodes(tr, n)
	if err != nil {
		return nil, err
	}
	samples := make([]koishi.Pair, 0, n)
	step := n / 10
	for i, p := range seq.All() {
		if !p.IsFinite() {
			return nil, fmt.Errorf("%w at node %d (t=%g): %s", ErrNonFiniteSample, i, seq.T(i), p)
		}
		if step > 0 && i%step == 0 {
			tracer().Debugf("%3.0f%% done", 100*float64(i)/float64(n))
		}
		samples = append(samples, p)
	}
	return samples, nil
}

// Times returns the n node times for the domain [t0,t1].
func Times(t0, t1 float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewNodes, n)
	}
	seq := Sequence{t0: t0, t1: t1, n: n}
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = seq.T(i)
	}
	return ts, nil
}
