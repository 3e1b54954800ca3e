package main

import (
	"io"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// traceSelector hands out one Go-logger tracer per key. All tracers share
// the same output and start at the same level.
type traceSelector struct {
	mx     sync.Mutex
	out    io.Writer
	level  tracing.TraceLevel
	traces map[string]tracing.Trace
}

var _ tracing.TraceSelector = (*traceSelector)(nil)

func newTraceSelector(out io.Writer, level tracing.TraceLevel) *traceSelector {
	return &traceSelector{
		out:    out,
		level:  level,
		traces: make(map[string]tracing.Trace),
	}
}

// Select is part of interface tracing.TraceSelector.
func (sel *traceSelector) Select(key string) tracing.Trace {
	sel.mx.Lock()
	defer sel.mx.Unlock()
	if t, ok := sel.traces[key]; ok {
		return t
	}
	t := gologadapter.New()
	t.SetOutput(sel.out)
	t.SetTraceLevel(sel.level)
	sel.traces[key] = t
	return t
}
