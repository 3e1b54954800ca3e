/*
Package drawing is the driver of koishi: it turns a Config into trajectories,
samples them and hands the sample sets to the SVG writer.

	doc, err := drawing.Draw(drawing.Heart())
	...
	err = doc.WriteSVG(w)

All ellipses share one parent trajectory, so their centers stay synchronized.
A drawing is deterministic: equal configurations yield equal sample sets.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package drawing

import (
	"fmt"
	"io"

	"github.com/npillmayer/koishi"
	"github.com/npillmayer/koishi/sampling"
	"github.com/npillmayer/koishi/svgout"
	"github.com/npillmayer/koishi/trajectory"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the drawing tracer.
func T() tracing.Trace {
	return tracing.Select("drawing")
}

// Drawing is the result of a run: a parent trajectory, one elliptic
// trajectory per configured ellipse and their sample sets.
type Drawing struct {
	cfg      Config
	parent   *trajectory.Interpolated
	ellipses []*trajectory.Elliptic
	samples  [][]koishi.Pair
}

// Draw builds and samples all trajectories of cfg. It fails fast on the first
// invalid parameter.
func Draw(cfg Config) (*Drawing, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var opts []trajectory.InterpolatedOption
	if cfg.Cyclic {
		opts = append(opts, trajectory.Cyclic())
	}
	parent, err := trajectory.NewInterpolated(cfg.Waypoints, opts...)
	if err != nil {
		return nil, err
	}
	T().Infof("parent path: %d waypoints", parent.N())
	d := &Drawing{cfg: cfg, parent: parent}
	for _, ec := range cfg.Ellipses {
		e, err := NewEllipse(parent, ec, cfg)
		if err != nil {
			return nil, err
		}
		T().Infof("sampling %s with %d nodes", ec.ID, cfg.Nodes)
		samples, err := sampling.Sample(e, cfg.Nodes)
		if err != nil {
			return nil, fmt.Errorf("ellipse %q: %w", ec.ID, err)
		}
		d.ellipses = append(d.ellipses, e)
		d.samples = append(d.samples, samples)
	}
	return d, nil
}

// NewEllipse creates the elliptic trajectory for ec, centered on parent.
func NewEllipse(parent trajectory.Trajectory, ec EllipseConfig, cfg Config) (*trajectory.Elliptic, error) {
	opts := []trajectory.EllipticOption{
		trajectory.WithParent(parent),
		trajectory.WithRotation(ec.Rotation),
		trajectory.WithPhase(ec.Phase),
		trajectory.WithParentScale(cfg.ParentScale),
		trajectory.WithEllipseScale(cfg.EllipseScale),
	}
	if ec.AngularSpeed != 0 {
		opts = append(opts, trajectory.WithAngularSpeed(ec.AngularSpeed))
	}
	e, err := trajectory.NewElliptic(ec.SemiMajor, ec.SemiMinor, opts...)
	if err != nil {
		return nil, fmt.Errorf("ellipse %q: %w", ec.ID, err)
	}
	return e, nil
}

// Parent returns the parent trajectory.
func (d *Drawing) Parent() *trajectory.Interpolated {
	return d.parent
}

// Ellipses returns the elliptic trajectories in configuration order.
func (d *Drawing) Ellipses() []*trajectory.Elliptic {
	return d.ellipses
}

// Samples returns the sample set of ellipse i.
func (d *Drawing) Samples(i int) []koishi.Pair {
	return d.samples[i]
}

// Document converts the drawing to an SVG document.
func (d *Drawing) Document() (*svgout.Document, error) {
	doc := svgout.New(d.cfg.Title)
	doc.Precision = d.cfg.Precision
	doc.Margin = d.cfg.Margin
	doc.Absolute = d.cfg.Absolute
	for i, ec := range d.cfg.Ellipses {
		if err := doc.Add(ec.ID, d.samples[i], ec.Style); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// WriteSVG writes the drawing as an SVG document to w. Nothing is written if
// the document cannot be created.
func (d *Drawing) WriteSVG(w io.Writer) error {
	doc, err := d.Document()
	if err != nil {
		return err
	}
	T().Infof("writing SVG file...")
	_, err = doc.WriteTo(w)
	return err
}

// Render draws cfg and writes it to w.
func Render(cfg Config, w io.Writer) error {
	d, err := Draw(cfg)
	if err != nil {
		return err
	}
	return d.WriteSVG(w)
}
