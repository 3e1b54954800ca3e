package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/npillmayer/koishi/drawing"
	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
)

// cliOpts are the command line flags. Zero values leave the preset unchanged.
type cliOpts struct {
	output       string
	preset       string
	nodes        int
	parentScale  float64
	ellipseScale float64
	precision    int
	absolute     bool
	verbose      bool
}

// newRootCmd creates the koishi command. Tracing goes to logOut.
func newRootCmd(o *cliOpts, logOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "koishi",
		Short:         "Draw two ellipses traveling along a parent path into an SVG file",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := tracing.LevelError
			if o.verbose {
				level = tracing.LevelDebug
			}
			tracing.SetTraceSelector(newTraceSelector(logOut, level))
			cfg, err := o.config(cmd)
			if err != nil {
				return err
			}
			return run(cfg, o.output)
		},
	}
	o.registerFlags(cmd)
	return cmd
}

func (o *cliOpts) registerFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&o.output, "output", "o", "koishi.svg", "SVG file to write")
	f.StringVar(&o.preset, "preset", "heart", "parent path, one of: "+presetNames())
	f.IntVar(&o.nodes, "nodes", 0, "number of samples per ellipse")
	f.Float64Var(&o.parentScale, "parent-scale", 0, "parent path time covered by the drawing")
	f.Float64Var(&o.ellipseScale, "ellipse-scale", 0, "number of turns of each ellipse")
	f.IntVar(&o.precision, "precision", 0, "decimals of SVG coordinates")
	f.BoolVar(&o.absolute, "absolute", false, "write absolute instead of relative line-to commands")
	f.BoolVarP(&o.verbose, "verbose", "v", false, "trace progress")
}

// config starts from the preset and applies all flags set explicitly.
func (o *cliOpts) config(cmd *cobra.Command) (drawing.Config, error) {
	p, ok := drawing.Presets[o.preset]
	if !ok {
		return drawing.Config{}, fmt.Errorf("unknown preset %q, choose one of: %s", o.preset, presetNames())
	}
	cfg := p()
	f := cmd.Flags()
	if f.Changed("nodes") {
		cfg.Nodes = o.nodes
	}
	if f.Changed("parent-scale") {
		cfg.ParentScale = o.parentScale
	}
	if f.Changed("ellipse-scale") {
		cfg.EllipseScale = o.ellipseScale
	}
	if f.Changed("precision") {
		cfg.Precision = o.precision
	}
	if f.Changed("absolute") {
		cfg.Absolute = o.absolute
	}
	return cfg, cfg.Validate()
}

// run renders into memory and creates the output file only on success.
func run(cfg drawing.Config, output string) error {
	var buf bytes.Buffer
	if err := drawing.Render(cfg, &buf); err != nil {
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return err
	}
	drawing.T().Infof("done: %s", output)
	return nil
}

func presetNames() string {
	names := make([]string, 0, len(drawing.Presets))
	for name := range drawing.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
