package drawing

import (
	"fmt"
	"math"

	"github.com/npillmayer/koishi"
	"github.com/npillmayer/koishi/svgout"
	"github.com/npillmayer/koishi/trajectory"
)

// EllipseConfig describes one ellipse traveling along the parent path.
type EllipseConfig struct {
	ID           string  // id of the SVG path
	SemiMajor    float64 // semi-axis along the unrotated x-axis
	SemiMinor    float64 // semi-axis along the unrotated y-axis
	Rotation     float64 // radians, counter-clockwise
	AngularSpeed float64 // radians per unit of t; 0 means 2π
	Phase        float64 // angle at t = 0
	Style        string  // CSS style of the SVG path
}

// Config holds all parameters of a drawing. It replaces the global tunables
// of a script: a run is fully determined by its Config.
type Config struct {
	Waypoints    []trajectory.Waypoint // the parent path
	Cyclic       bool                  // parent path repeats itself
	Nodes        int                   // samples per ellipse
	ParentScale  float64               // parent time covered for t in [0,1]
	EllipseScale float64               // multiplier of every ellipse's angle
	Ellipses     []EllipseConfig       // at least one
	Title        string                // SVG document title
	Precision    int                   // decimals in SVG coordinates
	Margin       float64               // around the figure
	Absolute     bool                  // absolute SVG line-to commands
}

// Validate checks a configuration without building anything.
func (cfg *Config) Validate() error {
	if err := trajectory.Validate(cfg.Waypoints); err != nil {
		return err
	}
	if cfg.Nodes < 2 {
		return fmt.Errorf("%w: nodes = %d, at least 2 required", trajectory.ErrConfiguration, cfg.Nodes)
	}
	if !koishi.IsFinite(cfg.ParentScale) || !koishi.IsFinite(cfg.EllipseScale) {
		return fmt.Errorf("%w: scales must be finite", trajectory.ErrConfiguration)
	}
	if len(cfg.Ellipses) == 0 {
		return fmt.Errorf("%w: no ellipses configured", trajectory.ErrConfiguration)
	}
	if cfg.Precision < 0 || cfg.Precision > 12 {
		return fmt.Errorf("%w: precision %d out of range [0,12]", trajectory.ErrConfiguration, cfg.Precision)
	}
	seen := make(map[string]bool, len(cfg.Ellipses))
	for i, e := range cfg.Ellipses {
		if e.ID == "" || seen[e.ID] {
			return fmt.Errorf("%w: ellipse %d needs a unique id, got %q", trajectory.ErrConfiguration, i, e.ID)
		}
		seen[e.ID] = true
		if err := svgout.ValidID(e.ID); err != nil {
			return fmt.Errorf("%w: ellipse %d: %w", trajectory.ErrConfiguration, i, err)
		}
		if err := svgout.ValidStyle(e.Style); err != nil {
			return fmt.Errorf("%w: ellipse %q: %w", trajectory.ErrConfiguration, e.ID, err)
		}
		if !(e.SemiMajor > 0) || !(e.SemiMinor > 0) {
			return fmt.Errorf("%w: ellipse %q has a=%g, b=%g", trajectory.ErrInvalidAxis,
				e.ID, e.SemiMajor, e.SemiMinor)
		}
	}
	return nil
}

// heartLegs are the knots of a heart shape. Each leg lists the time needed to
// reach the following knot; straight-line segments have lower speed.
var heartLegs = []trajectory.Leg{
	{X: 1042.397, Y: 0.0, Duration: 2},
	{X: 222.128, Y: 798.490, Duration: 1},
	{X: 75.494, Y: 1003.194, Duration: 1},
	{X: 0.0, Y: 1286.295, Duration: 1},
	{X: 2.908, Y: 1493.902, Duration: 1},
	{X: 76.948, Y: 1740.708, Duration: 1},
	{X: 239.549, Y: 1927.991, Duration: 1},
	{X: 371.661, Y: 2007.840, Duration: 1},
	{X: 541.524, Y: 2045.586, Duration: 1},
	{X: 707.029, Y: 2013.647, Duration: 1},
	{X: 823.173, Y: 1927.991, Duration: 1},
	{X: 904.474, Y: 1881.533, Duration: 1},
	{X: 1042.397, Y: 1871.370, Duration: 1},
	{X: 1180.316, Y: 1881.533, Duration: 1},
	{X: 1261.617, Y: 1927.991, Duration: 1},
	{X: 1377.761, Y: 2013.647, Duration: 1},
	{X: 1543.266, Y: 2045.586, Duration: 1},
	{X: 1713.124, Y: 2007.840, Duration: 1},
	{X: 1845.240, Y: 1927.991, Duration: 1},
	{X: 2007.842, Y: 1740.708, Duration: 1},
	{X: 2081.886, Y: 1493.902, Duration: 1},
	{X: 2084.785, Y: 1286.295, Duration: 1},
	{X: 2009.291, Y: 1003.194, Duration: 1},
	{X: 1862.662, Y: 798.490, Duration: 2},
}

var crossLegs = []trajectory.Leg{
	{X: 0, Y: 0, Duration: 1},
	{X: 2000, Y: 2000, Duration: 1},
	{X: 2000, Y: 0, Duration: 1},
	{X: 0, Y: 2000, Duration: 1},
}

func twoEllipses() []EllipseConfig {
	return []EllipseConfig{
		{ID: "ellipse-1", SemiMajor: 200, SemiMinor: 25, Rotation: math.Pi / 4,
			Style: svgout.Style("#00ff00", 5)},
		{ID: "ellipse-2", SemiMajor: 200, SemiMinor: 25, Rotation: 3 * math.Pi / 4,
			Style: svgout.Style("#0000ff", 5)},
	}
}

func preset(title string, legs []trajectory.Leg) Config {
	wps, err := trajectory.FromLegs(legs, true)
	if err != nil {
		panic(err) // literal data
	}
	return Config{
		Waypoints: wps,
		Cyclic:    true,
		// 3000 steps: the parent travels 30 time units, the ellipses turn 15 times
		Nodes:        3001,
		ParentScale:  30,
		EllipseScale: 15,
		Ellipses:     twoEllipses(),
		Title:        title,
		Precision:    svgout.DefaultPrecision,
		Margin:       svgout.DefaultMargin,
	}
}

// Heart is the configuration of "Genetics of the Subconscious": two ellipses
// circling along a heart shaped, closed parent path.
func Heart() Config {
	return preset("Genetics of the Subconscious", heartLegs)
}

// Cross uses a parent path crossing itself in the shape of an X.
func Cross() Config {
	return preset("Cross", crossLegs)
}

// Presets maps preset names to configurations.
var Presets = map[string]func() Config{
	"heart": Heart,
	"cross": Cross,
}
