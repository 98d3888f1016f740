package viz

import (
	"errors"
	"fmt"

	"github.com/san-kum/daelab/internal/dae"
)

// ErrDimensionMismatch indicates systems or annotations that do not fit
// the figure's input/output dimensions.
var ErrDimensionMismatch = errors.New("viz: input/output dimensions do not match the figure")

// LineStyle selects how one system's curves are drawn. Color is a name
// understood by asciigraph ("red", "cyan", ...); empty picks from a
// default palette by insertion order.
type LineStyle struct {
	Color string
}

// DataTick pins a marker annotation to one system's response at one
// frequency. Output and Input are 1-based, matching the panel headers.
type DataTick struct {
	Freq   float64
	System int
	Output int
	Input  int
	Marker rune
	Color  string
}

// BodePlot accumulates systems and annotations for one combined figure.
// All systems must share the same number of inputs and outputs; the first
// system added fixes both.
type BodePlot struct {
	systems []*dae.System
	styles  []LineStyle
	ticks   []DataTick
	p, m    int
}

func NewBodePlot() *BodePlot {
	return &BodePlot{p: -1, m: -1}
}

// NumOutputs returns the figure's output count, -1 before any system is added.
func (b *BodePlot) NumOutputs() int { return b.p }

// NumInputs returns the figure's input count, -1 before any system is added.
func (b *BodePlot) NumInputs() int { return b.m }

// Systems returns the systems on the figure, in insertion order.
func (b *BodePlot) Systems() []*dae.System {
	out := make([]*dae.System, len(b.systems))
	copy(out, b.systems)
	return out
}

// AddSystem adds one system and its line style to the figure.
func (b *BodePlot) AddSystem(sys *dae.System, style LineStyle) error {
	p, m := sys.NumOutputs(), sys.NumInputs()
	if len(b.systems) == 0 {
		b.p, b.m = p, m
	} else if p != b.p || m != b.m {
		return fmt.Errorf("%w: figure is %dx%d, system %q is %dx%d", ErrDimensionMismatch, b.p, b.m, sys.Label(), p, m)
	}
	b.systems = append(b.systems, sys)
	b.styles = append(b.styles, style)
	return nil
}

// AddDataTick pins an annotation. The referenced system must exist and
// the 1-based output/input indices must lie inside the figure's grid.
func (b *BodePlot) AddDataTick(t DataTick) error {
	if !(t.Freq > 0) {
		return fmt.Errorf("viz: data tick frequency must be positive, got %g", t.Freq)
	}
	if t.System < 0 || t.System >= len(b.systems) {
		return fmt.Errorf("%w: no system at index %d", ErrDimensionMismatch, t.System)
	}
	if t.Output < 1 || t.Output > b.p || t.Input < 1 || t.Input > b.m {
		return fmt.Errorf("%w: tick pinned to out %d, in %d on a %dx%d figure", ErrDimensionMismatch, t.Output, t.Input, b.p, b.m)
	}
	if t.Marker == 0 {
		t.Marker = 'x'
	}
	b.ticks = append(b.ticks, t)
	return nil
}
