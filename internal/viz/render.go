package viz

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/daelab/internal/freq"
)

// SweepSpec selects the frequency axis: Points samples log-spaced between
// 10^StartExp and 10^EndExp rad/s.
type SweepSpec struct {
	StartExp float64
	EndExp   float64
	Points   int
}

var defaultPalette = []string{"cyan", "red", "green", "yellow", "magenta", "blue"}

// Render draws the full figure: one magnitude and one phase panel for
// every output-input pair, all systems overlaid, data ticks listed under
// the panels they pin to.
func (b *BodePlot) Render(spec SweepSpec, width, height int) (string, error) {
	if len(b.systems) == 0 {
		return "", errors.New("viz: no systems on the figure")
	}

	sweeps, err := b.sweep(spec)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Bode Plot"))
	sb.WriteByte('\n')
	sb.WriteString(b.legend())
	sb.WriteByte('\n')

	for row := 1; row <= b.p; row++ {
		for col := 1; col <= b.m; col++ {
			panel, err := b.panel(sweeps, spec, row, col, width, height)
			if err != nil {
				return "", err
			}
			sb.WriteByte('\n')
			sb.WriteString(panel)
		}
	}
	return sb.String(), nil
}

// Panel draws the magnitude/phase pair for one 1-based output-input
// combination.
func (b *BodePlot) Panel(spec SweepSpec, output, input, width, height int) (string, error) {
	if len(b.systems) == 0 {
		return "", errors.New("viz: no systems on the figure")
	}
	if output < 1 || output > b.p || input < 1 || input > b.m {
		return "", fmt.Errorf("%w: panel out %d, in %d on a %dx%d figure", ErrDimensionMismatch, output, input, b.p, b.m)
	}
	sweeps, err := b.sweep(spec)
	if err != nil {
		return "", err
	}
	return b.panel(sweeps, spec, output, input, width, height)
}

func (b *BodePlot) sweep(spec SweepSpec) ([]*freq.Sweep, error) {
	sweeps := make([]*freq.Sweep, len(b.systems))
	for i, sys := range b.systems {
		sw, err := freq.ResponseRange(sys, spec.StartExp, spec.EndExp, spec.Points)
		if err != nil {
			return nil, fmt.Errorf("viz: system %q: %w", sys.Label(), err)
		}
		sweeps[i] = sw
	}
	return sweeps, nil
}

func (b *BodePlot) panel(sweeps []*freq.Sweep, spec SweepSpec, row, col, width, height int) (string, error) {
	magSeries := make([][]float64, len(sweeps))
	phaseSeries := make([][]float64, len(sweeps))
	for i, sw := range sweeps {
		mags := make([]float64, len(sw.Freqs))
		phases := make([]float64, len(sw.Freqs))
		for k := range sw.Freqs {
			mags[k] = sw.Magnitude[k].At(row-1, col-1)
			phases[k] = sw.Phase[k].At(row-1, col-1)
		}
		magSeries[i] = mags
		phaseSeries[i] = phases
	}

	colors := b.seriesColors()
	var sb strings.Builder
	sb.WriteString(panelStyle.Render(fmt.Sprintf("out: %d, in: %d", row, col)))
	sb.WriteByte('\n')

	sb.WriteString(asciigraph.PlotMany(magSeries,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("Magnitude (dB)"),
		asciigraph.SeriesColors(colors...),
	))
	sb.WriteByte('\n')
	sb.WriteString(asciigraph.PlotMany(phaseSeries,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("Phase (deg)"),
		asciigraph.SeriesColors(colors...),
	))
	sb.WriteByte('\n')
	sb.WriteString(axisStyle.Render(fmt.Sprintf("w: %.3g .. %.3g rad/s (log)", math.Pow(10, spec.StartExp), math.Pow(10, spec.EndExp))))
	sb.WriteByte('\n')

	for _, t := range b.ticks {
		if t.Output != row || t.Input != col {
			continue
		}
		mag, phase, err := freq.Response(b.systems[t.System], complex(0, t.Freq))
		if err != nil {
			return "", fmt.Errorf("viz: data tick at w=%g: %w", t.Freq, err)
		}
		line := fmt.Sprintf("%c %s @ %.4g rad/s: %.4g dB, %.4g deg",
			t.Marker, b.systems[t.System].Label(), t.Freq,
			mag.At(row-1, col-1), phase.At(row-1, col-1))
		sb.WriteString(tickStyle.Render(line))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func (b *BodePlot) legend() string {
	parts := make([]string, len(b.systems))
	for i, sys := range b.systems {
		label := sys.Label()
		if label == "" {
			label = fmt.Sprintf("system %d", i)
		}
		parts[i] = fmt.Sprintf("%s (%s)", label, b.colorName(i))
	}
	return legendStyle.Render(strings.Join(parts, "  "))
}

func (b *BodePlot) seriesColors() []asciigraph.AnsiColor {
	colors := make([]asciigraph.AnsiColor, len(b.styles))
	for i := range b.styles {
		colors[i] = asciigraph.ColorNames[b.colorName(i)]
	}
	return colors
}

func (b *BodePlot) colorName(i int) string {
	if b.styles[i].Color != "" {
		return b.styles[i].Color
	}
	return defaultPalette[i%len(defaultPalette)]
}
