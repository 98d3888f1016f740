// Package viz renders Bode figures in the terminal.
//
// A [BodePlot] collects systems sharing the same input/output dimensions,
// per-system line styles, and data-tick annotations, then draws one
// magnitude/phase panel pair per output-input combination:
//
//	bp := viz.NewBodePlot()
//	bp.AddSystem(sys, viz.LineStyle{Color: "cyan"})
//	fig, err := bp.Render(viz.SweepSpec{StartExp: -2, EndExp: 2, Points: 200}, 80, 10)
//
// Curves are drawn with asciigraph over the log-spaced sample index, so
// the horizontal axis is logarithmic in frequency.
package viz
