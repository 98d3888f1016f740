package viz

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/daelab/internal/dae"
)

func lagSystem(t *testing.T, label string) *dae.System {
	t.Helper()
	sys, err := dae.New(
		mat.NewDense(1, 1, []float64{-1}),
		mat.NewDense(1, 1, []float64{1}),
		mat.NewDense(1, 1, []float64{1}),
		mat.NewDense(1, 1, []float64{0}),
		label,
	)
	if err != nil {
		t.Fatalf("construct failed: %v", err)
	}
	return sys
}

func mimoSystem(t *testing.T) *dae.System {
	t.Helper()
	sys, err := dae.New(
		mat.NewDense(2, 2, []float64{0, 1, -2, -3}),
		mat.NewDense(2, 2, []float64{0, 1, 1, 0}),
		mat.NewDense(2, 2, []float64{1, 0, 0, 1}),
		mat.NewDense(2, 2, nil),
		"mimo",
	)
	if err != nil {
		t.Fatalf("construct failed: %v", err)
	}
	return sys
}

func TestAddSystemFixesDimensions(t *testing.T) {
	bp := NewBodePlot()

	if err := bp.AddSystem(lagSystem(t, "first"), LineStyle{}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if bp.NumOutputs() != 1 || bp.NumInputs() != 1 {
		t.Errorf("expected 1x1 figure, got %dx%d", bp.NumOutputs(), bp.NumInputs())
	}

	if err := bp.AddSystem(lagSystem(t, "second"), LineStyle{Color: "red"}); err != nil {
		t.Fatalf("matching system rejected: %v", err)
	}
	if err := bp.AddSystem(mimoSystem(t), LineStyle{}); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
	if len(bp.Systems()) != 2 {
		t.Errorf("rejected system must not be retained, have %d", len(bp.Systems()))
	}
}

func TestAddDataTickValidation(t *testing.T) {
	bp := NewBodePlot()
	if err := bp.AddSystem(lagSystem(t, "lag"), LineStyle{}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	tests := []struct {
		name string
		tick DataTick
		ok   bool
	}{
		{"valid", DataTick{Freq: 1, System: 0, Output: 1, Input: 1}, true},
		{"missing system", DataTick{Freq: 1, System: 3, Output: 1, Input: 1}, false},
		{"output out of range", DataTick{Freq: 1, System: 0, Output: 2, Input: 1}, false},
		{"input out of range", DataTick{Freq: 1, System: 0, Output: 1, Input: 0}, false},
		{"non-positive frequency", DataTick{Freq: 0, System: 0, Output: 1, Input: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := bp.AddDataTick(tt.tick)
			if tt.ok && err != nil {
				t.Errorf("expected success, got %v", err)
			}
			if !tt.ok && err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestRenderFigure(t *testing.T) {
	bp := NewBodePlot()
	if err := bp.AddSystem(lagSystem(t, "lag"), LineStyle{Color: "cyan"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := bp.AddDataTick(DataTick{Freq: 1, System: 0, Output: 1, Input: 1, Marker: 'x'}); err != nil {
		t.Fatalf("tick failed: %v", err)
	}

	fig, err := bp.Render(SweepSpec{StartExp: -1, EndExp: 1, Points: 30}, 60, 6)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Bode Plot", "Magnitude (dB)", "Phase (deg)", "out: 1, in: 1", "lag"} {
		if !strings.Contains(fig, want) {
			t.Errorf("figure missing %q", want)
		}
	}
}

func TestRenderMIMOPanels(t *testing.T) {
	bp := NewBodePlot()
	if err := bp.AddSystem(mimoSystem(t), LineStyle{}); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	fig, err := bp.Render(SweepSpec{StartExp: -1, EndExp: 1, Points: 20}, 50, 5)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"out: 1, in: 1", "out: 1, in: 2", "out: 2, in: 1", "out: 2, in: 2"} {
		if !strings.Contains(fig, want) {
			t.Errorf("figure missing panel %q", want)
		}
	}
}

func TestRenderEmptyFigure(t *testing.T) {
	bp := NewBodePlot()
	if _, err := bp.Render(SweepSpec{StartExp: -1, EndExp: 1, Points: 10}, 50, 5); err == nil {
		t.Error("expected error for empty figure")
	}
}

func TestPanelIndexValidation(t *testing.T) {
	bp := NewBodePlot()
	if err := bp.AddSystem(lagSystem(t, "lag"), LineStyle{}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := bp.Panel(SweepSpec{StartExp: -1, EndExp: 1, Points: 10}, 2, 1, 50, 5); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected ErrDimensionMismatch, got %v", err)
	}
}
