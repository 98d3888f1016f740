package freq

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/daelab/internal/dae"
)

func lagSystem(t *testing.T) *dae.System {
	t.Helper()
	sys, err := dae.New(
		mat.NewDense(1, 1, []float64{-1}),
		mat.NewDense(1, 1, []float64{1}),
		mat.NewDense(1, 1, []float64{1}),
		mat.NewDense(1, 1, []float64{0}),
		"lag",
	)
	if err != nil {
		t.Fatalf("construct failed: %v", err)
	}
	return sys
}

func singularSystem(t *testing.T) *dae.System {
	t.Helper()
	sys, err := dae.NewDescriptor(
		mat.NewDense(2, 2, []float64{1, 0, 0, 0}),
		mat.NewDense(2, 2, []float64{1, 0, 0, 0}),
		mat.NewDense(2, 1, []float64{1, 1}),
		mat.NewDense(1, 2, []float64{1, 0}),
		mat.NewDense(1, 1, []float64{0}),
		"singular",
	)
	if err != nil {
		t.Fatalf("construct failed: %v", err)
	}
	return sys
}

func TestResponseAtCorner(t *testing.T) {
	sys := lagSystem(t)

	mag, phase, err := Response(sys, complex(0, 1))
	if err != nil {
		t.Fatalf("response failed: %v", err)
	}

	wantMag := 20 * math.Log10(1/math.Sqrt2) // about -3.0103 dB
	if got := mag.At(0, 0); math.Abs(got-wantMag) > 1e-10 {
		t.Errorf("magnitude = %v dB, want %v", got, wantMag)
	}
	if got := phase.At(0, 0); math.Abs(got-(-45)) > 1e-10 {
		t.Errorf("phase = %v deg, want -45", got)
	}
}

func TestResponseNotRegular(t *testing.T) {
	sys := singularSystem(t)

	if _, _, err := Response(sys, complex(0, 1)); !errors.Is(err, dae.ErrNotRegular) {
		t.Errorf("expected ErrNotRegular, got %v", err)
	}
	if _, err := ResponseRange(sys, -1, 1, 10); !errors.Is(err, dae.ErrNotRegular) {
		t.Errorf("expected ErrNotRegular from sweep, got %v", err)
	}
}

func TestLogSpace(t *testing.T) {
	tests := []struct {
		name     string
		startExp float64
		endExp   float64
		n        int
		want     []float64
	}{
		{"three decades", -1, 1, 3, []float64{0.1, 1, 10}},
		{"single point", 2, 5, 1, []float64{100}},
		{"endpoints", -2, 3, 2, []float64{0.01, 1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LogSpace(tt.startExp, tt.endExp, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d samples, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9*tt.want[i] {
					t.Errorf("sample %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestResponseRange(t *testing.T) {
	sys := lagSystem(t)

	sw, err := ResponseRange(sys, -1, 1, 3)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(sw.Freqs) != 3 || len(sw.Magnitude) != 3 || len(sw.Phase) != 3 {
		t.Fatalf("expected 3 samples, got %d/%d/%d", len(sw.Freqs), len(sw.Magnitude), len(sw.Phase))
	}

	for i := 1; i < len(sw.Freqs); i++ {
		if sw.Freqs[i] <= sw.Freqs[i-1] {
			t.Errorf("frequencies not ascending: %v", sw.Freqs)
		}
	}

	// each sample matches a direct single-point evaluation
	for i, w := range sw.Freqs {
		mag, phase, err := Response(sys, complex(0, w))
		if err != nil {
			t.Fatalf("response at w=%v failed: %v", w, err)
		}
		if sw.Magnitude[i].At(0, 0) != mag.At(0, 0) {
			t.Errorf("sample %d magnitude %v, direct %v", i, sw.Magnitude[i].At(0, 0), mag.At(0, 0))
		}
		if sw.Phase[i].At(0, 0) != phase.At(0, 0) {
			t.Errorf("sample %d phase %v, direct %v", i, sw.Phase[i].At(0, 0), phase.At(0, 0))
		}
	}
}

func TestResponseRangeReproducible(t *testing.T) {
	sys := lagSystem(t)

	first, err := ResponseRange(sys, -2, 2, 50)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	second, err := ResponseRange(sys, -2, 2, 50)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	for i := range first.Freqs {
		if first.Freqs[i] != second.Freqs[i] {
			t.Errorf("sample %d frequency differs: %v vs %v", i, first.Freqs[i], second.Freqs[i])
		}
		if first.Magnitude[i].At(0, 0) != second.Magnitude[i].At(0, 0) {
			t.Errorf("sample %d magnitude differs", i)
		}
	}
}

func TestResponseRangeRejectsBadCount(t *testing.T) {
	sys := lagSystem(t)
	for _, n := range []int{0, -5} {
		if _, err := ResponseRange(sys, -1, 1, n); err == nil {
			t.Errorf("expected error for %d points", n)
		}
	}
}

func TestResponseRangeSinglePoint(t *testing.T) {
	sys := lagSystem(t)

	sw, err := ResponseRange(sys, 0, 3, 1)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(sw.Freqs) != 1 || sw.Freqs[0] != 1 {
		t.Errorf("expected single sample at 10^0, got %v", sw.Freqs)
	}
}

func TestResponseRangeMIMOShape(t *testing.T) {
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

	sw, err := ResponseRange(sys, -1, 1, 5)
	if err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	for i := range sw.Freqs {
		if r, c := sw.Magnitude[i].Dims(); r != 2 || c != 2 {
			t.Fatalf("sample %d: expected 2x2, got %dx%d", i, r, c)
		}
	}
}
