package freq

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/daelab/internal/dae"
)

// Sweep holds a log-spaced frequency response: Magnitude[i] and Phase[i]
// are the p x m response matrices at angular frequency Freqs[i], in
// ascending frequency order.
type Sweep struct {
	Freqs     []float64
	Magnitude []*mat.Dense
	Phase     []*mat.Dense
}

// Response evaluates one frequency sample, returning entrywise magnitude
// in dB and phase in degrees. Fails with dae.ErrNotRegular on a
// non-regular system.
func Response(sys *dae.System, w complex128) (mag, phase *mat.Dense, err error) {
	h, err := sys.Evaluate(w)
	if err != nil {
		return nil, nil, err
	}
	return DBMat(h), DegMat(h), nil
}

// LogSpace returns n angular frequencies logarithmically spaced between
// 10^startExp and 10^endExp inclusive, ascending.
func LogSpace(startExp, endExp float64, n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = math.Pow(10, startExp)
		return w
	}
	return floats.LogSpan(w, math.Pow(10, startExp), math.Pow(10, endExp))
}

// ResponseRange sweeps the response over n log-spaced frequencies, each
// taken as a purely imaginary s = jw. Samples are evaluated concurrently;
// the result slots are indexed by frequency position, so ordering is
// ascending regardless of completion order.
func ResponseRange(sys *dae.System, startExp, endExp float64, n int) (*Sweep, error) {
	if n < 1 {
		return nil, fmt.Errorf("freq: need at least one sample point, got %d", n)
	}
	if !sys.IsRegular() {
		return nil, dae.ErrNotRegular
	}

	sw := &Sweep{
		Freqs:     LogSpace(startExp, endExp, n),
		Magnitude: make([]*mat.Dense, n),
		Phase:     make([]*mat.Dense, n),
	}
	errs := make([]error, n)

	var wg sync.WaitGroup
	for i, w := range sw.Freqs {
		wg.Add(1)
		go func(i int, w float64) {
			defer wg.Done()
			sw.Magnitude[i], sw.Phase[i], errs[i] = Response(sys, complex(0, w))
		}(i, w)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return sw, nil
}
