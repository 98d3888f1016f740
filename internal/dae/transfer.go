package dae

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Evaluate computes the transfer matrix H(s) = C(Es - A)^-1 B + D at one
// complex frequency, returning a p x m complex matrix. It fails with
// ErrNotRegular when the system is not regular.
//
// The inverse is never formed: (sE - A)X = B is solved directly through
// the real 2n x 2n embedding
//
//	[ P -Q ] [Xr]   [B]
//	[ Q  P ] [Xi] = [0]
//
// where P and Q are the real and imaginary parts of sE - A.
func (s *System) Evaluate(freq complex128) (*mat.CDense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.isRegular {
		return nil, ErrNotRegular
	}
	return s.evaluate(freq)
}

// Evaluator returns a handle on Evaluate when the system is regular, and
// ok == false otherwise. The handle stays bound to the live system: if a
// later mutation makes the system non-regular, calls through the handle
// fail with ErrNotRegular.
func (s *System) Evaluator() (eval func(complex128) (*mat.CDense, error), ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.isRegular {
		return nil, false
	}
	return s.Evaluate, true
}

func (s *System) evaluate(freq complex128) (*mat.CDense, error) {
	n := s.nc

	// pencil sE - A, split into real and imaginary parts
	var pr, pi mat.Dense
	pr.Scale(real(freq), s.e)
	pr.Sub(&pr, s.a)
	pi.Scale(imag(freq), s.e)

	big := mat.NewDense(2*n, 2*n, nil)
	big.Slice(0, n, 0, n).(*mat.Dense).Copy(&pr)
	big.Slice(0, n, n, 2*n).(*mat.Dense).Scale(-1, &pi)
	big.Slice(n, 2*n, 0, n).(*mat.Dense).Copy(&pi)
	big.Slice(n, 2*n, n, 2*n).(*mat.Dense).Copy(&pr)

	rhs := mat.NewDense(2*n, s.m, nil)
	rhs.Slice(0, n, 0, s.m).(*mat.Dense).Copy(s.b)

	var x mat.Dense
	if err := x.Solve(big, rhs); err != nil {
		// A poorly conditioned pencil still yields a usable solution.
		// An exactly singular one (s is a generalized eigenvalue of the
		// pencil, reported as an infinite condition number) is a pole of
		// H and aborts.
		cond, ok := err.(mat.Condition)
		if !ok {
			return nil, fmt.Errorf("dae: transfer function at s = %v: %w", freq, err)
		}
		if math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("dae: transfer function at s = %v: %w", freq, ErrSingularPencil)
		}
	}

	// H = C X + D with X = Xr + j Xi
	h := mat.NewCDense(s.p, s.m, nil)
	for i := 0; i < s.p; i++ {
		for j := 0; j < s.m; j++ {
			sum := complex(s.d.At(i, j), 0)
			for k := 0; k < n; k++ {
				sum += complex(s.c.At(i, k), 0) * complex(x.At(k, j), x.At(n+k, j))
			}
			h.Set(i, j, sum)
		}
	}
	return h, nil
}
