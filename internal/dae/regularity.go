package dae

import "gonum.org/v1/gonum/mat"

// Classification happens under the caller's write lock.
//
// An ODE is a square system with invertible E; an ODE is always regular.
// A square non-ODE is regular iff the pencil sE - A is regular, and a
// non-square system is never regular.
func (s *System) classify() {
	s.isODE = s.nr == s.nc && mat.Det(s.e) != 0
	switch {
	case s.isODE:
		s.isRegular = true
	case s.nr != s.nc:
		s.isRegular = false
	default:
		s.isRegular = regularPencil(s.a, s.e)
	}
}

// Relative gap between largest and smallest singular value below which a
// pencil sample is treated as rank-deficient.
const rankTol = 1e-10

// Golden ratio conjugate. Sample points are spaced by an irrational step
// so they avoid the small-integer and small-rational eigenvalues common
// in hand-written systems.
const sampleStep = 0.6180339887498949

// regularPencil reports whether det(sE - A) is not identically zero.
//
// det(sE - A) is a polynomial in s of degree at most n, so it vanishes
// identically iff it vanishes at n+1 distinct points. The pencil is
// sampled at n+1 deterministic real points and rank-tested; one full-rank
// sample proves regularity. A regular pencil has at most n generalized
// eigenvalues, so at least one of the samples is eigenvalue-free.
func regularPencil(a, e *mat.Dense) bool {
	n, _ := a.Dims()
	if n == 0 {
		return true
	}

	var pencil mat.Dense
	var svd mat.SVD
	for k := 0; k <= n; k++ {
		sk := float64(k+1) * sampleStep
		pencil.Scale(sk, e)
		pencil.Sub(&pencil, a)
		if fullRank(&svd, &pencil) {
			return true
		}
	}
	return false
}

func fullRank(svd *mat.SVD, m *mat.Dense) bool {
	if !svd.Factorize(m, mat.SVDNone) {
		return false
	}
	sv := svd.Values(nil)
	return sv[0] > 0 && sv[len(sv)-1] > rankTol*sv[0]
}
