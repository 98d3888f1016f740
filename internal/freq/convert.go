package freq

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// DB converts one complex response entry to magnitude in decibels.
func DB(z complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(z))
}

// Deg converts one complex response entry to phase in degrees, principal
// value in (-180, 180].
func Deg(z complex128) float64 {
	return cmplx.Phase(z) * 180 / math.Pi
}

// DBMat applies DB entrywise.
func DBMat(z mat.CMatrix) *mat.Dense {
	return apply(z, DB)
}

// DegMat applies Deg entrywise.
func DegMat(z mat.CMatrix) *mat.Dense {
	return apply(z, Deg)
}

func apply(z mat.CMatrix, f func(complex128) float64) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Set(i, j, f(z.At(i, j)))
		}
	}
	return out
}
