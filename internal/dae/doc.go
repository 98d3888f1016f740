// Package dae models linear differential-algebraic equations
//
//	E x' = A x + B u
//	y    = C x + D u
//
// possibly with singular E, mixing differential and algebraic constraints.
//
// A [System] validates the shapes of its five matrices at construction and
// on every replacement, and classifies itself:
//
//   - ODE: square with invertible E
//   - regular: the pencil sE - A has a determinant that is not identically
//     zero, so the transfer function H(s) = C(Es-A)^-1 B + D exists for
//     almost every s
//
// Only regular systems can be evaluated:
//
//	sys, err := dae.New(a, b, c, d, "plant")
//	if sys.IsRegular() {
//	    h, _ := sys.Evaluate(complex(0, 1)) // H(j1), p x m
//	}
//
// Non-square systems are accepted but are never regular.
package dae
