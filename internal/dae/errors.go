package dae

import (
	"errors"
	"fmt"
)

// Domain errors for system construction and evaluation.
var (
	// ErrShape indicates a matrix whose dimensions violate the
	// cross-matrix consistency rules.
	ErrShape = errors.New("dae: inconsistent matrix shape")

	// ErrNotRegular indicates a transfer-function request on a system
	// whose pencil is singular (or non-square).
	ErrNotRegular = errors.New("dae: system is not regular, transfer function undefined")

	// ErrSingularPencil indicates evaluation at a generalized eigenvalue
	// of the pencil, where H(s) has a pole.
	ErrSingularPencil = errors.New("dae: pencil sE - A is singular at this frequency")
)

// ShapeError reports which matrix violated a dimension constraint.
type ShapeError struct {
	Matrix             string
	Rows, Cols         int
	WantRows, WantCols int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("dae: matrix %s is %dx%d, want %dx%d", e.Matrix, e.Rows, e.Cols, e.WantRows, e.WantCols)
}

func (e *ShapeError) Unwrap() error {
	return ErrShape
}
