package dae

import (
	"fmt"
	"strings"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// System is one linear DAE instance. All five matrices are owned by the
// System: constructors and setters copy their inputs, accessors return
// copies. Mutation and evaluation on the same instance are serialized
// internally, so a System is safe for concurrent readers with a single
// writer.
type System struct {
	mu sync.RWMutex

	e, a, b, c, d *mat.Dense
	label         string

	nr, nc int // equations, states
	m, p   int // inputs, outputs

	isODE     bool
	isRegular bool
}

// New constructs a system with E defaulting to the identity sized like A.
func New(a, b, c, d *mat.Dense, label string) (*System, error) {
	if a == nil {
		return nil, fmt.Errorf("dae: matrix A is nil: %w", ErrShape)
	}
	return NewDescriptor(identityLike(a), a, b, c, d, label)
}

// NewDescriptor constructs a system with an explicit E matrix. All five
// shape relations are checked before any state is retained: E and A share
// a shape, A and B share rows, A and C share columns, B and D share
// columns, C and D share rows.
func NewDescriptor(e, a, b, c, d *mat.Dense, label string) (*System, error) {
	for _, in := range []struct {
		name string
		m    *mat.Dense
	}{{"E", e}, {"A", a}, {"B", b}, {"C", c}, {"D", d}} {
		if in.m == nil {
			return nil, fmt.Errorf("dae: matrix %s is nil: %w", in.name, ErrShape)
		}
	}

	er, ec := e.Dims()
	ar, ac := a.Dims()
	br, bc := b.Dims()
	cr, cc := c.Dims()
	dr, dc := d.Dims()

	if er != ar || ec != ac {
		return nil, &ShapeError{Matrix: "E", Rows: er, Cols: ec, WantRows: ar, WantCols: ac}
	}
	if br != ar {
		return nil, &ShapeError{Matrix: "B", Rows: br, Cols: bc, WantRows: ar, WantCols: bc}
	}
	if cc != ac {
		return nil, &ShapeError{Matrix: "C", Rows: cr, Cols: cc, WantRows: cr, WantCols: ac}
	}
	if dc != bc || dr != cr {
		return nil, &ShapeError{Matrix: "D", Rows: dr, Cols: dc, WantRows: cr, WantCols: bc}
	}

	s := &System{
		e:     mat.DenseCopyOf(e),
		a:     mat.DenseCopyOf(a),
		b:     mat.DenseCopyOf(b),
		c:     mat.DenseCopyOf(c),
		d:     mat.DenseCopyOf(d),
		label: label,
		nr:    ar,
		nc:    ac,
		m:     bc,
		p:     cr,
	}
	s.classify()
	return s, nil
}

// identityLike returns an identity matrix with the shape of a, with ones
// down the main diagonal even when a is rectangular.
func identityLike(a *mat.Dense) *mat.Dense {
	r, c := a.Dims()
	e := mat.NewDense(r, c, nil)
	for i := 0; i < r && i < c; i++ {
		e.Set(i, i, 1)
	}
	return e
}

func sameShape(name string, old, next *mat.Dense) error {
	if next == nil {
		return fmt.Errorf("dae: matrix %s is nil: %w", name, ErrShape)
	}
	wr, wc := old.Dims()
	r, c := next.Dims()
	if r != wr || c != wc {
		return &ShapeError{Matrix: name, Rows: r, Cols: c, WantRows: wr, WantCols: wc}
	}
	return nil
}

// NumEquations returns the row count of E, A and B.
func (s *System) NumEquations() int { return s.nr }

// NumStates returns the column count of E, A and C.
func (s *System) NumStates() int { return s.nc }

// NumInputs returns the column count of B and D.
func (s *System) NumInputs() int { return s.m }

// NumOutputs returns the row count of C and D.
func (s *System) NumOutputs() int { return s.p }

// IsODE reports whether the system is square with invertible E.
func (s *System) IsODE() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isODE
}

// IsRegular reports whether the system has a unique solution for
// consistent initial conditions, equivalently whether det(sE - A) is not
// identically zero.
func (s *System) IsRegular() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRegular
}

func (s *System) Label() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.label
}

func (s *System) SetLabel(label string) {
	s.mu.Lock()
	s.label = label
	s.mu.Unlock()
}

func (s *System) E() *mat.Dense { return s.matrixCopy(&s.e) }
func (s *System) A() *mat.Dense { return s.matrixCopy(&s.a) }
func (s *System) B() *mat.Dense { return s.matrixCopy(&s.b) }
func (s *System) C() *mat.Dense { return s.matrixCopy(&s.c) }
func (s *System) D() *mat.Dense { return s.matrixCopy(&s.d) }

func (s *System) matrixCopy(m **mat.Dense) *mat.Dense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return mat.DenseCopyOf(*m)
}

// SetE replaces E. The new matrix must have the established shape;
// classification flags are re-derived.
func (s *System) SetE(e *mat.Dense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := sameShape("E", s.e, e); err != nil {
		return err
	}
	s.e = mat.DenseCopyOf(e)
	s.classify()
	return nil
}

// SetA replaces A. The new matrix must have the established shape;
// classification flags are re-derived.
func (s *System) SetA(a *mat.Dense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := sameShape("A", s.a, a); err != nil {
		return err
	}
	s.a = mat.DenseCopyOf(a)
	s.classify()
	return nil
}

// SetB replaces B. Shape-checked only; B does not affect regularity.
func (s *System) SetB(b *mat.Dense) error { return s.setPlain("B", &s.b, b) }

// SetC replaces C. Shape-checked only; C does not affect regularity.
func (s *System) SetC(c *mat.Dense) error { return s.setPlain("C", &s.c, c) }

// SetD replaces D. Shape-checked only; D does not affect regularity.
func (s *System) SetD(d *mat.Dense) error { return s.setPlain("D", &s.d, d) }

func (s *System) setPlain(name string, dst **mat.Dense, next *mat.Dense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := sameShape(name, *dst, next); err != nil {
		return err
	}
	*dst = mat.DenseCopyOf(next)
	return nil
}

// String summarizes the classification, dimensions and the five matrices.
func (s *System) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "System: %s\n", s.label)
	fmt.Fprintf(&sb, "isODE = %v, isRegular = %v,\n", s.isODE, s.isRegular)
	fmt.Fprintf(&sb, "n_r = %d, n_c = %d, m = %d, p = %d\n", s.nr, s.nc, s.m, s.p)
	for _, mx := range []struct {
		name string
		m    *mat.Dense
	}{{"E", s.e}, {"A", s.a}, {"B", s.b}, {"C", s.c}, {"D", s.d}} {
		fmt.Fprintf(&sb, "\n%s =\n%v\n", mx.name, mat.Formatted(mx.m, mat.Squeeze()))
	}
	return sb.String()
}
