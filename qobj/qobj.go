// Package qobj provides dense complex operators and state vectors over
// finite tensor-product Hilbert spaces.
//
// A Qobj is either an operator (square), a ket (column) or a bra (row).
// Arithmetic follows gonum conventions: mismatched shapes panic with
// ErrShape instead of returning an error.
package qobj

import (
	"math"
	"math/cmplx"

	"github.com/go-faster/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrShape     = errors.New("qobj: dimension mismatch")
	ErrDimension = errors.New("qobj: dimension must be positive")
	ErrIndex     = errors.New("qobj: basis index out of range")
	ErrPower     = errors.New("qobj: power of non-square object")
)

// Qobj is an immutable dense complex matrix together with the factor
// dimensions of the tensor product it lives on.
type Qobj struct {
	m *mat.CDense
	// dims[0] are row factor dims, dims[1] are column factor dims.
	dims [2][]int
}

func newQobj(r, c int, dims [2][]int) *Qobj {
	return &Qobj{
		m:    mat.NewCDense(r, c, make([]complex128, r*c)),
		dims: dims,
	}
}

func (q *Qobj) raw() cblas128.General {
	return q.m.RawCMatrix()
}

func copyDims(d [2][]int) [2][]int {
	return [2][]int{append([]int(nil), d[0]...), append([]int(nil), d[1]...)}
}

// Identity returns the d-dimensional identity operator.
func Identity(d int) *Qobj {
	if d < 1 {
		panic(ErrDimension)
	}
	q := newQobj(d, d, [2][]int{{d}, {d}})
	for i := 0; i < d; i++ {
		q.m.Set(i, i, 1)
	}
	return q
}

// Destroy returns the bosonic annihilation operator truncated to d levels.
func Destroy(d int) *Qobj {
	if d < 1 {
		panic(ErrDimension)
	}
	q := newQobj(d, d, [2][]int{{d}, {d}})
	for j := 1; j < d; j++ {
		q.m.Set(j-1, j, complex(math.Sqrt(float64(j)), 0))
	}
	return q
}

// Create returns the bosonic creation operator truncated to d levels.
func Create(d int) *Qobj {
	return Destroy(d).Dag()
}

// Fock returns the basis ket |j> of a d-level space.
func Fock(d, j int) *Qobj {
	if d < 1 {
		panic(ErrDimension)
	}
	if j < 0 || j >= d {
		panic(ErrIndex)
	}
	q := newQobj(d, 1, [2][]int{{d}, {1}})
	q.m.Set(j, 0, 1)
	return q
}

// Zeros returns an all-zero object with the given factor dimensions.
func Zeros(dims [2][]int) *Qobj {
	return newQobj(prod(dims[0]), prod(dims[1]), copyDims(dims))
}

func prod(ds []int) int {
	p := 1
	for _, d := range ds {
		p *= d
	}
	return p
}

// Tensor returns the Kronecker product of qs in order. Factors may have any
// shape; the result's dims are the concatenation of the factor dims.
func Tensor(qs ...*Qobj) *Qobj {
	if len(qs) == 0 {
		panic(ErrShape)
	}
	out := qs[0]
	for _, q := range qs[1:] {
		out = kron(out, q)
	}
	if len(qs) == 1 {
		out = out.clone()
	}
	return out
}

func kron(a, b *Qobj) *Qobj {
	ar, ac := a.Shape()
	br, bc := b.Shape()
	dims := [2][]int{
		append(append([]int(nil), a.dims[0]...), b.dims[0]...),
		append(append([]int(nil), a.dims[1]...), b.dims[1]...),
	}
	out := newQobj(ar*br, ac*bc, dims)
	ra, rb, ro := a.raw(), b.raw(), out.raw()
	for i1 := 0; i1 < ar; i1++ {
		for j1 := 0; j1 < ac; j1++ {
			v := ra.Data[i1*ra.Stride+j1]
			if v == 0 {
				continue
			}
			for i2 := 0; i2 < br; i2++ {
				row := (i1*br + i2) * ro.Stride
				for j2 := 0; j2 < bc; j2++ {
					ro.Data[row+j1*bc+j2] = v * rb.Data[i2*rb.Stride+j2]
				}
			}
		}
	}
	return out
}

// Sum adds qs together. It panics if qs is empty.
func Sum(qs ...*Qobj) *Qobj {
	if len(qs) == 0 {
		panic(ErrShape)
	}
	out := qs[0].clone()
	for _, q := range qs[1:] {
		out.addInPlace(q, 1)
	}
	return out
}

// Commutator returns [a, b] = ab - ba.
func Commutator(a, b *Qobj) *Qobj {
	return a.Mul(b).Sub(b.Mul(a))
}

func (q *Qobj) clone() *Qobj {
	r, c := q.Shape()
	out := newQobj(r, c, copyDims(q.dims))
	copy(out.raw().Data, q.raw().Data)
	return out
}

// Shape returns the number of rows and columns.
func (q *Qobj) Shape() (r, c int) {
	return q.m.Dims()
}

// Dims returns a copy of the row and column factor dimensions.
func (q *Qobj) Dims() [2][]int {
	return copyDims(q.dims)
}

func (q *Qobj) IsKet() bool {
	_, c := q.Shape()
	return c == 1
}

func (q *Qobj) IsBra() bool {
	r, _ := q.Shape()
	return r == 1
}

func (q *Qobj) IsOper() bool {
	r, c := q.Shape()
	return r == c
}

// At returns the element at row i, column j.
func (q *Qobj) At(i, j int) complex128 {
	return q.m.At(i, j)
}

// Data returns a row-major copy of the elements.
func (q *Qobj) Data() []complex128 {
	return append([]complex128(nil), q.raw().Data...)
}

func (q *Qobj) sameShape(o *Qobj) {
	r1, c1 := q.Shape()
	r2, c2 := o.Shape()
	if r1 != r2 || c1 != c2 {
		panic(errors.Wrapf(ErrShape, "%dx%d and %dx%d", r1, c1, r2, c2))
	}
}

func (q *Qobj) addInPlace(o *Qobj, sign complex128) {
	q.sameShape(o)
	if sign == 1 {
		cmplxs.Add(q.raw().Data, o.raw().Data)
		return
	}
	cmplxs.Sub(q.raw().Data, o.raw().Data)
}

// Add returns q + o.
func (q *Qobj) Add(o *Qobj) *Qobj {
	out := q.clone()
	out.addInPlace(o, 1)
	return out
}

// Sub returns q - o.
func (q *Qobj) Sub(o *Qobj) *Qobj {
	out := q.clone()
	out.addInPlace(o, -1)
	return out
}

// Scale returns c * q.
func (q *Qobj) Scale(c complex128) *Qobj {
	out := q.clone()
	cmplxs.Scale(c, out.raw().Data)
	return out
}

// ScaleReal returns x * q.
func (q *Qobj) ScaleReal(x float64) *Qobj {
	return q.Scale(complex(x, 0))
}

// Mul returns the matrix product q · o.
func (q *Qobj) Mul(o *Qobj) *Qobj {
	r, k := q.Shape()
	k2, c := o.Shape()
	if k != k2 {
		panic(errors.Wrapf(ErrShape, "cannot multiply %dx%d by %dx%d", r, k, k2, c))
	}
	out := newQobj(r, c, [2][]int{
		append([]int(nil), q.dims[0]...),
		append([]int(nil), o.dims[1]...),
	})
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, 1, q.raw(), o.raw(), 0, out.raw())
	return out
}

// Dag returns the conjugate transpose.
func (q *Qobj) Dag() *Qobj {
	r, c := q.Shape()
	out := newQobj(c, r, [2][]int{
		append([]int(nil), q.dims[1]...),
		append([]int(nil), q.dims[0]...),
	})
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.m.Set(j, i, cmplx.Conj(q.m.At(i, j)))
		}
	}
	return out
}

// Pow returns q raised to a non-negative integer power. q^0 is the
// identity on q's space.
func (q *Qobj) Pow(k int) *Qobj {
	if !q.IsOper() || k < 0 {
		panic(ErrPower)
	}
	r, _ := q.Shape()
	out := newQobj(r, r, copyDims(q.dims))
	for i := 0; i < r; i++ {
		out.m.Set(i, i, 1)
	}
	base := q
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			out = out.Mul(base)
		}
		if k > 1 {
			base = base.Mul(base)
		}
	}
	return out
}

// Norm returns the l2 norm for kets and bras and the Frobenius norm
// for operators.
func (q *Qobj) Norm() float64 {
	return cmplxs.Norm(q.raw().Data, 2)
}

// Unit returns q divided by its norm.
func (q *Qobj) Unit() *Qobj {
	n := q.Norm()
	if n == 0 {
		return q.clone()
	}
	return q.ScaleReal(1 / n)
}

// Tr returns the trace of an operator.
func (q *Qobj) Tr() complex128 {
	if !q.IsOper() {
		panic(ErrShape)
	}
	r, _ := q.Shape()
	var t complex128
	for i := 0; i < r; i++ {
		t += q.m.At(i, i)
	}
	return t
}

// Overlap returns <q|o> for kets q and o.
func (q *Qobj) Overlap(o *Qobj) complex128 {
	return q.Dag().Mul(o).At(0, 0)
}

// Expect returns <q|op|q> for a ket q.
func (q *Qobj) Expect(op *Qobj) complex128 {
	return q.Overlap(op.Mul(q))
}

// EqualApprox reports whether q and o have the same shape and every
// element differs by at most tol.
func (q *Qobj) EqualApprox(o *Qobj, tol float64) bool {
	r1, c1 := q.Shape()
	r2, c2 := o.Shape()
	if r1 != r2 || c1 != c2 {
		return false
	}
	a, b := q.raw().Data, o.raw().Data
	for i := range a {
		if cmplx.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

// IsZero reports whether every element is within tol of zero.
func (q *Qobj) IsZero(tol float64) bool {
	for _, v := range q.raw().Data {
		if cmplx.Abs(v) > tol {
			return false
		}
	}
	return true
}

// IsHerm reports whether q equals its conjugate transpose within tol.
func (q *Qobj) IsHerm(tol float64) bool {
	if !q.IsOper() {
		return false
	}
	return q.EqualApprox(q.Dag(), tol)
}

// IsDiagonal reports whether every off-diagonal element is within tol of zero.
func (q *Qobj) IsDiagonal(tol float64) bool {
	r, c := q.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if i != j && cmplx.Abs(q.m.At(i, j)) > tol {
				return false
			}
		}
	}
	return true
}

// Diag returns the main diagonal of an operator.
func (q *Qobj) Diag() []complex128 {
	if !q.IsOper() {
		panic(ErrShape)
	}
	r, _ := q.Shape()
	d := make([]complex128, r)
	for i := range d {
		d[i] = q.m.At(i, i)
	}
	return d
}

// FromKetData builds a ket with the given factor dims from amplitudes.
func FromKetData(dims []int, amps []complex128) *Qobj {
	if prod(dims) != len(amps) {
		panic(ErrShape)
	}
	ones := make([]int, len(dims))
	for i := range ones {
		ones[i] = 1
	}
	q := newQobj(len(amps), 1, [2][]int{append([]int(nil), dims...), ones})
	copy(q.raw().Data, amps)
	return q
}
