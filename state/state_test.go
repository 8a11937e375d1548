//go:build unit
// +build unit

package state

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/hamiltonian"
	"github.com/oqtopus-team/bec-qubits/operator"
	"github.com/oqtopus-team/bec-qubits/qobj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-10

func quiet(nb int) core.Model {
	return core.NewDefaultModel(nb, 0, false).WithDiagnostics(core.NopDiagnostics())
}

// evolve applies exp(-i h t) to psi for a diagonal h.
func evolve(h, psi *qobj.Qobj, t float64) *qobj.Qobj {
	diag := h.Diag()
	amps := psi.Data()
	for i := range amps {
		amps[i] *= cmplx.Exp(complex(0, -real(diag[i])*t))
	}
	return qobj.FromKetData(psi.Dims()[0], amps)
}

func TestUnitNorms(t *testing.T) {
	amplitudes := []struct {
		name        string
		alpha, beta complex128
	}{
		{name: "equal", alpha: DefaultAmplitude, beta: DefaultAmplitude},
		{name: "all in a", alpha: 1, beta: 0},
		{name: "complex", alpha: 0.6, beta: 0.8i},
	}
	registers := []struct{ nb, n int }{{nb: 1, n: 2}, {nb: 2, n: 2}, {nb: 3, n: 1}}
	for _, r := range registers {
		m, nb := quiet(r.nb), r.nb
		for k := 0; k < r.n; k++ {
			for _, a := range amplitudes {
				c, err := Coherent(m, r.n, k, a.alpha, a.beta)
				require.NoError(t, err)
				assert.InDelta(t, 1, c.Norm(), tol, "coherent %s n_bosons=%d k=%d", a.name, nb, k)
			}
			for j := 0; j <= nb; j++ {
				z, err := FockZ(m, r.n, k, j)
				require.NoError(t, err)
				assert.InDelta(t, 1, z.Norm(), tol, "fock z n_bosons=%d k=%d j=%d", nb, k, j)
				x, err := FockX(m, r.n, k, j)
				require.NoError(t, err)
				assert.InDelta(t, 1, x.Norm(), tol, "fock x n_bosons=%d k=%d j=%d", nb, k, j)
			}
		}
	}

	line := core.NewDefaultModel(1, 0, true).WithCommunicationLine(true)
	c, err := CoherentProduct(line, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1, c.Norm(), tol)
}

func TestFockEigenstates(t *testing.T) {
	m := quiet(2)
	sz, err := operator.Sz(m, 2, 1)
	require.NoError(t, err)
	sx, err := operator.Sx(m, 2, 1)
	require.NoError(t, err)
	for k := 0; k <= 2; k++ {
		want := float64(2*k - 2)
		z, err := FockZ(m, 2, 1, k)
		require.NoError(t, err)
		assert.True(t, sz.Mul(z).EqualApprox(z.ScaleReal(want), tol), "k=%d", k)
		x, err := FockX(m, 2, 1, k)
		require.NoError(t, err)
		assert.True(t, sx.Mul(x).EqualApprox(x.ScaleReal(want), tol), "k=%d", k)
	}
}

func TestFockXConstructorNorm(t *testing.T) {
	for _, nb := range []int{1, 2, 3} {
		m := quiet(nb)
		for k := 0; k <= nb; k++ {
			c, err := FockXConstructor(m, 1, 0, k)
			require.NoError(t, err)
			vac, err := Vacuum(m, 1)
			require.NoError(t, err)
			assert.InDelta(t, math.Pow(2, float64(nb)/2), c.Mul(vac).Norm(), tol)
		}
	}
}

func TestEPRPlus(t *testing.T) {
	m := quiet(1)
	epr, err := EPRPlus(m, 2)
	require.NoError(t, err)
	assert.Equal(t, [2][]int{{2, 2, 2, 2}, {1, 1, 1, 1}}, epr.Dims())

	// |a0 b0 a1 b1> = |0101> + |1010>, i.e. logical |01> + |10>
	want := make([]complex128, 16)
	want[5] = complex(1/math.Sqrt2, 0)
	want[10] = complex(1/math.Sqrt2, 0)
	assert.True(t, epr.EqualApprox(qobj.FromKetData([]int{2, 2, 2, 2}, want), tol))

	for _, nb := range []int{2, 3} {
		epr, err := EPRPlus(quiet(nb), 2)
		require.NoError(t, err)
		assert.InDelta(t, 1, epr.Norm(), tol)
	}

	_, err = EPRPlus(m, 3)
	assert.True(t, errors.Is(err, core.ErrUnsupportedQubitCount))
	_, err = EPRPlusConstructor(m, 1)
	assert.True(t, errors.Is(err, core.ErrUnsupportedQubitCount))
}

func TestStateErrors(t *testing.T) {
	m := quiet(2)
	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name:    "fock z occupation above n_bosons",
			run:     func() error { _, err := FockZ(m, 1, 0, 3); return err },
			wantErr: ErrOccupationOutOfRange,
		},
		{
			name:    "fock x negative occupation",
			run:     func() error { _, err := FockX(m, 1, 0, -1); return err },
			wantErr: ErrOccupationOutOfRange,
		},
		{
			name:    "coherent qubit out of range",
			run:     func() error { _, err := Coherent(m, 2, 2, 1, 0); return err },
			wantErr: core.ErrQubitIndexOutOfRange,
		},
		{
			name:    "fock focked qubit out of range",
			run:     func() error { _, err := FockFocked(m, 2, 2, 0); return err },
			wantErr: core.ErrQubitIndexOutOfRange,
		},
		{
			name:    "fock focked occupation",
			run:     func() error { _, err := FockFocked(m, 2, 0, 5); return err },
			wantErr: ErrOccupationOutOfRange,
		},
		{
			name:    "vacuum without qubits",
			run:     func() error { _, err := Vacuum(m, 0); return err },
			wantErr: core.ErrQubitIndexOutOfRange,
		},
		{
			name:    "coherent product without qubits",
			run:     func() error { _, err := CoherentProduct(m, 0); return err },
			wantErr: core.ErrQubitIndexOutOfRange,
		},
		{
			name: "trajectory with line and excitation",
			run: func() error {
				_, err := ZZTheoretical(quiet(1).WithCommunicationLine(true).WithExcitationLevel(true), 0)
				return err
			},
			wantErr: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestZZTheoreticalFollowsZZ(t *testing.T) {
	for _, nb := range []int{1, 2} {
		m := quiet(nb)
		h, err := hamiltonian.ZZ(m, 2)
		require.NoError(t, err)
		require.True(t, h.IsDiagonal(tol))

		start, err := ZZTheoretical(m, 0)
		require.NoError(t, err)
		product, err := CoherentProduct(m, 2)
		require.NoError(t, err)
		assert.True(t, start.EqualApprox(product, tol))

		for _, tm := range []float64{100, 750, 3141} {
			got, err := ZZTheoretical(m, tm)
			require.NoError(t, err)
			assert.InDelta(t, 1, got.Norm(), tol)
			assert.True(t, got.EqualApprox(evolve(h, start, tm), 1e-9), "n_bosons=%d t=%v", nb, tm)
		}
	}
}

func TestNNExactFollowsNumberCoupling(t *testing.T) {
	m := quiet(2)
	na0, err := operator.Number(m, 2, 0)
	require.NoError(t, err)
	na1, err := operator.Number(m, 2, 1)
	require.NoError(t, err)
	h := na0.Mul(na1).ScaleReal(-1)

	start, err := NNExact(m, 0)
	require.NoError(t, err)
	product, err := CoherentProduct(m, 2)
	require.NoError(t, err)
	assert.True(t, start.EqualApprox(product, tol))

	for _, tm := range []float64{0.3, 1.7} {
		got, err := NNExact(m, tm)
		require.NoError(t, err)
		assert.True(t, got.EqualApprox(evolve(h, start, tm), 1e-9), "t=%v", tm)
	}
}

// fullIndex is the index of |j, N-j, k, N-k> in the plain pair layout.
func fullIndex(nb, j, k int) int {
	d := nb + 1
	return ((j*d+(nb-j))*d+k)*d + (nb - k)
}

func TestFockedMatchesFullSpace(t *testing.T) {
	m := quiet(2)
	tm := 500.0
	nb, d := m.NBosons, m.LocalDim()

	full, err := ZZTheoretical(m, tm)
	require.NoError(t, err)
	reduced := ZZTheoreticalFocked(m, tm)
	assert.Equal(t, [2][]int{{d, d}, {1, 1}}, reduced.Dims())
	assert.InDelta(t, 1, reduced.Norm(), tol)

	nnFull, err := NNExact(m, tm)
	require.NoError(t, err)
	nnFocked := NumberExactFocked(m, tm)
	assert.InDelta(t, 1, nnFocked.Norm(), tol)

	for j := 0; j <= nb; j++ {
		for k := 0; k <= nb; k++ {
			assert.InDelta(t, 0, cmplx.Abs(reduced.At(j*d+k, 0)-full.At(fullIndex(nb, j, k), 0)), tol)
			assert.InDelta(t, 0, cmplx.Abs(nnFocked.At(j*d+k, 0)-nnFull.At(fullIndex(nb, j, k), 0)), tol)
		}
	}
}

func TestZZReducedIsPartialTrace(t *testing.T) {
	for _, nb := range []int{1, 3} {
		m := quiet(nb)
		d := m.LocalDim()
		for _, tm := range []float64{0, 400} {
			rho := ZZReducedTheoreticalFocked(m, tm)
			assert.True(t, rho.IsHerm(tol))
			assert.InDelta(t, 1, real(rho.Tr()), tol)
			assert.InDelta(t, 0, imag(rho.Tr()), tol)

			psi := ZZTheoreticalFocked(m, tm)
			for i := 0; i < d; i++ {
				for j := 0; j < d; j++ {
					var want complex128
					for k := 0; k < d; k++ {
						want += psi.At(i*d+k, 0) * cmplx.Conj(psi.At(j*d+k, 0))
					}
					assert.InDelta(t, 0, cmplx.Abs(rho.At(i, j)-want), tol)
				}
			}
		}
	}
}

func TestCoherentFocked(t *testing.T) {
	m := quiet(3)
	v := CoherentFocked(m, DefaultAmplitude, DefaultAmplitude)
	assert.InDelta(t, 1, v.Norm(), tol)
	assert.InDelta(t, math.Sqrt(3.0/8), real(v.At(1, 0)), tol)

	only := CoherentFocked(m, 1, 0)
	assert.True(t, only.EqualApprox(qobj.Fock(4, 3), tol))
}

func TestFockFocked(t *testing.T) {
	m := quiet(2)
	d := m.LocalDim()
	v := CoherentFocked(m, 0.6, 0.8)
	for i := 0; i < 2; i++ {
		for k := 0; k <= 2; k++ {
			f, err := FockFocked(m, 2, i, k)
			require.NoError(t, err)
			r, c := f.Shape()
			assert.Equal(t, d*d, r)
			assert.Equal(t, d, c)

			want := qobj.Tensor(qobj.Fock(d, k), v)
			if i == 1 {
				want = qobj.Tensor(v, qobj.Fock(d, k))
			}
			assert.True(t, f.Mul(v).EqualApprox(want, tol))
		}
	}
}

func TestRegistries(t *testing.T) {
	m := quiet(1)
	for _, name := range StateNames() {
		f, err := LookupState(name)
		require.NoError(t, err)
		s, err := f(m, 2)
		require.NoError(t, err, name)
		assert.InDelta(t, 1, s.Norm(), tol, name)
	}
	for _, name := range TrajectoryNames() {
		f, err := LookupTrajectory(name)
		require.NoError(t, err)
		s, err := f(m, 10)
		require.NoError(t, err, name)
		if s.IsOper() {
			assert.InDelta(t, 1, real(s.Tr()), tol, name)
			continue
		}
		assert.InDelta(t, 1, s.Norm(), tol, name)
	}
	assert.Equal(t, []string{"coherent", "epr_plus", "vacuum"}, StateNames())

	_, err := LookupTrajectory("nope")
	assert.True(t, errors.Is(err, ErrUnknownName))
	_, err = LookupState("nope")
	assert.True(t, errors.Is(err, ErrUnknownName))
}
