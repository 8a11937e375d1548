//go:build unit
// +build unit

package hamiltonian

import (
	"math"
	"testing"

	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/operator"
	"github.com/oqtopus-team/bec-qubits/qobj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundModel has G = 2, g = 3, omega0 = 5 and omega = 4, so that
// delta = delta_c = delta_l = 1 and Omega = G^2 g^2 / (2 delta^3) = 18.
func roundModel(nb int, phase float64, excitation, line bool) core.Model {
	return core.Model{
		NBosons:           nb,
		CouplingStrength:  2,
		TransitionAmpl:    3,
		TransitionFreq:    5,
		ResonanceFreq:     4,
		Phase:             phase,
		ExcitationLevel:   excitation,
		CommunicationLine: line,
		Diagnostics:       core.NopDiagnostics(),
	}
}

// pairOps fetches operators of a qubit pair.
type pairOps struct {
	t *testing.T
	m core.Model
}

func (o pairOps) get(f operator.Func, k int) *qobj.Qobj {
	o.t.Helper()
	q, err := f(o.m, 2, k)
	require.NoError(o.t, err)
	return q
}

func (o pairOps) sz() (*qobj.Qobj, *qobj.Qobj) {
	return o.get(operator.Sz, 0), o.get(operator.Sz, 1)
}

func (o pairOps) b() (*qobj.Qobj, *qobj.Qobj) {
	return o.get(operator.Upper, 0), o.get(operator.Upper, 1)
}

func (o pairOps) e() (*qobj.Qobj, *qobj.Qobj) {
	return o.get(operator.Excited, 0), o.get(operator.Excited, 1)
}

func (o pairOps) c() *qobj.Qobj {
	return o.get(operator.Line, 0)
}

func number(q *qobj.Qobj) *qobj.Qobj {
	return q.Dag().Mul(q)
}

func TestRoundModel(t *testing.T) {
	m := roundModel(2, 0, false, false)
	assert.InDelta(t, 1, m.Delta(), tol)
	assert.InDelta(t, 1, m.DeltaC(), tol)
	assert.InDelta(t, 18, m.EffectiveCoupling(), tol)
}

func TestCoefficients(t *testing.T) {
	// cos(pi/3) = 1/2
	phase := math.Pi / 3
	plain := roundModel(2, phase, false, false)
	register := roundModel(1, phase, true, true)

	tests := []struct {
		name  string
		f     Func
		model core.Model
		want  func(o pairOps) *qobj.Qobj
	}{
		{
			// d = 18/2 = 9, omega = (2+2) 9 - 9*5/4 = 24.75
			name:  "eff_total",
			f:     EffTotal,
			model: plain,
			want: func(o pairOps) *qobj.Qobj {
				sz0, sz1 := o.sz()
				return sz0.Mul(sz1).ScaleReal(-9).Add(sz0.Add(sz1).ScaleReal(24.75))
			},
		},
		{
			// zz = -9, z2 = 9, z = 18 (2 (1/2 - 1) + 1) - 9*5/2 = -22.5
			name:  "eff_eq9",
			f:     EffEq9,
			model: plain,
			want: func(o pairOps) *qobj.Qobj {
				sz0, sz1 := o.sz()
				return qobj.Sum(
					sz0.Mul(sz1).ScaleReal(-9),
					sz0.Mul(sz0).Add(sz1.Mul(sz1)).ScaleReal(9),
					sz0.Add(sz1).ScaleReal(-22.5),
				)
			},
		},
		{
			// exchange = 4*9 * 2 * 1/2 = 36, Stark shift g^2/delta_l = 9
			name:  "eff_edition1",
			f:     EffEdition1,
			model: plain,
			want: func(o pairOps) *qobj.Qobj {
				b0, b1 := o.b()
				return b0.Dag().Mul(b1).Mul(b1.Dag()).Mul(b0).ScaleReal(36).
					Add(number(b0).Add(number(b1)).ScaleReal(9))
			},
		},
		{
			// qubit 0 shift 9 (1 + 2*4 * 1/2) = 45, qubit 1 shift 9
			name:  "eff_edition3",
			f:     EffEdition3,
			model: plain,
			want: func(o pairOps) *qobj.Qobj {
				b0, b1 := o.b()
				nb0, nb1 := number(b0), number(b1)
				return qobj.Sum(nb0.Mul(nb1).ScaleReal(36), nb0.ScaleReal(45), nb1.ScaleReal(9))
			},
		},
		{
			// Zeeman 9/2 + 18*2/2 = 22.5; the phase does not enter
			name:  "eff",
			f:     Registry["eff"],
			model: plain,
			want: func(o pairOps) *qobj.Qobj {
				sz0, sz1 := o.sz()
				return qobj.Sum(
					sz0.Mul(sz1).ScaleReal(-18),
					sz0.Mul(sz0).Add(sz1.Mul(sz1)).ScaleReal(-18),
					sz0.Add(sz1).ScaleReal(22.5),
				)
			},
		},
		{
			name:  "adiabatic",
			f:     Adiabatic,
			model: plain,
			want: func(o pairOps) *qobj.Qobj {
				b0, b1 := o.b()
				nb := number(b0).Add(number(b1))
				return nb.Mul(nb).ScaleReal(-72).Sub(nb.ScaleReal(9))
			},
		},
		{
			name:  "zz",
			f:     ZZ,
			model: plain,
			want: func(o pairOps) *qobj.Qobj {
				sz0, sz1 := o.sz()
				return sz0.Mul(sz1).ScaleReal(18)
			},
		},
		{
			// G^2/delta_c = 4; the line term vanishes with delta_l = delta_c
			name:  "int_approx",
			f:     InteractionApprox,
			model: register.WithPhase(0),
			want: func(o pairOps) *qobj.Qobj {
				b0, b1 := o.b()
				e0, e1 := o.e()
				exchange := b0.Mul(e0.Dag()).Mul(b1.Dag()).Mul(e1).
					Add(b0.Dag().Mul(e0).Mul(b1).Mul(e1.Dag()))
				return exchange.ScaleReal(4).Add(number(e0).Add(number(e1)))
			},
		},
		{
			// G/sqrt(2) = sqrt(2); qubit 1 absorbs with -e^{i phi}, emits with -e^{-i phi}
			name:  "interaction",
			f:     Interaction,
			model: register,
			want: func(o pairOps) *qobj.Qobj {
				b0, b1 := o.b()
				e0, e1 := o.e()
				c := o.c()
				ph := complex(0.5, math.Sqrt(3)/2)
				return qobj.Sum(
					e0.Dag().Mul(b0).Mul(c).ScaleReal(math.Sqrt2),
					e1.Dag().Mul(b1).Mul(c).Scale(-ph*math.Sqrt2),
					c.Dag().Mul(b0.Dag()).Mul(e0).ScaleReal(math.Sqrt2),
					c.Dag().Mul(b1.Dag()).Mul(e1).Scale(-complex(0.5, -math.Sqrt(3)/2)*math.Sqrt2),
					number(e0).Add(number(e1)).ScaleReal(5),
					number(c).ScaleReal(4),
				)
			},
		},
		{
			name:  "coupling",
			f:     Coupling,
			model: register,
			want: func(o pairOps) *qobj.Qobj {
				b0, b1 := o.b()
				e0, e1 := o.e()
				c := o.c()
				hop := qobj.Sum(
					e0.Dag().Mul(b0).Mul(c),
					e1.Dag().Mul(b1).Mul(c),
					b0.Dag().Mul(e0).Mul(c.Dag()),
					b1.Dag().Mul(e1).Mul(c.Dag()),
				)
				return number(c).Add(hop.ScaleReal(2))
			},
		},
		{
			name:  "laser_field",
			f:     LaserField,
			model: register,
			want: func(o pairOps) *qobj.Qobj {
				b0, b1 := o.b()
				e0, e1 := o.e()
				drive := qobj.Sum(e0.Dag().Mul(b0), e1.Dag().Mul(b1), b0.Dag().Mul(e0), b1.Dag().Mul(e1))
				return drive.ScaleReal(3).Add(number(e0).Add(number(e1)))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.f(tt.model, 2)
			require.NoError(t, err)
			want := tt.want(pairOps{t: t, m: tt.model})
			assert.True(t, got.EqualApprox(want, 1e-9), "got %v", got.Sub(want).Norm())
		})
	}
}

func TestInteractionPhaseSign(t *testing.T) {
	// e^{i phi} and e^{-i phi} differ unless phi is a multiple of pi
	m := roundModel(1, math.Pi/2, true, true)
	h, err := Interaction(m, 2)
	require.NoError(t, err)
	o := pairOps{t: t, m: m}
	_, b1 := o.b()
	_, e1 := o.e()
	absorb := e1.Dag().Mul(b1).Mul(o.c())
	// Tr(absorb† h) picks the coefficient of absorb: -i sqrt(2) times its norm
	got := absorb.Dag().Mul(h).Tr()
	norm := absorb.Dag().Mul(absorb).Tr()
	assert.InDelta(t, 0, real(got), 1e-9)
	assert.InDelta(t, -math.Sqrt2*real(norm), imag(got), 1e-9)
}
