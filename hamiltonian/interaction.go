package hamiltonian

import (
	"math"
	"math/cmplx"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/operator"
	"github.com/oqtopus-team/bec-qubits/qobj"
)

// channels holds the operators of the full light-matter picture.
type channels struct {
	b0, b1, e0, e1, c *qobj.Qobj
}

func fullChannels(m core.Model, n int) (*channels, error) {
	l := newLookup(m, n)
	ch := &channels{}
	ch.b0, ch.b1 = l.pair(operator.Upper)
	ch.e0, ch.e1 = l.pair(operator.Excited)
	ch.c = l.line()
	if l.err != nil {
		return nil, l.err
	}
	return ch, nil
}

// InteractionApprox is the approximate interaction Hamiltonian of the
// derivation notes (last line of p. 5). It is hardcoded for phi = 0 and
// n = 2; any other value fails with core.ErrFixedParameterMismatch.
func InteractionApprox(m core.Model, n int) (*qobj.Qobj, error) {
	if m.Phi() != 0 {
		return nil, errors.Wrapf(core.ErrFixedParameterMismatch, "hardcoded for phi = 0, not %v", m.Phi())
	}
	if n != 2 {
		return nil, errors.Wrapf(core.ErrFixedParameterMismatch, "hardcoded for n = 2, not %d", n)
	}
	ch, err := fullChannels(m, n)
	if err != nil {
		return nil, err
	}
	G, dc, dl := m.G(), m.DeltaC(), m.DeltaL()

	exchange := ch.b0.Mul(ch.e0.Dag()).Mul(ch.b1.Dag()).Mul(ch.e1).
		Add(ch.b0.Dag().Mul(ch.e0).Mul(ch.b1).Mul(ch.e1.Dag()))
	excited := ch.e0.Dag().Mul(ch.e0).Add(ch.e1.Dag().Mul(ch.e1))
	// zero whenever delta_l == delta_c, which is every model built here
	line := ch.c.Dag().Mul(ch.c).ScaleReal(dl - dc)

	return qobj.Sum(exchange.ScaleReal(G*G/dc), excited.ScaleReal(dl), line), nil
}

// Interaction is the interaction Hamiltonian combined from H_CQED and H_f,
// Eq. (5) in [1]. The photon picks up the phase phi on its way to qubit 1.
func Interaction(m core.Model, n int) (*qobj.Qobj, error) {
	if err := core.RequireQubitPair(n); err != nil {
		return nil, err
	}
	ch, err := fullChannels(m, n)
	if err != nil {
		return nil, err
	}
	phase := cmplx.Exp(complex(0, m.Phi()))
	b0, b1, e0, e1, c := ch.b0, ch.b1, ch.e0, ch.e1, ch.c

	absorb := e0.Dag().Mul(b0).Mul(c).Sub(e1.Dag().Mul(b1).Mul(c).Scale(phase))
	emit := c.Dag().Mul(b0.Dag()).Mul(e0).Sub(c.Dag().Mul(b1.Dag()).Mul(e1).Scale(cmplx.Conj(phase)))

	return qobj.Sum(
		absorb.Add(emit).ScaleReal(m.G()/math.Sqrt2),
		e0.Dag().Mul(e0).Add(e1.Dag().Mul(e1)).ScaleReal(m.Omega0()),
		c.Dag().Mul(c).ScaleReal(m.OmegaR()),
	), nil
}

// Coupling couples both condensates to the common mode, Eq. (3) in [3]:
//
//	delta_c c† c + G (e0† b0 c + e1† b1 c + b0† e0 c† + b1† e1 c†)
func Coupling(m core.Model, n int) (*qobj.Qobj, error) {
	ch, err := fullChannels(m, n)
	if err != nil {
		return nil, err
	}
	b0, b1, e0, e1, c := ch.b0, ch.b1, ch.e0, ch.e1, ch.c

	hop := qobj.Sum(
		e0.Dag().Mul(b0).Mul(c),
		e1.Dag().Mul(b1).Mul(c),
		b0.Dag().Mul(e0).Mul(c.Dag()),
		b1.Dag().Mul(e1).Mul(c.Dag()),
	)
	return c.Dag().Mul(c).ScaleReal(m.DeltaC()).Add(hop.ScaleReal(m.G())), nil
}

// LaserField is the Hamiltonian of the controllable laser field, Eq. (4)
// in [3]:
//
//	g (e0† b0 + e1† b1 + b0† e0 + b1† e1) + delta_l (e0† e0 + e1† e1)
func LaserField(m core.Model, n int) (*qobj.Qobj, error) {
	l := newLookup(m, n)
	b0, b1 := l.pair(operator.Upper)
	e0, e1 := l.pair(operator.Excited)
	if l.err != nil {
		return nil, l.err
	}

	drive := qobj.Sum(
		e0.Dag().Mul(b0),
		e1.Dag().Mul(b1),
		b0.Dag().Mul(e0),
		b1.Dag().Mul(e1),
	)
	detuning := e0.Dag().Mul(e0).Add(e1.Dag().Mul(e1))
	return drive.ScaleReal(m.SmallG()).Add(detuning.ScaleReal(m.DeltaL())), nil
}
