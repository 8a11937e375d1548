// Package hamiltonian is the catalog of Hamiltonians of a pair of BEC
// qubits coupled through a common cavity mode.
//
// References:
//
//	[1] A. N. Pyrkov and T. Byrnes, New J. Phys. 15 093019 (2013)
//	[2] Y. Colombe et al., Nature 450, 272 (2007)
//	[3] D. Rosseau, Q. Ha and T. Byrnes, Phys. Rev. A 90, 052315 (2014)
//
// Coefficients are recomputed from the model on every call. Hamiltonians
// that use delta_l report the delta_l = delta assumption once per call
// through the model's diagnostics sink.
package hamiltonian

import (
	"math"

	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/operator"
	"github.com/oqtopus-team/bec-qubits/qobj"
	"go.uber.org/zap"
)

// Func is the signature shared by the catalog.
type Func func(m core.Model, n int) (*qobj.Qobj, error)

func spinPair(m core.Model, n int) (sz0, sz1 *qobj.Qobj, err error) {
	if err := core.RequireQubitPair(n); err != nil {
		return nil, nil, err
	}
	l := newLookup(m, n)
	sz0, sz1 = l.pair(operator.Sz)
	if l.err != nil {
		return nil, nil, l.err
	}
	return sz0, sz1, nil
}

// EffTotal is the total effective Hamiltonian, Eq. (13) in [1]:
//
//	-d sz0 sz1 + omega (sz0 + sz1)
//
// with d = Omega cos(phi) and omega = (N+2) d - g^2 omega0 / (4 delta).
// Both coefficients are traced.
func EffTotal(m core.Model, n int) (*qobj.Qobj, error) {
	sz0, sz1, err := spinPair(m, n)
	if err != nil {
		return nil, err
	}
	g := m.SmallG()
	d := m.EffectiveCoupling() * math.Cos(m.Phi())
	omega := float64(m.NBosons+2)*d - g*g*m.Omega0()/4/m.Delta()
	m.Trace("h_eff_total coefficients", zap.Float64("omega", omega), zap.Float64("d", d))

	return sz0.Mul(sz1).ScaleReal(-d).Add(sz0.Add(sz1).ScaleReal(omega)), nil
}

// EffEq9 is the effective Hamiltonian of Eq. (9) in [1].
func EffEq9(m core.Model, n int) (*qobj.Qobj, error) {
	sz0, sz1, err := spinPair(m, n)
	if err != nil {
		return nil, err
	}
	omega, cos := m.EffectiveCoupling(), math.Cos(m.Phi())
	g := m.SmallG()
	zz := -omega * cos
	z2 := omega / 2
	z := omega*(float64(m.NBosons)*(cos-1)+2*cos) - g*g*m.Omega0()/m.Delta()/2

	return qobj.Sum(
		sz0.Mul(sz1).ScaleReal(zz),
		sz0.Mul(sz0).Add(sz1.Mul(sz1)).ScaleReal(z2),
		sz0.Add(sz1).ScaleReal(z),
	), nil
}

func upperPair(m core.Model, n int) (b0, b1 *qobj.Qobj, err error) {
	l := newLookup(m, n)
	b0, b1 = l.pair(operator.Upper)
	if l.err != nil {
		return nil, nil, l.err
	}
	return b0, b1, nil
}

// EffEdition1 is the first edition of H_eff in the derivation notes:
//
//	G^2 g^2 / (delta_c delta_l^2) 2 cos(phi) b0† b1 b1† b0 + g^2 / delta_l (b0† b0 + b1† b1)
func EffEdition1(m core.Model, n int) (*qobj.Qobj, error) {
	if err := core.RequireQubitPair(n); err != nil {
		return nil, err
	}
	b0, b1, err := upperPair(m, n)
	if err != nil {
		return nil, err
	}
	G, g, dl := m.G(), m.SmallG(), m.DeltaL()
	exchange := G * G * g * g / m.DeltaC() / (dl * dl) * 2 * math.Cos(m.Phi())

	p1 := b0.Dag().Mul(b1).Mul(b1.Dag()).Mul(b0).ScaleReal(exchange)
	p2 := b0.Dag().Mul(b0).Add(b1.Dag().Mul(b1)).ScaleReal(g * g / dl)
	return p1.Add(p2), nil
}

// EffEdition3 is the third edition of H_eff in the derivation notes, in
// which the exchange term is normal ordered and qubit 0 picks up an extra
// Stark shift.
func EffEdition3(m core.Model, n int) (*qobj.Qobj, error) {
	if err := core.RequireQubitPair(n); err != nil {
		return nil, err
	}
	b0, b1, err := upperPair(m, n)
	if err != nil {
		return nil, err
	}
	G, g, dc, dl := m.G(), m.SmallG(), m.DeltaC(), m.DeltaL()
	cos := math.Cos(m.Phi())
	nb0, nb1 := b0.Dag().Mul(b0), b1.Dag().Mul(b1)

	return qobj.Sum(
		nb0.Mul(nb1).ScaleReal(G*G*g*g/dc/(dl*dl)*2*cos),
		nb0.ScaleReal(g*g/dl*(1+2*G*G/dc/dl*cos)),
		nb1.ScaleReal(g*g/dl),
	), nil
}

// EffTerms selects the optional terms of Eff.
type EffTerms struct {
	// Zeeman adds (g^2/(2 delta_l) + Omega N/2)(sz0 + sz1).
	Zeeman bool
	// Quadratic adds -Omega (sz0^2 + sz1^2).
	Quadratic bool
}

// DefaultEffTerms enables every optional term.
func DefaultEffTerms() EffTerms {
	return EffTerms{Zeeman: true, Quadratic: true}
}

// Eff is the effective Hamiltonian of Eq. (6) in [3]. The -Omega sz0 sz1
// interaction is always present.
func Eff(m core.Model, n int, terms EffTerms) (*qobj.Qobj, error) {
	sz0, sz1, err := spinPair(m, n)
	if err != nil {
		return nil, err
	}
	omega := m.EffectiveCoupling()
	h := sz0.Mul(sz1).ScaleReal(-omega)
	if terms.Quadratic {
		h = h.Add(sz0.Mul(sz0).Add(sz1.Mul(sz1)).ScaleReal(-omega))
	}
	if terms.Zeeman {
		g := m.SmallG()
		zeeman := g*g/2/m.DeltaL() + omega*float64(m.NBosons)/2
		h = h.Add(sz0.Add(sz1).ScaleReal(zeeman))
	}
	return h, nil
}

// Adiabatic is the Hamiltonian with the excited state and cavity mode
// adiabatically eliminated, Eq. (5) in [3]:
//
//	-2 G^2 g^2 / (delta_c delta_l^2) Nb^2 - g^2 / delta_l Nb,  Nb = b0† b0 + b1† b1
//
// It needs qubits 0 and 1 but does not fix n.
func Adiabatic(m core.Model, n int) (*qobj.Qobj, error) {
	b0, b1, err := upperPair(m, n)
	if err != nil {
		return nil, err
	}
	G, g, dl := m.G(), m.SmallG(), m.DeltaL()
	nb := b0.Dag().Mul(b0).Add(b1.Dag().Mul(b1))

	return nb.Mul(nb).ScaleReal(-2 * G * G * g * g / m.DeltaC() / (dl * dl)).
		Sub(nb.ScaleReal(g * g / dl)), nil
}

// ZZ is Omega sz0 sz1.
func ZZ(m core.Model, n int) (*qobj.Qobj, error) {
	sz0, sz1, err := spinPair(m, n)
	if err != nil {
		return nil, err
	}
	return sz0.Mul(sz1).ScaleReal(m.EffectiveCoupling()), nil
}
