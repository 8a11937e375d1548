// Package state is the catalog of states of a BEC qubit register: the
// vacuum, spin coherent states, Sz and Sx Fock states, the EPR state and
// closed-form trajectories used as ground truth for solvers.
//
// Constructors return the creation operator that produces a state from the
// vacuum; the matching function without the Constructor suffix applies it.
package state

import (
	"math"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/hilbert"
	"github.com/oqtopus-team/bec-qubits/operator"
	"github.com/oqtopus-team/bec-qubits/qobj"
	"gonum.org/v1/gonum/stat/combin"
)

// DefaultAmplitude is the equal superposition amplitude 1/sqrt(2).
const DefaultAmplitude = complex(1/math.Sqrt2, 0)

// ErrOccupationOutOfRange is returned for a Fock index outside 0..NBosons.
var ErrOccupationOutOfRange = errors.New("occupation out of range")

// Vacuum is the state with every mode of the n qubit register empty.
func Vacuum(m core.Model, n int) (*qobj.Qobj, error) {
	return hilbert.Vacuum(m, n)
}

// create applies the creation operator c to the vacuum of n qubits.
func create(c *qobj.Qobj, m core.Model, n int) (*qobj.Qobj, error) {
	v, err := Vacuum(m, n)
	if err != nil {
		return nil, err
	}
	return c.Mul(v), nil
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

func binomial(n, k int) float64 {
	return float64(combin.Binomial(n, k))
}

func checkOccupation(m core.Model, k int) error {
	if k < 0 || k > m.NBosons {
		return errors.Wrapf(ErrOccupationOutOfRange, "k=%d, n_bosons=%d", k, m.NBosons)
	}
	return nil
}

func creators(m core.Model, n, k int) (ad, bd *qobj.Qobj, err error) {
	a, err := operator.Lower(m, n, k)
	if err != nil {
		return nil, nil, err
	}
	b, err := operator.Upper(m, n, k)
	if err != nil {
		return nil, nil, err
	}
	return a.Dag(), b.Dag(), nil
}

// CoherentConstructor is (alpha a† + beta b†)^N / sqrt(N!) on qubit k.
// The state is normalised when |alpha|^2 + |beta|^2 = 1.
func CoherentConstructor(m core.Model, n, k int, alpha, beta complex128) (*qobj.Qobj, error) {
	ad, bd, err := creators(m, n, k)
	if err != nil {
		return nil, err
	}
	return ad.Scale(alpha).Add(bd.Scale(beta)).Pow(m.NBosons).
		ScaleReal(1 / math.Sqrt(factorial(m.NBosons))), nil
}

// Coherent is the spin coherent state of qubit k; every other qubit is
// left in the vacuum.
func Coherent(m core.Model, n, k int, alpha, beta complex128) (*qobj.Qobj, error) {
	c, err := CoherentConstructor(m, n, k, alpha, beta)
	if err != nil {
		return nil, err
	}
	return create(c, m, n)
}

// CoherentProduct puts every qubit in the equal superposition coherent
// state.
func CoherentProduct(m core.Model, n int) (*qobj.Qobj, error) {
	v, err := Vacuum(m, n)
	if err != nil {
		return nil, err
	}
	for k := 0; k < n; k++ {
		c, err := CoherentConstructor(m, n, k, DefaultAmplitude, DefaultAmplitude)
		if err != nil {
			return nil, err
		}
		v = c.Mul(v)
	}
	return v, nil
}

// FockZConstructor creates the k-th eigenstate of Sz of qubit i,
// a†^k b†^(N-k) / sqrt(k! (N-k)!), with Sz eigenvalue 2k - N.
func FockZConstructor(m core.Model, n, i, k int) (*qobj.Qobj, error) {
	if err := checkOccupation(m, k); err != nil {
		return nil, err
	}
	ad, bd, err := creators(m, n, i)
	if err != nil {
		return nil, err
	}
	nb := m.NBosons
	norm := math.Sqrt(factorial(k) * factorial(nb-k))
	return ad.Pow(k).Mul(bd.Pow(nb - k)).ScaleReal(1 / norm), nil
}

// FockZ is the k-th Sz eigenstate of qubit i.
func FockZ(m core.Model, n, i, k int) (*qobj.Qobj, error) {
	c, err := FockZConstructor(m, n, i, k)
	if err != nil {
		return nil, err
	}
	return create(c, m, n)
}

// FockXConstructor creates the k-th eigenstate of Sx of qubit i,
// (a† + b†)^k (a† - b†)^(N-k) / sqrt(k! (N-k)!). The prefactor is the one
// of FockZConstructor, so the created state has norm 2^(N/2).
func FockXConstructor(m core.Model, n, i, k int) (*qobj.Qobj, error) {
	if err := checkOccupation(m, k); err != nil {
		return nil, err
	}
	ad, bd, err := creators(m, n, i)
	if err != nil {
		return nil, err
	}
	nb := m.NBosons
	norm := math.Sqrt(factorial(k) * factorial(nb-k))
	return ad.Add(bd).Pow(k).Mul(ad.Sub(bd).Pow(nb - k)).ScaleReal(1 / norm), nil
}

// FockX is the normalised k-th Sx eigenstate of qubit i.
func FockX(m core.Model, n, i, k int) (*qobj.Qobj, error) {
	c, err := FockXConstructor(m, n, i, k)
	if err != nil {
		return nil, err
	}
	v, err := create(c, m, n)
	if err != nil {
		return nil, err
	}
	return v.Unit(), nil
}

// EPRPlusConstructor creates sum_k |k>_0 |k>_1 / sqrt(N+1) in the Sz
// Fock basis of a qubit pair.
func EPRPlusConstructor(m core.Model, n int) (*qobj.Qobj, error) {
	if err := core.RequireQubitPair(n); err != nil {
		return nil, err
	}
	terms := make([]*qobj.Qobj, 0, m.NBosons+1)
	for k := 0; k <= m.NBosons; k++ {
		f0, err := FockZConstructor(m, n, 0, k)
		if err != nil {
			return nil, err
		}
		f1, err := FockZConstructor(m, n, 1, k)
		if err != nil {
			return nil, err
		}
		terms = append(terms, f0.Mul(f1))
	}
	return qobj.Sum(terms...).ScaleReal(1 / math.Sqrt(float64(m.NBosons+1))), nil
}

// EPRPlus is the maximally entangled state of a qubit pair.
func EPRPlus(m core.Model, n int) (*qobj.Qobj, error) {
	c, err := EPRPlusConstructor(m, n)
	if err != nil {
		return nil, err
	}
	return create(c, m, n)
}
