package state

import (
	"math"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/qobj"
)

// The focked states live in the reduced space of one (N+1) dimensional
// factor per qubit, indexed by the occupation of sublevel a. Sublevel b
// holds the remaining N - k bosons.

func ipow(z complex128, k int) complex128 {
	out := complex(1, 0)
	for ; k > 0; k-- {
		out *= z
	}
	return out
}

// CoherentFocked is sum_k sqrt(C(N,k)) alpha^k beta^(N-k) |k>.
func CoherentFocked(m core.Model, alpha, beta complex128) *qobj.Qobj {
	nb, d := m.NBosons, m.LocalDim()
	amps := make([]complex128, d)
	for k := range amps {
		amps[k] = complex(math.Sqrt(binomial(nb, k)), 0) * ipow(alpha, k) * ipow(beta, nb-k)
	}
	return qobj.FromKetData([]int{d}, amps)
}

// FockFocked is tensor(I x i, |k>, I x (n-i-1)). Applied to a state of the
// other n-1 qubits it inserts qubit i in the Fock state |k>.
func FockFocked(m core.Model, n, i, k int) (*qobj.Qobj, error) {
	if i < 0 || i > n-1 {
		return nil, errors.Wrapf(core.ErrQubitIndexOutOfRange, "%d not in 0..%d", i, n-1)
	}
	if err := checkOccupation(m, k); err != nil {
		return nil, err
	}
	d := m.LocalDim()
	factors := make([]*qobj.Qobj, 0, n)
	for q := 0; q < n; q++ {
		if q == i {
			factors = append(factors, qobj.Fock(d, k))
			continue
		}
		factors = append(factors, qobj.Identity(d))
	}
	return qobj.Tensor(factors...), nil
}

// ZZTheoreticalFocked is ZZTheoretical in the focked space of the pair.
func ZZTheoreticalFocked(m core.Model, t float64) *qobj.Qobj {
	nb, d := m.NBosons, m.LocalDim()
	terms := make([]*qobj.Qobj, 0, nb+1)
	for k := 0; k <= nb; k++ {
		alpha, beta := zzAmplitudes(m, k, t)
		v := qobj.Tensor(CoherentFocked(m, alpha, beta), qobj.Fock(d, k))
		terms = append(terms, v.ScaleReal(math.Sqrt(binomial(nb, k))))
	}
	return qobj.Sum(terms...).ScaleReal(1 / math.Sqrt(pow2(nb)))
}

// ZZReducedTheoreticalFocked is the density matrix of qubit 0 of
// ZZTheoreticalFocked, qubit 1 traced out.
func ZZReducedTheoreticalFocked(m core.Model, t float64) *qobj.Qobj {
	nb := m.NBosons
	terms := make([]*qobj.Qobj, 0, nb+1)
	for k := 0; k <= nb; k++ {
		alpha, beta := zzAmplitudes(m, k, t)
		v := CoherentFocked(m, alpha, beta)
		terms = append(terms, v.Mul(v.Dag()).ScaleReal(binomial(nb, k)))
	}
	return qobj.Sum(terms...).ScaleReal(1 / pow2(nb))
}

// NumberExactFocked is the focked state of a pair at time t under
// -Na0 Na1: qubit 1 rotates by a phase proportional to the occupation
// of qubit 0.
func NumberExactFocked(m core.Model, t float64) *qobj.Qobj {
	nb, d := m.NBosons, m.LocalDim()
	terms := make([]*qobj.Qobj, 0, nb+1)
	for k := 0; k <= nb; k++ {
		v := qobj.Tensor(qobj.Fock(d, k), CoherentFocked(m, numberAmplitude(k, t), DefaultAmplitude))
		terms = append(terms, v.ScaleReal(math.Sqrt(binomial(nb, k))))
	}
	return qobj.Sum(terms...).ScaleReal(1 / math.Sqrt(pow2(nb)))
}
