package state

import (
	"math"
	"math/cmplx"

	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/qobj"
)

// zzAmplitudes are the coherent amplitudes of qubit 0 when qubit 1 holds k
// bosons in a: alpha_k(t) = exp(i (N-2k) Omega t) / sqrt(2), beta_k = conj(alpha_k).
func zzAmplitudes(m core.Model, k int, t float64) (alpha, beta complex128) {
	phase := float64(m.NBosons-2*k) * m.EffectiveCoupling() * t
	alpha = cmplx.Exp(complex(0, phase)) / math.Sqrt2
	return alpha, cmplx.Conj(alpha)
}

// numberAmplitude is exp(i k t) / sqrt(2).
func numberAmplitude(k int, t float64) complex128 {
	return cmplx.Exp(complex(0, float64(k)*t)) / math.Sqrt2
}

func pow2(n int) float64 {
	return math.Ldexp(1, n)
}

// ZZTheoretical is the closed-form state of a qubit pair at time t under
// hamiltonian.ZZ, starting from both qubits in the equal superposition
// coherent state. See [1] of package hamiltonian.
func ZZTheoretical(m core.Model, t float64) (*qobj.Qobj, error) {
	nb := m.NBosons
	vac, err := Vacuum(m, 2)
	if err != nil {
		return nil, err
	}
	terms := make([]*qobj.Qobj, 0, nb+1)
	for k := 0; k <= nb; k++ {
		alpha, beta := zzAmplitudes(m, k, t)
		coh, err := CoherentConstructor(m, 2, 0, alpha, beta)
		if err != nil {
			return nil, err
		}
		fz, err := FockZConstructor(m, 2, 1, k)
		if err != nil {
			return nil, err
		}
		terms = append(terms, coh.Mul(fz).Mul(vac).ScaleReal(math.Sqrt(binomial(nb, k))))
	}
	return qobj.Sum(terms...).ScaleReal(1 / math.Sqrt(pow2(nb))), nil
}

// NNExact is the state of a qubit pair at time t under -Na0 Na1, starting
// from the equal superposition coherent state on both qubits.
func NNExact(m core.Model, t float64) (*qobj.Qobj, error) {
	nb := m.NBosons
	vac, err := Vacuum(m, 2)
	if err != nil {
		return nil, err
	}
	terms := make([]*qobj.Qobj, 0, nb+1)
	for k := 0; k <= nb; k++ {
		fz, err := FockZConstructor(m, 2, 0, k)
		if err != nil {
			return nil, err
		}
		coh, err := CoherentConstructor(m, 2, 1, numberAmplitude(k, t), DefaultAmplitude)
		if err != nil {
			return nil, err
		}
		terms = append(terms, fz.Mul(coh).Mul(vac).ScaleReal(math.Sqrt(binomial(nb, k))))
	}
	return qobj.Sum(terms...).ScaleReal(1 / math.Sqrt(pow2(nb))), nil
}
