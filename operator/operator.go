// Package operator is the catalog of elementary operators of a BEC qubit
// register: the annihilation operators of every channel and the
// effective spin observables built from them.
//
// Every function takes the number of qubits n and the target qubit k;
// pass hilbert.NoQubit for k when n == 1.
package operator

import (
	"github.com/go-faster/errors"
	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/hilbert"
	"github.com/oqtopus-team/bec-qubits/qobj"
)

func destroy(m core.Model, n, k int, kind core.Kind) (*qobj.Qobj, error) {
	return hilbert.Build(qobj.Destroy, m, n, k, kind)
}

// Lower annihilates a boson in sublevel a of qubit k.
func Lower(m core.Model, n, k int) (*qobj.Qobj, error) {
	return destroy(m, n, k, core.ChannelA)
}

// Upper annihilates a boson in sublevel b of qubit k.
func Upper(m core.Model, n, k int) (*qobj.Qobj, error) {
	return destroy(m, n, k, core.ChannelB)
}

// Excited annihilates a boson in sublevel e of qubit k.
func Excited(m core.Model, n, k int) (*qobj.Qobj, error) {
	if !m.ExcitationLevel {
		return nil, errors.Wrap(core.ErrUnsupportedChannel, "no excitation state in model")
	}
	return destroy(m, n, k, core.ChannelE)
}

// Line annihilates a photon of the communication line. Only a single line
// exists, so k must be unset or 0.
func Line(m core.Model, n, k int) (*qobj.Qobj, error) {
	if k > 0 {
		return nil, errors.Wrapf(core.ErrUnsupportedTopology, "only for single communication line, k=%d", k)
	}
	if !m.CommunicationLine {
		return nil, errors.Wrap(core.ErrUnsupportedChannel, "no communication line in model")
	}
	return destroy(m, n, k, core.CommLine)
}

func number(f Func, m core.Model, n, k int) (*qobj.Qobj, error) {
	x, err := f(m, n, k)
	if err != nil {
		return nil, err
	}
	return x.Dag().Mul(x), nil
}

// Number is a†a, the occupation of sublevel a.
func Number(m core.Model, n, k int) (*qobj.Qobj, error) {
	return number(Lower, m, n, k)
}

// UpperNumber is b†b.
func UpperNumber(m core.Model, n, k int) (*qobj.Qobj, error) {
	return number(Upper, m, n, k)
}

// ExcitedNumber is e†e.
func ExcitedNumber(m core.Model, n, k int) (*qobj.Qobj, error) {
	return number(Excited, m, n, k)
}

// LineNumber is c†c.
func LineNumber(m core.Model, n, k int) (*qobj.Qobj, error) {
	return number(Line, m, n, k)
}

// TotalNumber is a†a + b†b, conserved by every spin observable of qubit k.
func TotalNumber(m core.Model, n, k int) (*qobj.Qobj, error) {
	a, b, err := pair(m, n, k)
	if err != nil {
		return nil, err
	}
	return a.Dag().Mul(a).Add(b.Dag().Mul(b)), nil
}

func pair(m core.Model, n, k int) (a, b *qobj.Qobj, err error) {
	if a, err = Lower(m, n, k); err != nil {
		return nil, nil, err
	}
	if b, err = Upper(m, n, k); err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

// Sz = a†a - b†b.
func Sz(m core.Model, n, k int) (*qobj.Qobj, error) {
	a, b, err := pair(m, n, k)
	if err != nil {
		return nil, err
	}
	return a.Dag().Mul(a).Sub(b.Dag().Mul(b)), nil
}

// Sx = a†b + b†a.
func Sx(m core.Model, n, k int) (*qobj.Qobj, error) {
	a, b, err := pair(m, n, k)
	if err != nil {
		return nil, err
	}
	return a.Dag().Mul(b).Add(b.Dag().Mul(a)), nil
}

// Sy = i(b†a - a†b).
func Sy(m core.Model, n, k int) (*qobj.Qobj, error) {
	a, b, err := pair(m, n, k)
	if err != nil {
		return nil, err
	}
	return b.Dag().Mul(a).Sub(a.Dag().Mul(b)).Scale(1i), nil
}

// Func is the signature shared by the catalog.
type Func func(m core.Model, n, k int) (*qobj.Qobj, error)

// ByKind returns the annihilation operator of a channel.
func ByKind(kind core.Kind) (Func, error) {
	switch kind {
	case core.ChannelA:
		return Lower, nil
	case core.ChannelB:
		return Upper, nil
	case core.ChannelE:
		return Excited, nil
	case core.CommLine:
		return Line, nil
	default:
		return nil, errors.Wrapf(core.ErrUnsupportedChannel, "unknown kind %d", int(kind))
	}
}
