// Package hilbert places single-mode operators on the composite space of
// a BEC qubit register.
//
// The factor order for n qubits is
//
//	[qubit 0 sublevels] [line] [qubit 1 sublevels] [line] [qubit 2 sublevels] ...
//
// where the line factor only exists when the model has a communication
// line and is never placed before qubit 0.
package hilbert

import (
	"github.com/go-faster/errors"
	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/qobj"
)

// NoQubit marks an unset qubit index. Any negative index is treated the same.
const NoQubit = -1

// Constructor makes a d-dimensional single-mode operator, e.g. qobj.Destroy.
type Constructor func(d int) *qobj.Qobj

// Layout returns the ordered factor dimensions of an n qubit register.
func Layout(m core.Model, n int) []int {
	dims := make([]int, 0, n*m.Sublevels()+n)
	for q := 0; q < n; q++ {
		if q > 0 && m.CommunicationLine {
			dims = append(dims, m.CommunicationLineLevels())
		}
		for s := 0; s < m.Sublevels(); s++ {
			dims = append(dims, m.LocalDim())
		}
	}
	return dims
}

// Dim is the dimension of the composite space of n qubits.
func Dim(m core.Model, n int) int {
	d := 1
	for _, f := range Layout(m, n) {
		d *= f
	}
	return d
}

// Build embeds ctor(d) as the kind factor of qubit k in the space of n
// qubits, padding every other factor with identities.
func Build(ctor Constructor, m core.Model, n, k int, kind core.Kind) (*qobj.Qobj, error) {
	if n < 1 {
		return nil, errors.Wrapf(core.ErrQubitIndexOutOfRange, "n=%d has no qubits", n)
	}
	if k < 0 {
		if n > 1 {
			return nil, errors.Wrapf(core.ErrQubitIndexRequired, "n=%d", n)
		}
		k = 0
	}
	if k > n-1 {
		return nil, errors.Wrapf(core.ErrQubitIndexOutOfRange,
			"%d > %d, counting starts with zero", k, n-1)
	}
	if m.CommunicationLine && (k > 1 || n > 2) {
		return nil, errors.Wrapf(core.ErrUnsupportedTopology, "n=%d, k=%d", n, k)
	}
	switch kind {
	case core.ChannelE:
		if !m.ExcitationLevel {
			return nil, errors.Wrap(core.ErrUnsupportedChannel, "no excitation state in model")
		}
	case core.CommLine:
		if !m.CommunicationLine {
			return nil, errors.Wrap(core.ErrUnsupportedChannel, "no communication line in model")
		}
		if n < 2 {
			return nil, errors.Wrapf(core.ErrUnsupportedTopology,
				"communication line sits between qubits, n=%d", n)
		}
	case core.ChannelA, core.ChannelB:
	default:
		return nil, errors.Wrapf(core.ErrUnsupportedChannel, "unknown kind %d", int(kind))
	}

	qubits := make([][]*qobj.Qobj, n)
	for q := range qubits {
		qubits[q] = identities(m.LocalDim(), m.Sublevels())
	}
	var line []*qobj.Qobj
	if m.CommunicationLine {
		line = []*qobj.Qobj{qobj.Identity(m.CommunicationLineLevels())}
	}
	if i, ok := kind.SublevelIndex(); ok {
		qubits[k][i] = ctor(m.LocalDim())
	} else {
		line = []*qobj.Qobj{ctor(m.CommunicationLineLevels())}
	}

	return qobj.Tensor(concat(qubits, line)...), nil
}

func identities(d, count int) []*qobj.Qobj {
	ids := make([]*qobj.Qobj, count)
	for i := range ids {
		ids[i] = qobj.Identity(d)
	}
	return ids
}

// concat lays the per-qubit blocks out, splicing line in front of every
// block after the first.
func concat(qubits [][]*qobj.Qobj, line []*qobj.Qobj) []*qobj.Qobj {
	out := append([]*qobj.Qobj(nil), qubits[0]...)
	for _, q := range qubits[1:] {
		out = append(out, line...)
		out = append(out, q...)
	}
	return out
}

// Vacuum is the ket with every factor of the n qubit register empty.
func Vacuum(m core.Model, n int) (*qobj.Qobj, error) {
	if n < 1 {
		return nil, errors.Wrapf(core.ErrQubitIndexOutOfRange, "n=%d has no qubits", n)
	}
	dims := Layout(m, n)
	factors := make([]*qobj.Qobj, len(dims))
	for i, d := range dims {
		factors[i] = qobj.Fock(d, 0)
	}
	return qobj.Tensor(factors...), nil
}
