package hamiltonian

import (
	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/operator"
	"github.com/oqtopus-team/bec-qubits/qobj"
)

// lookup fetches catalog operators for one Hamiltonian and keeps the first
// error. Once err is set every further op call returns nil, so callers
// gather their operators first and check err before any arithmetic.
type lookup struct {
	m   core.Model
	n   int
	err error
}

func newLookup(m core.Model, n int) *lookup {
	return &lookup{m: m, n: n}
}

func (l *lookup) op(f operator.Func, k int) *qobj.Qobj {
	if l.err != nil {
		return nil
	}
	q, err := f(l.m, l.n, k)
	if err != nil {
		l.err = err
		return nil
	}
	return q
}

// pair returns f for qubits 0 and 1.
func (l *lookup) pair(f operator.Func) (*qobj.Qobj, *qobj.Qobj) {
	return l.op(f, 0), l.op(f, 1)
}

// line is the annihilation operator of the single communication line.
func (l *lookup) line() *qobj.Qobj {
	return l.op(operator.Line, 0)
}
