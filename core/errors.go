package core

import "github.com/go-faster/errors"

// Modelling precondition violations. They are returned wrapped with
// context; match them with errors.Is.
var (
	ErrQubitIndexRequired     = errors.New("qubit index required for n>1")
	ErrQubitIndexOutOfRange   = errors.New("qubit index out of range")
	ErrUnsupportedTopology    = errors.New("communication line supports only 1-2 qubits")
	ErrUnsupportedChannel     = errors.New("channel is not present in model")
	ErrUnsupportedQubitCount  = errors.New("unsupported number of qubits")
	ErrFixedParameterMismatch = errors.New("parameter differs from the hardcoded value")
)

// RequireQubitPair fails with ErrUnsupportedQubitCount unless n == 2.
func RequireQubitPair(n int) error {
	if n != 2 {
		return errors.Wrapf(ErrUnsupportedQubitCount, "only qubit pair, got n=%d", n)
	}
	return nil
}
