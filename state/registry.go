package state

import (
	"sort"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/qobj"
)

// ErrUnknownName is returned for names missing from a registry.
var ErrUnknownName = errors.New("unknown state")

// Static builds a time independent state of n qubits.
type Static func(m core.Model, n int) (*qobj.Qobj, error)

// Trajectory builds a closed-form state at time t.
type Trajectory func(m core.Model, t float64) (*qobj.Qobj, error)

// States maps command line names to time independent states.
var States = map[string]Static{
	"vacuum":   Vacuum,
	"coherent": CoherentProduct,
	"epr_plus": EPRPlus,
}

// Trajectories maps command line names to closed-form trajectories.
var Trajectories = map[string]Trajectory{
	"zz_theoretical":                ZZTheoretical,
	"zz_theoretical_focked":         focked(ZZTheoreticalFocked),
	"zz_reduced_theoretical_focked": focked(ZZReducedTheoreticalFocked),
	"number_exact_focked":           focked(NumberExactFocked),
	"nn_exact":                      NNExact,
}

func focked(f func(core.Model, float64) *qobj.Qobj) Trajectory {
	return func(m core.Model, t float64) (*qobj.Qobj, error) {
		return f(m, t), nil
	}
}

func sortedKeys[V any](reg map[string]V) []string {
	names := make([]string, 0, len(reg))
	for name := range reg {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StateNames lists the keys of States in sorted order.
func StateNames() []string {
	return sortedKeys(States)
}

// TrajectoryNames lists the keys of Trajectories in sorted order.
func TrajectoryNames() []string {
	return sortedKeys(Trajectories)
}

func LookupState(name string) (Static, error) {
	f, ok := States[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownName, "%q", name)
	}
	return f, nil
}

func LookupTrajectory(name string) (Trajectory, error) {
	f, ok := Trajectories[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownName, "trajectory %q", name)
	}
	return f, nil
}
