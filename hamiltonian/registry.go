package hamiltonian

import (
	"sort"

	"github.com/go-faster/errors"
	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/qobj"
)

// ErrUnknownName is returned by Lookup for names missing from Registry.
var ErrUnknownName = errors.New("unknown hamiltonian")

// Registry maps the names used on the command line to the catalog.
var Registry = map[string]Func{
	"eff_total":    EffTotal,
	"eff_eq9":      EffEq9,
	"eff_edition1": EffEdition1,
	"eff_edition3": EffEdition3,
	"eff":          eff(DefaultEffTerms()),
	"eff_zz_only":  eff(EffTerms{}),
	"adiabatic":    Adiabatic,
	"zz":           ZZ,
	"int_approx":   InteractionApprox,
	"interaction":  Interaction,
	"coupling":     Coupling,
	"laser_field":  LaserField,
}

func eff(terms EffTerms) Func {
	return func(m core.Model, n int) (*qobj.Qobj, error) {
		return Eff(m, n, terms)
	}
}

// Names lists the registered names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the registered Hamiltonian called name.
func Lookup(name string) (Func, error) {
	f, ok := Registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownName, "%q", name)
	}
	return f, nil
}
