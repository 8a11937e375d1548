package core

import (
	"math"

	"go.uber.org/zap"
)

const (
	DefaultSingleCouplingStrength  = 1.35e6
	DefaultReferenceTransitionFreq = 1e7
	DefaultDetuningParam           = 1.0

	communicationLineLevels = 2
)

// Model holds the physical parameters of a register of BEC qubits.
//
// A Model is a value: the With* methods return modified copies and
// nothing in this module mutates a Model after construction.
type Model struct {
	NBosons int
	// CouplingStrength is the atom-cavity mode coupling G.
	CouplingStrength float64
	// TransitionAmpl is the off-resonant laser coupling g.
	TransitionAmpl float64
	// TransitionFreq is omega0.
	TransitionFreq float64
	// ResonanceFreq is the cavity photon resonance omega.
	ResonanceFreq float64
	// Phase is picked up by the field propagating through the fiber.
	Phase             float64
	ExcitationLevel   bool
	CommunicationLine bool

	// Diagnostics receives advisory notices and coefficient traces.
	// nil means the global zap logger.
	Diagnostics Diagnostics
}

// NewModelFromReference builds the parameter set of Sec. 4 "Estimated gate
// times" of Pyrkov and Byrnes (2013), with the cavity numbers of Colombe
// et al. (2007) as the usual inputs.
func NewModelFromReference(nBosons int, phase, singleCouplingStrength, transitionFreq, detuningParam float64, excitationLevel bool) Model {
	n := float64(nBosons)
	coupling := math.Sqrt(n) * singleCouplingStrength
	delta := detuningParam * singleCouplingStrength * n
	return Model{
		NBosons:          nBosons,
		CouplingStrength: coupling,
		TransitionAmpl:   coupling,
		TransitionFreq:   transitionFreq,
		ResonanceFreq:    transitionFreq - delta,
		Phase:            phase,
		ExcitationLevel:  excitationLevel,
	}
}

// NewDefaultModel uses illustrative constants with a detuning of 10.
func NewDefaultModel(nBosons int, phase float64, excitationLevel bool) Model {
	const (
		couplingStrength = 1
		delta            = 10
		transitionFreq   = 11
	)
	return Model{
		NBosons:          nBosons,
		CouplingStrength: couplingStrength,
		TransitionAmpl:   couplingStrength,
		TransitionFreq:   transitionFreq,
		ResonanceFreq:    transitionFreq - delta,
		Phase:            phase,
		ExcitationLevel:  excitationLevel,
	}
}

func (m Model) WithCommunicationLine(on bool) Model {
	m.CommunicationLine = on
	return m
}

func (m Model) WithExcitationLevel(on bool) Model {
	m.ExcitationLevel = on
	return m
}

func (m Model) WithPhase(phase float64) Model {
	m.Phase = phase
	return m
}

func (m Model) WithDiagnostics(d Diagnostics) Model {
	m.Diagnostics = d
	return m
}

// G is the atom-cavity mode coupling.
func (m Model) G() float64 { return m.CouplingStrength }

// SmallG is the laser coupling g.
func (m Model) SmallG() float64 { return m.TransitionAmpl }

func (m Model) Omega0() float64 { return m.TransitionFreq }

// OmegaR is the cavity resonance omega (not the effective coupling).
func (m Model) OmegaR() float64 { return m.ResonanceFreq }

func (m Model) Phi() float64 { return m.Phase }

// Delta is the detuning between the transition to the excited state and
// the cavity photon resonance.
func (m Model) Delta() float64 {
	return m.TransitionFreq - m.ResonanceFreq
}

// DeltaC is the detuning between the cavity and the b <-> e transition.
func (m Model) DeltaC() float64 {
	return m.Delta()
}

// DeltaL is the detuning between the laser and the b <-> e transition.
// It always equals Delta; every call reports that assumption.
func (m Model) DeltaL() float64 {
	m.diagnostics().Notice("delta_l = delta_c = delta is assumed",
		zap.Float64("delta", m.Delta()))
	return m.Delta()
}

// EffectiveCoupling is Omega = G^2 g^2 / (2 delta^3).
func (m Model) EffectiveCoupling() float64 {
	d := m.Delta()
	return m.CouplingStrength * m.CouplingStrength * m.TransitionAmpl * m.TransitionAmpl / 2 / (d * d * d)
}

// Sublevels is the number of internal levels per qubit: a, b and
// optionally e.
func (m Model) Sublevels() int {
	if m.ExcitationLevel {
		return 3
	}
	return 2
}

func (m Model) CommunicationLineLevels() int {
	return communicationLineLevels
}

// LocalDim is the dimension of a single sublevel mode.
func (m Model) LocalDim() int {
	return m.NBosons + 1
}

func (m Model) diagnostics() Diagnostics {
	if m.Diagnostics == nil {
		return NewZapDiagnostics(nil)
	}
	return m.Diagnostics
}

// Trace forwards an intermediate result to the model's diagnostics sink.
func (m Model) Trace(msg string, fields ...zap.Field) {
	m.diagnostics().Trace(msg, fields...)
}
