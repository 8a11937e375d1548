package main

import (
	"math/cmplx"
	"time"

	"github.com/go-faster/jx"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/tidwall/pretty"
	"go.uber.org/zap/zapcore"

	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/qobj"
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

type modelReport struct {
	NBosons           int     `json:"n_bosons"`
	G                 float64 `json:"coupling_strength"`
	SmallG            float64 `json:"transition_ampl"`
	Omega0            float64 `json:"transition_freq"`
	Omega             float64 `json:"resonance_freq"`
	Phase             float64 `json:"phase"`
	Delta             float64 `json:"delta"`
	EffectiveCoupling float64 `json:"effective_coupling"`
	ExcitationLevel   bool    `json:"excitation_level"`
	CommunicationLine bool    `json:"communication_line"`
}

func newModelReport(m core.Model) modelReport {
	return modelReport{
		NBosons:           m.NBosons,
		G:                 m.G(),
		SmallG:            m.SmallG(),
		Omega0:            m.Omega0(),
		Omega:             m.OmegaR(),
		Phase:             m.Phi(),
		Delta:             m.Delta(),
		EffectiveCoupling: m.EffectiveCoupling(),
		ExcitationLevel:   m.ExcitationLevel,
		CommunicationLine: m.CommunicationLine,
	}
}

type stepReport struct {
	Step int     `json:"step"`
	T    float64 `json:"t"`
	// Norm is the ket norm, or the trace for a density matrix.
	Norm float64 `json:"norm"`
	// Fidelity with the t = 0 point: |<psi0|psi>|^2, or Tr(rho0 rho).
	Fidelity float64 `json:"fidelity"`
}

func newStepReport(i int, t float64, start, q *qobj.Qobj) stepReport {
	st := stepReport{Step: i, T: t}
	if q.IsKet() {
		st.Norm = q.Norm()
		o := start.Overlap(q)
		st.Fidelity = real(o * cmplx.Conj(o))
		return st
	}
	st.Norm = real(q.Tr())
	st.Fidelity = real(start.Mul(q).Tr())
	return st
}

// line encodes s as a single JSON line tagged with runID.
func (s stepReport) line(runID string) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("run_id")
	e.Str(runID)
	e.FieldStart("step")
	e.Int(s.Step)
	e.FieldStart("t")
	e.Float64(s.T)
	e.FieldStart("norm")
	e.Float64(s.Norm)
	e.FieldStart("fidelity")
	e.Float64(s.Fidelity)
	e.ObjEnd()
	return append(e.Bytes(), '\n')
}

func (s stepReport) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("step", s.Step)
	enc.AddFloat64("t", s.T)
	enc.AddFloat64("norm", s.Norm)
	enc.AddFloat64("fidelity", s.Fidelity)
	return nil
}

type report struct {
	RunID     string          `json:"run_id"`
	Timestamp strfmt.DateTime `json:"timestamp"`
	Version   string          `json:"version"`
	Command   string          `json:"command"`
	Name      string          `json:"name"`
	Model     modelReport     `json:"model"`
	Summary   *qobj.Summary   `json:"summary,omitempty"`
	Steps     []stepReport    `json:"steps,omitempty"`
}

func newReport(command, name string, m core.Model, q *qobj.Qobj) *report {
	r := &report{
		RunID:     uuid.New().String(),
		Timestamp: strfmt.DateTime(time.Now().UTC()),
		Version:   core.Version,
		Command:   command,
		Name:      name,
		Model:     newModelReport(m),
	}
	if q != nil {
		r.Summary = q.Summary()
	}
	return r
}

func (r *report) render() (string, error) {
	b, err := jsonIter.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(pretty.Pretty(b)), nil
}
