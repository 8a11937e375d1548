package core

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/mohae/deepcopy"
	"github.com/oqtopus-team/bec-qubits/common"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	PresetDefault   = "default"
	PresetReference = "reference"
	PresetCustom    = "custom"
)

// ModelSetting is the [model] table of the setting file.
type ModelSetting struct {
	Preset            string  `toml:"preset"`
	NBosons           int     `toml:"n_bosons"`
	Phase             float64 `toml:"phase"`
	ExcitationLevel   bool    `toml:"excitation_level"`
	CommunicationLine bool    `toml:"communication_line"`

	// reference preset
	SingleCouplingStrength float64 `toml:"single_coupling_strength"`
	DetuningParam          float64 `toml:"detuning_param"`

	// custom preset; TransitionFreq is shared with the reference preset
	CouplingStrength float64 `toml:"coupling_strength"`
	TransitionAmpl   float64 `toml:"transition_ampl"`
	TransitionFreq   float64 `toml:"transition_freq"`
	ResonanceFreq    float64 `toml:"resonance_freq"`
}

// TrajectorySetting is the [trajectory] table of the setting file.
type TrajectorySetting struct {
	TEnd  float64 `toml:"t_end"`
	Steps int     `toml:"steps"`
}

type Setting struct {
	Model      ModelSetting      `toml:"model"`
	Trajectory TrajectorySetting `toml:"trajectory"`
}

func NewModelSetting() ModelSetting {
	return ModelSetting{
		Preset:                 PresetDefault,
		NBosons:                1,
		SingleCouplingStrength: DefaultSingleCouplingStrength,
		DetuningParam:          DefaultDetuningParam,
		TransitionFreq:         DefaultReferenceTransitionFreq,
	}
}

func NewTrajectorySetting() TrajectorySetting {
	return TrajectorySetting{
		TEnd:  1,
		Steps: 10,
	}
}

func NewSetting() *Setting {
	return &Setting{
		Model:      NewModelSetting(),
		Trajectory: NewTrajectorySetting(),
	}
}

// ParseSettingFromPath reads a TOML setting file on top of the defaults.
func ParseSettingFromPath(settingPath string) (*Setting, error) {
	tomlString, err := common.ReadSettingsFile(settingPath)
	if err != nil {
		zap.L().Error(fmt.Sprintf("failed to read setting file/reason:%s", err))
		return nil, err
	}
	return ParseSetting(tomlString)
}

func ParseSetting(tomlString string) (*Setting, error) {
	s := NewSetting()
	if _, err := toml.Decode(tomlString, s); err != nil {
		zap.L().Error(fmt.Sprintf("failed to parse setting/reason:%s", err))
		return nil, err
	}
	if err := s.Validate(); err != nil {
		zap.L().Error(fmt.Sprintf("invalid setting/reason:%s", err))
		return nil, err
	}
	zap.L().Debug(fmt.Sprintf("Setting is %+v", *s))
	return s, nil
}

// Clone returns an independent copy, so command line overrides never
// touch the parsed setting.
func (s *Setting) Clone() *Setting {
	return deepcopy.Copy(s).(*Setting)
}

// Validate reports every problem of the setting at once.
func (s *Setting) Validate() error {
	var err error
	m := s.Model
	if m.NBosons < 0 {
		err = multierr.Append(err, fmt.Errorf("n_bosons must not be negative: %d", m.NBosons))
	}
	switch m.Preset {
	case PresetDefault, PresetCustom:
	case PresetReference:
		if m.NBosons == 0 {
			err = multierr.Append(err, fmt.Errorf("reference preset needs n_bosons > 0"))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("unknown preset: %s", m.Preset))
	}
	if s.Trajectory.Steps < 1 {
		err = multierr.Append(err, fmt.Errorf("trajectory steps must be positive: %d", s.Trajectory.Steps))
	}
	if s.Trajectory.TEnd < 0 {
		err = multierr.Append(err, fmt.Errorf("trajectory t_end must not be negative: %g", s.Trajectory.TEnd))
	}
	return err
}

// BuildModel turns the [model] table into a Model.
func (m ModelSetting) BuildModel() Model {
	var model Model
	switch m.Preset {
	case PresetReference:
		model = NewModelFromReference(m.NBosons, m.Phase, m.SingleCouplingStrength, m.TransitionFreq, m.DetuningParam, m.ExcitationLevel)
	case PresetCustom:
		model = Model{
			NBosons:          m.NBosons,
			CouplingStrength: m.CouplingStrength,
			TransitionAmpl:   m.TransitionAmpl,
			TransitionFreq:   m.TransitionFreq,
			ResonanceFreq:    m.ResonanceFreq,
			Phase:            m.Phase,
			ExcitationLevel:  m.ExcitationLevel,
		}
	default:
		model = NewDefaultModel(m.NBosons, m.Phase, m.ExcitationLevel)
	}
	return model.WithCommunicationLine(m.CommunicationLine)
}
