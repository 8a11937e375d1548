package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/massn/envordot"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/log"
)

var versionByBuildFlag string
var parser *flags.Parser
var app *Becq

func init() {
	if err := envordot.Load(false, ".env"); err != nil {
		fmt.Printf("Not found \".env\" file. Use only environment variables. Reason:%s\n", err.Error())
	} else {
		fmt.Println("Found \".env\" file. Environment variables are preferred, " +
			"but non-conflicting variables are those in the \".env\" file.")
	}
	app = &Becq{Conf: &core.Conf{}}
	setParser(app)
}

type Becq struct {
	Conf *core.Conf
}

func setParser(b *Becq) {
	parser = flags.NewParser(b, flags.Default)
	parser.ShortDescription = "becq"
	parser.LongDescription = "builds operators, Hamiltonians and states of BEC qubits coupled through a cavity mode."
	parser.AddCommand("operator", "print an elementary operator", "print the summary of a channel annihilation operator", &operatorCmd{app: b})
	parser.AddCommand("hamiltonian", "print a Hamiltonian", "print the summary of a catalog Hamiltonian", &hamiltonianCmd{app: b})
	parser.AddCommand("state", "print a state", "print the summary of a catalog state or trajectory point", &stateCmd{app: b})
	parser.AddCommand("trajectory", "sweep a trajectory", "evaluate a closed-form trajectory over [0, t_end]", &trajectoryCmd{app: b})
	parser.AddCommand("list", "list catalog names", "list the names accepted by --name", &listCmd{})
}

func parse() {
	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		if code == 1 {
			fmt.Printf("failed to parse flags, because %s\n", err)
		}
		os.Exit(code)
	}
}

// provideDIContainer wires the setting file, the model built from it and
// the diagnostics sink.
func (b *Becq) provideDIContainer() (*dig.Container, error) {
	c := dig.New()
	if err := c.Provide(func() (*core.Setting, error) {
		s, err := core.ParseSettingFromPath(b.Conf.SettingPath)
		if err != nil {
			return nil, err
		}
		return s.Clone(), nil
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(func() core.Diagnostics {
		if b.Conf.Quiet {
			return core.NopDiagnostics()
		}
		return core.NewZapDiagnostics(zap.L())
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(func(s *core.Setting, d core.Diagnostics) core.Model {
		return s.Model.BuildModel().WithDiagnostics(d)
	}); err != nil {
		return nil, err
	}
	return c, nil
}

// setup installs the logger, records the version and returns the
// container. The caller syncs the logger.
func (b *Becq) setup() (*zap.Logger, *dig.Container, error) {
	logger, err := log.Setup(b.Conf)
	if err != nil {
		fmt.Printf("Failed to setup logger. Reason:%s\n", err)
		return nil, nil, err
	}
	core.SetVersion(b.Conf, versionByBuildFlag)
	core.SetInfo(b.Conf)
	log.LogVersion()

	c, err := b.provideDIContainer()
	if err != nil {
		zap.L().Error("failed to set up DI container", zap.Error(err))
		return logger, nil, err
	}
	return logger, c, nil
}

func main() {
	parse()
}
