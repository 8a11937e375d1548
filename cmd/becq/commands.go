package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/oklog/run"
	"go.uber.org/zap"

	"github.com/oqtopus-team/bec-qubits/core"
	"github.com/oqtopus-team/bec-qubits/hamiltonian"
	"github.com/oqtopus-team/bec-qubits/log"
	"github.com/oqtopus-team/bec-qubits/operator"
	"github.com/oqtopus-team/bec-qubits/qobj"
	"github.com/oqtopus-team/bec-qubits/state"
)

// withModel runs f with the model from the container and prints the
// report it returns.
func (b *Becq) withModel(f func(m core.Model, s *core.Setting) (*report, error)) error {
	logger, c, err := b.setup()
	if logger != nil {
		defer logger.Sync()
	}
	if err != nil {
		return err
	}
	return c.Invoke(func(m core.Model, s *core.Setting) error {
		r, err := f(m, s)
		if err != nil {
			zap.L().Error("command failed", zap.Error(err))
			return err
		}
		out, err := r.render()
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stdout, out)
		return nil
	})
}

type operatorCmd struct {
	Kind   string `long:"kind" description:"channel" default:"a" choice:"a" choice:"b" choice:"e" choice:"c"`
	N      int    `long:"n" description:"number of qubits" default:"1"`
	K      int    `long:"k" description:"qubit index, -1 for unset" default:"-1"`
	Number bool   `long:"number" description:"print the number operator of the channel instead"`

	app *Becq
}

func (c *operatorCmd) build(m core.Model) (*qobj.Qobj, error) {
	kind, err := core.ParseKind(c.Kind)
	if err != nil {
		return nil, err
	}
	f, err := operator.ByKind(kind)
	if err != nil {
		return nil, err
	}
	q, err := f(m, c.N, c.K)
	if err != nil {
		return nil, err
	}
	if c.Number {
		return q.Dag().Mul(q), nil
	}
	return q, nil
}

func (c *operatorCmd) Execute(args []string) error {
	return c.app.withModel(func(m core.Model, _ *core.Setting) (*report, error) {
		q, err := c.build(m)
		if err != nil {
			return nil, err
		}
		return newReport("operator", c.Kind, m, q), nil
	})
}

type hamiltonianCmd struct {
	Name string `long:"name" description:"catalog name, see list" required:"true"`
	N    int    `long:"n" description:"number of qubits" default:"2"`

	app *Becq
}

func (c *hamiltonianCmd) build(m core.Model) (*qobj.Qobj, error) {
	f, err := hamiltonian.Lookup(c.Name)
	if err != nil {
		return nil, err
	}
	return f(m, c.N)
}

func (c *hamiltonianCmd) Execute(args []string) error {
	return c.app.withModel(func(m core.Model, _ *core.Setting) (*report, error) {
		h, err := c.build(m)
		if err != nil {
			return nil, err
		}
		return newReport("hamiltonian", c.Name, m, h), nil
	})
}

type stateCmd struct {
	Name string  `long:"name" description:"state or trajectory name, see list" required:"true"`
	N    int     `long:"n" description:"number of qubits of a static state" default:"2"`
	T    float64 `long:"t" description:"time of a trajectory point" default:"0"`

	app *Becq
}

func (c *stateCmd) build(m core.Model) (*qobj.Qobj, error) {
	if f, err := state.LookupTrajectory(c.Name); err == nil {
		return f(m, c.T)
	}
	f, err := state.LookupState(c.Name)
	if err != nil {
		return nil, err
	}
	return f(m, c.N)
}

func (c *stateCmd) Execute(args []string) error {
	return c.app.withModel(func(m core.Model, _ *core.Setting) (*report, error) {
		s, err := c.build(m)
		if err != nil {
			return nil, err
		}
		return newReport("state", c.Name, m, s), nil
	})
}

type trajectoryCmd struct {
	Name      string  `long:"name" description:"trajectory name, see list" required:"true"`
	TEnd      float64 `long:"t-end" description:"end time, 0 takes [trajectory] t_end"`
	Steps     int     `long:"steps" description:"number of steps, 0 takes [trajectory] steps"`
	ReportDir string  `long:"report-dir" description:"also append every step to a daily JSON file in this dir" env:"BECQ_REPORT_DIR"`
	Stream    bool    `long:"stream" description:"print every step as a JSON line while sweeping"`

	app *Becq
}

// schedule merges the command line with the [trajectory] table.
func (c *trajectoryCmd) schedule(s *core.Setting) core.TrajectorySetting {
	ts := s.Trajectory
	if c.TEnd != 0 {
		ts.TEnd = c.TEnd
	}
	if c.Steps != 0 {
		ts.Steps = c.Steps
	}
	return ts
}

func (c *trajectoryCmd) Execute(args []string) error {
	return c.app.withModel(func(m core.Model, s *core.Setting) (*report, error) {
		f, err := state.LookupTrajectory(c.Name)
		if err != nil {
			return nil, err
		}
		var sink *log.ReportLogger
		if c.ReportDir != "" {
			if sink, err = log.NewReportLogger(c.ReportDir); err != nil {
				return nil, err
			}
			defer func() {
				if err := sink.Close(); err != nil {
					zap.L().Error("failed to close report file", zap.Error(err))
				}
			}()
		}
		r := newReport("trajectory", c.Name, m, nil)
		var out io.Writer
		if c.Stream {
			out = os.Stdout
		}
		steps, err := runSweep(f, m, c.schedule(s), r.RunID, sink, out)
		r.Steps = steps
		return r, err
	})
}

// runSweep evaluates the sweep in a run group next to an interrupt
// handler. An interrupt ends the sweep early without error; the steps
// done so far are kept. Every step goes to sink and out when they are set,
// and a failed write to out stops the sweep.
func runSweep(f state.Trajectory, m core.Model, ts core.TrajectorySetting, runID string, sink *log.ReportLogger, out io.Writer) ([]stepReport, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var steps []stepReport
	var g run.Group
	g.Add(run.SignalHandler(ctx, os.Interrupt))
	g.Add(func() error {
		var err error
		steps, err = sweep(ctx, f, m, ts, func(st stepReport) error {
			if sink != nil {
				sink.Info("step", zap.String("run_id", runID), zap.Object("step", st))
			}
			if out == nil {
				return nil
			}
			if _, err := out.Write(st.line(runID)); err != nil {
				zap.L().Error("failed to write step", zap.Int("step", st.Step), zap.Error(err))
				return errors.Wrap(err, "write step")
			}
			return nil
		})
		return err
	}, func(error) {
		cancel()
	})

	err := g.Run()
	var se run.SignalError
	if errors.As(err, &se) {
		zap.L().Warn("trajectory interrupted", zap.String("signal", se.Signal.String()), zap.Int("steps", len(steps)))
		return steps, nil
	}
	return steps, err
}

// sweep evaluates f at Steps+1 evenly spaced times in [0, TEnd] and
// compares every point with the one at t = 0.
func sweep(ctx context.Context, f state.Trajectory, m core.Model, ts core.TrajectorySetting, emit func(stepReport) error) ([]stepReport, error) {
	if ts.Steps < 1 {
		return nil, errors.Errorf("steps must be positive, got %d", ts.Steps)
	}
	start, err := f(m, 0)
	if err != nil {
		return nil, err
	}
	steps := make([]stepReport, 0, ts.Steps+1)
	for i := 0; i <= ts.Steps; i++ {
		select {
		case <-ctx.Done():
			return steps, ctx.Err()
		default:
		}
		t := ts.TEnd * float64(i) / float64(ts.Steps)
		q, err := f(m, t)
		if err != nil {
			return steps, errors.Wrapf(err, "t=%v", t)
		}
		st := newStepReport(i, t, start, q)
		zap.L().Debug("trajectory step", zap.Object("step", st))
		if err := emit(st); err != nil {
			return steps, err
		}
		steps = append(steps, st)
	}
	return steps, nil
}

type listCmd struct{}

func (c *listCmd) Execute(args []string) error {
	for _, group := range []struct {
		title string
		names []string
	}{
		{title: "hamiltonian", names: hamiltonian.Names()},
		{title: "state", names: state.StateNames()},
		{title: "trajectory", names: state.TrajectoryNames()},
	} {
		fmt.Printf("%s:\n", group.title)
		for _, n := range group.names {
			fmt.Printf("  %s\n", n)
		}
	}
	return nil
}
