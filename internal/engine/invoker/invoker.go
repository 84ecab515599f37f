// Package invoker runs the configure and build phases of a build plan.
package invoker

import (
	"context"
	"time"

	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/zerr"
)

// Vertex names of the subprocess phases.
const (
	ConfigureVertex = "configure"
	BuildVertex     = "build"
)

// Invoker drives a BuildSystem through configure then build.
type Invoker struct {
	buildSystem ports.BuildSystem
	telemetry   ports.Telemetry
}

// New creates a new Invoker.
func New(buildSystem ports.BuildSystem, telemetry ports.Telemetry) *Invoker {
	return &Invoker{buildSystem: buildSystem, telemetry: telemetry}
}

// WithTelemetry returns a copy of i that records phases on t.
func (i *Invoker) WithTelemetry(t ports.Telemetry) *Invoker {
	return &Invoker{buildSystem: i.buildSystem, telemetry: t}
}

// Invoke runs both phases for plan and advances inv from Planned to Built, or
// fails it. A configure failure skips the build. A positive timeout bounds
// both phases together.
func (i *Invoker) Invoke(ctx context.Context, plan *domain.BuildPlan, inv *domain.Invocation, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	if err := i.phase(ctx, plan, inv, domain.StateConfiguring, domain.StateConfigured); err != nil {
		return err
	}
	return i.phase(ctx, plan, inv, domain.StateBuilding, domain.StateBuilt)
}

func (i *Invoker) phase(ctx context.Context, plan *domain.BuildPlan, inv *domain.Invocation, running, done domain.State) error {
	if err := inv.Advance(running); err != nil {
		return err
	}

	name, run, opts := ConfigureVertex, i.buildSystem.Configure, []ports.VertexOption(nil)
	if running == domain.StateBuilding {
		name, run, opts = BuildVertex, i.buildSystem.Build, []ports.VertexOption{ports.WithInputs(ConfigureVertex)}
	}

	vctx, vertex := i.telemetry.Record(ctx, name, opts...)
	res, err := run(vctx, plan)
	if err == nil && !res.Success() {
		err = phaseError(running, res)
	}
	vertex.Complete(err)
	if err != nil {
		return fail(inv, err)
	}
	return inv.Advance(done)
}

func phaseError(phase domain.State, res domain.ProcessResult) error {
	perr := domain.NewPhaseError(phase, res.ExitCode, res.Output)
	return zerr.With(zerr.Wrap(perr, string(phase)), "exit_code", res.ExitCode)
}

func fail(inv *domain.Invocation, err error) error {
	if ferr := inv.Fail(err); ferr != nil {
		return ferr
	}
	return err
}
