// Package app implements the application layer for rab.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/rab/internal/adapters/telemetry/progrock"
	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/rab/internal/engine/invoker"
	"go.trai.ch/rab/internal/engine/parser"
	"go.trai.ch/rab/internal/engine/planner"
	"go.trai.ch/rab/internal/engine/resolver"
	"go.trai.ch/rab/internal/tui"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Vertex names of the in-process phases.
const (
	ResolveVertex = "resolve"
	PlanVertex    = "plan"
)

// App represents the main application logic.
type App struct {
	declarations ports.DeclarationLoader
	indexes      ports.IndexLoader
	planner      *planner.Planner
	invoker      *invoker.Invoker
	toolchains   ports.ToolchainRenderer
	store        ports.HistoryStore
	logger       ports.Logger
	telemetry    ports.Telemetry
	teaOptions   []tea.ProgramOption
	now          func() time.Time
}

// New creates a new App instance.
func New(
	declarations ports.DeclarationLoader,
	indexes ports.IndexLoader,
	plan *planner.Planner,
	inv *invoker.Invoker,
	toolchains ports.ToolchainRenderer,
	store ports.HistoryStore,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		declarations: declarations,
		indexes:      indexes,
		planner:      plan,
		invoker:      inv,
		toolchains:   toolchains,
		store:        store,
		logger:       log,
		telemetry:    telemetry,
		now:          time.Now,
	}
}

// WithTeaOptions adds bubbletea program options used in progress mode.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithClock replaces the clock used to timestamp build records.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// Options select the declaration, index and plan inputs of an invocation.
type Options struct {
	DeclarationPath string
	IndexPath       string
	// Overrides are applied on top of the declared settings.
	Overrides domain.RawSettings
	SourceDir string
	BuildDir  string
	Generator string
}

func (o Options) withDefaults() Options {
	if o.DeclarationPath == "" {
		o.DeclarationPath = domain.DeclarationFileName
	}
	if o.IndexPath == "" {
		o.IndexPath = domain.DefaultIndexPath()
	}
	return o
}

// RunOptions configure a resolve-and-build invocation.
type RunOptions struct {
	Options
	// Timeout bounds the configure and build phases together. Zero means no limit.
	Timeout time.Duration
	// Progress renders phases in an interactive terminal view.
	Progress bool
}

// Resolution is the outcome of the parse and resolve phases.
type Resolution struct {
	Declaration  *domain.Declaration
	Dependencies []domain.ResolvedDependency
}

// Resolve parses the declaration and resolves it against the package index.
func (a *App) Resolve(ctx context.Context, opts Options) (*Resolution, error) {
	res, err := a.resolve(ctx, a.telemetry, opts.withDefaults())
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Plan resolves the declaration and builds the plan without running anything.
func (a *App) Plan(ctx context.Context, opts Options) (*domain.BuildPlan, error) {
	opts = opts.withDefaults()
	res, err := a.resolve(ctx, a.telemetry, opts)
	if err != nil {
		return nil, err
	}
	return a.plan(ctx, a.telemetry, res, opts)
}

// RenderToolchain returns the toolchain file content for plan.
func (a *App) RenderToolchain(plan *domain.BuildPlan) string {
	return a.toolchains.RenderToolchain(plan)
}

// Run resolves, plans, configures and builds, then records the outcome in the
// build history. The returned invocation is terminal; its error is also returned.
func (a *App) Run(ctx context.Context, opts RunOptions) (*domain.Invocation, error) {
	opts.Options = opts.Options.withDefaults()
	if !opts.Progress {
		return a.execute(ctx, a.telemetry, opts)
	}

	stream := progrock.NewStream()
	recorder := progrock.NewRecorder(stream)

	pipelineCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := tui.NewModel(stream, cancel)
	program := tea.NewProgram(model, a.teaOptions...)

	var (
		g   errgroup.Group
		inv *domain.Invocation
		err error
	)
	g.Go(func() error {
		if _, runErr := program.Run(); runErr != nil {
			return zerr.Wrap(runErr, "progress view failed")
		}
		return nil
	})
	g.Go(func() error {
		defer func() { _ = recorder.Close() }()
		inv, err = a.execute(pipelineCtx, recorder, opts)
		return nil
	})
	if viewErr := g.Wait(); viewErr != nil {
		a.logger.Warn(viewErr.Error())
	}
	return inv, err
}

func (a *App) execute(ctx context.Context, tel ports.Telemetry, opts RunOptions) (*domain.Invocation, error) {
	start := a.now()
	inv := domain.NewInvocation()
	target := ""

	err := func() error {
		res, err := a.resolve(ctx, tel, opts.Options)
		if res != nil && res.Declaration != nil {
			target = res.Declaration.Settings.Key()
		}
		if err != nil {
			return fail(inv, err)
		}
		if err := inv.Advance(domain.StateResolved); err != nil {
			return err
		}

		plan, err := a.plan(ctx, tel, res, opts.Options)
		if err != nil {
			return fail(inv, err)
		}
		if err := inv.Advance(domain.StatePlanned); err != nil {
			return err
		}

		if err := a.invoker.WithTelemetry(tel).Invoke(ctx, plan, inv, opts.Timeout); err != nil {
			return err
		}
		a.record(inv, target, plan.Fingerprint, start)
		return nil
	}()
	if err != nil && target != "" && inv.State() == domain.StateFailed {
		a.record(inv, target, "", start)
	}
	return inv, err
}

// resolve returns a Resolution carrying the declaration as soon as it parsed,
// even when resolution then fails.
func (a *App) resolve(ctx context.Context, tel ports.Telemetry, opts Options) (*Resolution, error) {
	vctx, vertex := tel.Record(ctx, ResolveVertex)
	res := &Resolution{}
	err := func() error {
		raw, err := a.declarations.Load(opts.DeclarationPath)
		if err != nil {
			return err
		}
		res.Declaration, err = parser.Parse(raw, opts.Overrides)
		if err != nil {
			return err
		}
		index, err := a.indexes.Load(opts.IndexPath)
		if err != nil {
			return err
		}
		res.Dependencies, err = resolver.Resolve(res.Declaration.Dependencies, res.Declaration.Settings, index)
		if err != nil {
			return err
		}
		for _, dep := range res.Dependencies {
			a.info(vctx, "resolved "+dep.String())
		}
		return nil
	}()
	vertex.Complete(err)
	return res, err
}

func (a *App) plan(ctx context.Context, tel ports.Telemetry, res *Resolution, opts Options) (*domain.BuildPlan, error) {
	vctx, vertex := tel.Record(ctx, PlanVertex, ports.WithInputs(ResolveVertex))
	plan, err := a.planner.Plan(res.Declaration, res.Dependencies, planner.Options{
		SourceDir: opts.SourceDir,
		BuildDir:  opts.BuildDir,
		Generator: opts.Generator,
	})
	if err == nil {
		a.info(vctx, "plan "+plan.Fingerprint+" in "+plan.BuildDir)
	}
	vertex.Complete(err)
	return plan, err
}

// info logs msg on the vertex carried by ctx, or on the logger when there is none.
func (a *App) info(ctx context.Context, msg string) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		v.Log(domain.LogLevelInfo, msg)
		return
	}
	a.logger.Info(msg)
}

func (a *App) record(inv *domain.Invocation, target, fingerprint string, start time.Time) {
	end := a.now()
	rec := domain.BuildRecord{
		Target:      target,
		Fingerprint: fingerprint,
		State:       inv.State(),
		FailedPhase: inv.FailedPhase(),
		ErrorKind:   inv.Kind(),
		ExitCode:    inv.Kind().ExitCode(),
		Timestamp:   end,
		Duration:    end.Sub(start),
	}
	if inv.Err() != nil {
		rec.Message = inv.Err().Error()
	}
	if err := a.store.Append(rec); err != nil {
		a.logger.Warn("failed to record build history: " + err.Error())
	}
}

func fail(inv *domain.Invocation, err error) error {
	if ferr := inv.Fail(err); ferr != nil {
		return ferr
	}
	return err
}

// History returns the recorded invocations for target, newest first. An empty
// target lists every record.
func (a *App) History(_ context.Context, target string) ([]domain.BuildRecord, error) {
	return a.store.List(target)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Build removes BuildDir, or every build directory under SourceDir when BuildDir is empty.
	Build     bool
	History   bool
	SourceDir string
	BuildDir  string
}

// Clean removes build directories and the build history.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	var errs error

	if options.Build {
		dir := options.BuildDir
		if dir == "" {
			dir = filepath.Join(options.SourceDir, domain.BuildDirName)
		}
		a.logger.Info("removing " + dir)
		if err := os.RemoveAll(dir); err != nil {
			errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove build directory"), "path", dir))
		}
	}

	if options.History {
		a.logger.Info("clearing build history")
		if err := a.store.Clear(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
