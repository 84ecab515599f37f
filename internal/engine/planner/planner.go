// Package planner turns resolved dependencies into a build plan.
package planner

import (
	"path/filepath"
	"strings"

	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options are the per-invocation inputs of a plan that do not come from the declaration.
type Options struct {
	// SourceDir is the CMake source directory. Defaults to the working directory.
	SourceDir string
	// BuildDir defaults to build/<BuildType> under SourceDir.
	BuildDir string
	// Generator is passed to cmake -G when set.
	Generator string
}

// Planner builds BuildPlans. It writes nothing.
type Planner struct {
	store  ports.PackageStore
	hasher ports.PlanHasher
}

// New creates a new Planner.
func New(store ports.PackageStore, hasher ports.PlanHasher) *Planner {
	return &Planner{store: store, hasher: hasher}
}

// Plan resolves every install path against the package store and derives the
// cache variables, toolchain and fingerprint.
func (p *Planner) Plan(decl *domain.Declaration, resolved []domain.ResolvedDependency, opts Options) (*domain.BuildPlan, error) {
	deps := make([]domain.ResolvedDependency, len(resolved))
	for i, dep := range resolved {
		path, err := p.store.Resolve(dep.InstallPath)
		if err != nil {
			return nil, zerr.With(err, "dependency", dep.Name)
		}
		dep.InstallPath = path
		deps[i] = dep
	}

	sourceDir := opts.SourceDir
	if sourceDir == "" {
		sourceDir = "."
	}
	sourceDir, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve source directory")
	}
	buildDir := opts.BuildDir
	if buildDir == "" {
		buildDir = domain.DefaultBuildDir(sourceDir, decl.Settings.BuildType)
	}
	buildDir, err = filepath.Abs(buildDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve build directory")
	}

	cache, err := CacheVariables(decl.Settings, deps)
	if err != nil {
		return nil, err
	}

	plan := &domain.BuildPlan{
		ToolchainFilePath:    domain.ToolchainFilePath(buildDir),
		ResolvedDependencies: deps,
		CacheVariables:       cache,
		SourceDir:            sourceDir,
		BuildDir:             buildDir,
		Generator:            opts.Generator,
		Settings:             decl.Settings,
		Toolchain:            Toolchain(decl, deps),
	}

	fp, err := p.hasher.Fingerprint(plan)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to fingerprint build plan")
	}
	plan.Fingerprint = fp
	return plan, nil
}

// CacheVariables returns the -D definitions for settings and deps.
func CacheVariables(settings domain.TargetSettings, deps []domain.ResolvedDependency) (map[string]string, error) {
	vars := map[string]string{
		domain.CacheVarLibc:       string(settings.Libc),
		domain.CacheVarTargetOS:   string(settings.OS),
		domain.CacheVarTargetArch: string(settings.Arch),
		domain.CacheVarCompiler:   string(settings.Compiler),
		domain.CacheVarBuildType:  settings.BuildType.CMakeName(),
	}

	var prefixes, programs []string
	owner := make(map[string]string, len(deps))
	for _, dep := range deps {
		root := filepath.ToSlash(dep.InstallPath)
		name := RootVariable(dep.Name)
		if other, ok := owner[name]; ok {
			err := zerr.With(zerr.New("dependencies map to the same cache variable"), "variable", name)
			return nil, zerr.With(err, "dependency", other+","+dep.Name)
		}
		owner[name] = dep.Name
		vars[name] = root

		switch dep.Kind {
		case domain.KindLibrary:
			prefixes = append(prefixes, root)
		case domain.KindTool:
			programs = append(programs, root+"/bin")
		}
	}
	if len(prefixes) > 0 {
		vars[domain.CacheVarPrefixPath] = strings.Join(prefixes, ";")
	}
	if len(programs) > 0 {
		vars[domain.CacheVarProgram] = strings.Join(programs, ";")
	}
	return vars, nil
}

// RootVariable returns RAB_<NAME>_ROOT with name upper-cased and every
// character outside [A-Z0-9] replaced by an underscore.
func RootVariable(name string) string {
	upper := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	return "RAB_" + upper + "_ROOT"
}
