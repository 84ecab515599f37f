// Package cmake drives CMake configure and build for a build plan.
package cmake

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/zerr"
)

// ProgramName is the dependency name and executable of CMake itself.
const ProgramName = "cmake"

var (
	_ ports.BuildSystem       = (*CMake)(nil)
	_ ports.ToolchainRenderer = (*CMake)(nil)
)

// CMake implements ports.BuildSystem over a ports.ProcessRunner.
type CMake struct {
	runner ports.ProcessRunner
}

// New creates a new CMake build system.
func New(runner ports.ProcessRunner) *CMake {
	return &CMake{runner: runner}
}

// Configure writes the toolchain file and runs
// "cmake -S <source> -B <build> [-G <generator>] -DCMAKE_TOOLCHAIN_FILE=<file> -D<k>=<v>...".
func (c *CMake) Configure(ctx context.Context, plan *domain.BuildPlan) (domain.ProcessResult, error) {
	if err := c.writeToolchain(plan); err != nil {
		return domain.ProcessResult{}, err
	}
	if err := os.MkdirAll(plan.BuildDir, domain.DirPerm); err != nil {
		return domain.ProcessResult{}, zerr.With(zerr.Wrap(err, "failed to create build directory"), "path", plan.BuildDir)
	}
	return c.runner.Run(ctx, c.command(plan, ConfigureArgs(plan)))
}

// Build runs "cmake --build <build> --config <BuildType>".
func (c *CMake) Build(ctx context.Context, plan *domain.BuildPlan) (domain.ProcessResult, error) {
	return c.runner.Run(ctx, c.command(plan, BuildArgs(plan)))
}

// RenderToolchain returns the toolchain file content for plan.
func (c *CMake) RenderToolchain(plan *domain.BuildPlan) string {
	return RenderToolchain(plan.Toolchain)
}

func (c *CMake) writeToolchain(plan *domain.BuildPlan) error {
	path := plan.ToolchainFilePath
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrToolchainWriteFailed, err.Error()), "path", path)
	}
	//nolint:gosec // path is derived from the build directory
	if err := os.WriteFile(path, []byte(RenderToolchain(plan.Toolchain)), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrToolchainWriteFailed, err.Error()), "path", path)
	}
	return nil
}

func (c *CMake) command(plan *domain.BuildPlan, args []string) domain.Command {
	return domain.Command{
		Name: Program(plan),
		Args: args,
		Dir:  plan.SourceDir,
		Env:  Environment(plan),
	}
}

// ConfigureArgs returns the configure arguments. Cache variables follow the
// toolchain file in lexical order.
func ConfigureArgs(plan *domain.BuildPlan) []string {
	args := []string{"-S", plan.SourceDir, "-B", plan.BuildDir}
	if plan.Generator != "" {
		args = append(args, "-G", plan.Generator)
	}
	args = append(args, "-DCMAKE_TOOLCHAIN_FILE="+plan.ToolchainFilePath)
	for _, k := range plan.SortedCacheKeys() {
		args = append(args, "-D"+k+"="+plan.CacheVariables[k])
	}
	return args
}

// BuildArgs returns the build arguments.
func BuildArgs(plan *domain.BuildPlan) []string {
	return []string{"--build", plan.BuildDir, "--config", plan.Settings.BuildType.CMakeName()}
}

// Program returns the CMake executable: the resolved cmake tool when the plan
// carries one, else cmake from PATH.
func Program(plan *domain.BuildPlan) string {
	for _, dep := range plan.ResolvedDependencies {
		if dep.Kind == domain.KindTool && dep.Name == ProgramName {
			return filepath.Join(dep.InstallPath, "bin", ProgramName)
		}
	}
	return ProgramName
}

// Environment puts the bin directory of every tool dependency on PATH.
func Environment(plan *domain.BuildPlan) []string {
	var dirs []string
	for _, dep := range plan.ResolvedDependencies {
		if dep.Kind == domain.KindTool {
			dirs = append(dirs, filepath.Join(dep.InstallPath, "bin"))
		}
	}
	if len(dirs) == 0 {
		return nil
	}
	return []string{"PATH=" + strings.Join(dirs, string(os.PathListSeparator))}
}
