package ports

import (
	"context"

	"go.trai.ch/rab/internal/core/domain"
)

// BuildSystem drives the external build system for a plan.
//
// Both methods block until the subprocess exits. A non-zero exit is reported
// through the result, not the error; the error is reserved for failures to run
// at all, cancellation and timeout.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_system.go -destination=mocks/mock_build_system.go -package=mocks
type BuildSystem interface {
	// Configure generates the build tree from the plan's toolchain file and cache variables.
	Configure(ctx context.Context, plan *domain.BuildPlan) (domain.ProcessResult, error)

	// Build compiles a configured build tree.
	Build(ctx context.Context, plan *domain.BuildPlan) (domain.ProcessResult, error)
}

// ToolchainRenderer produces the toolchain file a BuildSystem would write for a plan.
type ToolchainRenderer interface {
	RenderToolchain(plan *domain.BuildPlan) string
}
