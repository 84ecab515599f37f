package ports

import (
	"context"

	"go.trai.ch/rab/internal/core/domain"
)

// ProcessRunner runs subprocesses.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Run executes cmd and waits for it to exit.
	//
	// A process that ran and exited non-zero is not an error. Run returns
	// domain.ErrCancelled or domain.ErrTimeout when ctx ends first.
	Run(ctx context.Context, cmd domain.Command) (domain.ProcessResult, error)
}
