package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind domain.ErrorKind
		exit int
	}{
		{"nil", nil, domain.KindNone, 0},
		{"malformed", zerr.Wrap(domain.ErrMalformedConstraint, "bad"), domain.KindMalformedConstraint, 2},
		{"duplicate", zerr.With(zerr.Wrap(domain.ErrDuplicateDependency, "cmake"), "dependency", "cmake"), domain.KindDuplicateDependency, 2},
		{"setting", zerr.Wrap(domain.ErrInvalidSetting, "os"), domain.KindInvalidDeclaration, 2},
		{"declaration parse", zerr.Wrap(domain.ErrDeclarationParseFailed, "yaml"), domain.KindInvalidDeclaration, 2},
		{"unknown", zerr.Wrap(domain.ErrUnknownDependency, "x"), domain.KindUnknownDependency, 3},
		{"unsatisfiable", zerr.Wrap(domain.ErrUnsatisfiableConstraint, "compiler"), domain.KindUnsatisfiableConstraint, 3},
		{"path", zerr.Wrap(domain.ErrPathResolution, "cmake"), domain.KindPathResolution, 4},
		{"configure", domain.NewPhaseError(domain.StateConfiguring, 1, ""), domain.KindConfigureFailed, 5},
		{"compile", domain.NewPhaseError(domain.StateBuilding, 2, ""), domain.KindCompileFailed, 6},
		{"cancelled", zerr.Wrap(domain.ErrCancelled, "configure"), domain.KindCancelled, 7},
		{"timeout", zerr.Wrap(domain.ErrTimeout, "build"), domain.KindTimeout, 7},
		{"wrapped with fmt", fmt.Errorf("outer: %w", domain.ErrTimeout), domain.KindTimeout, 7},
		{"foreign", context.DeadlineExceeded, domain.KindInternal, 1},
		{"index parse", zerr.Wrap(domain.ErrIndexParseFailed, "index"), domain.KindIndexUnavailable, 3},
		{"index read", zerr.Wrap(domain.ErrIndexReadFailed, "index"), domain.KindIndexUnavailable, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind := domain.KindOf(tt.err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.exit, kind.ExitCode())
		})
	}
}

func TestPhaseError(t *testing.T) {
	err := domain.NewPhaseError(domain.StateConfiguring, 1, "CMake Error at CMakeLists.txt:3\n")

	assert.True(t, errors.Is(err, domain.ErrConfigureFailed))
	assert.False(t, errors.Is(err, domain.ErrCompileFailed))
	assert.Equal(t, "configure failed: exit code 1", err.Error())

	var phaseErr *domain.PhaseError
	wrapped := fmt.Errorf("invoke: %w", err)
	assert.True(t, errors.As(wrapped, &phaseErr))
	assert.Equal(t, 1, phaseErr.ExitCode)
	assert.Equal(t, "CMake Error at CMakeLists.txt:3\n", phaseErr.Output)
}
