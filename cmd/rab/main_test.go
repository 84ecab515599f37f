package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rab/internal/adapters/registry"
	"go.trai.ch/rab/internal/adapters/telemetry"
	"go.trai.ch/rab/internal/app"
	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports/mocks"
	"go.trai.ch/rab/internal/engine/invoker"
	"go.trai.ch/rab/internal/engine/planner"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type harness struct {
	declarations *mocks.MockDeclarationLoader
	indexes      *mocks.MockIndexLoader
	buildSystem  *mocks.MockBuildSystem
	store        *mocks.MockHistoryStore
	logger       *mocks.MockLogger
	provider     ComponentProvider
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		declarations: mocks.NewMockDeclarationLoader(ctrl),
		indexes:      mocks.NewMockIndexLoader(ctrl),
		buildSystem:  mocks.NewMockBuildSystem(ctrl),
		store:        mocks.NewMockHistoryStore(ctrl),
		logger:       mocks.NewMockLogger(ctrl),
	}
	h.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	packages := mocks.NewMockPackageStore(ctrl)
	packages.EXPECT().Resolve(gomock.Any()).DoAndReturn(func(p string) (string, error) { return p, nil }).AnyTimes()
	hasher := mocks.NewMockPlanHasher(ctrl)
	hasher.EXPECT().Fingerprint(gomock.Any()).Return("00000000deadbeef", nil).AnyTimes()

	application := app.New(
		h.declarations,
		h.indexes,
		planner.New(packages, hasher),
		invoker.New(h.buildSystem, telemetry.NewNoOp()),
		mocks.NewMockToolchainRenderer(ctrl),
		h.store,
		h.logger,
		telemetry.NewNoOp(),
	)
	h.provider = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: h.logger}, func() {}, nil
	}
	return h
}

func rawDeclaration(constraint string) *domain.RawDeclaration {
	return &domain.RawDeclaration{
		Entries: []domain.RawEntry{
			{Name: "cmake", Constraint: "3.27.1", Kind: domain.KindTool},
			{Name: "compiler", Constraint: constraint, Kind: domain.KindTool},
		},
		Settings: domain.RawSettings{
			OS:        "baremetal",
			Arch:      "cortex-m4",
			Compiler:  "gcc",
			BuildType: "release",
			Libc:      "newlib-nano",
		},
	}
}

func packageIndex(t *testing.T) *registry.Index {
	t.Helper()
	idx := registry.NewIndex("/store")
	require.NoError(t, idx.Add("cmake", registry.Package{Version: domain.MustParseVersion("3.27.1")}))
	require.NoError(t, idx.Add("compiler", registry.Package{Version: domain.MustParseVersion("11.5.0")}))
	return idx
}

// TestRun_Version verifies that run returns 0 when the command succeeds.
func TestRun_Version(t *testing.T) {
	h := newHarness(t)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, h.provider)
	assert.Equal(t, domain.ExitOK, exitCode)
	assert.Empty(t, stderr.String())
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, domain.ExitInternal, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_ExitCodes(t *testing.T) {
	t.Run("declaration parse failure", func(t *testing.T) {
		h := newHarness(t)
		h.declarations.EXPECT().Load("rab.yaml").
			Return(nil, zerr.Wrap(domain.ErrDeclarationParseFailed, "yaml: line 3"))
		h.logger.EXPECT().Error(gomock.Any())

		exitCode := run(context.Background(), []string{"resolve-and-build", "--progress", "plain"}, new(bytes.Buffer), h.provider)
		assert.Equal(t, domain.ExitParse, exitCode)
	})

	t.Run("unsatisfiable constraint", func(t *testing.T) {
		h := newHarness(t)
		h.declarations.EXPECT().Load("rab.yaml").Return(rawDeclaration("^12.0.0"), nil)
		h.indexes.EXPECT().Load(domain.DefaultIndexPath()).Return(packageIndex(t), nil)
		h.store.EXPECT().Append(gomock.Any()).DoAndReturn(func(rec domain.BuildRecord) error {
			assert.Equal(t, domain.KindUnsatisfiableConstraint, rec.ErrorKind)
			return nil
		})
		h.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
			assert.Contains(t, err.Error(), "compiler")
		})

		exitCode := run(context.Background(), []string{"resolve-and-build", "--progress", "plain"}, new(bytes.Buffer), h.provider)
		assert.Equal(t, domain.ExitResolve, exitCode)
	})

	t.Run("package index missing", func(t *testing.T) {
		h := newHarness(t)
		h.declarations.EXPECT().Load("rab.yaml").Return(rawDeclaration("^11.0.0"), nil)
		h.indexes.EXPECT().Load(domain.DefaultIndexPath()).
			Return(nil, zerr.Wrap(domain.ErrIndexReadFailed, "no such file or directory"))
		h.store.EXPECT().Append(gomock.Any()).DoAndReturn(func(rec domain.BuildRecord) error {
			assert.Equal(t, domain.KindIndexUnavailable, rec.ErrorKind)
			return nil
		})
		h.logger.EXPECT().Error(gomock.Any())

		exitCode := run(context.Background(), []string{"resolve-and-build", "--progress", "plain"}, new(bytes.Buffer), h.provider)
		assert.Equal(t, domain.ExitResolve, exitCode)
	})

	t.Run("configure failure", func(t *testing.T) {
		h := newHarness(t)
		h.declarations.EXPECT().Load("rab.yaml").Return(rawDeclaration("^11.0.0"), nil)
		h.indexes.EXPECT().Load(domain.DefaultIndexPath()).Return(packageIndex(t), nil)
		h.buildSystem.EXPECT().Configure(gomock.Any(), gomock.Any()).
			Return(domain.ProcessResult{ExitCode: 1, Output: "CMake Error\n"}, nil)
		h.store.EXPECT().Append(gomock.Any()).Return(nil)
		h.logger.EXPECT().Error(gomock.Any())

		args := []string{"resolve-and-build", "--progress", "plain", "--build-dir", t.TempDir()}
		exitCode := run(context.Background(), args, new(bytes.Buffer), h.provider)
		assert.Equal(t, domain.ExitConfigure, exitCode)
	})

	t.Run("unknown flag", func(t *testing.T) {
		h := newHarness(t)
		h.logger.EXPECT().Error(gomock.Any())

		exitCode := run(context.Background(), []string{"resolve-and-build", "--bogus"}, new(bytes.Buffer), h.provider)
		assert.Equal(t, domain.ExitInternal, exitCode)
	})
}
