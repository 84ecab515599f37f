package commands_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rab/cmd/rab/commands"
	"go.trai.ch/rab/internal/app"
	"go.trai.ch/rab/internal/build"
	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/zerr"
)

type mockApp struct {
	runFunc     func(ctx context.Context, opts app.RunOptions) (*domain.Invocation, error)
	resolveFunc func(ctx context.Context, opts app.Options) (*app.Resolution, error)
	planFunc    func(ctx context.Context, opts app.Options) (*domain.BuildPlan, error)
	historyFunc func(ctx context.Context, target string) ([]domain.BuildRecord, error)
	cleanFunc   func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) (*domain.Invocation, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return domain.NewInvocation(), nil
}

func (m *mockApp) Resolve(ctx context.Context, opts app.Options) (*app.Resolution, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, opts)
	}
	return &app.Resolution{}, nil
}

func (m *mockApp) Plan(ctx context.Context, opts app.Options) (*domain.BuildPlan, error) {
	if m.planFunc != nil {
		return m.planFunc(ctx, opts)
	}
	return &domain.BuildPlan{}, nil
}

func (m *mockApp) RenderToolchain(_ *domain.BuildPlan) string {
	return "set(CMAKE_SYSTEM_NAME \"Generic\")\n"
}

func (m *mockApp) History(ctx context.Context, target string) ([]domain.BuildRecord, error) {
	if m.historyFunc != nil {
		return m.historyFunc(ctx, target)
	}
	return nil, nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func builtInvocation() *domain.Invocation {
	inv := domain.NewInvocation()
	for _, s := range []domain.State{
		domain.StateResolved, domain.StatePlanned, domain.StateConfiguring,
		domain.StateConfigured, domain.StateBuilding, domain.StateBuilt,
	} {
		_ = inv.Advance(s)
	}
	return inv
}

func execute(t *testing.T, a commands.Application, args ...string) (string, string, error) {
	t.Helper()
	cli := commands.New(a)
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	cli.SetOutput(stdout, stderr)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCommands_ResolveAndBuild(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.Invocation, error) {
				captured = opts
				return builtInvocation(), nil
			},
		}

		out, _, err := execute(t, mock, "resolve-and-build",
			"--declaration", "fw/rab.yaml",
			"--index", "idx.yaml",
			"--target-os", "baremetal",
			"--target-arch", "cortex-m4f",
			"--build-type", "debug",
			"--libc", "picolibc",
			"--compiler", "clang",
			"--source-dir", "fw",
			"--build-dir", "out",
			"-G", "Ninja",
			"--timeout", "90s",
			"--progress", "plain",
		)
		require.NoError(t, err)
		assert.Equal(t, "built\n", out)

		assert.Equal(t, "fw/rab.yaml", captured.DeclarationPath)
		assert.Equal(t, "idx.yaml", captured.IndexPath)
		assert.Equal(t, domain.RawSettings{
			OS:        "baremetal",
			Arch:      "cortex-m4f",
			Compiler:  "clang",
			BuildType: "debug",
			Libc:      "picolibc",
		}, captured.Overrides)
		assert.Equal(t, "fw", captured.SourceDir)
		assert.Equal(t, "out", captured.BuildDir)
		assert.Equal(t, "Ninja", captured.Generator)
		assert.Equal(t, 90*time.Second, captured.Timeout)
		assert.False(t, captured.Progress)
	})

	t.Run("defaults", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.Invocation, error) {
				captured = opts
				return builtInvocation(), nil
			},
		}

		_, _, err := execute(t, mock, "build", "--progress", "plain")
		require.NoError(t, err)
		assert.Equal(t, domain.DeclarationFileName, captured.DeclarationPath)
		assert.Equal(t, domain.DefaultIndexPath(), captured.IndexPath)
		assert.Equal(t, ".", captured.SourceDir)
		assert.Equal(t, domain.RawSettings{}, captured.Overrides)
		assert.Zero(t, captured.Timeout)
	})

	t.Run("tui requested", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) (*domain.Invocation, error) {
				captured = opts
				return builtInvocation(), nil
			},
		}

		_, _, err := execute(t, mock, "resolve-and-build", "--progress", "tui")
		require.NoError(t, err)
		assert.True(t, captured.Progress)
	})

	t.Run("returns the invocation error", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.Invocation, error) {
				return nil, zerr.Wrap(domain.ErrUnsatisfiableConstraint, "no version of compiler satisfies ^12.0.0")
			},
		}

		_, _, err := execute(t, mock, "resolve-and-build", "--progress", "plain")
		require.Error(t, err)
		assert.Equal(t, domain.KindUnsatisfiableConstraint, domain.KindOf(err))
	})

	t.Run("prints phase output after the progress view", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.Invocation, error) {
				return nil, domain.NewPhaseError(domain.StateConfiguring, 1, "CMake Error: no compiler\n")
			},
		}

		_, stderr, err := execute(t, mock, "resolve-and-build", "--progress", "tui")
		require.Error(t, err)
		assert.Equal(t, "CMake Error: no compiler\n", stderr)
	})

	t.Run("plain mode leaves phase output to the logger", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) (*domain.Invocation, error) {
				return nil, domain.NewPhaseError(domain.StateBuilding, 2, "error: undefined reference\n")
			},
		}

		_, stderr, err := execute(t, mock, "resolve-and-build", "--progress", "plain")
		require.Error(t, err)
		assert.Empty(t, stderr)
		assert.Equal(t, domain.KindCompileFailed, domain.KindOf(err))
	})

	t.Run("rejects positional arguments", func(t *testing.T) {
		_, _, err := execute(t, &mockApp{}, "resolve-and-build", "extra")
		require.Error(t, err)
	})
}

func TestCommands_Resolve(t *testing.T) {
	var captured app.Options
	mock := &mockApp{
		resolveFunc: func(_ context.Context, opts app.Options) (*app.Resolution, error) {
			captured = opts
			return &app.Resolution{Dependencies: []domain.ResolvedDependency{
				{
					Dependency:  domain.Dependency{Name: "cmake", Kind: domain.KindTool},
					Version:     domain.MustParseVersion("3.27.1"),
					InstallPath: "/store/cmake/3.27.1",
				},
				{
					Dependency:  domain.Dependency{Name: "picolibc", Kind: domain.KindLibrary},
					Version:     domain.MustParseVersion("1.8.6"),
					Platform:    domain.Platform{OS: domain.OSBaremetal, Arch: domain.ArchCortexM4F},
					InstallPath: "/store/picolibc/1.8.6",
				},
			}}, nil
		},
	}

	out, _, err := execute(t, mock, "resolve", "--target-arch", "cortex-m4f")
	require.NoError(t, err)
	assert.Equal(t, "cortex-m4f", captured.Overrides.Arch)

	lines := bytes.Split(bytes.TrimSpace([]byte(out)), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "NAME")
	assert.Contains(t, string(lines[1]), "cmake")
	assert.Contains(t, string(lines[1]), "3.27.1")
	assert.Contains(t, string(lines[1]), "any")
	assert.Contains(t, string(lines[2]), "baremetal-cortex-m4f")
	assert.Contains(t, string(lines[2]), "/store/picolibc/1.8.6")
}

func TestCommands_Plan(t *testing.T) {
	mock := &mockApp{
		planFunc: func(_ context.Context, _ app.Options) (*domain.BuildPlan, error) {
			return &domain.BuildPlan{
				ToolchainFilePath: "build/Release/rab_toolchain.cmake",
				CacheVariables: map[string]string{
					"RAB_LIBC":         "picolibc",
					"CMAKE_BUILD_TYPE": "Release",
				},
				SourceDir:   "/src",
				BuildDir:    "build/Release",
				Fingerprint: "00000000deadbeef",
			}, nil
		},
	}

	out, _, err := execute(t, mock, "plan")
	require.NoError(t, err)
	assert.Equal(t, "# fingerprint: 00000000deadbeef\n"+
		"# source: /src\n"+
		"# build: build/Release\n"+
		"# cache variables\n"+
		"-DCMAKE_BUILD_TYPE=Release\n"+
		"-DRAB_LIBC=picolibc\n"+
		"# build/Release/rab_toolchain.cmake\n"+
		"set(CMAKE_SYSTEM_NAME \"Generic\")\n", out)
}

func TestCommands_History(t *testing.T) {
	t.Run("lists records", func(t *testing.T) {
		var target string
		mock := &mockApp{
			historyFunc: func(_ context.Context, tgt string) ([]domain.BuildRecord, error) {
				target = tgt
				return []domain.BuildRecord{
					{
						Target:      "baremetal/cortex-m4f/release",
						State:       domain.StateFailed,
						FailedPhase: domain.StateConfiguring,
						ErrorKind:   domain.KindConfigureFailed,
						ExitCode:    domain.ExitConfigure,
						Timestamp:   time.Now().Add(-2 * time.Hour),
						Duration:    3 * time.Second,
					},
					{
						Target:      "baremetal/cortex-m4f/release",
						Fingerprint: "00000000deadbeef",
						State:       domain.StateBuilt,
						Timestamp:   time.Now().Add(-3 * time.Hour),
					},
				}, nil
			},
		}

		out, _, err := execute(t, mock, "history", "baremetal/cortex-m4f/release")
		require.NoError(t, err)
		assert.Equal(t, "baremetal/cortex-m4f/release", target)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, 3)
		assert.Regexp(t, `^WHEN\s+TARGET\s+STATE\s+EXIT\s+DURATION\s+DETAIL`, lines[0])
		assert.NotContains(t, out, "─")
		assert.Contains(t, out, "ConfigureFailed in configuring")
		assert.Contains(t, out, "2 hours ago")
		assert.Contains(t, out, "3 seconds")
		assert.Contains(t, out, "00000000deadbeef")
	})

	t.Run("limit", func(t *testing.T) {
		mock := &mockApp{
			historyFunc: func(_ context.Context, _ string) ([]domain.BuildRecord, error) {
				return []domain.BuildRecord{
					{Target: "a", State: domain.StateBuilt, Fingerprint: "first"},
					{Target: "a", State: domain.StateBuilt, Fingerprint: "second"},
				}, nil
			},
		}

		out, _, err := execute(t, mock, "history", "-n", "1")
		require.NoError(t, err)
		assert.Contains(t, out, "first")
		assert.NotContains(t, out, "second")
	})

	t.Run("empty", func(t *testing.T) {
		out, _, err := execute(t, &mockApp{}, "history")
		require.NoError(t, err)
		assert.Equal(t, "no recorded invocations\n", out)
	})
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected app.CleanOptions
	}{
		{
			name:     "default cleans build directories",
			args:     []string{"clean"},
			expected: app.CleanOptions{Build: true, SourceDir: "."},
		},
		{
			name:     "history only",
			args:     []string{"clean", "--history"},
			expected: app.CleanOptions{History: true, SourceDir: "."},
		},
		{
			name:     "all",
			args:     []string{"clean", "--all", "--build-dir", "out"},
			expected: app.CleanOptions{Build: true, History: true, SourceDir: ".", BuildDir: "out"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.CleanOptions
			mock := &mockApp{
				cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
					captured = opts
					return nil
				},
			}

			_, _, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, captured)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	out, _, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rab version "+build.Version)
	assert.Contains(t, out, build.Commit)
}
