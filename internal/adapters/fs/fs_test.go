package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rab/internal/adapters/fs"
	"go.trai.ch/rab/internal/core/domain"
)

func mkfile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestWalker_WalkFiles(t *testing.T) {
	root := t.TempDir()
	mkfile(t, filepath.Join(root, ".git", "config"))
	mkfile(t, filepath.Join(root, "share", "doc", "README"))
	mkfile(t, filepath.Join(root, "bin", "cmake"))
	mkfile(t, filepath.Join(root, "bin", "cmake.log"))

	got := slices.Collect(fs.NewWalker().WalkFiles(root, []string{"*.log", "doc"}))

	assert.Equal(t, []string{filepath.Join(root, "bin", "cmake")}, got)
}

func TestStore_Resolve(t *testing.T) {
	root := t.TempDir()
	pkg := filepath.Join(root, "cmake", "3.27.1")
	mkfile(t, filepath.Join(pkg, "bin", "cmake"))
	empty := filepath.Join(root, "empty")
	require.NoError(t, os.MkdirAll(empty, 0o750))
	file := filepath.Join(root, "file")
	mkfile(t, file)

	store := fs.NewStore(fs.NewWalker())

	got, err := store.Resolve(pkg)
	require.NoError(t, err)
	assert.Equal(t, pkg, got)

	for _, path := range []string{filepath.Join(root, "missing"), empty, file} {
		_, err := store.Resolve(path)
		require.Error(t, err, path)
		assert.True(t, errors.Is(err, domain.ErrPathResolution))
		assert.Equal(t, domain.KindPathResolution, domain.KindOf(err))
	}
}

func TestStore_Resolve_PartialArtifacts(t *testing.T) {
	root := t.TempDir()
	pkg := filepath.Join(root, "gcc-arm-none-eabi", "12.3.1")
	mkfile(t, filepath.Join(pkg, "download.lock"))
	mkfile(t, filepath.Join(pkg, "toolchain.tar.xz.part"))
	mkfile(t, filepath.Join(pkg, "extract.tmp"))

	store := fs.NewStore(fs.NewWalker())

	_, err := store.Resolve(pkg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrPathResolution))

	mkfile(t, filepath.Join(pkg, "bin", "arm-none-eabi-gcc"))
	got, err := store.Resolve(pkg)
	require.NoError(t, err)
	assert.Equal(t, pkg, got)
}

func samplePlan() *domain.BuildPlan {
	return &domain.BuildPlan{
		ToolchainFilePath: "/src/build/Release/generators/rab_toolchain.cmake",
		SourceDir:         "/src",
		BuildDir:          "/src/build/Release",
		Settings: domain.TargetSettings{
			OS: domain.OSBaremetal, Arch: domain.ArchCortexM4F, Compiler: domain.CompilerGCC,
			BuildType: domain.BuildTypeRelease, Libc: domain.LibcPicolibc,
		},
		ResolvedDependencies: []domain.ResolvedDependency{{
			Dependency:  domain.Dependency{Name: "cmake", Kind: domain.KindTool},
			Version:     domain.MustParseVersion("3.27.1"),
			InstallPath: "/store/cmake/3.27.1",
		}},
		CacheVariables: map[string]string{"RAB_LIBC": "picolibc", "CMAKE_BUILD_TYPE": "Release"},
		Toolchain:      domain.Toolchain{SystemName: "Generic", CFlags: []string{"-mthumb"}},
	}
}

func TestHasher_Fingerprint(t *testing.T) {
	h := fs.NewHasher()

	first, err := h.Fingerprint(samplePlan())
	require.NoError(t, err)
	assert.Len(t, first, 16)

	second, err := h.Fingerprint(samplePlan())
	require.NoError(t, err)
	assert.Equal(t, first, second)

	changed := samplePlan()
	changed.CacheVariables["RAB_LIBC"] = "newlib"
	third, err := h.Fingerprint(changed)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)

	moved := samplePlan()
	moved.Toolchain.CFlags = nil
	moved.Toolchain.CXXFlags = []string{"-mthumb"}
	fourth, err := h.Fingerprint(moved)
	require.NoError(t, err)
	assert.NotEqual(t, first, fourth)
}
