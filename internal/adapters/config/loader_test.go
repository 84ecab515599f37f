package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rab/internal/adapters/config"
	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const fullDeclaration = `
version: "1"
tool_requires:
  cmake: "3.27.1"
  libhal-cmake-util: "[^4.0.0]"
  arm-gnu-toolchain: "12.3.0"
requires:
  prebuilt-picolibc: "12.3.0"
toolchain: arm-gnu-toolchain
sysroot: prebuilt-picolibc
settings:
  os: baremetal
  arch: cortex-m4f
  compiler: gcc
  build_type: release
  libc: picolibc
flags:
  c: ["-ffunction-sections"]
  cxx: ["-fno-exceptions"]
  ld: ["-Wl,--gc-sections"]
`

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	loader := config.NewLoader(mockLogger)

	decl, err := loader.Load(writeFile(t, fullDeclaration))
	require.NoError(t, err)

	require.Len(t, decl.Entries, 4)
	assert.Equal(t, domain.RawEntry{Name: "cmake", Constraint: "3.27.1", Kind: domain.KindTool, Line: 4}, decl.Entries[0])
	assert.Equal(t, "libhal-cmake-util", decl.Entries[1].Name)
	assert.Equal(t, "[^4.0.0]", decl.Entries[1].Constraint)
	assert.Equal(t, "arm-gnu-toolchain", decl.Entries[2].Name)
	assert.Equal(t, domain.RawEntry{Name: "prebuilt-picolibc", Constraint: "12.3.0", Kind: domain.KindLibrary, Line: 8}, decl.Entries[3])

	assert.Equal(t, "arm-gnu-toolchain", decl.Toolchain)
	assert.Equal(t, "prebuilt-picolibc", decl.Sysroot)
	assert.Equal(t, domain.RawSettings{
		OS: "baremetal", Arch: "cortex-m4f", Compiler: "gcc", BuildType: "release", Libc: "picolibc",
	}, decl.Settings)
	assert.Equal(t, []string{"-ffunction-sections"}, decl.Flags.C)
	assert.Equal(t, []string{"-fno-exceptions"}, decl.Flags.CXX)
	assert.Equal(t, []string{"-Wl,--gc-sections"}, decl.Flags.LD)
}

func TestLoader_Load_KeepsDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	decl, err := loader.Load(writeFile(t, `
tool_requires:
  cmake: "3.27.1"
  cmake: "3.26.0"
requires:
  cmake: "1.0.0"
`))
	require.NoError(t, err)

	require.Len(t, decl.Entries, 3)
	for _, e := range decl.Entries {
		assert.Equal(t, "cmake", e.Name)
	}
	assert.Equal(t, "3.26.0", decl.Entries[1].Constraint)
	assert.Equal(t, domain.KindLibrary, decl.Entries[2].Kind)
}

func TestLoader_Load_EmptyWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	decl, err := config.NewLoader(mockLogger).Load(writeFile(t, "version: \"1\"\ntool_requires:\n"))
	require.NoError(t, err)
	assert.Empty(t, decl.Entries)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := config.NewLoader(mocks.NewMockLogger(ctrl)).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDeclarationReadFailed))
	assert.Equal(t, domain.KindInvalidDeclaration, domain.KindOf(err))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		section string
	}{
		{"invalid yaml", "tool_requires: [", ""},
		{"unsupported version", "version: \"2\"\n", ""},
		{"sequence instead of mapping", "tool_requires:\n  - cmake\n", "tool_requires"},
		{"nested constraint", "requires:\n  picolibc:\n    version: 1.0.0\n", "requires"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Decode([]byte(tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrDeclarationParseFailed), "got %v", err)

			if tt.section != "" {
				var zErr *zerr.Error
				require.True(t, errors.As(err, &zErr))
				assert.Equal(t, tt.section, zErr.Metadata()["section"])
			}
		})
	}
}
