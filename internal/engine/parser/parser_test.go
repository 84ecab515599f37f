package parser_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/engine/parser"
	"go.trai.ch/zerr"
)

func validSettings() domain.RawSettings {
	return domain.RawSettings{
		OS:        "baremetal",
		Arch:      "cortex-m4f",
		Compiler:  "gcc",
		BuildType: "release",
		Libc:      "picolibc",
	}
}

func TestParse_OrdersToolsFirst(t *testing.T) {
	raw := &domain.RawDeclaration{
		Entries: []domain.RawEntry{
			{Name: "picolibc", Constraint: "1.8.6", Kind: domain.KindLibrary},
			{Name: "cmake", Constraint: "3.27.1", Kind: domain.KindTool},
			{Name: "libhal-util", Constraint: "[^4.0.0]", Kind: domain.KindLibrary},
			{Name: "arm-gnu-toolchain", Constraint: "12.3.0", Kind: domain.KindTool},
		},
		Settings:  validSettings(),
		Toolchain: "arm-gnu-toolchain",
		Sysroot:   "picolibc",
	}

	decl, err := parser.Parse(raw, domain.RawSettings{})
	require.NoError(t, err)

	names := make([]string, 0, len(decl.Dependencies))
	for _, d := range decl.Dependencies {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"cmake", "arm-gnu-toolchain", "picolibc", "libhal-util"}, names)
	assert.Equal(t, "[^4.0.0]", decl.Dependencies[3].Constraint.String())
	assert.Equal(t, domain.ArchCortexM4F, decl.Settings.Arch)
	assert.Equal(t, "arm-gnu-toolchain", decl.Toolchain)
}

func TestParse_Duplicate(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.RawEntry
	}{
		{
			name: "within section",
			entries: []domain.RawEntry{
				{Name: "cmake", Constraint: "3.27.1", Kind: domain.KindTool},
				{Name: "cmake", Constraint: "3.26.0", Kind: domain.KindTool, Line: 4},
			},
		},
		{
			name: "across sections",
			entries: []domain.RawEntry{
				{Name: "cmake", Constraint: "3.27.1", Kind: domain.KindTool},
				{Name: "cmake", Constraint: "3.27.1", Kind: domain.KindLibrary, Line: 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(&domain.RawDeclaration{Entries: tt.entries, Settings: validSettings()}, domain.RawSettings{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrDuplicateDependency))
			assert.Equal(t, domain.KindDuplicateDependency, domain.KindOf(err))

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, "cmake", zErr.Metadata()["dependency"])
		})
	}
}

func TestParse_DuplicateBeforeMalformed(t *testing.T) {
	raw := &domain.RawDeclaration{
		Entries: []domain.RawEntry{
			{Name: "a", Constraint: "1.0.0", Kind: domain.KindTool},
			{Name: "a", Constraint: "latest", Kind: domain.KindTool},
		},
		Settings: validSettings(),
	}

	_, err := parser.Parse(raw, domain.RawSettings{})
	assert.True(t, errors.Is(err, domain.ErrDuplicateDependency))
}

func TestParse_DuplicateAfterMalformedEntry(t *testing.T) {
	raw := &domain.RawDeclaration{
		Entries: []domain.RawEntry{
			{Name: "b", Constraint: "latest", Kind: domain.KindTool, Line: 1},
			{Name: "a", Constraint: "1.0.0", Kind: domain.KindTool, Line: 2},
			{Name: "a", Constraint: "1.0.0", Kind: domain.KindTool, Line: 3},
		},
		Settings: validSettings(),
	}

	_, err := parser.Parse(raw, domain.RawSettings{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateDependency))
	assert.Equal(t, domain.KindDuplicateDependency, domain.KindOf(err))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "a", zErr.Metadata()["dependency"])
}

func TestParse_MalformedConstraint(t *testing.T) {
	raw := &domain.RawDeclaration{
		Entries:  []domain.RawEntry{{Name: "compiler", Constraint: "12.3", Kind: domain.KindTool, Line: 3}},
		Settings: validSettings(),
	}

	_, err := parser.Parse(raw, domain.RawSettings{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedConstraint))
	assert.Equal(t, domain.ExitParse, domain.KindOf(err).ExitCode())

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "compiler", zErr.Metadata()["dependency"])
	assert.Equal(t, "3", zErr.Metadata()["line"])
}

func TestParse_Settings(t *testing.T) {
	t.Run("override applied before validation", func(t *testing.T) {
		raw := &domain.RawDeclaration{Settings: domain.RawSettings{OS: "baremetal", Compiler: "gcc", Libc: "picolibc"}}

		decl, err := parser.Parse(raw, domain.RawSettings{Arch: "cortex-m3", BuildType: "debug"})
		require.NoError(t, err)
		assert.Equal(t, domain.ArchCortexM3, decl.Settings.Arch)
		assert.Equal(t, domain.BuildTypeDebug, decl.Settings.BuildType)
	})

	t.Run("invalid", func(t *testing.T) {
		raw := &domain.RawDeclaration{Settings: validSettings()}

		_, err := parser.Parse(raw, domain.RawSettings{Arch: "riscv"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidSetting))
		assert.Equal(t, domain.KindInvalidDeclaration, domain.KindOf(err))
	})
}

func TestParse_ToolchainRefs(t *testing.T) {
	entries := []domain.RawEntry{
		{Name: "gcc", Constraint: "12.3.0", Kind: domain.KindTool},
		{Name: "picolibc", Constraint: "1.8.6", Kind: domain.KindLibrary},
	}

	tests := []struct {
		name      string
		toolchain string
		sysroot   string
		field     string
	}{
		{"undeclared toolchain", "clang", "", "toolchain"},
		{"toolchain is a library", "picolibc", "", "toolchain"},
		{"sysroot is a tool", "gcc", "gcc", "sysroot"},
		{"undeclared sysroot", "gcc", "newlib", "sysroot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := &domain.RawDeclaration{Entries: entries, Settings: validSettings(), Toolchain: tt.toolchain, Sysroot: tt.sysroot}

			_, err := parser.Parse(raw, domain.RawSettings{})
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidToolchainRef))

			var zErr *zerr.Error
			require.True(t, errors.As(err, &zErr))
			assert.Equal(t, tt.field, zErr.Metadata()["field"])
		})
	}
}
