package planner

import (
	"path/filepath"
	"slices"

	"go.trai.ch/rab/internal/core/domain"
)

// crossPrefix is the GNU triplet prefix of bare-metal ARM binaries.
const crossPrefix = "arm-none-eabi-"

var systemNames = map[domain.OS]string{
	domain.OSBaremetal: "Generic",
	domain.OSLinux:     "Linux",
	domain.OSMacOS:     "Darwin",
	domain.OSWindows:   "Windows",
}

var archFlags = map[domain.Arch][]string{
	domain.ArchCortexM0:     {"-mcpu=cortex-m0", "-mthumb", "-mfloat-abi=soft"},
	domain.ArchCortexM0Plus: {"-mcpu=cortex-m0plus", "-mthumb", "-mfloat-abi=soft"},
	domain.ArchCortexM3:     {"-mcpu=cortex-m3", "-mthumb", "-mfloat-abi=soft"},
	domain.ArchCortexM4:     {"-mcpu=cortex-m4", "-mthumb", "-mfloat-abi=soft"},
	domain.ArchCortexM4F:    {"-mcpu=cortex-m4", "-mthumb", "-mfloat-abi=hard", "-mfpu=fpv4-sp-d16"},
	domain.ArchCortexM7:     {"-mcpu=cortex-m7", "-mthumb", "-mfloat-abi=soft"},
	domain.ArchCortexM7F:    {"-mcpu=cortex-m7", "-mthumb", "-mfloat-abi=hard", "-mfpu=fpv5-d16"},
	domain.ArchCortexM33:    {"-mcpu=cortex-m33", "-mthumb", "-mfloat-abi=soft"},
	domain.ArchARMv8:        {"-march=armv8-a"},
}

// SystemProcessor returns the CMAKE_SYSTEM_PROCESSOR value for arch.
func SystemProcessor(arch domain.Arch) string {
	switch {
	case arch.IsCortexM():
		return "arm"
	case arch == domain.ArchARMv8:
		return "aarch64"
	default:
		return string(arch)
	}
}

// ArchFlags returns the code generation flags for arch.
func ArchFlags(arch domain.Arch) []string {
	return slices.Clone(archFlags[arch])
}

// Toolchain derives the toolchain for decl from the resolved dependencies.
// Without a toolchain reference the host compiler is used and no compiler
// paths are set.
func Toolchain(decl *domain.Declaration, deps []domain.ResolvedDependency) domain.Toolchain {
	s := decl.Settings
	tc := domain.Toolchain{
		SystemName:      systemNames[s.OS],
		SystemProcessor: SystemProcessor(s.Arch),
	}

	if dep, ok := find(deps, decl.Toolchain); ok {
		bin := filepath.Join(dep.InstallPath, "bin")
		switch s.Compiler {
		case domain.CompilerClang:
			tc.CCompiler = filepath.Join(bin, "clang")
			tc.CXXCompiler = filepath.Join(bin, "clang++")
		default:
			prefix := ""
			if s.Arch.IsCortexM() {
				prefix = crossPrefix
			}
			tc.CCompiler = filepath.Join(bin, prefix+"gcc")
			tc.CXXCompiler = filepath.Join(bin, prefix+"g++")
		}
		tc.ASMCompiler = tc.CCompiler
	}
	if dep, ok := find(deps, decl.Sysroot); ok {
		tc.Sysroot = dep.InstallPath
	}

	common := ArchFlags(s.Arch)
	if s.Compiler == domain.CompilerClang && s.Arch.IsCortexM() {
		common = append([]string{"--target=arm-none-eabi"}, common...)
	}

	tc.CFlags = append(slices.Clone(common), decl.Flags.C...)
	tc.CXXFlags = append(slices.Clone(common), decl.Flags.CXX...)
	tc.LDFlags = append(slices.Clone(common), linkFlags(s)...)
	tc.LDFlags = append(tc.LDFlags, decl.Flags.LD...)
	return tc
}

func linkFlags(s domain.TargetSettings) []string {
	if s.OS != domain.OSBaremetal {
		return nil
	}
	switch {
	case s.Libc == domain.LibcNewlibNano:
		return []string{"--specs=nano.specs"}
	case s.Libc == domain.LibcPicolibc && s.Compiler == domain.CompilerGCC:
		return []string{"--specs=picolibc.specs"}
	default:
		return nil
	}
}

func find(deps []domain.ResolvedDependency, name string) (domain.ResolvedDependency, bool) {
	if name == "" {
		return domain.ResolvedDependency{}, false
	}
	for _, dep := range deps {
		if dep.Name == name {
			return dep, true
		}
	}
	return domain.ResolvedDependency{}, false
}
