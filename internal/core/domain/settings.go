package domain

import (
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// OS is the target operating system.
type OS string

const (
	OSBaremetal OS = "baremetal"
	OSLinux     OS = "linux"
	OSMacOS     OS = "macos"
	OSWindows   OS = "windows"
)

// Arch is the target processor architecture.
type Arch string

const (
	ArchCortexM0     Arch = "cortex-m0"
	ArchCortexM0Plus Arch = "cortex-m0plus"
	ArchCortexM3     Arch = "cortex-m3"
	ArchCortexM4     Arch = "cortex-m4"
	ArchCortexM4F    Arch = "cortex-m4f"
	ArchCortexM7     Arch = "cortex-m7"
	ArchCortexM7F    Arch = "cortex-m7f"
	ArchCortexM33    Arch = "cortex-m33"
	ArchX86_64       Arch = "x86_64"
	ArchARMv8        Arch = "armv8"
)

// IsCortexM reports whether a is an ARM Cortex-M core.
func (a Arch) IsCortexM() bool {
	return strings.HasPrefix(string(a), "cortex-m")
}

// Compiler is the compiler family.
type Compiler string

const (
	CompilerGCC   Compiler = "gcc"
	CompilerClang Compiler = "clang"
)

// BuildType is the build configuration.
type BuildType string

const (
	BuildTypeDebug          BuildType = "debug"
	BuildTypeRelease        BuildType = "release"
	BuildTypeMinSizeRel     BuildType = "minsizerel"
	BuildTypeRelWithDebInfo BuildType = "relwithdebinfo"
)

// CMakeName returns the CMAKE_BUILD_TYPE spelling of b.
func (b BuildType) CMakeName() string {
	switch b {
	case BuildTypeDebug:
		return "Debug"
	case BuildTypeMinSizeRel:
		return "MinSizeRel"
	case BuildTypeRelWithDebInfo:
		return "RelWithDebInfo"
	default:
		return "Release"
	}
}

// Libc is the C library the target links against.
type Libc string

const (
	LibcPicolibc   Libc = "picolibc"
	LibcNewlib     Libc = "newlib"
	LibcNewlibNano Libc = "newlib-nano"
	LibcGlibc      Libc = "glibc"
	LibcMusl       Libc = "musl"
)

var (
	allowedOS        = []OS{OSBaremetal, OSLinux, OSMacOS, OSWindows}
	allowedArch      = []Arch{ArchCortexM0, ArchCortexM0Plus, ArchCortexM3, ArchCortexM4, ArchCortexM4F, ArchCortexM7, ArchCortexM7F, ArchCortexM33, ArchX86_64, ArchARMv8}
	allowedCompiler  = []Compiler{CompilerGCC, CompilerClang}
	allowedBuildType = []BuildType{BuildTypeDebug, BuildTypeRelease, BuildTypeMinSizeRel, BuildTypeRelWithDebInfo}
	allowedLibc      = []Libc{LibcPicolibc, LibcNewlib, LibcNewlibNano, LibcGlibc, LibcMusl}
)

// TargetSettings describes the target a build is configured for.
type TargetSettings struct {
	OS        OS
	Arch      Arch
	Compiler  Compiler
	BuildType BuildType
	Libc      Libc
}

// RawSettings holds target settings as undecoded strings.
type RawSettings struct {
	OS        string
	Arch      string
	Compiler  string
	BuildType string
	Libc      string
}

// Override returns s with every non-empty field of o applied on top.
func (s RawSettings) Override(o RawSettings) RawSettings {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return RawSettings{
		OS:        pick(s.OS, o.OS),
		Arch:      pick(s.Arch, o.Arch),
		Compiler:  pick(s.Compiler, o.Compiler),
		BuildType: pick(s.BuildType, o.BuildType),
		Libc:      pick(s.Libc, o.Libc),
	}
}

// ParseSettings validates every setting against its enumeration. Values are
// compared case-insensitively except libc, which must match exactly.
func ParseSettings(raw RawSettings) (TargetSettings, error) {
	osName, err := parseEnum("os", raw.OS, allowedOS, true)
	if err != nil {
		return TargetSettings{}, err
	}
	arch, err := parseEnum("arch", raw.Arch, allowedArch, true)
	if err != nil {
		return TargetSettings{}, err
	}
	compiler, err := parseEnum("compiler", raw.Compiler, allowedCompiler, true)
	if err != nil {
		return TargetSettings{}, err
	}
	buildType, err := parseEnum("build_type", raw.BuildType, allowedBuildType, true)
	if err != nil {
		return TargetSettings{}, err
	}
	libc, err := parseEnum("libc", raw.Libc, allowedLibc, false)
	if err != nil {
		return TargetSettings{}, err
	}
	return TargetSettings{OS: osName, Arch: arch, Compiler: compiler, BuildType: buildType, Libc: libc}, nil
}

func parseEnum[T ~string](setting, value string, allowed []T, fold bool) (T, error) {
	var zero T
	if value == "" {
		return zero, zerr.With(zerr.Wrap(ErrInvalidSetting, "missing setting "+setting), "setting", setting)
	}
	candidate := value
	if fold {
		candidate = strings.ToLower(value)
	}
	if !slices.Contains(allowed, T(candidate)) {
		err := zerr.With(zerr.Wrap(ErrInvalidSetting, "unsupported "+setting+" "+value), "setting", setting)
		return zero, zerr.With(err, "value", value)
	}
	return T(candidate), nil
}

// Platform returns the os/arch pair of the target.
func (s TargetSettings) Platform() Platform {
	return Platform{OS: s.OS, Arch: s.Arch}
}

// Key identifies the target in build history.
func (s TargetSettings) Key() string {
	return string(s.OS) + "/" + string(s.Arch) + "/" + string(s.BuildType)
}

// Platform qualifies a package index entry. The zero value matches any target.
type Platform struct {
	OS   OS
	Arch Arch
}

// IsAny reports whether p carries no platform qualifier.
func (p Platform) IsAny() bool {
	return p == Platform{}
}

func (p Platform) String() string {
	if p.IsAny() {
		return "any"
	}
	return string(p.OS) + "-" + string(p.Arch)
}
