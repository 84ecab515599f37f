package cmake

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.trai.ch/rab/internal/core/domain"
)

// RenderToolchain formats tc as a CMake toolchain file. Empty fields are left out.
func RenderToolchain(tc domain.Toolchain) string {
	var b strings.Builder
	b.WriteString("# Generated by rab. Do not edit.\n")

	if tc.SystemName != "" {
		set(&b, "CMAKE_SYSTEM_NAME", tc.SystemName)
	}
	if tc.SystemProcessor != "" {
		set(&b, "CMAKE_SYSTEM_PROCESSOR", tc.SystemProcessor)
	}
	if tc.SystemName == "Generic" {
		// A bare-metal linker cannot produce the executables CMake test-compiles by default.
		set(&b, "CMAKE_TRY_COMPILE_TARGET_TYPE", "STATIC_LIBRARY")
	}

	setPath(&b, "CMAKE_C_COMPILER", tc.CCompiler)
	setPath(&b, "CMAKE_CXX_COMPILER", tc.CXXCompiler)
	setPath(&b, "CMAKE_ASM_COMPILER", tc.ASMCompiler)

	if tc.Sysroot != "" {
		setPath(&b, "CMAKE_SYSROOT", tc.Sysroot)
		setPath(&b, "CMAKE_FIND_ROOT_PATH", tc.Sysroot)
		set(&b, "CMAKE_FIND_ROOT_PATH_MODE_PROGRAM", "NEVER")
		set(&b, "CMAKE_FIND_ROOT_PATH_MODE_LIBRARY", "ONLY")
		set(&b, "CMAKE_FIND_ROOT_PATH_MODE_INCLUDE", "ONLY")
	}

	setFlags(&b, "CMAKE_C_FLAGS_INIT", tc.CFlags)
	setFlags(&b, "CMAKE_CXX_FLAGS_INIT", tc.CXXFlags)
	setFlags(&b, "CMAKE_ASM_FLAGS_INIT", tc.CFlags)
	setFlags(&b, "CMAKE_EXE_LINKER_FLAGS_INIT", tc.LDFlags)

	return b.String()
}

func set(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "set(%s %s)\n", name, quote(value))
}

func setPath(b *strings.Builder, name, path string) {
	if path == "" {
		return
	}
	set(b, name, filepath.ToSlash(path))
}

func setFlags(b *strings.Builder, name string, flags []string) {
	if len(flags) == 0 {
		return
	}
	set(b, name, strings.Join(flags, " "))
}

// quote returns s as a CMake quoted argument.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)
	return `"` + r.Replace(s) + `"`
}
