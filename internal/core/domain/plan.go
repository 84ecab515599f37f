package domain

import (
	"maps"
	"slices"
)

// Cache variable names written into every plan.
const (
	CacheVarLibc       = "RAB_LIBC"
	CacheVarTargetOS   = "RAB_TARGET_OS"
	CacheVarTargetArch = "RAB_TARGET_ARCH"
	CacheVarCompiler   = "RAB_COMPILER"
	CacheVarBuildType  = "CMAKE_BUILD_TYPE"
	CacheVarPrefixPath = "CMAKE_PREFIX_PATH"
	CacheVarProgram    = "CMAKE_PROGRAM_PATH"
)

// Toolchain is the compiler configuration rendered into the toolchain file.
type Toolchain struct {
	SystemName      string
	SystemProcessor string
	CCompiler       string
	CXXCompiler     string
	ASMCompiler     string
	Sysroot         string
	CFlags          []string
	CXXFlags        []string
	LDFlags         []string
}

// BuildPlan is everything the build system needs for one invocation. It is
// built once, consumed once by the invoker and then discarded.
type BuildPlan struct {
	ToolchainFilePath    string
	ResolvedDependencies []ResolvedDependency
	CacheVariables       map[string]string

	SourceDir string
	BuildDir  string
	Generator string
	Settings  TargetSettings
	Toolchain Toolchain

	// Fingerprint is a content hash of the plan, set by the planner.
	Fingerprint string
}

// SortedCacheKeys returns the cache variable names in lexical order.
func (p *BuildPlan) SortedCacheKeys() []string {
	return slices.Sorted(maps.Keys(p.CacheVariables))
}
