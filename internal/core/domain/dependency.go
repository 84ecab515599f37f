package domain

// DependencyKind tells whether a dependency runs on the build host or links into the target.
type DependencyKind string

const (
	// KindTool is a build requirement (cmake, cross-compiler).
	KindTool DependencyKind = "tool"
	// KindLibrary is a target requirement (libc, headers).
	KindLibrary DependencyKind = "library"
)

// Dependency is a declared requirement. It is immutable once parsed.
type Dependency struct {
	Name       string
	Constraint Constraint
	Kind       DependencyKind
}

// IndexEntry is one available version of a package in the package index.
type IndexEntry struct {
	Version  Version
	Platform Platform
}

// ResolvedDependency pins a Dependency to a concrete indexed version.
type ResolvedDependency struct {
	Dependency
	Version     Version
	Platform    Platform
	InstallPath string
}

// String formats the dependency as name@version.
func (r ResolvedDependency) String() string {
	return r.Name + "@" + r.Version.String()
}

// RawEntry is a dependency line as decoded from the declaration file.
type RawEntry struct {
	Name       string
	Constraint string
	Kind       DependencyKind
	// Line is the 1-based source line, 0 when unknown.
	Line int
}

// Flags are extra compiler and linker flags appended to the toolchain.
type Flags struct {
	C   []string
	CXX []string
	LD  []string
}

// RawDeclaration is the undecoded content of a declaration file. Entries keep
// file order and may contain duplicates.
type RawDeclaration struct {
	Entries   []RawEntry
	Settings  RawSettings
	Toolchain string
	Sysroot   string
	Flags     Flags
}

// Declaration is a validated dependency declaration.
type Declaration struct {
	Dependencies []Dependency
	Settings     TargetSettings
	// Toolchain names the tool dependency providing the compiler, empty for the host compiler.
	Toolchain string
	// Sysroot names the library dependency used as CMAKE_SYSROOT, empty for none.
	Sysroot string
	Flags   Flags
}
