package domain

import "path/filepath"

const (
	// RabDirName is the name of the per-project metadata directory.
	RabDirName = ".rab"

	// DeclarationFileName is the default declaration file.
	DeclarationFileName = "rab.yaml"

	// IndexFileName is the default package index file inside RabDirName.
	IndexFileName = "index.yaml"

	// HistoryFileName is the build history file inside RabDirName.
	HistoryFileName = "history.json"

	// BuildDirName is the root of per-build-type build directories.
	BuildDirName = "build"

	// GeneratorsDirName holds generated files inside a build directory.
	GeneratorsDirName = "generators"

	// ToolchainFileName is the generated CMake toolchain file.
	ToolchainFileName = "rab_toolchain.cmake"

	// HistoryLimit is the number of records kept per target.
	HistoryLimit = 20

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultIndexPath returns the default package index path.
func DefaultIndexPath() string {
	return filepath.Join(RabDirName, IndexFileName)
}

// DefaultHistoryPath returns the default build history path.
func DefaultHistoryPath() string {
	return filepath.Join(RabDirName, HistoryFileName)
}

// DefaultBuildDir returns build/<BuildType> under sourceDir, the same layout as
// Conan's cmake_layout.
func DefaultBuildDir(sourceDir string, bt BuildType) string {
	return filepath.Join(sourceDir, BuildDirName, bt.CMakeName())
}

// ToolchainFilePath returns the toolchain file location inside buildDir.
func ToolchainFilePath(buildDir string) string {
	return filepath.Join(buildDir, GeneratorsDirName, ToolchainFileName)
}
