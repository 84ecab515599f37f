package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/rab/internal/app"
	"go.trai.ch/rab/internal/core/domain"
)

// inputFlags are the declaration, index and plan flags shared by every
// command that reads a declaration.
type inputFlags struct {
	declaration string
	index       string
	sourceDir   string
	buildDir    string
	generator   string
	overrides   domain.RawSettings
}

func (f *inputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.declaration, "declaration", "d", domain.DeclarationFileName, "Path to the dependency declaration")
	flags.StringVar(&f.index, "index", domain.DefaultIndexPath(), "Path to the package index")
	flags.StringVar(&f.overrides.OS, "target-os", "", "Override the target operating system")
	flags.StringVar(&f.overrides.Arch, "target-arch", "", "Override the target architecture")
	flags.StringVar(&f.overrides.BuildType, "build-type", "", "Override the build type (debug, release, minsizerel, relwithdebinfo)")
	flags.StringVar(&f.overrides.Libc, "libc", "", "Override the C library")
	flags.StringVar(&f.overrides.Compiler, "compiler", "", "Override the compiler family (gcc, clang)")
	flags.StringVar(&f.sourceDir, "source-dir", ".", "CMake source directory")
	flags.StringVar(&f.buildDir, "build-dir", "", "CMake build directory (default build/<build type> under the source directory)")
	flags.StringVarP(&f.generator, "generator", "G", "", "CMake generator")
}

func (f *inputFlags) options() app.Options {
	return app.Options{
		DeclarationPath: f.declaration,
		IndexPath:       f.index,
		Overrides:       f.overrides,
		SourceDir:       f.sourceDir,
		BuildDir:        f.buildDir,
		Generator:       f.generator,
	}
}
