package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
)

var _ ports.PlanHasher = (*Hasher)(nil)

// Hasher fingerprints build plans with XXHash.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes every field of the plan that reaches the build system.
// Fields are written in a fixed order, each followed by a separator.
func (h *Hasher) Fingerprint(plan *domain.BuildPlan) (string, error) {
	hasher := xxhash.New()

	writeField(hasher, plan.SourceDir)
	writeField(hasher, plan.BuildDir)
	writeField(hasher, plan.Generator)
	writeField(hasher, plan.ToolchainFilePath)
	writeField(hasher, plan.Settings.Key())
	writeField(hasher, string(plan.Settings.Compiler))
	writeField(hasher, string(plan.Settings.Libc))
	_, _ = hasher.Write([]byte{0})

	for _, dep := range plan.ResolvedDependencies {
		writeField(hasher, dep.Name)
		writeField(hasher, string(dep.Kind))
		writeField(hasher, dep.Version.String())
		writeField(hasher, dep.Platform.String())
		writeField(hasher, dep.InstallPath)
	}
	_, _ = hasher.Write([]byte{0})

	hashToolchain(hasher, plan.Toolchain)

	for _, k := range plan.SortedCacheKeys() {
		_, _ = hasher.WriteString(k)
		_, _ = hasher.Write([]byte{'='})
		writeField(hasher, plan.CacheVariables[k])
	}
	_, _ = hasher.Write([]byte{0})

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

func hashToolchain(hasher *xxhash.Digest, tc domain.Toolchain) {
	writeField(hasher, tc.SystemName)
	writeField(hasher, tc.SystemProcessor)
	writeField(hasher, tc.CCompiler)
	writeField(hasher, tc.CXXCompiler)
	writeField(hasher, tc.ASMCompiler)
	writeField(hasher, tc.Sysroot)
	for _, flags := range [][]string{tc.CFlags, tc.CXXFlags, tc.LDFlags} {
		for _, f := range flags {
			writeField(hasher, f)
		}
		_, _ = hasher.Write([]byte{0})
	}
}

func writeField(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0})
}
