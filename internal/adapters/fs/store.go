package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageStore = (*Store)(nil)

// partialArtifacts are left behind by interrupted downloads and extractions.
// They do not count towards materialization.
var partialArtifacts = []string{"*.tmp", "*.part", "*.partial", "*.lock"}

// Store implements ports.PackageStore over the local file system. A package
// is materialized when its install directory holds at least one file that is
// not a partial artifact.
type Store struct {
	walker *Walker
}

// NewStore creates a new Store.
func NewStore(walker *Walker) *Store {
	return &Store{walker: walker}
}

// Resolve returns the absolute, materialized location of path.
func (s *Store) Resolve(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", notMaterialized(path, err.Error())
	}

	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", notMaterialized(abs, "install path does not exist")
		}
		return "", notMaterialized(abs, err.Error())
	}
	if !info.IsDir() {
		return "", notMaterialized(abs, "install path is not a directory")
	}

	for range s.walker.WalkFiles(abs, partialArtifacts) {
		return abs, nil
	}
	return "", notMaterialized(abs, "install path is empty")
}

func notMaterialized(path, reason string) error {
	return zerr.With(zerr.Wrap(domain.ErrPathResolution, reason), "path", path)
}
