package ports

import "go.trai.ch/rab/internal/core/domain"

// PackageIndex lists the versions known for each package.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_index.go -destination=mocks/mock_package_index.go -package=mocks
type PackageIndex interface {
	// ListVersions returns every indexed entry for name.
	// It returns domain.ErrUnknownDependency if the index has no entry for name.
	ListVersions(name string) ([]domain.IndexEntry, error)

	// InstallPath returns where the given package build is installed in the package store.
	// It returns domain.ErrPackageNotFound if the triple is not indexed.
	InstallPath(name string, version domain.Version, platform domain.Platform) (string, error)
}

// IndexLoader opens a package index.
type IndexLoader interface {
	Load(path string) (PackageIndex, error)
}
