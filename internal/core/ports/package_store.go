package ports

// PackageStore maps install paths to materialized package directories.
//
//go:generate go run go.uber.org/mock/mockgen -source=package_store.go -destination=mocks/mock_package_store.go -package=mocks
type PackageStore interface {
	// Resolve returns the absolute path of a materialized package.
	// It returns domain.ErrPathResolution if nothing is materialized at path.
	Resolve(path string) (string, error)
}
