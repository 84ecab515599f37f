// Package registry implements the package index backed by a local index file.
package registry

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/zerr"
)

// Package is one indexed build of a package.
type Package struct {
	Version  domain.Version
	Platform domain.Platform
	// Path is relative to the index root unless absolute.
	Path string
}

// Index implements ports.PackageIndex over an in-memory package table.
type Index struct {
	root     string
	packages map[string][]Package
}

// NewIndex creates an empty index whose relative paths resolve against root.
func NewIndex(root string) *Index {
	return &Index{
		root:     root,
		packages: make(map[string][]Package),
	}
}

// Add registers a build of name. A package may list the same version once per platform.
func (i *Index) Add(name string, pkg Package) error {
	for _, existing := range i.packages[name] {
		if existing.Version.Compare(pkg.Version) == 0 && existing.Platform == pkg.Platform {
			err := zerr.With(zerr.Wrap(domain.ErrIndexParseFailed, "duplicate index entry"), "package", name)
			err = zerr.With(err, "version", pkg.Version.String())
			return zerr.With(err, "platform", pkg.Platform.String())
		}
	}
	if pkg.Path == "" {
		pkg.Path = defaultPath(name, pkg)
	}
	i.packages[name] = append(i.packages[name], pkg)
	return nil
}

// defaultPath lays packages out as <name>/<version>[-<os>-<arch>].
func defaultPath(name string, pkg Package) string {
	dir := pkg.Version.String()
	if !pkg.Platform.IsAny() {
		dir += "-" + pkg.Platform.String()
	}
	return filepath.Join(name, dir)
}

// Names returns the indexed package names in lexical order.
func (i *Index) Names() []string {
	names := make([]string, 0, len(i.packages))
	for name := range i.packages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ListVersions returns every entry indexed for name, in index order.
func (i *Index) ListVersions(name string) ([]domain.IndexEntry, error) {
	pkgs, ok := i.packages[name]
	if !ok || len(pkgs) == 0 {
		err := zerr.Wrap(domain.ErrUnknownDependency, "no index entry for "+name)
		return nil, zerr.With(err, "dependency", name)
	}
	entries := make([]domain.IndexEntry, len(pkgs))
	for idx, pkg := range pkgs {
		entries[idx] = domain.IndexEntry{Version: pkg.Version, Platform: pkg.Platform}
	}
	return entries, nil
}

// InstallPath returns the package store location of a build.
func (i *Index) InstallPath(name string, version domain.Version, platform domain.Platform) (string, error) {
	for _, pkg := range i.packages[name] {
		if pkg.Version.Compare(version) != 0 || pkg.Platform != platform {
			continue
		}
		if filepath.IsAbs(pkg.Path) || i.root == "" {
			return filepath.Clean(pkg.Path), nil
		}
		return filepath.Join(i.root, pkg.Path), nil
	}
	err := zerr.With(zerr.Wrap(domain.ErrPackageNotFound, name+"@"+version.String()), "package", name)
	err = zerr.With(err, "version", version.String())
	return "", zerr.With(err, "platform", platform.String())
}

func parsePlatform(osName, arch string) domain.Platform {
	return domain.Platform{
		OS:   domain.OS(strings.ToLower(osName)),
		Arch: domain.Arch(strings.ToLower(arch)),
	}
}

// Ensure Index satisfies the interface.
var _ ports.PackageIndex = (*Index)(nil)
