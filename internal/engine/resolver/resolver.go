// Package resolver pins declared dependencies to indexed versions.
package resolver

import (
	"cmp"
	"slices"
	"strings"

	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolve selects, for each dependency in order, the highest indexed version
// satisfying its constraint. The first failure aborts resolution.
func Resolve(deps []domain.Dependency, settings domain.TargetSettings, index ports.PackageIndex) ([]domain.ResolvedDependency, error) {
	target := settings.Platform()
	out := make([]domain.ResolvedDependency, 0, len(deps))
	for _, dep := range deps {
		resolved, err := resolveOne(dep, target, index)
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}

func resolveOne(dep domain.Dependency, target domain.Platform, index ports.PackageIndex) (domain.ResolvedDependency, error) {
	entries, err := index.ListVersions(dep.Name)
	if err != nil {
		return domain.ResolvedDependency{}, err
	}
	if len(entries) == 0 {
		return domain.ResolvedDependency{}, zerr.With(zerr.Wrap(domain.ErrUnknownDependency, dep.Name), "dependency", dep.Name)
	}

	candidates := make([]domain.IndexEntry, 0, len(entries))
	for _, e := range entries {
		if dep.Constraint.Satisfies(e.Version) {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		return domain.ResolvedDependency{}, unsatisfiable(dep, entries)
	}

	best := slices.MinFunc(candidates, func(a, b domain.IndexEntry) int {
		return rank(a, b, target)
	})

	path, err := index.InstallPath(dep.Name, best.Version, best.Platform)
	if err != nil {
		return domain.ResolvedDependency{}, err
	}
	return domain.ResolvedDependency{
		Dependency:  dep,
		Version:     best.Version,
		Platform:    best.Platform,
		InstallPath: path,
	}, nil
}

// rank orders a before b when a is the better choice: higher version, then
// the exact target platform, then a platform-agnostic entry, then by name.
func rank(a, b domain.IndexEntry, target domain.Platform) int {
	if c := b.Version.Compare(a.Version); c != 0 {
		return c
	}
	if c := cmp.Compare(platformClass(a.Platform, target), platformClass(b.Platform, target)); c != 0 {
		return c
	}
	return cmp.Compare(a.Platform.String(), b.Platform.String())
}

func platformClass(p, target domain.Platform) int {
	switch {
	case p == target:
		return 0
	case p.IsAny():
		return 1
	default:
		return 2
	}
}

func unsatisfiable(dep domain.Dependency, entries []domain.IndexEntry) error {
	versions := make([]domain.Version, 0, len(entries))
	for _, e := range entries {
		versions = append(versions, e.Version)
	}
	slices.SortFunc(versions, func(a, b domain.Version) int { return a.Compare(b) })
	versions = slices.CompactFunc(versions, func(a, b domain.Version) bool { return a.Compare(b) == 0 })

	available := make([]string, 0, len(versions))
	for _, v := range versions {
		available = append(available, v.String())
	}

	msg := "no version of " + dep.Name + " satisfies " + dep.Constraint.String() + " (available: " + strings.Join(available, ", ") + ")"
	err := zerr.With(zerr.Wrap(domain.ErrUnsatisfiableConstraint, msg), "dependency", dep.Name)
	err = zerr.With(err, "constraint", dep.Constraint.String())
	return zerr.With(err, "available", strings.Join(available, ","))
}
