// Package parser validates a raw dependency declaration.
package parser

import (
	"slices"
	"strconv"

	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parse validates raw with overrides applied on top of its settings. Tool
// dependencies come first, then libraries, each in declaration order.
func Parse(raw *domain.RawDeclaration, overrides domain.RawSettings) (*domain.Declaration, error) {
	entries := slices.Clone(raw.Entries)
	slices.SortStableFunc(entries, func(a, b domain.RawEntry) int {
		return kindRank(a.Kind) - kindRank(b.Kind)
	})

	// Names are checked across every entry before any constraint is parsed.
	seen := make(map[string]domain.RawEntry, len(entries))
	for _, entry := range entries {
		if first, ok := seen[entry.Name]; ok {
			err := zerr.With(zerr.Wrap(domain.ErrDuplicateDependency, entry.Name+" is declared more than once"), "dependency", entry.Name)
			err = zerr.With(err, "first_kind", string(first.Kind))
			return nil, withLine(err, entry.Line)
		}
		seen[entry.Name] = entry
	}

	deps := make([]domain.Dependency, 0, len(entries))
	for _, entry := range entries {
		c, err := domain.ParseConstraint(entry.Constraint)
		if err != nil {
			return nil, withLine(zerr.With(err, "dependency", entry.Name), entry.Line)
		}
		deps = append(deps, domain.Dependency{Name: entry.Name, Constraint: c, Kind: entry.Kind})
	}

	settings, err := domain.ParseSettings(raw.Settings.Override(overrides))
	if err != nil {
		return nil, err
	}

	if err := checkRef("toolchain", raw.Toolchain, domain.KindTool, seen); err != nil {
		return nil, err
	}
	if err := checkRef("sysroot", raw.Sysroot, domain.KindLibrary, seen); err != nil {
		return nil, err
	}

	return &domain.Declaration{
		Dependencies: deps,
		Settings:     settings,
		Toolchain:    raw.Toolchain,
		Sysroot:      raw.Sysroot,
		Flags:        raw.Flags,
	}, nil
}

func kindRank(k domain.DependencyKind) int {
	if k == domain.KindTool {
		return 0
	}
	return 1
}

func checkRef(field, name string, want domain.DependencyKind, seen map[string]domain.RawEntry) error {
	if name == "" {
		return nil
	}
	entry, ok := seen[name]
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidToolchainRef, field+" names undeclared dependency "+name), "field", field)
		return zerr.With(err, "dependency", name)
	}
	if entry.Kind != want {
		err := zerr.With(zerr.Wrap(domain.ErrInvalidToolchainRef, field+" must name a "+string(want)+" dependency"), "field", field)
		return zerr.With(err, "dependency", name)
	}
	return nil
}

func withLine(err error, line int) error {
	if line == 0 {
		return err
	}
	return zerr.With(err, "line", strconv.Itoa(line))
}
