// Package config provides the declaration file loader for rab.
package config

import (
	"os"
	"strconv"

	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.DeclarationLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads and decodes the declaration file at path.
func (l *Loader) Load(path string) (*domain.RawDeclaration, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDeclarationReadFailed, err.Error()), "path", path)
	}

	decl, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if len(decl.Entries) == 0 {
		l.logger.Warn("declaration " + path + " has no requirements")
	}
	return decl, nil
}

// Decode parses declaration file content.
func Decode(data []byte) (*domain.RawDeclaration, error) {
	var file Rabfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(domain.ErrDeclarationParseFailed, err.Error())
	}

	if file.Version != "" && file.Version != schemaVersion {
		err := zerr.Wrap(domain.ErrDeclarationParseFailed, "unsupported declaration version "+file.Version)
		return nil, zerr.With(err, "version", file.Version)
	}

	tools, err := decodeRequirements("tool_requires", &file.ToolRequires, domain.KindTool)
	if err != nil {
		return nil, err
	}
	libs, err := decodeRequirements("requires", &file.Requires, domain.KindLibrary)
	if err != nil {
		return nil, err
	}

	return &domain.RawDeclaration{
		Entries: append(tools, libs...),
		Settings: domain.RawSettings{
			OS:        file.Settings.OS,
			Arch:      file.Settings.Arch,
			Compiler:  file.Settings.Compiler,
			BuildType: file.Settings.BuildType,
			Libc:      file.Settings.Libc,
		},
		Toolchain: file.Toolchain,
		Sysroot:   file.Sysroot,
		Flags: domain.Flags{
			C:   file.Flags.C,
			CXX: file.Flags.CXX,
			LD:  file.Flags.LD,
		},
	}, nil
}

// decodeRequirements walks a name: constraint mapping in document order.
// Repeated names are kept so the parser can report them.
func decodeRequirements(section string, node *yaml.Node, kind domain.DependencyKind) ([]domain.RawEntry, error) {
	if node.Kind == 0 || isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, shapeError(section, node, "expected a mapping of name to version constraint")
	}

	entries := make([]domain.RawEntry, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || key.Value == "" {
			return nil, shapeError(section, key, "dependency name must be a non-empty string")
		}
		if value.Kind != yaml.ScalarNode {
			return nil, shapeError(section, value, "constraint of "+key.Value+" must be a string")
		}
		entries = append(entries, domain.RawEntry{
			Name:       key.Value,
			Constraint: value.Value,
			Kind:       kind,
			Line:       key.Line,
		})
	}
	return entries, nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func shapeError(section string, node *yaml.Node, msg string) error {
	err := zerr.With(zerr.Wrap(domain.ErrDeclarationParseFailed, msg), "section", section)
	return zerr.With(err, "line", strconv.Itoa(node.Line))
}
