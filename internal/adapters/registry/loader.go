package registry

import (
	"os"
	"path/filepath"

	"go.trai.ch/rab/internal/core/domain"
	"go.trai.ch/rab/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.IndexLoader for index.yaml files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the index file at path. A relative root resolves against the
// directory holding the index file; without a root, that directory is used.
func (l *Loader) Load(path string) (ports.PackageIndex, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrIndexReadFailed, err.Error()), "path", path)
	}

	idx, err := Decode(data, filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return idx, nil
}

// Decode parses index file content. baseDir anchors a relative root.
func Decode(data []byte, baseDir string) (*Index, error) {
	var file IndexFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(domain.ErrIndexParseFailed, err.Error())
	}
	if file.Version != "" && file.Version != indexVersion {
		err := zerr.Wrap(domain.ErrIndexParseFailed, "unsupported index version "+file.Version)
		return nil, zerr.With(err, "version", file.Version)
	}

	root := file.Root
	if !filepath.IsAbs(root) {
		root = filepath.Join(baseDir, root)
	}

	idx := NewIndex(root)
	for name, entries := range file.Packages {
		for _, dto := range entries {
			v, err := domain.ParseVersion(dto.Version)
			if err != nil {
				perr := zerr.With(zerr.Wrap(domain.ErrIndexParseFailed, "invalid version "+dto.Version), "package", name)
				return nil, zerr.With(perr, "version", dto.Version)
			}
			if (dto.OS == "") != (dto.Arch == "") {
				perr := zerr.With(zerr.Wrap(domain.ErrIndexParseFailed, "platform needs both os and arch"), "package", name)
				return nil, zerr.With(perr, "version", dto.Version)
			}
			pkg := Package{Version: v, Platform: parsePlatform(dto.OS, dto.Arch), Path: dto.Path}
			if err := idx.Add(name, pkg); err != nil {
				return nil, err
			}
		}
	}
	return idx, nil
}
