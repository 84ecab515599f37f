package registry

const indexVersion = "1"

// IndexFile represents the structure of the index.yaml package index.
type IndexFile struct {
	Version  string                `yaml:"version"`
	Root     string                `yaml:"root"`
	Packages map[string][]EntryDTO `yaml:"packages"`
}

// EntryDTO represents one indexed build of a package.
type EntryDTO struct {
	Version string `yaml:"version"`
	OS      string `yaml:"os"`
	Arch    string `yaml:"arch"`
	Path    string `yaml:"path"`
}
