package config

import "gopkg.in/yaml.v3"

// schemaVersion is the only declaration format version understood.
const schemaVersion = "1"

// Rabfile represents the structure of the rab.yaml declaration file.
//
// The requirement sections stay as raw nodes so that entry order, source
// lines and repeated keys survive decoding.
type Rabfile struct {
	Version      string      `yaml:"version"`
	ToolRequires yaml.Node   `yaml:"tool_requires"`
	Requires     yaml.Node   `yaml:"requires"`
	Toolchain    string      `yaml:"toolchain"`
	Sysroot      string      `yaml:"sysroot"`
	Settings     SettingsDTO `yaml:"settings"`
	Flags        FlagsDTO    `yaml:"flags"`
}

// SettingsDTO represents the target settings block.
type SettingsDTO struct {
	OS        string `yaml:"os"`
	Arch      string `yaml:"arch"`
	Compiler  string `yaml:"compiler"`
	BuildType string `yaml:"build_type"`
	Libc      string `yaml:"libc"`
}

// FlagsDTO represents extra compiler and linker flags.
type FlagsDTO struct {
	C   []string `yaml:"c"`
	CXX []string `yaml:"cxx"`
	LD  []string `yaml:"ld"`
}
