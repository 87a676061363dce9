// Package project implements the pakmeta.Project collaborator backed by a
// YAML descriptor file checked into the project being packaged.
package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

// ErrDescriptorNotFound is returned when the descriptor file does not exist.
// Callers can check for this with errors.Is(err, project.ErrDescriptorNotFound);
// it also satisfies errors.Is for pakmeta.ErrInvalidDescriptor.
var ErrDescriptorNotFound = fmt.Errorf("project descriptor not found: %w", pakmeta.ErrInvalidDescriptor)

// DescriptorFileName is the descriptor file looked up inside a project
// directory.
const DescriptorFileName = "pakmeta.yaml"

// Descriptor is the YAML shape of a project descriptor.
//
//	name: myapp
//	friendly_name: My App
//	homepage: https://example.com/myapp
//	version: 1.2.3
//	iteration: 2
//	license: Apache-2.0
//	license_file: LICENSE
//	components:
//	  myapp: 1.2.3
//	  openssl: 3.0.13
type Descriptor struct {
	ProjectName string            `yaml:"name" validate:"required"`
	Friendly    string            `yaml:"friendly_name,omitempty"`
	HomepageURL string            `yaml:"homepage,omitempty" validate:"omitempty,url"`
	Version     string            `yaml:"version" validate:"required"`
	Iteration   int               `yaml:"iteration,omitempty" validate:"gte=0"`
	LicenseID   string            `yaml:"license,omitempty"`
	LicenseFile string            `yaml:"license_file,omitempty"`
	Components  map[string]string `yaml:"components,omitempty"`

	// dir is the directory the descriptor was loaded from; relative paths in
	// the descriptor resolve against it.
	dir string
}

// Load reads and validates the descriptor in the given project directory.
func Load(sourcePath string) (*Descriptor, error) {
	descriptorPath := filepath.Join(sourcePath, DescriptorFileName)
	data, err := os.ReadFile(descriptorPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDescriptorNotFound
		}
		return nil, err
	}

	var d Descriptor
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w: %w", DescriptorFileName, pakmeta.ErrInvalidDescriptor, err)
	}
	d.dir = sourcePath

	if err := validateDescriptor(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Descriptor) Name() string { return d.ProjectName }

// FriendlyName falls back to the machine name when no friendly name is set.
func (d *Descriptor) FriendlyName() string {
	if d.Friendly != "" {
		return d.Friendly
	}
	return d.ProjectName
}

func (d *Descriptor) Homepage() string     { return d.HomepageURL }
func (d *Descriptor) BuildVersion() string { return d.Version }

// BuildIteration defaults to 1 when the descriptor leaves iteration unset.
func (d *Descriptor) BuildIteration() int {
	if d.Iteration < pakmeta.DefaultIteration {
		return pakmeta.DefaultIteration
	}
	return d.Iteration
}

func (d *Descriptor) License() string { return d.LicenseID }

// LicenseFilePath resolves the license file against the descriptor's
// directory. Returns "" when the descriptor names no license file.
func (d *Descriptor) LicenseFilePath() string {
	if d.LicenseFile == "" {
		return ""
	}
	if filepath.IsAbs(d.LicenseFile) {
		return d.LicenseFile
	}
	return filepath.Join(d.dir, d.LicenseFile)
}

// BuiltManifest assembles the version manifest embedded into metadata
// records: the build version plus the version of every named component.
func (d *Descriptor) BuiltManifest() map[string]interface{} {
	software := make(map[string]interface{}, len(d.Components))
	for name, version := range d.Components {
		software[name] = map[string]interface{}{
			"locked_version": version,
		}
	}

	return map[string]interface{}{
		"build_version": d.Version,
		"software":      software,
	}
}

var _ pakmeta.Project = (*Descriptor)(nil)
