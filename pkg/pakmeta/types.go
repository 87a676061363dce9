package pakmeta

import "context"

// Package describes a built package on disk. The metadata core treats the
// checksum strings as opaque precomputed values; it never hashes content
// itself.
type Package interface {
	// Path returns the filesystem path of the package file.
	Path() string

	// Name returns the display name of the package (its basename).
	Name() string

	MD5() string
	SHA1() string
	SHA256() string
	SHA512() string
}

// Project describes the provenance of a build: identity, version, license,
// and the manifest of everything that went into it.
type Project interface {
	// Name returns the machine-friendly project name.
	Name() string

	// FriendlyName returns the human-facing project name.
	FriendlyName() string

	// Homepage returns the project homepage URL.
	Homepage() string

	// BuildVersion returns the version of the package being described.
	BuildVersion() string

	// BuildIteration returns the build counter for this version.
	BuildIteration() int

	// License returns the license identifier (e.g. "Apache-2.0").
	License() string

	// LicenseFilePath returns the path to the license file, or "" when the
	// project carries none.
	LicenseFilePath() string

	// BuiltManifest returns the version manifest as a nested mapping, ready
	// for embedding into a metadata record.
	BuiltManifest() map[string]interface{}
}

// HostFacts reports identity facts about the machine a package was built on.
// It replaces a process-wide singleton so that platform and architecture
// resolution is independently testable with fixture values.
type HostFacts interface {
	// Platform returns the raw platform identifier (e.g. "ubuntu", "rhel").
	Platform() string

	// PlatformVersion returns the raw, untruncated platform version string.
	PlatformVersion() string

	// KernelMachine returns the machine hardware name (e.g. "x86_64").
	KernelMachine() string

	IsWindows() bool
	Is32BitWindows() bool
	IsSolaris() bool
	IsIntelCPU() bool
	IsSparcCPU() bool
	IsRHELFamily() bool
	IsSUSEFamily() bool
}

// Approver decides whether an existing metadata file may be overwritten.
// Implementations may prompt the user or approve automatically.
type Approver interface {
	// RequestApproval asks for permission to overwrite the metadata file of
	// the named package. Returns true if the operation may proceed.
	RequestApproval(ctx context.Context, packageName string) (bool, error)
}

// Logger provides a pluggable logging interface for pakmeta operations.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}
