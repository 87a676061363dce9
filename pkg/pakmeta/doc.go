// Package pakmeta defines the public surface of the pakmeta library:
// the collaborator interfaces consumed by metadata generation (Package,
// Project, HostFacts), the error types produced by the core, the Logger
// and Approver abstractions, and the semantic exit codes used by the CLI.
//
// The actual metadata lifecycle (generation, loading, serialization) lives
// in internal/metadata; platform version normalization in internal/platform.
package pakmeta
