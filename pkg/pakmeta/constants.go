package pakmeta

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Operation completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid or missing project descriptor
	ExitUnknownPlatform = 11 // Platform or platform version not recognized
	ExitApprovalDenied  = 12 // User denied overwrite approval
	ExitPackageMissing  = 13 // Package file not found
	ExitMetadataMissing = 14 // Metadata sidecar file not found
	ExitCorruptMetadata = 15 // Metadata sidecar file is not valid JSON
)

const (
	// MetadataExt is the suffix appended to a package path to derive its
	// metadata sidecar path. This is the only addressing scheme: the sidecar
	// for /out/pkg.deb always lives at /out/pkg.deb.metadata.json.
	MetadataExt = ".metadata.json"

	// DefaultIteration is the build iteration assumed when a stored record
	// carries no iteration field.
	DefaultIteration = 1

	// DefaultForceApprovalCountdown is the countdown duration before a forced
	// overwrite approval proceeds.
	DefaultForceApprovalCountdown = 5 * time.Second
)
