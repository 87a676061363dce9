package pakmeta

import (
	"errors"
	"fmt"
)

// NoPackageFileError indicates metadata generation was requested for a path
// with no existing package file. Generation performs no writes in this case.
type NoPackageFileError struct {
	Path string
}

func (e *NoPackageFileError) Error() string {
	return fmt.Sprintf("no package found at %s", e.Path)
}

// NoMetadataFileError indicates a metadata load was requested but the derived
// sidecar file does not exist or could not be read.
type NoMetadataFileError struct {
	PackagePath string
}

func (e *NoMetadataFileError) Error() string {
	return fmt.Sprintf("no metadata file found for package at %s", e.PackagePath)
}

// CorruptMetadataError indicates the sidecar file exists but its content is
// not valid JSON. The underlying parse error is preserved for unwrapping.
type CorruptMetadataError struct {
	Path string
	Err  error
}

func (e *CorruptMetadataError) Error() string {
	return fmt.Sprintf("metadata file %s is not valid JSON: %v", e.Path, e.Err)
}

func (e *CorruptMetadataError) Unwrap() error { return e.Err }

// UnknownPlatformError indicates a platform key matched no normalization
// rule family.
type UnknownPlatformError struct {
	Platform string
}

func (e *UnknownPlatformError) Error() string {
	return fmt.Sprintf("unknown platform %q", e.Platform)
}

// UnknownPlatformVersionError indicates the platform key was recognized but
// the raw version string matched none of that family's accepted forms. Only
// the windows family enumerates versions, so in practice Platform is always
// "windows".
type UnknownPlatformVersionError struct {
	Platform string
	Version  string
}

func (e *UnknownPlatformVersionError) Error() string {
	return fmt.Sprintf("unknown version %q for platform %q", e.Version, e.Platform)
}

// ErrApprovalDenied indicates the user denied approval for overwriting an
// existing metadata file.
var ErrApprovalDenied = errors.New("approval denied")

// ErrInvalidDescriptor indicates the project descriptor is missing, not
// parseable, or failed validation. Failure sites wrap it so that callers
// can check with errors.Is.
var ErrInvalidDescriptor = errors.New("invalid project descriptor")

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known error
// types, and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var (
		noPkg      *NoPackageFileError
		noMeta     *NoMetadataFileError
		corrupt    *CorruptMetadataError
		unkPlat    *UnknownPlatformError
		unkVersion *UnknownPlatformVersionError
	)

	switch {
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrInvalidDescriptor):
		return ExitConfigError
	case errors.As(err, &noPkg):
		return ExitPackageMissing
	case errors.As(err, &noMeta):
		return ExitMetadataMissing
	case errors.As(err, &corrupt):
		return ExitCorruptMetadata
	case errors.As(err, &unkPlat):
		return ExitUnknownPlatform
	case errors.As(err, &unkVersion):
		return ExitUnknownPlatform
	}

	return ExitGeneralError
}
