package metadata

import (
	"encoding/json"
	"os"

	"github.com/forgeops/pakmeta/internal/platform"
	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

// storedRecord mirrors recordFields with pointers where load behavior
// depends on key presence: iteration defaults when absent, and platform
// re-normalization only runs when both platform keys were stored.
type storedRecord struct {
	Basename        string                 `json:"basename"`
	MD5             string                 `json:"md5"`
	SHA1            string                 `json:"sha1"`
	SHA256          string                 `json:"sha256"`
	SHA512          string                 `json:"sha512"`
	Platform        *string                `json:"platform"`
	PlatformVersion *string                `json:"platform_version"`
	Arch            string                 `json:"arch"`
	Name            string                 `json:"name"`
	FriendlyName    string                 `json:"friendly_name"`
	Homepage        string                 `json:"homepage"`
	Version         string                 `json:"version"`
	Iteration       *int                   `json:"iteration"`
	License         string                 `json:"license"`
	VersionManifest map[string]interface{} `json:"version_manifest"`
	LicenseContent  string                 `json:"license_content"`
}

// Load reads the metadata record for a package from its derived sidecar
// path.
func Load(pkg pakmeta.Package) (*Record, error) {
	return LoadPath(pkg.Path())
}

// LoadPath reads the metadata record for the package at packagePath.
//
// A missing or unreadable sidecar is a pakmeta.NoMetadataFileError; a
// present but malformed one is a pakmeta.CorruptMetadataError. When both
// platform keys are present the stored platform version is re-normalized,
// which defends against records written before the truncation rules changed
// (normalization is idempotent, so up-to-date records pass through
// unchanged). A missing iteration defaults to 1; no other field is
// validated or defaulted.
func LoadPath(packagePath string) (*Record, error) {
	sidecar := SidecarPath(packagePath)

	data, err := os.ReadFile(sidecar)
	if err != nil {
		return nil, &pakmeta.NoMetadataFileError{PackagePath: packagePath}
	}

	var stored storedRecord
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, &pakmeta.CorruptMetadataError{Path: sidecar, Err: err}
	}

	fields := recordFields{
		Basename:        stored.Basename,
		MD5:             stored.MD5,
		SHA1:            stored.SHA1,
		SHA256:          stored.SHA256,
		SHA512:          stored.SHA512,
		Arch:            stored.Arch,
		Name:            stored.Name,
		FriendlyName:    stored.FriendlyName,
		Homepage:        stored.Homepage,
		Version:         stored.Version,
		Iteration:       pakmeta.DefaultIteration,
		License:         stored.License,
		VersionManifest: stored.VersionManifest,
		LicenseContent:  stored.LicenseContent,
	}

	if stored.Platform != nil {
		fields.Platform = *stored.Platform
	}
	if stored.PlatformVersion != nil {
		fields.PlatformVersion = *stored.PlatformVersion
	}
	if stored.Platform != nil && stored.PlatformVersion != nil {
		normalized, err := platform.Normalize(*stored.PlatformVersion, *stored.Platform)
		if err != nil {
			return nil, err
		}
		fields.PlatformVersion = normalized
	}

	if stored.Iteration != nil && *stored.Iteration > pakmeta.DefaultIteration {
		fields.Iteration = *stored.Iteration
	}

	return &Record{fields: fields}, nil
}
