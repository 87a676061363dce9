package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

// Record keys, in the order fields are set at construction. This order is
// also the serialization order.
const (
	KeyBasename        = "basename"
	KeyMD5             = "md5"
	KeySHA1            = "sha1"
	KeySHA256          = "sha256"
	KeySHA512          = "sha512"
	KeyPlatform        = "platform"
	KeyPlatformVersion = "platform_version"
	KeyArch            = "arch"
	KeyName            = "name"
	KeyFriendlyName    = "friendly_name"
	KeyHomepage        = "homepage"
	KeyVersion         = "version"
	KeyIteration       = "iteration"
	KeyLicense         = "license"
	KeyVersionManifest = "version_manifest"
	KeyLicenseContent  = "license_content"
)

// recordFields is the fixed on-disk shape of a metadata record. Field order
// here is the contract: encoding/json emits struct fields in declaration
// order, which keeps serialization deterministic.
type recordFields struct {
	Basename        string                 `json:"basename"`
	MD5             string                 `json:"md5"`
	SHA1            string                 `json:"sha1"`
	SHA256          string                 `json:"sha256"`
	SHA512          string                 `json:"sha512"`
	Platform        string                 `json:"platform"`
	PlatformVersion string                 `json:"platform_version"`
	Arch            string                 `json:"arch"`
	Name            string                 `json:"name"`
	FriendlyName    string                 `json:"friendly_name"`
	Homepage        string                 `json:"homepage"`
	Version         string                 `json:"version"`
	Iteration       int                    `json:"iteration"`
	License         string                 `json:"license"`
	VersionManifest map[string]interface{} `json:"version_manifest"`
	LicenseContent  string                 `json:"license_content"`
}

// Record is an immutable metadata record. All derived values (notably the
// truncated platform version) are computed before construction; after that
// the backing fields are never mutated, which makes Get, ToMap and JSON safe
// to call repeatedly without synchronization.
type Record struct {
	fields recordFields
}

// SidecarPath derives the metadata file path for a package path. This is the
// only addressing scheme for metadata records.
func SidecarPath(packagePath string) string {
	return packagePath + pakmeta.MetadataExt
}

// Get returns the value stored under key, or nil when the key is not part of
// the record contract. The version_manifest value is returned as a copy.
func (r *Record) Get(key string) interface{} {
	switch key {
	case KeyBasename:
		return r.fields.Basename
	case KeyMD5:
		return r.fields.MD5
	case KeySHA1:
		return r.fields.SHA1
	case KeySHA256:
		return r.fields.SHA256
	case KeySHA512:
		return r.fields.SHA512
	case KeyPlatform:
		return r.fields.Platform
	case KeyPlatformVersion:
		return r.fields.PlatformVersion
	case KeyArch:
		return r.fields.Arch
	case KeyName:
		return r.fields.Name
	case KeyFriendlyName:
		return r.fields.FriendlyName
	case KeyHomepage:
		return r.fields.Homepage
	case KeyVersion:
		return r.fields.Version
	case KeyIteration:
		return r.fields.Iteration
	case KeyLicense:
		return r.fields.License
	case KeyVersionManifest:
		return copyValue(r.fields.VersionManifest)
	case KeyLicenseContent:
		return r.fields.LicenseContent
	default:
		return nil
	}
}

// ToMap returns the full keyed bag as a deep copy; mutating the returned map
// has no effect on the record.
func (r *Record) ToMap() map[string]interface{} {
	return map[string]interface{}{
		KeyBasename:        r.fields.Basename,
		KeyMD5:             r.fields.MD5,
		KeySHA1:            r.fields.SHA1,
		KeySHA256:          r.fields.SHA256,
		KeySHA512:          r.fields.SHA512,
		KeyPlatform:        r.fields.Platform,
		KeyPlatformVersion: r.fields.PlatformVersion,
		KeyArch:            r.fields.Arch,
		KeyName:            r.fields.Name,
		KeyFriendlyName:    r.fields.FriendlyName,
		KeyHomepage:        r.fields.Homepage,
		KeyVersion:         r.fields.Version,
		KeyIteration:       r.fields.Iteration,
		KeyLicense:         r.fields.License,
		KeyVersionManifest: copyValue(r.fields.VersionManifest),
		KeyLicenseContent:  r.fields.LicenseContent,
	}
}

// JSON returns the pretty-printed serialization of the record. Output is
// deterministic: struct fields emit in declaration order and map keys inside
// version_manifest are sorted by encoding/json.
func (r *Record) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r.fields, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize metadata record: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteFile persists the record at path. The write is atomic: content goes
// to a uniquely named temp file in the same directory, which is then renamed
// over the destination, so a crash never leaves a torn sidecar behind.
func (r *Record) WriteFile(path string) error {
	data, err := r.JSON()
	if err != nil {
		return err
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to move metadata file into place: %w", err)
	}
	return nil
}

// copyValue deep-copies the JSON-shaped values a manifest can contain.
func copyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, inner := range val {
			out[k] = copyValue(inner)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, inner := range val {
			out[i] = copyValue(inner)
		}
		return out
	default:
		return v
	}
}
