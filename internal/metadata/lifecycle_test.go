package metadata

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeops/pakmeta/internal/hostfacts"
	"github.com/forgeops/pakmeta/internal/logging"
	"github.com/forgeops/pakmeta/internal/pkgfile"
	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

// testProject is a fixture pakmeta.Project.
type testProject struct {
	licenseFile string
}

func (p testProject) Name() string            { return "myapp" }
func (p testProject) FriendlyName() string    { return "My App" }
func (p testProject) Homepage() string        { return "https://example.com/myapp" }
func (p testProject) BuildVersion() string    { return "1.2.3" }
func (p testProject) BuildIteration() int     { return 2 }
func (p testProject) License() string         { return "Apache-2.0" }
func (p testProject) LicenseFilePath() string { return p.licenseFile }

func (p testProject) BuiltManifest() map[string]interface{} {
	return map[string]interface{}{
		"build_version": "1.2.3",
		"software": map[string]interface{}{
			"openssl": map[string]interface{}{"locked_version": "3.0.13"},
		},
	}
}

var ubuntuFacts = hostfacts.Static{
	PlatformName: "ubuntu",
	Version:      "22.04.4",
	Machine:      "x86_64",
	IntelCPU:     true,
}

func writePackage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "myapp-1.2.3.deb")
	require.NoError(t, os.WriteFile(path, []byte("package content"), 0644))
	return path
}

func TestGenerate_RoundTrip(t *testing.T) {
	pkgPath := writePackage(t)
	licensePath := filepath.Join(filepath.Dir(pkgPath), "LICENSE")
	require.NoError(t, os.WriteFile(licensePath, []byte("Apache License\n"), 0644))

	pkg, err := pkgfile.New(pkgPath)
	require.NoError(t, err)

	gen := NewGenerator(ubuntuFacts, logging.NewNullLogger())
	sidecar, err := gen.Generate(pkg, testProject{licenseFile: licensePath})
	require.NoError(t, err)
	assert.Equal(t, pkgPath+".metadata.json", sidecar)

	loaded, err := Load(pkg)
	require.NoError(t, err)

	assert.Equal(t, "myapp-1.2.3.deb", loaded.Get(KeyBasename))
	assert.Equal(t, pkg.MD5(), loaded.Get(KeyMD5))
	assert.Equal(t, pkg.SHA1(), loaded.Get(KeySHA1))
	assert.Equal(t, pkg.SHA256(), loaded.Get(KeySHA256))
	assert.Equal(t, pkg.SHA512(), loaded.Get(KeySHA512))
	assert.Equal(t, "ubuntu", loaded.Get(KeyPlatform))
	assert.Equal(t, "22.04", loaded.Get(KeyPlatformVersion), "stored version is the truncated form")
	assert.Equal(t, "x86_64", loaded.Get(KeyArch))
	assert.Equal(t, "myapp", loaded.Get(KeyName))
	assert.Equal(t, "My App", loaded.Get(KeyFriendlyName))
	assert.Equal(t, "https://example.com/myapp", loaded.Get(KeyHomepage))
	assert.Equal(t, "1.2.3", loaded.Get(KeyVersion))
	assert.Equal(t, 2, loaded.Get(KeyIteration))
	assert.Equal(t, "Apache-2.0", loaded.Get(KeyLicense))
	assert.Equal(t, "Apache License\n", loaded.Get(KeyLicenseContent))

	manifest := loaded.Get(KeyVersionManifest).(map[string]interface{})
	assert.Equal(t, "1.2.3", manifest["build_version"])
}

func TestGenerate_MissingLicenseFile(t *testing.T) {
	pkgPath := writePackage(t)
	pkg, err := pkgfile.New(pkgPath)
	require.NoError(t, err)

	gen := NewGenerator(ubuntuFacts, logging.NewNullLogger())
	_, err = gen.Generate(pkg, testProject{licenseFile: filepath.Join(t.TempDir(), "gone")})
	require.NoError(t, err, "an unreadable license file is never a generation failure")

	loaded, err := Load(pkg)
	require.NoError(t, err)
	assert.Equal(t, "", loaded.Get(KeyLicenseContent))
}

func TestGenerate_RHELFamilyShortname(t *testing.T) {
	pkgPath := writePackage(t)
	pkg, err := pkgfile.New(pkgPath)
	require.NoError(t, err)

	facts := hostfacts.Static{
		PlatformName:   "rocky",
		Version:        "9.3",
		Machine:        "x86_64",
		IntelCPU:       true,
		RHELFamilyHost: true,
	}
	_, err = NewGenerator(facts, logging.NewNullLogger()).Generate(pkg, testProject{})
	require.NoError(t, err)

	loaded, err := Load(pkg)
	require.NoError(t, err)
	assert.Equal(t, "el", loaded.Get(KeyPlatform))
	assert.Equal(t, "9", loaded.Get(KeyPlatformVersion))
}

func TestGenerate_UnknownPlatform(t *testing.T) {
	pkgPath := writePackage(t)
	pkg, err := pkgfile.New(pkgPath)
	require.NoError(t, err)

	facts := hostfacts.Static{PlatformName: "plan9", Version: "4", Machine: "x86_64"}
	_, err = NewGenerator(facts, logging.NewNullLogger()).Generate(pkg, testProject{})

	var unkPlat *pakmeta.UnknownPlatformError
	require.True(t, errors.As(err, &unkPlat), "expected UnknownPlatformError, got %v", err)
	assert.NoFileExists(t, SidecarPath(pkgPath), "failed generation must not write a sidecar")
}

func TestResolveArch(t *testing.T) {
	tests := []struct {
		name  string
		facts hostfacts.Static
		want  string
	}{
		{
			name:  "32-bit windows",
			facts: hostfacts.Static{Windows: true, Windows32: true, Machine: "i686"},
			want:  "i386",
		},
		{
			name:  "64-bit windows keeps machine name",
			facts: hostfacts.Static{Windows: true, Machine: "x86_64"},
			want:  "x86_64",
		},
		{
			name:  "solaris on intel",
			facts: hostfacts.Static{Solaris: true, IntelCPU: true, Machine: "i86pc"},
			want:  "i386",
		},
		{
			name:  "solaris on sparc",
			facts: hostfacts.Static{Solaris: true, SparcCPU: true, Machine: "sun4v"},
			want:  "sparc",
		},
		{
			name:  "linux passthrough",
			facts: hostfacts.Static{Machine: "aarch64"},
			want:  "aarch64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveArch(tt.facts))
		})
	}
}

func TestLoadPath_NoSidecar(t *testing.T) {
	pkgPath := filepath.Join(t.TempDir(), "pkg.deb")

	_, err := LoadPath(pkgPath)
	require.Error(t, err)

	var noMeta *pakmeta.NoMetadataFileError
	require.True(t, errors.As(err, &noMeta))
	assert.Equal(t, pkgPath, noMeta.PackagePath)
}

func TestLoadPath_CorruptSidecar(t *testing.T) {
	pkgPath := filepath.Join(t.TempDir(), "pkg.deb")
	require.NoError(t, os.WriteFile(SidecarPath(pkgPath), []byte("not json"), 0644))

	_, err := LoadPath(pkgPath)
	require.Error(t, err)

	var corrupt *pakmeta.CorruptMetadataError
	require.True(t, errors.As(err, &corrupt))
	assert.Equal(t, SidecarPath(pkgPath), corrupt.Path)
}

func TestLoadPath_DefaultsIteration(t *testing.T) {
	pkgPath := filepath.Join(t.TempDir(), "pkg.deb")
	stored := `{"basename": "pkg.deb", "platform": "ubuntu", "platform_version": "22.04"}`
	require.NoError(t, os.WriteFile(SidecarPath(pkgPath), []byte(stored), 0644))

	r, err := LoadPath(pkgPath)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Get(KeyIteration))
}

func TestLoadPath_RenormalizesStaleVersion(t *testing.T) {
	// A record written before truncation rules existed carries the raw
	// version; loading brings it up to date.
	pkgPath := filepath.Join(t.TempDir(), "pkg.deb")
	stored := `{"platform": "ubuntu", "platform_version": "12.04.1", "iteration": 3}`
	require.NoError(t, os.WriteFile(SidecarPath(pkgPath), []byte(stored), 0644))

	r, err := LoadPath(pkgPath)
	require.NoError(t, err)
	assert.Equal(t, "12.04", r.Get(KeyPlatformVersion))
	assert.Equal(t, 3, r.Get(KeyIteration))
}

func TestLoadPath_SkipsNormalizationWithoutPlatform(t *testing.T) {
	pkgPath := filepath.Join(t.TempDir(), "pkg.deb")
	stored := `{"basename": "pkg.deb", "platform_version": "12.04.1"}`
	require.NoError(t, os.WriteFile(SidecarPath(pkgPath), []byte(stored), 0644))

	r, err := LoadPath(pkgPath)
	require.NoError(t, err)
	assert.Equal(t, "12.04.1", r.Get(KeyPlatformVersion), "normalization needs both platform keys")
}

func TestLoadPath_PermissiveAboutUnknownFields(t *testing.T) {
	pkgPath := filepath.Join(t.TempDir(), "pkg.deb")
	stored := `{"basename": "pkg.deb", "future_field": {"a": 1}}`
	require.NoError(t, os.WriteFile(SidecarPath(pkgPath), []byte(stored), 0644))

	r, err := LoadPath(pkgPath)
	require.NoError(t, err)
	assert.Equal(t, "pkg.deb", r.Get(KeyBasename))
	assert.Nil(t, r.Get("future_field"))
}
