package hostfacts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ubuntuRelease = `NAME="Ubuntu"
VERSION="22.04.4 LTS (Jammy Jellyfish)"
ID=ubuntu
ID_LIKE=debian
VERSION_ID="22.04"
HOME_URL="https://www.ubuntu.com/"
`

const rockyRelease = `NAME="Rocky Linux"
VERSION="9.3 (Blue Onyx)"
ID="rocky"
ID_LIKE="rhel centos fedora"
VERSION_ID="9.3"
`

func writeRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseOSRelease(t *testing.T) {
	rel := parseOSRelease([]byte(ubuntuRelease))
	assert.Equal(t, "ubuntu", rel.ID)
	assert.Equal(t, "22.04", rel.VersionID)
	assert.Equal(t, []string{"debian"}, rel.IDLike)
}

func TestParseOSRelease_SkipsMalformedLines(t *testing.T) {
	rel := parseOSRelease([]byte("# comment\nnot a pair\nID=debian\n\nVERSION_ID=12\n"))
	assert.Equal(t, "debian", rel.ID)
	assert.Equal(t, "12", rel.VersionID)
}

func TestOS_LinuxUbuntu(t *testing.T) {
	f := newOS("linux", "amd64", writeRelease(t, ubuntuRelease))

	assert.Equal(t, "ubuntu", f.Platform())
	assert.Equal(t, "22.04", f.PlatformVersion())
	assert.Equal(t, "x86_64", f.KernelMachine())
	assert.False(t, f.IsWindows())
	assert.False(t, f.IsRHELFamily())
	assert.False(t, f.IsSUSEFamily())
	assert.True(t, f.IsIntelCPU())
}

func TestOS_RHELFamilyViaIDLike(t *testing.T) {
	f := newOS("linux", "arm64", writeRelease(t, rockyRelease))

	assert.Equal(t, "rocky", f.Platform())
	assert.Equal(t, "9.3", f.PlatformVersion())
	assert.Equal(t, "aarch64", f.KernelMachine())
	assert.True(t, f.IsRHELFamily())
	assert.False(t, f.IsIntelCPU())
}

func TestOS_MissingReleaseFile(t *testing.T) {
	f := newOS("linux", "amd64", filepath.Join(t.TempDir(), "nope"))

	assert.Equal(t, "linux", f.Platform())
	assert.Equal(t, "", f.PlatformVersion())
}

func TestOS_NonLinux(t *testing.T) {
	assert.Equal(t, "mac_os_x", newOS("darwin", "arm64", "").Platform())
	assert.Equal(t, "solaris2", newOS("solaris", "amd64", "").Platform())
	assert.Equal(t, "windows", newOS("windows", "386", "").Platform())

	w := newOS("windows", "386", "")
	assert.True(t, w.IsWindows())
	assert.True(t, w.Is32BitWindows())

	w64 := newOS("windows", "amd64", "")
	assert.True(t, w64.IsWindows())
	assert.False(t, w64.Is32BitWindows())
}
