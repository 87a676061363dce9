package platform

import (
	"regexp"
	"strings"

	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

// family is one row of the classification table: the set of platform keys it
// covers and the strategy applied to their raw version strings.
type family struct {
	name      string
	platforms []string
	normalize func(platform, version string) (string, error)
}

// families is the ordered classification table. First match wins. The table
// is append-only and its platform sets are disjoint; a platform appearing in
// two families would be a defect, which the disjointness test guards against.
var families = []family{
	{
		name: "major-only",
		platforms: []string{
			"centos", "debian", "el", "fedora", "freebsd", "omnios",
			"pidora", "raspbian", "rhel", "sles", "suse", "smartos",
		},
		normalize: majorOnly,
	},
	{
		name: "major-minor",
		platforms: []string{
			"aix", "alpine", "mac_os_x", "openbsd", "slackware",
			"solaris2", "opensuse", "opensuseleap", "ubuntu", "amazon",
		},
		normalize: majorMinor,
	},
	{
		name:      "rolling",
		platforms: []string{"arch", "gentoo", "kali"},
		normalize: rolling,
	},
	{
		name:      "windows",
		platforms: []string{"windows"},
		normalize: windows,
	},
}

// Normalize maps a raw platform version to its marketing version for the
// given platform key. It is idempotent: feeding an already-normalized value
// back in returns it unchanged.
func Normalize(version, platform string) (string, error) {
	for _, f := range families {
		for _, p := range f.platforms {
			if p == platform {
				return f.normalize(platform, version)
			}
		}
	}
	return "", &pakmeta.UnknownPlatformError{Platform: platform}
}

// majorOnly keeps the substring before the first dot: "7.4.1" -> "7".
func majorOnly(_, version string) (string, error) {
	major, _, _ := strings.Cut(version, ".")
	return major, nil
}

// majorMinor keeps the first two dot-separated components: "12.04.1" ->
// "12.04". Versions with fewer than two components pass through unchanged.
func majorMinor(_, version string) (string, error) {
	parts := strings.SplitN(version, ".", 3)
	if len(parts) < 2 {
		return version, nil
	}
	return parts[0] + "." + parts[1], nil
}

// rolling ignores the reported version entirely.
func rolling(_, _ string) (string, error) {
	return "rolling", nil
}

// windowsVersions enumerates internal build strings alongside their
// already-normalized marketing equivalents, so normalization is idempotent.
//
// Windows 8 reports the same internal version as Server 2012 (6.2.9200) and
// Windows 8.1 the same as Server 2012 R2 (6.3.x); both desktop editions are
// therefore unreachable from version strings alone and intentionally absent.
// Telling them apart would need a host signal this table does not have.
var windowsVersions = map[string]string{
	"5.0.2195": "2000", "2000": "2000",
	"5.1.2600": "xp", "xp": "xp",
	"5.2.3790": "2003r2", "2003r2": "2003r2",
	"6.0.6001": "2008", "2008": "2008",
	"6.1.7600": "7", "7": "7",
	"6.1.7601": "2008r2", "2008r2": "2008r2",
	"6.2.9200": "2012", "2012": "2012",
	"2012r2":   "2012r2",
	"10":       "10",
}

var windows63Build = regexp.MustCompile(`^6\.3\.\d+$`)

// windows resolves a version against the enumerated marketing table. Any
// 6.3 build maps to 2012r2 and any 10.0 build to 10; everything else must
// appear in windowsVersions exactly.
func windows(platform, version string) (string, error) {
	if v, ok := windowsVersions[version]; ok {
		return v, nil
	}
	if windows63Build.MatchString(version) {
		return "2012r2", nil
	}
	if strings.HasPrefix(version, "10.0") {
		return "10", nil
	}
	return "", &pakmeta.UnknownPlatformVersionError{Platform: platform, Version: version}
}
