package hostfacts

import (
	"os"
	"runtime"

	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

// osReleasePath is the standard location of the os-release file on Linux.
const osReleasePath = "/etc/os-release"

// kernelMachines maps Go architecture names to the machine hardware names
// reported by uname -m.
var kernelMachines = map[string]string{
	"amd64":   "x86_64",
	"386":     "i686",
	"arm64":   "aarch64",
	"arm":     "armv7l",
	"ppc64":   "ppc64",
	"ppc64le": "ppc64le",
	"s390x":   "s390x",
	"riscv64": "riscv64",
	"sparc64": "sparc64",
}

// OS is a pakmeta.HostFacts backed by the running host: runtime.GOOS and
// GOARCH plus, on Linux, the os-release file.
type OS struct {
	goos   string
	goarch string
	rel    osRelease
}

// NewOS builds host facts for the current machine. A missing or unreadable
// os-release file is not an error; the provider falls back to GOOS-derived
// values.
func NewOS() *OS {
	return newOS(runtime.GOOS, runtime.GOARCH, osReleasePath)
}

func newOS(goos, goarch, releasePath string) *OS {
	f := &OS{goos: goos, goarch: goarch}
	if goos == "linux" {
		if content, err := os.ReadFile(releasePath); err == nil {
			f.rel = parseOSRelease(content)
		}
	}
	return f
}

// Platform returns the distribution ID on Linux ("ubuntu", "rhel", ...) and
// a platform key derived from GOOS elsewhere.
func (f *OS) Platform() string {
	switch f.goos {
	case "linux":
		if f.rel.ID != "" {
			return f.rel.ID
		}
		return "linux"
	case "darwin":
		return "mac_os_x"
	case "solaris", "illumos":
		return "solaris2"
	default:
		return f.goos
	}
}

// PlatformVersion returns the raw, untruncated version reported by the host.
func (f *OS) PlatformVersion() string {
	return f.rel.VersionID
}

// KernelMachine returns the machine hardware name for the host architecture.
func (f *OS) KernelMachine() string {
	if m, ok := kernelMachines[f.goarch]; ok {
		return m
	}
	return f.goarch
}

func (f *OS) IsWindows() bool { return f.goos == "windows" }

func (f *OS) Is32BitWindows() bool { return f.goos == "windows" && f.goarch == "386" }

func (f *OS) IsSolaris() bool { return f.goos == "solaris" || f.goos == "illumos" }

func (f *OS) IsIntelCPU() bool { return f.goarch == "amd64" || f.goarch == "386" }

func (f *OS) IsSparcCPU() bool { return f.goarch == "sparc64" }

func (f *OS) IsRHELFamily() bool {
	return f.rel.inFamily("rhel", "centos", "fedora", "rocky", "almalinux", "ol")
}

func (f *OS) IsSUSEFamily() bool {
	return f.rel.inFamily("sles", "suse", "opensuse", "opensuse-leap")
}

var _ pakmeta.HostFacts = (*OS)(nil)

// Static is a fixture implementation with every fact supplied up front.
type Static struct {
	PlatformName   string
	Version        string
	Machine        string
	Windows        bool
	Windows32      bool
	Solaris        bool
	IntelCPU       bool
	SparcCPU       bool
	RHELFamilyHost bool
	SUSEFamilyHost bool
}

func (s Static) Platform() string        { return s.PlatformName }
func (s Static) PlatformVersion() string { return s.Version }
func (s Static) KernelMachine() string   { return s.Machine }
func (s Static) IsWindows() bool         { return s.Windows }
func (s Static) Is32BitWindows() bool    { return s.Windows32 }
func (s Static) IsSolaris() bool         { return s.Solaris }
func (s Static) IsIntelCPU() bool        { return s.IntelCPU }
func (s Static) IsSparcCPU() bool        { return s.SparcCPU }
func (s Static) IsRHELFamily() bool      { return s.RHELFamilyHost }
func (s Static) IsSUSEFamily() bool      { return s.SUSEFamilyHost }

var _ pakmeta.HostFacts = Static{}
