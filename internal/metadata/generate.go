package metadata

import (
	"os"

	"github.com/forgeops/pakmeta/internal/platform"
	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

// Generator builds and persists metadata records. Host identity comes from
// an injected HostFacts rather than a process-wide singleton, so platform
// and architecture resolution is testable with fixture values.
type Generator struct {
	facts pakmeta.HostFacts
	log   pakmeta.Logger
}

// NewGenerator creates a Generator using the given host facts and logger.
func NewGenerator(facts pakmeta.HostFacts, log pakmeta.Logger) *Generator {
	return &Generator{facts: facts, log: log}
}

// Generate builds the metadata record for a package and writes it to the
// derived sidecar path, which it returns. The record itself is discarded
// after the save; callers that need it back use Load.
func (g *Generator) Generate(pkg pakmeta.Package, proj pakmeta.Project) (string, error) {
	shortname := platformShortname(g.facts)

	version, err := platform.Normalize(g.facts.PlatformVersion(), shortname)
	if err != nil {
		return "", err
	}

	arch := resolveArch(g.facts)
	g.log.Verbose("resolved host identity: platform=%s version=%s arch=%s", shortname, version, arch)

	record := &Record{fields: recordFields{
		Basename:        pkg.Name(),
		MD5:             pkg.MD5(),
		SHA1:            pkg.SHA1(),
		SHA256:          pkg.SHA256(),
		SHA512:          pkg.SHA512(),
		Platform:        shortname,
		PlatformVersion: version,
		Arch:            arch,
		Name:            proj.Name(),
		FriendlyName:    proj.FriendlyName(),
		Homepage:        proj.Homepage(),
		Version:         proj.BuildVersion(),
		Iteration:       proj.BuildIteration(),
		License:         proj.License(),
		VersionManifest: proj.BuiltManifest(),
		LicenseContent:  readLicense(proj.LicenseFilePath()),
	}}

	path := SidecarPath(pkg.Path())
	if err := record.WriteFile(path); err != nil {
		return "", err
	}

	g.log.Verbose("wrote metadata record to %s", path)
	return path, nil
}

// platformShortname collapses distribution families onto their canonical
// platform keys: any RHEL-family host reports "el", any SUSE-family host
// "sles". Everything else keeps its raw platform identifier.
func platformShortname(facts pakmeta.HostFacts) string {
	switch {
	case facts.IsRHELFamily():
		return "el"
	case facts.IsSUSEFamily():
		return "sles"
	default:
		return facts.Platform()
	}
}

// resolveArch derives the package architecture from host facts. Windows and
// Solaris need special handling; all other hosts report the raw kernel
// machine name.
func resolveArch(facts pakmeta.HostFacts) string {
	switch {
	case facts.IsWindows() && facts.Is32BitWindows():
		return "i386"
	case facts.IsSolaris() && facts.IsIntelCPU():
		return "i386"
	case facts.IsSolaris() && facts.IsSparcCPU():
		return "sparc"
	default:
		return facts.KernelMachine()
	}
}

// readLicense reads the project's license file verbatim. A project without a
// license file, or with one that cannot be read, yields an empty string;
// missing license content is never a generation failure.
func readLicense(path string) string {
	if path == "" {
		return ""
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(content)
}
