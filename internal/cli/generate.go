package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/forgeops/pakmeta/internal/hostfacts"
	"github.com/forgeops/pakmeta/internal/logging"
	"github.com/forgeops/pakmeta/internal/metadata"
	"github.com/forgeops/pakmeta/internal/pkgfile"
	"github.com/forgeops/pakmeta/internal/project"
	"github.com/forgeops/pakmeta/internal/tui"
	"github.com/forgeops/pakmeta/internal/ui"
	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

var generateCmd = &cobra.Command{
	Use:   "generate <package-path>",
	Short: "Generate the metadata sidecar for a built package",
	Long: `Generate the metadata record for a package file and write it next to the
package as <package-path>.metadata.json.

The record combines the package's checksums, the identity of the build host
(platform, normalized platform version, architecture), and the provenance
fields from the project descriptor (pakmeta.yaml).

Examples:
  pakmeta generate ./out/myapp-1.2.3.deb
  pakmeta generate ./out/myapp-1.2.3.deb --project ./myapp
  pakmeta generate ./out/myapp-1.2.3.deb --overwrite --force`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

var generateFlags struct {
	projectDir string
	overwrite  bool
	force      bool
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFlags.projectDir, "project", "p", ".", "Directory containing "+project.DescriptorFileName)
	generateCmd.Flags().BoolVar(&generateFlags.overwrite, "overwrite", false, "Replace an existing metadata file")
	generateCmd.Flags().BoolVar(&generateFlags.force, "force", false, "Skip the interactive overwrite confirmation")
}

func resetGenerateFlags() {
	generateFlags.projectDir = "."
	generateFlags.overwrite = false
	generateFlags.force = false
}

func runGenerate(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	verbose := getVerboseFlag(cmd)
	log := logging.NewConsoleLogger(verbose)

	if generateFlags.force && !generateFlags.overwrite {
		return fmt.Errorf("the force flag requires overwrite to be enabled")
	}

	proj, err := project.Load(generateFlags.projectDir)
	if err != nil {
		if errors.Is(err, project.ErrDescriptorNotFound) {
			return fmt.Errorf("no %s found in %s (run 'pakmeta init' to create one): %w", project.DescriptorFileName, generateFlags.projectDir, err)
		}
		return fmt.Errorf("failed to load project descriptor: %w", err)
	}

	pkg, err := pkgfile.New(args[0])
	if err != nil {
		return err
	}
	log.Verbose("computed digests for %s (sha256=%s)", pkg.Name(), pkg.SHA256())

	sidecar := metadata.SidecarPath(pkg.Path())
	if _, statErr := os.Stat(sidecar); statErr == nil {
		if !generateFlags.overwrite {
			return fmt.Errorf("metadata file already exists at %s (use --overwrite to replace it)", sidecar)
		}
		approved, approveErr := requestOverwrite(cmd, pkg.Name(), verbose)
		if approveErr != nil {
			return approveErr
		}
		if !approved {
			return pakmeta.ErrApprovalDenied
		}
	}

	path, err := metadata.NewGenerator(hostfacts.NewOS(), log).Generate(pkg, proj)
	if err != nil {
		return err
	}

	log.Verbose("metadata generation complete")
	// Sidecar path to stdout for pipeline consumption.
	fmt.Println(path)
	return nil
}

// requestOverwrite picks the approver for replacing an existing sidecar:
// forced countdown with --force, interactive prompt on a terminal, and a
// hard error in non-interactive sessions without --force.
func requestOverwrite(cmd *cobra.Command, packageName string, verbose bool) (bool, error) {
	var approver pakmeta.Approver
	switch {
	case generateFlags.force:
		approver = ui.NewForcedApprover(verbose)
	case tui.IsInteractive():
		approver = ui.NewInteractiveApprover(verbose)
	default:
		return false, fmt.Errorf("refusing to overwrite metadata in a non-interactive session without --force")
	}
	return approver.RequestApproval(cmd.Context(), packageName)
}
