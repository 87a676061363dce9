package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/forgeops/pakmeta/internal/project"
	"github.com/forgeops/pakmeta/internal/tui"
)

var initCmd = &cobra.Command{
	Use:   "init [target-dir]",
	Short: "Create a project descriptor",
	Long: `Create a ` + project.DescriptorFileName + ` describing the project whose packages
will carry metadata.

On a terminal the command walks through the descriptor fields interactively;
in scripts the fields come from flags, with the directory name as the default
project name.

Examples:
  pakmeta init .
  pakmeta init ./myproject --name myapp --project-version 1.0.0`,
	Args:              cobra.MaximumNArgs(1),
	RunE:              runInit,
	ValidArgsFunction: completeDirectories,
}

var initFlags struct {
	name         string
	friendlyName string
	homepage     string
	version      string
	license      string
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&initFlags.name, "name", "", "Project name (defaults to the directory name)")
	initCmd.Flags().StringVar(&initFlags.friendlyName, "friendly-name", "", "Human-facing project name")
	initCmd.Flags().StringVar(&initFlags.homepage, "homepage", "", "Project homepage URL")
	initCmd.Flags().StringVar(&initFlags.version, "project-version", "0.1.0", "Initial project version")
	initCmd.Flags().StringVar(&initFlags.license, "license", "", "License identifier (e.g. Apache-2.0)")
}

func resetInitFlags() {
	initFlags.name = ""
	initFlags.friendlyName = ""
	initFlags.homepage = ""
	initFlags.version = "0.1.0"
	initFlags.license = ""
}

func runInit(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	descriptorPath := filepath.Join(targetDir, project.DescriptorFileName)
	if _, err := os.Stat(descriptorPath); err == nil {
		return fmt.Errorf("%s already exists", descriptorPath)
	}

	defaultName := projectNameFor(targetDir)
	descriptor := project.Descriptor{
		ProjectName: defaultName,
		Friendly:    initFlags.friendlyName,
		HomepageURL: initFlags.homepage,
		Version:     initFlags.version,
		LicenseID:   initFlags.license,
	}
	if initFlags.name != "" {
		descriptor.ProjectName = initFlags.name
	}

	// Flags win over the wizard; only an untouched invocation on a terminal
	// goes interactive.
	if tui.IsInteractive() && !cmd.Flags().Changed("name") && !cmd.Flags().Changed("project-version") {
		result, err := tui.RunDescriptorWizard(defaultName)
		if err != nil {
			return fmt.Errorf("wizard failed: %w", err)
		}
		if result.Cancelled {
			return fmt.Errorf("cancelled")
		}
		descriptor = project.Descriptor{
			ProjectName: result.Name,
			Friendly:    result.FriendlyName,
			HomepageURL: result.Homepage,
			Version:     result.Version,
			LicenseID:   result.License,
		}
	}

	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return fmt.Errorf("failed to create target directory: %w", err)
	}

	data, err := yaml.Marshal(&descriptor)
	if err != nil {
		return fmt.Errorf("failed to serialize descriptor: %w", err)
	}
	if err := os.WriteFile(descriptorPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write descriptor: %w", err)
	}

	fmt.Fprintf(os.Stderr, "✓ Created %s\n\n", descriptorPath)
	fmt.Fprintln(os.Stderr, "Next steps:")
	fmt.Fprintf(os.Stderr, "  pakmeta generate <package-path> --project %s\n", targetDir)
	return nil
}

// projectNameFor derives a default project name from the target directory.
func projectNameFor(targetDir string) string {
	name := filepath.Base(targetDir)
	if name == "." || name == ".." || name == string(filepath.Separator) {
		if cwd, err := os.Getwd(); err == nil {
			return filepath.Base(cwd)
		}
		return "project"
	}
	return name
}
