package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pakmeta",
	Short: "Package metadata sidecar tool",
	Long: `pakmeta describes built software packages: it generates a JSON sidecar
(<package>.metadata.json) carrying the package's checksums, the platform it
was built on, and its provenance (project name, version, license), and reads
those sidecars back for downstream pipeline stages.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid or missing project descriptor
  11 - Platform or platform version not recognized
  12 - User denied overwrite approval
  13 - Package file not found
  14 - Metadata sidecar file not found
  15 - Metadata sidecar file is not valid JSON`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for pakmeta")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
