package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forgeops/pakmeta/internal/metadata"
	"github.com/forgeops/pakmeta/internal/tui"
)

var showCmd = &cobra.Command{
	Use:   "show <package-path>",
	Short: "Show the metadata record for a package",
	Long: `Load and print the metadata sidecar of a package.

The stored platform version is re-normalized on load, so records written
under older truncation rules display their current form. On a terminal the
record renders as a styled key/value listing; piped output and --json emit
the raw JSON document.

Examples:
  pakmeta show ./out/myapp-1.2.3.deb
  pakmeta show ./out/myapp-1.2.3.deb --json | jq .sha256`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var showFlags struct {
	asJSON bool
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showFlags.asJSON, "json", false, "Print the raw JSON record")
}

func resetShowFlags() {
	showFlags.asJSON = false
}

func runShow(cmd *cobra.Command, args []string) error {
	record, err := metadata.LoadPath(args[0])
	if err != nil {
		return err
	}

	if showFlags.asJSON || !tui.IsInteractive() {
		data, err := record.JSON()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	return renderRecord(record)
}

// displayKeys is the listing order for styled output; the manifest renders
// last as an indented JSON block.
var displayKeys = []string{
	metadata.KeyBasename,
	metadata.KeyMD5,
	metadata.KeySHA1,
	metadata.KeySHA256,
	metadata.KeySHA512,
	metadata.KeyPlatform,
	metadata.KeyPlatformVersion,
	metadata.KeyArch,
	metadata.KeyName,
	metadata.KeyFriendlyName,
	metadata.KeyHomepage,
	metadata.KeyVersion,
	metadata.KeyIteration,
	metadata.KeyLicense,
}

func renderRecord(record *metadata.Record) error {
	fmt.Println(tui.TitleStyle.Render(fmt.Sprintf("%v", record.Get(metadata.KeyBasename))))

	for _, key := range displayKeys {
		fmt.Printf("%s %v\n", tui.KeyStyle.Render(fmt.Sprintf("%-17s", key)), record.Get(key))
	}

	manifest, err := json.MarshalIndent(record.Get(metadata.KeyVersionManifest), "  ", "  ")
	if err != nil {
		return err
	}
	fmt.Printf("%s\n  %s\n", tui.KeyStyle.Render(metadata.KeyVersionManifest), tui.ValueStyle.Render(string(manifest)))

	if content, ok := record.Get(metadata.KeyLicenseContent).(string); ok && content != "" {
		fmt.Println(tui.KeyStyle.Render(metadata.KeyLicenseContent) + " (present)")
	}
	return nil
}
