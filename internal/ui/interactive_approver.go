package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It prompts the user to type the package name to
// confirm replacing its metadata file.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover.
func NewInteractiveApprover(verbose bool) pakmeta.Approver {
	return &InteractiveApprover{
		verbose: verbose,
		input:   os.Stdin,
		output:  os.Stderr,
	}
}

// RequestApproval prompts the user to type the package name to confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, packageName string) (bool, error) {
	fmt.Fprintf(a.output, "\n⚠️  WARNING: a metadata file for '%s' already exists and will be replaced.\n", packageName)
	fmt.Fprintf(a.output, "\nTo confirm, type the package name '%s' and press Enter: ", packageName)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		line, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(line)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case line := <-inputChan:
		if line == packageName {
			fmt.Fprintln(a.output, "✓ Confirmed. Proceeding with metadata overwrite...")
			return true, nil
		}
		fmt.Fprintf(a.output, "✗ Input '%s' does not match package name '%s'. Operation cancelled.\n", line, packageName)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ pakmeta.Approver = (*InteractiveApprover)(nil)
