// Package ui implements the pakmeta.Approver interface for console use:
// interactive confirmation before overwriting an existing metadata file, and
// a forced variant with a countdown for non-interactive runs.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

// ForcedApprover implements the Approver interface for forced
// (non-interactive) approval. It displays a countdown and automatically
// approves afterwards, used when the --force flag is provided.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
	sleepFn func(time.Duration)
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) pakmeta.Approver {
	return &ForcedApprover{
		verbose: verbose,
		output:  os.Stderr,
		sleepFn: time.Sleep,
	}
}

// RequestApproval displays a countdown and automatically approves after it.
func (a *ForcedApprover) RequestApproval(ctx context.Context, packageName string) (bool, error) {
	fmt.Fprintf(a.output, "\n⚠️  DANGER: the existing metadata file for '%s' will be REPLACED.\n", packageName)
	fmt.Fprintln(a.output, "The previous record is not recoverable once overwritten.")

	countdownSeconds := int(pakmeta.DefaultForceApprovalCountdown.Seconds())
	for i := countdownSeconds; i > 0; i-- {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.output, "\rOverwriting in: %d seconds... (Press Ctrl+C to cancel)", i)
			a.sleepFn(1 * time.Second)
		}
	}

	fmt.Fprintf(a.output, "\r✓ Proceeding with metadata overwrite...                              \n")
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ pakmeta.Approver = (*ForcedApprover)(nil)
