package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/propdoc/propdoc/pkg/propdoc"
)

// ForcedApprover implements the Approver interface for non-interactive
// approval. It approves every overwrite without prompting, used when the
// --force flag is provided or no terminal is attached.
type ForcedApprover struct {
	verbose bool
	output  io.Writer
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) propdoc.Approver {
	return &ForcedApprover{verbose: verbose, output: os.Stderr}
}

// RequestApproval approves immediately. In verbose mode it notes which file
// is being replaced.
func (a *ForcedApprover) RequestApproval(_ context.Context, path string) (bool, error) {
	if a.verbose {
		fmt.Fprintf(a.output, "Overwriting '%s' without confirmation (forced).\n", path)
	}
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ propdoc.Approver = (*ForcedApprover)(nil)
