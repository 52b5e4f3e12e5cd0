package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/propdoc/propdoc/pkg/propdoc"
)

// InteractiveApprover implements the Approver interface for console-based
// confirmation. It asks before replacing a file the user may have edited.
type InteractiveApprover struct {
	verbose bool
	input   io.Reader
	output  io.Writer
}

// NewInteractiveApprover creates a new InteractiveApprover reading from
// stdin and prompting on stderr.
func NewInteractiveApprover(verbose bool) propdoc.Approver {
	return &InteractiveApprover{verbose: verbose, input: os.Stdin, output: os.Stderr}
}

// RequestApproval prompts the user to confirm overwriting path.
// Anything other than y/yes denies.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	fmt.Fprintf(a.output, "File '%s' already exists. Overwrite? [y/N]: ", path)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(a.input)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, nil
		default:
			fmt.Fprintf(a.output, "Keeping existing '%s'.\n", path)
			return false, nil
		}
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ propdoc.Approver = (*InteractiveApprover)(nil)
