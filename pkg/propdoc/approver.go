package propdoc

import "context"

// Approver handles user interaction for approval workflows, particularly
// before replacing files the user may have edited (scaffolded configuration,
// extracted templates).
//
// Implementations:
//   - ForcedApprover: approves without prompting (--force)
//   - InteractiveApprover: prompts the user on the terminal
type Approver interface {
	// RequestApproval prompts for confirmation before overwriting path.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - path: File that would be overwritten
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, path string) (bool, error)
}
