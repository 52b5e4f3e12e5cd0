package propdoc

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := documenter.Generate(config)
//	if errors.Is(err, propdoc.ErrDescriptorInvalid) {
//	    // Handle a malformed metadata file
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrDiscoveryFailed indicates a metadata folder could not be walked.
	ErrDiscoveryFailed = errors.New("metadata discovery failed")

	// ErrDescriptorInvalid indicates a descriptor file is not valid
	// configuration metadata.
	ErrDescriptorInvalid = errors.New("invalid configuration metadata")

	// ErrTemplateNotFound indicates the requested template file was not found.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateInvalid indicates the template failed to compile.
	ErrTemplateInvalid = errors.New("invalid template")

	// ErrWriteFailed indicates the rendered document could not be written.
	ErrWriteFailed = errors.New("output write failed")

	// ErrApprovalDenied indicates the user denied approval for the operation.
	ErrApprovalDenied = errors.New("approval denied")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Check for sentinel errors
	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrDiscoveryFailed):
		return ExitDiscoveryError
	case errors.Is(err, ErrDescriptorInvalid):
		return ExitParseError
	case errors.Is(err, ErrTemplateNotFound), errors.Is(err, ErrTemplateInvalid):
		return ExitTemplateError
	case errors.Is(err, ErrWriteFailed):
		return ExitWriteError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	}

	// Cobra reports flag and argument misuse as plain errors; classify the
	// common message shapes as usage errors.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "arg(s)") {
		return ExitUsageError
	}

	return ExitGeneralError
}
