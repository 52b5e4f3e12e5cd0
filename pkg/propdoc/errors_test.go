package propdoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/propdoc/propdoc/pkg/propdoc"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, propdoc.ExitSuccess},
		{"general error", errors.New("something went wrong"), propdoc.ExitGeneralError},
		{"invalid config", propdoc.ErrInvalidConfig, propdoc.ExitConfigError},
		{"discovery failed", propdoc.ErrDiscoveryFailed, propdoc.ExitDiscoveryError},
		{"descriptor invalid", propdoc.ErrDescriptorInvalid, propdoc.ExitParseError},
		{"template not found", propdoc.ErrTemplateNotFound, propdoc.ExitTemplateError},
		{"template invalid", propdoc.ErrTemplateInvalid, propdoc.ExitTemplateError},
		{"write failed", propdoc.ErrWriteFailed, propdoc.ExitWriteError},
		{"approval denied", propdoc.ErrApprovalDenied, propdoc.ExitApprovalDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := propdoc.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_WrappedSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			"wrapped parse error keeps its code",
			fmt.Errorf("parsing ./target/classes/META-INF/spring-configuration-metadata.json: %w", propdoc.ErrDescriptorInvalid),
			propdoc.ExitParseError,
		},
		{
			"wrapped discovery error keeps its code",
			fmt.Errorf("walking ./missing: %w", propdoc.ErrDiscoveryFailed),
			propdoc.ExitDiscoveryError,
		},
		{
			"deeply wrapped write error keeps its code",
			fmt.Errorf("generate: %w", fmt.Errorf("writing docs/props.md: %w", propdoc.ErrWriteFailed)),
			propdoc.ExitWriteError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := propdoc.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown flag", errors.New("unknown flag: --foo"), propdoc.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), propdoc.ExitUsageError},
		{"unknown command", errors.New("unknown command \"generte\" for \"propdoc\""), propdoc.ExitUsageError},
		{"accepts args", errors.New("accepts at most 1 arg(s), received 2"), propdoc.ExitUsageError},
		{"required flag", errors.New("required flag(s) \"output\" not set"), propdoc.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"-o, --output\""), propdoc.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := propdoc.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
