package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestForcedApprover_ApprovesImmediately(t *testing.T) {
	var output bytes.Buffer

	approver := &ForcedApprover{output: &output}

	approved, err := approver.RequestApproval(context.Background(), "propdoc.yaml")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !approved {
		t.Fatal("Expected forced approval")
	}
	if output.Len() != 0 {
		t.Errorf("Expected silence without verbose, got:\n%s", output.String())
	}
}

func TestForcedApprover_VerboseNamesFile(t *testing.T) {
	var output bytes.Buffer

	approver := &ForcedApprover{verbose: true, output: &output}

	_, _ = approver.RequestApproval(context.Background(), "docs/propdoc.md.tmpl")

	out := output.String()
	if !strings.Contains(out, "docs/propdoc.md.tmpl") {
		t.Errorf("Expected output to contain file path, got:\n%s", out)
	}
	if !strings.Contains(out, "forced") {
		t.Errorf("Expected output to mention forced mode, got:\n%s", out)
	}
}

func TestNewForcedApprover(t *testing.T) {
	approver := NewForcedApprover(true)
	if approver == nil {
		t.Fatal("Expected non-nil approver")
	}

	fa, ok := approver.(*ForcedApprover)
	if !ok {
		t.Fatal("Expected *ForcedApprover type")
	}
	if !fa.verbose {
		t.Error("Expected verbose=true")
	}
	if fa.output == nil {
		t.Error("Expected non-nil output writer")
	}
}

func TestInteractiveApprover_Approves(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"lowercase y", "y\n"},
		{"uppercase Y", "Y\n"},
		{"yes", "yes\n"},
		{"surrounding whitespace", "  y  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			approver := &InteractiveApprover{
				input:  strings.NewReader(tt.input),
				output: &output,
			}

			approved, err := approver.RequestApproval(context.Background(), "propdoc.yaml")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !approved {
				t.Fatalf("Expected approval for input %q", tt.input)
			}
		})
	}
}

func TestInteractiveApprover_Denies(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"n", "n\n"},
		{"no", "no\n"},
		{"empty (default)", "\n"},
		{"garbage", "sure why not\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer
			approver := &InteractiveApprover{
				input:  strings.NewReader(tt.input),
				output: &output,
			}

			approved, err := approver.RequestApproval(context.Background(), "propdoc.yaml")
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if approved {
				t.Fatalf("Expected denial for input %q", tt.input)
			}
			if !strings.Contains(output.String(), "Keeping existing") {
				t.Errorf("Expected keep message, got:\n%s", output.String())
			}
		})
	}
}

func TestInteractiveApprover_PromptNamesFile(t *testing.T) {
	var output bytes.Buffer
	approver := &InteractiveApprover{
		input:  strings.NewReader("y\n"),
		output: &output,
	}

	_, _ = approver.RequestApproval(context.Background(), "configuration-properties.md")

	out := output.String()
	if !strings.Contains(out, "configuration-properties.md") {
		t.Errorf("Expected file path in prompt, got:\n%s", out)
	}
	if !strings.Contains(out, "Overwrite?") {
		t.Errorf("Expected overwrite question, got:\n%s", out)
	}
}

func TestInteractiveApprover_ReadError(t *testing.T) {
	var output bytes.Buffer
	approver := &InteractiveApprover{
		input:  &errorReader{err: io.ErrUnexpectedEOF},
		output: &output,
	}

	approved, err := approver.RequestApproval(context.Background(), "propdoc.yaml")
	if err == nil {
		t.Fatal("Expected error for read failure")
	}
	if approved {
		t.Fatal("Expected denial on read error")
	}
	if !strings.Contains(err.Error(), "failed to read input") {
		t.Errorf("Expected read error wrapper, got: %v", err)
	}
}

func TestInteractiveApprover_ContextCancellation(t *testing.T) {
	var output bytes.Buffer
	input := newBlockingReader()
	t.Cleanup(func() { input.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	approver := &InteractiveApprover{
		input:  input,
		output: &output,
	}

	approved, err := approver.RequestApproval(ctx, "propdoc.yaml")
	if err == nil {
		t.Fatal("Expected context cancellation error")
	}
	if approved {
		t.Fatal("Expected denial on context cancellation")
	}
}

func TestNewInteractiveApprover(t *testing.T) {
	approver := NewInteractiveApprover(false)
	if approver == nil {
		t.Fatal("Expected non-nil approver")
	}

	ia, ok := approver.(*InteractiveApprover)
	if !ok {
		t.Fatal("Expected *InteractiveApprover type")
	}
	if ia.verbose {
		t.Error("Expected verbose=false")
	}
	if ia.input == nil {
		t.Error("Expected non-nil input reader")
	}
	if ia.output == nil {
		t.Error("Expected non-nil output writer")
	}
}

type errorReader struct {
	err error
}

func (r *errorReader) Read([]byte) (int, error) {
	return 0, r.err
}

type blockingReader struct {
	done chan struct{}
}

func newBlockingReader() *blockingReader {
	return &blockingReader{done: make(chan struct{})}
}

func (r *blockingReader) Read([]byte) (int, error) {
	<-r.done
	return 0, io.EOF
}

func (r *blockingReader) Close() error {
	select {
	case <-r.done:
	default:
		close(r.done)
	}
	return nil
}
