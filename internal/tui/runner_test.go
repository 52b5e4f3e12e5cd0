package tui

import "testing"

func TestPromptContinue_NonInteractiveAnswersYes(t *testing.T) {
	// Tests never run on a terminal, so the prompt must not block
	t.Setenv("PROPDOC_NON_INTERACTIVE", "1")

	if !PromptContinue("Overwrite existing file?") {
		t.Error("PromptContinue() = false in non-interactive mode, want true")
	}
}

func TestNewProgressDisplay(t *testing.T) {
	if NewProgressDisplay() == nil {
		t.Fatal("NewProgressDisplay() returned nil")
	}
}
