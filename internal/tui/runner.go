package tui

import (
	"fmt"
)

// PromptContinue asks a yes/no question on stdout. Non-interactive runs
// answer yes so scripted pipelines never block on input.
func PromptContinue(message string) bool {
	if !IsInteractive() {
		return true
	}

	fmt.Printf("%s [Y/n]: ", message)

	var response string
	fmt.Scanln(&response)

	return response == "" || response == "y" || response == "Y"
}

// ProgressDisplay prints step progress for CLI actions that touch files.
type ProgressDisplay struct{}

func NewProgressDisplay() *ProgressDisplay {
	return &ProgressDisplay{}
}

func (p *ProgressDisplay) Start(message string) {
	if !IsInteractive() {
		fmt.Println(message)
		return
	}
	fmt.Printf("%s %s\n", SpinnerStyle.Render(SymbolSpinner), message)
}

func (p *ProgressDisplay) Success(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render(SymbolCheck), message)
}

func (p *ProgressDisplay) Error(message string) {
	fmt.Printf("%s %s\n", ErrorStyle.Render(SymbolCross), message)
}
