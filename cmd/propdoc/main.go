package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/propdoc/propdoc/internal/cli"
	"github.com/propdoc/propdoc/pkg/propdoc"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(propdoc.ExitPanic)
		}
	}()

	if os.Getenv("PROPDOC_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(propdoc.ExitCodeForError(err))
	}
}
