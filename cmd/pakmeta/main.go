package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/forgeops/pakmeta/internal/cli"
	"github.com/forgeops/pakmeta/pkg/pakmeta"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(pakmeta.ExitPanic)
		}
	}()

	if os.Getenv("PAKMETA_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(pakmeta.ExitCodeForError(err))
	}
}
