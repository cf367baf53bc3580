// wordlink finds a shortest word ladder between two dictionary words.
//
// Usage:
//
//	wordlink find <start> <target> --dict words.txt [--mode variable] [--shuffle --seed 42]
//	wordlink neighbors <word> --dict words.txt [--mode variable]
//
// Every flag may also come from a YAML file given with --config; flags win.
// Exit status is 1 for bad input and 2 when no ladder exists within the budget.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/wordlink/ladder"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, ladder.ErrUnreachable) || errors.Is(err, ladder.ErrBudgetExceeded) {
		return 2
	}
	return 1
}
