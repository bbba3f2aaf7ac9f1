// Command tableau is the thin external CLI surface of spec.md §6: it
// reads a formula, prints the expansion trace, and prints a final
// TAUTOLOGY/NOT A TAUTOLOGY verdict line, exiting non-zero on a parse
// or malformed-input fault or any other command error (such as an
// unreadable config file). Built with github.com/spf13/cobra,
// replacing the teacher's raw bufio.Scanner REPL in the original
// main.go with a command tree (default "prove" action plus a "repl"
// subcommand that keeps the teacher's interactive-menu texture).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tableau:", err)
		os.Exit(1)
	}
}
