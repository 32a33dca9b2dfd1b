package terminal

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// stdin is shared across prompts so buffered input is not lost between reads.
var stdin = bufio.NewReader(os.Stdin)

// IsInteractive reports whether stdin is attached to a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Ask prints a labeled prompt and reads one line of input.
func Ask(label string) string {
	fmt.Printf("%s%s:%s ", Bold, label, Reset)
	return readLine()
}

// AskDefault prints a labeled prompt with a default value shown dimmed.
// Returns the default when the operator submits an empty line.
func AskDefault(label, def string) string {
	fmt.Printf("%s%s%s %s[%s]%s: ", Bold, label, Reset, Dim, def, Reset)
	if line := readLine(); line != "" {
		return line
	}
	return def
}

// Confirm asks a yes/no question. Empty input means yes.
func Confirm(label string) bool {
	fmt.Printf("%s%s%s [Y/n] ", Bold, label, Reset)
	switch strings.ToLower(readLine()) {
	case "", "y", "yes":
		return true
	}
	return false
}

func readLine() string {
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}
