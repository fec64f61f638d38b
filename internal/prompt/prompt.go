// Package prompt implements yes/no confirmation for application selection.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Terminal asks questions on out and reads answers line by line from in.
// An empty answer counts as yes.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal returns a Terminal reading from in and writing to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm prints question and waits for y/yes/n/no or an empty line.
// Unrecognized answers repeat the question; closed input returns the read error.
func (t *Terminal) Confirm(question string) (bool, error) {
	for {
		fmt.Fprintln(t.out, question)
		line, err := t.in.ReadString('\n')
		if err != nil && line == "" {
			return false, err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintf(t.out, "Invalid answer: %s\n", answer)
		if err != nil {
			return false, err
		}
	}
}

// Always answers every question with the same value without asking.
type Always bool

// Confirm implements resolve.Prompter.
func (a Always) Confirm(string) (bool, error) {
	return bool(a), nil
}
